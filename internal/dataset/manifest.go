package dataset

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest names the flat files a deployment serves
// paths are resolved relative to the manifest file location
type Manifest struct {
	Datasets struct {
		Customers          string `yaml:"customers"`
		Orders             string `yaml:"orders"`
		AbandonedCheckouts string `yaml:"abandoned_checkouts"`
		Products           string `yaml:"products"`
		JourneyEvents      string `yaml:"journey_events"`
	} `yaml:"datasets"`
	Logo string `yaml:"logo"`
}

// LoadManifest reads and resolves a YAML dataset manifest
func LoadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m := &Manifest{}
	if err := yaml.Unmarshal(raw, m); err != nil {
		return nil, err
	}
	base := filepath.Dir(path)
	m.Datasets.Customers = resolve(base, m.Datasets.Customers)
	m.Datasets.Orders = resolve(base, m.Datasets.Orders)
	m.Datasets.AbandonedCheckouts = resolve(base, m.Datasets.AbandonedCheckouts)
	m.Datasets.Products = resolve(base, m.Datasets.Products)
	m.Datasets.JourneyEvents = resolve(base, m.Datasets.JourneyEvents)
	m.Logo = resolve(base, m.Logo)
	return m, nil
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// DefaultManifest assumes the conventional file names under dir
func DefaultManifest(dir string) *Manifest {
	m := &Manifest{}
	m.Datasets.Customers = filepath.Join(dir, "customers.csv")
	m.Datasets.Orders = filepath.Join(dir, "orders.csv")
	m.Datasets.AbandonedCheckouts = filepath.Join(dir, "abandoned_checkouts.csv")
	m.Datasets.Products = filepath.Join(dir, "products.csv")
	m.Datasets.JourneyEvents = filepath.Join(dir, "journey_events.csv")
	m.Logo = filepath.Join(dir, "logo.png")
	return m
}
