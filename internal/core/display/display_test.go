package display

import "testing"

func TestSeconds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want string
	}{
		{0, "0 hr 0 min"},
		{59, "0 hr 0 min"},
		{60, "0 hr 1 min"},
		{3599, "0 hr 59 min"},
		{3600, "1 hr 0 min"},
		{7325, "2 hr 2 min"},
		{7325.9, "2 hr 2 min"}, // fractional seconds floor, not round
		{-5, "0 hr 0 min"},
	}
	for _, c := range cases {
		if got := Seconds(c.in); got != c.want {
			t.Fatalf("Seconds(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEuro(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   float64
		want string
	}{
		{0, "€0.00"},
		{12.5, "€12.50"},
		{1234.56, "€1,234.56"},
		{9876543.2, "€9,876,543.20"},
	}
	for _, c := range cases {
		if got := Euro(c.in); got != c.want {
			t.Fatalf("Euro(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
