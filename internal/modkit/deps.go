// Package modkit provides module wiring and core deps
package modkit

import (
	"shopdash/internal/modkit/repokit"
	"shopdash/internal/platform/config"
	"shopdash/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log  logger.Logger
	Cfg  config.Conf
	Data repokit.Reader
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check for optional readers
func (d Deps) ZeroOK() bool { return true }
