package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/roach88/shieldlab/internal/attenuation"
	"github.com/roach88/shieldlab/internal/config"
	"github.com/roach88/shieldlab/internal/lab"
	"github.com/roach88/shieldlab/internal/material"
	"github.com/roach88/shieldlab/internal/store"
)

// environment is what every command needs: the merged configuration and a
// lab built from it.
type environment struct {
	cfg config.Config
	lab *lab.Lab
}

// loadEnvironment reads the config, applies global flag overrides, and
// builds the lab. Flags win over config, config wins over defaults.
func loadEnvironment(opts *RootOptions) (*environment, error) {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return nil, err
	}
	if opts.Materials != "" {
		cfg.Materials.File = opts.Materials
	}
	if opts.Model != "" {
		cfg.Model.Buildup = opts.Model
	}
	if opts.Database != "" {
		cfg.Database.Path = opts.Database
	}

	model, err := attenuation.ModelByName(cfg.Model.Buildup)
	if err != nil {
		return nil, err
	}

	registry := material.Default()
	if cfg.Materials.File != "" {
		slog.Debug("loading material dataset", "path", cfg.Materials.File)
		registry, err = material.LoadFile(cfg.Materials.File)
		if err != nil {
			return nil, err
		}
	}

	slog.Debug("environment ready", "materials", registry.Len(), "model", model.Name())
	return &environment{
		cfg: cfg,
		lab: lab.New(registry, lab.WithModel(model)),
	}, nil
}

// openStore opens the history database, creating its directory if needed.
func (e *environment) openStore() (*store.Store, error) {
	path := e.cfg.Database.Path
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}
	slog.Debug("opening database", "path", path)
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return st, nil
}

// resolveDomain fills zero flag values from the config defaults.
func (e *environment) resolveDomain(maxThickness float64, samples int) (float64, int) {
	if maxThickness == 0 {
		maxThickness = e.cfg.Defaults.MaxThickness
	}
	if samples == 0 {
		samples = e.cfg.Defaults.Samples
	}
	return maxThickness, samples
}

// resolveCapacity fills a zero capacity from the config default.
func (e *environment) resolveCapacity(capacity float64) float64 {
	if capacity == 0 {
		return e.cfg.Defaults.FloorCapacity
	}
	return capacity
}
