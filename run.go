package fleetgen

import (
	"fmt"

	"go.uber.org/zap"
)

// RunConfig drives one batch of generation.
type RunConfig struct {
	OutputDir string
	Seed      int64
	Settings  []Settings
	Check     bool
	Manifest  bool
	System    SysInfo
}

// Run generates and writes one dataset per settings row, in order. Dataset i
// (1-based) is drawn with seed cfg.Seed+i. The first error stops the run;
// files already written are kept.
func Run(cfg RunConfig, logger *zap.Logger) (*Manifest, error) {
	m := NewManifest(cfg.Seed, cfg.System)
	for i, s := range cfg.Settings {
		idx := i + 1
		seed := cfg.Seed + int64(idx)
		logger.Debug("generating dataset",
			zap.Int("index", idx),
			zap.Int("nodes", s.Nodes),
			zap.Int("edges", s.Edges),
			zap.Int64("seed", seed))

		d, err := NewGenerator(seed).Generate(s)
		if err != nil {
			return m, fmt.Errorf("dataset %d (%s): %w", idx, s, err)
		}
		if cfg.Check {
			if err := ValidateSettings(d, s); err != nil {
				return m, fmt.Errorf("dataset %d (%s): %w", idx, s, err)
			}
		}
		path, err := WriteDataset(cfg.OutputDir, idx, d)
		if err != nil {
			return m, fmt.Errorf("dataset %d: %w", idx, err)
		}
		m.Add(DatasetName(idx), seed, d)
		logger.Info("Generated "+path,
			zap.Int("nodes", s.Nodes),
			zap.Int("edges", s.Edges),
			zap.Int("vehicles", len(d.Vehicles)))
	}
	if cfg.Manifest {
		path, err := WriteManifest(cfg.OutputDir, m)
		if err != nil {
			return m, fmt.Errorf("manifest: %w", err)
		}
		logger.Debug("wrote manifest", zap.String("path", path))
	}
	return m, nil
}
