package fleetgen

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRun(t *testing.T) {
	chk := require.New(t)
	dir := filepath.Join(t.TempDir(), "out")

	cfg := RunConfig{
		OutputDir: dir,
		Seed:      7,
		Settings:  []Settings{{Nodes: 10, Edges: 20}, {Nodes: 120, Edges: 300}},
		Check:     true,
		Manifest:  true,
		System:    SysInfo{Platform: "test"},
	}
	m, err := Run(cfg, zaptest.NewLogger(t))
	chk.NoError(err)
	chk.Len(m.Files, 2)

	for i, s := range cfg.Settings {
		d, err := ReadFile(filepath.Join(dir, DatasetName(i+1)))
		chk.NoError(err)
		chk.NoError(ValidateSettings(d, s))

		again, err := NewGenerator(m.Files[i].Seed).Generate(s)
		chk.NoError(err)
		chk.Equal(again, d)
	}

	data, err := os.ReadFile(filepath.Join(dir, ManifestName))
	chk.NoError(err)
	var back Manifest
	chk.NoError(json.Unmarshal(data, &back))
	chk.Equal(*m, back)
	chk.Equal(int64(7), back.Seed)
	chk.NotEmpty(back.RunID)
	chk.Equal("test", back.System.Platform)
	chk.Equal(ManifestEntry{
		File:        "dataset_2.json",
		Seed:        9,
		Nodes:       120,
		Edges:       300,
		Vehicles:    2,
		Capacity:    back.Files[1].Capacity,
		TotalDemand: back.Files[1].TotalDemand,
	}, back.Files[1])
	chk.Equal(VehicleCapacity(back.Files[1].TotalDemand, 2), back.Files[1].Capacity)
}

func TestRunStopsAtFirstError(t *testing.T) {
	chk := require.New(t)
	dir := t.TempDir()

	cfg := RunConfig{
		OutputDir: dir,
		Seed:      1,
		Settings:  []Settings{{Nodes: 10, Edges: 20}, {Nodes: 3, Edges: 10}, {Nodes: 10, Edges: 20}},
		Manifest:  true,
	}
	m, err := Run(cfg, zaptest.NewLogger(t))
	chk.ErrorIs(err, ErrInfeasible)
	chk.ErrorContains(err, "dataset 2 (3:10)")
	chk.Len(m.Files, 1)

	chk.FileExists(filepath.Join(dir, "dataset_1.json"))
	chk.NoFileExists(filepath.Join(dir, "dataset_2.json"))
	chk.NoFileExists(filepath.Join(dir, "dataset_3.json"))
	chk.NoFileExists(filepath.Join(dir, ManifestName))
}
