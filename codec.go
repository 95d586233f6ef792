package fleetgen

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const ManifestName = "manifest.json"

// DatasetName is the file name of the idx-th dataset of a run, starting at 1.
func DatasetName(idx int) string {
	return fmt.Sprintf("dataset_%d.json", idx)
}

// Encode writes d as JSON indented by two spaces.
func Encode(w io.Writer, d *Dataset) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

func Decode(r io.Reader) (*Dataset, error) {
	var d Dataset
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

func ReadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return d, nil
}

// WriteFile writes d to path, replacing any existing file.
func WriteFile(path string, d *Dataset) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Encode(f, d)
}

// WriteDataset stores d as the idx-th dataset in dir, creating dir if
// needed, and returns the path written.
func WriteDataset(dir string, idx int, d *Dataset) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, DatasetName(idx))
	if err := WriteFile(path, d); err != nil {
		return "", err
	}
	return path, nil
}

func WriteManifest(dir string, m *Manifest) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, ManifestName)
	return path, os.WriteFile(path, data, 0644)
}
