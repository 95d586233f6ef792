package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlotDegrees(t *testing.T) {
	chk := require.New(t)
	file := filepath.Join(t.TempDir(), "dataset_1_degree.png")

	chk.NoError(plotDegrees("dataset_1", []int{3, 1, 1, 1, 2, 2}, file))
	info, err := os.Stat(file)
	chk.NoError(err)
	chk.Positive(info.Size())
}
