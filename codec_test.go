package fleetgen

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteDatasetRoundTrip(t *testing.T) {
	chk := require.New(t)
	dir := filepath.Join(t.TempDir(), "datasets")

	d, err := NewGenerator(21).Generate(Settings{Nodes: 50, Edges: 100})
	chk.NoError(err)

	path, err := WriteDataset(dir, 3, d)
	chk.NoError(err)
	chk.Equal(filepath.Join(dir, "dataset_3.json"), path)

	back, err := ReadFile(path)
	chk.NoError(err)
	chk.Equal(d, back)

	data, err := os.ReadFile(path)
	chk.NoError(err)
	chk.True(strings.HasPrefix(string(data), "{\n  \"graph\": {\n    \"num_nodes\": 50,\n"), string(data[:60]))

	var raw struct {
		Graph struct {
			NumNodes int               `json:"num_nodes"`
			Nodes    []json.RawMessage `json:"nodes"`
			Edges    []json.RawMessage `json:"edges"`
		} `json:"graph"`
		Vehicles []map[string]int `json:"vehicles"`
	}
	chk.NoError(json.Unmarshal(data, &raw))
	chk.Equal(50, raw.Graph.NumNodes)
	chk.Len(raw.Graph.Nodes, 50)
	chk.Len(raw.Graph.Edges, 100)
	chk.Equal([]map[string]int{{"id": 1, "capacity": d.Vehicles[0].Capacity}}, raw.Vehicles)
	chk.JSONEq(`{"id":0,"demand":0,"priority":0}`, string(raw.Graph.Nodes[0]))
}

func TestWriteDatasetOverwrites(t *testing.T) {
	chk := require.New(t)
	dir := t.TempDir()

	small, err := NewGenerator(1).Generate(Settings{Nodes: 60, Edges: 200})
	chk.NoError(err)
	tiny, err := NewGenerator(1).Generate(Settings{Nodes: 4, Edges: 3})
	chk.NoError(err)

	_, err = WriteDataset(dir, 1, small)
	chk.NoError(err)
	path, err := WriteDataset(dir, 1, tiny)
	chk.NoError(err)

	back, err := ReadFile(path)
	chk.NoError(err)
	chk.Equal(tiny, back)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"graph": [`))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("nope"), 0644))
	_, err = ReadFile(path)
	require.ErrorContains(t, err, "broken.json")
}

func TestEncodeIndent(t *testing.T) {
	var buf bytes.Buffer
	d := &Dataset{
		Graph:    Graph{NumNodes: 1, Nodes: []Node{{ID: 0}}, Edges: []Edge{}},
		Vehicles: []Vehicle{{ID: 1, Capacity: 1}},
	}
	require.NoError(t, Encode(&buf, d))
	require.Equal(t, `{
  "graph": {
    "num_nodes": 1,
    "nodes": [
      {
        "id": 0,
        "demand": 0,
        "priority": 0
      }
    ],
    "edges": []
  },
  "vehicles": [
    {
      "id": 1,
      "capacity": 1
    }
  ]
}
`, buf.String())
}
