package fleetgen

import (
	"fmt"
	"strconv"
	"strings"
)

// SettingsFlags collects repeated N:E values, e.g. --size 50:100 --size 100:500.
type SettingsFlags []Settings

func (i *SettingsFlags) String() string {
	parts := make([]string, len(*i))
	for k, s := range *i {
		parts[k] = s.String()
	}
	return strings.Join(parts, ",")
}

func (i *SettingsFlags) Set(value string) error {
	for _, item := range strings.Split(value, ",") {
		s, err := ParseSettings(item)
		if err != nil {
			return err
		}
		*i = append(*i, s)
	}
	return nil
}

// ParseSettings reads one "nodes:edges" pair.
func ParseSettings(value string) (Settings, error) {
	n, e, ok := strings.Cut(strings.TrimSpace(value), ":")
	if !ok {
		return Settings{}, fmt.Errorf("size %q: want NODES:EDGES", value)
	}
	nodes, err := strconv.Atoi(n)
	if err != nil {
		return Settings{}, fmt.Errorf("size %q: %w", value, err)
	}
	edges, err := strconv.Atoi(e)
	if err != nil {
		return Settings{}, fmt.Errorf("size %q: %w", value, err)
	}
	return Settings{Nodes: nodes, Edges: edges}, nil
}
