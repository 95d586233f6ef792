package fleetgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSettingsFlags(t *testing.T) {
	chk := require.New(t)
	var f SettingsFlags

	chk.NoError(f.Set("50:100"))
	chk.NoError(f.Set("10:20, 30:40"))
	chk.Equal(SettingsFlags{{Nodes: 50, Edges: 100}, {Nodes: 10, Edges: 20}, {Nodes: 30, Edges: 40}}, f)
	chk.Equal("50:100,10:20,30:40", f.String())

	chk.Error(f.Set("50"))
	chk.Error(f.Set("a:1"))
	chk.Error(f.Set("1:b"))
	chk.Len(f, 3)
}
