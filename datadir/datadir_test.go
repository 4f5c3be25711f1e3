package datadir

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func resetForTest() {
	mu.Lock()
	defer mu.Unlock()
	dir = ""
	set = false
}

func TestSetOnlyTakesFirstValue(t *testing.T) {
	resetForTest()
	t.Cleanup(resetForTest)

	_, ok := Get()
	require.False(t, ok)

	Set("/tmp/tables-a")
	got, ok := Get()
	require.True(t, ok)
	require.Equal(t, "/tmp/tables-a", got)

	Set("/tmp/tables-b")
	got, ok = Get()
	require.True(t, ok)
	require.Equal(t, "/tmp/tables-a", got, "second Set must be a no-op")
}

func TestJoin(t *testing.T) {
	resetForTest()
	t.Cleanup(resetForTest)

	require.Equal(t, "table.prn.lz4", Join("table.prn.lz4"))

	Set("/var/lib/llminxsolver")
	require.Equal(t, filepath.Join("/var/lib/llminxsolver", "table.prn.lz4"), Join("table.prn.lz4"))
}
