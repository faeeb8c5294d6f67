package topology

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Emeline-1/bgpsecsim/asgraph"
)

func TestCache_StoreThenLookupRoundTrips(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "as-rel.txt")
	require.NoError(t, os.WriteFile(source, []byte("1|2|-1\n"), 0o644))

	cache, err := OpenCache(filepath.Join(dir, "cache.sqlite"))
	require.NoError(t, err)
	defer cache.Close()

	_, ok, err := cache.Lookup(source)
	require.NoError(t, err)
	require.False(t, ok)

	edges := []asgraph.Edge{{A: 1, B: 2, Rel: asgraph.CUSTOMER}}
	require.NoError(t, cache.Store(source, edges))

	got, ok, err := cache.Lookup(source)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, edges, got)
}

func TestCache_StaleMtimeMisses(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "as-rel.txt")
	require.NoError(t, os.WriteFile(source, []byte("1|2|-1\n"), 0o644))

	cache, err := OpenCache(filepath.Join(dir, "cache.sqlite"))
	require.NoError(t, err)
	defer cache.Close()

	require.NoError(t, cache.Store(source, []asgraph.Edge{{A: 1, B: 2, Rel: asgraph.CUSTOMER}}))

	// Touch the file's mtime forward so the cached entry for the old state
	// is no longer trusted.
	info, err := os.Stat(source)
	require.NoError(t, err)
	later := info.ModTime().Add(time.Hour)
	require.NoError(t, os.Chtimes(source, later, later))

	_, ok, err := cache.Lookup(source)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestLoadGraphCached_PopulatesCacheOnFirstLoad(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "as-rel.txt")
	require.NoError(t, os.WriteFile(source, []byte("1|2|-1\n2|3|0\n"), 0o644))

	cache, err := OpenCache(filepath.Join(dir, "cache.sqlite"))
	require.NoError(t, err)
	defer cache.Close()

	g, err := LoadGraphCached(cache, source)
	require.NoError(t, err)
	require.Equal(t, 3, g.NumNodes())

	_, ok, err := cache.Lookup(source)
	require.NoError(t, err)
	require.True(t, ok)
}
