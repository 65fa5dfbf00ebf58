package snapshot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stylo/internal/adapters/snapshot"
	"go.trai.ch/stylo/internal/core/domain"
)

func TestStore_WriteGraph(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".stylo", "debug")
	store := snapshot.NewStore(dir)

	graph := domain.NewDependencyGraph()
	graph.RecordDependencies("/src/app.scss", []string{"/src/app.scss", "/src/_base.scss"})
	graph.RecordDependencies("/src/admin.scss", []string{"/src/_base.scss"})
	graph.RecordDependencies("/src/admin.scss", nil)
	graph.RecordDependencies("/src/admin.scss", []string{"/src/_base.scss"})

	require.NoError(t, store.WriteGraph(graph.Snapshot()))

	data, err := os.ReadFile(filepath.Join(dir, domain.GraphFileName))
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "graph", data)
}

func TestStore_WriteGraph_Empty(t *testing.T) {
	dir := t.TempDir()
	store := snapshot.NewStore(dir)

	require.NoError(t, store.WriteGraph(nil))

	data, err := os.ReadFile(filepath.Join(dir, domain.GraphFileName))
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}

func TestStore_WriteUnit(t *testing.T) {
	dir := t.TempDir()
	store := snapshot.NewStore(dir)

	require.NoError(t, store.WriteUnit("/src/app.scss", []string{"/src/app.scss", "/src/_base.scss"}))

	data, err := os.ReadFile(filepath.Join(dir, domain.UnitsDirName, "app.json"))
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "unit", data)
}

func TestStore_WriteUnit_BaseNameCollision(t *testing.T) {
	dir := t.TempDir()
	store := snapshot.NewStore(dir)

	require.NoError(t, store.WriteUnit("/src/a/main.scss", []string{"/src/a/main.scss"}))
	require.NoError(t, store.WriteUnit("/src/b/main.scss", []string{"/src/b/main.scss"}))

	data, err := os.ReadFile(filepath.Join(dir, domain.UnitsDirName, "main.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "/src/b/main.scss")
	assert.NotContains(t, string(data), "/src/a/main.scss")
}

func TestStore_WriteFailure(t *testing.T) {
	parent := t.TempDir()
	blocker := filepath.Join(parent, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	store := snapshot.NewStore(filepath.Join(blocker, "debug"))

	err := store.WriteGraph(domain.GraphSnapshot{})
	require.ErrorIs(t, err, domain.ErrDebugWriteFailed)
}

func TestStore_Clean(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "debug")
	store := snapshot.NewStore(dir)
	require.NoError(t, store.WriteUnit("/src/app.scss", []string{"/src/app.scss"}))

	require.NoError(t, store.Clean())

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
	require.NoError(t, store.Clean())
}
