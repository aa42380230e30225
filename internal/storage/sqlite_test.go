package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/hbnb/pkg/types"
)

func setupSQLiteRegistry(t *testing.T) (*Registry, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "file.db")
	s := NewSQLiteStore(path)
	t.Cleanup(func() { s.Close() })
	return New(types.DefaultCatalog(), s), path
}

func TestSQLiteStoreMissingFile(t *testing.T) {
	r, path := setupSQLiteRegistry(t)
	require.NoError(t, r.Reload())
	assert.Equal(t, 0, r.All().Len())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "reload must not create the database")
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	r, path := setupSQLiteRegistry(t)

	p, err := r.Create(types.TypePlace)
	require.NoError(t, err)
	require.NoError(t, p.Set("number_rooms", int64(3)))
	require.NoError(t, p.Set("latitude", 12.0))
	u, err := r.Create(types.TypeUser)
	require.NoError(t, err)
	require.NoError(t, u.Set("email", "a@b.c"))
	require.NoError(t, r.Save())

	s := NewSQLiteStore(path)
	defer s.Close()
	fresh := New(types.DefaultCatalog(), s)
	require.NoError(t, fresh.Reload())

	assert.Equal(t, r.All().Keys(), fresh.All().Keys())
	for key, want := range r.All().All() {
		got, ok := fresh.All().Get(key)
		require.True(t, ok, key)
		assert.Equal(t, want.Export().Map(), got.Export().Map())
		assert.Equal(t, want.Render(), got.Render())
	}
}

func TestSQLiteStoreSaveReplacesRows(t *testing.T) {
	r, path := setupSQLiteRegistry(t)
	a, _ := r.Create(types.TypeBaseModel)
	b, _ := r.Create(types.TypeBaseModel)
	require.NoError(t, r.Save())

	require.NoError(t, r.Delete(types.TypeBaseModel, a.ID()))
	require.NoError(t, r.Save())

	s := NewSQLiteStore(path)
	defer s.Close()
	entries, err := s.Load()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, Key(types.TypeBaseModel, b.ID()), entries[0].Key)
}

func TestSQLiteStoreEmptySave(t *testing.T) {
	r, path := setupSQLiteRegistry(t)
	require.NoError(t, r.Save())

	s := NewSQLiteStore(path)
	defer s.Close()
	entries, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, entries)
}
