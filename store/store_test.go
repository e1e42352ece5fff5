package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "sub", "history.json"))

	entries, err := s.Load()
	require.NoError(t, err)
	require.Empty(t, entries, "missing file should read as empty store")

	a := NewEntry("first", `{\n    "a": 1\n}`)
	b := NewEntry("second", "null")
	require.NotEqual(t, a.ID, b.ID)

	require.NoError(t, s.Save([]Entry{a, b}))

	got, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, a.ID, got[0].ID)
	require.Equal(t, a.Text, got[0].Text)
	require.Equal(t, "second", got[1].Name)
}

func TestFileStoreOverwrite(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "history.json"))
	require.NoError(t, s.Save([]Entry{NewEntry("x", "1")}))
	require.NoError(t, s.Save([]Entry{}))
	got, err := s.Load()
	require.NoError(t, err)
	require.Empty(t, got)
}
