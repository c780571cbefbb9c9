package sink

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	now := time.Unix(1700000000, 0)
	assert.Equal(t, "book_input_1700000000.txt", FileName(DefaultPrefix, now, 0))
	assert.Equal(t, "book_input_1700000000-2.txt", FileName(DefaultPrefix, now, 2))
}

func TestOpenAppendClose(t *testing.T) {
	dir := t.TempDir()
	now := time.Unix(1700000000, 0)

	s, err := Open(filepath.Join(dir, "logs"), "", now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "logs", "book_input_1700000000.txt"), s.Path())

	require.NoError(t, s.Append("Title: Dune, Author: Herbert, ISBN: 1234567890, Quantity: 5"))
	require.NoError(t, s.Append("Title: Emma, Author: Austen, ISBN: 1111111111, Quantity: 1"))
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	b, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t,
		"Title: Dune, Author: Herbert, ISBN: 1234567890, Quantity: 5\n"+
			"Title: Emma, Author: Austen, ISBN: 1111111111, Quantity: 1\n",
		string(b))
}

func TestOpenDoesNotReuseExistingFile(t *testing.T) {
	dir := t.TempDir()
	now := time.Unix(1700000000, 0)

	first, err := Open(dir, "run_", now)
	require.NoError(t, err)
	t.Cleanup(func() { _ = first.Close() })
	second, err := Open(dir, "run_", now)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	assert.NotEqual(t, first.Path(), second.Path())
	assert.Equal(t, filepath.Join(dir, "run_1700000000-1.txt"), second.Path())
}

func TestAppendAfterClose(t *testing.T) {
	s, err := Open(t.TempDir(), "", time.Now())
	require.NoError(t, err)
	require.NoError(t, s.Close())
	err = s.Append("x")
	assert.True(t, errors.Is(err, fs.ErrClosed))
}

func TestOpenFailsWhenDirIsAFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := Open(blocker, "", time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open log sink")
}
