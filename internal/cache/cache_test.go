package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type entry struct {
	Schema uint16
	Out    string
}

func TestPutGet(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)

	key := Key([]byte("let a = 1"))
	var got entry
	ok, err := c.Get(key, &got)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, c.Put(key, entry{Schema: 1, Out: "let a = 1;"}))
	ok, err = c.Get(key, &got)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, entry{Schema: 1, Out: "let a = 1;"}, got)

	// временных файлов не остаётся
	matches, err := filepath.Glob(filepath.Join(c.Dir(), "zn", "*", "tmp-*"))
	require.NoError(t, err)
	require.Empty(t, matches)
}

func TestKeyIsLengthPrefixed(t *testing.T) {
	require.NotEqual(t, Key([]byte("ab"), []byte("c")), Key([]byte("a"), []byte("bc")))
	require.Equal(t, Key([]byte("x")), Key([]byte("x")))
}

func TestCorruptEntry(t *testing.T) {
	c, err := Open(t.TempDir())
	require.NoError(t, err)
	key := Key([]byte("k"))
	require.NoError(t, c.Put(key, entry{Out: "x"}))
	require.NoError(t, os.WriteFile(c.pathFor(key), []byte{0xc1}, 0o600))

	var got entry
	ok, err := c.Get(key, &got)
	require.Error(t, err)
	require.False(t, ok)
}

func TestDropAll(t *testing.T) {
	c, err := Open(filepath.Join(t.TempDir(), "cache"))
	require.NoError(t, err)
	key := Key([]byte("k"))
	require.NoError(t, c.Put(key, entry{Out: "x"}))
	require.NoError(t, c.DropAll())

	var got entry
	ok, err := c.Get(key, &got)
	require.NoError(t, err)
	require.False(t, ok)
	require.DirExists(t, c.Dir())
}

func TestNilCacheIsNoop(t *testing.T) {
	var c *Disk
	require.NoError(t, c.Put(Key(), entry{}))
	ok, err := c.Get(Key(), &entry{})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDefaultDirHonoursXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	dir, err := DefaultDir("zinc")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/tmp/xdg", "zinc"), dir)
}
