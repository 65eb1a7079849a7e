package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotsync/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyFile(t *testing.T) {
	tests := []struct {
		name     string
		existing string
	}{
		{name: "creates destination"},
		{name: "overwrites longer destination", existing: "this content is much longer than the source"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := filesystem.NewMemory()
			require.NoError(t, afero.WriteFile(fs, "/src/a.conf", []byte("hello"), 0600))
			require.NoError(t, fs.MkdirAll("/dst", 0755))
			if tt.existing != "" {
				require.NoError(t, afero.WriteFile(fs, "/dst/a.conf", []byte(tt.existing), 0644))
			}

			require.NoError(t, filesystem.CopyFile(fs, "/src/a.conf", "/dst/a.conf"))

			got, err := afero.ReadFile(fs, "/dst/a.conf")
			require.NoError(t, err)
			assert.Equal(t, "hello", string(got))
		})
	}
}

func TestCopyFile_MissingSource(t *testing.T) {
	fs := filesystem.NewMemory()
	err := filesystem.CopyFile(fs, "/nope", "/dst")
	assert.Error(t, err)
}

func TestEnsureParent(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, filesystem.EnsureParent(fs, "/a/b/c/file.txt"))

	ok, err := afero.DirExists(fs, "/a/b/c")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	fs := filesystem.NewOS()
	target := filepath.Join(dir, "distribution.toml")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0644))

	require.NoError(t, filesystem.WriteFileAtomic(fs, target, []byte("new"), 0644))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file should not be left behind")
}

func TestSameContent(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, afero.WriteFile(fs, "/a", []byte("hello"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/b", []byte("hello"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/c", []byte("world"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/d", []byte("hello!"), 0644))

	same, err := filesystem.SameContent(fs, "/a", "/b")
	require.NoError(t, err)
	assert.True(t, same)

	same, err = filesystem.SameContent(fs, "/a", "/c")
	require.NoError(t, err)
	assert.False(t, same)

	same, err = filesystem.SameContent(fs, "/a", "/d")
	require.NoError(t, err)
	assert.False(t, same)
}

func TestExists(t *testing.T) {
	fs := filesystem.NewMemory()
	require.NoError(t, afero.WriteFile(fs, "/x", []byte("1"), 0644))

	ok, err := filesystem.Exists(fs, "/x")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = filesystem.Exists(fs, "/y")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.True(t, filesystem.IsFile(fs, "/x"))
	assert.False(t, filesystem.IsFile(fs, "/"))
}
