package distribution_test

import (
	"testing"

	"github.com/arthur-debert/dotsync/pkg/distribution"
	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifestPath = "/home/u/repos/dotfiles/distribution.toml"

func newStore(t *testing.T, content string) (*distribution.FileStore, afero.Fs) {
	t.Helper()
	fs := filesystem.NewMemory()
	if content != "" {
		require.NoError(t, afero.WriteFile(fs, manifestPath, []byte(content), 0644))
	}
	return distribution.NewFileStore(fs, manifestPath), fs
}

func TestFileStore_Read(t *testing.T) {
	store, _ := newStore(t, sample)

	tools, err := store.Tools()
	require.NoError(t, err)
	assert.Equal(t, []string{"empty", "kitty", "nvim"}, tools)

	files, err := store.Files("kitty")
	require.NoError(t, err)
	assert.Equal(t, []string{"kitty.conf"}, files)
}

func TestFileStore_Missing(t *testing.T) {
	store, _ := newStore(t, "")

	_, err := store.Tools()
	assert.True(t, errors.IsErrorCode(err, errors.ErrDistributionNotFound))
}

func TestFileStore_Add(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		want    []string
	}{
		{name: "creates the manifest", initial: "", want: []string{"bar.conf"}},
		{name: "replaces an unparseable manifest", initial: "[[[", want: []string{"bar.conf"}},
		{name: "appends to existing tool", initial: "[foo]\nfiles = [\"a\"]\n", want: []string{"a", "bar.conf"}},
		{name: "keeps a present entry once", initial: "[foo]\nfiles = [\"bar.conf\"]\n", want: []string{"bar.conf"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newStore(t, tt.initial)

			require.NoError(t, store.Add("foo", "bar.conf"))
			require.NoError(t, store.Add("foo", "bar.conf"))

			files, err := store.Files("foo")
			require.NoError(t, err)
			assert.Equal(t, tt.want, files)
		})
	}
}

func TestFileStore_AddPreservesOtherEntries(t *testing.T) {
	store, fs := newStore(t, sample)

	require.NoError(t, store.Add("git", "config"))

	data, err := afero.ReadFile(fs, manifestPath)
	require.NoError(t, err)
	m, err := distribution.Parse(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"empty", "git", "kitty", "nvim"}, m.Tools())
	assert.Equal(t, []string{"init.lua", "lua/plugins.lua"}, m.Files("nvim"))
	_, ok := m.Meta("_meta")
	assert.True(t, ok)
}

func TestFileStore_Remove(t *testing.T) {
	store, _ := newStore(t, sample)

	require.NoError(t, store.Remove("nvim", "init.lua"))
	require.NoError(t, store.Remove("nvim", "init.lua"))

	files, err := store.Files("nvim")
	require.NoError(t, err)
	assert.Equal(t, []string{"lua/plugins.lua"}, files)

	err = store.Remove("ghost", "init.lua")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidCommand))
}

func TestFileStore_RemoveMissingManifest(t *testing.T) {
	store, _ := newStore(t, "")
	err := store.Remove("foo", "bar")
	assert.True(t, errors.IsErrorCode(err, errors.ErrDistributionNotFound))
}

func TestEmbeddedStore(t *testing.T) {
	store, err := distribution.NewEmbeddedStore([]byte(sample))
	require.NoError(t, err)

	tools, err := store.Tools()
	require.NoError(t, err)
	assert.Equal(t, []string{"empty", "kitty", "nvim"}, tools)

	files, err := store.Files("nvim")
	require.NoError(t, err)
	assert.Len(t, files, 2)

	for _, write := range []func(string, string) error{store.Add, store.Remove} {
		err := write("nvim", "init.lua")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidCommand))
		assert.Contains(t, err.Error(), "embedded mode")
	}
}

func TestEmbeddedStore_Empty(t *testing.T) {
	_, err := distribution.NewEmbeddedStore(nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDistributionNotFound))

	_, err = distribution.NewEmbeddedStore([]byte("not = [valid"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrDistributionParse))
}
