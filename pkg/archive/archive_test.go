package archive_test

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/arthur-debert/dotsync/pkg/archive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bundle() fstest.MapFS {
	return fstest.MapFS{
		".keep":                    {Data: nil},
		"distribution.toml":        {Data: []byte("[foo]\nfiles = [\"bar.conf\"]\n")},
		".dotignore":               {Data: []byte("*.key\n")},
		"config/foo/bar.conf":      {Data: []byte("hello")},
		"config/nvim/lua/init.lua": {Data: []byte("-- lua")},
		"BUILD_IDENTITY":           {Data: []byte("20240102-01-030405\n")},
		"NEWEST_FILE":              {Data: []byte("/home/u/repos/dotfiles/config/foo/bar.conf\n")},
	}
}

func TestArchive_Accessors(t *testing.T) {
	a := archive.New(bundle())

	assert.Equal(t, "[foo]\nfiles = [\"bar.conf\"]\n", string(a.DistributionBytes()))
	assert.Equal(t, "*.key\n", string(a.DotignoreBytes()))

	data, ok := a.FileBytes("config/foo/bar.conf")
	require.True(t, ok)
	assert.Equal(t, "hello", string(data))

	data, ok = a.FileBytes("distribution.toml")
	require.True(t, ok)
	assert.NotEmpty(t, data)

	_, ok = a.FileBytes("config/foo/missing.conf")
	assert.False(t, ok)
	_, ok = a.FileBytes("../escape")
	assert.False(t, ok)

	assert.True(t, a.HasFile("config/nvim/lua/init.lua"))
	assert.False(t, a.HasFile("config/nvim"))

	assert.True(t, a.HasEmbeddedFiles())
	assert.ElementsMatch(t, []string{"config/foo/bar.conf", "config/nvim/lua/init.lua"}, a.TrackedFiles())

	assert.Equal(t, "20240102-01-030405", a.BuildIdentity())
	assert.Equal(t, "/home/u/repos/dotfiles/config/foo/bar.conf", a.NewestFile())
}

func TestArchive_Empty(t *testing.T) {
	a := archive.New(fstest.MapFS{".keep": {}})

	assert.Nil(t, a.DistributionBytes())
	assert.Nil(t, a.DotignoreBytes())
	assert.False(t, a.HasEmbeddedFiles())
	assert.Empty(t, a.TrackedFiles())
	assert.Equal(t, archive.UnknownBuildIdentity, a.BuildIdentity())
	assert.Equal(t, archive.UnknownNewestFile, a.NewestFile())
}

func TestArchive_ManifestOnlyHasNoEmbeddedFiles(t *testing.T) {
	a := archive.New(fstest.MapFS{"distribution.toml": {Data: []byte("[foo]\nfiles = []\n")}})
	assert.NotNil(t, a.DistributionBytes())
	assert.False(t, a.HasEmbeddedFiles())
}

func TestEmbedded(t *testing.T) {
	// the checked-in bundle may or may not be populated, it must always open
	a := archive.Embedded()
	require.NotNil(t, a)
	assert.NotEmpty(t, a.BuildIdentity())
}

func TestFormatIdentity(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{"plain", time.Date(2024, 3, 15, 9, 5, 7, 0, time.UTC), "20240315-11-090507"},
		// 2021-01-01 belongs to ISO week 53 of 2020
		{"iso week of previous year", time.Date(2021, 1, 1, 23, 59, 59, 0, time.UTC), "20210101-53-235959"},
		{"converted to utc", time.Date(2024, 1, 1, 1, 0, 0, 0, time.FixedZone("CET", 3600)), "20240101-01-000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, archive.FormatIdentity(tt.in))
		})
	}
}
