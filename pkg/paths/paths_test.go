package paths

import (
	"testing"

	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		home     string
		validate func(t *testing.T, p Paths)
	}{
		{
			name: "canonical roots",
			home: "/home/alice",
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/home/alice", p.Home())
				assert.Equal(t, "/home/alice/repos/dotfiles", p.RepoDir())
				assert.Equal(t, "/home/alice/.config", p.ConfigDir())
				assert.Equal(t, "/home/alice/repos/dotfiles/distribution.toml", p.DistributionFile())
				assert.Equal(t, "/home/alice/repos/dotfiles/.dotignore", p.DotignoreFile())
			},
		},
		{
			name: "trailing separator on home",
			home: "/home/bob/",
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/home/bob/repos/dotfiles", p.RepoDir())
			},
		},
		{
			name: "no canonicalization",
			home: "/home/../srv/u",
			validate: func(t *testing.T, p Paths) {
				assert.Equal(t, "/home/../srv/u/.config", p.ConfigDir())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.home)
			require.NoError(t, err)
			tt.validate(t, p)
		})
	}
}

func TestNew_EmptyHome(t *testing.T) {
	_, err := New("")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRepoNotFound))
}

func TestFilePairs(t *testing.T) {
	p, err := New("/h")
	require.NoError(t, err)

	assert.Equal(t, "/h/repos/dotfiles/config/nvim", p.RepoSectionDir("nvim"))
	assert.Equal(t, "/h/.config/nvim", p.LiveSectionDir("nvim"))
	assert.Equal(t, "/h/repos/dotfiles/config/nvim/init.lua", p.RepoFile("nvim", "init.lua"))
	assert.Equal(t, "/h/.config/nvim/init.lua", p.LiveFile("nvim", "init.lua"))

	// sub-paths are carried through verbatim
	assert.Equal(t, "/h/.config/nvim/lua/plugins/lsp.lua", p.LiveFile("nvim", "lua/plugins/lsp.lua"))
	assert.Equal(t, "/h/repos/dotfiles/config/nvim/lua/plugins/lsp.lua", p.RepoFile("nvim", "lua/plugins/lsp.lua"))
}

func TestArchiveKey(t *testing.T) {
	assert.Equal(t, "config/git/config", ArchiveKey("git", "config"))
	assert.Equal(t, "config/fish/conf.d/abbr.fish", ArchiveKey("fish", "conf.d/abbr.fish"))
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvHome, "/tmp/envhome")

	p, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/envhome/repos/dotfiles", p.RepoDir())
}
