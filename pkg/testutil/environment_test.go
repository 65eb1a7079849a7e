package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTestEnvironment_Memory(t *testing.T) {
	env := NewTestEnvironment(t, EnvMemoryOnly)

	assert.Equal(t, "/virtual/home", env.HomeDir)
	assert.True(t, env.Exists(env.Paths.RepoDir()))
	assert.False(t, env.Exists(env.Paths.DistributionFile()))
	assert.False(t, env.Exists(env.Paths.ConfigDir()))
}

func TestNewTestEnvironment_Isolated(t *testing.T) {
	env := NewTestEnvironment(t, EnvIsolated)

	assert.True(t, env.Exists(env.Paths.RepoDir()))
	assert.Equal(t, env.HomeDir+"/repos/dotfiles", env.Paths.RepoDir())
}

func TestEnvironmentBuilders(t *testing.T) {
	env := NewTestEnvironment(t, EnvMemoryOnly).
		WithManifest("[foo]\nfiles = [\"a\"]\n").
		WithIgnore("*.key\n").
		WithRepoFile("foo", "a", "repo").
		WithLiveFile("foo", "sub/b", "live").
		WithFileTree(FileTree{
			"notes": FileTree{"todo.txt": "x"},
		})

	assert.Equal(t, "repo", env.ReadFile(env.Paths.RepoFile("foo", "a")))
	assert.Equal(t, "live", env.ReadFile(env.Paths.LiveFile("foo", "sub/b")))
	assert.Equal(t, "*.key\n", env.ReadFile(env.Paths.DotignoreFile()))
	assert.Equal(t, "x", env.ReadFile("/virtual/home/notes/todo.txt"))

	env.Reporter.Info("hello")
	assert.Equal(t, "ℹ hello\n", env.Output())
	assert.Empty(t, env.Output())
}
