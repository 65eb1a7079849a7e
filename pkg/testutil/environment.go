package testutil

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotsync/pkg/filesystem"
	"github.com/arthur-debert/dotsync/pkg/output"
	"github.com/arthur-debert/dotsync/pkg/paths"
	"github.com/spf13/afero"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment is a home directory with a dotfiles repository and a live
// configuration tree
type TestEnvironment struct {
	HomeDir string
	FS      afero.Fs
	Paths   paths.Paths
	Type    EnvType

	// Out collects everything written through Reporter
	Out      *bytes.Buffer
	Reporter *output.Reporter

	t *testing.T
}

// NewTestEnvironment creates the home directory and the repository root.
// The manifest, the ignore file and the live root are left to the test.
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType, Out: &bytes.Buffer{}}

	switch envType {
	case EnvMemoryOnly:
		env.HomeDir = "/virtual/home"
		env.FS = filesystem.NewMemory()
	case EnvIsolated:
		env.HomeDir = filepath.Join(t.TempDir(), "home")
		env.FS = filesystem.NewOS()
		t.Setenv("HOME", env.HomeDir)
		t.Setenv("XDG_STATE_HOME", filepath.Join(env.HomeDir, ".local", "state"))
		t.Setenv("XDG_CONFIG_HOME", filepath.Join(env.HomeDir, ".config-xdg"))
	}

	p, err := paths.New(env.HomeDir)
	if err != nil {
		t.Fatalf("Failed to create paths: %v", err)
	}
	env.Paths = p

	if err := env.FS.MkdirAll(p.RepoDir(), 0755); err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}

	env.Reporter = output.NewReporter(env.Out, output.ColorNever)
	return env
}

// WithManifest writes the distribution file
func (env *TestEnvironment) WithManifest(content string) *TestEnvironment {
	env.t.Helper()
	env.WriteFile(env.Paths.DistributionFile(), content)
	return env
}

// WithIgnore writes the .dotignore file
func (env *TestEnvironment) WithIgnore(content string) *TestEnvironment {
	env.t.Helper()
	env.WriteFile(env.Paths.DotignoreFile(), content)
	return env
}

// WithRepoFile writes the repository copy of section/file
func (env *TestEnvironment) WithRepoFile(section, file, content string) *TestEnvironment {
	env.t.Helper()
	env.WriteFile(env.Paths.RepoFile(section, file), content)
	return env
}

// WithLiveFile writes the live copy of section/file
func (env *TestEnvironment) WithLiveFile(section, file, content string) *TestEnvironment {
	env.t.Helper()
	env.WriteFile(env.Paths.LiveFile(section, file), content)
	return env
}

// WithLiveRoot creates $HOME/.config
func (env *TestEnvironment) WithLiveRoot() *TestEnvironment {
	env.t.Helper()
	if err := env.FS.MkdirAll(env.Paths.ConfigDir(), 0755); err != nil {
		env.t.Fatalf("Failed to create %s: %v", env.Paths.ConfigDir(), err)
	}
	return env
}

// WithFileTree creates tree under the home directory
func (env *TestEnvironment) WithFileTree(tree FileTree) *TestEnvironment {
	env.t.Helper()
	createFileTree(env.t, env.FS, env.HomeDir, tree)
	return env
}

// WriteFile writes content at path, creating parents
func (env *TestEnvironment) WriteFile(path, content string) {
	env.t.Helper()
	if err := env.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := afero.WriteFile(env.FS, path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write file %s: %v", path, err)
	}
}

// ReadFile returns the content at path, failing the test when it is absent
func (env *TestEnvironment) ReadFile(path string) string {
	env.t.Helper()
	data, err := afero.ReadFile(env.FS, path)
	if err != nil {
		env.t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(data)
}

// Exists reports whether path exists
func (env *TestEnvironment) Exists(path string) bool {
	ok, _ := afero.Exists(env.FS, path)
	return ok
}

// Output returns and clears the captured report lines
func (env *TestEnvironment) Output() string {
	s := env.Out.String()
	env.Out.Reset()
	return s
}

// FileTree represents a directory structure for testing
type FileTree map[string]interface{}

// createFileTree recursively creates a file tree
func createFileTree(t *testing.T, fs afero.Fs, basePath string, tree FileTree) {
	t.Helper()

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			if err := fs.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
				t.Fatalf("Failed to create directory for %s: %v", fullPath, err)
			}
			if err := afero.WriteFile(fs, fullPath, []byte(v), 0644); err != nil {
				t.Fatalf("Failed to write file %s: %v", fullPath, err)
			}
		case FileTree:
			if err := fs.MkdirAll(fullPath, 0755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", fullPath, err)
			}
			createFileTree(t, fs, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}
