package paths

import (
	"os"
	"strings"

	"github.com/arthur-debert/dotsync/pkg/errors"
)

// EnvHome is the standard home directory variable
const EnvHome = "HOME"

// Fixed layout under the home directory. These are not user-configurable.
const (
	// ReposDirName and DotfilesDirName locate the working copy under $HOME
	ReposDirName    = "repos"
	DotfilesDirName = "dotfiles"

	// LiveConfigDirName is the live configuration root under $HOME
	LiveConfigDirName = ".config"

	// RepoConfigDirName holds the tracked copies inside the repository
	RepoConfigDirName = "config"

	// DistributionFileName is the manifest file name
	DistributionFileName = "distribution.toml"

	// DotignoreFileName is the ignore pattern file name
	DotignoreFileName = ".dotignore"
)

const sep = "/"

// Paths resolves the canonical dotsync locations
type Paths interface {
	Home() string
	RepoDir() string
	ConfigDir() string
	DistributionFile() string
	DotignoreFile() string
	RepoSectionDir(section string) string
	LiveSectionDir(section string) string
	RepoFile(section, file string) string
	LiveFile(section, file string) string
}

type paths struct {
	home             string
	repoDir          string
	configDir        string
	distributionFile string
	dotignoreFile    string
}

// New creates a Paths instance rooted at the given home directory.
// An empty home cannot be resolved and yields a REPO_NOT_FOUND error.
func New(home string) (Paths, error) {
	home = strings.TrimRight(home, sep)
	if strings.TrimSpace(home) == "" {
		return nil, errors.New(errors.ErrRepoNotFound, "Home directory not found")
	}

	repoDir := join(home, ReposDirName, DotfilesDirName)
	return &paths{
		home:             home,
		repoDir:          repoDir,
		configDir:        join(home, LiveConfigDirName),
		distributionFile: join(repoDir, DistributionFileName),
		dotignoreFile:    join(repoDir, DotignoreFileName),
	}, nil
}

// FromEnv creates a Paths instance from the current user's home directory
func FromEnv() (Paths, error) {
	home, err := GetHomeDirectory()
	if err != nil {
		return nil, err
	}
	return New(home)
}

// GetHomeDirectory returns the user's home directory.
// HOME wins when set, otherwise the platform lookup is used.
func GetHomeDirectory() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}

	home, err := os.UserHomeDir()
	if err == nil && home != "" {
		return home, nil
	}

	return "", errors.Wrap(err, errors.ErrRepoNotFound, "Home directory not found")
}

func join(parts ...string) string {
	return strings.Join(parts, sep)
}

// Home returns the home directory the paths were derived from
func (p *paths) Home() string {
	return p.home
}

// RepoDir returns the repository root
func (p *paths) RepoDir() string {
	return p.repoDir
}

// ConfigDir returns the live configuration root
func (p *paths) ConfigDir() string {
	return p.configDir
}

// DistributionFile returns the manifest path
func (p *paths) DistributionFile() string {
	return p.distributionFile
}

// DotignoreFile returns the ignore file path
func (p *paths) DotignoreFile() string {
	return p.dotignoreFile
}

// RepoSectionDir returns $REPO/config/<section>
func (p *paths) RepoSectionDir(section string) string {
	return join(p.repoDir, RepoConfigDirName, section)
}

// LiveSectionDir returns $HOME/.config/<section>
func (p *paths) LiveSectionDir(section string) string {
	return join(p.configDir, section)
}

// RepoFile returns the tracked copy of file within section
func (p *paths) RepoFile(section, file string) string {
	return join(p.RepoSectionDir(section), file)
}

// LiveFile returns the live copy of file within section
func (p *paths) LiveFile(section, file string) string {
	return join(p.LiveSectionDir(section), file)
}

// ArchiveKey returns the key under which a tracked file is bundled
func ArchiveKey(section, file string) string {
	return join(RepoConfigDirName, section, file)
}
