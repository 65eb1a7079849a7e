// Package archive gives read access to the dotfiles bundled into the binary.
//
// The bundle mirrors the repository layout: distribution.toml and .dotignore
// at the root, tracked files under config/<tool>/<file>. Two generated
// entries describe the build, BUILD_IDENTITY and NEWEST_FILE.
package archive

import (
	"io/fs"
	"strings"

	"github.com/arthur-debert/dotsync/pkg/paths"
)

// Well-known bundle keys
const (
	DistributionKey  = paths.DistributionFileName
	DotignoreKey     = paths.DotignoreFileName
	BuildIdentityKey = "BUILD_IDENTITY"
	NewestFileKey    = "NEWEST_FILE"
)

// Defaults reported when the bundle carries no build information
const (
	UnknownBuildIdentity = "00000000-00-000000"
	UnknownNewestFile    = "unknown"
)

// Archive is a read-only view over a bundle
type Archive struct {
	fsys fs.FS
}

// New wraps fsys, whose root is the bundle root
func New(fsys fs.FS) *Archive {
	return &Archive{fsys: fsys}
}

// FileBytes returns the bundled content stored under key
func (a *Archive) FileBytes(key string) ([]byte, bool) {
	key = strings.TrimPrefix(key, "/")
	if !fs.ValidPath(key) {
		return nil, false
	}
	data, err := fs.ReadFile(a.fsys, key)
	if err != nil {
		return nil, false
	}
	return data, true
}

// HasFile reports whether key is bundled
func (a *Archive) HasFile(key string) bool {
	info, err := fs.Stat(a.fsys, strings.TrimPrefix(key, "/"))
	return err == nil && !info.IsDir()
}

// DistributionBytes returns the bundled manifest, nil when absent
func (a *Archive) DistributionBytes() []byte {
	data, _ := a.FileBytes(DistributionKey)
	return data
}

// DotignoreBytes returns the bundled ignore file, nil when absent
func (a *Archive) DotignoreBytes() []byte {
	data, _ := a.FileBytes(DotignoreKey)
	return data
}

// HasEmbeddedFiles reports whether any tracked file is bundled
func (a *Archive) HasEmbeddedFiles() bool {
	return len(a.TrackedFiles()) > 0
}

// TrackedFiles lists the keys of every bundled tracked file
func (a *Archive) TrackedFiles() []string {
	var keys []string
	_ = fs.WalkDir(a.fsys, paths.RepoConfigDirName, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fs.SkipDir
		}
		if !d.IsDir() {
			keys = append(keys, path)
		}
		return nil
	})
	return keys
}

// BuildIdentity returns the YYYYMMDD-WW-HHMMSS stamp of the newest bundled file
func (a *Archive) BuildIdentity() string {
	return a.meta(BuildIdentityKey, UnknownBuildIdentity)
}

// NewestFile returns the path the build identity was derived from
func (a *Archive) NewestFile() string {
	return a.meta(NewestFileKey, UnknownNewestFile)
}

func (a *Archive) meta(key, fallback string) string {
	data, ok := a.FileBytes(key)
	if !ok {
		return fallback
	}
	if v := strings.TrimSpace(string(data)); v != "" {
		return v
	}
	return fallback
}
