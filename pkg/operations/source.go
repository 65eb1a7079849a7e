package operations

import (
	"bytes"

	"github.com/arthur-debert/dotsync/pkg/archive"
	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/filesystem"
	"github.com/arthur-debert/dotsync/pkg/paths"
	"github.com/spf13/afero"
)

// RepoSource is the repository side of every file pair
type RepoSource interface {
	// Location is the human readable place of the repository copy
	Location(section, file string) string
	Exists(section, file string) (bool, error)
	// CopyTo writes the repository copy to dst on fs
	CopyTo(fs afero.Fs, section, file, dst string) error
	// SameAs compares the repository copy with path on fs
	SameAs(fs afero.Fs, section, file, path string) (bool, error)
	// Writable reports whether sync and add may write to this source
	Writable() bool
}

// FilesystemSource reads repository copies from the working copy
type FilesystemSource struct {
	fs    afero.Fs
	paths paths.Paths
}

// NewFilesystemSource returns the working copy source
func NewFilesystemSource(fs afero.Fs, p paths.Paths) *FilesystemSource {
	return &FilesystemSource{fs: fs, paths: p}
}

// Location implements RepoSource
func (s *FilesystemSource) Location(section, file string) string {
	return s.paths.RepoFile(section, file)
}

// Exists implements RepoSource
func (s *FilesystemSource) Exists(section, file string) (bool, error) {
	return filesystem.Exists(s.fs, s.paths.RepoFile(section, file))
}

// CopyTo implements RepoSource
func (s *FilesystemSource) CopyTo(fs afero.Fs, section, file, dst string) error {
	return filesystem.CopyFile(fs, s.paths.RepoFile(section, file), dst)
}

// SameAs implements RepoSource
func (s *FilesystemSource) SameAs(fs afero.Fs, section, file, path string) (bool, error) {
	return filesystem.SameContent(fs, s.paths.RepoFile(section, file), path)
}

// Writable implements RepoSource
func (s *FilesystemSource) Writable() bool {
	return true
}

// ArchiveSource reads repository copies from a bundled snapshot
type ArchiveSource struct {
	archive *archive.Archive
}

// NewArchiveSource returns a source backed by a
func NewArchiveSource(a *archive.Archive) *ArchiveSource {
	return &ArchiveSource{archive: a}
}

// Location implements RepoSource
func (s *ArchiveSource) Location(section, file string) string {
	return "embedded:" + paths.ArchiveKey(section, file)
}

// Exists implements RepoSource
func (s *ArchiveSource) Exists(section, file string) (bool, error) {
	return s.archive.HasFile(paths.ArchiveKey(section, file)), nil
}

// CopyTo implements RepoSource
func (s *ArchiveSource) CopyTo(fs afero.Fs, section, file, dst string) error {
	data, err := s.read(section, file)
	if err != nil {
		return err
	}
	return filesystem.WriteFile(fs, dst, data, filesystem.FilePerm)
}

// SameAs implements RepoSource
func (s *ArchiveSource) SameAs(fs afero.Fs, section, file, path string) (bool, error) {
	data, err := s.read(section, file)
	if err != nil {
		return false, err
	}
	current, err := filesystem.ReadFile(fs, path)
	if err != nil {
		return false, err
	}
	return bytes.Equal(data, current), nil
}

// Writable implements RepoSource
func (s *ArchiveSource) Writable() bool {
	return false
}

func (s *ArchiveSource) read(section, file string) ([]byte, error) {
	key := paths.ArchiveKey(section, file)
	data, ok := s.archive.FileBytes(key)
	if !ok {
		return nil, errors.Newf(errors.ErrFileNotFound, "File not found in embedded archive: %s", key)
	}
	return data, nil
}

var (
	_ RepoSource = (*FilesystemSource)(nil)
	_ RepoSource = (*ArchiveSource)(nil)
)
