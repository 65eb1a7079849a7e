package distribution

import (
	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/filesystem"
	"github.com/arthur-debert/dotsync/pkg/logging"
	"github.com/spf13/afero"
)

// Store is the read and edit surface of a manifest backend
type Store interface {
	// Tools lists tool names, metadata tables excluded
	Tools() ([]string, error)
	// Files lists the files of tool in declared order
	Files(tool string) ([]string, error)
	Add(tool, file string) error
	Remove(tool, file string) error
}

// FileStore is the writable manifest kept in the repository.
// Every call reads the file afresh.
type FileStore struct {
	fs   afero.Fs
	path string
}

// NewFileStore returns a store for the manifest at path
func NewFileStore(fs afero.Fs, path string) *FileStore {
	return &FileStore{fs: fs, path: path}
}

// Load reads and parses the manifest
func (s *FileStore) Load() (*Manifest, error) {
	exists, err := filesystem.Exists(s.fs, s.path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.New(errors.ErrDistributionNotFound, "Distribution file not found").
			WithDetail("path", s.path)
	}

	data, err := filesystem.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Tools implements Store
func (s *FileStore) Tools() ([]string, error) {
	m, err := s.Load()
	if err != nil {
		return nil, err
	}
	return m.Tools(), nil
}

// Files implements Store
func (s *FileStore) Files(tool string) ([]string, error) {
	m, err := s.Load()
	if err != nil {
		return nil, err
	}
	return m.Files(tool), nil
}

// Add records file under tool. A missing or unreadable manifest is replaced
// by one holding only the new entry.
func (s *FileStore) Add(tool, file string) error {
	logger := logging.GetLogger("distribution")

	m, err := s.Load()
	if err != nil {
		logger.Debug().Err(err).Str("path", s.path).Msg("Starting from an empty distribution file")
		m = New()
	}

	if !m.Add(tool, file) {
		logger.Debug().Str("tool", tool).Str("file", file).Msg("Entry already tracked")
	}
	return s.Save(m)
}

// Remove drops file from tool. The tool must exist.
func (s *FileStore) Remove(tool, file string) error {
	m, err := s.Load()
	if err != nil {
		return err
	}
	if err := m.Remove(tool, file); err != nil {
		return err
	}
	return s.Save(m)
}

// Save serializes m and atomically replaces the manifest
func (s *FileStore) Save(m *Manifest) error {
	data, err := m.Serialize()
	if err != nil {
		return err
	}
	if err := filesystem.EnsureParent(s.fs, s.path); err != nil {
		return err
	}
	if err := filesystem.WriteFileAtomic(s.fs, s.path, data, filesystem.FilePerm); err != nil {
		return err
	}

	logger := logging.GetLogger("distribution")
	logger.Debug().
		Str("path", s.path).
		Int("tools", len(m.Tools())).
		Msg("Distribution file written")
	return nil
}

// EmbeddedStore serves a manifest bundled into the binary
type EmbeddedStore struct {
	manifest *Manifest
}

// NewEmbeddedStore parses bundled manifest bytes
func NewEmbeddedStore(data []byte) (*EmbeddedStore, error) {
	if len(data) == 0 {
		return nil, errors.New(errors.ErrDistributionNotFound, "No embedded distribution file")
	}
	m, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return &EmbeddedStore{manifest: m}, nil
}

// Tools implements Store
func (s *EmbeddedStore) Tools() ([]string, error) {
	return s.manifest.Tools(), nil
}

// Files implements Store
func (s *EmbeddedStore) Files(tool string) ([]string, error) {
	return s.manifest.Files(tool), nil
}

// Add always fails, the bundled manifest is read-only
func (s *EmbeddedStore) Add(tool, file string) error {
	return errReadOnly()
}

// Remove always fails, the bundled manifest is read-only
func (s *EmbeddedStore) Remove(tool, file string) error {
	return errReadOnly()
}

func errReadOnly() error {
	return errors.New(errors.ErrInvalidCommand, "Cannot modify distribution file in embedded mode")
}

var (
	_ Store = (*FileStore)(nil)
	_ Store = (*EmbeddedStore)(nil)
)
