package filesystem

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/spf13/afero"
)

const (
	// DirPerm is used for every directory created on demand
	DirPerm os.FileMode = 0755

	// FilePerm is used for files created without a source mode
	FilePerm os.FileMode = 0644
)

// NewOS returns the OS-backed filesystem
func NewOS() afero.Fs {
	return afero.NewOsFs()
}

// NewMemory returns an in-memory filesystem
func NewMemory() afero.Fs {
	return afero.NewMemMapFs()
}

// Exists reports whether path exists. Only unexpected stat failures are returned.
func Exists(fs afero.Fs, path string) (bool, error) {
	ok, err := afero.Exists(fs, path)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path)
	}
	return ok, nil
}

// IsFile reports whether path exists and is a regular file
func IsFile(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && !info.IsDir()
}

// EnsureDir creates dir and any missing parents
func EnsureDir(fs afero.Fs, dir string) error {
	if err := fs.MkdirAll(dir, DirPerm); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory %s", dir)
	}
	return nil
}

// EnsureParent creates the parent directory of path
func EnsureParent(fs afero.Fs, path string) error {
	return EnsureDir(fs, filepath.Dir(path))
}

// CopyFile copies the bytes of src over dst, creating dst if needed.
// A new dst takes the permission bits of src.
func CopyFile(fs afero.Fs, src, dst string) error {
	in, err := fs.Open(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot open %s", src)
	}
	defer func() { _ = in.Close() }()

	perm := FilePerm
	if info, err := in.Stat(); err == nil {
		perm = info.Mode().Perm()
	}

	out, err := fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot open %s for writing", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot copy %s to %s", src, dst)
	}
	if err := out.Close(); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot close %s", dst)
	}
	return nil
}

// WriteFile writes data to path, truncating any previous content
func WriteFile(fs afero.Fs, path string, data []byte, perm os.FileMode) error {
	if err := afero.WriteFile(fs, path, data, perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", path)
	}
	return nil
}

// WriteFileAtomic replaces path with data through a temporary sibling and a rename
func WriteFileAtomic(fs afero.Fs, path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := afero.TempFile(fs, dir, ".dotsync-tmp-*")
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot create temporary file in %s", dir)
	}
	tmpPath := tmp.Name()

	cleanup := func() { _ = fs.Remove(tmpPath) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", tmpPath)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot close %s", tmpPath)
	}
	if err := fs.Chmod(tmpPath, perm); err != nil {
		cleanup()
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot chmod %s", tmpPath)
	}
	if err := fs.Rename(tmpPath, path); err != nil {
		cleanup()
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot replace %s", path)
	}
	return nil
}

// ReadFile reads the whole file at path
func ReadFile(fs afero.Fs, path string) ([]byte, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path)
	}
	return data, nil
}

// SameContent compares two files byte for byte, short-circuiting on size
func SameContent(fs afero.Fs, a, b string) (bool, error) {
	infoA, err := fs.Stat(a)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", a)
	}
	infoB, err := fs.Stat(b)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", b)
	}
	if infoA.Size() != infoB.Size() {
		return false, nil
	}

	dataA, err := ReadFile(fs, a)
	if err != nil {
		return false, err
	}
	return EqualsFile(fs, b, dataA)
}

// EqualsFile compares the content of path against data
func EqualsFile(fs afero.Fs, path string, data []byte) (bool, error) {
	current, err := ReadFile(fs, path)
	if err != nil {
		return false, err
	}
	return bytes.Equal(current, data), nil
}
