package archive

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/arthur-debert/dotsync/pkg/distribution"
	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/filesystem"
	"github.com/arthur-debert/dotsync/pkg/logging"
	"github.com/arthur-debert/dotsync/pkg/paths"
	"github.com/spf13/afero"
)

// placeholder keeps the bundle directory present for the embed directive
const placeholder = ".keep"

// BuildResult describes a generated bundle
type BuildResult struct {
	// Bundled lists the archive keys of the tracked files that were copied
	Bundled []string
	// Missing lists repository paths listed in the manifest but absent
	Missing    []string
	Identity   string
	NewestFile string
}

// FormatIdentity renders t as YYYYMMDD-WW-HHMMSS in UTC with the ISO week
func FormatIdentity(t time.Time) string {
	t = t.UTC()
	_, week := t.ISOWeek()
	return fmt.Sprintf("%04d%02d%02d-%02d-%02d%02d%02d",
		t.Year(), int(t.Month()), t.Day(), week, t.Hour(), t.Minute(), t.Second())
}

// Build snapshots the repository described by p into outDir on dst.
// Files listed in the manifest but missing in the repository are skipped.
func Build(src afero.Fs, p paths.Paths, dst afero.Fs, outDir string) (*BuildResult, error) {
	logger := logging.GetLogger("archive")

	manifestPath := p.DistributionFile()
	data, err := filesystem.ReadFile(src, manifestPath)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDistributionNotFound, "Distribution file not found").
			WithDetail("path", manifestPath)
	}
	manifest, err := distribution.Parse(data)
	if err != nil {
		return nil, err
	}

	if err := reset(dst, outDir); err != nil {
		return nil, err
	}

	result := &BuildResult{Identity: UnknownBuildIdentity, NewestFile: UnknownNewestFile}
	var newest time.Time
	track := func(path string) {
		info, err := src.Stat(path)
		if err != nil {
			return
		}
		if info.ModTime().After(newest) {
			newest = info.ModTime()
			result.NewestFile = path
		}
	}

	if err := write(dst, outDir, DistributionKey, data); err != nil {
		return nil, err
	}
	track(manifestPath)

	if filesystem.IsFile(src, p.DotignoreFile()) {
		ignoreData, err := filesystem.ReadFile(src, p.DotignoreFile())
		if err != nil {
			return nil, err
		}
		if err := write(dst, outDir, DotignoreKey, ignoreData); err != nil {
			return nil, err
		}
	}

	for _, tool := range manifest.Tools() {
		for _, file := range manifest.Files(tool) {
			repoPath := p.RepoFile(tool, file)
			if !filesystem.IsFile(src, repoPath) {
				logger.Warn().Str("path", repoPath).Msg("File not found, not bundled")
				result.Missing = append(result.Missing, repoPath)
				continue
			}

			content, err := filesystem.ReadFile(src, repoPath)
			if err != nil {
				return nil, err
			}
			key := paths.ArchiveKey(tool, file)
			if err := write(dst, outDir, key, content); err != nil {
				return nil, err
			}
			result.Bundled = append(result.Bundled, key)
			track(repoPath)
		}
	}

	if !newest.IsZero() {
		result.Identity = FormatIdentity(newest)
	}
	if err := write(dst, outDir, BuildIdentityKey, []byte(result.Identity+"\n")); err != nil {
		return nil, err
	}
	if err := write(dst, outDir, NewestFileKey, []byte(result.NewestFile+"\n")); err != nil {
		return nil, err
	}

	logger.Info().
		Int("bundled", len(result.Bundled)).
		Int("missing", len(result.Missing)).
		Str("identity", result.Identity).
		Msg("Bundle generated")
	return result, nil
}

// reset empties outDir, leaving only the placeholder
func reset(fs afero.Fs, outDir string) error {
	if err := fs.RemoveAll(outDir); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot clear %s", outDir)
	}
	if err := filesystem.EnsureDir(fs, outDir); err != nil {
		return err
	}
	return filesystem.WriteFile(fs, filepath.Join(outDir, placeholder), nil, filesystem.FilePerm)
}

func write(fs afero.Fs, outDir, key string, data []byte) error {
	target := filepath.Join(outDir, filepath.FromSlash(key))
	if err := filesystem.EnsureParent(fs, target); err != nil {
		return err
	}
	return filesystem.WriteFile(fs, target, data, filesystem.FilePerm)
}
