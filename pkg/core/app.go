package core

import (
	"github.com/arthur-debert/dotsync/pkg/archive"
	"github.com/arthur-debert/dotsync/pkg/config"
	"github.com/arthur-debert/dotsync/pkg/distribution"
	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/filesystem"
	"github.com/arthur-debert/dotsync/pkg/ignore"
	"github.com/arthur-debert/dotsync/pkg/logging"
	"github.com/arthur-debert/dotsync/pkg/operations"
	"github.com/arthur-debert/dotsync/pkg/output"
	"github.com/arthur-debert/dotsync/pkg/paths"
	"github.com/spf13/afero"
)

// Options configures an App
type Options struct {
	FS    afero.Fs
	Paths paths.Paths
	// Source selects the repository backend, empty means filesystem
	Source config.Source
	// Archive is the bundled snapshot used by the embedded source
	Archive  *archive.Archive
	Reporter *output.Reporter
}

// App runs commands against one home directory
type App struct {
	fs      afero.Fs
	paths   paths.Paths
	source  config.Source
	archive *archive.Archive
	out     *output.Reporter

	store distribution.Store
	repo  operations.RepoSource
}

// New resolves the source and builds the backends. The auto source picks
// the archive when the repository root is missing and the binary carries
// bundled files.
func New(opts Options) (*App, error) {
	logger := logging.GetLogger("core")

	a := &App{
		fs:      opts.FS,
		paths:   opts.Paths,
		archive: opts.Archive,
		out:     opts.Reporter,
	}

	source, err := a.resolveSource(opts.Source)
	if err != nil {
		return nil, err
	}
	a.source = source

	switch source {
	case config.SourceEmbedded:
		if a.archive == nil {
			return nil, errors.New(errors.ErrDistributionNotFound, "No embedded distribution file")
		}
		store, err := distribution.NewEmbeddedStore(a.archive.DistributionBytes())
		if err != nil {
			return nil, err
		}
		a.store = store
		a.repo = operations.NewArchiveSource(a.archive)
	default:
		a.store = distribution.NewFileStore(a.fs, a.paths.DistributionFile())
		a.repo = operations.NewFilesystemSource(a.fs, a.paths)
	}

	logger.Debug().
		Str("source", string(a.source)).
		Str("repo", a.paths.RepoDir()).
		Msg("App created")
	return a, nil
}

func (a *App) resolveSource(requested config.Source) (config.Source, error) {
	switch requested {
	case "", config.SourceFilesystem:
		return config.SourceFilesystem, nil
	case config.SourceEmbedded:
		return config.SourceEmbedded, nil
	case config.SourceAuto:
		repoExists, err := filesystem.Exists(a.fs, a.paths.RepoDir())
		if err != nil {
			return "", err
		}
		if !repoExists && a.archive != nil && a.archive.HasEmbeddedFiles() {
			logger := logging.GetLogger("core")
			logger.Info().Msg("Repository not found, using embedded files")
			return config.SourceEmbedded, nil
		}
		return config.SourceFilesystem, nil
	default:
		return "", errors.Newf(errors.ErrInvalidCommand, "Unknown source: %s", requested)
	}
}

// Source returns the resolved backend
func (a *App) Source() config.Source {
	return a.source
}

// Embedded reports whether repository reads come from the archive
func (a *App) Embedded() bool {
	return a.source == config.SourceEmbedded
}

// ManifestLocation is the manifest path shown to the user
func (a *App) ManifestLocation() string {
	if a.Embedded() {
		return "embedded:" + archive.DistributionKey
	}
	return a.paths.DistributionFile()
}

// preflight validates the layout and returns an operator ready to run.
// Precheck reports a missing manifest itself and skips that check.
func (a *App) preflight(requireManifest bool) (*operations.Operator, error) {
	logger := logging.GetLogger("core.preflight")

	if !a.Embedded() {
		repoExists, err := filesystem.Exists(a.fs, a.paths.RepoDir())
		if err != nil {
			return nil, err
		}
		if !repoExists {
			return nil, errors.Newf(errors.ErrRepoNotFound, "Repository not found: %s", a.paths.RepoDir())
		}

		if requireManifest {
			manifestExists, err := filesystem.Exists(a.fs, a.paths.DistributionFile())
			if err != nil {
				return nil, err
			}
			if !manifestExists {
				return nil, errors.Newf(errors.ErrDistributionNotFound,
					"Distribution file not found: %s", a.paths.DistributionFile())
			}
		}
	}

	configExists, err := filesystem.Exists(a.fs, a.paths.ConfigDir())
	if err != nil {
		return nil, err
	}
	if !configExists {
		a.out.Warning(MsgCreatingConfigDir, a.paths.ConfigDir())
		if err := filesystem.EnsureDir(a.fs, a.paths.ConfigDir()); err != nil {
			return nil, err
		}
	}

	matcher, err := a.loadIgnore()
	if err != nil {
		return nil, err
	}
	logger.Debug().Strs("patterns", matcher.Patterns()).Msg("Preflight done")

	return operations.New(operations.Options{
		FS:       a.fs,
		Paths:    a.paths,
		Ignore:   matcher,
		Store:    a.store,
		Repo:     a.repo,
		Reporter: a.out,
	}), nil
}

func (a *App) loadIgnore() (*ignore.Matcher, error) {
	if a.Embedded() {
		return ignore.LoadEmbedded(a.archive.DotignoreBytes())
	}
	if _, err := ignore.WriteDefault(a.fs, a.paths.DotignoreFile()); err != nil {
		return nil, err
	}
	return ignore.Load(a.fs, a.paths.DotignoreFile())
}

func (a *App) requireWritable(kind operations.Kind) error {
	if !a.Embedded() {
		return nil
	}
	return errors.Newf(errors.ErrInvalidCommand, "Cannot %s in embedded mode", kind)
}
