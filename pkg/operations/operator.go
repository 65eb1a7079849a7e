package operations

import (
	"github.com/arthur-debert/dotsync/pkg/distribution"
	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/filesystem"
	"github.com/arthur-debert/dotsync/pkg/ignore"
	"github.com/arthur-debert/dotsync/pkg/logging"
	"github.com/arthur-debert/dotsync/pkg/output"
	"github.com/arthur-debert/dotsync/pkg/paths"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Options wires an Operator to its collaborators
type Options struct {
	FS       afero.Fs
	Paths    paths.Paths
	Ignore   *ignore.Matcher
	Store    distribution.Store
	Repo     RepoSource
	Reporter *output.Reporter
}

// Operator executes one operation on one (tool, file) pair
type Operator struct {
	fs     afero.Fs
	paths  paths.Paths
	ignore *ignore.Matcher
	store  distribution.Store
	repo   RepoSource
	out    *output.Reporter
}

// New creates an Operator. A nil Repo defaults to the working copy.
func New(opts Options) *Operator {
	repo := opts.Repo
	if repo == nil {
		repo = NewFilesystemSource(opts.FS, opts.Paths)
	}
	matcher := opts.Ignore
	if matcher == nil {
		matcher = ignore.Default()
	}
	return &Operator{
		fs:     opts.FS,
		paths:  opts.Paths,
		ignore: matcher,
		store:  opts.Store,
		repo:   repo,
		out:    opts.Reporter,
	}
}

func (o *Operator) logger(kind Kind, section, file string) zerolog.Logger {
	return logging.GetLogger("operations").With().
		Str("op", kind.String()).
		Str("tool", section).
		Str("file", file).
		Logger()
}

// skipIgnored warns and reports true when file matches an ignore pattern
func (o *Operator) skipIgnored(kind Kind, section, file string) bool {
	if !o.ignore.IsIgnored(file) {
		return false
	}
	logger := o.logger(kind, section, file)
	logger.Debug().Msg("Skipping ignored file")
	o.out.Warning(MsgIgnored, Display(section, file))
	return true
}

func (o *Operator) requireWritable(kind Kind) error {
	if !kind.Writes() || o.repo.Writable() {
		return nil
	}
	return errors.Newf(errors.ErrInvalidCommand, "Cannot %s in embedded mode", kind)
}

// Install copies the repository copy over the live copy.
// A missing repository copy is a warning, not an error.
func (o *Operator) Install(section, file string) error {
	if o.skipIgnored(Install, section, file) {
		return nil
	}
	display := Display(section, file)

	exists, err := o.repo.Exists(section, file)
	if err != nil {
		return err
	}
	if !exists {
		o.out.Warning(MsgRepoNotFound, display)
		return nil
	}

	live := o.paths.LiveFile(section, file)
	if err := filesystem.EnsureParent(o.fs, live); err != nil {
		return err
	}
	if err := o.repo.CopyTo(o.fs, section, file, live); err != nil {
		return err
	}

	logger := o.logger(Install, section, file)
	logger.Debug().
		Str("from", o.repo.Location(section, file)).
		Str("to", live).
		Msg("Installed")
	o.out.Success(MsgInstalled, display)
	return nil
}

// Sync copies the live copy over the repository copy.
// A missing live copy is a warning, not an error.
func (o *Operator) Sync(section, file string) error {
	if o.skipIgnored(Sync, section, file) {
		return nil
	}
	if err := o.requireWritable(Sync); err != nil {
		return err
	}
	display := Display(section, file)

	live := o.paths.LiveFile(section, file)
	exists, err := filesystem.Exists(o.fs, live)
	if err != nil {
		return err
	}
	if !exists {
		o.out.Warning(MsgLocalNotFound, display)
		return nil
	}

	repo := o.paths.RepoFile(section, file)
	if err := filesystem.EnsureParent(o.fs, repo); err != nil {
		return err
	}
	if err := filesystem.CopyFile(o.fs, live, repo); err != nil {
		return err
	}

	logger := o.logger(Sync, section, file)
	logger.Debug().Str("to", repo).Msg("Synced")
	o.out.Success(MsgSynced, display)
	return nil
}

// Status compares the two copies. It never writes.
func (o *Operator) Status(section, file string) (FileState, error) {
	if o.skipIgnored(Status, section, file) {
		return StateIgnored, nil
	}
	display := Display(section, file)

	inRepo, err := o.repo.Exists(section, file)
	if err != nil {
		return StateMissingInRepo, err
	}
	if !inRepo {
		o.out.Error(MsgMissingInRepo, display)
		return StateMissingInRepo, nil
	}

	live := o.paths.LiveFile(section, file)
	installed, err := filesystem.Exists(o.fs, live)
	if err != nil {
		return StateNotInstalled, err
	}
	if !installed {
		o.out.Warning(MsgNotInstalled, display)
		return StateNotInstalled, nil
	}

	same, err := o.repo.SameAs(o.fs, section, file, live)
	if err != nil {
		return StateModified, err
	}
	if same {
		o.out.Success(MsgIdentical, display)
		return StateIdentical, nil
	}
	o.out.Modified(MsgModified, display)
	return StateModified, nil
}

// Add starts tracking a live file: it is recorded in the manifest and copied
// into the repository.
func (o *Operator) Add(section, file string) error {
	if o.skipIgnored(Add, section, file) {
		return nil
	}
	if err := o.requireWritable(Add); err != nil {
		return err
	}

	live := o.paths.LiveFile(section, file)
	if !filesystem.IsFile(o.fs, live) {
		return errors.Newf(errors.ErrFileNotFound, "File not found: %s", live)
	}

	if err := o.store.Add(section, file); err != nil {
		return err
	}

	repo := o.paths.RepoFile(section, file)
	if err := filesystem.EnsureDir(o.fs, o.paths.RepoSectionDir(section)); err != nil {
		return err
	}
	if err := filesystem.EnsureParent(o.fs, repo); err != nil {
		return err
	}
	if err := filesystem.CopyFile(o.fs, live, repo); err != nil {
		return err
	}

	logger := o.logger(Add, section, file)
	logger.Info().Str("repo", repo).Msg("File added")
	o.out.Success(MsgAdded, Display(section, file))
	return nil
}

// Remove stops tracking a file. The repository copy is left on disk and the
// user is shown the command that deletes it.
func (o *Operator) Remove(section, file string) error {
	if o.skipIgnored(Remove, section, file) {
		return nil
	}
	if err := o.requireWritable(Remove); err != nil {
		return err
	}

	if err := o.store.Remove(section, file); err != nil {
		return err
	}
	o.out.Info(MsgRemoved, Display(section, file))

	repo := o.paths.RepoFile(section, file)
	exists, err := filesystem.Exists(o.fs, repo)
	if err != nil {
		return err
	}
	if exists {
		o.out.Warning(MsgRemoveHint, repo)
		o.out.Command(RemoveCommand(repo))
	}

	logger := o.logger(Remove, section, file)
	logger.Info().Bool("repoCopyLeft", exists).Msg("File removed")
	return nil
}

// RemoveCommand returns the shell command deleting path
func RemoveCommand(path string) string {
	return shellquote.Join("rm", path)
}
