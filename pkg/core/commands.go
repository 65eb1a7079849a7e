package core

import (
	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/filesystem"
	"github.com/arthur-debert/dotsync/pkg/logging"
	"github.com/arthur-debert/dotsync/pkg/operations"
)

// FileResult is the outcome of Status for one tracked file
type FileResult struct {
	Tool  string
	File  string
	State operations.FileState
}

// Sync copies every live file into the repository
func (a *App) Sync() error {
	if err := a.requireWritable(operations.Sync); err != nil {
		return err
	}
	op, err := a.preflight(true)
	if err != nil {
		return err
	}

	a.out.Header(MsgSyncHeader)
	return a.walk(operations.Sync, op.Sync)
}

// Install copies every repository file to its live location
func (a *App) Install() error {
	op, err := a.preflight(true)
	if err != nil {
		return err
	}

	a.out.Header(MsgInstallHeader)
	return a.walk(operations.Install, op.Install)
}

// Status compares every tracked pair and returns one result per file
func (a *App) Status() ([]FileResult, error) {
	op, err := a.preflight(true)
	if err != nil {
		return nil, err
	}

	a.out.Header(MsgStatusHeader)

	var results []FileResult
	err = a.walk(operations.Status, func(tool, file string) error {
		state, err := op.Status(tool, file)
		if err != nil {
			return err
		}
		results = append(results, FileResult{Tool: tool, File: file, State: state})
		return nil
	})
	return results, err
}

// Add starts tracking $HOME/.config/<tool>/<file>
func (a *App) Add(tool, file string) error {
	if err := a.requireWritable(operations.Add); err != nil {
		return err
	}
	op, err := a.preflight(true)
	if err != nil {
		return err
	}
	return op.Add(tool, file)
}

// Remove stops tracking <tool>/<file>
func (a *App) Remove(tool, file string) error {
	if err := a.requireWritable(operations.Remove); err != nil {
		return err
	}
	op, err := a.preflight(true)
	if err != nil {
		return err
	}
	return op.Remove(tool, file)
}

// walk runs fn on every tracked pair, tools in manifest order and files in
// declared order. Manifest errors abort the walk, per-file errors do not.
func (a *App) walk(kind operations.Kind, fn func(tool, file string) error) error {
	logger := logging.GetLogger("core.walk").With().Str("op", kind.String()).Logger()
	done := logging.LogOperationStart(logger, kind.String())
	defer done()

	tools, err := a.store.Tools()
	if err != nil {
		return err
	}

	var (
		total  int
		failed int
		first  error
	)
	for _, tool := range tools {
		files, err := a.store.Files(tool)
		if err != nil {
			return err
		}

		a.out.Info(MsgProcessingTool, tool)
		if err := a.ensureLiveSection(tool); err != nil {
			return err
		}

		for _, file := range files {
			total++
			if err := fn(tool, file); err != nil {
				failed++
				if first == nil {
					first = err
				}
				logger.Error().Err(err).Str("tool", tool).Str("file", file).Msg("File failed")
				a.out.Error(MsgFileFailed, kind, operations.Display(tool, file), errorMessage(err))
			}
		}
	}

	logger.Info().Int("tools", len(tools)).Int("files", total).Int("failed", failed).Msg("Walk finished")
	if failed > 0 {
		return errors.Wrapf(first, errors.GetErrorCode(first),
			"%s failed for %d of %d file(s)", kind, failed, total)
	}
	return nil
}

func (a *App) ensureLiveSection(tool string) error {
	dir := a.paths.LiveSectionDir(tool)
	exists, err := filesystem.Exists(a.fs, dir)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	a.out.Warning(MsgCreatingDirectory, dir)
	return filesystem.EnsureDir(a.fs, dir)
}

// errorMessage strips the code prefix from dotsync errors
func errorMessage(err error) string {
	var dsErr *errors.DotsyncError
	if errors.As(err, &dsErr) {
		return dsErr.Message
	}
	return err.Error()
}
