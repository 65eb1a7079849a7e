package core

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/arthur-debert/dotsync/pkg/distribution"
	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/filesystem"
	"github.com/arthur-debert/dotsync/pkg/logging"
)

// PrecheckResult summarizes a valid manifest
type PrecheckResult struct {
	Location string
	Lines    int
	Tools    []string
}

// Precheck validates the manifest and reports its size
func (a *App) Precheck() (*PrecheckResult, error) {
	logger := logging.GetLogger("core.precheck")

	if _, err := a.preflight(false); err != nil {
		return nil, err
	}

	a.out.Header(MsgPrecheckHeader)

	location := a.ManifestLocation()
	a.out.Label(MsgDistributionFile)
	a.out.Plain("%s", location)

	data, found, err := a.manifestBytes()
	if err != nil {
		return nil, err
	}
	if !found {
		a.out.Error(MsgDistributionMissing)
		return nil, errors.Newf(errors.ErrDistributionNotFound, "Distribution file not found: %s", location)
	}
	a.out.Success(MsgDistributionExists)

	a.out.Label(MsgCheckingSyntax)
	manifest, err := distribution.Parse(data)
	if err != nil {
		a.out.Error(MsgInvalidSyntax, errorMessage(err))
		return nil, err
	}
	a.out.Success(MsgValidSyntax)

	result := &PrecheckResult{
		Location: location,
		Lines:    countLines(data),
		Tools:    manifest.Tools(),
	}
	a.out.KeyValue(MsgLineCountKey, fmt.Sprintf(MsgLineCountValue, result.Lines))
	a.out.KeyValue(MsgTotalToolsKey, strconv.Itoa(len(result.Tools)))
	a.out.Blank()
	a.out.Success(MsgPrecheckPassed)

	logger.Info().
		Str("location", location).
		Int("lines", result.Lines).
		Int("tools", len(result.Tools)).
		Msg("Precheck passed")
	return result, nil
}

func (a *App) manifestBytes() ([]byte, bool, error) {
	if a.Embedded() {
		data := a.archive.DistributionBytes()
		return data, data != nil, nil
	}

	path := a.paths.DistributionFile()
	exists, err := filesystem.Exists(a.fs, path)
	if err != nil || !exists {
		return nil, false, err
	}
	data, err := filesystem.ReadFile(a.fs, path)
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// countLines counts lines the way editors do: a trailing newline does not
// start another line
func countLines(data []byte) int {
	if len(data) == 0 {
		return 0
	}
	n := bytes.Count(data, []byte("\n"))
	if data[len(data)-1] != '\n' {
		n++
	}
	return n
}
