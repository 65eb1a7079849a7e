// Package ignore implements the .dotignore matcher.
//
// An ignore file is newline-delimited text. Blank lines and lines starting
// with '#' are skipped; every other line is a shell-style glob (*, ?, [...])
// matched against the basename of a tracked file name. Directories in the
// file name never take part in matching.
package ignore

import (
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/filesystem"
	"github.com/arthur-debert/dotsync/pkg/logging"
	"github.com/gobwas/glob"
	"github.com/spf13/afero"
)

// DefaultContent is written verbatim when the ignore file does not exist
const DefaultContent = `# Add files to ignore when syncing
# Each line is a glob pattern matched against the basename of files
*history
*_history
*id_rsa*
*authorized_keys*
*known_hosts*
*htop
*netrc
*oauth*
*robrc
*token*
*.cert
*.key
*.pem
*.crt
*credentials*
*client_secret*
`

// literalEscaper keeps the characters glob gives extra meaning to literal, so only
// *, ? and [...] are special
var literalEscaper = strings.NewReplacer(`\`, `\\`, "{", `\{`, "}", `\}`)

// Pattern is one compiled ignore line
type Pattern struct {
	Source string
	glob   glob.Glob
}

// Matches reports whether the pattern matches name exactly
func (p Pattern) Matches(name string) bool {
	return p.glob.Match(name)
}

// Matcher answers whether a file name is ignored
type Matcher struct {
	patterns []Pattern
}

// Parse compiles ignore file content. Any invalid pattern fails the whole parse.
func Parse(content []byte) (*Matcher, error) {
	if !utf8.Valid(content) {
		return nil, errors.New(errors.ErrIgnorePattern, "ignore file is not valid UTF-8")
	}

	m := &Matcher{}
	for i, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		g, err := glob.Compile(literalEscaper.Replace(line))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrIgnorePattern, "invalid pattern %q", line).
				WithDetail("line", i+1)
		}
		m.patterns = append(m.patterns, Pattern{Source: line, glob: g})
	}
	return m, nil
}

// Default returns the matcher for DefaultContent
func Default() *Matcher {
	m, err := Parse([]byte(DefaultContent))
	if err != nil {
		// DefaultContent is a constant, a failure here is a programming error
		panic(err)
	}
	return m
}

// Load reads the ignore file at path. A missing file yields the default patterns.
func Load(fs afero.Fs, path string) (*Matcher, error) {
	exists, err := filesystem.Exists(fs, path)
	if err != nil {
		return nil, err
	}
	logger := logging.GetLogger("ignore")
	if !exists {
		logger.Debug().Str("path", path).Msg("No ignore file, using default patterns")
		return Default(), nil
	}

	data, err := filesystem.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}

	m, err := Parse(data)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("path", path).Int("patterns", len(m.patterns)).Msg("Loaded ignore file")
	return m, nil
}

// LoadEmbedded parses bundled ignore content. Empty content yields the default patterns.
func LoadEmbedded(data []byte) (*Matcher, error) {
	if len(data) == 0 {
		logger := logging.GetLogger("ignore")
		logger.Debug().Msg("No bundled ignore file, using default patterns")
		return Default(), nil
	}
	return Parse(data)
}

// WriteDefault materializes DefaultContent at path unless a file is already there.
// It reports whether the file was created.
func WriteDefault(fs afero.Fs, path string) (bool, error) {
	exists, err := filesystem.Exists(fs, path)
	if err != nil || exists {
		return false, err
	}
	if err := filesystem.WriteFile(fs, path, []byte(DefaultContent), filesystem.FilePerm); err != nil {
		return false, err
	}
	logger := logging.GetLogger("ignore")
	logger.Info().Str("path", path).Msg("Created default ignore file")
	return true, nil
}

// IsIgnored reports whether the basename of file matches any pattern
func (m *Matcher) IsIgnored(file string) bool {
	name := Basename(file)
	for _, p := range m.patterns {
		if p.Matches(name) {
			return true
		}
	}
	return false
}

// Patterns returns the pattern sources in file order
func (m *Matcher) Patterns() []string {
	out := make([]string, 0, len(m.patterns))
	for _, p := range m.patterns {
		out = append(out, p.Source)
	}
	return out
}

// Basename returns everything after the last '/', or file itself when there is none.
// A trailing '/' is dropped first, so "dir/" names dir.
func Basename(file string) string {
	file = strings.TrimRight(file, "/")
	if i := strings.LastIndex(file, "/"); i >= 0 {
		return file[i+1:]
	}
	return file
}
