// Package output writes the user-facing report lines of dotsync.
//
// Every line carries a severity glyph and color (see the styles package).
// Colors are only emitted when the destination is a terminal, unless the
// caller forces a mode. Diagnostics never go through here, they belong to
// the logger.
package output

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dotsync/pkg/logging"
	"github.com/arthur-debert/dotsync/pkg/output/styles"
	"github.com/charmbracelet/lipgloss"
)

// Reporter prints severity-tagged lines to one writer
type Reporter struct {
	w        io.Writer
	registry *styles.Registry
}

// NewReporter creates a reporter for w using the embedded styles
func NewReporter(w io.Writer, mode ColorMode) *Reporter {
	renderer := lipgloss.NewRenderer(w)
	profile := colorProfile(w, mode)
	renderer.SetColorProfile(profile)

	logger := logging.GetLogger("output")
	logger.Debug().
		Str("mode", mode.String()).
		Str("profile", profile.Name()).
		Msg("Reporter created")

	return &Reporter{
		w:        w,
		registry: styles.Default().Build(renderer),
	}
}


// Header prints a bold title line
func (r *Reporter) Header(message string) {
	r.println(r.registry.Get(styles.Header).Render(message))
}

// Success prints a line tagged ✓
func (r *Reporter) Success(format string, args ...interface{}) {
	r.tagged(styles.Success, format, args...)
}

// Warning prints a line tagged ⚠
func (r *Reporter) Warning(format string, args ...interface{}) {
	r.tagged(styles.Warning, format, args...)
}

// Error prints a line tagged ✗
func (r *Reporter) Error(format string, args ...interface{}) {
	r.tagged(styles.Error, format, args...)
}

// Info prints a line tagged ℹ
func (r *Reporter) Info(format string, args ...interface{}) {
	r.tagged(styles.Info, format, args...)
}

// Modified prints a line tagged →
func (r *Reporter) Modified(format string, args ...interface{}) {
	r.tagged(styles.Modified, format, args...)
}

// KeyValue prints "key: value" with a highlighted key
func (r *Reporter) KeyValue(key, value string) {
	r.println(r.registry.Get(styles.Label).Render(key+": ") + value)
}

// Label prints highlighted text without ending the line
func (r *Reporter) Label(text string) {
	_, _ = fmt.Fprint(r.w, r.registry.Get(styles.Label).Render(text))
}

// Command prints an indented shell command the user can run
func (r *Reporter) Command(command string) {
	r.println(r.registry.Get(styles.Command).Render(command))
}

// Blank prints an empty line
func (r *Reporter) Blank() {
	r.println("")
}

// Plain prints message unstyled
func (r *Reporter) Plain(format string, args ...interface{}) {
	r.println(fmt.Sprintf(format, args...))
}

func (r *Reporter) tagged(style, format string, args ...interface{}) {
	glyph := r.registry.Get(style).Render(r.registry.Glyph(style) + " ")
	r.println(glyph + fmt.Sprintf(format, args...))
}

func (r *Reporter) println(line string) {
	_, _ = fmt.Fprintln(r.w, line)
}
