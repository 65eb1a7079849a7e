package dotsync

import (
	"os"
	"strings"
	"text/template"

	"github.com/arthur-debert/dotsync/pkg/output"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// stdoutStyled reports whether help text may carry escape sequences
func stdoutStyled() bool {
	return os.Getenv("NO_COLOR") == "" && output.IsTerminal(os.Stdout)
}

// formatBold returns s in bold when stdout is a terminal
func formatBold(s string) string {
	if !stdoutStyled() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// formatBoldUpper returns s uppercased, in bold when stdout is a terminal
func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     strings.ToUpper,
		"boldUpper": formatBoldUpper,
	})
}
