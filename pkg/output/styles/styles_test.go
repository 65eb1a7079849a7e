package styles

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	config := Default()

	expected := []string{Success, Warning, Error, Info, Modified, Header, Label, Command}
	for _, name := range expected {
		t.Run(name, func(t *testing.T) {
			_, ok := config.Styles[name]
			assert.True(t, ok, "Style %s should be defined", name)
		})
	}
}

func TestGlyphs(t *testing.T) {
	reg := Default().Build(lipgloss.NewRenderer(&bytes.Buffer{}))

	tests := []struct {
		style string
		glyph string
	}{
		{Success, "✓"},
		{Warning, "⚠"},
		{Error, "✗"},
		{Info, "ℹ"},
		{Modified, "→"},
		{Header, ""},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			assert.Equal(t, tt.glyph, reg.Glyph(tt.style))
		})
	}
}

func TestRegistry_Get(t *testing.T) {
	reg := Default().Build(lipgloss.NewRenderer(&bytes.Buffer{}))

	assert.True(t, reg.Get(Header).GetBold())
	assert.False(t, reg.Get(Success).GetBold())

	assert.Equal(t, "text", reg.Get("NonExistent").Render("text"))
}

func TestRegistry_RendersColorsWithProfile(t *testing.T) {
	r := lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.ANSI256)
	reg := Default().Build(r)

	out := reg.Get(Success).Render("ok")
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "ok")

	r = lipgloss.NewRenderer(&bytes.Buffer{})
	r.SetColorProfile(termenv.Ascii)
	assert.Equal(t, "ok", Default().Build(r).Get(Success).Render("ok"))
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("styles: ["))
	assert.Error(t, err)

	_, err = Parse([]byte("styles:\n  Success:\n    foreground: nope\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined color nope")
}
