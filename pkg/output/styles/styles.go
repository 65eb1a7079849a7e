// Package styles defines the visual styling of dotsync report lines.
//
// Styles use semantic names and adaptive colors that adjust to light and
// dark terminal themes. Each severity style also carries the glyph printed
// in front of its lines:
//
//	Success  ✓ green
//	Warning  ⚠ yellow
//	Error    ✗ red
//	Info     ℹ blue
//	Modified → magenta
//
// The definitions live in styles.yaml, embedded in the binary.
package styles

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Semantic style names
const (
	Success  = "Success"
	Warning  = "Warning"
	Error    = "Error"
	Info     = "Info"
	Modified = "Modified"
	Header   = "Header"
	Label    = "Label"
	Command  = "Command"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Glyph      string `yaml:"glyph,omitempty"`
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	MarginLeft int    `yaml:"marginLeft,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

// Parse decodes a styles configuration
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse styles.yaml: %w", err)
	}
	for name, def := range config.Styles {
		if def.Foreground == "" {
			continue
		}
		if _, ok := config.Colors[def.Foreground]; !ok {
			return nil, fmt.Errorf("style %s uses undefined color %s", name, def.Foreground)
		}
	}
	return &config, nil
}

// Default returns the embedded configuration
func Default() *Config {
	config, err := Parse(embeddedStyles)
	if err != nil {
		panic(fmt.Sprintf("failed to load styles: %v", err))
	}
	return config
}

// Registry maps semantic names to lipgloss styles bound to one renderer
type Registry struct {
	styles map[string]lipgloss.Style
	glyphs map[string]string
}

// Build creates the registry for r
func (c *Config) Build(r *lipgloss.Renderer) *Registry {
	reg := &Registry{
		styles: make(map[string]lipgloss.Style, len(c.Styles)),
		glyphs: make(map[string]string, len(c.Styles)),
	}
	for name, def := range c.Styles {
		reg.styles[name] = c.buildStyle(r, def)
		if def.Glyph != "" {
			reg.glyphs[name] = def.Glyph
		}
	}
	return reg
}

// buildStyle constructs a lipgloss style from a style definition
func (c *Config) buildStyle(r *lipgloss.Renderer, def StyleDef) lipgloss.Style {
	style := r.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if def.Foreground != "" {
		color := c.Colors[def.Foreground]
		style = style.Foreground(lipgloss.AdaptiveColor{Light: color.Light, Dark: color.Dark})
	}
	if def.MarginLeft > 0 {
		style = style.MarginLeft(def.MarginLeft)
	}
	return style
}

// Get returns the named style, or a plain one when it is not defined
func (r *Registry) Get(name string) lipgloss.Style {
	if style, ok := r.styles[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Glyph returns the glyph of the named style, empty when it has none
func (r *Registry) Glyph(name string) string {
	return r.glyphs[name]
}
