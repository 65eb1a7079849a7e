package distribution

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/dotsync/pkg/errors"
	toml "github.com/pelletier/go-toml/v2"
)

// FilesKey is the tool table key holding the tracked file list
const FilesKey = "files"

// MetaPrefix marks tables that are preserved but never iterated
const MetaPrefix = "_"

// Section is the record kept for one tool
type Section struct {
	Files []string

	// Extra holds every key of the table other than files
	Extra map[string]interface{}
}

// Manifest maps tool names to their sections
type Manifest struct {
	Sections map[string]*Section

	// meta holds underscore tables and root-level values untouched
	meta map[string]interface{}
}

// New returns an empty manifest
func New() *Manifest {
	return &Manifest{
		Sections: make(map[string]*Section),
		meta:     make(map[string]interface{}),
	}
}

// IsMeta reports whether name is a metadata table name
func IsMeta(name string) bool {
	return strings.HasPrefix(name, MetaPrefix)
}

// Parse decodes manifest TOML. Any syntax error, or a files value that is not
// an array of strings, is a DISTRIBUTION_PARSE error.
func Parse(data []byte) (*Manifest, error) {
	var raw map[string]interface{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrDistributionParse, parseMessage(err))
	}

	m := New()
	for name, value := range raw {
		table, isTable := value.(map[string]interface{})
		if IsMeta(name) || !isTable {
			m.meta[name] = value
			continue
		}

		section, err := decodeSection(name, table)
		if err != nil {
			return nil, err
		}
		m.Sections[name] = section
	}
	return m, nil
}

func decodeSection(name string, table map[string]interface{}) (*Section, error) {
	section := &Section{Files: []string{}, Extra: make(map[string]interface{})}

	for key, value := range table {
		if key != FilesKey {
			section.Extra[key] = value
			continue
		}

		list, ok := value.([]interface{})
		if !ok {
			return nil, errors.Newf(errors.ErrDistributionParse,
				"tool '%s': %s must be an array of strings", name, FilesKey)
		}
		for i, item := range list {
			file, ok := item.(string)
			if !ok {
				return nil, errors.Newf(errors.ErrDistributionParse,
					"tool '%s': %s[%d] is not a string", name, FilesKey, i)
			}
			section.Files = append(section.Files, file)
		}
	}
	return section, nil
}

// parseMessage keeps the position the decoder reports when it has one
func parseMessage(err error) string {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, col := decodeErr.Position()
		return fmt.Sprintf("line %d, column %d: %s", row, col, decodeErr.Error())
	}
	return err.Error()
}

// Serialize encodes the manifest back to TOML
func (m *Manifest) Serialize() ([]byte, error) {
	doc := make(map[string]interface{}, len(m.meta)+len(m.Sections))
	for name, value := range m.meta {
		doc[name] = value
	}
	for name, section := range m.Sections {
		table := make(map[string]interface{}, len(section.Extra)+1)
		for key, value := range section.Extra {
			table[key] = value
		}
		files := section.Files
		if files == nil {
			files = []string{}
		}
		table[FilesKey] = files
		doc[name] = table
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDistributionParse, "cannot serialize distribution file")
	}
	return data, nil
}

// Tools returns the tool names, metadata tables excluded, sorted by name
func (m *Manifest) Tools() []string {
	tools := make([]string, 0, len(m.Sections))
	for name := range m.Sections {
		if IsMeta(name) {
			continue
		}
		tools = append(tools, name)
	}
	sort.Strings(tools)
	return tools
}

// Files returns the files of tool in declared order, empty for an unknown tool
func (m *Manifest) Files(tool string) []string {
	section, ok := m.Sections[tool]
	if !ok {
		return []string{}
	}
	out := make([]string, len(section.Files))
	copy(out, section.Files)
	return out
}

// HasTool reports whether tool has a section
func (m *Manifest) HasTool(tool string) bool {
	_, ok := m.Sections[tool]
	return ok
}

// Meta returns the preserved metadata value stored under name
func (m *Manifest) Meta(name string) (interface{}, bool) {
	v, ok := m.meta[name]
	return v, ok
}

// Add appends file to tool, creating the section when needed.
// It reports whether the manifest changed.
func (m *Manifest) Add(tool, file string) bool {
	section, ok := m.Sections[tool]
	if !ok {
		section = &Section{Files: []string{}, Extra: make(map[string]interface{})}
		m.Sections[tool] = section
	}
	for _, existing := range section.Files {
		if existing == file {
			return !ok
		}
	}
	section.Files = append(section.Files, file)
	return true
}

// Remove drops every exact occurrence of file from tool.
// The section stays even when it ends up empty.
func (m *Manifest) Remove(tool, file string) error {
	section, ok := m.Sections[tool]
	if !ok {
		return errors.Newf(errors.ErrInvalidCommand, "Tool '%s' not found", tool)
	}

	kept := section.Files[:0]
	for _, existing := range section.Files {
		if existing != file {
			kept = append(kept, existing)
		}
	}
	section.Files = kept
	return nil
}
