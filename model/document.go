package model

import (
	"github.com/anotb/pptx-masters/color"
)

// Result is the complete resolved model of a presentation template.
type Result struct {
	Metadata   Metadata      `json:"metadata"`
	Theme      Theme         `json:"theme"`
	Dimensions Dimensions    `json:"dimensions"`
	Masters    []Master      `json:"masters"`
	Layouts    []*Layout     `json:"layouts"`
	Palette    PaletteReport `json:"palette"`
}

// Metadata contains document-level information from docProps/core.xml.
type Metadata struct {
	Title    string   `json:"title,omitempty"`
	Author   string   `json:"author,omitempty"`
	Subject  string   `json:"subject,omitempty"`
	Keywords []string `json:"keywords,omitempty"`
	Company  string   `json:"company,omitempty"`
}

// Theme holds the document-wide theme colors and fonts.
type Theme struct {
	Name            string            `json:"name"`
	ColorSchemeName string            `json:"colorSchemeName,omitempty"`
	Colors          color.ThemeColors `json:"colors"`
	Fonts           color.ThemeFonts  `json:"fonts"`
}

// Master summarizes one slide master.
type Master struct {
	Index      int         `json:"index"`
	Path       string      `json:"path"`
	Name       string      `json:"name,omitempty"`
	Background *Background `json:"background,omitempty"`
	Layouts    int         `json:"layouts"`
}

// PaletteReport records limited-palette detection and any accent
// substitutions applied to [Theme.Colors].
type PaletteReport struct {
	Limited bool `json:"limited"`
	// Usable lists the distinct non-neutral accent colors of the original theme.
	Usable        []string       `json:"usable"`
	Substitutions []Substitution `json:"substitutions,omitempty"`
}

// Substitution is one accent slot replaced by a mined background color.
type Substitution struct {
	Slot        string `json:"slot"`
	Original    string `json:"original"`
	Replacement string `json:"replacement"`
}

// LayoutByName returns the first layout with the given name, or nil.
func (r *Result) LayoutByName(name string) *Layout {
	for _, l := range r.Layouts {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// WarningCount returns the total number of warnings across all layouts.
func (r *Result) WarningCount() int {
	n := 0
	for _, l := range r.Layouts {
		n += len(l.Warnings)
	}
	return n
}
