// Package generator renders an extracted template into files for downstream
// consumers: JSON dumps, Markdown documentation, Go source, an object
// inventory and a color swatch workbook.
//
// Generators only read the model. Every color they see is a resolved hex
// value and every text style is fully merged.
package generator

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/anotb/pptx-masters/model"
)

// Format defines the available output formats
type Format int

const (
	// FormatJSON writes the complete result as JSON
	FormatJSON Format = iota
	// FormatThemeJSON writes only the theme, slide size and palette report
	FormatThemeJSON
	// FormatMarkdown writes human-readable documentation
	FormatMarkdown
	// FormatGo writes Go source declaring the theme and layout names
	FormatGo
	// FormatCSV writes one row per layout object
	FormatCSV
	// FormatXLSX writes a workbook of color swatches
	FormatXLSX
)

// String returns the format's name as accepted by ParseFormat
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatThemeJSON:
		return "theme"
	case FormatMarkdown:
		return "markdown"
	case FormatGo:
		return "go"
	case FormatCSV:
		return "csv"
	case FormatXLSX:
		return "xlsx"
	default:
		return "unknown"
	}
}

// FileExtension returns the typical file extension for this format
func (f Format) FileExtension() string {
	switch f {
	case FormatJSON, FormatThemeJSON:
		return ".json"
	case FormatMarkdown:
		return ".md"
	case FormatGo:
		return ".go"
	case FormatCSV:
		return ".csv"
	case FormatXLSX:
		return ".xlsx"
	default:
		return ".txt"
	}
}

// Formats lists every supported format.
var Formats = []Format{FormatJSON, FormatThemeJSON, FormatMarkdown, FormatGo, FormatCSV, FormatXLSX}

// ParseFormat parses a format name. "md" is accepted for markdown.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "md" {
		return FormatMarkdown, nil
	}
	for _, f := range Formats {
		if f.String() == name {
			return f, nil
		}
	}
	return FormatJSON, fmt.Errorf("unknown output format %q", s)
}

// Config holds configuration options for generation
type Config struct {
	// Format specifies the output format
	Format Format

	// PrettyPrint indents JSON output
	PrettyPrint bool

	// Package is the package clause of generated Go source
	Package string

	// Title heads the Markdown document. The template title is used when
	// empty.
	Title string

	// IncludeWarnings adds layout warnings to Markdown output
	IncludeWarnings bool
}

// DefaultConfig returns sensible defaults for generation
func DefaultConfig() Config {
	return Config{
		Format:          FormatJSON,
		PrettyPrint:     true,
		Package:         "brand",
		IncludeWarnings: true,
	}
}

// Generator renders results in one configured format
type Generator struct {
	config Config
}

// New creates a generator with the default configuration
func New() *Generator {
	return &Generator{config: DefaultConfig()}
}

// NewWithConfig creates a generator with a custom configuration
func NewWithConfig(config Config) *Generator {
	if config.Package == "" {
		config.Package = DefaultConfig().Package
	}
	return &Generator{config: config}
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config {
	return g.config
}

// Generate writes res to w in the configured format
func (g *Generator) Generate(res *model.Result, w io.Writer) error {
	if res == nil {
		return fmt.Errorf("no result to generate from")
	}
	switch g.config.Format {
	case FormatJSON:
		return g.writeJSON(res, w)
	case FormatThemeJSON:
		return g.writeThemeJSON(res, w)
	case FormatMarkdown:
		return g.writeMarkdown(res, w)
	case FormatGo:
		return g.writeGo(res, w)
	case FormatCSV:
		return g.writeCSV(res, w)
	case FormatXLSX:
		return g.writeXLSX(res, w)
	default:
		return fmt.Errorf("unsupported output format: %v", g.config.Format)
	}
}

// GenerateToFile writes res to a file
func (g *Generator) GenerateToFile(res *model.Result, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := g.Generate(res, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// GenerateToString renders res to a string
func (g *Generator) GenerateToString(res *model.Result) (string, error) {
	var buf bytes.Buffer
	if err := g.Generate(res, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
