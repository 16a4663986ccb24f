package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/anotb/pptx-masters/color"
	"github.com/anotb/pptx-masters/model"
)

var goTemplate = template.Must(template.New("go").Parse(`// Code generated by pptx-masters. DO NOT EDIT.
{{if .Source}}// Source: {{.Source}}
{{end}}
package {{.Package}}

// Theme colors as RGB hex.
const (
{{- range .Colors}}
	{{.Name}} = {{.Value}}
{{- end}}
)

// Theme fonts.
const (
	FontHeading = {{.Major}}
	FontBody    = {{.Minor}}
)

// Slide size in inches.
const (
	SlideWidth  = {{.Width}}
	SlideHeight = {{.Height}}
)
{{if .Layouts}}
// Layout names.
const (
{{- range .Layouts}}
	{{.Name}} = {{.Value}}
{{- end}}
)

// Layouts lists the layout names in template order.
var Layouts = []string{
{{- range .Layouts}}
	{{.Name}},
{{- end}}
}

// LayoutBackgrounds maps layout names to their background color. Layouts
// with an image background or none are absent.
var LayoutBackgrounds = map[string]string{
{{- range .Layouts}}{{if .Background}}
	{{.Name}}: {{.Background}},
{{- end}}{{end}}
}
{{end}}`))

type goConst struct {
	Name       string
	Value      string
	Background string
}

type goFile struct {
	Source  string
	Package string
	Colors  []goConst
	Major   string
	Minor   string
	Width   string
	Height  string
	Layouts []goConst
}

func (g *Generator) writeGo(res *model.Result, w io.Writer) error {
	src, err := GoSource(res, g.config.Package)
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}

// GoSource renders gofmt'ed Go source declaring the theme colors, fonts,
// slide size and layout names of res.
func GoSource(res *model.Result, pkg string) ([]byte, error) {
	if !token.IsIdentifier(pkg) {
		return nil, fmt.Errorf("invalid package name %q", pkg)
	}

	data := goFile{
		Source:  strings.Join(strings.Fields(res.Metadata.Title), " "),
		Package: pkg,
		Major:   strconv.Quote(res.Theme.Fonts.Major),
		Minor:   strconv.Quote(res.Theme.Fonts.Minor),
		Width:   strconv.FormatFloat(res.Dimensions.Width, 'f', -1, 64),
		Height:  strconv.FormatFloat(res.Dimensions.Height, 'f', -1, 64),
	}

	names := newNamer()
	for _, slot := range color.SchemeSlots {
		hex, ok := res.Theme.Colors[slot]
		if !ok {
			continue
		}
		data.Colors = append(data.Colors, goConst{
			Name:  names.unique("Color" + Identifier(slot)),
			Value: strconv.Quote(hex),
		})
	}
	keyed := make(map[string]bool)
	for _, l := range res.Layouts {
		c := goConst{
			Name:  names.unique("Layout" + Identifier(l.Name)),
			Value: strconv.Quote(l.Name),
		}
		// Map keys must be distinct, so repeated names keep the first.
		if l.Background != nil && l.Background.Color != "" && !keyed[l.Name] {
			c.Background = strconv.Quote(l.Background.Color)
			keyed[l.Name] = true
		}
		data.Layouts = append(data.Layouts, c)
	}

	var buf bytes.Buffer
	if err := goTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering Go source: %w", err)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting Go source: %w", err)
	}
	return out, nil
}

// Identifier turns a display name into an exported Go identifier fragment:
// "Title and Content" becomes "TitleAndContent". Letters inside a word keep
// their case. Names without letters or digits yield "Unnamed".
func Identifier(name string) string {
	caser := cases.Title(language.Und, cases.NoLower)

	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var sb strings.Builder
	for _, w := range words {
		sb.WriteString(caser.String(w))
	}
	if sb.Len() == 0 {
		return "Unnamed"
	}
	return sb.String()
}

// namer hands out unique identifiers by appending a counter.
type namer struct {
	seen map[string]int
}

func newNamer() *namer {
	return &namer{seen: make(map[string]int)}
}

func (n *namer) unique(name string) string {
	n.seen[name]++
	if c := n.seen[name]; c > 1 {
		candidate := fmt.Sprintf("%s%d", name, c)
		for n.seen[candidate] > 0 {
			c++
			candidate = fmt.Sprintf("%s%d", name, c)
		}
		n.seen[candidate]++
		return candidate
	}
	return name
}
