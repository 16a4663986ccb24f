package text

import (
	"strings"

	"github.com/anotb/pptx-masters/color"
	"github.com/anotb/pptx-masters/model"
)

// Default body insets in inches (91440 and 45720 EMU).
const (
	DefaultInsetLeftRight = 0.1
	DefaultInsetTopBottom = 0.05
)

// Autofit modes.
const (
	AutofitShrink = "shrink"
	AutofitResize = "resize"
	AutofitNone   = "none"
)

// Props is everything extracted from one text body.
type Props struct {
	Body       BodyProps
	Paragraphs []Paragraph
	// PlainText joins paragraphs with newlines. Breaks contribute a newline
	// and fields contribute their placeholder text.
	PlainText string
	// ListStyle is keyed by 1-based level; key 0 holds a:defPPr.
	ListStyle map[int]ParagraphProps
}

// BodyProps holds a:bodyPr values.
type BodyProps struct {
	// Margin is top, right, bottom, left in inches.
	Margin [4]float64
	// HasInsets is true when any inset attribute is present.
	HasInsets bool
	// Anchor is top, middle or bottom, or "" when unspecified.
	Anchor   string
	Rotation float64 // degrees
	Vert     string
	// Autofit is shrink, resize or none, or "" when unspecified.
	Autofit string
	Wrap    *bool
}

// Paragraph is one a:p.
type Paragraph struct {
	Props ParagraphProps
	Runs  []Run
}

// Text returns the paragraph's runs concatenated.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// Fields returns the paragraph's field runs.
func (p *Paragraph) Fields() []Run {
	var out []Run
	for _, r := range p.Runs {
		if r.IsField {
			out = append(out, r)
		}
	}
	return out
}

// ParagraphProps holds a:pPr or list-style level values.
type ParagraphProps struct {
	// Align is the display alignment and defaults to "left".
	Align string
	// ExplicitAlign is "" unless the source states an alignment.
	ExplicitAlign string
	// Level is 1-based.
	Level int
	RTL   *bool

	MarginLeft          *float64 // points
	Indent              *float64 // points
	LineSpacing         *float64 // points
	LineSpacingMultiple *float64
	SpaceBefore         *float64 // points
	SpaceAfter          *float64 // points

	// Bullet is nil when unspecified.
	Bullet *model.Bullet
	// Defaults holds a:defRPr, nil when absent.
	Defaults *RunProps
}

// Run is a text run, a field or a line break.
type Run struct {
	Text  string
	Props *RunProps

	IsField   bool
	FieldType string // e.g. slidenum, datetime1

	IsBreak bool
}

// RunProps holds a:rPr / a:defRPr / a:endParaRPr values.
type RunProps struct {
	FontFace string
	FontSize float64 // points, 0 when unspecified
	Color    *color.Resolved
	Bold     *bool
	Italic   *bool
	// Underline and Strike hold the raw attribute values (sng, sngStrike, none...).
	Underline   string
	Strike      string
	Superscript bool
	Subscript   bool
	CharSpacing *float64 // points
}

// Field type prefixes.
const (
	FieldSlideNumber = "slidenum"
	FieldDateTime    = "datetime"
)

// IsSlideNumber reports whether the run is a slide-number field.
func (r *Run) IsSlideNumber() bool {
	return r.IsField && r.FieldType == FieldSlideNumber
}
