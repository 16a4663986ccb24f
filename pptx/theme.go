package pptx

import (
	"errors"
	"fmt"

	"github.com/antchfx/xmlquery"

	"github.com/anotb/pptx-masters/color"
	"github.com/anotb/pptx-masters/internal/xmlnode"
	"github.com/anotb/pptx-masters/model"
)

// ErrInvalidTheme is returned when a theme part lacks its a:theme root or
// a:themeElements.
var ErrInvalidTheme = errors.New("invalid theme")

// Theme is a parsed theme part.
type Theme struct {
	Name            string
	ColorSchemeName string
	Colors          color.ThemeColors
	Fonts           color.ThemeFonts

	// Format scheme style lists, referenced by index from p:style and
	// p:bgRef.
	FillStyles   []*xmlquery.Node
	LineStyles   []*xmlquery.Node
	EffectStyles []*xmlquery.Node
	BgFillStyles []*xmlquery.Node
}

// ParseTheme parses a theme document element.
func ParseTheme(root *xmlquery.Node) (*Theme, error) {
	if root == nil || xmlnode.Name(root) != "theme" {
		return nil, fmt.Errorf("%w: missing theme root", ErrInvalidTheme)
	}
	elements := xmlnode.Child(root, "themeElements")
	if elements == nil {
		return nil, fmt.Errorf("%w: missing themeElements", ErrInvalidTheme)
	}

	t := &Theme{
		Name:   xmlnode.AttrString(root, "name"),
		Colors: make(color.ThemeColors),
	}

	// Scheme entries are literal colors; no color map is involved.
	literal := color.NewResolver(nil, nil, color.ThemeFonts{})
	if scheme := xmlnode.Child(elements, "clrScheme"); scheme != nil {
		t.ColorSchemeName = xmlnode.AttrString(scheme, "name")
		for _, slot := range color.SchemeSlots {
			if c := literal.Resolve(xmlnode.Child(scheme, slot)); c != nil {
				t.Colors[slot] = c.Color
			}
		}
	}

	fonts := xmlnode.Child(elements, "fontScheme")
	t.Fonts.Major = xmlnode.AttrString(xmlnode.Path(fonts, "majorFont", "latin"), "typeface")
	t.Fonts.Minor = xmlnode.AttrString(xmlnode.Path(fonts, "minorFont", "latin"), "typeface")

	if fs := xmlnode.Child(elements, "fmtScheme"); fs != nil {
		t.FillStyles = xmlnode.Elements(xmlnode.Child(fs, "fillStyleLst"))
		t.LineStyles = xmlnode.Children(xmlnode.Child(fs, "lnStyleLst"), "ln")
		t.EffectStyles = xmlnode.Children(xmlnode.Child(fs, "effectStyleLst"), "effectStyle")
		t.BgFillStyles = xmlnode.Elements(xmlnode.Child(fs, "bgFillStyleLst"))
	}

	return t, nil
}

// Resolver returns a color resolver for this theme and a color map.
func (t *Theme) Resolver(cmap color.ColorMap) *color.Resolver {
	return color.NewResolver(t.Colors, cmap, t.Fonts)
}

// FillStyle returns the fill referenced by a style-matrix index: 1-999 index
// the fill style list, 1001 and above the background fill style list. It
// returns nil for 0 and out-of-range indexes.
func (t *Theme) FillStyle(idx int64) *xmlquery.Node {
	switch {
	case idx >= 1001:
		return pick(t.BgFillStyles, idx-1001)
	case idx >= 1:
		return pick(t.FillStyles, idx-1)
	}
	return nil
}

// LineStyle returns the a:ln referenced by a 1-based style-matrix index.
func (t *Theme) LineStyle(idx int64) *xmlquery.Node {
	return pick(t.LineStyles, idx-1)
}

// EffectStyle returns the a:effectStyle referenced by a 1-based index.
func (t *Theme) EffectStyle(idx int64) *xmlquery.Node {
	return pick(t.EffectStyles, idx-1)
}

// Model returns the theme in output form.
func (t *Theme) Model() model.Theme {
	colors := make(color.ThemeColors, len(t.Colors))
	for k, v := range t.Colors {
		colors[k] = v
	}
	return model.Theme{
		Name:            t.Name,
		ColorSchemeName: t.ColorSchemeName,
		Colors:          colors,
		Fonts:           t.Fonts,
	}
}

func pick(list []*xmlquery.Node, i int64) *xmlquery.Node {
	if i < 0 || i >= int64(len(list)) {
		return nil
	}
	return list[i]
}
