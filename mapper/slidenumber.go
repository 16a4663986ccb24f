package mapper

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/anotb/pptx-masters/model"
	"github.com/anotb/pptx-masters/pptx"
	"github.com/anotb/pptx-masters/text"
)

// FooterRoles holds the footer-zone placeholders split out of a layout.
type FooterRoles struct {
	SlideNumber *model.Placeholder
	Footer      *model.Placeholder
	Date        *model.Placeholder
	Header      *model.Placeholder
}

// SplitFooterRoles separates slide-number, footer, date and header
// placeholders from the rest. When a role occurs more than once the first
// one is kept and the others stay in rest.
func SplitFooterRoles(placeholders []*model.Placeholder) (rest []*model.Placeholder, roles FooterRoles) {
	for _, ph := range placeholders {
		var slot **model.Placeholder
		switch ph.Role {
		case "sldNum":
			slot = &roles.SlideNumber
		case "ftr":
			slot = &roles.Footer
		case "dt":
			slot = &roles.Date
		case "hdr":
			slot = &roles.Header
		}
		if slot == nil || *slot != nil {
			rest = append(rest, ph)
			continue
		}
		*slot = ph
	}
	return rest, roles
}

// FooterObjects returns the footer, date and header placeholders worth
// keeping, in that order.
func (r FooterRoles) FooterObjects() []*model.Placeholder {
	var out []*model.Placeholder
	for _, ph := range []*model.Placeholder{r.Footer, r.Date, r.Header} {
		if ph != nil && KeepFooterObject(ph) {
			out = append(out, ph)
		}
	}
	return out
}

// KeepFooterObject reports whether a footer, date or header placeholder
// carries anything: it is dropped only when its text is empty and its
// position is all zeros.
func KeepFooterObject(ph *model.Placeholder) bool {
	return strings.TrimSpace(ph.Text) != "" || !ph.Position.IsZero()
}

// DetectSlideNumber reports whether a text body holds a bare slide-number
// field: exactly one field, of type slidenum, and no other non-whitespace
// text.
func DetectSlideNumber(p *text.Props) bool {
	if p == nil {
		return false
	}
	found := 0
	for i := range p.Paragraphs {
		for _, run := range p.Paragraphs[i].Runs {
			switch {
			case run.IsBreak:
			case run.IsField:
				if !run.IsSlideNumber() {
					return false
				}
				found++
			case strings.TrimSpace(run.Text) != "":
				return false
			}
		}
	}
	return found == 1
}

// MapSlideNumber builds a slide-number descriptor. Zero-size candidates
// yield nil. The height grows to at least 2.5 times the font size.
func MapSlideNumber(pos model.Position, opts model.TextOptions, source model.Source) *model.SlideNumber {
	if pos.IsEmptySize() {
		return nil
	}
	pos.H = slideNumberHeight(pos.H, opts.FontSize)
	return &model.SlideNumber{Position: pos, Options: opts, Source: source}
}

// SlideNumberFromPlaceholder maps a sldNum placeholder.
func SlideNumberFromPlaceholder(ph *model.Placeholder) *model.SlideNumber {
	if ph == nil {
		return nil
	}
	return MapSlideNumber(ph.Position, ph.Options, ph.Source)
}

// SlideNumberFromShape maps a plain text shape that holds only a slide-number
// field. It returns nil for anything else.
func SlideNumberFromShape(c *Context, s *pptx.Shape) *model.SlideNumber {
	if s == nil || s.IsPlaceholder() || s.Hidden || s.Position == nil || !DetectSlideNumber(s.Text) {
		return nil
	}
	opts := MapTextOptions(TextSources{Own: s.Text, MasterStyle: c.otherStyle()})
	return MapSlideNumber(*s.Position, opts, c.Source)
}

// IsFooterText reports whether free text reads like a footer: it carries a
// copyright sign or the word "copyright" in any case.
func IsFooterText(s string) bool {
	if strings.ContainsRune(s, '©') {
		return true
	}
	return strings.Contains(cases.Fold().String(s), "copyright")
}
