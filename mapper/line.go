package mapper

import (
	"github.com/antchfx/xmlquery"

	"github.com/anotb/pptx-masters/color"
	"github.com/anotb/pptx-masters/internal/xmlnode"
	"github.com/anotb/pptx-masters/model"
	"github.com/anotb/pptx-masters/units"
)

var dashTypes = map[string]string{
	"solid":         "solid",
	"dash":          "dash",
	"dashDot":       "dashDot",
	"lgDash":        "lgDash",
	"lgDashDot":     "lgDashDot",
	"lgDashDotDot":  "lgDashDotDot",
	"sysDash":       "sysDash",
	"sysDot":        "sysDot",
	"dot":           "sysDot",
	"sysDashDot":    "dashDot",
	"sysDashDotDot": "lgDashDotDot",
}

var arrowTypes = map[string]string{
	"triangle": "triangle",
	"stealth":  "stealth",
	"diamond":  "diamond",
	"oval":     "oval",
	"arrow":    "arrow",
}

// ResolveLine resolves an a:ln. It returns nil when ln is nil, declares
// a:noFill, or carries no width, color, dash or arrowheads.
func ResolveLine(ln *xmlquery.Node, r *color.Resolver) *model.LineStyle {
	if ln == nil || xmlnode.Has(ln, "noFill") {
		return nil
	}

	var style model.LineStyle
	set := false

	if w, ok := xmlnode.AttrInt(ln, "w"); ok {
		style.Width = units.Round(units.EMUToPoints(w), 2)
		set = true
	}
	if c := r.Resolve(xmlnode.Child(ln, "solidFill")); c != nil {
		style.Color = c.Color
		style.Transparency = c.Transparency
		set = true
	}
	if dash, ok := dashTypes[xmlnode.AttrString(xmlnode.Child(ln, "prstDash"), "val")]; ok {
		style.DashType = dash
		set = true
	}
	if arrow, ok := arrowTypes[xmlnode.AttrString(xmlnode.Child(ln, "headEnd"), "type")]; ok {
		style.BeginArrow = arrow
		set = true
	}
	if arrow, ok := arrowTypes[xmlnode.AttrString(xmlnode.Child(ln, "tailEnd"), "type")]; ok {
		style.EndArrow = arrow
		set = true
	}

	if !set {
		return nil
	}
	return &style
}

// styleLine resolves a p:style a:lnRef against the theme line styles.
func (c *Context) styleLine(style *xmlquery.Node) *model.LineStyle {
	ref := xmlnode.Child(style, "lnRef")
	idx, _ := xmlnode.AttrInt(ref, "idx")
	if ref == nil || idx <= 0 || c.Theme == nil {
		return nil
	}
	themeLine := c.Theme.LineStyle(idx)
	if themeLine == nil || xmlnode.Has(themeLine, "noFill") {
		return nil
	}

	out := ResolveLine(themeLine, c.Resolver)
	if out == nil {
		out = &model.LineStyle{}
	}
	if clr := styleColor(ref, themeLine, c.Resolver); clr != nil {
		out.Color = clr.Color
		out.Transparency = clr.Transparency
	}
	return out
}

// styleFill resolves a p:style a:fillRef against the theme fill styles.
func (c *Context) styleFill(style *xmlquery.Node) *model.Fill {
	ref := xmlnode.Child(style, "fillRef")
	idx, _ := xmlnode.AttrInt(ref, "idx")
	if ref == nil || idx <= 0 || c.Theme == nil {
		return nil
	}
	themeFill := c.Theme.FillStyle(idx)
	if themeFill == nil || xmlnode.Name(themeFill) == "noFill" {
		return nil
	}
	clr := styleColor(ref, themeFill, c.Resolver)
	if clr == nil {
		return nil
	}
	return &model.Fill{Color: clr.Color, Transparency: clr.Transparency}
}
