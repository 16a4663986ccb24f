package mapper

import (
	"github.com/antchfx/xmlquery"

	"github.com/anotb/pptx-masters/color"
	"github.com/anotb/pptx-masters/internal/xmlnode"
	"github.com/anotb/pptx-masters/model"
	"github.com/anotb/pptx-masters/pptx"
)

// FillResult is a resolved fill: a color, or an image reference the caller
// resolves against its relationships.
type FillResult struct {
	Color    *color.Resolved
	ImageRID string
}

// IsImage reports whether the fill is an image reference.
func (f *FillResult) IsImage() bool {
	return f != nil && f.ImageRID != ""
}

// ResolveFill resolves a fill descriptor. No-fill, group fill and a nil
// descriptor all resolve to nil without warnings.
func ResolveFill(fill *pptx.Fill, r *color.Resolver) (*FillResult, []string) {
	if fill == nil {
		return nil, nil
	}

	switch fill.Kind {
	case pptx.FillSolid:
		if c := r.Resolve(fill.Element); c != nil {
			return &FillResult{Color: c}, nil
		}
		return nil, nil

	case pptx.FillGradient:
		warnings := []string{"Gradient fill approximated by its first stop color: gradient support is partial"}
		if c := r.Resolve(firstGradientStop(fill.Element)); c != nil {
			return &FillResult{Color: c}, warnings
		}
		return nil, warnings

	case pptx.FillPattern:
		warnings := []string{"Pattern fill approximated by its foreground color"}
		if c := r.Resolve(xmlnode.Child(fill.Element, "fgClr")); c != nil {
			return &FillResult{Color: c}, warnings
		}
		return nil, warnings

	case pptx.FillImage:
		rid := xmlnode.AttrString(xmlnode.Child(fill.Element, "blip"), "embed")
		if rid == "" {
			return nil, []string{"Image fill has no blip reference"}
		}
		return &FillResult{ImageRID: rid}, nil
	}

	return nil, nil
}

// firstGradientStop returns the first a:gs of a gradient in document order.
func firstGradientStop(gradFill *xmlquery.Node) *xmlquery.Node {
	stops := xmlnode.Children(xmlnode.Child(gradFill, "gsLst"), "gs")
	if len(stops) == 0 {
		return nil
	}
	return stops[0]
}

// mapFill resolves a fill into the output model, resolving image fills
// against the context's relationships. Warnings are prefixed with the
// owner's name.
func (c *Context) mapFill(fill *pptx.Fill, owner string) *model.Fill {
	res, warnings := ResolveFill(fill, c.Resolver)
	for _, w := range warnings {
		c.Warnf("%s in %q", w, owner)
	}
	switch {
	case res == nil:
		return nil
	case res.IsImage():
		_, media, ok := c.resolveImage(res.ImageRID, owner)
		if !ok {
			return nil
		}
		return &model.Fill{Image: media}
	default:
		return &model.Fill{Color: res.Color.Color, Transparency: res.Color.Transparency}
	}
}

// styleColor resolves the color of a style-matrix reference applied to the
// referenced theme style: phClr inside the style takes the reference color,
// keeping the style's own modifiers.
func styleColor(ref, style *xmlquery.Node, r *color.Resolver) *color.Resolved {
	base := r.Resolve(ref)
	if base == nil {
		return nil
	}

	el := style
	switch xmlnode.Name(style) {
	case "gradFill":
		el = firstGradientStop(style)
	case "ln":
		el = xmlnode.Child(style, "solidFill")
	}
	clr := xmlnode.Child(el, "schemeClr")
	if xmlnode.AttrString(clr, "val") != "phClr" {
		return base
	}

	mods := color.ParseModifiers(clr)
	out := &color.Resolved{Color: base.Color, Transparency: base.Transparency}
	if mods.HasColorChange() {
		out.Color = color.ApplyModifiers(base.Color, mods)
	}
	return out
}
