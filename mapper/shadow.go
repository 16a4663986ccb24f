package mapper

import (
	"github.com/antchfx/xmlquery"

	"github.com/anotb/pptx-masters/color"
	"github.com/anotb/pptx-masters/internal/xmlnode"
	"github.com/anotb/pptx-masters/model"
	"github.com/anotb/pptx-masters/units"
)

// ResolveShadow resolves the shadow of an a:effectLst. An outer shadow wins
// over an inner one.
func ResolveShadow(effectLst *xmlquery.Node, r *color.Resolver) *model.Shadow {
	s := &model.Shadow{Type: "outer", Color: "000000", Opacity: 1}
	shdw := xmlnode.Child(effectLst, "outerShdw")
	if shdw == nil {
		shdw = xmlnode.Child(effectLst, "innerShdw")
		s.Type = "inner"
	}
	if shdw == nil {
		return nil
	}
	if v, ok := xmlnode.AttrInt(shdw, "blurRad"); ok {
		s.Blur = units.Round(units.EMUToPoints(v), 2)
	}
	if v, ok := xmlnode.AttrInt(shdw, "dist"); ok {
		s.Offset = units.Round(units.EMUToPoints(v), 2)
	}
	if v, ok := xmlnode.AttrInt(shdw, "dir"); ok {
		s.Angle = units.Round(units.AngleToDegrees(v), 2)
	}
	if c := r.Resolve(shdw); c != nil {
		s.Color = c.Color
		s.Opacity = units.Round(c.Opacity(), 3)
	}
	return s
}

// styleShadow resolves a p:style a:effectRef against the theme effect
// styles.
func (c *Context) styleShadow(style *xmlquery.Node) *model.Shadow {
	idx, _ := xmlnode.AttrInt(xmlnode.Child(style, "effectRef"), "idx")
	if idx <= 0 || c.Theme == nil {
		return nil
	}
	return ResolveShadow(xmlnode.Child(c.Theme.EffectStyle(idx), "effectLst"), c.Resolver)
}
