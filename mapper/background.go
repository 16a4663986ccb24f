package mapper

import (
	"github.com/anotb/pptx-masters/internal/xmlnode"
	"github.com/anotb/pptx-masters/model"
	"github.com/anotb/pptx-masters/pptx"
)

// MapBackground maps a master or layout background. A nil background, a
// no-fill background and an unresolvable bgRef all map to nil; the last one
// with a warning.
func MapBackground(c *Context, bg *pptx.Background) *model.Background {
	if bg == nil {
		return nil
	}

	if bg.Ref != nil {
		return c.mapBackgroundRef(bg.Ref)
	}

	res, warnings := ResolveFill(bg.Fill, c.Resolver)
	for _, w := range warnings {
		c.Warnf("%s in background", w)
	}
	switch {
	case res == nil:
		return nil
	case res.IsImage():
		archive, media, ok := c.resolveImage(res.ImageRID, "background")
		if !ok {
			return nil
		}
		return &model.Background{Image: media, ArchivePath: archive}
	default:
		return &model.Background{Color: res.Color.Color, Transparency: res.Color.Transparency}
	}
}

// mapBackgroundRef resolves a p:bgRef against the theme's background fill
// styles, substituting the reference color for phClr. Index 0 means no
// background.
func (c *Context) mapBackgroundRef(ref *pptx.StyleRef) *model.Background {
	if ref.Idx == 0 {
		return nil
	}
	if c.Theme == nil {
		c.Warnf("bgRef warning: background style %d has no theme to resolve against", ref.Idx)
		return nil
	}

	style := c.Theme.FillStyle(ref.Idx)
	if style == nil {
		c.Warnf("bgRef warning: background style %d is not defined by the theme", ref.Idx)
		return nil
	}

	switch xmlnode.Name(style) {
	case "noFill":
		return nil
	case "blipFill", "grpFill":
		c.Warnf("bgRef warning: background style %d uses an unsupported %s", ref.Idx, xmlnode.Name(style))
		return nil
	case "gradFill":
		c.Warnf("Gradient fill approximated by its first stop color: gradient support is partial in background style %d", ref.Idx)
	case "pattFill":
		style = xmlnode.Child(style, "fgClr")
	}

	clr := styleColor(ref.Element, style, c.Resolver)
	if clr == nil {
		c.Warnf("bgRef warning: background style %d has no color that could be resolved", ref.Idx)
		return nil
	}
	return &model.Background{Color: clr.Color, Transparency: clr.Transparency}
}
