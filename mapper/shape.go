package mapper

import (
	"math"
	"regexp"
	"strings"

	"github.com/anotb/pptx-masters/model"
	"github.com/anotb/pptx-masters/pptx"
	"github.com/anotb/pptx-masters/text"
	"github.com/anotb/pptx-masters/units"
)

// DefaultRoundRectAdjust is the roundRect corner adjustment used when the
// geometry declares none.
const DefaultRoundRectAdjust = 16667

// boilerplate matches the editing prompts templates ship in their text.
var boilerplate = regexp.MustCompile(`(?i)^(Click (to|icon to) (edit|add) .*|Edit Master (text|title|subtitle) styles?|Second level|Third level|Fourth level|Fifth level)$`)

var lineGeometries = map[string]bool{
	"line":               true,
	"straightConnector1": true,
}

// placeholderRoles maps DrawingML placeholder types to output roles.
var placeholderRoles = map[string]string{
	"title":    "title",
	"ctrTitle": "title",
	"body":     "body",
	"subTitle": "body",
	"obj":      "body",
	"pic":      "pic",
	"clipArt":  "pic",
	"chart":    "chart",
	"tbl":      "tbl",
	"media":    "media",
	"sldNum":   "sldNum",
	"ftr":      "ftr",
	"dt":       "dt",
	"hdr":      "hdr",
}

// PlaceholderRole returns the output role for a placeholder type. Untyped
// and unknown placeholders are body placeholders.
func PlaceholderRole(phType string) string {
	if role, ok := placeholderRoles[phType]; ok {
		return role
	}
	return "body"
}

// FlattenText joins paragraphs with newlines and drops the editing prompts
// templates carry ("Click to edit Master title style", "Second level", ...).
func FlattenText(p *text.Props) string {
	if p == nil {
		return ""
	}
	lines := make([]string, 0, len(p.Paragraphs))
	for i := range p.Paragraphs {
		para := p.Paragraphs[i].Text()
		for _, line := range strings.Split(para, "\n") {
			if boilerplate.MatchString(strings.TrimSpace(line)) {
				continue
			}
			lines = append(lines, line)
		}
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// MapShape maps a static shape. It returns nil for hidden shapes, pictures
// whose image cannot be resolved, and shapes with nothing visible to draw.
func MapShape(c *Context, s *pptx.Shape) model.Object {
	if s == nil || s.Hidden {
		return nil
	}

	var pos model.Position
	if s.Position != nil {
		pos = *s.Position
	}

	switch {
	case s.Kind == pptx.KindPicture:
		archive, media, ok := c.resolveImage(s.ImageRID, s.Name)
		if !ok {
			return nil
		}
		return &model.Image{
			Name:        s.Name,
			Position:    pos,
			Path:        media,
			ArchivePath: archive,
			Rotation:    s.Rotation,
			Source:      c.Source,
		}

	case lineGeometries[s.Geometry]:
		style := c.shapeLine(s)
		if style == nil {
			style = &model.LineStyle{}
		}
		return &model.Line{
			Name:     s.Name,
			Position: pos,
			Style:    *style,
			FlipH:    s.FlipH,
			FlipV:    s.FlipV,
			Rotation: s.Rotation,
			Source:   c.Source,
		}
	}

	fill := c.shapeFill(s)
	line := c.shapeLine(s)
	shadow := c.shapeShadow(s)

	if s.Text != nil {
		content := FlattenText(s.Text)
		if content != "" || s.TextBox {
			t := &model.Text{
				Name:     s.Name,
				Text:     content,
				Geometry: geometryName(s.Geometry),
				Position: pos,
				Options:  MapTextOptions(TextSources{Own: s.Text, MasterStyle: c.otherStyle()}),
				Fill:     fill,
				Line:     line,
				Shadow:   shadow,
				Source:   c.Source,
			}
			t.Options.Rotate += s.Rotation
			if IsFooterText(content) {
				t.Role = "ftr"
			}
			return t
		}
	}

	if fill == nil && line == nil {
		return nil
	}

	if s.Geometry == "custom" {
		c.Warnf("Custom geometry in %q approximated as a rectangle", s.Name)
	}
	shape := &model.Shape{
		Name:     s.Name,
		Geometry: geometryName(s.Geometry),
		Position: pos,
		Fill:     fill,
		Line:     line,
		Shadow:   shadow,
		Rotation: s.Rotation,
		FlipH:    s.FlipH,
		FlipV:    s.FlipV,
		Source:   c.Source,
	}
	if shape.Geometry == "roundRect" {
		shape.RectRadius = RectRadius(pos, s.Adjustments)
	}
	return shape
}

// RectRadius returns the corner radius of a rounded rectangle in inches:
// the shorter side scaled by the adj guide.
func RectRadius(pos model.Position, adjustments map[string]int64) float64 {
	adj, ok := adjustments["adj"]
	if !ok {
		adj = DefaultRoundRectAdjust
	}
	return units.Round(math.Min(pos.W, pos.H)*float64(adj)/units.Percent, 4)
}

// MapPlaceholder maps a layout or master placeholder. Fill and outline fall
// back to the master placeholder the layout one inherits from.
func MapPlaceholder(c *Context, s *pptx.Shape) *model.Placeholder {
	if s == nil || s.Placeholder == nil {
		return nil
	}

	ph := &model.Placeholder{
		Name:   s.Name,
		Role:   PlaceholderRole(s.Placeholder.Type),
		PhType: s.Placeholder.Type,
		Idx:    s.Placeholder.Idx,
		Text:   FlattenText(s.Text),
		Source: c.Source,
	}
	if s.Position != nil {
		ph.Position = *s.Position
	}

	src := TextSources{Own: s.Text, MasterStyle: c.masterStyle(s.Placeholder.Type)}
	var parent *pptx.Shape
	if s.Inherited != nil {
		src.Inherited = s.Inherited.Text
		parent = s.Inherited.Shape
	}
	ph.Options = MapTextOptions(src)

	ph.Fill = c.shapeFill(s)
	if ph.Fill == nil && s.Fill == nil && parent != nil {
		ph.Fill = c.shapeFill(parent)
	}
	ph.Line = c.shapeLine(s)
	if ph.Line == nil && s.Line == nil && parent != nil {
		ph.Line = c.shapeLine(parent)
	}

	return ph
}

// shapeFill resolves the shape's own fill, else its style reference.
func (c *Context) shapeFill(s *pptx.Shape) *model.Fill {
	if s.Fill != nil {
		return c.mapFill(s.Fill, s.Name)
	}
	return c.styleFill(s.Style)
}

// shapeLine resolves the shape's own outline, else its style reference.
func (c *Context) shapeLine(s *pptx.Shape) *model.LineStyle {
	if s.Line != nil {
		return ResolveLine(s.Line, c.Resolver)
	}
	return c.styleLine(s.Style)
}

// shapeShadow resolves the shape's own effects, else its style reference.
func (c *Context) shapeShadow(s *pptx.Shape) *model.Shadow {
	if s.Effects != nil {
		return ResolveShadow(s.Effects, c.Resolver)
	}
	return c.styleShadow(s.Style)
}

// masterStyle returns the master text style for a placeholder type.
func (c *Context) masterStyle(phType string) map[int]text.ParagraphProps {
	if c.Master == nil {
		return nil
	}
	return c.Master.TextStyleFor(phType)
}

// otherStyle returns the master's otherStyle, which styles free text.
func (c *Context) otherStyle() map[int]text.ParagraphProps {
	if c.Master == nil {
		return nil
	}
	return c.Master.TextStyles.Other
}

func geometryName(prst string) string {
	if prst == "" || prst == "custom" {
		return "rect"
	}
	return prst
}
