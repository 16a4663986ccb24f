package pptx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/anotb/pptx-masters/color"
	"github.com/anotb/pptx-masters/internal/xmlnode"
	"github.com/anotb/pptx-masters/model"
	"github.com/anotb/pptx-masters/text"
	"github.com/anotb/pptx-masters/units"
)

// ShapeKind is the shape-tree element a Shape came from.
type ShapeKind int

const (
	KindShape ShapeKind = iota
	KindPicture
	KindGroup
	KindConnector
	KindGraphicFrame
)

func (k ShapeKind) String() string {
	switch k {
	case KindShape:
		return "shape"
	case KindPicture:
		return "picture"
	case KindGroup:
		return "group"
	case KindConnector:
		return "connector"
	case KindGraphicFrame:
		return "graphic frame"
	}
	return "unknown"
}

// FillKind identifies a fill element.
type FillKind int

const (
	FillNone FillKind = iota
	FillSolid
	FillGradient
	FillImage
	FillPattern
	FillGroup
)

var fillKinds = map[string]FillKind{
	"noFill":    FillNone,
	"solidFill": FillSolid,
	"gradFill":  FillGradient,
	"blipFill":  FillImage,
	"pattFill":  FillPattern,
	"grpFill":   FillGroup,
}

// fillElements lists the fill element names in lookup order.
var fillElements = []string{"noFill", "solidFill", "gradFill", "blipFill", "pattFill", "grpFill"}

// Fill is a fill descriptor: its kind plus the element to resolve.
type Fill struct {
	Kind    FillKind
	Element *xmlquery.Node
}

// FindFill returns the first fill element among the children of n, or nil.
func FindFill(n *xmlquery.Node) *Fill {
	el, name := xmlnode.FirstOf(n, fillElements...)
	if el == nil {
		return nil
	}
	return &Fill{Kind: fillKinds[name], Element: el}
}

// PlaceholderRef is the p:ph identity of a placeholder.
type PlaceholderRef struct {
	// Type is "" when the source omits it.
	Type string
	Idx  *int
}

// Key returns the placeholder-defaults key: the type when present, else
// "idx:<n>", else "".
func (p *PlaceholderRef) Key() string {
	if p.Type != "" {
		return p.Type
	}
	return p.IdxKey()
}

// IdxKey returns "idx:<n>", or "" when there is no index.
func (p *PlaceholderRef) IdxKey() string {
	if p.Idx == nil {
		return ""
	}
	return "idx:" + strconv.Itoa(*p.Idx)
}

// Shape is one parsed shape-tree entry.
type Shape struct {
	Kind    ShapeKind
	ID      int
	Name    string
	Hidden  bool
	TextBox bool

	// Geometry is the preset geometry name, "custom" for custom geometry,
	// or "" when none is declared.
	Geometry string
	// Adjustments holds avLst guide values by name (adj, adj1, ...).
	Adjustments map[string]int64

	// Position is nil when the shape has no transform of its own.
	Position *model.Position
	Rotation float64
	FlipH    bool
	FlipV    bool

	Fill    *Fill
	Line    *xmlquery.Node // a:ln
	Effects *xmlquery.Node // a:effectLst
	Style   *xmlquery.Node // p:style

	// ImageRID is the r:embed of a picture's blip.
	ImageRID string

	// Text is nil when the shape has no text body.
	Text *text.Props

	Placeholder *PlaceholderRef
	// Inherited is the matched master placeholder default, set on layout
	// placeholders only.
	Inherited *PlaceholderDefault
	// GraphicType is the graphicData kind of a graphic frame (table, chart,
	// diagram, ...).
	GraphicType string

	Element *xmlquery.Node
}

// IsPlaceholder reports whether the shape has a p:ph.
func (s *Shape) IsPlaceholder() bool {
	return s.Placeholder != nil
}

// PlaceholderType returns the p:ph type, or "".
func (s *Shape) PlaceholderType() string {
	if s.Placeholder == nil {
		return ""
	}
	return s.Placeholder.Type
}

// PlaceholderDefault is what a master placeholder contributes to layout
// placeholders that share its identity.
type PlaceholderDefault struct {
	Position *model.Position
	Text     *text.Props
	Shape    *Shape
}

// shapeTree is the result of splitting a p:spTree.
type shapeTree struct {
	all          []*Shape
	placeholders []*Shape
	static       []*Shape
	skipped      map[ShapeKind]int
	graphics     []string
}

func parseShapeTree(spTree *xmlquery.Node, r *color.Resolver) shapeTree {
	tree := shapeTree{skipped: make(map[ShapeKind]int)}
	for _, el := range xmlnode.Elements(spTree) {
		var s *Shape
		switch xmlnode.Name(el) {
		case "sp":
			s = parseShape(el, KindShape, r)
		case "pic":
			s = parseShape(el, KindPicture, r)
		case "cxnSp":
			s = parseShape(el, KindConnector, r)
		case "grpSp":
			s = parseShape(el, KindGroup, r)
		case "graphicFrame":
			s = parseShape(el, KindGraphicFrame, r)
		case "AlternateContent":
			if choice := xmlnode.Child(el, "Choice"); choice != nil {
				sub := parseShapeTree(choice, r)
				tree.merge(sub)
			}
			continue
		default:
			continue
		}

		tree.all = append(tree.all, s)
		switch {
		case s.Kind == KindGroup || s.Kind == KindConnector || s.Kind == KindGraphicFrame:
			tree.skipped[s.Kind]++
			if s.Kind == KindGraphicFrame && s.GraphicType != "" {
				tree.graphics = append(tree.graphics, s.GraphicType)
			}
		case s.IsPlaceholder():
			tree.placeholders = append(tree.placeholders, s)
		default:
			tree.static = append(tree.static, s)
		}
	}
	return tree
}

func (t *shapeTree) merge(o shapeTree) {
	t.all = append(t.all, o.all...)
	t.placeholders = append(t.placeholders, o.placeholders...)
	t.static = append(t.static, o.static...)
	for k, n := range o.skipped {
		t.skipped[k] += n
	}
	t.graphics = append(t.graphics, o.graphics...)
}

// warnings describes the unsupported shapes that were skipped.
func (t *shapeTree) warnings() []string {
	var out []string
	if n := t.skipped[KindGroup]; n > 0 {
		out = append(out, fmt.Sprintf("Skipped %d grouped shape(s): groups are not supported", n))
	}
	if n := t.skipped[KindConnector]; n > 0 {
		out = append(out, fmt.Sprintf("Skipped %d connector(s): connectors are not supported", n))
	}
	if n := t.skipped[KindGraphicFrame]; n > 0 {
		msg := fmt.Sprintf("Skipped %d graphic frame(s): tables, charts and diagrams are not supported", n)
		if len(t.graphics) > 0 {
			msg += " (" + strings.Join(t.graphics, ", ") + ")"
		}
		out = append(out, msg)
	}
	return out
}

// nonVisualProps returns the p:nv*Pr element of a shape-tree entry.
func nonVisualProps(el *xmlquery.Node) *xmlquery.Node {
	for _, c := range xmlnode.Elements(el) {
		if name := xmlnode.Name(c); strings.HasPrefix(name, "nv") && strings.HasSuffix(name, "Pr") {
			return c
		}
	}
	return nil
}

func parseShape(el *xmlquery.Node, kind ShapeKind, r *color.Resolver) *Shape {
	s := &Shape{Kind: kind, Element: el}

	nv := nonVisualProps(el)
	if cNvPr := xmlnode.Child(nv, "cNvPr"); cNvPr != nil {
		if id, ok := xmlnode.AttrInt(cNvPr, "id"); ok {
			s.ID = int(id)
		}
		s.Name = xmlnode.AttrString(cNvPr, "name")
		if hidden := xmlnode.AttrBool(cNvPr, "hidden"); hidden != nil {
			s.Hidden = *hidden
		}
	}
	if txBox := xmlnode.AttrBool(xmlnode.Child(nv, "cNvSpPr"), "txBox"); txBox != nil {
		s.TextBox = *txBox
	}
	if ph := xmlnode.Path(nv, "nvPr", "ph"); ph != nil {
		ref := &PlaceholderRef{Type: xmlnode.AttrString(ph, "type")}
		if idx, ok := xmlnode.AttrInt(ph, "idx"); ok {
			i := int(idx)
			ref.Idx = &i
		}
		s.Placeholder = ref
	}

	var xfrm *xmlquery.Node
	switch kind {
	case KindGroup:
		xfrm = xmlnode.Path(el, "grpSpPr", "xfrm")
	case KindGraphicFrame:
		xfrm = xmlnode.Child(el, "xfrm")
		uri := xmlnode.AttrString(xmlnode.Path(el, "graphic", "graphicData"), "uri")
		if i := strings.LastIndex(uri, "/"); i >= 0 {
			s.GraphicType = uri[i+1:]
		}
	default:
		spPr := xmlnode.Child(el, "spPr")
		xfrm = xmlnode.Child(spPr, "xfrm")
		s.Fill = FindFill(spPr)
		s.Line = xmlnode.Child(spPr, "ln")
		s.Effects = xmlnode.Child(spPr, "effectLst")
		if prst := xmlnode.Child(spPr, "prstGeom"); prst != nil {
			s.Geometry = xmlnode.AttrString(prst, "prst")
			s.Adjustments = parseAdjustments(xmlnode.Child(prst, "avLst"))
		} else if xmlnode.Has(spPr, "custGeom") {
			s.Geometry = "custom"
		}
	}
	applyTransform(s, xfrm)

	s.Style = xmlnode.Child(el, "style")

	if kind == KindPicture {
		s.ImageRID = xmlnode.AttrString(xmlnode.Path(el, "blipFill", "blip"), "embed")
	}

	if txBody := xmlnode.Child(el, "txBody"); txBody != nil {
		s.Text = text.Extract(txBody, r)
	}

	return s
}

func applyTransform(s *Shape, xfrm *xmlquery.Node) {
	if xfrm == nil {
		return
	}
	if rot, ok := xmlnode.AttrInt(xfrm, "rot"); ok {
		s.Rotation = units.AngleToDegrees(rot)
	}
	if b := xmlnode.AttrBool(xfrm, "flipH"); b != nil {
		s.FlipH = *b
	}
	if b := xmlnode.AttrBool(xfrm, "flipV"); b != nil {
		s.FlipV = *b
	}

	off, ext := xmlnode.Child(xfrm, "off"), xmlnode.Child(xfrm, "ext")
	if off == nil && ext == nil {
		return
	}
	x, _ := xmlnode.AttrInt(off, "x")
	y, _ := xmlnode.AttrInt(off, "y")
	cx, _ := xmlnode.AttrInt(ext, "cx")
	cy, _ := xmlnode.AttrInt(ext, "cy")
	pos := model.PositionFromEMU(x, y, cx, cy)
	s.Position = &pos
}

// parseAdjustments reads a:gd entries of the form fmla="val 16667".
func parseAdjustments(avLst *xmlquery.Node) map[string]int64 {
	guides := xmlnode.Children(avLst, "gd")
	if len(guides) == 0 {
		return nil
	}
	out := make(map[string]int64, len(guides))
	for _, gd := range guides {
		fields := strings.Fields(xmlnode.AttrString(gd, "fmla"))
		if len(fields) != 2 || fields[0] != "val" {
			continue
		}
		if v, err := strconv.ParseInt(fields[1], 10, 64); err == nil {
			out[xmlnode.AttrString(gd, "name")] = v
		}
	}
	return out
}

// parseBackground reads p:cSld/p:bg.
func parseBackground(cSld *xmlquery.Node) *Background {
	bg := xmlnode.Child(cSld, "bg")
	if bg == nil {
		return nil
	}
	if bgPr := xmlnode.Child(bg, "bgPr"); bgPr != nil {
		return &Background{Fill: FindFill(bgPr)}
	}
	if ref := xmlnode.Child(bg, "bgRef"); ref != nil {
		idx, _ := xmlnode.AttrInt(ref, "idx")
		return &Background{Ref: &StyleRef{Idx: idx, Element: ref}}
	}
	return nil
}

// Background is a parsed p:bg: either inline fill properties or a reference
// into the theme's format scheme.
type Background struct {
	Fill *Fill
	Ref  *StyleRef
}

// StyleRef is a style-matrix reference (p:bgRef, a:fillRef, a:lnRef). The
// element carries the color that replaces phClr in the referenced style.
type StyleRef struct {
	Idx     int64
	Element *xmlquery.Node
}
