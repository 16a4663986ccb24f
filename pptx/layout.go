package pptx

import (
	"fmt"
	"path"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/anotb/pptx-masters/color"
	"github.com/anotb/pptx-masters/internal/xmlnode"
)

// Layout is a parsed slide layout.
type Layout struct {
	Path string
	Name string
	// Type is the sldLayout type attribute (title, obj, twoObj, ...), or "".
	Type             string
	ShowMasterShapes bool
	// ColorMapOverride is nil when the layout inherits the master's color
	// map, and holds exactly the overridden keys otherwise.
	ColorMapOverride color.ColorMap
	// Background is nil when the layout has none of its own.
	Background *Background

	Shapes       []*Shape
	Placeholders []*Shape
	StaticShapes []*Shape

	Rels     Relationships
	Resolver *color.Resolver
	Warnings []string
}

// ParseLayout parses a slide layout document element. Placeholders that lack
// a position or text body take them from the master's matching placeholder.
func ParseLayout(path string, root *xmlquery.Node, rels Relationships, master *Master, theme *Theme) *Layout {
	l := &Layout{
		Path:             path,
		Type:             xmlnode.AttrString(root, "type"),
		ShowMasterShapes: true,
		Rels:             rels,
	}

	if v, ok := xmlnode.Attr(root, "showMasterSp"); ok && !xmlnode.ParseBool(v) {
		l.ShowMasterShapes = false
	}

	l.ColorMapOverride = parseColorMapOverride(xmlnode.Child(root, "clrMapOvr"))
	cmap := master.ColorMap
	if l.ColorMapOverride != nil {
		cmap = cmap.Merge(l.ColorMapOverride)
	}
	l.Resolver = theme.Resolver(cmap)

	cSld := xmlnode.Child(root, "cSld")
	l.Name = layoutName(path, root, cSld)
	l.Background = parseBackground(cSld)

	tree := parseShapeTree(xmlnode.Child(cSld, "spTree"), l.Resolver)
	l.Shapes = tree.all
	l.Placeholders = tree.placeholders
	l.StaticShapes = tree.static
	l.Warnings = tree.warnings()

	for _, ph := range l.Placeholders {
		def := master.Lookup(ph.Placeholder)
		if def == nil {
			continue
		}
		ph.Inherited = def
		if ph.Position == nil && def.Position != nil {
			pos := *def.Position
			ph.Position = &pos
		}
		if ph.Text == nil {
			ph.Text = def.Text
		}
	}

	return l
}

// LoadLayout reads and parses the layout at path together with its
// relationships.
func LoadLayout(a *Archive, path string, master *Master, theme *Theme) (*Layout, error) {
	root, err := a.ReadXML(path)
	if err != nil {
		return nil, err
	}
	rels, err := ReadRelationships(a, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ParseLayout(path, root, rels, master, theme), nil
}

// layoutName prefers cSld's name, then matchingName, then the layout's own
// name attribute, then the part's file name.
func layoutName(part string, root, cSld *xmlquery.Node) string {
	for _, candidate := range []string{
		xmlnode.AttrString(cSld, "name"),
		xmlnode.AttrString(root, "matchingName"),
		xmlnode.AttrString(root, "name"),
	} {
		if s := strings.TrimSpace(candidate); s != "" {
			return s
		}
	}
	return strings.TrimSuffix(path.Base(part), path.Ext(part))
}

// parseColorMapOverride returns nil for a:masterClrMapping, a missing
// element, or an override without attributes.
func parseColorMapOverride(ovr *xmlquery.Node) color.ColorMap {
	override := xmlnode.Child(ovr, "overrideClrMapping")
	if override == nil || len(override.Attr) == 0 {
		return nil
	}
	cmap := make(color.ColorMap, len(override.Attr))
	for _, a := range override.Attr {
		if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
			continue
		}
		cmap[a.Name.Local] = a.Value
	}
	if len(cmap) == 0 {
		return nil
	}
	return cmap
}
