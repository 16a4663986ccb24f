package pptx

import (
	"fmt"

	"github.com/antchfx/xmlquery"

	"github.com/anotb/pptx-masters/color"
	"github.com/anotb/pptx-masters/internal/xmlnode"
	"github.com/anotb/pptx-masters/text"
)

// TextStyles holds a master's p:txStyles. Each section is nil when absent.
type TextStyles struct {
	Title map[int]text.ParagraphProps
	Body  map[int]text.ParagraphProps
	Other map[int]text.ParagraphProps
}

// Master is a parsed slide master.
type Master struct {
	Path       string
	Name       string
	ColorMap   color.ColorMap
	Background *Background

	Shapes       []*Shape
	Placeholders []*Shape
	// StaticShapes are the non-placeholder shapes layouts inherit when they
	// show master shapes.
	StaticShapes []*Shape

	TextStyles TextStyles
	Rels       Relationships
	// LayoutIDs are the r:ids of p:sldLayoutIdLst in order.
	LayoutIDs []string

	// PlaceholderDefaults is keyed by placeholder type and by "idx:<n>".
	PlaceholderDefaults map[string]*PlaceholderDefault

	Resolver *color.Resolver
	Warnings []string
}

// ParseMaster parses a slide master document element. A nil root yields an
// empty master that uses the default color map.
func ParseMaster(path string, root *xmlquery.Node, rels Relationships, theme *Theme) *Master {
	m := &Master{
		Path:                path,
		Rels:                rels,
		ColorMap:            parseColorMap(xmlnode.Child(root, "clrMap")),
		PlaceholderDefaults: make(map[string]*PlaceholderDefault),
	}
	m.Resolver = theme.Resolver(m.ColorMap)

	cSld := xmlnode.Child(root, "cSld")
	m.Name = xmlnode.AttrString(cSld, "name")
	m.Background = parseBackground(cSld)

	tree := parseShapeTree(xmlnode.Child(cSld, "spTree"), m.Resolver)
	m.Shapes = tree.all
	m.Placeholders = tree.placeholders
	m.StaticShapes = tree.static
	m.Warnings = tree.warnings()

	for _, ph := range m.Placeholders {
		def := &PlaceholderDefault{Position: ph.Position, Text: ph.Text, Shape: ph}
		if t := ph.Placeholder.Type; t != "" {
			if _, exists := m.PlaceholderDefaults[t]; !exists {
				m.PlaceholderDefaults[t] = def
			}
		}
		if key := ph.Placeholder.IdxKey(); key != "" {
			if _, exists := m.PlaceholderDefaults[key]; !exists {
				m.PlaceholderDefaults[key] = def
			}
		}
	}

	if styles := xmlnode.Child(root, "txStyles"); styles != nil {
		m.TextStyles = TextStyles{
			Title: listStyle(xmlnode.Child(styles, "titleStyle"), m.Resolver),
			Body:  listStyle(xmlnode.Child(styles, "bodyStyle"), m.Resolver),
			Other: listStyle(xmlnode.Child(styles, "otherStyle"), m.Resolver),
		}
	}

	for _, id := range xmlnode.Children(xmlnode.Child(root, "sldLayoutIdLst"), "sldLayoutId") {
		if rid := xmlnode.QualifiedAttr(id, "id"); rid != "" {
			m.LayoutIDs = append(m.LayoutIDs, rid)
		}
	}

	return m
}

// LoadMaster reads and parses the master at path together with its
// relationships.
func LoadMaster(a *Archive, path string, theme *Theme) (*Master, error) {
	root, err := a.ReadXML(path)
	if err != nil {
		return nil, err
	}
	rels, err := ReadRelationships(a, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ParseMaster(path, root, rels, theme), nil
}

// Lookup finds the master placeholder default for a layout placeholder: by
// type, then by index, then by the master type the layout type stands in
// for (ctrTitle uses title, subTitle uses body).
func (m *Master) Lookup(ref *PlaceholderRef) *PlaceholderDefault {
	if ref == nil {
		return nil
	}
	if ref.Type != "" {
		if def, ok := m.PlaceholderDefaults[ref.Type]; ok {
			return def
		}
	}
	if key := ref.IdxKey(); key != "" {
		if def, ok := m.PlaceholderDefaults[key]; ok {
			return def
		}
	}
	if alias, ok := placeholderAliases[ref.Type]; ok {
		return m.PlaceholderDefaults[alias]
	}
	return nil
}

var placeholderAliases = map[string]string{
	"ctrTitle": "title",
	"subTitle": "body",
	"obj":      "body",
}

// TextStyleFor returns the master text style a placeholder type draws on.
func (m *Master) TextStyleFor(phType string) map[int]text.ParagraphProps {
	switch phType {
	case "title", "ctrTitle":
		return m.TextStyles.Title
	case "body", "subTitle", "obj", "":
		return m.TextStyles.Body
	}
	return m.TextStyles.Other
}

func parseColorMap(clrMap *xmlquery.Node) color.ColorMap {
	cmap := color.DefaultColorMap()
	if clrMap == nil {
		return cmap
	}
	for _, key := range color.ColorMapKeys {
		if v := xmlnode.AttrString(clrMap, key); v != "" {
			cmap[key] = v
		}
	}
	return cmap
}

func listStyle(n *xmlquery.Node, r *color.Resolver) map[int]text.ParagraphProps {
	if n == nil {
		return nil
	}
	return text.ExtractListStyle(n, r)
}
