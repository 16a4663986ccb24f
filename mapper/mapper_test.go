package mapper

import (
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/stretchr/testify/require"

	"github.com/anotb/pptx-masters/color"
	"github.com/anotb/pptx-masters/internal/fixture"
	"github.com/anotb/pptx-masters/internal/xmlnode"
	"github.com/anotb/pptx-masters/model"
	"github.com/anotb/pptx-masters/pptx"
	"github.com/anotb/pptx-masters/text"
)

const masterPath = "ppt/slideMasters/slideMaster1.xml"

const masterRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>
  <Relationship Id="rIdImg" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="../media/image1.png"/>
</Relationships>`

func parseNode(t *testing.T, xml string) *xmlquery.Node {
	t.Helper()
	doc, err := xmlnode.Parse([]byte(xml))
	require.NoError(t, err)
	return xmlnode.Root(doc)
}

// wrap puts a DrawingML fragment inside an element that declares the
// namespaces.
func wrap(inner string) string {
	return `<root ` + fixture.Namespaces + `>` + inner + `</root>`
}

func testTheme(t *testing.T) *pptx.Theme {
	t.Helper()
	theme, err := pptx.ParseTheme(parseNode(t, fixture.Theme("Brand", fixture.DefaultColors())))
	require.NoError(t, err)
	return theme
}

func testResolver(t *testing.T) *color.Resolver {
	t.Helper()
	return testTheme(t).Resolver(color.DefaultColorMap())
}

// parseMaster parses a master holding shapes, with an image relationship
// rIdImg pointing at ppt/media/image1.png.
func parseMaster(t *testing.T, bg, shapes string) *pptx.Master {
	t.Helper()
	rels, err := pptx.ParseRelationships([]byte(masterRels))
	require.NoError(t, err)
	return pptx.ParseMaster(masterPath, parseNode(t, fixture.Master(bg, shapes)), rels, testTheme(t))
}

func masterContext(t *testing.T, m *pptx.Master) *Context {
	t.Helper()
	return &Context{
		Resolver: m.Resolver,
		Theme:    testTheme(t),
		Master:   m,
		Rels:     m.Rels,
		Part:     m.Path,
		Source:   model.SourceMaster,
	}
}

// shapeContext parses shapes into a master and returns the context and the
// parsed shapes.
func shapeContext(t *testing.T, shapes string) (*Context, []*pptx.Shape) {
	t.Helper()
	m := parseMaster(t, "", shapes)
	return masterContext(t, m), m.Shapes
}

func textProps(t *testing.T, txBody string) *text.Props {
	t.Helper()
	root := parseNode(t, wrap(txBody))
	return text.Extract(xmlnode.Child(root, "txBody"), testResolver(t))
}

func boolPtr(b bool) *bool {
	return &b
}
