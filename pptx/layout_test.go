package pptx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anotb/pptx-masters/internal/fixture"
	"github.com/anotb/pptx-masters/model"
)

func masterShapes() string {
	return fixture.Placeholder(2, "Title Placeholder 1", `type="title"`,
		fixture.Xfrm(838200, 365125, 10515600, 1325563),
		fixture.Paragraph("Click to edit Master title style")) +
		fixture.Placeholder(3, "Text Placeholder 2", `type="body" idx="1"`,
			fixture.Xfrm(838200, 1825625, 10515600, 4351338),
			fixture.Paragraph("Click to edit Master text styles")) +
		fixture.Placeholder(4, "Slide Number Placeholder 5", `type="sldNum" sz="quarter" idx="4"`,
			fixture.Xfrm(8610600, 6356350, 2743200, 365125),
			fixture.SlideNumberField(1200)) +
		fixture.Shape(7, "Accent Bar", fixture.Xfrm(0, 0, 12192000, 91440),
			`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:solidFill><a:schemeClr val="accent1"/></a:solidFill>`, "") +
		fixture.Group(8, "Logo Group") +
		fixture.Connector(9, "Rule", fixture.Xfrm(0, 914400, 914400, 0))
}

func testMaster(t *testing.T) *Master {
	t.Helper()
	root := parseRoot(t, fixture.Master(fixture.SolidBackground("F2F2F2"), masterShapes()))
	return ParseMaster("ppt/slideMasters/slideMaster1.xml", root, Relationships{}, testTheme(t))
}

// ============================================================================
// Master
// ============================================================================

func TestParseMaster(t *testing.T) {
	m := testMaster(t)

	assert.Equal(t, "dk1", m.ColorMap["tx1"])
	require.NotNil(t, m.Background)
	require.NotNil(t, m.Background.Fill)
	assert.Equal(t, FillSolid, m.Background.Fill.Kind)

	assert.Len(t, m.Shapes, 6)
	assert.Len(t, m.Placeholders, 3)
	require.Len(t, m.StaticShapes, 1)
	assert.Equal(t, "Accent Bar", m.StaticShapes[0].Name)
	assert.Equal(t, "rect", m.StaticShapes[0].Geometry)

	require.Len(t, m.Warnings, 2)
	assert.Contains(t, m.Warnings[0], "1 grouped shape")
	assert.Contains(t, m.Warnings[1], "1 connector")

	require.NotNil(t, m.TextStyles.Title)
	assert.Equal(t, 44.0, m.TextStyles.Title[1].Defaults.FontSize)
	assert.Equal(t, "Calibri Light", m.TextStyles.Title[1].Defaults.FontFace)
	require.NotNil(t, m.TextStyles.Body[1].Bullet)
	assert.Equal(t, "2022", m.TextStyles.Body[1].Bullet.Code)
}

func TestPlaceholderDefaultsKeys(t *testing.T) {
	m := testMaster(t)

	assert.Contains(t, m.PlaceholderDefaults, "title")
	assert.Contains(t, m.PlaceholderDefaults, "body")
	assert.Contains(t, m.PlaceholderDefaults, "idx:1")
	assert.Contains(t, m.PlaceholderDefaults, "sldNum")
	assert.Contains(t, m.PlaceholderDefaults, "idx:4")
	assert.Same(t, m.PlaceholderDefaults["body"], m.PlaceholderDefaults["idx:1"])

	title := m.PlaceholderDefaults["title"]
	require.NotNil(t, title.Position)
	assert.Equal(t, model.Position{X: 0.92, Y: 0.4, W: 11.5, H: 1.45}, *title.Position)
	require.NotNil(t, title.Text)
	assert.Equal(t, "Click to edit Master title style", title.Text.PlainText)
}

func TestParseMasterNil(t *testing.T) {
	m := ParseMaster("x.xml", nil, Relationships{}, testTheme(t))
	assert.Equal(t, "lt1", m.ColorMap["bg1"])
	assert.Nil(t, m.Background)
	assert.Empty(t, m.Shapes)
	assert.Empty(t, m.PlaceholderDefaults)
}

func TestTextStyleFor(t *testing.T) {
	m := testMaster(t)
	assert.NotNil(t, m.TextStyleFor("ctrTitle"))
	assert.Equal(t, m.TextStyles.Body, m.TextStyleFor("subTitle"))
	assert.Equal(t, m.TextStyles.Other, m.TextStyleFor("dt"))
}

// ============================================================================
// Layout
// ============================================================================

func parseTestLayout(t *testing.T, xml string) *Layout {
	t.Helper()
	m := testMaster(t)
	return ParseLayout("ppt/slideLayouts/slideLayout1.xml", parseRoot(t, xml), Relationships{}, m, testTheme(t))
}

func TestLayoutInheritsPositionByTypeThenIdx(t *testing.T) {
	l := parseTestLayout(t, fixture.Layout("Title and Content", `type="obj"`, "",
		fixture.Placeholder(2, "Title 1", `type="title"`, "", "")+
			fixture.Placeholder(3, "Content Placeholder 2", `idx="1"`, "", fixture.Paragraph("Agenda"))+
			fixture.Placeholder(4, "Local", `type="body" idx="1"`, fixture.Xfrm(914400, 914400, 914400, 914400), ""), ""))

	require.Len(t, l.Placeholders, 3)

	title := l.Placeholders[0]
	require.NotNil(t, title.Position)
	assert.Equal(t, 0.92, title.Position.X)
	require.NotNil(t, title.Text, "missing text inherits the master's")
	assert.Equal(t, "Click to edit Master title style", title.Text.PlainText)

	content := l.Placeholders[1]
	require.NotNil(t, content.Position, "untyped placeholder inherits by idx")
	assert.Equal(t, 4.76, content.Position.H)
	assert.Equal(t, "Agenda", content.Text.PlainText, "local text wins")

	local := l.Placeholders[2]
	assert.Equal(t, model.Position{X: 1, Y: 1, W: 1, H: 1}, *local.Position, "local position never inherits")
	assert.NotNil(t, local.Inherited)
}

func TestLayoutInheritanceAliases(t *testing.T) {
	l := parseTestLayout(t, fixture.Layout("Title Slide", `type="title"`, "",
		fixture.Placeholder(2, "Title 1", `type="ctrTitle"`, "", "")+
			fixture.Placeholder(3, "Orphan", `type="pic" idx="13"`, "", ""), ""))

	ctr := l.Placeholders[0]
	require.NotNil(t, ctr.Position)
	assert.Equal(t, 0.4, ctr.Position.Y)

	orphan := l.Placeholders[1]
	assert.Nil(t, orphan.Position)
	assert.Nil(t, orphan.Inherited)
}

func TestLayoutAttributes(t *testing.T) {
	l := parseTestLayout(t, fixture.Layout("Blank", `type="blank" showMasterSp="0" preserve="1"`, "", "", ""))
	assert.Equal(t, "Blank", l.Name)
	assert.Equal(t, "blank", l.Type)
	assert.False(t, l.ShowMasterShapes)
	assert.Nil(t, l.Background)

	shown := parseTestLayout(t, fixture.Layout("Shown", "", "", "", ""))
	assert.True(t, shown.ShowMasterShapes)
	assert.Empty(t, shown.Type)
}

func TestLayoutNameFallbacks(t *testing.T) {
	l := parseTestLayout(t, `<p:sldLayout `+fixture.Namespaces+` matchingName="Matching"><p:cSld><p:spTree/></p:cSld></p:sldLayout>`)
	assert.Equal(t, "Matching", l.Name)

	l = parseTestLayout(t, `<p:sldLayout `+fixture.Namespaces+`><p:cSld><p:spTree/></p:cSld></p:sldLayout>`)
	assert.Equal(t, "slideLayout1", l.Name)
}

func TestLayoutColorMapOverride(t *testing.T) {
	inherit := parseTestLayout(t, fixture.Layout("Inherit", "", "", "",
		`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`))
	assert.Nil(t, inherit.ColorMapOverride)

	absent := parseTestLayout(t, fixture.Layout("Absent", "", "", "", ""))
	assert.Nil(t, absent.ColorMapOverride)

	override := parseTestLayout(t, fixture.Layout("Dark", "", "", "",
		`<p:clrMapOvr><a:overrideClrMapping bg1="dk1" tx1="lt1"/></p:clrMapOvr>`))
	assert.Equal(t, map[string]string{"bg1": "dk1", "tx1": "lt1"}, map[string]string(override.ColorMapOverride))
	assert.Equal(t, "000000", override.Resolver.ResolveSchemeColor("bg1"))
	assert.Equal(t, "FFFFFF", override.Resolver.ResolveSchemeColor("tx1"))
}

func TestLayoutWarnings(t *testing.T) {
	l := parseTestLayout(t, fixture.Layout("Busy", "", "",
		fixture.Group(2, "g1")+fixture.Group(3, "g2")+fixture.Table(4, "Table 1"), ""))

	require.Len(t, l.Warnings, 2)
	assert.Contains(t, l.Warnings[0], "2 grouped shape")
	assert.Contains(t, l.Warnings[1], "1 graphic frame")
	assert.Contains(t, l.Warnings[1], "table")
	assert.Empty(t, l.Placeholders)
	assert.Empty(t, l.StaticShapes)
}

func TestLayoutBackgroundRef(t *testing.T) {
	l := parseTestLayout(t, fixture.Layout("Ref", "",
		`<p:bg><p:bgRef idx="1001"><a:schemeClr val="bg2"/></p:bgRef></p:bg>`, "", ""))
	require.NotNil(t, l.Background)
	require.NotNil(t, l.Background.Ref)
	assert.Equal(t, int64(1001), l.Background.Ref.Idx)
	assert.Nil(t, l.Background.Fill)
}

func TestShapeDetails(t *testing.T) {
	l := parseTestLayout(t, fixture.Layout("Shapes", "", "",
		fixture.Shape(5, "Rounded", `<a:xfrm rot="2700000" flipH="1"><a:off x="0" y="0"/><a:ext cx="1828800" cy="914400"/></a:xfrm>`,
			`<a:prstGeom prst="roundRect"><a:avLst><a:gd name="adj" fmla="val 25000"/></a:avLst></a:prstGeom><a:gradFill/><a:ln w="12700"/>`, "")+
			fixture.Picture(6, "Logo", "rId7", fixture.Xfrm(0, 0, 914400, 914400))+
			fixture.TextBox(7, "Footer Text", fixture.Xfrm(0, 0, 914400, 914400), fixture.Paragraph("© ACME")), ""))

	require.Len(t, l.StaticShapes, 3)

	rounded := l.StaticShapes[0]
	assert.Equal(t, KindShape, rounded.Kind)
	assert.Equal(t, "roundRect", rounded.Geometry)
	assert.Equal(t, int64(25000), rounded.Adjustments["adj"])
	assert.Equal(t, 45.0, rounded.Rotation)
	assert.True(t, rounded.FlipH)
	require.NotNil(t, rounded.Fill)
	assert.Equal(t, FillGradient, rounded.Fill.Kind)
	assert.NotNil(t, rounded.Line)

	pic := l.StaticShapes[1]
	assert.Equal(t, KindPicture, pic.Kind)
	assert.Equal(t, "rId7", pic.ImageRID)

	box := l.StaticShapes[2]
	assert.True(t, box.TextBox)
	require.NotNil(t, box.Text)
	assert.Equal(t, "© ACME", box.Text.PlainText)
	require.NotNil(t, box.Fill)
	assert.Equal(t, FillNone, box.Fill.Kind)
}

func TestLoadMasterAndLayouts(t *testing.T) {
	layout := fixture.Layout("Title Only", `type="titleOnly"`, "",
		fixture.Placeholder(2, "Title 1", `type="title"`, "", ""), "")
	a := openFixture(t, fixture.New().AddMaster(
		fixture.Part{XML: fixture.Master("", masterShapes())},
		fixture.Part{XML: layout},
		fixture.Part{XML: fixture.Layout("Blank", `type="blank"`, "", "", "")},
	))

	theme := testTheme(t)
	m, err := LoadMaster(a, "ppt/slideMasters/slideMaster1.xml", theme)
	require.NoError(t, err)
	assert.Equal(t, []string{"rIdL1", "rIdL2"}, m.LayoutIDs)

	paths := LayoutPaths(m)
	require.Equal(t, []string{
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/slideLayouts/slideLayout2.xml",
	}, paths)

	l, err := LoadLayout(a, paths[0], m, theme)
	require.NoError(t, err)
	assert.Equal(t, "Title Only", l.Name)
	assert.Equal(t, 1, l.Rels.Len())

	_, err = LoadLayout(a, "ppt/slideLayouts/slideLayout9.xml", m, theme)
	assert.ErrorIs(t, err, ErrNotFound)
}
