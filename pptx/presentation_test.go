package pptx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anotb/pptx-masters/internal/fixture"
	"github.com/anotb/pptx-masters/model"
)

func TestParseSlideSize(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		expected model.Dimensions
	}{
		{"widescreen", `<p:presentation ` + fixture.Namespaces + `><p:sldSz cx="12192000" cy="6858000"/></p:presentation>`, model.Dimensions{Width: 13.3333, Height: 7.5}},
		{"4:3", `<p:presentation ` + fixture.Namespaces + `><p:sldSz cx="9144000" cy="6858000"/></p:presentation>`, model.Dimensions{Width: 10, Height: 7.5}},
		{"empty document", ``, model.DefaultDimensions},
		{"malformed", `<p:presentation`, model.DefaultDimensions},
		{"wrong root", `<foo/>`, model.DefaultDimensions},
		{"missing size", `<p:presentation ` + fixture.Namespaces + `/>`, model.DefaultDimensions},
		{"missing cy", `<p:presentation ` + fixture.Namespaces + `><p:sldSz cx="9144000"/></p:presentation>`, model.DefaultDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSlideSize([]byte(tt.data)))
		})
	}
}

func TestMasterPathsFollowPresentationOrder(t *testing.T) {
	a := openFixture(t, fixture.New().AddMaster(simpleMaster()).AddMaster(simpleMaster()))

	paths, err := MasterPaths(a)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideMasters/slideMaster2.xml",
	}, paths)
}

func TestThemePath(t *testing.T) {
	a := openFixture(t, fixture.New().AddMaster(simpleMaster()))
	path, err := ThemePath(a, []string{"ppt/slideMasters/slideMaster1.xml"})
	require.NoError(t, err)
	assert.Equal(t, "ppt/theme/theme1.xml", path)
}

func TestNumberedSortsNumerically(t *testing.T) {
	names := []string{
		"ppt/slideMasters/slideMaster10.xml",
		"ppt/slideMasters/slideMaster2.xml",
		"ppt/slideMasters/_rels/slideMaster2.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
	}
	assert.Equal(t, []string{
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideMasters/slideMaster2.xml",
		"ppt/slideMasters/slideMaster10.xml",
	}, numbered(names, masterPattern))
}

func TestLayoutPathsFallbackToRelationships(t *testing.T) {
	rels, err := ParseRelationships([]byte(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout11.xml"/>
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout2.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="../theme/theme1.xml"/>
</Relationships>`))
	require.NoError(t, err)

	m := &Master{Path: "ppt/slideMasters/slideMaster1.xml", Rels: rels}
	assert.Equal(t, []string{
		"ppt/slideLayouts/slideLayout2.xml",
		"ppt/slideLayouts/slideLayout11.xml",
	}, LayoutPaths(m))

	m.LayoutIDs = []string{"rId3", "rId1"}
	assert.Equal(t, []string{
		"ppt/slideLayouts/slideLayout11.xml",
		"ppt/slideLayouts/slideLayout2.xml",
	}, LayoutPaths(m))
}
