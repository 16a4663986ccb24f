package pptx

import (
	"errors"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anotb/pptx-masters/internal/fixture"
	"github.com/anotb/pptx-masters/internal/xmlnode"
)

func parseRoot(t *testing.T, xml string) *xmlquery.Node {
	t.Helper()
	doc, err := xmlnode.Parse([]byte(xml))
	require.NoError(t, err)
	return xmlnode.Root(doc)
}

func testTheme(t *testing.T) *Theme {
	t.Helper()
	theme, err := ParseTheme(parseRoot(t, fixture.Theme("Brand", fixture.DefaultColors())))
	require.NoError(t, err)
	return theme
}

func TestParseTheme(t *testing.T) {
	theme := testTheme(t)

	assert.Equal(t, "Brand", theme.Name)
	assert.Equal(t, "Office", theme.ColorSchemeName)
	assert.Equal(t, "000000", theme.Colors["dk1"], "sysClr uses lastClr")
	assert.Equal(t, "FFFFFF", theme.Colors["lt1"])
	assert.Equal(t, "4472C4", theme.Colors["accent1"])
	assert.Len(t, theme.Colors, 12)
	assert.Equal(t, "Calibri Light", theme.Fonts.Major)
	assert.Equal(t, "Calibri", theme.Fonts.Minor)

	assert.Len(t, theme.FillStyles, 3)
	assert.Len(t, theme.LineStyles, 3)
	assert.Len(t, theme.BgFillStyles, 3)
	assert.Len(t, theme.EffectStyles, 3)
}

func TestThemeStyleIndexes(t *testing.T) {
	theme := testTheme(t)

	assert.Nil(t, theme.FillStyle(0))
	assert.Equal(t, "solidFill", theme.FillStyle(1).Data)
	assert.Equal(t, "gradFill", theme.FillStyle(1003).Data)
	assert.Nil(t, theme.FillStyle(1004))
	assert.Nil(t, theme.FillStyle(4))

	ln := theme.LineStyle(2)
	require.NotNil(t, ln)
	assert.Equal(t, "12700", xmlnode.AttrString(ln, "w"))
	assert.Nil(t, theme.LineStyle(0))
}

func TestParseThemeInvalid(t *testing.T) {
	_, err := ParseTheme(nil)
	assert.True(t, errors.Is(err, ErrInvalidTheme))

	_, err = ParseTheme(parseRoot(t, `<p:sldMaster `+fixture.Namespaces+`/>`))
	assert.True(t, errors.Is(err, ErrInvalidTheme))

	_, err = ParseTheme(parseRoot(t, `<a:theme `+fixture.Namespaces+` name="Empty"/>`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTheme))
	assert.Contains(t, err.Error(), "themeElements")
}

func TestThemeModelCopiesColors(t *testing.T) {
	theme := testTheme(t)
	m := theme.Model()
	m.Colors["accent1"] = "000000"
	assert.Equal(t, "4472C4", theme.Colors["accent1"])
}
