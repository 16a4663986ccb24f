package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anotb/pptx-masters/text"
)

func TestMapTextOptionsListStyleAlignment(t *testing.T) {
	own := textProps(t, `<p:txBody><a:bodyPr/>
		<a:lstStyle><a:lvl1pPr algn="ctr"><a:defRPr sz="2000" b="1"/></a:lvl1pPr></a:lstStyle>
		<a:p><a:r><a:rPr lang="en-US"/><a:t>Agenda</a:t></a:r></a:p>
	</p:txBody>`)

	opts := MapTextOptions(TextSources{Own: own})
	assert.Equal(t, "center", opts.Align, "list-style alignment beats the defaulted left")
	assert.Equal(t, 20.0, opts.FontSize)
	require.NotNil(t, opts.Bold)
	assert.True(t, *opts.Bold)
	assert.Equal(t, "top", opts.VAlign)
	assert.Equal(t, [4]float64{0.05, 0.1, 0.05, 0.1}, opts.Margin)
}

func TestMapTextOptionsExplicitParagraphWins(t *testing.T) {
	own := textProps(t, `<p:txBody><a:bodyPr anchor="b"/>
		<a:lstStyle><a:lvl1pPr algn="ctr"><a:defRPr sz="2000"/></a:lvl1pPr></a:lstStyle>
		<a:p><a:pPr algn="r"><a:defRPr sz="1400"/></a:pPr><a:r><a:rPr lang="en-US" sz="3200"/><a:t>Right</a:t></a:r></a:p>
	</p:txBody>`)

	opts := MapTextOptions(TextSources{Own: own})
	assert.Equal(t, "right", opts.Align)
	assert.Equal(t, 14.0, opts.FontSize, "paragraph defRPr beats list style and first run")
	assert.Equal(t, "bottom", opts.VAlign)
}

func TestMapTextOptionsDefaultedLeft(t *testing.T) {
	own := textProps(t, `<p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:r><a:rPr lang="en-US" sz="1100" i="0"/><a:t>x</a:t></a:r></a:p></p:txBody>`)

	opts := MapTextOptions(TextSources{Own: own})
	assert.Equal(t, "left", opts.Align)
	assert.Equal(t, 11.0, opts.FontSize, "first run fills what defRPr leaves unset")
	require.NotNil(t, opts.Italic)
	assert.False(t, *opts.Italic)
	assert.Nil(t, opts.Bold)
}

func TestMapTextOptionsNoParagraphs(t *testing.T) {
	own := textProps(t, `<p:txBody><a:bodyPr/>
		<a:lstStyle><a:defPPr algn="just"><a:lnSpc><a:spcPct val="90000"/></a:lnSpc><a:defRPr sz="1000"/></a:defPPr></a:lstStyle>
	</p:txBody>`)
	require.Empty(t, own.Paragraphs)

	opts := MapTextOptions(TextSources{Own: own})
	assert.Equal(t, "justify", opts.Align)
	assert.Equal(t, 0.9, opts.LineSpacingMultiple)
	assert.Equal(t, 10.0, opts.FontSize)
}

func TestMapTextOptionsInheritance(t *testing.T) {
	inherited := textProps(t, `<p:txBody><a:bodyPr lIns="0" tIns="0" rIns="0" bIns="0" anchor="ctr"/>
		<a:lstStyle><a:lvl1pPr><a:defRPr sz="2400"><a:solidFill><a:schemeClr val="accent1"/></a:solidFill></a:defRPr></a:lvl1pPr></a:lstStyle>
		<a:p><a:r><a:t>Master</a:t></a:r></a:p>
	</p:txBody>`)
	own := textProps(t, `<p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:r><a:rPr lang="en-US"/><a:t>Layout</a:t></a:r></a:p></p:txBody>`)

	master := text.ExtractListStyle(parseNode(t, wrap(`<a:lvl1pPr algn="ctr"><a:defRPr sz="4400"><a:latin typeface="+mj-lt"/></a:defRPr></a:lvl1pPr>`)), testResolver(t))

	opts := MapTextOptions(TextSources{Own: own, Inherited: inherited, MasterStyle: master})
	assert.Equal(t, 24.0, opts.FontSize, "inherited list style beats master style")
	assert.Equal(t, "4472C4", opts.Color)
	assert.Equal(t, "Calibri Light", opts.FontFace, "master style fills the rest")
	assert.Equal(t, "center", opts.Align)
	assert.Equal(t, "middle", opts.VAlign)
	assert.Equal(t, [4]float64{0, 0, 0, 0}, opts.Margin)
}

func TestMapTextOptionsBullets(t *testing.T) {
	master := text.ExtractListStyle(parseNode(t, wrap(`<a:lvl1pPr marL="228600"><a:buChar char="•"/></a:lvl1pPr>`)), testResolver(t))

	plain := textProps(t, `<p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:r><a:t>Item</a:t></a:r></a:p></p:txBody>`)
	opts := MapTextOptions(TextSources{Own: plain, MasterStyle: master})
	require.NotNil(t, opts.Bullet)
	assert.Equal(t, "2022", opts.Bullet.Code)
	assert.Equal(t, 18.0, opts.Indent)

	none := textProps(t, `<p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:pPr><a:buNone/></a:pPr><a:r><a:t>Item</a:t></a:r></a:p></p:txBody>`)
	opts = MapTextOptions(TextSources{Own: none, MasterStyle: master})
	assert.Nil(t, opts.Bullet, "explicit none suppresses the inherited bullet")
}

func TestMapTextOptionsRunCleanup(t *testing.T) {
	own := textProps(t, `<p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:r><a:rPr u="none" strike="noStrike" baseline="30000"/><a:t>x</a:t></a:r></a:p></p:txBody>`)

	opts := MapTextOptions(TextSources{Own: own})
	assert.Empty(t, opts.Underline)
	assert.Empty(t, opts.Strike)
	assert.True(t, opts.Superscript)
	assert.False(t, opts.Subscript)
}

func TestMapTextOptionsDirection(t *testing.T) {
	hebrew := textProps(t, `<p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:r><a:t>שלום עולם</a:t></a:r></a:p></p:txBody>`)
	assert.True(t, MapTextOptions(TextSources{Own: hebrew}).RTL)

	forced := textProps(t, `<p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:pPr rtl="0"/><a:r><a:t>שלום עולם</a:t></a:r></a:p></p:txBody>`)
	assert.False(t, MapTextOptions(TextSources{Own: forced}).RTL)

	latin := textProps(t, `<p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:r><a:t>Hello</a:t></a:r></a:p></p:txBody>`)
	assert.False(t, MapTextOptions(TextSources{Own: latin}).RTL)
}

func TestMapTextOptionsEmpty(t *testing.T) {
	opts := MapTextOptions(TextSources{})
	assert.Empty(t, opts.Align)
	assert.Equal(t, "top", opts.VAlign)
	assert.Equal(t, [4]float64{0.05, 0.1, 0.05, 0.1}, opts.Margin)
}

func TestSlideNumberHeight(t *testing.T) {
	assert.Equal(t, 0.2778, slideNumberHeight(0.13, 8))
	assert.Equal(t, 0.5, slideNumberHeight(0.5, 8))
	assert.Equal(t, 0.13, slideNumberHeight(0.13, 0))
}
