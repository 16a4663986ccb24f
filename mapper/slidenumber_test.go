package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anotb/pptx-masters/internal/fixture"
	"github.com/anotb/pptx-masters/model"
)

// 12.5in, 7.13in, 0.34in, 0.13in
var footerXfrm = fixture.Xfrm(11430000, 6519672, 310896, 118872)

func TestSlideNumberFromShape(t *testing.T) {
	c, shapes := shapeContext(t,
		fixture.TextBox(2, "Page", footerXfrm, fixture.SlideNumberField(800))+
			fixture.TextBox(3, "Page Label", footerXfrm,
				`<a:p><a:r><a:rPr lang="en-US" sz="800"/><a:t>Page </a:t></a:r><a:fld id="{1}" type="slidenum"><a:rPr lang="en-US" sz="800"/><a:t>‹#›</a:t></a:fld></a:p>`))

	sn := SlideNumberFromShape(c, shapes[0])
	require.NotNil(t, sn)
	assert.Equal(t, 12.5, sn.Position.X)
	assert.Equal(t, 7.13, sn.Position.Y)
	assert.Equal(t, 0.34, sn.Position.W)
	assert.InDelta(t, 8*2.5/72, sn.Position.H, 0.0001)
	assert.Equal(t, 8.0, sn.Options.FontSize)

	assert.Nil(t, SlideNumberFromShape(c, shapes[1]), "extra literal text disqualifies the shape")
}

func TestDetectSlideNumber(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{"bare field", fixture.SlideNumberField(1200), true},
		{"field with whitespace", `<a:p><a:r><a:t>  </a:t></a:r><a:fld id="{1}" type="slidenum"><a:t>‹#›</a:t></a:fld></a:p>`, true},
		{"two fields", fixture.SlideNumberField(1200) + fixture.SlideNumberField(1200), false},
		{"date field", `<a:p><a:fld id="{1}" type="datetime1"><a:t>1/1/2026</a:t></a:fld></a:p>`, false},
		{"plain text", fixture.Paragraph("3"), false},
		{"empty", `<a:p/>`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := textProps(t, `<p:txBody><a:bodyPr/><a:lstStyle/>`+tt.body+`</p:txBody>`)
			assert.Equal(t, tt.want, DetectSlideNumber(props))
		})
	}
	assert.False(t, DetectSlideNumber(nil))
}

func TestMapSlideNumber(t *testing.T) {
	assert.Nil(t, MapSlideNumber(model.Position{X: 1, Y: 1}, model.TextOptions{FontSize: 12}, model.SourceLayout))

	sn := MapSlideNumber(model.Position{X: 9, Y: 7, W: 0.5, H: 0.4}, model.TextOptions{FontSize: 10}, model.SourceMaster)
	require.NotNil(t, sn)
	assert.Equal(t, 0.4, sn.Position.H, "already tall enough")
	assert.Equal(t, model.SourceMaster, sn.Source)
}

func TestSplitFooterRoles(t *testing.T) {
	title := &model.Placeholder{Name: "Title", Role: "title"}
	num := &model.Placeholder{Name: "Number", Role: "sldNum"}
	footer := &model.Placeholder{Name: "Footer", Role: "ftr", Position: model.Position{X: 4, Y: 7, W: 4, H: 0.3}}
	date := &model.Placeholder{Name: "Date", Role: "dt"}
	header := &model.Placeholder{Name: "Header", Role: "hdr", Text: "Confidential"}
	second := &model.Placeholder{Name: "Footer 2", Role: "ftr"}

	rest, roles := SplitFooterRoles([]*model.Placeholder{title, num, footer, date, header, second})
	assert.Equal(t, []*model.Placeholder{title, second}, rest)
	assert.Same(t, num, roles.SlideNumber)
	assert.Same(t, footer, roles.Footer)
	assert.Same(t, date, roles.Date)
	assert.Same(t, header, roles.Header)

	kept := roles.FooterObjects()
	assert.Equal(t, []*model.Placeholder{footer, header}, kept, "the empty, unplaced date is dropped")
}

func TestIsFooterText(t *testing.T) {
	assert.True(t, IsFooterText("© 2026 Example Corp"))
	assert.True(t, IsFooterText("COPYRIGHT Example Corp"))
	assert.True(t, IsFooterText("Copyright"))
	assert.False(t, IsFooterText("Confidential"))
	assert.False(t, IsFooterText(""))
}
