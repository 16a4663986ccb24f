package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anotb/pptx-masters/model"
)

func TestContrastingTextColor(t *testing.T) {
	assert.Equal(t, "000000", ContrastingTextColor("000000", "FFFFFF", ""))
	assert.Equal(t, "000000", ContrastingTextColor("000000", "FFFFFF", "F2F2F2"))
	assert.Equal(t, "FFFFFF", ContrastingTextColor("000000", "FFFFFF", "1F2F3F"))
}

func TestBackfillTextColors(t *testing.T) {
	l := model.NewLayout("Dark", "ppt/slideLayouts/slideLayout2.xml")
	l.Background = &model.Background{Color: "0D0D0D"}

	styled := &model.Text{Name: "Styled", Options: model.TextOptions{Color: "FF0000"}}
	onBackground := &model.Text{Name: "Plain"}
	onFill := &model.Placeholder{Name: "Boxed", Fill: &model.Fill{Color: "FFFFFF"}}
	l.AddObject(styled)
	l.AddObject(onBackground)
	l.AddObject(onFill)
	l.AddObject(&model.Shape{Name: "Bar"})
	l.SlideNumber = &model.SlideNumber{}

	BackfillTextColors(l, "000000", "FFFFFF")

	assert.Equal(t, "FF0000", styled.Options.Color)
	assert.Equal(t, "FFFFFF", onBackground.Options.Color)
	assert.Equal(t, "000000", onFill.Options.Color)
	assert.Equal(t, "FFFFFF", l.SlideNumber.Options.Color)
}

func TestCleanFooterZone(t *testing.T) {
	l := model.NewLayout("Footer", "ppt/slideLayouts/slideLayout3.xml")
	emptyLow := &model.Text{Name: "Empty Low", Position: model.Position{X: 1, Y: 7, W: 2, H: 0.3}}
	emptyHigh := &model.Text{Name: "Empty High", Position: model.Position{X: 1, Y: 1, W: 2, H: 0.3}}
	filledLow := &model.Text{Name: "Filled Low", Position: model.Position{X: 1, Y: 7, W: 2, H: 0.3}, Fill: &model.Fill{Color: "FF0000"}}
	textLow := &model.Text{Name: "Text Low", Text: "Confidential", Position: model.Position{X: 1, Y: 7, W: 2, H: 0.3}}
	bar := &model.Shape{Name: "Bar", Position: model.Position{Y: 7.2, W: 10, H: 0.3}}
	for _, o := range []model.Object{emptyLow, emptyHigh, filledLow, textLow, bar} {
		l.AddObject(o)
	}

	CleanFooterZone(l, model.DefaultDimensions)

	require.Len(t, l.Objects, 4)
	for _, o := range l.Objects {
		assert.NotEqual(t, "Empty Low", o.ObjectName())
	}
}
