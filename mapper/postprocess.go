package mapper

import (
	"math"
	"strings"

	"github.com/anotb/pptx-masters/color"
	"github.com/anotb/pptx-masters/model"
)

// MinContrast is the luma distance below which tx1 is considered unreadable
// on a background.
const MinContrast = 125

// FooterZone is the fraction of the slide height, measured from the bottom,
// that counts as the footer zone.
const FooterZone = 0.15

// BackfillTextColors gives every text-bearing object that ended the cascade
// without a color the tx1 color, or bg1 when tx1 would sit too close to the
// object's fill or the layout background.
func BackfillTextColors(l *model.Layout, tx1, bg1 string) {
	var layoutBg string
	if l.Background != nil {
		layoutBg = l.Background.Color
	}

	pick := func(opts *model.TextOptions, fill *model.Fill) {
		if opts.Color != "" {
			return
		}
		bg := layoutBg
		if fill != nil && fill.Color != "" {
			bg = fill.Color
		}
		opts.Color = ContrastingTextColor(tx1, bg1, bg)
	}

	for _, o := range l.Objects {
		switch obj := o.(type) {
		case *model.Placeholder:
			pick(&obj.Options, obj.Fill)
		case *model.Text:
			pick(&obj.Options, obj.Fill)
		}
	}
	if l.SlideNumber != nil {
		pick(&l.SlideNumber.Options, nil)
	}
}

// ContrastingTextColor returns tx1 unless background is known and too close
// to it in brightness, in which case it returns bg1.
func ContrastingTextColor(tx1, bg1, background string) string {
	if background == "" || tx1 == "" {
		return tx1
	}
	if math.Abs(color.Luma(tx1)-color.Luma(background)) < MinContrast && bg1 != "" {
		return bg1
	}
	return tx1
}

// CleanFooterZone removes empty text objects from the bottom of the slide:
// text whose content is blank and which draws no fill and no outline.
func CleanFooterZone(l *model.Layout, dims model.Dimensions) {
	top := dims.Height * (1 - FooterZone)
	l.RemoveObjects(func(o model.Object) bool {
		t, ok := o.(*model.Text)
		if !ok || t.Position.Y < top {
			return false
		}
		return strings.TrimSpace(t.Text) == "" && t.Fill == nil && t.Line == nil
	})
}
