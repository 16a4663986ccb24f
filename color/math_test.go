package color

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var sampleColors = []string{
	"000000", "FFFFFF", "4472C4", "ED7D31", "A5A5A5", "FFC000",
	"5B9BD5", "70AD47", "0563C1", "954F72", "1F3864", "7F7F7F", "010203",
}

func TestHexRoundTrip(t *testing.T) {
	for _, c := range sampleColors {
		assert.Equal(t, c, RGBToHex(HexToRGB(c)), c)
	}

	// Exhaustive over a coarse grid.
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				c := fmt.Sprintf("%02X%02X%02X", r, g, b)
				assert.Equal(t, c, RGBToHex(HexToRGB(c)))
			}
		}
	}
}

func TestHexToRGBTolerance(t *testing.T) {
	r, g, b := HexToRGB("#4472c4")
	assert.Equal(t, []int{0x44, 0x72, 0xC4}, []int{r, g, b})

	r, g, b = HexToRGB("f0a")
	assert.Equal(t, []int{0xFF, 0x00, 0xAA}, []int{r, g, b})

	r, g, b = HexToRGB("nothex")
	assert.Equal(t, []int{0, 0, 0}, []int{r, g, b})
}

func TestRGBToHexClamps(t *testing.T) {
	assert.Equal(t, "FF0000", RGBToHex(300, -4, 0))
	assert.Equal(t, "00FF00", RGBToHex(0, 256, -1))
}

func TestHSLRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				h, s, l := RGBToHSL(r, g, b)
				assert.GreaterOrEqual(t, h, 0.0)
				assert.Less(t, h, 360.0)
				r2, g2, b2 := HSLToRGB(h, s, l)
				assert.InDelta(t, r, r2, 1)
				assert.InDelta(t, g, g2, 1)
				assert.InDelta(t, b, b2, 1)
			}
		}
	}
}

func TestRGBToHSLAchromatic(t *testing.T) {
	h, s, l := RGBToHSL(128, 128, 128)
	assert.Equal(t, 0.0, h)
	assert.Equal(t, 0.0, s)
	assert.InDelta(t, 0.502, l, 0.001)
}

func TestRGBToHSLPrimaries(t *testing.T) {
	h, s, l := RGBToHSL(255, 0, 0)
	assert.Equal(t, []float64{0, 1, 0.5}, []float64{h, s, l})

	h, _, _ = RGBToHSL(0, 255, 0)
	assert.InDelta(t, 120, h, 1e-9)

	h, _, _ = RGBToHSL(0, 0, 255)
	assert.InDelta(t, 240, h, 1e-9)
}

func TestApplyModifiersIdentityAndExtremes(t *testing.T) {
	for _, c := range sampleColors {
		assert.Equal(t, c, ApplyModifiers(c, Modifiers{LumMod: Ptr(100000)}), "lumMod identity for %s", c)
		assert.Equal(t, "000000", ApplyModifiers(c, Modifiers{LumMod: Ptr(0)}), "lumMod 0 for %s", c)
	}

	assert.Equal(t, "FFFFFF", ApplyModifiers("000000", Modifiers{Tint: Ptr(100000)}))
	assert.Equal(t, "000000", ApplyModifiers("FFFFFF", Modifiers{Shade: Ptr(0)}))
	assert.Equal(t, "4472C4", ApplyModifiers("4472C4", Modifiers{}))
}

func TestApplyModifiersShadeBeforeTint(t *testing.T) {
	// Shade to black first, then tint halfway to white: mid gray.
	got := ApplyModifiers("FF0000", Modifiers{Shade: Ptr(0), Tint: Ptr(50000)})
	assert.Equal(t, "808080", got)
}

func TestApplyModifiersHue(t *testing.T) {
	// Red rotated by 120 degrees is green.
	assert.Equal(t, "00FF00", ApplyModifiers("FF0000", Modifiers{HueOff: Ptr(120 * 60000)}))
	// Negative offsets wrap into [0,360).
	assert.Equal(t, "0000FF", ApplyModifiers("FF0000", Modifiers{HueOff: Ptr(-120 * 60000)}))
}

func TestApplyModifiersSaturation(t *testing.T) {
	assert.Equal(t, "808080", ApplyModifiers("FF0000", Modifiers{SatMod: Ptr(0), LumMod: Ptr(100400)}))
	// satOff clamps at 1.
	assert.Equal(t, "FF0000", ApplyModifiers("FF0000", Modifiers{SatOff: Ptr(50000)}))
}

func TestApplyModifiersLumModThenOff(t *testing.T) {
	base := "4472C4"
	got := ApplyModifiers(base, Modifiers{LumMod: Ptr(40000), LumOff: Ptr(60000)})

	_, _, lBase := RGBToHSL(HexToRGB(base))
	_, _, lGot := RGBToHSL(HexToRGB(got))
	assert.Greater(t, lGot, lBase)

	// Order matters: off-then-mod would give a different lightness.
	assert.InDelta(t, lBase*0.4+0.6, lGot, 0.01)
}

func TestLumaAndNeutral(t *testing.T) {
	assert.Equal(t, 0.0, Luma("000000"))
	assert.InDelta(t, 255, Luma("FFFFFF"), 1e-9)
	assert.True(t, IsNeutral("FFFFFF"))
	assert.True(t, IsNeutral("FAFAFA"))
	assert.True(t, IsNeutral("050505"))
	assert.False(t, IsNeutral("4472C4"))
	assert.False(t, IsNeutral("F0F0F0"))
}

func TestPresetColor(t *testing.T) {
	tests := []struct {
		name string
		want string
		ok   bool
	}{
		{"red", "FF0000", true},
		{"aliceBlue", "F0F8FF", true},
		{"dkBlue", "00008B", true},
		{"ltGray", "D3D3D3", true},
		{"medPurple", "9370DB", true},
		{"darkSlateGray", "2F4F4F", true},
		{"notAColor", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PresetColor(tt.name)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
