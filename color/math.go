// Package color implements DrawingML color math and color resolution.
//
// Colors are carried as six-digit uppercase hex strings without a leading
// "#". Modifier values use the DrawingML integer scale where 100000 is 100%,
// and hue offsets use 60000ths of a degree.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HexToRGB parses a hex color such as "4472C4" or "#4472c4". Three-digit
// shorthand is expanded. Unparseable input yields black.
func HexToRGB(hex string) (r, g, b int) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}

// RGBToHex formats an RGB triple as uppercase hex, clamping each channel to
// [0,255] first.
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("%02X%02X%02X", clampByte(r), clampByte(g), clampByte(b))
}

// Normalize returns hex in canonical uppercase six-digit form.
func Normalize(hex string) string {
	return RGBToHex(HexToRGB(hex))
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// RGBToHSL converts an RGB triple to hue in degrees [0,360) and saturation
// and lightness in [0,1]. Achromatic colors have hue 0 and saturation 0.
func RGBToHSL(r, g, b int) (h, s, l float64) {
	return rgbToHSL(float64(r), float64(g), float64(b))
}

func rgbToHSL(r, g, b float64) (h, s, l float64) {
	r, g, b = r/255, g/255, b/255
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l = (maxC + minC) / 2

	if maxC == minC {
		return 0, 0, l
	}

	d := maxC - minC
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}

	switch maxC {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	if h >= 360 {
		h -= 360
	}
	return h, s, l
}

// HSLToRGB converts hue in degrees and saturation and lightness in [0,1] to
// an RGB triple.
func HSLToRGB(h, s, l float64) (r, g, b int) {
	rf, gf, bf := hslToRGB(h, s, l)
	return int(math.Round(rf)), int(math.Round(gf)), int(math.Round(bf))
}

func hslToRGB(h, s, l float64) (r, g, b float64) {
	if s == 0 {
		v := l * 255
		return v, v, v
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	hk := h / 360

	r = hueToChannel(p, q, hk+1.0/3) * 255
	g = hueToChannel(p, q, hk) * 255
	b = hueToChannel(p, q, hk-1.0/3) * 255
	return r, g, b
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// Modifiers holds the DrawingML color transforms attached to a color
// element. A nil field means the modifier is absent.
type Modifiers struct {
	Tint   *int
	Shade  *int
	HueMod *int
	HueOff *int
	SatMod *int
	SatOff *int
	LumMod *int
	LumOff *int
	Alpha  *int
}

// Ptr returns a pointer to v, for building Modifiers literals.
func Ptr(v int) *int {
	return &v
}

// HasColorChange reports whether any modifier other than alpha is present.
func (m Modifiers) HasColorChange() bool {
	return m.Tint != nil || m.Shade != nil ||
		m.HueMod != nil || m.HueOff != nil ||
		m.SatMod != nil || m.SatOff != nil ||
		m.LumMod != nil || m.LumOff != nil
}

func (m Modifiers) hasHSL() bool {
	return m.HueMod != nil || m.HueOff != nil ||
		m.SatMod != nil || m.SatOff != nil ||
		m.LumMod != nil || m.LumOff != nil
}

func ratio(v int) float64 {
	return float64(v) / 100000
}

// ApplyModifiers applies m to hex in a fixed order: shade, tint, then hue,
// saturation and luminance in HSL space. Within each HSL component the
// multiplicative modifier is applied before the additive one. Alpha is
// ignored here; see [Resolver.Resolve].
func ApplyModifiers(hex string, m Modifiers) string {
	ri, gi, bi := HexToRGB(hex)
	r, g, b := float64(ri), float64(gi), float64(bi)

	if m.Shade != nil {
		f := ratio(*m.Shade)
		r, g, b = r*f, g*f, b*f
	}
	if m.Tint != nil {
		f := ratio(*m.Tint)
		r = r + (255-r)*f
		g = g + (255-g)*f
		b = b + (255-b)*f
	}

	if m.hasHSL() {
		h, s, l := rgbToHSL(r, g, b)

		if m.HueMod != nil {
			h *= ratio(*m.HueMod)
		}
		if m.HueOff != nil {
			h += float64(*m.HueOff) / 60000
		}
		h = math.Mod(h, 360)
		if h < 0 {
			h += 360
		}

		if m.SatMod != nil {
			s = clamp01(s * ratio(*m.SatMod))
		}
		if m.SatOff != nil {
			s = clamp01(s + ratio(*m.SatOff))
		}

		if m.LumMod != nil {
			l = clamp01(l * ratio(*m.LumMod))
		}
		if m.LumOff != nil {
			l = clamp01(l + ratio(*m.LumOff))
		}

		r, g, b = hslToRGB(h, s, l)
	}

	return RGBToHex(int(math.Round(r)), int(math.Round(g)), int(math.Round(b)))
}

// Luma returns the luma-weighted brightness of hex on a 0-255 scale.
func Luma(hex string) float64 {
	r, g, b := HexToRGB(hex)
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

// IsNeutral reports whether hex is near-white or near-black.
func IsNeutral(hex string) bool {
	y := Luma(hex)
	return y > 245 || y < 10
}
