package color

import (
	"math"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/anotb/pptx-masters/internal/xmlnode"
)

// SchemeSlots lists the 12 theme color slots in theme order.
var SchemeSlots = []string{
	"dk1", "lt1", "dk2", "lt2",
	"accent1", "accent2", "accent3", "accent4", "accent5", "accent6",
	"hlink", "folHlink",
}

// ColorMapKeys lists the logical color names a color map assigns.
var ColorMapKeys = []string{
	"bg1", "tx1", "bg2", "tx2",
	"accent1", "accent2", "accent3", "accent4", "accent5", "accent6",
	"hlink", "folHlink",
}

// ThemeColors maps scheme slot names (dk1, accent1, ...) to hex colors.
type ThemeColors map[string]string

// ColorMap maps logical color names (bg1, tx1, ...) to scheme slot names.
type ColorMap map[string]string

// Merge returns a new map with override applied on top of m.
func (m ColorMap) Merge(override ColorMap) ColorMap {
	out := make(ColorMap, len(m)+len(override))
	for k, v := range m {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

// DefaultColorMap is the color map PowerPoint assumes when a master omits one.
func DefaultColorMap() ColorMap {
	return ColorMap{
		"bg1": "lt1", "tx1": "dk1", "bg2": "lt2", "tx2": "dk2",
		"accent1": "accent1", "accent2": "accent2", "accent3": "accent3",
		"accent4": "accent4", "accent5": "accent5", "accent6": "accent6",
		"hlink": "hlink", "folHlink": "folHlink",
	}
}

// ThemeFonts holds the theme's major (heading) and minor (body) latin fonts.
type ThemeFonts struct {
	Major string `json:"major"`
	Minor string `json:"minor"`
}

// Resolved is the final result of resolving a color reference.
// Transparency is nil when no alpha modifier was present, which is distinct
// from an explicit fully opaque color (Transparency 0).
type Resolved struct {
	Color        string `json:"color"`
	Transparency *int   `json:"transparency,omitempty"`
}

// Opacity returns the color's opacity as a fraction in [0,1].
func (r *Resolved) Opacity() float64 {
	if r == nil || r.Transparency == nil {
		return 1
	}
	return clamp01(1 - float64(*r.Transparency)/100)
}

// placeholderColor is the scheme name DrawingML uses for "the color of the
// shape that references this style".
const placeholderColor = "phClr"

// Resolver resolves color and font references for one theme and one
// effective color map. It is never mutated after construction.
type Resolver struct {
	colors ThemeColors
	cmap   ColorMap
	fonts  ThemeFonts
}

// NewResolver returns a Resolver bound to the given theme colors, color map
// and fonts.
func NewResolver(colors ThemeColors, cmap ColorMap, fonts ThemeFonts) *Resolver {
	return &Resolver{colors: colors, cmap: cmap, fonts: fonts}
}

// Fonts returns the theme fonts the resolver was built with.
func (r *Resolver) Fonts() ThemeFonts {
	return r.fonts
}

// ResolveSchemeColor maps a logical or slot color name to hex. The name is
// first translated through the color map (falling back to the name itself),
// then looked up in the theme; if that misses, the original name is tried
// directly against the theme. Unknown names resolve to black.
func (r *Resolver) ResolveSchemeColor(name string) string {
	slot, ok := r.cmap[name]
	if !ok {
		slot = name
	}
	if hex, ok := r.colors[slot]; ok && hex != "" {
		return hex
	}
	if hex, ok := r.colors[name]; ok && hex != "" {
		return hex
	}
	return "000000"
}

// ResolveFontRef resolves theme font references: "+mj-*" yields the major
// font and "+mn-*" the minor font, whatever the script suffix. Any other
// value is a literal font name and is returned unchanged.
func (r *Resolver) ResolveFontRef(ref string) string {
	switch {
	case strings.HasPrefix(ref, "+mj-"):
		return r.fonts.Major
	case strings.HasPrefix(ref, "+mn-"):
		return r.fonts.Minor
	}
	return ref
}

var colorKinds = []string{"srgbClr", "schemeClr", "sysClr", "prstClr", "scrgbClr", "hslClr"}

func isColorKind(name string) bool {
	for _, k := range colorKinds {
		if k == name {
			return true
		}
	}
	return false
}

// Resolve resolves the color carried by n, which is either a color element
// itself or an element containing one (solidFill, fgClr, a gradient stop).
// It returns nil when n is nil or carries no color, meaning "no explicit
// color"; callers supply their own default in that case.
func (r *Resolver) Resolve(n *xmlquery.Node) *Resolved {
	if n == nil {
		return nil
	}

	el, kind := n, xmlnode.Name(n)
	if !isColorKind(kind) {
		el, kind = xmlnode.FirstOf(n, colorKinds...)
		if el == nil {
			return nil
		}
	}

	var hex string
	placeholder := false
	switch kind {
	case "srgbClr":
		hex = Normalize(xmlnode.AttrString(el, "val"))
	case "schemeClr":
		name := xmlnode.AttrString(el, "val")
		if name == placeholderColor {
			// The shape that owns this style is not known here.
			hex = "000000"
			placeholder = true
		} else {
			hex = r.ResolveSchemeColor(name)
		}
	case "sysClr":
		hex = "000000"
		if last := xmlnode.AttrString(el, "lastClr"); last != "" {
			hex = Normalize(last)
		}
	case "prstClr":
		hex = "000000"
		if v, ok := PresetColor(xmlnode.AttrString(el, "val")); ok {
			hex = v
		}
	case "scrgbClr":
		hex = scRGBToHex(el)
	case "hslClr":
		hex = hslElementToHex(el)
	}

	mods := ParseModifiers(el)
	if !placeholder && mods.HasColorChange() {
		hex = ApplyModifiers(hex, mods)
	}

	res := &Resolved{Color: hex}
	if mods.Alpha != nil {
		t := int(math.Round(100 - float64(*mods.Alpha)/1000))
		res.Transparency = &t
	}
	return res
}

// ParseModifiers reads the modifier children of a color element.
func ParseModifiers(el *xmlquery.Node) Modifiers {
	var m Modifiers
	for _, c := range xmlnode.Elements(el) {
		v, ok := modifierValue(c)
		if !ok {
			continue
		}
		switch c.Data {
		case "tint":
			m.Tint = &v
		case "shade":
			m.Shade = &v
		case "hueMod":
			m.HueMod = &v
		case "hueOff":
			m.HueOff = &v
		case "satMod":
			m.SatMod = &v
		case "satOff":
			m.SatOff = &v
		case "lumMod":
			m.LumMod = &v
		case "lumOff":
			m.LumOff = &v
		case "alpha":
			m.Alpha = &v
		}
	}
	return m
}

// modifierValue reads the val attribute of a modifier element. Strict OOXML
// writes percentages ("60%"), which are converted to the 100000 scale.
func modifierValue(n *xmlquery.Node) (int, bool) {
	raw, ok := xmlnode.Attr(n, "val")
	if !ok {
		return 0, false
	}
	raw = strings.TrimSpace(raw)
	if strings.HasSuffix(raw, "%") {
		f, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64)
		if err != nil {
			return 0, false
		}
		return int(math.Round(f * 1000)), true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

// scRGBToHex converts an scrgbClr element (linear-light percentages) to
// gamma-encoded sRGB hex.
func scRGBToHex(el *xmlquery.Node) string {
	channel := func(name string) int {
		v, _ := xmlnode.AttrInt(el, name)
		lin := clamp01(float64(v) / 100000)
		var s float64
		if lin <= 0.0031308 {
			s = lin * 12.92
		} else {
			s = 1.055*math.Pow(lin, 1/2.4) - 0.055
		}
		return int(math.Round(s * 255))
	}
	return RGBToHex(channel("r"), channel("g"), channel("b"))
}

// hslElementToHex converts an hslClr element to hex.
func hslElementToHex(el *xmlquery.Node) string {
	hue, _ := xmlnode.AttrInt(el, "hue")
	sat, _ := xmlnode.AttrInt(el, "sat")
	lum, _ := xmlnode.AttrInt(el, "lum")
	return RGBToHex(HSLToRGB(
		math.Mod(float64(hue)/60000, 360),
		clamp01(float64(sat)/100000),
		clamp01(float64(lum)/100000),
	))
}
