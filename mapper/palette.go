package mapper

import (
	"sort"
	"strings"

	"github.com/anotb/pptx-masters/color"
	"github.com/anotb/pptx-masters/model"
)

// AccentSlots lists the six accent slots in order.
var AccentSlots = []string{"accent1", "accent2", "accent3", "accent4", "accent5", "accent6"}

// DetectLimitedPalette reports whether fewer than two distinct non-neutral
// accents remain once near-white and near-black accents are excluded. The
// usable accents are returned in slot order.
func DetectLimitedPalette(colors color.ThemeColors) (limited bool, usable []string) {
	seen := make(map[string]bool)
	for _, slot := range AccentSlots {
		hex, ok := colors[slot]
		if !ok {
			continue
		}
		hex = color.Normalize(hex)
		if color.IsNeutral(hex) || seen[hex] {
			continue
		}
		seen[hex] = true
		usable = append(usable, hex)
	}
	return len(usable) < 2, usable
}

// MineBackgroundColors ranks the colors sampled from rendered backgrounds:
// most frequent first, darker first on ties. Neutral colors are dropped.
func MineBackgroundColors(samples []string) []string {
	counts := make(map[string]int)
	var order []string
	for _, s := range samples {
		if s == "" {
			continue
		}
		hex := color.Normalize(s)
		if color.IsNeutral(hex) {
			continue
		}
		if counts[hex] == 0 {
			order = append(order, hex)
		}
		counts[hex]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if counts[a] != counts[b] {
			return counts[a] > counts[b]
		}
		return color.Luma(a) < color.Luma(b)
	})
	return order
}

// RepairPalette fills the neutral and repeated accent slots of a limited
// palette with mined colors, in slot order. The first occurrence of each
// usable accent is kept. Palettes that are not limited are returned
// unchanged. The report records every substitution.
func RepairPalette(colors color.ThemeColors, mined []string) (color.ThemeColors, model.PaletteReport) {
	out := make(color.ThemeColors, len(colors))
	for k, v := range colors {
		out[k] = v
	}

	limited, usable := DetectLimitedPalette(colors)
	report := model.PaletteReport{Limited: limited, Usable: usable}
	if !limited {
		return out, report
	}

	taken := make(map[string]bool, len(usable))
	for _, hex := range usable {
		taken[hex] = true
	}
	var candidates []string
	for _, hex := range mined {
		hex = color.Normalize(hex)
		if !taken[hex] {
			taken[hex] = true
			candidates = append(candidates, hex)
		}
	}

	kept := make(map[string]bool, len(usable))
	for _, slot := range AccentSlots {
		if len(candidates) == 0 {
			break
		}
		original := strings.ToUpper(colors[slot])
		if original != "" {
			hex := color.Normalize(original)
			if !color.IsNeutral(hex) && !kept[hex] {
				kept[hex] = true
				continue
			}
		}
		out[slot] = candidates[0]
		report.Substitutions = append(report.Substitutions, model.Substitution{
			Slot:        slot,
			Original:    original,
			Replacement: candidates[0],
		})
		candidates = candidates[1:]
	}
	return out, report
}
