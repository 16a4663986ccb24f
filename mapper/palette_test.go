package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anotb/pptx-masters/color"
	"github.com/anotb/pptx-masters/internal/fixture"
	"github.com/anotb/pptx-masters/model"
)

func whiteAccents() color.ThemeColors {
	colors := color.ThemeColors(fixture.DefaultColors())
	for _, slot := range AccentSlots {
		colors[slot] = "FFFFFF"
	}
	return colors
}

func TestDetectLimitedPalette(t *testing.T) {
	limited, usable := DetectLimitedPalette(whiteAccents())
	assert.True(t, limited)
	assert.Empty(t, usable)

	limited, usable = DetectLimitedPalette(color.ThemeColors(fixture.DefaultColors()))
	assert.False(t, limited)
	assert.Len(t, usable, 6)

	oneColor := whiteAccents()
	oneColor["accent1"] = "C00000"
	oneColor["accent2"] = "c00000"
	oneColor["accent3"] = "050505"
	limited, usable = DetectLimitedPalette(oneColor)
	assert.True(t, limited, "duplicates and near-black do not count")
	assert.Equal(t, []string{"C00000"}, usable)

	twoColors := whiteAccents()
	twoColors["accent4"] = "C00000"
	twoColors["accent6"] = "1F4E79"
	limited, _ = DetectLimitedPalette(twoColors)
	assert.False(t, limited)
}

func TestMineBackgroundColors(t *testing.T) {
	got := MineBackgroundColors([]string{
		"ffffff", "7F7F7F", "1F4E79", "C00000", "1f4e79", "",
		"000000", "7F7F7F", "C00000", "1F4E79",
	})
	// C00000 and 7F7F7F tie on frequency; the darker one ranks first.
	assert.Equal(t, []string{"1F4E79", "C00000", "7F7F7F"}, got)

	assert.Empty(t, MineBackgroundColors(nil))
}

func TestRepairPalette(t *testing.T) {
	colors := whiteAccents()
	colors["accent2"] = "C00000"

	repaired, report := RepairPalette(colors, []string{"1F4E79", "C00000", "ED7D31"})
	assert.True(t, report.Limited)
	assert.Equal(t, []string{"C00000"}, report.Usable)

	assert.Equal(t, "1F4E79", repaired["accent1"])
	assert.Equal(t, "C00000", repaired["accent2"], "usable accents are left alone")
	assert.Equal(t, "ED7D31", repaired["accent3"])
	assert.Equal(t, "FFFFFF", repaired["accent4"], "no more mined colors")
	assert.Equal(t, "FFFFFF", colors["accent1"], "input is not modified")

	require.Len(t, report.Substitutions, 2)
	assert.Equal(t, "accent1", report.Substitutions[0].Slot)
	assert.Equal(t, "FFFFFF", report.Substitutions[0].Original)
	assert.Equal(t, "1F4E79", report.Substitutions[0].Replacement)
	assert.Equal(t, "accent3", report.Substitutions[1].Slot)
}

func TestRepairPaletteDuplicateAccents(t *testing.T) {
	colors := whiteAccents()
	for _, slot := range AccentSlots {
		colors[slot] = "C00000"
	}

	repaired, report := RepairPalette(colors, []string{"1F4E79", "2E75B6", "70AD47"})
	assert.True(t, report.Limited)
	assert.Equal(t, []string{"C00000"}, report.Usable)

	assert.Equal(t, "C00000", repaired["accent1"], "first occurrence is kept")
	assert.Equal(t, "1F4E79", repaired["accent2"])
	assert.Equal(t, "2E75B6", repaired["accent3"])
	assert.Equal(t, "70AD47", repaired["accent4"])
	assert.Equal(t, "C00000", repaired["accent5"], "no more mined colors")

	require.Len(t, report.Substitutions, 3)
	assert.Equal(t, model.Substitution{Slot: "accent2", Original: "C00000", Replacement: "1F4E79"}, report.Substitutions[0])
}

func TestRepairPaletteCaseInsensitiveDuplicate(t *testing.T) {
	colors := whiteAccents()
	colors["accent1"] = "C00000"
	colors["accent2"] = "c00000"
	colors["accent3"] = "050505"

	repaired, report := RepairPalette(colors, []string{"1F4E79", "ED7D31", "70AD47"})
	assert.True(t, report.Limited)
	assert.Equal(t, "C00000", repaired["accent1"])
	assert.Equal(t, "1F4E79", repaired["accent2"], "repeat of accent1 is replaced")
	assert.Equal(t, "ED7D31", repaired["accent3"], "near-black is replaced")
	assert.Equal(t, "70AD47", repaired["accent4"])

	require.Len(t, report.Substitutions, 3)
	assert.Equal(t, "C00000", report.Substitutions[0].Original)
}

func TestRepairPaletteNotLimited(t *testing.T) {
	colors := color.ThemeColors(fixture.DefaultColors())
	repaired, report := RepairPalette(colors, []string{"123456"})
	assert.False(t, report.Limited)
	assert.Empty(t, report.Substitutions)
	assert.Equal(t, colors, repaired)
}
