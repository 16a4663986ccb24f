package generator

import (
	"encoding/json"
	"io"

	"github.com/anotb/pptx-masters/color"
	"github.com/anotb/pptx-masters/model"
)

// ThemeDump is the document written by FormatThemeJSON.
type ThemeDump struct {
	Name            string              `json:"name"`
	ColorSchemeName string              `json:"colorSchemeName,omitempty"`
	Colors          color.ThemeColors   `json:"colors"`
	Fonts           color.ThemeFonts    `json:"fonts"`
	Dimensions      model.Dimensions    `json:"dimensions"`
	Palette         model.PaletteReport `json:"palette"`
}

// NewThemeDump collects the theme-level parts of a result.
func NewThemeDump(res *model.Result) ThemeDump {
	return ThemeDump{
		Name:            res.Theme.Name,
		ColorSchemeName: res.Theme.ColorSchemeName,
		Colors:          res.Theme.Colors,
		Fonts:           res.Theme.Fonts,
		Dimensions:      res.Dimensions,
		Palette:         res.Palette,
	}
}

func (g *Generator) encoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	if g.config.PrettyPrint {
		enc.SetIndent("", "  ")
	}
	return enc
}

func (g *Generator) writeJSON(res *model.Result, w io.Writer) error {
	return g.encoder(w).Encode(res)
}

func (g *Generator) writeThemeJSON(res *model.Result, w io.Writer) error {
	return g.encoder(w).Encode(NewThemeDump(res))
}
