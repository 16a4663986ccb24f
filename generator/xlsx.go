package generator

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/anotb/pptx-masters/color"
	"github.com/anotb/pptx-masters/model"
)

// Sheet names of the swatch workbook.
const (
	SheetTheme         = "Theme"
	SheetLayouts       = "Layouts"
	SheetSubstitutions = "Substitutions"
)

func (g *Generator) writeXLSX(res *model.Result, w io.Writer) error {
	f, err := Swatches(res)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// swatchBook wraps a workbook with one fill style per color.
type swatchBook struct {
	f      *excelize.File
	header int
	fills  map[string]int
}

// Swatches builds a workbook with the theme colors, the layout backgrounds
// and any palette substitutions, each color shown as a filled cell. The
// caller closes the returned file.
func Swatches(res *model.Result) (*excelize.File, error) {
	b := &swatchBook{f: excelize.NewFile(), fills: make(map[string]int)}

	header, err := b.f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		b.f.Close()
		return nil, err
	}
	b.header = header

	if err := b.themeSheet(res); err != nil {
		b.f.Close()
		return nil, fmt.Errorf("building %s sheet: %w", SheetTheme, err)
	}
	if err := b.layoutSheet(res); err != nil {
		b.f.Close()
		return nil, fmt.Errorf("building %s sheet: %w", SheetLayouts, err)
	}
	if len(res.Palette.Substitutions) > 0 {
		if err := b.substitutionSheet(res.Palette); err != nil {
			b.f.Close()
			return nil, fmt.Errorf("building %s sheet: %w", SheetSubstitutions, err)
		}
	}
	b.f.SetActiveSheet(0)
	return b.f, nil
}

func (b *swatchBook) themeSheet(res *model.Result) error {
	if err := b.f.SetSheetName(b.f.GetSheetName(0), SheetTheme); err != nil {
		return err
	}
	if err := b.row(SheetTheme, 1, "Slot", "Color", "Swatch"); err != nil {
		return err
	}

	r := 2
	for _, slot := range color.SchemeSlots {
		hex, ok := res.Theme.Colors[slot]
		if !ok {
			continue
		}
		if err := b.row(SheetTheme, r, slot, "#"+hex); err != nil {
			return err
		}
		if err := b.swatch(SheetTheme, 3, r, hex); err != nil {
			return err
		}
		r++
	}
	return b.f.SetColWidth(SheetTheme, "A", "C", 14)
}

func (b *swatchBook) layoutSheet(res *model.Result) error {
	if _, err := b.f.NewSheet(SheetLayouts); err != nil {
		return err
	}
	if err := b.row(SheetLayouts, 1, "Layout", "Type", "Master", "Background", "Swatch"); err != nil {
		return err
	}

	for i, l := range res.Layouts {
		r := i + 2
		bg := ""
		if l.Background != nil {
			if l.Background.Color != "" {
				bg = "#" + l.Background.Color
			} else {
				bg = l.Background.Image
			}
		}
		if err := b.row(SheetLayouts, r, l.Name, l.Type, l.Master+1, bg); err != nil {
			return err
		}
		if l.Background != nil && l.Background.Color != "" {
			if err := b.swatch(SheetLayouts, 5, r, l.Background.Color); err != nil {
				return err
			}
		}
	}
	if err := b.f.SetColWidth(SheetLayouts, "A", "A", 32); err != nil {
		return err
	}
	return b.f.SetColWidth(SheetLayouts, "B", "E", 14)
}

func (b *swatchBook) substitutionSheet(p model.PaletteReport) error {
	if _, err := b.f.NewSheet(SheetSubstitutions); err != nil {
		return err
	}
	if err := b.row(SheetSubstitutions, 1, "Slot", "Original", "", "Replacement", ""); err != nil {
		return err
	}
	for i, s := range p.Substitutions {
		r := i + 2
		if err := b.row(SheetSubstitutions, r, s.Slot, "#"+s.Original, "", "#"+s.Replacement); err != nil {
			return err
		}
		if err := b.swatch(SheetSubstitutions, 3, r, s.Original); err != nil {
			return err
		}
		if err := b.swatch(SheetSubstitutions, 5, r, s.Replacement); err != nil {
			return err
		}
	}
	return b.f.SetColWidth(SheetSubstitutions, "A", "E", 14)
}

// row writes values from column A. Row 1 gets the header style.
func (b *swatchBook) row(sheet string, r int, values ...interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, r)
		if err != nil {
			return err
		}
		if err := b.f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
		if r == 1 {
			if err := b.f.SetCellStyle(sheet, cell, cell, b.header); err != nil {
				return err
			}
		}
	}
	return nil
}

// swatch fills one cell with hex.
func (b *swatchBook) swatch(sheet string, col, r int, hex string) error {
	id, ok := b.fills[hex]
	if !ok {
		var err error
		id, err = b.f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#" + hex}},
		})
		if err != nil {
			return err
		}
		b.fills[hex] = id
	}
	cell, err := excelize.CoordinatesToCellName(col, r)
	if err != nil {
		return err
	}
	return b.f.SetCellStyle(sheet, cell, cell, id)
}
