package generator

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/anotb/pptx-masters/model"
)

// csvColumns is the header of the object inventory.
var csvColumns = []string{
	"layout", "object", "kind", "role", "source",
	"x", "y", "w", "h",
	"fill", "line", "font", "font_size", "text_color",
}

func (g *Generator) writeCSV(res *model.Result, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, l := range res.Layouts {
		for _, o := range l.Objects {
			if err := cw.Write(inventoryRow(l.Name, o)); err != nil {
				return fmt.Errorf("writing CSV row: %w", err)
			}
		}
		if sn := l.SlideNumber; sn != nil {
			row := []string{l.Name, "slide number", "slideNumber", "sldNum", string(sn.Source)}
			row = append(row, positionCells(sn.Position)...)
			row = append(row, "", "", sn.Options.FontFace, formatSize(sn.Options.FontSize), sn.Options.Color)
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing CSV row: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func inventoryRow(layout string, o model.Object) []string {
	row := []string{layout, o.ObjectName(), string(o.Kind())}

	var role, source, fill, line string
	var opts *model.TextOptions
	switch obj := o.(type) {
	case *model.Placeholder:
		role, source = obj.Role, string(obj.Source)
		fill, line = fillColor(obj.Fill), lineColor(obj.Line)
		opts = &obj.Options
	case *model.Text:
		role, source = obj.Role, string(obj.Source)
		fill, line = fillColor(obj.Fill), lineColor(obj.Line)
		opts = &obj.Options
	case *model.Shape:
		source = string(obj.Source)
		fill, line = fillColor(obj.Fill), lineColor(obj.Line)
	case *model.Line:
		source = string(obj.Source)
		line = obj.Style.Color
	case *model.Image:
		source = string(obj.Source)
		fill = obj.Path
	}

	row = append(row, role, source)
	row = append(row, positionCells(o.Bounds())...)
	row = append(row, fill, line)
	if opts != nil {
		row = append(row, opts.FontFace, formatSize(opts.FontSize), opts.Color)
	} else {
		row = append(row, "", "", "")
	}
	return row
}

func positionCells(p model.Position) []string {
	return []string{trimFloat(p.X), trimFloat(p.Y), trimFloat(p.W), trimFloat(p.H)}
}

func fillColor(f *model.Fill) string {
	if f == nil {
		return ""
	}
	if f.Color != "" {
		return f.Color
	}
	return f.Image
}

func lineColor(l *model.LineStyle) string {
	if l == nil {
		return ""
	}
	return l.Color
}

func formatSize(pt float64) string {
	if pt == 0 {
		return ""
	}
	return strconv.FormatFloat(pt, 'f', -1, 64)
}
