// Package preview renders extracted layouts as sample slides, one slide per
// layout, as a PDF deck or a self-contained HTML page.
package preview

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/anotb/pptx-masters/color"
	"github.com/anotb/pptx-masters/internal/imgstat"
	"github.com/anotb/pptx-masters/model"
)

// Placeholder outlines and labels.
const (
	guideGray  = 160
	labelSize  = 10.0
	lineFactor = 1.2
)

// pdfImageTypes are the formats fpdf embeds directly. Everything else
// decodable is converted to PNG first.
var pdfImageTypes = map[string]string{
	"image/png":  "PNG",
	"image/jpeg": "JPG",
	"image/gif":  "GIF",
}

// pdfRenderer draws layouts onto an fpdf document measured in inches.
type pdfRenderer struct {
	pdf    *fpdf.Fpdf
	images *ImageCache
	tr     func(string) string
	// registered maps archive paths to fpdf image names; "" marks an image
	// that could not be embedded.
	registered map[string]string
}

// PDF writes a preview deck with one page per layout. images may be nil, in
// which case pictures and image backgrounds are drawn as outlines.
func PDF(w io.Writer, res *model.Result, images *ImageCache) error {
	pdf, err := renderPDF(res, images)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

// PDFFile writes a preview deck to a file.
func PDFFile(filename string, res *model.Result, images *ImageCache) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating preview file: %w", err)
	}
	if err := PDF(f, res, images); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func renderPDF(res *model.Result, images *ImageCache) (*fpdf.Fpdf, error) {
	if res == nil {
		return nil, fmt.Errorf("no result to preview")
	}
	if len(res.Layouts) == 0 {
		return nil, fmt.Errorf("no layouts to preview")
	}

	dims := res.Dimensions
	if dims.Width <= 0 || dims.Height <= 0 {
		dims = model.DefaultDimensions
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "in",
		Size:           fpdf.SizeType{Wd: dims.Width, Ht: dims.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCellMargin(0)
	pdf.SetCreator("pptx-masters", true)
	if res.Metadata.Title != "" {
		pdf.SetTitle(res.Metadata.Title, true)
	}

	r := &pdfRenderer{
		pdf:        pdf,
		images:     images,
		tr:         pdf.UnicodeTranslatorFromDescriptor(""),
		registered: make(map[string]string),
	}
	for _, l := range res.Layouts {
		r.page(l, dims)
		if err := pdf.Error(); err != nil {
			return nil, fmt.Errorf("rendering layout %q: %w", l.Name, err)
		}
	}
	return pdf, nil
}

func (r *pdfRenderer) page(l *model.Layout, dims model.Dimensions) {
	r.pdf.AddPage()
	r.pdf.Bookmark(r.tr(l.Name), 0, 0)

	if bg := l.Background; bg != nil {
		switch {
		case bg.Color != "":
			r.withAlpha(bg.Transparency, func() {
				r.setFill(bg.Color)
				r.pdf.Rect(0, 0, dims.Width, dims.Height, "F")
			})
		case bg.ArchivePath != "":
			r.image(bg.ArchivePath, model.Position{W: dims.Width, H: dims.Height})
		}
	}

	for _, o := range l.Objects {
		r.object(o)
	}

	if sn := l.SlideNumber; sn != nil {
		r.text(strconv.Itoa(r.pdf.PageNo()), sn.Position, sn.Options)
	}
}

func (r *pdfRenderer) object(o model.Object) {
	switch obj := o.(type) {
	case *model.Shape:
		r.rotated(obj.Rotation, obj.Position, func() {
			r.shape(obj.Geometry, obj.Position, obj.RectRadius, obj.Fill, obj.Line)
		})
	case *model.Line:
		r.line(obj)
	case *model.Image:
		r.rotated(obj.Rotation, obj.Position, func() {
			r.image(obj.ArchivePath, obj.Position)
		})
	case *model.Text:
		r.rotated(obj.Options.Rotate, obj.Position, func() {
			r.shape(obj.Geometry, obj.Position, 0, obj.Fill, obj.Line)
			r.text(obj.Text, obj.Position, obj.Options)
		})
	case *model.Placeholder:
		r.shape("rect", obj.Position, 0, obj.Fill, obj.Line)
		if strings.TrimSpace(obj.Text) != "" {
			r.text(obj.Text, obj.Position, obj.Options)
			return
		}
		r.guide(obj)
	}
}

// shape draws a filled and/or outlined geometry. Image fills are drawn as
// the image.
func (r *pdfRenderer) shape(geometry string, pos model.Position, radius float64, fill *model.Fill, line *model.LineStyle) {
	if fill != nil && fill.Image != "" {
		r.image(fillArchivePath(fill.Image), pos)
		fill = nil
	}

	style := ""
	if fill != nil && fill.Color != "" {
		r.setFill(fill.Color)
		style += "F"
	}
	if line != nil && line.Color != "" {
		r.setDraw(line)
		style += "D"
	}
	if style == "" {
		return
	}

	var alpha *int
	if fill != nil {
		alpha = fill.Transparency
	}
	r.withAlpha(alpha, func() {
		switch geometry {
		case "ellipse":
			r.pdf.Ellipse(pos.X+pos.W/2, pos.Y+pos.H/2, pos.W/2, pos.H/2, 0, style)
		case "roundRect":
			r.pdf.RoundedRect(pos.X, pos.Y, pos.W, pos.H, radius, "1234", style)
		default:
			r.pdf.Rect(pos.X, pos.Y, pos.W, pos.H, style)
		}
	})
	r.pdf.SetDashPattern([]float64{}, 0)
}

func (r *pdfRenderer) line(l *model.Line) {
	x1, y1 := l.Position.X, l.Position.Y
	x2, y2 := l.Position.Right(), l.Position.Bottom()
	if l.FlipH {
		x1, x2 = x2, x1
	}
	if l.FlipV {
		y1, y2 = y2, y1
	}
	style := l.Style
	if style.Color == "" {
		style.Color = "000000"
	}
	r.rotated(l.Rotation, l.Position, func() {
		r.setDraw(&style)
		r.withAlpha(style.Transparency, func() {
			r.pdf.Line(x1, y1, x2, y2)
		})
	})
	r.pdf.SetDashPattern([]float64{}, 0)
}

// text draws wrapped text inside pos honoring margins and alignment.
func (r *pdfRenderer) text(s string, pos model.Position, opts model.TextOptions) {
	if strings.TrimSpace(s) == "" {
		return
	}

	size := opts.FontSize
	if size <= 0 {
		size = 18
	}
	r.pdf.SetFont(coreFont(opts.FontFace), fontStyle(opts), size)
	textColor := opts.Color
	if textColor == "" {
		textColor = "000000"
	}
	cr, cg, cb := color.HexToRGB(textColor)
	r.pdf.SetTextColor(cr, cg, cb)

	top, right, bottom, left := opts.Margin[0], opts.Margin[1], opts.Margin[2], opts.Margin[3]
	x, y := pos.X+left, pos.Y+top
	w, h := pos.W-left-right, pos.H-top-bottom
	if w <= 0 {
		w = pos.W
	}

	lineH := size / 72 * lineFactor
	if opts.LineSpacingMultiple > 0 {
		lineH *= opts.LineSpacingMultiple
	} else if opts.LineSpacing > 0 {
		lineH = opts.LineSpacing / 72
	}

	var lines []string
	for _, para := range strings.Split(r.tr(s), "\n") {
		if para == "" {
			lines = append(lines, "")
			continue
		}
		lines = append(lines, r.pdf.SplitText(para, w)...)
	}

	block := float64(len(lines)) * lineH
	switch opts.VAlign {
	case "middle":
		y += (h - block) / 2
	case "bottom":
		y += h - block
	}

	align := cellAlign(opts.Align)
	for i, ln := range lines {
		r.pdf.SetXY(x, y+float64(i)*lineH)
		r.pdf.CellFormat(w, lineH, ln, "", 0, align, false, 0, "")
	}
}

// guide outlines an empty placeholder and labels it with its role.
func (r *pdfRenderer) guide(ph *model.Placeholder) {
	pos := ph.Position
	if pos.IsEmptySize() {
		return
	}
	r.pdf.SetDrawColor(guideGray, guideGray, guideGray)
	r.pdf.SetLineWidth(0.01)
	r.pdf.SetDashPattern([]float64{0.05, 0.05}, 0)
	r.pdf.Rect(pos.X, pos.Y, pos.W, pos.H, "D")
	r.pdf.SetDashPattern([]float64{}, 0)

	r.pdf.SetFont("Helvetica", "", labelSize)
	r.pdf.SetTextColor(guideGray, guideGray, guideGray)
	r.pdf.SetXY(pos.X, pos.Y)
	r.pdf.CellFormat(pos.W, pos.H, r.tr(ph.Role), "", 0, "CM", false, 0, "")
}

// image draws an archive image into pos, or an outlined box when it cannot
// be embedded.
func (r *pdfRenderer) image(archivePath string, pos model.Position) {
	name, ok := r.registered[archivePath]
	if !ok {
		name = r.register(archivePath)
		r.registered[archivePath] = name
	}
	if name == "" {
		r.pdf.SetDrawColor(guideGray, guideGray, guideGray)
		r.pdf.SetLineWidth(0.01)
		r.pdf.Rect(pos.X, pos.Y, pos.W, pos.H, "D")
		r.pdf.Line(pos.X, pos.Y, pos.Right(), pos.Bottom())
		r.pdf.Line(pos.X, pos.Bottom(), pos.Right(), pos.Y)
		return
	}
	r.pdf.ImageOptions(name, pos.X, pos.Y, pos.W, pos.H, false, fpdf.ImageOptions{}, 0, "")
}

// register embeds an image and returns its fpdf name, or "" on failure.
func (r *pdfRenderer) register(archivePath string) string {
	img, err := r.images.Get(archivePath)
	if err != nil {
		return ""
	}

	data, typ := img.Data, pdfImageTypes[img.MIME]
	if typ == "" {
		converted, err := imgstat.ToPNG(img.Data)
		if err != nil {
			return ""
		}
		data, typ = converted, "PNG"
	}

	r.pdf.RegisterImageOptionsReader(archivePath, fpdf.ImageOptions{ImageType: typ}, bytes.NewReader(data))
	if !r.pdf.Ok() {
		r.pdf.ClearError()
		return ""
	}
	return archivePath
}

// rotated runs draw rotated clockwise by deg degrees about the center of pos.
func (r *pdfRenderer) rotated(deg float64, pos model.Position, draw func()) {
	if deg == 0 {
		draw()
		return
	}
	r.pdf.TransformBegin()
	r.pdf.TransformRotate(-deg, pos.X+pos.W/2, pos.Y+pos.H/2)
	draw()
	r.pdf.TransformEnd()
}

func (r *pdfRenderer) withAlpha(transparency *int, draw func()) {
	if transparency == nil || *transparency == 0 {
		draw()
		return
	}
	r.pdf.SetAlpha(1-float64(*transparency)/100, "Normal")
	draw()
	r.pdf.SetAlpha(1, "Normal")
}

func (r *pdfRenderer) setFill(hex string) {
	cr, cg, cb := color.HexToRGB(hex)
	r.pdf.SetFillColor(cr, cg, cb)
}

func (r *pdfRenderer) setDraw(l *model.LineStyle) {
	cr, cg, cb := color.HexToRGB(l.Color)
	r.pdf.SetDrawColor(cr, cg, cb)
	width := l.Width / 72
	if width <= 0 {
		width = 1.0 / 72
	}
	r.pdf.SetLineWidth(width)
	if dash := dashPattern(l.DashType, width); dash != nil {
		r.pdf.SetDashPattern(dash, 0)
	}
}

// dashPattern maps DrawingML preset dashes to on/off lengths scaled by the
// line width.
func dashPattern(dash string, width float64) []float64 {
	switch dash {
	case "", "solid":
		return nil
	case "sysDot", "dot":
		return []float64{width, width * 2}
	case "sysDash", "dash":
		return []float64{width * 4, width * 3}
	case "lgDash":
		return []float64{width * 8, width * 3}
	default:
		return []float64{width * 4, width * 2, width, width * 2}
	}
}

// coreFont picks the closest of the PDF core fonts. Template fonts are not
// embedded.
func coreFont(face string) string {
	f := strings.ToLower(face)
	switch {
	case strings.Contains(f, "mono"), strings.Contains(f, "courier"), strings.Contains(f, "consolas"):
		return "Courier"
	case strings.Contains(f, "times"), strings.Contains(f, "georgia"), strings.Contains(f, "garamond"),
		strings.Contains(f, "serif") && !strings.Contains(f, "sans"):
		return "Times"
	}
	return "Helvetica"
}

func fontStyle(opts model.TextOptions) string {
	style := ""
	if opts.Bold != nil && *opts.Bold {
		style += "B"
	}
	if opts.Italic != nil && *opts.Italic {
		style += "I"
	}
	if opts.Underline != "" {
		style += "U"
	}
	return style
}

// cellAlign maps a paragraph alignment to a CellFormat one. Justified text
// is drawn left-aligned.
func cellAlign(align string) string {
	switch align {
	case "center":
		return "C"
	case "right":
		return "R"
	}
	return "L"
}
