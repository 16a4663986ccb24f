package preview

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/anotb/pptx-masters/color"
	"github.com/anotb/pptx-masters/model"
)

const stylesheet = `
body{font-family:system-ui,sans-serif;margin:2rem;background:#f4f4f4;color:#222}
.layout{margin:0 0 3rem}
.layout h2{margin:0 0 .25rem;font-size:1.1rem}
.meta{margin:0 0 .75rem;color:#666;font-size:.85rem}
.slide{position:relative;width:100%;max-width:960px;container-type:inline-size;overflow:hidden;background:#fff;box-shadow:0 1px 4px rgba(0,0,0,.2)}
.slide>*{position:absolute;box-sizing:border-box;margin:0}
.text{display:flex;flex-direction:column;white-space:pre-wrap;overflow:hidden;line-height:1.2}
.guide{border:1px dashed #a0a0a0;color:#a0a0a0;display:flex;align-items:center;justify-content:center;font-size:1.2cqw}
.warnings{color:#a15c00;font-size:.85rem}
`

// htmlRenderer builds the preview page for one result.
type htmlRenderer struct {
	res    *model.Result
	dims   model.Dimensions
	images *ImageCache
}

// HTML writes a self-contained preview page with one scaled slide per
// layout. Images are inlined as data URIs through images, which may be nil.
func HTML(w io.Writer, res *model.Result, images *ImageCache) error {
	if res == nil {
		return fmt.Errorf("no result to preview")
	}
	dims := res.Dimensions
	if dims.Width <= 0 || dims.Height <= 0 {
		dims = model.DefaultDimensions
	}
	r := &htmlRenderer{res: res, dims: dims, images: images}
	return html.Render(w, r.document())
}

// HTMLFile writes a preview page to a file.
func HTMLFile(filename string, res *model.Result, images *ImageCache) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating preview file: %w", err)
	}
	if err := HTML(f, res, images); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (r *htmlRenderer) document() *html.Node {
	title := r.res.Metadata.Title
	if title == "" {
		title = r.res.Theme.Name
	}
	if title == "" {
		title = "Template preview"
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element("html", "lang", "en")
	doc.AppendChild(root)

	head := element("head")
	head.AppendChild(element("meta", "charset", "utf-8"))
	head.AppendChild(withText(element("title"), title))
	head.AppendChild(withText(element("style"), stylesheet))
	root.AppendChild(head)

	body := element("body")
	body.AppendChild(withText(element("h1"), title))
	for i, l := range r.res.Layouts {
		body.AppendChild(r.layout(i+1, l))
	}
	root.AppendChild(body)
	return doc
}

func (r *htmlRenderer) layout(n int, l *model.Layout) *html.Node {
	section := element("section", "class", "layout", "id", "layout-"+strconv.Itoa(n))
	section.AppendChild(withText(element("h2"), fmt.Sprintf("%d. %s", n, l.Name)))

	meta := fmt.Sprintf("master %d", l.Master+1)
	if l.Type != "" {
		meta = l.Type + " · " + meta
	}
	section.AppendChild(withText(element("p", "class", "meta"), meta))

	slide := element("div", "class", "slide", "style", r.slideStyle(l.Background))
	for _, o := range l.Objects {
		if node := r.object(o); node != nil {
			slide.AppendChild(node)
		}
	}
	if sn := l.SlideNumber; sn != nil {
		slide.AppendChild(r.textBox(strconv.Itoa(n), sn.Position, sn.Options, nil, nil))
	}
	section.AppendChild(slide)

	if len(l.Warnings) > 0 {
		list := element("ul", "class", "warnings")
		for _, w := range l.Warnings {
			list.AppendChild(withText(element("li"), w))
		}
		section.AppendChild(list)
	}
	return section
}

func (r *htmlRenderer) slideStyle(bg *model.Background) string {
	s := newStyle()
	s.set("aspect-ratio", num(r.dims.Width)+" / "+num(r.dims.Height))
	if bg == nil {
		return s.String()
	}
	if bg.Color != "" {
		s.set("background-color", rgba(bg.Color, bg.Transparency))
	} else if bg.ArchivePath != "" {
		if uri, err := r.images.DataURI(bg.ArchivePath); err == nil {
			s.set("background-image", "url("+uri+")")
			s.set("background-size", "cover")
		}
	}
	return s.String()
}

func (r *htmlRenderer) object(o model.Object) *html.Node {
	switch obj := o.(type) {
	case *model.Shape:
		s := r.box(obj.Position, obj.Rotation)
		r.paint(s, obj.Fill, obj.Line)
		switch obj.Geometry {
		case "ellipse":
			s.set("border-radius", "50%")
		case "roundRect":
			s.set("border-radius", r.cqw(obj.RectRadius))
		}
		return element("div", "class", "shape", "title", obj.Name, "style", s.String())
	case *model.Line:
		return r.line(obj)
	case *model.Image:
		return r.image(obj.Name, obj.ArchivePath, obj.Position, obj.Rotation)
	case *model.Text:
		return r.textBox(obj.Text, obj.Position, obj.Options, obj.Fill, obj.Line)
	case *model.Placeholder:
		if strings.TrimSpace(obj.Text) != "" {
			return r.textBox(obj.Text, obj.Position, obj.Options, obj.Fill, obj.Line)
		}
		if obj.Position.IsEmptySize() {
			return nil
		}
		s := r.box(obj.Position, 0)
		r.paint(s, obj.Fill, nil)
		return withText(element("div", "class", "guide", "title", obj.Name, "style", s.String()), obj.Role)
	}
	return nil
}

func (r *htmlRenderer) textBox(text string, pos model.Position, opts model.TextOptions, fill *model.Fill, line *model.LineStyle) *html.Node {
	s := r.box(pos, opts.Rotate)
	r.paint(s, fill, line)

	top, right, bottom, left := opts.Margin[0], opts.Margin[1], opts.Margin[2], opts.Margin[3]
	s.set("padding", strings.Join([]string{r.cqw(top), r.cqw(right), r.cqw(bottom), r.cqw(left)}, " "))
	switch opts.VAlign {
	case "middle":
		s.set("justify-content", "center")
	case "bottom":
		s.set("justify-content", "flex-end")
	}
	if opts.Align != "" && opts.Align != "left" {
		s.set("text-align", opts.Align)
	}
	if opts.FontFace != "" {
		s.set("font-family", strconv.Quote(opts.FontFace)+", sans-serif")
	}
	if opts.FontSize > 0 {
		s.set("font-size", r.cqw(opts.FontSize/72))
	}
	if opts.Color != "" {
		s.set("color", rgba(opts.Color, opts.Transparency))
	}
	if opts.Bold != nil && *opts.Bold {
		s.set("font-weight", "bold")
	}
	if opts.Italic != nil && *opts.Italic {
		s.set("font-style", "italic")
	}
	if opts.Underline != "" {
		s.set("text-decoration", "underline")
	}
	if opts.RTL {
		s.set("direction", "rtl")
	}

	return withText(element("div", "class", "text", "style", s.String()), text)
}

func (r *htmlRenderer) line(l *model.Line) *html.Node {
	c := l.Style.Color
	if c == "" {
		c = "000000"
	}
	width := l.Style.Width
	if width <= 0 {
		width = 1
	}
	stroke := r.cqw(width/72) + " solid " + rgba(c, l.Style.Transparency)

	s := r.box(l.Position, l.Rotation)
	switch {
	case l.Position.H == 0:
		s.set("border-top", stroke)
	case l.Position.W == 0:
		s.set("border-left", stroke)
	default:
		// Diagonal: a rotated rule across the box's diagonal.
		p := l.Position
		length := math.Hypot(p.W, p.H)
		angle := math.Atan2(p.H, p.W) * 180 / math.Pi
		if l.FlipH != l.FlipV {
			angle = -angle
		}
		s = newStyle()
		s.set("left", r.pctX(p.X+p.W/2-length/2))
		s.set("top", r.pctY(p.Y+p.H/2))
		s.set("width", r.pctX(length))
		s.set("height", "0")
		s.set("border-top", stroke)
		s.set("transform", "rotate("+num(angle+l.Rotation)+"deg)")
	}
	return element("div", "class", "line", "title", l.Name, "style", s.String())
}

func (r *htmlRenderer) image(name, archivePath string, pos model.Position, rotation float64) *html.Node {
	s := r.box(pos, rotation)
	uri, err := r.images.DataURI(archivePath)
	if err != nil {
		return withText(element("div", "class", "guide", "title", name, "style", s.String()), "image")
	}
	s.set("object-fit", "fill")
	return element("img", "src", uri, "alt", name, "style", s.String())
}

// box positions a child of the slide in percentages of the slide size.
func (r *htmlRenderer) box(pos model.Position, rotation float64) *style {
	s := newStyle()
	s.set("left", r.pctX(pos.X))
	s.set("top", r.pctY(pos.Y))
	s.set("width", r.pctX(pos.W))
	s.set("height", r.pctY(pos.H))
	if rotation != 0 {
		s.set("transform", "rotate("+num(rotation)+"deg)")
	}
	return s
}

func (r *htmlRenderer) paint(s *style, fill *model.Fill, line *model.LineStyle) {
	if fill != nil {
		if fill.Color != "" {
			s.set("background-color", rgba(fill.Color, fill.Transparency))
		} else if fill.Image != "" {
			if uri, err := r.images.DataURI(fillArchivePath(fill.Image)); err == nil {
				s.set("background-image", "url("+uri+")")
				s.set("background-size", "100% 100%")
			}
		}
	}
	if line != nil && line.Color != "" {
		width := line.Width
		if width <= 0 {
			width = 1
		}
		kind := "solid"
		if line.DashType != "" && line.DashType != "solid" {
			kind = "dashed"
		}
		s.set("border", r.cqw(width/72)+" "+kind+" "+rgba(line.Color, line.Transparency))
	}
}

func (r *htmlRenderer) pctX(v float64) string { return num(v/r.dims.Width*100) + "%" }
func (r *htmlRenderer) pctY(v float64) string { return num(v/r.dims.Height*100) + "%" }

// cqw converts inches to container-query width units of the slide.
func (r *htmlRenderer) cqw(inches float64) string {
	return num(inches/r.dims.Width*100) + "cqw"
}

// style accumulates CSS declarations in insertion order.
type style struct {
	keys []string
	vals map[string]string
}

func newStyle() *style {
	return &style{vals: make(map[string]string)}
}

func (s *style) set(k, v string) {
	if _, ok := s.vals[k]; !ok {
		s.keys = append(s.keys, k)
	}
	s.vals[k] = v
}

func (s *style) String() string {
	parts := make([]string, len(s.keys))
	for i, k := range s.keys {
		parts[i] = k + ":" + s.vals[k]
	}
	return strings.Join(parts, ";")
}

func rgba(hex string, transparency *int) string {
	if transparency == nil || *transparency == 0 {
		return "#" + hex
	}
	r, g, b := color.HexToRGB(hex)
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", r, g, b, num(1-float64(*transparency)/100))
}

// num formats v with at most three decimals.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}

func element(tag string, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func withText(n *html.Node, text string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}
