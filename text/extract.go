package text

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/antchfx/xmlquery"

	"github.com/anotb/pptx-masters/color"
	"github.com/anotb/pptx-masters/internal/xmlnode"
	"github.com/anotb/pptx-masters/model"
	"github.com/anotb/pptx-masters/units"
)

var anchors = map[string]string{
	"t":   "top",
	"ctr": "middle",
	"b":   "bottom",
}

var alignments = map[string]string{
	"l":        "left",
	"ctr":      "center",
	"r":        "right",
	"just":     "justify",
	"justLow":  "justify",
	"dist":     "justify",
	"thaiDist": "justify",
}

// Extract walks a text body (an element holding a:bodyPr, a:lstStyle and
// a:p children). It returns nil when txBody is nil.
func Extract(txBody *xmlquery.Node, r *color.Resolver) *Props {
	if txBody == nil {
		return nil
	}

	props := &Props{
		Body:      ExtractBodyProps(xmlnode.Child(txBody, "bodyPr")),
		ListStyle: ExtractListStyle(xmlnode.Child(txBody, "lstStyle"), r),
	}

	lines := make([]string, 0)
	for _, p := range xmlnode.Children(txBody, "p") {
		para := extractParagraph(p, r)
		props.Paragraphs = append(props.Paragraphs, para)
		lines = append(lines, para.Text())
	}
	props.PlainText = strings.Join(lines, "\n")

	return props
}

// ExtractBodyProps reads a:bodyPr. A nil element yields the default insets
// and nothing else.
func ExtractBodyProps(bodyPr *xmlquery.Node) BodyProps {
	bp := BodyProps{
		Margin: [4]float64{
			DefaultInsetTopBottom,
			DefaultInsetLeftRight,
			DefaultInsetTopBottom,
			DefaultInsetLeftRight,
		},
	}
	if bodyPr == nil {
		return bp
	}

	for i, name := range []string{"tIns", "rIns", "bIns", "lIns"} {
		if v, ok := xmlnode.AttrInt(bodyPr, name); ok {
			bp.Margin[i] = units.Round(units.EMUToInches(v), 4)
			bp.HasInsets = true
		}
	}

	bp.Anchor = anchors[xmlnode.AttrString(bodyPr, "anchor")]

	if rot, ok := xmlnode.AttrInt(bodyPr, "rot"); ok {
		bp.Rotation = units.AngleToDegrees(rot)
	}

	if vert := xmlnode.AttrString(bodyPr, "vert"); vert != "horz" {
		bp.Vert = vert
	}

	if wrap, ok := xmlnode.Attr(bodyPr, "wrap"); ok {
		w := wrap != "none"
		bp.Wrap = &w
	}

	// Presence is what matters: <a:normAutofit/> has no content.
	switch {
	case xmlnode.Has(bodyPr, "normAutofit"):
		bp.Autofit = AutofitShrink
	case xmlnode.Has(bodyPr, "spAutoFit"):
		bp.Autofit = AutofitResize
	case xmlnode.Has(bodyPr, "noAutofit"):
		bp.Autofit = AutofitNone
	}

	return bp
}

// ExtractListStyle reads a:lstStyle into a level-keyed map. a:defPPr is
// stored under key 0 and a:lvlNpPr under key N.
func ExtractListStyle(lstStyle *xmlquery.Node, r *color.Resolver) map[int]ParagraphProps {
	out := make(map[int]ParagraphProps)
	if lstStyle == nil {
		return out
	}

	if def := xmlnode.Child(lstStyle, "defPPr"); def != nil {
		pp := ExtractParagraphProps(def, r)
		pp.Level = 0
		out[0] = pp
	}
	for lvl := 1; lvl <= 9; lvl++ {
		el := xmlnode.Child(lstStyle, fmt.Sprintf("lvl%dpPr", lvl))
		if el == nil {
			continue
		}
		pp := ExtractParagraphProps(el, r)
		pp.Level = lvl
		out[lvl] = pp
	}
	return out
}

// ExtractParagraphProps reads an a:pPr (or list-style level) element.
func ExtractParagraphProps(pPr *xmlquery.Node, r *color.Resolver) ParagraphProps {
	pp := ParagraphProps{Align: "left", Level: 1}
	if pPr == nil {
		return pp
	}

	if algn, ok := alignments[xmlnode.AttrString(pPr, "algn")]; ok {
		pp.Align = algn
		pp.ExplicitAlign = algn
	}
	if lvl, ok := xmlnode.AttrInt(pPr, "lvl"); ok {
		pp.Level = int(lvl) + 1
	}
	pp.RTL = xmlnode.AttrBool(pPr, "rtl")

	if v, ok := xmlnode.AttrInt(pPr, "marL"); ok {
		pp.MarginLeft = ptr(units.Round(units.EMUToPoints(v), 2))
	}
	if v, ok := xmlnode.AttrInt(pPr, "indent"); ok {
		pp.Indent = ptr(units.Round(units.EMUToPoints(v), 2))
	}

	if ln := xmlnode.Child(pPr, "lnSpc"); ln != nil {
		if v, ok := xmlnode.AttrInt(xmlnode.Child(ln, "spcPts"), "val"); ok {
			pp.LineSpacing = ptr(units.HundredthsToPoints(v))
		} else if v, ok := xmlnode.AttrInt(xmlnode.Child(ln, "spcPct"), "val"); ok {
			pp.LineSpacingMultiple = ptr(units.Round(float64(v)/units.Percent, 2))
		}
	}
	pp.SpaceBefore = spacingPoints(xmlnode.Child(pPr, "spcBef"))
	pp.SpaceAfter = spacingPoints(xmlnode.Child(pPr, "spcAft"))

	pp.Bullet = extractBullet(pPr, pp.MarginLeft, r)

	if def := xmlnode.Child(pPr, "defRPr"); def != nil {
		pp.Defaults = ExtractRunProps(def, r)
	}

	return pp
}

// ExtractRunProps reads an a:rPr-like element. It returns nil for nil input.
func ExtractRunProps(rPr *xmlquery.Node, r *color.Resolver) *RunProps {
	if rPr == nil {
		return nil
	}

	rp := &RunProps{
		Bold:      xmlnode.AttrBool(rPr, "b"),
		Italic:    xmlnode.AttrBool(rPr, "i"),
		Underline: xmlnode.AttrString(rPr, "u"),
		Strike:    xmlnode.AttrString(rPr, "strike"),
	}

	if sz, ok := xmlnode.AttrInt(rPr, "sz"); ok {
		rp.FontSize = units.HundredthsToPoints(sz)
	}
	if spc, ok := xmlnode.AttrInt(rPr, "spc"); ok {
		rp.CharSpacing = ptr(units.HundredthsToPoints(spc))
	}
	if baseline, ok := xmlnode.AttrInt(rPr, "baseline"); ok {
		rp.Superscript = baseline > 0
		rp.Subscript = baseline < 0
	}

	if face := xmlnode.AttrString(xmlnode.Child(rPr, "latin"), "typeface"); face != "" {
		if strings.HasPrefix(face, "+") && r != nil {
			face = r.ResolveFontRef(face)
		}
		rp.FontFace = face
	}

	if fill := xmlnode.Child(rPr, "solidFill"); fill != nil && r != nil {
		rp.Color = r.Resolve(fill)
	}

	return rp
}

func extractParagraph(p *xmlquery.Node, r *color.Resolver) Paragraph {
	para := Paragraph{Props: ExtractParagraphProps(xmlnode.Child(p, "pPr"), r)}

	var content, breaks []Run
	for _, c := range xmlnode.Elements(p) {
		switch xmlnode.Name(c) {
		case "r":
			content = append(content, Run{
				Text:  xmlnode.Text(xmlnode.Child(c, "t")),
				Props: ExtractRunProps(xmlnode.Child(c, "rPr"), r),
			})
		case "fld":
			content = append(content, Run{
				Text:      xmlnode.Text(xmlnode.Child(c, "t")),
				Props:     ExtractRunProps(xmlnode.Child(c, "rPr"), r),
				IsField:   true,
				FieldType: xmlnode.AttrString(c, "type"),
			})
		case "br":
			breaks = append(breaks, Run{
				Text:    "\n",
				Props:   ExtractRunProps(xmlnode.Child(c, "rPr"), r),
				IsBreak: true,
			})
		}
	}
	para.Runs = placeBreaks(content, breaks)

	return para
}

// placeBreaks puts break i between content runs i and i+1 when there is
// exactly one fewer break than content runs. Any other count appends the
// breaks after the content.
func placeBreaks(content, breaks []Run) []Run {
	out := make([]Run, 0, len(content)+len(breaks))
	if len(breaks) > 0 && len(breaks) == len(content)-1 {
		for i, run := range content {
			out = append(out, run)
			if i < len(breaks) {
				out = append(out, breaks[i])
			}
		}
		return out
	}
	out = append(out, content...)
	return append(out, breaks...)
}

func extractBullet(pPr *xmlquery.Node, marL *float64, r *color.Resolver) *model.Bullet {
	if xmlnode.Has(pPr, "buNone") {
		return &model.Bullet{None: true}
	}

	var b *model.Bullet
	if ch := xmlnode.Child(pPr, "buChar"); ch != nil {
		glyph, _ := utf8.DecodeRuneInString(xmlnode.AttrString(ch, "char"))
		if glyph == utf8.RuneError {
			glyph = '•'
		}
		b = &model.Bullet{Code: fmt.Sprintf("%04X", glyph)}
	} else if num := xmlnode.Child(pPr, "buAutoNum"); num != nil {
		b = &model.Bullet{Type: xmlnode.AttrString(num, "type")}
		if start, ok := xmlnode.AttrInt(num, "startAt"); ok {
			b.StartAt = int(start)
		}
	}
	if b == nil {
		return nil
	}

	b.Font = xmlnode.AttrString(xmlnode.Child(pPr, "buFont"), "typeface")
	if r != nil {
		if c := r.Resolve(xmlnode.Child(pPr, "buClr")); c != nil {
			b.Color = c.Color
		}
	}
	if marL != nil {
		b.Indent = *marL
	}
	return b
}

// spacingPoints reads a:spcBef / a:spcAft. Only absolute spacing is
// supported; percentage spacing depends on the rendered font size.
func spacingPoints(el *xmlquery.Node) *float64 {
	if v, ok := xmlnode.AttrInt(xmlnode.Child(el, "spcPts"), "val"); ok {
		return ptr(units.HundredthsToPoints(v))
	}
	return nil
}

func ptr(v float64) *float64 {
	return &v
}
