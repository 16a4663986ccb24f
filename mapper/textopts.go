package mapper

import (
	"math"

	"github.com/anotb/pptx-masters/color"
	"github.com/anotb/pptx-masters/model"
	"github.com/anotb/pptx-masters/text"
	"github.com/anotb/pptx-masters/units"
)

// TextSources are the inputs of the text-options cascade.
type TextSources struct {
	// Own is the object's own text body.
	Own *text.Props
	// Inherited is the matching master placeholder's text body.
	Inherited *text.Props
	// MasterStyle is the master's txStyles section for the object's role.
	MasterStyle map[int]text.ParagraphProps
}

// MapTextOptions merges the style cascade of the first paragraph into one
// set of text options.
//
// Alignment is the first explicit value of: paragraph, own list style,
// inherited list style, master style; then the paragraph's defaulted value.
// Spacing, indent, bullet and direction take the first value set on the
// paragraph, then the same list-style chain. Run styling takes the first
// value set on the paragraph's defRPr, then the own list style's defRPr,
// then the first run, then the inherited and master defRPr.
//
// Without paragraphs the list styles are the only source.
func MapTextOptions(src TextSources) model.TextOptions {
	var para *text.Paragraph
	if src.Own != nil && len(src.Own.Paragraphs) > 0 {
		para = &src.Own.Paragraphs[0]
	}

	var chain []*text.ParagraphProps
	if para != nil {
		chain = append(chain, &para.Props)
	}
	ownLevel := levelOne(src.Own)
	inheritedLevel := levelOne(src.Inherited)
	masterLevel := levelOneOf(src.MasterStyle)
	for _, pp := range []*text.ParagraphProps{ownLevel, inheritedLevel, masterLevel} {
		if pp != nil {
			chain = append(chain, pp)
		}
	}

	var opts model.TextOptions

	for _, pp := range chain {
		if pp.ExplicitAlign != "" {
			opts.Align = pp.ExplicitAlign
			break
		}
	}
	if opts.Align == "" && para != nil {
		opts.Align = para.Props.Align
	}

	explicitRTL := mergeParagraph(&opts, chain)

	var runChain []*text.RunProps
	if para != nil {
		runChain = append(runChain, para.Props.Defaults)
	}
	if ownLevel != nil {
		runChain = append(runChain, ownLevel.Defaults)
	}
	if para != nil {
		runChain = append(runChain, firstRunProps(para))
	}
	if inheritedLevel != nil {
		runChain = append(runChain, inheritedLevel.Defaults)
	}
	if masterLevel != nil {
		runChain = append(runChain, masterLevel.Defaults)
	}
	mergeRuns(&opts, runChain)

	body := bodyFor(src)
	opts.Margin = body.Margin
	opts.VAlign = body.Anchor
	if opts.VAlign == "" {
		opts.VAlign = "top"
	}
	opts.Rotate = body.Rotation
	opts.Vert = body.Vert
	opts.Fit = body.Autofit

	if !explicitRTL && src.Own != nil {
		opts.RTL = text.DetectDirection(src.Own.PlainText) == text.RTL
	}

	return opts
}

// mergeParagraph applies paragraph-level values and reports whether the
// direction was stated explicitly.
func mergeParagraph(opts *model.TextOptions, chain []*text.ParagraphProps) (explicitRTL bool) {
	for _, pp := range chain {
		if pp.LineSpacing != nil || pp.LineSpacingMultiple != nil {
			if pp.LineSpacing != nil {
				opts.LineSpacing = *pp.LineSpacing
			} else {
				opts.LineSpacingMultiple = *pp.LineSpacingMultiple
			}
			break
		}
	}
	for _, pp := range chain {
		if pp.SpaceBefore != nil {
			opts.ParaSpaceBefore = *pp.SpaceBefore
			break
		}
	}
	for _, pp := range chain {
		if pp.SpaceAfter != nil {
			opts.ParaSpaceAfter = *pp.SpaceAfter
			break
		}
	}
	for _, pp := range chain {
		if pp.MarginLeft != nil {
			opts.Indent = *pp.MarginLeft
			break
		}
	}
	for _, pp := range chain {
		if pp.RTL != nil {
			opts.RTL = *pp.RTL
			explicitRTL = true
			break
		}
	}
	for _, pp := range chain {
		if pp.Bullet != nil {
			if !pp.Bullet.None {
				b := *pp.Bullet
				opts.Bullet = &b
			}
			break
		}
	}
	return explicitRTL
}

func mergeRuns(opts *model.TextOptions, chain []*text.RunProps) {
	var clr *color.Resolved
	for _, rp := range chain {
		if rp == nil {
			continue
		}
		if opts.FontFace == "" {
			opts.FontFace = rp.FontFace
		}
		if opts.FontSize == 0 {
			opts.FontSize = rp.FontSize
		}
		if clr == nil {
			clr = rp.Color
		}
		if opts.Bold == nil {
			opts.Bold = rp.Bold
		}
		if opts.Italic == nil {
			opts.Italic = rp.Italic
		}
		if opts.Underline == "" {
			opts.Underline = rp.Underline
		}
		if opts.Strike == "" {
			opts.Strike = rp.Strike
		}
		if !opts.Superscript && !opts.Subscript {
			opts.Superscript = rp.Superscript
			opts.Subscript = rp.Subscript
		}
		if opts.CharSpacing == 0 && rp.CharSpacing != nil {
			opts.CharSpacing = *rp.CharSpacing
		}
	}

	if clr != nil {
		opts.Color = clr.Color
		opts.Transparency = clr.Transparency
	}
	if opts.Underline == "none" {
		opts.Underline = ""
	}
	if opts.Strike == "noStrike" {
		opts.Strike = ""
	}
}

// bodyFor picks body properties: own insets and anchor when stated,
// otherwise the inherited body's.
func bodyFor(src TextSources) text.BodyProps {
	body := text.ExtractBodyProps(nil)
	var own, inherited *text.BodyProps
	if src.Own != nil {
		own = &src.Own.Body
	}
	if src.Inherited != nil {
		inherited = &src.Inherited.Body
	}

	for _, b := range []*text.BodyProps{own, inherited} {
		if b != nil && b.HasInsets {
			body.Margin = b.Margin
			break
		}
	}
	for _, b := range []*text.BodyProps{own, inherited} {
		if b != nil && b.Anchor != "" {
			body.Anchor = b.Anchor
			break
		}
	}
	for _, b := range []*text.BodyProps{own, inherited} {
		if b != nil && b.Autofit != "" {
			body.Autofit = b.Autofit
			break
		}
	}
	for _, b := range []*text.BodyProps{own, inherited} {
		if b != nil && (b.Vert != "" || b.Rotation != 0) {
			body.Vert = b.Vert
			body.Rotation = b.Rotation
			break
		}
	}
	return body
}

// levelOne returns list-style level 1, else level 0, or nil.
func levelOne(p *text.Props) *text.ParagraphProps {
	if p == nil {
		return nil
	}
	return levelOneOf(p.ListStyle)
}

func levelOneOf(ls map[int]text.ParagraphProps) *text.ParagraphProps {
	if pp, ok := ls[1]; ok {
		return &pp
	}
	if pp, ok := ls[0]; ok {
		return &pp
	}
	return nil
}

// firstRunProps returns the properties of the first text or field run.
func firstRunProps(p *text.Paragraph) *text.RunProps {
	for i := range p.Runs {
		if !p.Runs[i].IsBreak {
			return p.Runs[i].Props
		}
	}
	return nil
}

// slideNumberHeight normalizes a slide number box to at least 2.5 times
// its font size.
func slideNumberHeight(h, fontSize float64) float64 {
	if fontSize <= 0 {
		return h
	}
	return math.Max(h, units.Round(fontSize*2.5/72, 4))
}
