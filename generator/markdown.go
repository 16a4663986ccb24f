package generator

import (
	"fmt"
	"io"
	"strings"

	"github.com/anotb/pptx-masters/color"
	"github.com/anotb/pptx-masters/model"
)

func (g *Generator) writeMarkdown(res *model.Result, w io.Writer) error {
	var sb strings.Builder

	title := g.config.Title
	if title == "" {
		title = res.Metadata.Title
	}
	if title == "" {
		title = res.Theme.Name
	}
	if title == "" {
		title = "Template"
	}
	fmt.Fprintf(&sb, "# %s\n\n", escapeMarkdown(title))

	if res.Metadata.Author != "" {
		fmt.Fprintf(&sb, "Author: %s\n\n", escapeMarkdown(res.Metadata.Author))
	}
	fmt.Fprintf(&sb, "Slide size: %s x %s in\n\n", trimFloat(res.Dimensions.Width), trimFloat(res.Dimensions.Height))

	writeThemeSection(&sb, res)
	writePaletteSection(&sb, res.Palette)

	sb.WriteString("## Layouts\n\n")
	for i, l := range res.Layouts {
		g.writeLayoutSection(&sb, i+1, l)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeThemeSection(sb *strings.Builder, res *model.Result) {
	fmt.Fprintf(sb, "## Theme: %s\n\n", escapeMarkdown(res.Theme.Name))

	sb.WriteString("| Slot | Color |\n|---|---|\n")
	for _, slot := range color.SchemeSlots {
		hex, ok := res.Theme.Colors[slot]
		if !ok {
			continue
		}
		fmt.Fprintf(sb, "| %s | `#%s` |\n", slot, hex)
	}
	sb.WriteString("\n")

	fmt.Fprintf(sb, "- Heading font: %s\n", orDash(res.Theme.Fonts.Major))
	fmt.Fprintf(sb, "- Body font: %s\n\n", orDash(res.Theme.Fonts.Minor))
}

func writePaletteSection(sb *strings.Builder, p model.PaletteReport) {
	if !p.Limited {
		return
	}
	sb.WriteString("## Palette\n\n")
	fmt.Fprintf(sb, "The accent palette is limited: %d usable accent color(s).\n\n", len(p.Usable))
	if len(p.Substitutions) == 0 {
		sb.WriteString("No background colors were available to fill the gaps.\n\n")
		return
	}
	sb.WriteString("Accents replaced with colors taken from the slide backgrounds:\n\n")
	for _, s := range p.Substitutions {
		fmt.Fprintf(sb, "- %s: `#%s` → `#%s`\n", s.Slot, s.Original, s.Replacement)
	}
	sb.WriteString("\n")
}

func (g *Generator) writeLayoutSection(sb *strings.Builder, n int, l *model.Layout) {
	fmt.Fprintf(sb, "### %d. %s\n\n", n, escapeMarkdown(l.Name))
	if l.Type != "" {
		fmt.Fprintf(sb, "- Type: `%s`\n", l.Type)
	}
	fmt.Fprintf(sb, "- Master: %d\n", l.Master+1)
	fmt.Fprintf(sb, "- Background: %s\n", describeBackground(l.Background))
	if l.SlideNumber != nil {
		fmt.Fprintf(sb, "- Slide number: %s\n", describePosition(l.SlideNumber.Position))
	}
	sb.WriteString("\n")

	if len(l.Objects) > 0 {
		sb.WriteString("| Object | Kind | Position (in) | Style |\n|---|---|---|---|\n")
		for _, o := range l.Objects {
			fmt.Fprintf(sb, "| %s | %s | %s | %s |\n",
				escapeMarkdown(o.ObjectName()), kindLabel(o), describePosition(o.Bounds()), describeStyle(o))
		}
		sb.WriteString("\n")
	}

	if g.config.IncludeWarnings && len(l.Warnings) > 0 {
		sb.WriteString("**Warnings**\n\n")
		for _, w := range l.Warnings {
			fmt.Fprintf(sb, "- %s\n", escapeMarkdown(w))
		}
		sb.WriteString("\n")
	}
}

func kindLabel(o model.Object) string {
	if ph, ok := o.(*model.Placeholder); ok {
		return "placeholder (" + ph.Role + ")"
	}
	return string(o.Kind())
}

func describeBackground(bg *model.Background) string {
	switch {
	case bg == nil:
		return "none"
	case bg.Color != "":
		return "`#" + bg.Color + "`"
	case bg.Image != "":
		return "image `" + bg.Image + "`"
	}
	return "none"
}

func describePosition(p model.Position) string {
	return fmt.Sprintf("%s, %s (%s x %s)", trimFloat(p.X), trimFloat(p.Y), trimFloat(p.W), trimFloat(p.H))
}

func describeStyle(o model.Object) string {
	var parts []string
	addFill := func(f *model.Fill) {
		if f == nil {
			return
		}
		if f.Color != "" {
			parts = append(parts, "fill `#"+f.Color+"`")
		} else if f.Image != "" {
			parts = append(parts, "image fill")
		}
	}
	addText := func(opts model.TextOptions) {
		if opts.FontFace != "" {
			parts = append(parts, opts.FontFace)
		}
		if opts.FontSize > 0 {
			parts = append(parts, trimFloat(opts.FontSize)+"pt")
		}
		if opts.Color != "" {
			parts = append(parts, "text `#"+opts.Color+"`")
		}
	}

	switch obj := o.(type) {
	case *model.Placeholder:
		addFill(obj.Fill)
		addText(obj.Options)
	case *model.Text:
		addFill(obj.Fill)
		addText(obj.Options)
	case *model.Shape:
		parts = append(parts, obj.Geometry)
		addFill(obj.Fill)
		if obj.Line != nil && obj.Line.Color != "" {
			parts = append(parts, "outline `#"+obj.Line.Color+"`")
		}
	case *model.Line:
		if obj.Style.Color != "" {
			parts = append(parts, "`#"+obj.Style.Color+"`")
		}
		if obj.Style.Width > 0 {
			parts = append(parts, trimFloat(obj.Style.Width)+"pt")
		}
	case *model.Image:
		parts = append(parts, "`"+obj.Path+"`")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

var markdownEscaper = strings.NewReplacer("|", `\|`, "*", `\*`, "_", `\_`, "`", "\\`", "\n", " ")

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// trimFloat formats v with up to four decimals and no trailing zeros.
func trimFloat(v float64) string {
	s := fmt.Sprintf("%.4f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
