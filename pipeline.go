package masters

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/anotb/pptx-masters/color"
	"github.com/anotb/pptx-masters/internal/imgstat"
	"github.com/anotb/pptx-masters/mapper"
	"github.com/anotb/pptx-masters/model"
	"github.com/anotb/pptx-masters/pptx"
)

// nearTolerance is how far apart, in inches, a master shape and a layout
// shape of the same name may sit and still count as the same decoration.
const nearTolerance = 0.01

// extraction holds the state of one Extract call.
type extraction struct {
	archive *pptx.Archive
	opts    ExtractOptions
	log     *slog.Logger

	theme *pptx.Theme
	dims  model.Dimensions

	// samples are background colors in document order, used for palette
	// repair.
	samples []string
	// images caches the average color of background images by archive path.
	images map[string]string
}

func (x *extraction) run() (*model.Result, error) {
	presentation, err := x.archive.ReadFile(pptx.PresentationPath)
	if err != nil {
		return nil, err
	}
	x.dims = pptx.ParseSlideSize(presentation)

	masterPaths, err := pptx.MasterPaths(x.archive)
	if err != nil {
		return nil, err
	}
	if len(masterPaths) == 0 {
		return nil, fmt.Errorf("presentation has no slide masters")
	}

	theme, err := loadTheme(x.archive, masterPaths)
	if err != nil {
		return nil, err
	}
	x.theme = theme

	res := &model.Result{
		Metadata:   x.archive.Metadata(),
		Dimensions: x.dims,
		Masters:    make([]model.Master, 0, len(masterPaths)),
		Layouts:    make([]*model.Layout, 0),
	}

	for i, path := range masterPaths {
		summary, layouts, err := x.master(i, path)
		if err != nil {
			return nil, err
		}
		res.Masters = append(res.Masters, summary)
		res.Layouts = append(res.Layouts, layouts...)
	}

	res.Theme = theme.Model()
	if x.opts.repairPalette {
		mined := mapper.MineBackgroundColors(x.samples)
		res.Theme.Colors, res.Palette = mapper.RepairPalette(theme.Colors, mined)
		for _, s := range res.Palette.Substitutions {
			x.log.Debug("accent substituted", "slot", s.Slot, "from", s.Original, "to", s.Replacement)
		}
	} else {
		res.Palette.Limited, res.Palette.Usable = mapper.DetectLimitedPalette(theme.Colors)
	}

	return res, nil
}

func (x *extraction) master(index int, path string) (model.Master, []*model.Layout, error) {
	m, err := pptx.LoadMaster(x.archive, path, x.theme)
	if err != nil {
		return model.Master{}, nil, fmt.Errorf("loading master %s: %w", path, err)
	}

	ctx := x.context(m, m.Resolver, m.Rels, m.Path, model.SourceMaster)
	bg := mapper.MapBackground(ctx, m.Background)
	x.sample(bg)
	bgWarnings := ctx.Warnings

	paths := pptx.LayoutPaths(m)
	x.log.Debug("loaded master", "path", path, "layouts", len(paths), "shapes", len(m.Shapes))

	layouts := make([]*model.Layout, 0, len(paths))
	for _, lp := range paths {
		l, err := pptx.LoadLayout(x.archive, lp, m, x.theme)
		if err != nil {
			return model.Master{}, nil, fmt.Errorf("loading layout %s: %w", lp, err)
		}
		layouts = append(layouts, x.layout(index, m, l, bg, bgWarnings))
	}

	summary := model.Master{
		Index:      index,
		Path:       m.Path,
		Name:       m.Name,
		Background: bg,
		Layouts:    len(layouts),
	}
	return summary, layouts, nil
}

func (x *extraction) layout(masterIndex int, m *pptx.Master, l *pptx.Layout, masterBg *model.Background, masterBgWarnings []string) *model.Layout {
	out := model.NewLayout(l.Name, l.Path)
	out.ID = uuid.NewSHA1(layoutNamespace, []byte(l.Path)).String()
	out.Type = l.Type
	out.Master = masterIndex
	out.Warnings = append(out.Warnings, l.Warnings...)

	ctx := x.context(m, l.Resolver, l.Rels, l.Path, model.SourceLayout)

	if bg := mapper.MapBackground(ctx, l.Background); bg != nil {
		out.Background = bg
		x.sample(bg)
	} else if masterBg != nil {
		inherited := *masterBg
		out.Background = &inherited
		if l.Background == nil {
			out.Warnings = append(out.Warnings, masterBgWarnings...)
		}
	}

	var slideNumber *model.SlideNumber

	if l.ShowMasterShapes && x.opts.masterShapes {
		mctx := x.context(m, m.Resolver, m.Rels, m.Path, model.SourceMaster)
		for _, s := range m.StaticShapes {
			if s.Hidden || shadowed(s, l.StaticShapes) {
				continue
			}
			if sn := mapper.SlideNumberFromShape(mctx, s); sn != nil {
				if slideNumber == nil {
					slideNumber = sn
				}
				continue
			}
			if obj := mapper.MapShape(mctx, s); obj != nil {
				out.AddObject(obj)
			}
		}
		for _, w := range m.Warnings {
			out.Warnf("master: %s", w)
		}
		out.Warnings = append(out.Warnings, mctx.Warnings...)
	}

	var placeholders []*model.Placeholder
	for _, s := range l.Placeholders {
		if s.Hidden {
			continue
		}
		if ph := mapper.MapPlaceholder(ctx, s); ph != nil {
			placeholders = append(placeholders, ph)
		}
	}
	rest, roles := mapper.SplitFooterRoles(placeholders)
	for _, ph := range rest {
		out.AddObject(ph)
	}

	for _, s := range l.StaticShapes {
		if sn := mapper.SlideNumberFromShape(ctx, s); sn != nil {
			if slideNumber == nil || slideNumber.Source == model.SourceMaster {
				slideNumber = sn
			}
			continue
		}
		if obj := mapper.MapShape(ctx, s); obj != nil {
			out.AddObject(obj)
		}
	}

	for _, ph := range roles.FooterObjects() {
		out.AddObject(ph)
	}
	if sn := mapper.SlideNumberFromPlaceholder(roles.SlideNumber); sn != nil {
		slideNumber = sn
	}
	out.SlideNumber = slideNumber
	out.Warnings = append(out.Warnings, ctx.Warnings...)

	if x.opts.backfillColors {
		mapper.BackfillTextColors(out, l.Resolver.ResolveSchemeColor("tx1"), l.Resolver.ResolveSchemeColor("bg1"))
	}
	if x.opts.cleanFooter {
		mapper.CleanFooterZone(out, x.dims)
	}

	x.log.Debug("resolved layout", "name", out.Name, "objects", len(out.Objects), "warnings", len(out.Warnings))
	return out
}

func (x *extraction) context(m *pptx.Master, r *color.Resolver, rels pptx.Relationships, part string, source model.Source) *mapper.Context {
	return &mapper.Context{
		Resolver: r,
		Theme:    x.theme,
		Master:   m,
		Rels:     rels,
		Part:     part,
		Source:   source,
	}
}

// sample records a background's color for palette mining. Image backgrounds
// contribute their average color.
func (x *extraction) sample(bg *model.Background) {
	if bg == nil {
		return
	}
	if bg.Color != "" {
		x.samples = append(x.samples, bg.Color)
		return
	}
	if bg.ArchivePath == "" || !imgstat.Supported(bg.ArchivePath) {
		return
	}
	avg, ok := x.images[bg.ArchivePath]
	if !ok {
		data, err := x.archive.ReadFile(bg.ArchivePath)
		if err == nil {
			avg, err = imgstat.AverageColor(data)
		}
		if err != nil {
			x.log.Debug("skipping background image", "path", bg.ArchivePath, "error", err)
		}
		x.images[bg.ArchivePath] = avg
	}
	if avg != "" {
		x.samples = append(x.samples, avg)
	}
}

// shadowed reports whether a layout shape redraws the same master
// decoration, matched by name and position.
func shadowed(s *pptx.Shape, local []*pptx.Shape) bool {
	if s.Position == nil {
		return false
	}
	for _, o := range local {
		if o.Name == s.Name && o.Position != nil && o.Position.Near(*s.Position, nearTolerance) {
			return true
		}
	}
	return false
}
