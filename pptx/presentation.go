package pptx

import (
	"encoding/xml"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"github.com/anotb/pptx-masters/model"
	"github.com/anotb/pptx-masters/units"
)

// PresentationPath is the main part of every presentation package.
const PresentationPath = "ppt/presentation.xml"

// ParseSlideSize reads the slide size from presentation.xml content. Missing
// or malformed input at any level yields model.DefaultDimensions.
func ParseSlideSize(data []byte) model.Dimensions {
	if len(data) == 0 {
		return model.DefaultDimensions
	}
	var p presentationXML
	if err := xml.Unmarshal(data, &p); err != nil {
		return model.DefaultDimensions
	}
	sz := p.SlideSz
	if sz == nil || sz.Cx == nil || sz.Cy == nil || *sz.Cx <= 0 || *sz.Cy <= 0 {
		return model.DefaultDimensions
	}
	return model.Dimensions{
		Width:  units.Round(units.EMUToInches(*sz.Cx), 4),
		Height: units.Round(units.EMUToInches(*sz.Cy), 4),
	}
}

var (
	masterPattern = regexp.MustCompile(`^ppt/slideMasters/slideMaster(\d+)\.xml$`)
	layoutPattern = regexp.MustCompile(`slideLayout(\d+)\.xml$`)
	themePattern  = regexp.MustCompile(`^ppt/theme/theme(\d+)\.xml$`)
)

// MasterPaths returns the slide master parts in presentation order. The order
// comes from sldMasterIdLst; when that is missing or unresolvable the masters
// found in the archive are returned in numeric order.
func MasterPaths(a *Archive) ([]string, error) {
	data, err := a.ReadFile(PresentationPath)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	var ordered []string
	if err == nil {
		var p presentationXML
		if xml.Unmarshal(data, &p) == nil && p.SlideMasterList != nil {
			rels, err := ReadRelationships(a, PresentationPath)
			if err != nil {
				return nil, fmt.Errorf("presentation relationships: %w", err)
			}
			for _, id := range p.SlideMasterList.SlideMasterID {
				target, ok := rels.Resolve(PresentationPath, id.RID)
				if ok && a.Has(target) {
					ordered = append(ordered, target)
				}
			}
		}
	}
	if len(ordered) > 0 {
		return ordered, nil
	}

	return numbered(a.Files(), masterPattern), nil
}

// ThemePath returns the presentation's theme part: the presentation-level
// theme relationship, else the first master's, else the lowest-numbered
// theme part.
func ThemePath(a *Archive, masters []string) (string, error) {
	rels, err := ReadRelationships(a, PresentationPath)
	if err != nil {
		return "", err
	}
	for _, rel := range rels.ByType("theme") {
		if t := ResolveTarget(PresentationPath, rel.Target); a.Has(t) {
			return t, nil
		}
	}

	if len(masters) > 0 {
		mrels, err := ReadRelationships(a, masters[0])
		if err != nil {
			return "", err
		}
		for _, rel := range mrels.ByType("theme") {
			if t := ResolveTarget(masters[0], rel.Target); a.Has(t) {
				return t, nil
			}
		}
	}

	if themes := numbered(a.Files(), themePattern); len(themes) > 0 {
		return themes[0], nil
	}
	return "", &NotFoundError{Name: "ppt/theme/theme1.xml"}
}

// LayoutPaths returns the layout parts of a master in the master's order:
// sldLayoutIdLst when present, otherwise its slideLayout relationships in
// numeric order.
func LayoutPaths(m *Master) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, rid := range m.LayoutIDs {
		if target, ok := m.Rels.Resolve(m.Path, rid); ok {
			add(target)
		}
	}
	if len(out) > 0 {
		return out
	}

	var targets []string
	for _, rel := range m.Rels.ByType("slideLayout") {
		if !rel.External {
			targets = append(targets, ResolveTarget(m.Path, rel.Target))
		}
	}
	for _, t := range numbered(targets, layoutPattern) {
		add(t)
	}
	return out
}

// numbered filters names by pattern and sorts them by the pattern's first
// capture group as a number.
func numbered(names []string, pattern *regexp.Regexp) []string {
	type entry struct {
		name string
		n    int
	}
	var entries []entry
	for _, name := range names {
		m := pattern.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		n, _ := strconv.Atoi(m[1])
		entries = append(entries, entry{name, n})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].n < entries[j].n
	})

	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.name
	}
	return out
}
