package pptx

import (
	"encoding/xml"
	"errors"
	"fmt"
	"path"
	"strings"
)

// Relationship is one entry of a .rels part.
type Relationship struct {
	ID string
	// Type is the last path segment of the relationship type URI, e.g.
	// "slideLayout" or "image".
	Type     string
	Target   string
	External bool
}

// Relationships is the parsed content of a .rels part. The zero value is an
// empty set.
type Relationships struct {
	list []Relationship
	byID map[string]int
}

// ParseRelationships parses a .rels part.
func ParseRelationships(data []byte) (Relationships, error) {
	var rx relationshipsXML
	if err := xml.Unmarshal(data, &rx); err != nil {
		return Relationships{}, fmt.Errorf("parsing relationships: %w", err)
	}

	rels := Relationships{byID: make(map[string]int, len(rx.Relationship))}
	for _, r := range rx.Relationship {
		if r.ID == "" {
			continue
		}
		typ := r.Type
		if i := strings.LastIndex(typ, "/"); i >= 0 {
			typ = typ[i+1:]
		}
		rels.byID[r.ID] = len(rels.list)
		rels.list = append(rels.list, Relationship{
			ID:       r.ID,
			Type:     typ,
			Target:   r.Target,
			External: strings.EqualFold(r.TargetMode, "External"),
		})
	}
	return rels, nil
}

// ReadRelationships reads the .rels part belonging to part. A missing .rels
// part is not an error and yields an empty set.
func ReadRelationships(a *Archive, part string) (Relationships, error) {
	data, err := a.ReadFile(RelsPath(part))
	if errors.Is(err, ErrNotFound) {
		return Relationships{}, nil
	}
	if err != nil {
		return Relationships{}, err
	}
	return ParseRelationships(data)
}

// Len returns the number of relationships.
func (r Relationships) Len() int {
	return len(r.list)
}

// All returns the relationships in document order.
func (r Relationships) All() []Relationship {
	return r.list
}

// Get looks up a relationship by ID.
func (r Relationships) Get(id string) (Relationship, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Relationship{}, false
	}
	return r.list[i], true
}

// ByType returns the relationships of one type in document order.
func (r Relationships) ByType(typ string) []Relationship {
	var out []Relationship
	for _, rel := range r.list {
		if rel.Type == typ {
			out = append(out, rel)
		}
	}
	return out
}

// Resolve returns the archive path targeted by relationship id of the part
// at source. ok is false for unknown IDs and external targets.
func (r Relationships) Resolve(source, id string) (string, bool) {
	rel, ok := r.Get(id)
	if !ok || rel.External {
		return "", false
	}
	return ResolveTarget(source, rel.Target), true
}

// RelsPath returns the path of the .rels part for part, e.g.
// ppt/slideLayouts/_rels/slideLayout1.xml.rels.
func RelsPath(part string) string {
	dir, base := path.Split(part)
	return dir + "_rels/" + base + ".rels"
}

// ResolveTarget resolves a relationship target against the part it was
// declared in. Targets starting with "/" are package-absolute. "." and ".."
// segments are applied to the source part's directory; ".." at the root is
// dropped.
func ResolveTarget(source, target string) string {
	var stack []string
	if !strings.HasPrefix(target, "/") {
		if dir := path.Dir(source); dir != "." && dir != "/" {
			stack = strings.Split(strings.Trim(dir, "/"), "/")
		}
	}

	for _, seg := range strings.Split(target, "/") {
		switch seg {
		case "", ".":
		case "..":
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		default:
			stack = append(stack, seg)
		}
	}
	return strings.Join(stack, "/")
}
