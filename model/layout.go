package model

import "fmt"

// Layout is the resolved form of one slide layout.
type Layout struct {
	// ID is stable for a given part path.
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        string       `json:"type,omitempty"`
	Path        string       `json:"path"`
	Master      int          `json:"master"`
	Background  *Background  `json:"background,omitempty"`
	Objects     []Object     `json:"objects"`
	SlideNumber *SlideNumber `json:"slideNumber,omitempty"`
	Warnings    []string     `json:"warnings,omitempty"`
}

// NewLayout creates an empty layout.
func NewLayout(name, path string) *Layout {
	return &Layout{
		Name:    name,
		Path:    path,
		Objects: make([]Object, 0),
	}
}

// AddObject appends an object.
func (l *Layout) AddObject(o Object) {
	l.Objects = append(l.Objects, o)
}

// Warnf records a non-fatal warning.
func (l *Layout) Warnf(format string, args ...interface{}) {
	l.Warnings = append(l.Warnings, fmt.Sprintf(format, args...))
}

// Placeholders returns the layout's placeholders in order.
func (l *Layout) Placeholders() []*Placeholder {
	var out []*Placeholder
	for _, o := range l.Objects {
		if p, ok := o.(*Placeholder); ok {
			out = append(out, p)
		}
	}
	return out
}

// ObjectsOfKind returns the objects of one kind in order.
func (l *Layout) ObjectsOfKind(kind ObjectKind) []Object {
	var out []Object
	for _, o := range l.Objects {
		if o.Kind() == kind {
			out = append(out, o)
		}
	}
	return out
}

// RemoveObjects drops every object for which drop returns true.
func (l *Layout) RemoveObjects(drop func(Object) bool) {
	kept := l.Objects[:0]
	for _, o := range l.Objects {
		if !drop(o) {
			kept = append(kept, o)
		}
	}
	l.Objects = kept
}
