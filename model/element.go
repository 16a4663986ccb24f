package model

import "encoding/json"

// ObjectKind identifies the concrete type of an Object.
type ObjectKind string

const (
	KindPlaceholder ObjectKind = "placeholder"
	KindShape       ObjectKind = "shape"
	KindText        ObjectKind = "text"
	KindImage       ObjectKind = "image"
	KindLine        ObjectKind = "line"
)

// Source records where an object was defined.
type Source string

const (
	SourceLayout Source = "layout"
	SourceMaster Source = "master"
)

// Object is implemented by everything that can appear in a layout's object
// list.
type Object interface {
	Kind() ObjectKind
	Bounds() Position
	ObjectName() string
}

// Placeholder is a typed content region.
type Placeholder struct {
	Name string `json:"name"`
	// Role is the output placeholder type: title, body, pic, chart, tbl,
	// media, sldNum, ftr, dt or hdr.
	Role string `json:"role"`
	// PhType is the raw DrawingML placeholder type ("" when untyped).
	PhType   string      `json:"phType,omitempty"`
	Idx      *int        `json:"idx,omitempty"`
	Position Position    `json:"position"`
	Text     string      `json:"text,omitempty"`
	Options  TextOptions `json:"options"`
	Fill     *Fill       `json:"fill,omitempty"`
	Line     *LineStyle  `json:"line,omitempty"`
	Source   Source      `json:"source"`
}

func (p *Placeholder) Kind() ObjectKind   { return KindPlaceholder }
func (p *Placeholder) Bounds() Position   { return p.Position }
func (p *Placeholder) ObjectName() string { return p.Name }

// MarshalJSON adds the object kind.
func (p *Placeholder) MarshalJSON() ([]byte, error) {
	type alias Placeholder
	return json.Marshal(struct {
		Kind ObjectKind `json:"kind"`
		*alias
	}{KindPlaceholder, (*alias)(p)})
}

// Shape is a preset geometry with fill, outline and shadow.
type Shape struct {
	Name     string     `json:"name"`
	Geometry string     `json:"geometry"`
	Position Position   `json:"position"`
	Fill     *Fill      `json:"fill,omitempty"`
	Line     *LineStyle `json:"line,omitempty"`
	Shadow   *Shadow    `json:"shadow,omitempty"`
	Rotation float64    `json:"rotate,omitempty"`
	FlipH    bool       `json:"flipH,omitempty"`
	FlipV    bool       `json:"flipV,omitempty"`
	// RectRadius is the corner radius of a rounded rectangle in inches.
	RectRadius float64 `json:"rectRadius,omitempty"`
	Source     Source  `json:"source"`
}

func (s *Shape) Kind() ObjectKind   { return KindShape }
func (s *Shape) Bounds() Position   { return s.Position }
func (s *Shape) ObjectName() string { return s.Name }

// MarshalJSON adds the object kind.
func (s *Shape) MarshalJSON() ([]byte, error) {
	type alias Shape
	return json.Marshal(struct {
		Kind ObjectKind `json:"kind"`
		*alias
	}{KindShape, (*alias)(s)})
}

// Text is a static text box. Paragraphs and line breaks are flattened into a
// single newline-separated string.
type Text struct {
	Name     string      `json:"name"`
	Text     string      `json:"text"`
	Geometry string      `json:"geometry,omitempty"`
	Position Position    `json:"position"`
	Options  TextOptions `json:"options"`
	Fill     *Fill       `json:"fill,omitempty"`
	Line     *LineStyle  `json:"line,omitempty"`
	Shadow   *Shadow     `json:"shadow,omitempty"`
	// Role is ftr, dt or hdr for footer-zone text, "" otherwise.
	Role   string `json:"role,omitempty"`
	Source Source `json:"source"`
}

func (t *Text) Kind() ObjectKind   { return KindText }
func (t *Text) Bounds() Position   { return t.Position }
func (t *Text) ObjectName() string { return t.Name }

// MarshalJSON adds the object kind.
func (t *Text) MarshalJSON() ([]byte, error) {
	type alias Text
	return json.Marshal(struct {
		Kind ObjectKind `json:"kind"`
		*alias
	}{KindText, (*alias)(t)})
}

// Image is a picture.
type Image struct {
	Name     string   `json:"name"`
	Position Position `json:"position"`
	// Path is relative to the package's ppt/ directory.
	Path        string  `json:"path"`
	ArchivePath string  `json:"-"`
	Rotation    float64 `json:"rotate,omitempty"`
	Source      Source  `json:"source"`
}

func (i *Image) Kind() ObjectKind   { return KindImage }
func (i *Image) Bounds() Position   { return i.Position }
func (i *Image) ObjectName() string { return i.Name }

// MarshalJSON adds the object kind.
func (i *Image) MarshalJSON() ([]byte, error) {
	type alias Image
	return json.Marshal(struct {
		Kind ObjectKind `json:"kind"`
		*alias
	}{KindImage, (*alias)(i)})
}

// Line is a straight line. Horizontal and vertical lines have a zero height
// or width respectively.
type Line struct {
	Name     string    `json:"name"`
	Position Position  `json:"position"`
	Style    LineStyle `json:"line"`
	FlipH    bool      `json:"flipH,omitempty"`
	FlipV    bool      `json:"flipV,omitempty"`
	Rotation float64   `json:"rotate,omitempty"`
	Source   Source    `json:"source"`
}

func (l *Line) Kind() ObjectKind   { return KindLine }
func (l *Line) Bounds() Position   { return l.Position }
func (l *Line) ObjectName() string { return l.Name }

// MarshalJSON adds the object kind.
func (l *Line) MarshalJSON() ([]byte, error) {
	type alias Line
	return json.Marshal(struct {
		Kind ObjectKind `json:"kind"`
		*alias
	}{KindLine, (*alias)(l)})
}

// SlideNumber describes where and how the slide number is drawn.
type SlideNumber struct {
	Position Position    `json:"position"`
	Options  TextOptions `json:"options"`
	Source   Source      `json:"source"`
}
