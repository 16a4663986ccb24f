package model

// Fill is a resolved solid fill or an image fill.
type Fill struct {
	Color        string `json:"color,omitempty"`
	Transparency *int   `json:"transparency,omitempty"`
	// Image is a path relative to the package's ppt/ directory, e.g.
	// "media/image3.png".
	Image string `json:"image,omitempty"`
}

// LineStyle is a resolved outline.
type LineStyle struct {
	Width        float64 `json:"width,omitempty"` // points
	Color        string  `json:"color,omitempty"`
	Transparency *int    `json:"transparency,omitempty"`
	DashType     string  `json:"dashType,omitempty"`
	BeginArrow   string  `json:"beginArrowType,omitempty"`
	EndArrow     string  `json:"endArrowType,omitempty"`
}

// Shadow is a resolved outer or inner shadow.
type Shadow struct {
	Type    string  `json:"type"`   // outer or inner
	Blur    float64 `json:"blur"`   // points
	Offset  float64 `json:"offset"` // points
	Angle   float64 `json:"angle"`  // degrees
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"` // 0-1
}

// Bullet describes list marker styling.
type Bullet struct {
	// None is an explicit "no bullet".
	None bool `json:"none,omitempty"`
	// Code is the bullet glyph as uppercase hex of its code point.
	Code string `json:"code,omitempty"`
	// Type is the auto-numbering scheme, e.g. arabicPeriod.
	Type    string  `json:"type,omitempty"`
	StartAt int     `json:"startAt,omitempty"`
	Font    string  `json:"font,omitempty"`
	Color   string  `json:"color,omitempty"`
	Indent  float64 `json:"indent,omitempty"` // points
}

// TextOptions is the fully merged text styling of one text-bearing object.
type TextOptions struct {
	FontFace     string  `json:"fontFace,omitempty"`
	FontSize     float64 `json:"fontSize,omitempty"` // points
	Color        string  `json:"color,omitempty"`
	Transparency *int    `json:"transparency,omitempty"`
	Bold         *bool   `json:"bold,omitempty"`
	Italic       *bool   `json:"italic,omitempty"`
	Underline    string  `json:"underline,omitempty"`
	Strike       string  `json:"strike,omitempty"`
	Superscript  bool    `json:"superscript,omitempty"`
	Subscript    bool    `json:"subscript,omitempty"`
	CharSpacing  float64 `json:"charSpacing,omitempty"` // points

	Align               string  `json:"align,omitempty"`
	VAlign              string  `json:"valign,omitempty"`
	LineSpacing         float64 `json:"lineSpacing,omitempty"`         // points
	LineSpacingMultiple float64 `json:"lineSpacingMultiple,omitempty"` // multiplier
	ParaSpaceBefore     float64 `json:"paraSpaceBefore,omitempty"`     // points
	ParaSpaceAfter      float64 `json:"paraSpaceAfter,omitempty"`      // points
	Indent              float64 `json:"indent,omitempty"`              // points
	RTL                 bool    `json:"rtlMode,omitempty"`
	Bullet              *Bullet `json:"bullet,omitempty"`

	// Margin is top, right, bottom, left in inches.
	Margin [4]float64 `json:"margin"`
	Rotate float64    `json:"rotate,omitempty"`
	Vert   string     `json:"vert,omitempty"`
	Fit    string     `json:"fit,omitempty"` // shrink, resize or none
}

// Background is a resolved slide background.
type Background struct {
	Color        string `json:"color,omitempty"`
	Transparency *int   `json:"transparency,omitempty"`
	Image        string `json:"image,omitempty"`
	// ArchivePath is the image's full path inside the package.
	ArchivePath string `json:"-"`
}
