// Package format detects which kind of presentation package a file is.
package format

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a supported presentation package kind.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Presentation indicates a PowerPoint presentation (.pptx).
	Presentation
	// Template indicates a PowerPoint template (.potx).
	Template
	// Show indicates a PowerPoint slide show (.ppsx).
	Show
	// MacroPresentation indicates a macro-enabled presentation (.pptm).
	MacroPresentation
	// MacroTemplate indicates a macro-enabled template (.potm).
	MacroTemplate
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Presentation:
		return "PPTX"
	case Template:
		return "POTX"
	case Show:
		return "PPSX"
	case MacroPresentation:
		return "PPTM"
	case MacroTemplate:
		return "POTM"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Presentation:
		return ".pptx"
	case Template:
		return ".potx"
	case Show:
		return ".ppsx"
	case MacroPresentation:
		return ".pptm"
	case MacroTemplate:
		return ".potm"
	default:
		return ""
	}
}

// IsTemplate reports whether the format is a template package.
func (f Format) IsTemplate() bool {
	return f == Template || f == MacroTemplate
}

// Supported reports whether the format can be read.
func (f Format) Supported() bool {
	return f != Unknown
}

// mainContentTypes maps the content type of ppt/presentation.xml to a format.
var mainContentTypes = map[string]Format{
	"application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml": Presentation,
	"application/vnd.openxmlformats-officedocument.presentationml.template.main+xml":     Template,
	"application/vnd.openxmlformats-officedocument.presentationml.slideshow.main+xml":    Show,
	"application/vnd.ms-powerpoint.presentation.macroEnabled.main+xml":                    MacroPresentation,
	"application/vnd.ms-powerpoint.template.macroEnabled.main+xml":                        MacroTemplate,
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pptx":
		return Presentation
	case ".potx":
		return Template
	case ".ppsx":
		return Show
	case ".pptm":
		return MacroPresentation
	case ".potm":
		return MacroTemplate
	default:
		return Unknown
	}
}

// contentTypesXML is [Content_Types].xml.
type contentTypesXML struct {
	Overrides []struct {
		PartName    string `xml:"PartName,attr"`
		ContentType string `xml:"ContentType,attr"`
	} `xml:"Override"`
}

// DetectFromContentTypes determines the format from the content type
// registered for /ppt/presentation.xml. It returns Unknown when the data
// cannot be parsed or names no presentation part.
func DetectFromContentTypes(data []byte) Format {
	var ct contentTypesXML
	if err := xml.Unmarshal(data, &ct); err != nil {
		return Unknown
	}
	for _, o := range ct.Overrides {
		if !strings.EqualFold(o.PartName, "/ppt/presentation.xml") {
			continue
		}
		for ct, f := range mainContentTypes {
			if strings.EqualFold(ct, strings.TrimSpace(o.ContentType)) {
				return f
			}
		}
		return Unknown
	}
	return Unknown
}

// isZIP checks for the local file header signature PK\x03\x04.
func isZIP(magic []byte) bool {
	return len(magic) >= 4 && magic[0] == 0x50 && magic[1] == 0x4B && magic[2] == 0x03 && magic[3] == 0x04
}

// DetectFromReader inspects the content to determine format. A ZIP archive
// with a ppt/presentation.xml part whose content type is not recognized is
// reported as a plain presentation.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, 4)
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	if !isZIP(magic[:n]) {
		return Unknown, nil
	}

	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	hasPresentation := false
	var found Format
	for _, f := range zr.File {
		switch f.Name {
		case "ppt/presentation.xml":
			hasPresentation = true
		case "[Content_Types].xml":
			data, err := readZipFile(f)
			if err != nil {
				return Unknown, err
			}
			found = DetectFromContentTypes(data)
		}
	}

	if !hasPresentation {
		return Unknown, nil
	}
	if found == Unknown {
		return Presentation, nil
	}
	return found, nil
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
