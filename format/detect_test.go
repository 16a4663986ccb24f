package format

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/anotb/pptx-masters/internal/fixture"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{Presentation, "PPTX"},
		{Template, "POTX"},
		{Show, "PPSX"},
		{MacroPresentation, "PPTM"},
		{MacroTemplate, "POTM"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_Extension(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{Presentation, ".pptx"},
		{Template, ".potx"},
		{Show, ".ppsx"},
		{MacroPresentation, ".pptm"},
		{MacroTemplate, ".potm"},
		{Unknown, ""},
	}

	for _, tt := range tests {
		if got := tt.format.Extension(); got != tt.want {
			t.Errorf("Format(%d).Extension() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestFormat_IsTemplate(t *testing.T) {
	if !Template.IsTemplate() || !MacroTemplate.IsTemplate() {
		t.Error("template formats should report IsTemplate")
	}
	if Presentation.IsTemplate() || Unknown.IsTemplate() {
		t.Error("non-template formats should not report IsTemplate")
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"brand.pptx", Presentation},
		{"brand.PPTX", Presentation},
		{"brand.potx", Template},
		{"brand.Potx", Template},
		{"brand.ppsx", Show},
		{"brand.pptm", MacroPresentation},
		{"brand.potm", MacroTemplate},
		{"/path/to/brand.potx", Template},
		{"brand.ppt", Unknown},
		{"brand.docx", Unknown},
		{"brand", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromContentTypes(t *testing.T) {
	types := func(ct string) []byte {
		return []byte(`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>
<Override PartName="/ppt/presentation.xml" ContentType="` + ct + `"/>
</Types>`)
	}

	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"presentation", types("application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"), Presentation},
		{"template", types("application/vnd.openxmlformats-officedocument.presentationml.template.main+xml"), Template},
		{"slide show", types("application/vnd.openxmlformats-officedocument.presentationml.slideshow.main+xml"), Show},
		{"macro presentation", types("application/vnd.ms-powerpoint.presentation.macroEnabled.main+xml"), MacroPresentation},
		{"macro template", types("application/vnd.ms-powerpoint.template.macroenabled.main+xml"), MacroTemplate},
		{"word document", types("application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"), Unknown},
		{"no presentation part", []byte(`<Types/>`), Unknown},
		{"malformed", []byte(`<Types`), Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromContentTypes(tt.data); got != tt.want {
				t.Errorf("DetectFromContentTypes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFromReader_Template(t *testing.T) {
	data, err := fixture.New().Bytes()
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}

	format, err := DetectFromReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if format != Template {
		t.Errorf("DetectFromReader() = %v, want Template", format)
	}
}

func TestDetectFromReader_UnrecognizedContentType(t *testing.T) {
	data, err := fixture.New().WithContentType("application/xml").Bytes()
	if err != nil {
		t.Fatalf("building fixture: %v", err)
	}

	format, err := DetectFromReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if format != Presentation {
		t.Errorf("DetectFromReader() = %v, want Presentation", format)
	}
}

func TestDetectFromReader_OtherZIP(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatal(err)
	}
	w.Write([]byte("<w:document/>"))
	zw.Close()

	format, err := DetectFromReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if format != Unknown {
		t.Errorf("DetectFromReader() = %v, want Unknown", format)
	}
}

func TestDetectFromReader_Unknown(t *testing.T) {
	data := []byte("Hello, World! This is plain text.")
	r := bytes.NewReader(data)

	format, err := DetectFromReader(r, int64(len(data)))
	if err != nil {
		t.Fatalf("DetectFromReader() error = %v", err)
	}
	if format != Unknown {
		t.Errorf("DetectFromReader() = %v, want Unknown", format)
	}
}
