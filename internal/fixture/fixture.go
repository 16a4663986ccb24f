// Package fixture builds small presentation template packages in memory for
// tests.
package fixture

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Namespaces declares the a:, p: and r: prefixes on a root element.
const Namespaces = `xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" ` +
	`xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" ` +
	`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"`

const relBase = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/"

// Part is an XML part plus the extra relationships it declares (rId to
// target relative to the part).
type Part struct {
	XML  string
	Rels map[string]string
}

// Builder assembles a package. The zero value is not usable; call New.
type Builder struct {
	theme     string
	cx, cy    int64
	noSize    bool
	masters   []Part
	layouts   [][]Part
	media     map[string][]byte
	core      string
	contentCT string
}

// New returns a builder with the default theme and a 16:9 slide size.
func New() *Builder {
	return &Builder{
		theme:     Theme("Office Theme", DefaultColors()),
		cx:        12192000,
		cy:        6858000,
		media:     make(map[string][]byte),
		contentCT: "application/vnd.openxmlformats-officedocument.presentationml.template.main+xml",
	}
}

// WithTheme replaces the theme part.
func (b *Builder) WithTheme(xml string) *Builder {
	b.theme = xml
	return b
}

// WithSlideSize sets sldSz in EMUs.
func (b *Builder) WithSlideSize(cx, cy int64) *Builder {
	b.cx, b.cy = cx, cy
	return b
}

// WithoutSlideSize omits sldSz.
func (b *Builder) WithoutSlideSize() *Builder {
	b.noSize = true
	return b
}

// WithContentType sets the main part content type.
func (b *Builder) WithContentType(ct string) *Builder {
	b.contentCT = ct
	return b
}

// WithCore sets docProps/core.xml.
func (b *Builder) WithCore(title, creator string) *Builder {
	b.core = fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/">
  <dc:title>%s</dc:title>
  <dc:creator>%s</dc:creator>
  <cp:keywords>brand, template</cp:keywords>
</cp:coreProperties>`, title, creator)
	return b
}

// AddMaster adds a master with its layouts. The master and layout XML must
// not declare the layout/master/theme relationships; they are generated.
// A master's sldLayoutIdLst is generated when the XML contains the marker
// {{LAYOUTS}}.
func (b *Builder) AddMaster(master Part, layouts ...Part) *Builder {
	b.masters = append(b.masters, master)
	b.layouts = append(b.layouts, layouts)
	return b
}

// AddMedia adds ppt/media/<name>.
func (b *Builder) AddMedia(name string, data []byte) *Builder {
	b.media[name] = data
	return b
}

// Bytes builds the package.
func (b *Builder) Bytes() ([]byte, error) {
	files := b.files()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			return nil, fmt.Errorf("creating %s in zip: %w", name, err)
		}
		if _, err := w.Write(files[name]); err != nil {
			return nil, fmt.Errorf("writing %s: %w", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write builds the package into a file.
func (b *Builder) Write(path string) error {
	data, err := b.Bytes()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (b *Builder) files() map[string][]byte {
	files := make(map[string][]byte)
	put := func(name, content string) { files[name] = []byte(content) }

	var overrides []string
	override := func(part, ct string) {
		overrides = append(overrides, fmt.Sprintf(`  <Override PartName="/%s" ContentType="%s"/>`, part, ct))
	}
	override("ppt/presentation.xml", b.contentCT)
	override("ppt/theme/theme1.xml", "application/vnd.openxmlformats-officedocument.theme+xml")

	put("_rels/.rels", rels(map[string]string{"rId1": "officeDocument|ppt/presentation.xml"}))
	put("ppt/theme/theme1.xml", b.theme)

	presRels := map[string]string{}
	var masterIDs []string
	layoutNum := 0
	for i, master := range b.masters {
		n := i + 1
		masterPath := fmt.Sprintf("ppt/slideMasters/slideMaster%d.xml", n)
		rid := fmt.Sprintf("rId%d", n)
		presRels[rid] = "slideMaster|slideMasters/" + fmt.Sprintf("slideMaster%d.xml", n)
		masterIDs = append(masterIDs, fmt.Sprintf(`<p:sldMasterId id="%d" r:id="%s"/>`, 2147483648+i*20, rid))
		override(masterPath, "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml")

		mRels := map[string]string{}
		for k, v := range master.Rels {
			mRels[k] = "image|" + v
		}
		var layoutIDs []string
		for j, layout := range b.layouts[i] {
			layoutNum++
			lrid := fmt.Sprintf("rIdL%d", j+1)
			mRels[lrid] = "slideLayout|../slideLayouts/" + fmt.Sprintf("slideLayout%d.xml", layoutNum)
			layoutIDs = append(layoutIDs, fmt.Sprintf(`<p:sldLayoutId id="%d" r:id="%s"/>`, 2147483649+layoutNum, lrid))

			layoutPath := fmt.Sprintf("ppt/slideLayouts/slideLayout%d.xml", layoutNum)
			lRels := map[string]string{"rIdM": "slideMaster|../slideMasters/" + fmt.Sprintf("slideMaster%d.xml", n)}
			for k, v := range layout.Rels {
				lRels[k] = "image|" + v
			}
			put(layoutPath, layout.XML)
			put(fmt.Sprintf("ppt/slideLayouts/_rels/slideLayout%d.xml.rels", layoutNum), rels(lRels))
			override(layoutPath, "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml")
		}
		mRels["rIdT"] = "theme|../theme/theme1.xml"

		xml := strings.Replace(master.XML, "{{LAYOUTS}}",
			"<p:sldLayoutIdLst>"+strings.Join(layoutIDs, "")+"</p:sldLayoutIdLst>", 1)
		put(masterPath, xml)
		put(fmt.Sprintf("ppt/slideMasters/_rels/slideMaster%d.xml.rels", n), rels(mRels))
	}
	presRels["rIdT"] = "theme|theme/theme1.xml"
	put("ppt/_rels/presentation.xml.rels", rels(presRels))

	size := ""
	if !b.noSize {
		size = fmt.Sprintf(`<p:sldSz cx="%d" cy="%d"/>`, b.cx, b.cy)
	}
	put("ppt/presentation.xml", fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation %s><p:sldMasterIdLst>%s</p:sldMasterIdLst>%s</p:presentation>`,
		Namespaces, strings.Join(masterIDs, ""), size))

	for name, data := range b.media {
		files["ppt/media/"+name] = data
	}
	if b.core != "" {
		put("docProps/core.xml", b.core)
	}

	sort.Strings(overrides)
	put("[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Default Extension="png" ContentType="image/png"/>
`+strings.Join(overrides, "\n")+`
</Types>`)

	return files
}

// rels renders a .rels part from rId to "type|target" entries.
func rels(entries map[string]string) string {
	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	for _, id := range ids {
		typ, target, _ := strings.Cut(entries[id], "|")
		fmt.Fprintf(&sb, `<Relationship Id="%s" Type="%s%s" Target="%s"/>`, id, relBase, typ, target)
	}
	sb.WriteString(`</Relationships>`)
	return sb.String()
}
