package pptx

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/anotb/pptx-masters/internal/xmlnode"
	"github.com/anotb/pptx-masters/model"
)

// ErrNotFound is matched by every *NotFoundError.
var ErrNotFound = errors.New("archive entry not found")

// NotFoundError reports a missing archive entry.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("archive entry not found: %s", e.Name)
}

// Is makes errors.Is(err, ErrNotFound) succeed.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Archive provides read access to the entries of a presentation package.
type Archive struct {
	zr     *zip.Reader
	closer io.Closer
	files  map[string]*zip.File
}

// Open opens a presentation package from disk.
func Open(filename string) (*Archive, error) {
	rc, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	a := newArchive(&rc.Reader)
	a.closer = rc
	return a, nil
}

// NewArchive reads a presentation package from r.
func NewArchive(r io.ReaderAt, size int64) (*Archive, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	return newArchive(zr), nil
}

func newArchive(zr *zip.Reader) *Archive {
	a := &Archive{zr: zr, files: make(map[string]*zip.File, len(zr.File))}
	for _, f := range zr.File {
		a.files[f.Name] = f
	}
	return a
}

// Close releases the underlying file, if any.
func (a *Archive) Close() error {
	if a.closer != nil {
		err := a.closer.Close()
		a.closer = nil
		return err
	}
	return nil
}

// Has reports whether the archive contains name.
func (a *Archive) Has(name string) bool {
	_, ok := a.files[name]
	return ok
}

// Files returns all entry names in sorted order.
func (a *Archive) Files() []string {
	names := make([]string, 0, len(a.files))
	for name := range a.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReadFile returns the content of an entry. A missing entry yields a
// *NotFoundError.
func (a *Archive) ReadFile(name string) ([]byte, error) {
	f, ok := a.files[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	return data, nil
}

// ReadXML parses an entry and returns its document element.
func (a *Archive) ReadXML(name string) (*xmlquery.Node, error) {
	data, err := a.ReadFile(name)
	if err != nil {
		return nil, err
	}
	doc, err := xmlnode.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	root := xmlnode.Root(doc)
	if root == nil {
		return nil, fmt.Errorf("%s: no document element", name)
	}
	return root, nil
}

// Metadata reads docProps/core.xml and docProps/app.xml. Both are optional.
func (a *Archive) Metadata() model.Metadata {
	var meta model.Metadata

	if data, err := a.ReadFile("docProps/core.xml"); err == nil {
		var core corePropertiesXML
		if xml.Unmarshal(data, &core) == nil {
			meta.Title = core.Title
			meta.Author = core.Creator
			meta.Subject = core.Subject
			if core.Keywords != "" {
				for _, kw := range strings.Split(core.Keywords, ",") {
					if kw = strings.TrimSpace(kw); kw != "" {
						meta.Keywords = append(meta.Keywords, kw)
					}
				}
			}
		}
	}

	if data, err := a.ReadFile("docProps/app.xml"); err == nil {
		var app appPropertiesXML
		if xml.Unmarshal(data, &app) == nil {
			meta.Company = app.Company
		}
	}

	return meta
}
