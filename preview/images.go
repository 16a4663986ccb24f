package preview

import (
	"encoding/base64"
	"errors"
	"mime"
	"path"
	"strings"
)

// ErrNoImages is returned when a render has no image source.
var ErrNoImages = errors.New("no image source")

// ImageSource reads package parts by archive path. *pptx.Archive satisfies
// it.
type ImageSource interface {
	ReadFile(name string) ([]byte, error)
}

// imageTypes covers the media types templates carry that mime's builtin
// table may not know.
var imageTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".bmp":  "image/bmp",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".emf":  "image/emf",
	".wmf":  "image/wmf",
}

// Image is one media part loaded from the package.
type Image struct {
	Path string
	Data []byte
	MIME string
}

// ImageCache loads each image at most once. It belongs to a single render:
// create one per call to PDF or HTML and let it go afterwards. It is not
// safe for concurrent use.
type ImageCache struct {
	src     ImageSource
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	img *Image
	err error
	uri string
}

// NewImageCache returns a cache reading from src. A nil src yields a cache
// that fails every lookup with ErrNoImages.
func NewImageCache(src ImageSource) *ImageCache {
	return &ImageCache{src: src, entries: make(map[string]*cacheEntry)}
}

// Get returns the image at an archive path.
func (c *ImageCache) Get(archivePath string) (*Image, error) {
	e := c.entry(archivePath)
	return e.img, e.err
}

// DataURI returns the image as a base64 data URI.
func (c *ImageCache) DataURI(archivePath string) (string, error) {
	e := c.entry(archivePath)
	if e.err != nil {
		return "", e.err
	}
	if e.uri == "" {
		e.uri = "data:" + e.img.MIME + ";base64," + base64.StdEncoding.EncodeToString(e.img.Data)
	}
	return e.uri, nil
}

// Len returns the number of paths looked up so far.
func (c *ImageCache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

func (c *ImageCache) entry(archivePath string) *cacheEntry {
	if c == nil || c.src == nil {
		return &cacheEntry{err: ErrNoImages}
	}
	if e, ok := c.entries[archivePath]; ok {
		return e
	}

	e := &cacheEntry{}
	data, err := c.src.ReadFile(archivePath)
	if err != nil {
		e.err = err
	} else {
		e.img = &Image{Path: archivePath, Data: data, MIME: mimeType(archivePath)}
	}
	c.entries[archivePath] = e
	return e
}

func mimeType(name string) string {
	ext := strings.ToLower(path.Ext(name))
	if t, ok := imageTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}

// fillArchivePath turns a fill image path, relative to ppt/, into an archive
// path.
func fillArchivePath(rel string) string {
	if rel == "" || strings.HasPrefix(rel, "ppt/") {
		return rel
	}
	return "ppt/" + rel
}
