// Package imgstat computes summary colors of raster images.
package imgstat

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"path"
	"strings"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// SampleSize is the edge length images are scaled down to before averaging.
const SampleSize = 32

// AverageColor decodes an image and returns its mean color as uppercase
// six-digit hex. Fully transparent pixels are ignored; an image with no
// opaque pixels yields "".
func AverageColor(data []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}
	return Average(img), nil
}

// Average returns the mean color of img as uppercase six-digit hex, weighting
// each pixel by its alpha.
func Average(img image.Image) string {
	small := image.NewNRGBA(image.Rect(0, 0, SampleSize, SampleSize))
	draw.ApproxBiLinear.Scale(small, small.Bounds(), img, img.Bounds(), draw.Src, nil)

	var r, g, b, weight float64
	for i := 0; i < len(small.Pix); i += 4 {
		a := float64(small.Pix[i+3]) / 255
		if a == 0 {
			continue
		}
		r += float64(small.Pix[i]) * a
		g += float64(small.Pix[i+1]) * a
		b += float64(small.Pix[i+2]) * a
		weight += a
	}
	if weight == 0 {
		return ""
	}
	return fmt.Sprintf("%02X%02X%02X", round(r/weight), round(g/weight), round(b/weight))
}

func round(v float64) int {
	n := int(v + 0.5)
	if n > 255 {
		return 255
	}
	return n
}

// ToPNG re-encodes any decodable image as PNG.
func ToPNG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// Supported reports whether a media file name has an extension the decoder
// understands.
func Supported(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp":
		return true
	}
	return false
}
