package export

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"

	"github.com/fovgrid/fov/internal/grid"
	"github.com/gen2brain/webp"
)

// Encoder encodes a rendered snapshot image into bytes in one tile-image
// format, the same shape as the teacher's format-tag Encoder interface.
type Encoder interface {
	Encode(img image.Image) ([]byte, error)
	Format() string
	FileExtension() string
}

// NewEncoder creates an encoder for the given format and quality (1-100,
// ignored by the PNG encoder).
func NewEncoder(format string, quality int) (Encoder, error) {
	switch format {
	case "png", "":
		return &pngEncoder{}, nil
	case "jpeg", "jpg":
		return &jpegEncoder{Quality: quality}, nil
	case "webp":
		return &webpEncoder{Quality: quality}, nil
	default:
		return nil, fmt.Errorf("unsupported snapshot format: %q (supported: png, jpeg, webp)", format)
	}
}

type pngEncoder struct{}

func (e *pngEncoder) Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	enc := &png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
func (e *pngEncoder) Format() string        { return "png" }
func (e *pngEncoder) FileExtension() string { return ".png" }

type jpegEncoder struct{ Quality int }

func (e *jpegEncoder) Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	quality := e.Quality
	if quality <= 0 {
		quality = 85
	}
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
func (e *jpegEncoder) Format() string        { return "jpeg" }
func (e *jpegEncoder) FileExtension() string { return ".jpg" }

type webpEncoder struct{ Quality int }

func (e *webpEncoder) Encode(img image.Image) ([]byte, error) {
	quality := e.Quality
	if quality <= 0 {
		quality = 85
	}
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, webp.Options{Quality: float32(quality)}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
func (e *webpEncoder) Format() string        { return "webp" }
func (e *webpEncoder) FileExtension() string { return ".webp" }

// Snapshot renders a visibility grid and writes it to path using the named
// format.
func Snapshot(path, format string, quality int, transparent, visible interface {
	Width() int
	Height() int
	InBounds(x, y int) bool
	GetBool(x, y int) bool
	SetBool(x, y int, v bool)
}, px, py int) error {
	enc, err := NewEncoder(format, quality)
	if err != nil {
		return err
	}
	img := Render(transparent, visible, px, py, DefaultPalette)
	data, err := enc.Encode(img)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshot %s: %w", path, err)
	}
	return nil
}
