package integrations

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ArtworkSettings controls how record artwork is prepared for a book.
type ArtworkSettings struct {
	MaxSize   int // longest side in pixels
	Grayscale bool
}

func DefaultArtworkSettings() ArtworkSettings {
	return ArtworkSettings{MaxSize: 256}
}

// ArtworkProcessor scales artwork down and re-encodes it as PNG.
type ArtworkProcessor struct {
	settings ArtworkSettings
}

func NewArtworkProcessor(settings ArtworkSettings) *ArtworkProcessor {
	if settings.MaxSize <= 0 {
		settings.MaxSize = DefaultArtworkSettings().MaxSize
	}
	return &ArtworkProcessor{settings: settings}
}

// Process decodes content, fits it within MaxSize and encodes it as PNG.
func (p *ArtworkProcessor) Process(content []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := p.calculateDimensions(bounds.Dx(), bounds.Dy())

	var processed image.Image = img
	if width != bounds.Dx() || height != bounds.Dy() {
		processed = p.resize(img, width, height)
	}
	if p.settings.Grayscale {
		processed = p.toGrayscale(processed)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, processed); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// calculateDimensions fits width x height within MaxSize keeping the aspect ratio
func (p *ArtworkProcessor) calculateDimensions(width, height int) (int, int) {
	limit := p.settings.MaxSize
	if width <= limit && height <= limit {
		return width, height
	}

	scale := float64(limit) / float64(max(width, height))
	return max(1, int(float64(width)*scale)), max(1, int(float64(height)*scale))
}

func (p *ArtworkProcessor) resize(img image.Image, width, height int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// toGrayscale keeps transparency, which image.Gray cannot hold
func (p *ArtworkProcessor) toGrayscale(img image.Image) image.Image {
	bounds := img.Bounds()
	gray := image.NewGray16(bounds)
	alpha := image.NewAlpha16(bounds)
	draw.Draw(gray, bounds, img, bounds.Min, draw.Src)
	draw.Draw(alpha, bounds, img, bounds.Min, draw.Src)

	out := image.NewNRGBA(bounds)
	draw.DrawMask(out, bounds, gray, bounds.Min, alpha, bounds.Min, draw.Src)
	return out
}
