package components

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// DecodeImage decodes a PNG, JPEG, GIF or WebP image.
func DecodeImage(content []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// RenderSprite draws img cols cells wide using half blocks, two pixel rows
// per terminal row. Transparent pixels are left blank.
func RenderSprite(img image.Image, cols int) string {
	b := img.Bounds()
	if cols <= 0 || b.Dx() == 0 || b.Dy() == 0 {
		return ""
	}
	rows := cols * b.Dy() / b.Dx()
	rows += rows % 2
	if rows == 0 {
		rows = 2
	}

	dst := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)

	var out strings.Builder
	for y := 0; y < rows; y += 2 {
		for x := 0; x < cols; x++ {
			out.WriteString(halfBlock(dst.NRGBAAt(x, y), dst.NRGBAAt(x, y+1)))
		}
		out.WriteString("\n")
	}
	return out.String()
}

func halfBlock(top, bottom color.NRGBA) string {
	topOn, bottomOn := top.A >= 128, bottom.A >= 128
	switch {
	case topOn && bottomOn:
		return lipgloss.NewStyle().Foreground(hex(top)).Background(hex(bottom)).Render("▀")
	case topOn:
		return lipgloss.NewStyle().Foreground(hex(top)).Render("▀")
	case bottomOn:
		return lipgloss.NewStyle().Foreground(hex(bottom)).Render("▄")
	default:
		return " "
	}
}

func hex(c color.NRGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
}
