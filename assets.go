package ebipad

import (
	"bytes"
	"embed"
	"fmt"
	"image/png"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed assets/*.png
var assetsFS embed.FS

// Glyphs holds the button face images.
type Glyphs struct {
	Up, Down, Left, Right *ebiten.Image
	A, B, X, Y            *ebiten.Image
}

// LoadGlyphs decodes the embedded glyph images. A [Surface] built with nil
// glyphs still works (buttons draw as flat plates with text labels), so
// headless tests skip this.
func LoadGlyphs() (*Glyphs, error) {
	g := &Glyphs{}
	for _, it := range []struct {
		name string
		dst  **ebiten.Image
	}{
		{"arrow-up", &g.Up},
		{"arrow-down", &g.Down},
		{"arrow-left", &g.Left},
		{"arrow-right", &g.Right},
		{"button-a", &g.A},
		{"button-b", &g.B},
		{"button-x", &g.X},
		{"button-y", &g.Y},
	} {
		b, err := assetsFS.ReadFile("assets/" + it.name + ".png")
		if err != nil {
			return nil, fmt.Errorf("failed to read glyph %s: %w", it.name, err)
		}
		img, err := png.Decode(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("failed to decode glyph %s: %w", it.name, err)
		}
		*it.dst = ebiten.NewImageFromImage(img)
	}
	return g, nil
}
