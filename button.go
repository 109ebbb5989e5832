package ebipad

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ButtonDescriptor describes one tappable control.
type ButtonDescriptor struct {
	ID    string // unique within the surface, e.g. "dpad-up"
	Label string // accessible label, drawn when no glyph is set
	Key   KeyCode
	Glyph *ebiten.Image // may be nil
	Row   int           // cell in the cluster's 3x3 grid
	Col   int
}

// Button is a mounted control with its screen-space bounds.
type Button struct {
	desc ButtonDescriptor
	rect image.Rectangle
}

func newButton(desc ButtonDescriptor) *Button {
	return &Button{desc: desc}
}

// Contains reports whether the point lies inside the button's bounds.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.rect)
}

var (
	plateColor     = color.RGBA{0x20, 0x20, 0x28, 0xb0}
	plateHeldColor = color.RGBA{0x50, 0x50, 0x60, 0xd0}
	labelColor     = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
)

// Draw renders the button plate, then the glyph or the text label. held
// selects the highlighted plate.
func (b *Button) Draw(screen *ebiten.Image, face text.Face, held bool) {
	clr := plateColor
	if held {
		clr = plateHeldColor
	}
	r := b.rect
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, true)

	if b.desc.Glyph != nil {
		gw, gh := b.desc.Glyph.Bounds().Dx(), b.desc.Glyph.Bounds().Dy()
		op := &ebiten.DrawImageOptions{}
		sx := float64(r.Dx()) / float64(gw)
		sy := float64(r.Dy()) / float64(gh)
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
		screen.DrawImage(b.desc.Glyph, op)
		return
	}
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(float64(r.Min.X+r.Dx()/2), float64(r.Min.Y+r.Dy()/2))
	op.ColorScale.ScaleWithColor(labelColor)
	text.Draw(screen, b.desc.Label, face, op)
}
