package ebipad

import "github.com/hajimehoshi/ebiten/v2"

// PointerID identifies one simultaneous contact. Touch IDs come straight
// from the platform; the mouse gets [MousePointerID].
type PointerID int

// MousePointerID is the pointer ID of a held left mouse button. Real touch
// IDs are non-negative, so there is no collision.
const MousePointerID PointerID = -1

// Pointer is one active contact and its current position.
type Pointer struct {
	ID   PointerID
	X, Y int
}

// PointerSource reports the contacts active this frame. A contact that was
// reported last frame and is absent now has ended, however it ended (lift,
// cancel, palm rejection); the surface treats disappearance as the single
// release path.
type PointerSource interface {
	Pointers() []Pointer
}

type ebitenPointerSource struct {
	touchIDs []ebiten.TouchID
	pointers []Pointer
}

// NewEbitenPointerSource returns a PointerSource polling ebiten's mouse and
// touch state. The returned slice is reused across frames.
func NewEbitenPointerSource() PointerSource {
	return &ebitenPointerSource{}
}

func (s *ebitenPointerSource) Pointers() []Pointer {
	s.pointers = s.pointers[:0]
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s.pointers = append(s.pointers, Pointer{ID: MousePointerID, X: x, Y: y})
	}
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		x, y := ebiten.TouchPosition(id)
		s.pointers = append(s.pointers, Pointer{ID: PointerID(id), X: x, Y: y})
	}
	return s.pointers
}
