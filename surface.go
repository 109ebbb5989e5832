package ebipad

import (
	"bytes"
	"image"
	"log/slog"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	buttonSize   = 72
	buttonGap    = 8
	clusterInset = 24
	clusterSpan  = 3*buttonSize + 2*buttonGap
)

// cluster is a mounted 3x3 cross of buttons, anchored to the bottom-left or
// bottom-right screen corner.
type cluster struct {
	id      string
	right   bool
	buttons []*Button
}

// Surface builds the visual control clusters and routes pointer gestures to
// the [Bridge]. Drive it from the host game's loop: Update every frame,
// Draw after the game scene, Resize from Layout.
type Surface struct {
	bridge *Bridge
	cfg    Config
	source PointerSource
	logger *slog.Logger
	glyphs *Glyphs
	face   text.Face

	show          bool
	width, height int
	clusters      map[string]*cluster
	order         []*cluster

	// pointers maps each active contact to the key code it is driving
	// (KeyNone for contacts that began outside every button). holds
	// reference-counts pointers per key code so that two contacts on the
	// same code release it only once, on the last lift.
	pointers map[PointerID]KeyCode
	holds    map[KeyCode]int
	seen     map[PointerID]bool
}

// SurfaceOption configures a [Surface].
type SurfaceOption func(*Surface)

// WithGlyphs sets the button face images. Without glyphs buttons draw as
// flat plates with text labels.
func WithGlyphs(g *Glyphs) SurfaceOption {
	return func(s *Surface) { s.glyphs = g }
}

// WithSurfaceLogger sets the logger used for gesture debug logging.
func WithSurfaceLogger(l *slog.Logger) SurfaceOption {
	return func(s *Surface) { s.logger = l }
}

// NewSurface returns a surface feeding bridge from source. The surface
// starts hidden or shown per cfg.ShowGamepad; call [Surface.Activate] to
// mount the controls.
func NewSurface(bridge *Bridge, cfg Config, source PointerSource, opts ...SurfaceOption) *Surface {
	s := &Surface{
		bridge:   bridge,
		cfg:      cfg,
		source:   source,
		logger:   slog.Default(),
		show:     cfg.ShowGamepad,
		clusters: make(map[string]*cluster),
		pointers: make(map[PointerID]KeyCode),
		holds:    make(map[KeyCode]int),
		seen:     make(map[PointerID]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.face = labelFace()
	return s
}

// Activate mounts both control clusters. No-op when the gamepad is hidden;
// mounting an already-mounted cluster is also a no-op, so repeated
// activation never duplicates controls.
func (s *Surface) Activate() {
	if !s.show {
		return
	}
	s.mount(s.directionalCluster())
	s.mount(s.actionCluster())
	s.layout()
}

// Toggle flips the gamepad's visibility and re-runs activation. Hiding
// releases everything currently held so no key code stays stuck down.
func (s *Surface) Toggle() {
	s.show = !s.show
	s.logger.Info("gamepad view toggled", "show", s.show)
	if !s.show {
		s.releaseAll()
		return
	}
	s.Activate()
}

// Shown reports whether the gamepad is currently visible.
func (s *Surface) Shown() bool { return s.show }

// Resize positions the clusters for the given screen size. Call from the
// game's Layout.
func (s *Surface) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.layout()
}

// Update routes this frame's pointer state into the bridge and fires due
// key repeats. Call once per frame from the game's Update.
func (s *Surface) Update() {
	if s.show {
		s.routePointers()
	}
	s.bridge.Tick()
}

// Draw renders the mounted clusters. Call after drawing the game scene.
func (s *Surface) Draw(screen *ebiten.Image) {
	if !s.show {
		return
	}
	for _, c := range s.order {
		for _, b := range c.buttons {
			b.Draw(screen, s.face, s.holds[b.desc.Key] > 0)
		}
	}
}

func (s *Surface) mount(c *cluster) {
	if _, ok := s.clusters[c.id]; ok {
		return
	}
	s.clusters[c.id] = c
	s.order = append(s.order, c)
}

func (s *Surface) directionalCluster() *cluster {
	var up, down, left, right *ebiten.Image
	if s.glyphs != nil {
		up, down, left, right = s.glyphs.Up, s.glyphs.Down, s.glyphs.Left, s.glyphs.Right
	}
	return &cluster{
		id: "dpad",
		buttons: []*Button{
			newButton(ButtonDescriptor{ID: "dpad-up", Label: "Up", Key: s.cfg.UpKey, Glyph: up, Row: 0, Col: 1}),
			newButton(ButtonDescriptor{ID: "dpad-left", Label: "Left", Key: s.cfg.LeftKey, Glyph: left, Row: 1, Col: 0}),
			newButton(ButtonDescriptor{ID: "dpad-right", Label: "Right", Key: s.cfg.RightKey, Glyph: right, Row: 1, Col: 2}),
			newButton(ButtonDescriptor{ID: "dpad-down", Label: "Down", Key: s.cfg.DownKey, Glyph: down, Row: 2, Col: 1}),
		},
	}
}

func (s *Surface) actionCluster() *cluster {
	var a, b, x, y *ebiten.Image
	if s.glyphs != nil {
		a, b, x, y = s.glyphs.A, s.glyphs.B, s.glyphs.X, s.glyphs.Y
	}
	// X/A and Y/B default to shared key codes: redundant placements for
	// different gamepad muscle memory.
	return &cluster{
		id:    "action",
		right: true,
		buttons: []*Button{
			newButton(ButtonDescriptor{ID: "action-x", Label: "X", Key: s.cfg.XKey, Glyph: x, Row: 0, Col: 1}),
			newButton(ButtonDescriptor{ID: "action-y", Label: "Y", Key: s.cfg.YKey, Glyph: y, Row: 1, Col: 0}),
			newButton(ButtonDescriptor{ID: "action-a", Label: "A", Key: s.cfg.OKKey, Glyph: a, Row: 1, Col: 2}),
			newButton(ButtonDescriptor{ID: "action-b", Label: "B", Key: s.cfg.CancelKey, Glyph: b, Row: 2, Col: 1}),
		},
	}
}

func (s *Surface) layout() {
	for _, c := range s.order {
		originX := clusterInset
		if c.right {
			originX = s.width - clusterInset - clusterSpan
		}
		originY := s.height - clusterInset - clusterSpan
		for _, b := range c.buttons {
			x := originX + b.desc.Col*(buttonSize+buttonGap)
			y := originY + b.desc.Row*(buttonSize+buttonGap)
			b.rect = image.Rect(x, y, x+buttonSize, y+buttonSize)
		}
	}
}

func (s *Surface) routePointers() {
	clear(s.seen)
	for _, p := range s.source.Pointers() {
		s.seen[p.ID] = true
		if _, ok := s.pointers[p.ID]; ok {
			// Captured: the contact stays bound to whatever it hit on its
			// first frame, wherever it moves.
			continue
		}
		s.press(p)
	}
	// A tracked pointer the platform no longer reports has ended, however
	// it ended. Single funnel for lift, cancel and capture loss.
	for id := range s.pointers {
		if !s.seen[id] {
			s.lift(id)
		}
	}
}

func (s *Surface) press(p Pointer) {
	k := KeyNone
	for _, c := range s.order {
		for _, b := range c.buttons {
			if b.Contains(p.X, p.Y) {
				k = b.desc.Key
			}
		}
	}
	s.pointers[p.ID] = k
	if k == KeyNone {
		return
	}
	s.holds[k]++
	s.logger.Debug("pointer down", "pointer", p.ID, "key", k, "holds", s.holds[k])
	s.bridge.Press(k)
}

func (s *Surface) lift(id PointerID) {
	k, ok := s.pointers[id]
	if !ok {
		return
	}
	delete(s.pointers, id)
	if k == KeyNone {
		return
	}
	if n := s.holds[k] - 1; n > 0 {
		// Another pointer still holds this key code.
		s.holds[k] = n
		return
	}
	delete(s.holds, k)
	s.logger.Debug("pointer up", "pointer", id, "key", k)
	s.bridge.Release(k)
}

func (s *Surface) releaseAll() {
	for id := range s.pointers {
		s.lift(id)
	}
}

func (s *Surface) buttonCount() int {
	n := 0
	for _, c := range s.order {
		n += len(c.buttons)
	}
	return n
}

var (
	labelFaceOnce   sync.Once
	labelFaceSource *text.GoTextFaceSource
)

func labelFace() text.Face {
	labelFaceOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return
		}
		labelFaceSource = src
	})
	if labelFaceSource == nil {
		return nil
	}
	return &text.GoTextFace{Source: labelFaceSource, Size: 18}
}
