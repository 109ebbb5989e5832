package main

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/MatusOllah/ebipad"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	input "github.com/quasilyte/ebitengine-input"
)

const (
	Width  = 800
	Height = 600
)

// loadingFrames fakes a short loading phase on startup so the bridge's
// readiness gate is visible: touches during it go nowhere.
const loadingFrames = 90

type Game struct {
	cfg     ebipad.Config
	bridge  *ebipad.Bridge
	surface *ebipad.Surface

	inputSystem  input.System
	inputHandler *input.Handler
	actionKeys   map[input.Action]ebipad.KeyCode
	actionHeld   map[input.Action]bool // previous-frame state for edge detection

	pressed   []ebipad.KeyCode // ordered pressed-keys list, shared by touch and keyboard
	loading   int
	lastEvent string
	repeats   int
}

func NewGame(cfg ebipad.Config) (*Game, error) {
	g := &Game{
		cfg:        cfg,
		loading:    loadingFrames,
		actionHeld: map[input.Action]bool{},
		actionKeys: map[input.Action]ebipad.KeyCode{
			ActionUp:     cfg.UpKey,
			ActionDown:   cfg.DownKey,
			ActionLeft:   cfg.LeftKey,
			ActionRight:  cfg.RightKey,
			ActionOK:     cfg.OKKey,
			ActionCancel: cfg.CancelKey,
		},
	}
	g.inputSystem.Init(input.SystemConfig{DevicesEnabled: input.AnyDevice})
	g.inputHandler = g.inputSystem.NewHandler(0, keymap)

	glyphs, err := ebipad.LoadGlyphs()
	if err != nil {
		return nil, fmt.Errorf("failed to load glyphs: %w", err)
	}
	g.bridge = ebipad.NewBridge(g)
	g.surface = ebipad.NewSurface(g.bridge, cfg, ebipad.NewEbitenPointerSource(), ebipad.WithGlyphs(glyphs))
	g.surface.Activate()

	return g, nil
}

func (g *Game) InitEbiten() {
	ebiten.SetWindowSize(Width, Height)
	ebiten.SetWindowTitle("ebipad-demo")
}

func (g *Game) Start() error {
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	g.inputSystem.Update()
	if g.loading > 0 {
		g.loading--
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if g.inputHandler.ActionIsJustPressed(ActionTogglePad) {
		g.surface.Toggle()
	}

	// Physical keys go through the same bridge as the on-screen buttons;
	// the duplicate-press guard keeps the pressed list clean when both
	// drive the same key code.
	for _, action := range padActions {
		held := g.inputHandler.ActionIsPressed(action)
		if held != g.actionHeld[action] {
			g.actionHeld[action] = held
			if held {
				g.bridge.Press(g.actionKeys[action])
			} else {
				g.bridge.Release(g.actionKeys[action])
			}
		}
	}

	g.surface.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.loading > 0 {
		ebitenutil.DebugPrintAt(screen, "loading...", 16, 16)
		return
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("pressed: %v", g.pressed), 16, 16)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("last event: %s | repeat ticks: %d", g.lastEvent, g.repeats), 16, 32)
	ebitenutil.DebugPrintAt(screen, "F1: toggle gamepad, F11: fullscreen", 16, 48)
	g.surface.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	g.surface.Resize(Width, Height)
	return Width, Height
}

// Host implementation: the demo game owns the pressed-keys list and logs
// every notification the bridge sends.

func (g *Game) Ready() bool {
	return g.loading <= 0
}

func (g *Game) Pressed() []ebipad.KeyCode {
	return g.pressed
}

func (g *Game) AppendPressed(k ebipad.KeyCode) {
	g.pressed = append(g.pressed, k)
}

func (g *Game) RemovePressed(k ebipad.KeyCode) {
	if i := slices.Index(g.pressed, k); i >= 0 {
		g.pressed = slices.Delete(g.pressed, i, i+1)
	}
}

func (g *Game) NotifyPressed(k ebipad.KeyCode) {
	g.lastEvent = fmt.Sprintf("pressed %d", k)
	slog.Debug("key pressed", "key", k)
}

func (g *Game) NotifyRepeat(k ebipad.KeyCode) {
	g.repeats++
	slog.Debug("key repeat", "key", k)
}

func (g *Game) NotifyReleased(k ebipad.KeyCode) {
	g.lastEvent = fmt.Sprintf("released %d", k)
	slog.Debug("key released", "key", k)
}
