package main

import input "github.com/quasilyte/ebitengine-input"

const (
	ActionUp input.Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionOK
	ActionCancel
	ActionTogglePad
)

var keymap input.Keymap = input.Keymap{
	ActionUp:        {input.KeyUp, input.KeyGamepadUp},
	ActionDown:      {input.KeyDown, input.KeyGamepadDown},
	ActionLeft:      {input.KeyLeft, input.KeyGamepadLeft},
	ActionRight:     {input.KeyRight, input.KeyGamepadRight},
	ActionOK:        {input.KeyZ, input.KeyEnter, input.KeyGamepadA},
	ActionCancel:    {input.KeyX, input.KeyEscape, input.KeyGamepadB},
	ActionTogglePad: {input.KeyF1, input.KeyGamepadStart},
}

// padActions are the actions routed into the input bridge; ActionTogglePad
// is handled separately.
var padActions = []input.Action{
	ActionUp,
	ActionDown,
	ActionLeft,
	ActionRight,
	ActionOK,
	ActionCancel,
}
