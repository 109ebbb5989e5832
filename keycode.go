package ebipad

// KeyCode identifies an abstract input ("move up", "confirm", ...). The host
// game owns the meaning; this package only passes codes around. The defaults
// follow the usual browser keyCode values for arrows, Enter and Escape.
type KeyCode int

// KeyNone marks a tracked pointer that is not driving any key code (the
// contact started outside every button).
const KeyNone KeyCode = -1

// Fallback key codes used when a parameter is missing or unparseable.
const (
	DefaultUpKey     KeyCode = 38
	DefaultDownKey   KeyCode = 40
	DefaultLeftKey   KeyCode = 37
	DefaultRightKey  KeyCode = 39
	DefaultOKKey     KeyCode = 13
	DefaultCancelKey KeyCode = 27
	DefaultXKey      KeyCode = 13
	DefaultYKey      KeyCode = 27
)
