package ebipad

// Host is the surface of the host game that the gamepad talks to. The host
// owns the ordered list of currently-pressed key codes; the bridge only
// appends, removes and queries it, so the same list can be fed by a physical
// keyboard at the same time.
type Host interface {
	// Ready reports whether the host can accept input right now. All bridge
	// operations are no-ops while the host is loading or mid-transition.
	Ready() bool

	// Pressed returns the ordered list of currently-held key codes.
	Pressed() []KeyCode

	// AppendPressed adds a key code to the end of the pressed list.
	AppendPressed(k KeyCode)

	// RemovePressed removes a key code from the pressed list if present.
	RemovePressed(k KeyCode)

	// NotifyPressed fires once per press (edge-triggered).
	NotifyPressed(k KeyCode)

	// NotifyRepeat fires on the initial press and on every repeat tick
	// (level-triggered).
	NotifyRepeat(k KeyCode)

	// NotifyReleased fires on release, even when the key code was not in the
	// pressed list.
	NotifyReleased(k KeyCode)
}
