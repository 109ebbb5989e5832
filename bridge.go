package ebipad

import (
	"log/slog"
	"time"
)

// Key-repeat timing, matching standard keyboard UX: a longer initial hold
// delay, then a faster steady-state cadence.
const (
	repeatDelay    = 180 * time.Millisecond
	repeatInterval = 60 * time.Millisecond
)

// repeatState tracks the repeat schedule for one held key code. Until the
// initial delay elapses `repeating` is false and `next` is the delay
// deadline; afterwards `next` is the deadline of the next repeat tick.
type repeatState struct {
	next      time.Time
	repeating bool
}

// Bridge translates abstract press/release intents into host notifications
// with auto-repeat. It holds no goroutines or wall-clock timers: the host
// game calls [Bridge.Tick] once per frame (Surface.Update does this for
// you) and due repeats fire from there.
type Bridge struct {
	host    Host
	clock   Clock
	logger  *slog.Logger
	repeats map[KeyCode]*repeatState
}

// BridgeOption configures a [Bridge].
type BridgeOption func(*Bridge)

// WithClock substitutes the time source used for repeat scheduling.
func WithClock(c Clock) BridgeOption {
	return func(b *Bridge) { b.clock = c }
}

// WithBridgeLogger sets the logger used for press/release debug logging.
func WithBridgeLogger(l *slog.Logger) BridgeOption {
	return func(b *Bridge) { b.logger = l }
}

// NewBridge returns a bridge forwarding into host.
func NewBridge(host Host, opts ...BridgeOption) *Bridge {
	b := &Bridge{
		host:    host,
		clock:   systemClock{},
		logger:  slog.Default(),
		repeats: make(map[KeyCode]*repeatState),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Press presses a key code: appends it to the host's pressed list unless
// already held (the list may also be fed by a physical keyboard), notifies
// the host, and (re)arms the repeat schedule. Pressing an already-held key
// restarts the initial delay. No-op while the host is not ready.
func (b *Bridge) Press(k KeyCode) {
	if !b.host.Ready() {
		return
	}
	if !b.isPressed(k) {
		b.host.AppendPressed(k)
		b.host.NotifyPressed(k)
	}
	// The first press counts as the first repeat tick.
	b.host.NotifyRepeat(k)
	b.repeats[k] = &repeatState{next: b.clock.Now().Add(repeatDelay)}
	b.logger.Debug("key pressed", "key", k)
}

// Release releases a key code: drops its repeat schedule, removes it from
// the host's pressed list and notifies the host. The release notification
// fires even when the key code was not held. No-op while the host is not
// ready.
func (b *Bridge) Release(k KeyCode) {
	if !b.host.Ready() {
		return
	}
	delete(b.repeats, k)
	b.host.RemovePressed(k)
	b.host.NotifyReleased(k)
	b.logger.Debug("key released", "key", k)
}

// Tick fires due repeat notifications. Call once per frame. A repeat tick
// only notifies when the host is still ready and the key code is still in
// the pressed list; the schedule itself survives either check failing, as
// the key is still physically held.
func (b *Bridge) Tick() {
	now := b.clock.Now()
	for k, st := range b.repeats {
		for !st.next.After(now) {
			st.next = st.next.Add(repeatInterval)
			if !st.repeating {
				// Initial delay elapsed; the first repeat lands one
				// interval later.
				st.repeating = true
				continue
			}
			if !b.host.Ready() || !b.isPressed(k) {
				continue
			}
			b.host.NotifyRepeat(k)
		}
	}
}

func (b *Bridge) isPressed(k KeyCode) bool {
	for _, p := range b.host.Pressed() {
		if p == k {
			return true
		}
	}
	return false
}

// armed reports whether a repeat schedule exists for k.
func (b *Bridge) armed(k KeyCode) bool {
	_, ok := b.repeats[k]
	return ok
}
