package ebipad

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(0, 0)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeHost struct {
	ready    bool
	pressed  []KeyCode
	presses  []KeyCode
	repeats  []KeyCode
	releases []KeyCode
}

func newFakeHost() *fakeHost {
	return &fakeHost{ready: true}
}

func (h *fakeHost) Ready() bool        { return h.ready }
func (h *fakeHost) Pressed() []KeyCode { return h.pressed }
func (h *fakeHost) AppendPressed(k KeyCode) {
	h.pressed = append(h.pressed, k)
}

func (h *fakeHost) RemovePressed(k KeyCode) {
	for i, p := range h.pressed {
		if p == k {
			h.pressed = append(h.pressed[:i], h.pressed[i+1:]...)
			return
		}
	}
}

func (h *fakeHost) NotifyPressed(k KeyCode)  { h.presses = append(h.presses, k) }
func (h *fakeHost) NotifyRepeat(k KeyCode)   { h.repeats = append(h.repeats, k) }
func (h *fakeHost) NotifyReleased(k KeyCode) { h.releases = append(h.releases, k) }

func newTestBridge(t *testing.T) (*Bridge, *fakeHost, *fakeClock) {
	t.Helper()
	h := newFakeHost()
	c := newFakeClock()
	return NewBridge(h, WithClock(c)), h, c
}

func TestBridgePressRelease(t *testing.T) {
	b, h, _ := newTestBridge(t)

	b.Press(40)
	require.Equal(t, []KeyCode{40}, h.pressed)
	assert.Equal(t, []KeyCode{40}, h.presses)
	assert.Equal(t, []KeyCode{40}, h.repeats)
	assert.True(t, b.armed(40))

	b.Release(40)
	assert.Empty(t, h.pressed)
	assert.Equal(t, []KeyCode{40}, h.releases)
	assert.False(t, b.armed(40))
}

func TestBridgeDoublePressNoDuplicate(t *testing.T) {
	b, h, c := newTestBridge(t)

	b.Press(13)
	c.Advance(120 * time.Millisecond)
	b.Press(13)

	assert.Equal(t, []KeyCode{13}, h.pressed, "second press must not duplicate the key code")
	assert.Len(t, h.presses, 1, "press notification is edge-triggered")
	assert.Len(t, h.repeats, 2, "repeat notification fires on every press call")

	// The second press restarted the hold delay, so at 240ms from the first
	// press (120ms into the new window) no repeat is due yet.
	c.Advance(120 * time.Millisecond)
	b.Tick()
	assert.Len(t, h.repeats, 2)

	// 180ms delay + 60ms interval from the second press.
	c.Advance(120 * time.Millisecond)
	b.Tick()
	assert.Len(t, h.repeats, 3)
}

func TestBridgeRepeatCadence(t *testing.T) {
	b, h, c := newTestBridge(t)

	b.Press(38)
	require.Len(t, h.repeats, 1)

	// The delay elapsing arms the interval but does not notify by itself.
	c.Advance(repeatDelay)
	b.Tick()
	assert.Len(t, h.repeats, 1)

	c.Advance(repeatInterval)
	b.Tick()
	assert.Len(t, h.repeats, 2)

	c.Advance(repeatInterval)
	b.Tick()
	assert.Len(t, h.repeats, 3)

	// A late frame catches up on every missed interval.
	c.Advance(3 * repeatInterval)
	b.Tick()
	assert.Len(t, h.repeats, 6)
}

func TestBridgeReleaseBeforeDelayCancelsRepeat(t *testing.T) {
	b, h, c := newTestBridge(t)

	b.Press(37)
	c.Advance(100 * time.Millisecond)
	b.Release(37)

	c.Advance(time.Second)
	b.Tick()
	assert.Len(t, h.repeats, 1, "no repeat may ever fire for a released press")
	assert.False(t, b.armed(37))
}

func TestBridgeNotReady(t *testing.T) {
	b, h, c := newTestBridge(t)
	h.ready = false

	b.Press(13)
	assert.Empty(t, h.pressed)
	assert.Empty(t, h.presses)
	assert.Empty(t, h.repeats)
	assert.False(t, b.armed(13), "pressing while not ready must not schedule repeats")

	b.Release(13)
	assert.Empty(t, h.releases)

	c.Advance(time.Second)
	b.Tick()
	assert.Empty(t, h.repeats)
}

func TestBridgeRepeatChecksMembership(t *testing.T) {
	b, h, c := newTestBridge(t)

	b.Press(27)
	// The host's own keyboard handler may drop the key behind our back.
	h.pressed = nil

	c.Advance(repeatDelay + repeatInterval)
	b.Tick()
	assert.Len(t, h.repeats, 1, "repeat ticks re-check pressed-list membership")
}

func TestBridgeRepeatPausesWhileNotReady(t *testing.T) {
	b, h, c := newTestBridge(t)

	b.Press(39)
	c.Advance(repeatDelay + repeatInterval)
	h.ready = false
	b.Tick()
	assert.Len(t, h.repeats, 1)

	h.ready = true
	c.Advance(repeatInterval)
	b.Tick()
	assert.Len(t, h.repeats, 2)
}

func TestBridgePressAlreadyHeldByKeyboard(t *testing.T) {
	b, h, _ := newTestBridge(t)
	// Physical keyboard already holds the key.
	h.pressed = []KeyCode{13}

	b.Press(13)
	assert.Equal(t, []KeyCode{13}, h.pressed)
	assert.Empty(t, h.presses, "no edge notification for an already-held key")
	assert.Len(t, h.repeats, 1)
}

func TestBridgeReleaseIdempotent(t *testing.T) {
	b, h, _ := newTestBridge(t)

	b.Release(99)
	assert.Equal(t, []KeyCode{99}, h.releases, "release notifies even for a key that was never pressed")
	assert.Empty(t, h.pressed)
}
