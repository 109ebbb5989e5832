// Package ebipad renders an on-screen virtual gamepad (directional pad plus
// four action buttons) for Ebitengine games. Pointer contacts (mouse and
// multi-touch) on the buttons are translated into abstract key codes and
// forwarded to a host game through the [Host] interface, with key-repeat
// semantics matching a physical keyboard: one edge-triggered press, then
// repeat notifications after an initial hold delay.
//
// The package has two moving parts. [Bridge] owns the press/repeat/release
// state machine per key code. [Surface] builds the button clusters, tracks
// which pointer is driving which key code, and feeds pointer lifecycle
// events into the bridge. Both are plain instances constructed by the host
// game and driven from its Update/Draw loop.
package ebipad
