package ebipad

import "time"

// Clock supplies the current time to the repeat scheduler. Tests substitute
// a fake that advances virtual time deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
