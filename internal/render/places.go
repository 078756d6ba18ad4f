package render

import (
	"errors"
	"fmt"

	"fortio.org/safecast"
)

// Places is the number of fractional digits a float is rendered with.
type Places uint8

const (
	// MaxPlaces is the largest supported Places value.
	MaxPlaces Places = 6
	// DebugPlaces is the precision of the default float rendering.
	DebugPlaces Places = 3
)

// ErrPlaces reports decimal places outside [0, MaxPlaces].
var ErrPlaces = errors.New("decimal places out of range [0, 6]")

// NewPlaces validates n as a Places value.
func NewPlaces(n int) (Places, error) {
	p, err := safecast.Conv[uint8](n)
	if err != nil || Places(p) > MaxPlaces {
		return 0, fmt.Errorf("%w: %d", ErrPlaces, n)
	}
	return Places(p), nil
}

// Valid reports whether p can index the rounding tables.
func (p Places) Valid() bool {
	return p <= MaxPlaces
}
