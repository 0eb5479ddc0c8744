package epidemic

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrUnknownState is reported when a value outside the State domain reaches a
// renderer.
var ErrUnknownState = errors.New("unknown state")

var palette = [NumStates]color.RGBA{
	Healthy:   {R: 0, G: 255, B: 0, A: 255},
	Sick:      {R: 255, G: 0, B: 0, A: 255},
	Immune:    {R: 0, G: 255, B: 255, A: 255},
	Recovered: {R: 255, G: 0, B: 255, A: 255},
	Dead:      {R: 0, G: 0, B: 0, A: 255},
}

// Palette returns the render colours indexed by State.
func Palette() []color.RGBA {
	out := make([]color.RGBA, NumStates)
	copy(out, palette[:])
	return out
}

// ColorOf returns the render colour for s.
func ColorOf(s State) (color.RGBA, error) {
	if !s.Valid() {
		return color.RGBA{}, fmt.Errorf("%w: %d", ErrUnknownState, uint8(s))
	}
	return palette[s], nil
}
