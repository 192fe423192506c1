package roomsizer

import (
	"fmt"
	"math"
	"strings"
)

// Kind tells what sort of opening a wall has.
type Kind string

const (
	Window Kind = "window"
	Door   Kind = "door"
)

// ParseKind maps a textual kind to its Kind value. Matching is case
// insensitive and ignores surrounding space; the empty string means Window.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(Window):
		return Window, nil
	case string(Door):
		return Door, nil
	}
	return "", fmt.Errorf("unknown opening kind %q", s)
}

// Opening is a rectangular window or door in a wall. Openings are plain
// values and compare with ==; NewOpening rejects bad dimensions up front,
// and Room.AddOpening checks again so a hand-built Opening cannot slip
// through.
type Opening struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Kind   Kind    `json:"kind"`
}

// NewOpening builds an Opening. Non-positive or non-finite dimensions are
// rejected with ErrInvalidDimension.
func NewOpening(width, height float64, kind Kind) (Opening, error) {
	if err := checkDimension("opening width", width); err != nil {
		return Opening{}, err
	}
	if err := checkDimension("opening height", height); err != nil {
		return Opening{}, err
	}
	return Opening{Width: width, Height: height, Kind: kind}, nil
}

// Area is the face area of the opening.
func (o Opening) Area() float64 { return o.Width * o.Height }

func (o Opening) String() string {
	return fmt.Sprintf("%s %.2fx%.2f", o.Kind, o.Width, o.Height)
}

func checkDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %s must be a positive number, got %.2f", ErrInvalidDimension, name, v)
	}
	return nil
}
