package roomsizer

import "fmt"

// Room is a rectangular room whose four walls get papered. Openings are
// attached to the room as a whole, not to a particular wall. The zero Room
// is not usable; build one with NewRoom.
type Room struct {
	width    float64
	length   float64
	height   float64
	openings []Opening
}

// NewRoom builds a Room from its floor dimensions and height. Non-positive
// or non-finite values are rejected with ErrInvalidDimension.
func NewRoom(width, length, height float64) (*Room, error) {
	r := &Room{width: width, length: length, height: height}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Room) validate() error {
	if err := checkDimension("room width", r.width); err != nil {
		return err
	}
	if err := checkDimension("room length", r.length); err != nil {
		return err
	}
	return checkDimension("room height", r.height)
}

func (r *Room) Width() float64  { return r.width }
func (r *Room) Length() float64 { return r.length }
func (r *Room) Height() float64 { return r.height }

// Perimeter is the total run of wall around the room.
func (r *Room) Perimeter() float64 {
	return 2 * (r.width + r.length)
}

// WallArea is the gross wall area, openings included.
func (r *Room) WallArea() float64 {
	return r.Perimeter() * r.height
}

// NetWallArea is the wall area left after subtracting every opening. The
// AddOpening checks keep it strictly positive.
func (r *Room) NetWallArea() float64 {
	return r.WallArea() - r.openingsArea()
}

// AddOpening attaches an opening to the room. Beyond the dimension checks,
// an opening taller than the room or wider than the shorter wall is rejected
// with ErrImplausibleOpening, and one that would push the combined opening
// area up to or past the gross wall area with ErrOpeningAreaExceedsWall.
func (r *Room) AddOpening(o Opening) error {
	if err := checkDimension("opening width", o.Width); err != nil {
		return err
	}
	if err := checkDimension("opening height", o.Height); err != nil {
		return err
	}
	if o.Height > r.height {
		return fmt.Errorf("%w: %s height %.2f exceeds room height %.2f", ErrImplausibleOpening, o.Kind, o.Height, r.height)
	}
	if wall := min(r.width, r.length); o.Width > wall {
		return fmt.Errorf("%w: %s width %.2f exceeds shorter wall %.2f", ErrImplausibleOpening, o.Kind, o.Width, wall)
	}
	if total := r.openingsArea() + o.Area(); total >= r.WallArea() {
		return fmt.Errorf("%w: %.2f of %.2f", ErrOpeningAreaExceedsWall, total, r.WallArea())
	}
	r.openings = append(r.openings, o)
	return nil
}

// RemoveOpening detaches the first opening equal to o, in insertion order.
func (r *Room) RemoveOpening(o Opening) error {
	for i := range r.openings {
		if r.openings[i] == o {
			r.openings = append(r.openings[:i], r.openings[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("opening %s not found in room", o)
}

// ClearOpenings detaches every opening.
func (r *Room) ClearOpenings() {
	r.openings = nil
}

// Openings returns a copy of the attached openings in insertion order.
func (r *Room) Openings() []Opening {
	out := make([]Opening, len(r.openings))
	copy(out, r.openings)
	return out
}

func (r *Room) openingsArea() float64 {
	var sum float64
	for _, o := range r.openings {
		sum += o.Area()
	}
	return sum
}
