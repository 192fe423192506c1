package roomsizer

// RollSpec describes the wallpaper being bought: the width of the paper and
// the usable length on one roll.
type RollSpec struct {
	Width  float64
	Length float64
}

// NewRollSpec builds a RollSpec. Non-positive or non-finite dimensions are
// rejected with ErrInvalidDimension.
func NewRollSpec(width, length float64) (RollSpec, error) {
	r := RollSpec{Width: width, Length: length}
	if err := r.validate(); err != nil {
		return RollSpec{}, err
	}
	return r, nil
}

func (r RollSpec) validate() error {
	if err := checkDimension("roll width", r.Width); err != nil {
		return err
	}
	return checkDimension("roll length", r.Length)
}
