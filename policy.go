package roomsizer

import (
	"fmt"
	"math"
)

// WastePolicy captures the extra material a job plans for: a drop allowance
// added to every strip for pattern matching, and an extra factor applied to
// the strip count for offcuts and reserve.
//
// The zero value is not a valid policy (its factor is below 1); use
// NewWastePolicy or DefaultWastePolicy.
type WastePolicy struct {
	DropAllowance float64
	ExtraFactor   float64
}

// NewWastePolicy builds a WastePolicy. A negative allowance or a factor
// below 1 is rejected with ErrInvalidWastePolicy.
func NewWastePolicy(dropAllowance, extraFactor float64) (WastePolicy, error) {
	p := WastePolicy{DropAllowance: dropAllowance, ExtraFactor: extraFactor}
	if err := p.validate(); err != nil {
		return WastePolicy{}, err
	}
	return p, nil
}

// DefaultWastePolicy is the policy used when none is given: no drop
// allowance and no extra factor.
func DefaultWastePolicy() WastePolicy {
	return WastePolicy{DropAllowance: 0, ExtraFactor: 1}
}

func (p WastePolicy) validate() error {
	if math.IsNaN(p.DropAllowance) || math.IsInf(p.DropAllowance, 0) || p.DropAllowance < 0 {
		return fmt.Errorf("%w: drop allowance must not be negative, got %.2f", ErrInvalidWastePolicy, p.DropAllowance)
	}
	if math.IsNaN(p.ExtraFactor) || math.IsInf(p.ExtraFactor, 0) || p.ExtraFactor < 1 {
		return fmt.Errorf("%w: extra factor must be at least 1, got %.2f", ErrInvalidWastePolicy, p.ExtraFactor)
	}
	return nil
}
