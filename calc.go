package roomsizer

import (
	"fmt"
	"math"

	"github.com/go-logr/logr"
)

// RollsCalculator turns a room into a roll count. It is the seam for
// swapping the counting strategy without touching callers.
type RollsCalculator interface {
	RollsNeeded(room *Room) (int, error)
}

// Report collects everything a strip calculation produced, inputs echoed
// alongside the intermediates so callers can show their work.
type Report struct {
	RollWidth     float64 `json:"rollWidth"`
	RollLength    float64 `json:"rollLength"`
	DropAllowance float64 `json:"dropAllowance"`
	ExtraFactor   float64 `json:"extraFactor"`
	Perimeter     float64 `json:"perimeter"`
	WallArea      float64 `json:"wallArea"`
	NetWallArea   float64 `json:"netWallArea"`
	StripHeight   float64 `json:"stripHeight"`
	StripsPerRoll int     `json:"stripsPerRoll"`
	StripsNeeded  int     `json:"stripsNeeded"`
	StripsSaved   int     `json:"stripsSaved"`
	NetStrips     int     `json:"netStrips"`
	Rolls         int     `json:"rolls"`
}

// StripCalculator counts whole vertical strips. A strip runs the full room
// height plus the drop allowance; a roll yields only complete strips, and
// openings save only the complete strips they are wide enough to replace.
type StripCalculator struct {
	roll   RollSpec
	policy WastePolicy
	log    logr.Logger
}

// NewStripCalculator builds a calculator for the given roll and policy. The
// inputs are checked when a plan is computed, so a calculator around bad
// values can be built but never yields a result.
func NewStripCalculator(roll RollSpec, policy WastePolicy) *StripCalculator {
	return &StripCalculator{roll: roll, policy: policy, log: logr.Discard()}
}

// WithLogger routes the calculator's diagnostics to log and returns the
// calculator.
func (c *StripCalculator) WithLogger(log logr.Logger) *StripCalculator {
	c.log = log
	return c
}

// RollsNeeded reports how many rolls the room needs.
func (c *StripCalculator) RollsNeeded(room *Room) (int, error) {
	rep, err := c.Plan(room)
	if err != nil {
		return 0, err
	}
	return rep.Rolls, nil
}

// Plan computes the full strip plan for the room.
//
// The perimeter needs ceil(perimeter/rollWidth) strips and a roll yields
// floor(rollLength/stripHeight) of them. Each opening saves
// floor(width/rollWidth) strips per ceil(height/stripHeight) run. The extra
// factor scales the net strip count before the final division rounds up to
// whole rolls; saved strips can never push the count below zero.
func (c *StripCalculator) Plan(room *Room) (*Report, error) {
	if room == nil {
		return nil, fmt.Errorf("%w: room is nil", ErrInvalidDimension)
	}
	if err := room.validate(); err != nil {
		return nil, err
	}
	if err := c.roll.validate(); err != nil {
		return nil, err
	}
	if err := c.policy.validate(); err != nil {
		return nil, err
	}

	stripHeight := room.Height() + c.policy.DropAllowance
	stripsPerRoll := int(math.Floor(c.roll.Length / stripHeight))
	if stripsPerRoll < 1 {
		return nil, fmt.Errorf("%w: roll length %.2f cannot yield a strip of height %.2f",
			ErrRollTooShort, c.roll.Length, stripHeight)
	}
	c.log.V(1).Info("strips per roll",
		"rollLength", c.roll.Length, "stripHeight", stripHeight, "stripsPerRoll", stripsPerRoll)

	perimeter := room.Perimeter()
	stripsNeeded := int(math.Ceil(perimeter / c.roll.Width))
	c.log.V(1).Info("strips needed",
		"perimeter", perimeter, "rollWidth", c.roll.Width, "stripsNeeded", stripsNeeded)

	var saved int
	for _, o := range room.Openings() {
		across := int(math.Floor(o.Width / c.roll.Width))
		runs := int(math.Ceil(o.Height / stripHeight))
		saved += across * runs
		c.log.V(1).Info("opening saves strips",
			"kind", o.Kind, "width", o.Width, "height", o.Height, "saved", across*runs)
	}

	netStrips := stripsNeeded - saved
	if netStrips < 0 {
		netStrips = 0
	}
	rolls := int(math.Ceil(float64(netStrips) * c.policy.ExtraFactor / float64(stripsPerRoll)))
	c.log.Info("rolls needed",
		"netStrips", netStrips, "extraFactor", c.policy.ExtraFactor, "rolls", rolls)

	return &Report{
		RollWidth:     c.roll.Width,
		RollLength:    c.roll.Length,
		DropAllowance: c.policy.DropAllowance,
		ExtraFactor:   c.policy.ExtraFactor,
		Perimeter:     perimeter,
		WallArea:      room.WallArea(),
		NetWallArea:   room.NetWallArea(),
		StripHeight:   stripHeight,
		StripsPerRoll: stripsPerRoll,
		StripsNeeded:  stripsNeeded,
		StripsSaved:   saved,
		NetStrips:     netStrips,
		Rolls:         rolls,
	}, nil
}
