package roomsizer

// Wallpaper is the entry point for a papering job. It owns a
// RollsCalculator, a StripCalculator unless swapped, and answers the one
// question most callers have.
type Wallpaper struct {
	calc RollsCalculator
}

// NewWallpaper builds a facade around a StripCalculator for the given roll.
// A nil policy means DefaultWastePolicy.
func NewWallpaper(roll RollSpec, policy *WastePolicy) *Wallpaper {
	p := DefaultWastePolicy()
	if policy != nil {
		p = *policy
	}
	return &Wallpaper{calc: NewStripCalculator(roll, p)}
}

// RollsNeeded reports how many rolls the room needs.
func (w *Wallpaper) RollsNeeded(room *Room) (int, error) {
	return w.calc.RollsNeeded(room)
}

// Calculator returns the counting strategy in use.
func (w *Wallpaper) Calculator() RollsCalculator {
	return w.calc
}

// SetCalculator swaps the counting strategy. Nil is ignored.
func (w *Wallpaper) SetCalculator(c RollsCalculator) {
	if c != nil {
		w.calc = c
	}
}

// ComputeRolls reports the rolls needed to paper room with rolls of the
// given spec under policy. A nil policy means DefaultWastePolicy.
func ComputeRolls(room *Room, roll RollSpec, policy *WastePolicy) (int, error) {
	return NewWallpaper(roll, policy).RollsNeeded(room)
}
