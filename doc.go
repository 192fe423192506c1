// Package roomsizer computes how many wallpaper rolls a rectangular room
// needs.
//
// The model is strip based: wallpaper goes up as whole vertical strips cut
// from rolls and placed around the room's perimeter. A strip is as tall as
// the room plus any drop allowance for pattern matching; a roll yields only
// complete strips. Openings (windows and doors) save whole strips where they
// are wide enough to span them.
//
// Typical use goes through the Wallpaper facade:
//
//	room, err := roomsizer.NewRoom(5, 4, 2.7)
//	...
//	room.AddOpening(window)
//	rolls, err := roomsizer.ComputeRolls(room, roll, nil)
//
// Callers that want the intermediate figures (strips per roll, strips saved
// by openings and so on) use StripCalculator.Plan directly and read the
// returned Report.
//
// All dimensions are plain numbers in one consistent linear unit; the
// package never converts units. Every calculation is a pure function of its
// inputs: values are validated when constructed, nothing is mutated after,
// and concurrent calculations need no coordination.
package roomsizer
