package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/go-logr/logr"

	"github.com/Vilis322/roomsizer"
)

// Sanity limits for entered dimensions, to catch typos. Values outside them
// are warned about, not rejected; entering the same value again confirms it.
const (
	minRoomWidth  = 1.5
	maxRoomWidth  = 25.0
	minRoomLength = 1.5
	maxRoomLength = 30.0
	minRoomHeight = 2.0
	maxRoomHeight = 3.0

	minWindowWidth  = 0.3
	maxWindowWidth  = 5.0
	minWindowHeight = 0.3
	maxWindowHeight = 3.0
	minDoorWidth    = 0.6
	maxDoorWidth    = 3.0
	minDoorHeight   = 1.8
	maxDoorHeight   = 3.0

	maxRollWidth  = 5.0
	maxRollLength = 50.0

	maxWindows = 50
	maxDoors   = 20

	maxAllowance = 2.0
	maxFactor    = 2.0
)

// confirmTolerance is how close a re-entered out-of-bounds value must be to
// the previous one to count as a confirmation.
const confirmTolerance = 0.001

var errCancelled = errors.New("operation cancelled")

// prompter runs the question and answer flow over injected streams.
type prompter struct {
	in   *bufio.Scanner
	out  io.Writer
	errw io.Writer
	unit string
}

func newPrompter(in io.Reader, out, errw io.Writer, unit string) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out, errw: errw, unit: unit}
}

func (p *prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", errCancelled
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// bounds parameterizes the float readers. A zero min or max disables that
// bound.
type bounds struct {
	field     string
	allowZero bool
	min, max  float64
}

// readPositiveFloat keeps asking until it gets a usable number. Commas work
// as decimal separators. Out-of-bounds values only warn; repeating the same
// value confirms it.
func (p *prompter) readPositiveFloat(prompt string, b bounds) (float64, error) {
	var last float64
	haveLast := false

	for {
		raw, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
		if err != nil {
			fmt.Fprintf(p.errw, "Error: invalid input for %s. Please enter a number.\n", b.field)
			continue
		}

		if b.allowZero && v == 0 {
			return v, nil
		}
		if v <= 0 {
			fmt.Fprintf(p.errw, "Error: %s must be positive. Please try again.\n", b.field)
			continue
		}

		if b.min > 0 && v < b.min {
			if haveLast && math.Abs(v-last) < confirmTolerance {
				return v, nil
			}
			haveLast, last = true, v
			fmt.Fprintf(p.errw, "Warning: %s (%.2f) seems unusually small. Minimum expected: %.2f\n", b.field, v, b.min)
			fmt.Fprintln(p.errw, "Please re-enter if this was a typo, or enter the same value again to confirm.")
			continue
		}
		if b.max > 0 && v > b.max {
			if haveLast && math.Abs(v-last) < confirmTolerance {
				return v, nil
			}
			haveLast, last = true, v
			fmt.Fprintf(p.errw, "Warning: %s (%.2f) seems unusually large. Maximum expected: %.2f\n", b.field, v, b.max)
			fmt.Fprintln(p.errw, "Please re-enter if this was a typo, or enter the same value again to confirm.")
			continue
		}

		return v, nil
	}
}

// readNonNegativeInt keeps asking until it gets a whole number of zero or
// more. A count over max warns; repeating it confirms.
func (p *prompter) readNonNegativeInt(prompt, field string, max int) (int, error) {
	last := -1

	for {
		raw, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintf(p.errw, "Error: invalid input for %s. Please enter a whole number.\n", field)
			continue
		}
		if v < 0 {
			fmt.Fprintf(p.errw, "Error: %s cannot be negative. Please try again.\n", field)
			continue
		}
		if max > 0 && v > max {
			if v == last {
				return v, nil
			}
			last = v
			fmt.Fprintf(p.errw, "Warning: %s (%d) seems unusually large. Maximum expected: %d\n", field, v, max)
			fmt.Fprintln(p.errw, "Please re-enter if this was a typo, or enter the same value again to confirm.")
			continue
		}
		return v, nil
	}
}

// readOpeningDimension reads a dimension that must fit the room. The room
// limit is a hard bound checked before the soft sanity bounds, so an entry
// that breaks both gets the room warning first and cannot be confirmed
// through.
func (p *prompter) readOpeningDimension(prompt string, b bounds, roomLimit float64, roomDim string) (float64, error) {
	var last float64
	haveLast := false

	for {
		raw, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
		if err != nil {
			fmt.Fprintf(p.errw, "Error: invalid input for %s. Please enter a number.\n", b.field)
			continue
		}
		if v <= 0 {
			fmt.Fprintf(p.errw, "Error: %s must be positive. Please try again.\n", b.field)
			continue
		}

		if v > roomLimit {
			fmt.Fprintf(p.errw, "  Warning: %s (%.2f %s) exceeds %s (%.2f %s).\n",
				capitalize(b.field), v, p.unit, roomDim, roomLimit, p.unit)
			fmt.Fprintln(p.errw, "  Please try again.")
			continue
		}

		if b.min > 0 && v < b.min {
			if haveLast && math.Abs(v-last) < confirmTolerance {
				return v, nil
			}
			haveLast, last = true, v
			fmt.Fprintf(p.errw, "Warning: %s (%.2f) seems unusually small. Minimum expected: %.2f\n", b.field, v, b.min)
			fmt.Fprintln(p.errw, "Please re-enter if this was a typo, or enter the same value again to confirm.")
			continue
		}
		if b.max > 0 && v > b.max {
			if haveLast && math.Abs(v-last) < confirmTolerance {
				return v, nil
			}
			haveLast, last = true, v
			fmt.Fprintf(p.errw, "Warning: %s (%.2f) seems unusually large. Maximum expected: %.2f\n", b.field, v, b.max)
			fmt.Fprintln(p.errw, "Please re-enter if this was a typo, or enter the same value again to confirm.")
			continue
		}

		return v, nil
	}
}

func (p *prompter) readYesNo(prompt string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}

	for {
		raw, err := p.readLine(fmt.Sprintf("%s [%s]: ", prompt, hint))
		if err != nil {
			return false, err
		}
		switch strings.ToLower(raw) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.errw, "Error: please answer 'y' or 'n'.")
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (p *prompter) roomDimensions() (*roomsizer.Room, error) {
	fmt.Fprintln(p.out, "\n=== Room Dimensions ===")
	fmt.Fprintf(p.out, "Please enter the dimensions of your room in %s.\n", p.unit)

	for {
		w, err := p.readPositiveFloat(fmt.Sprintf("Room width (%s): ", p.unit),
			bounds{field: "room width", min: minRoomWidth, max: maxRoomWidth})
		if err != nil {
			return nil, err
		}
		l, err := p.readPositiveFloat(fmt.Sprintf("Room length (%s): ", p.unit),
			bounds{field: "room length", min: minRoomLength, max: maxRoomLength})
		if err != nil {
			return nil, err
		}
		h, err := p.readPositiveFloat(fmt.Sprintf("Room height (%s): ", p.unit),
			bounds{field: "room height", min: minRoomHeight, max: maxRoomHeight})
		if err != nil {
			return nil, err
		}

		room, err := roomsizer.NewRoom(w, l, h)
		if err != nil {
			fmt.Fprintf(p.errw, "Error: %v\n", err)
			fmt.Fprintln(p.errw, "Please re-enter the room dimensions.")
			continue
		}
		return room, nil
	}
}

func (p *prompter) openings(room *roomsizer.Room) error {
	fmt.Fprintln(p.out, "\n=== Windows and Doors ===")
	fmt.Fprintln(p.out, "Now let's add any windows and doors in the room.")

	nw, err := p.readNonNegativeInt("Number of windows: ", "number of windows", maxWindows)
	if err != nil {
		return err
	}
	for i := 0; i < nw; i++ {
		fmt.Fprintf(p.out, "\nWindow %d:\n", i+1)
		if err := p.addOpening(room, roomsizer.Window); err != nil {
			return err
		}
	}

	nd, err := p.readNonNegativeInt("Number of doors: ", "number of doors", maxDoors)
	if err != nil {
		return err
	}
	for i := 0; i < nd; i++ {
		fmt.Fprintf(p.out, "\nDoor %d:\n", i+1)
		if err := p.addOpening(room, roomsizer.Door); err != nil {
			return err
		}
	}

	fmt.Fprintln(p.out, "\n--- Room Summary ---")
	fmt.Fprintf(p.out, "Total wall area: %.2f %s²\n", room.WallArea(), p.unit)
	fmt.Fprintf(p.out, "Openings area: %.2f %s²\n", room.WallArea()-room.NetWallArea(), p.unit)
	fmt.Fprintf(p.out, "Net area to cover: %.2f %s²\n", room.NetWallArea(), p.unit)
	return nil
}

func (p *prompter) addOpening(room *roomsizer.Room, kind roomsizer.Kind) error {
	wb := bounds{field: string(kind) + " width", min: minWindowWidth, max: maxWindowWidth}
	hb := bounds{field: string(kind) + " height", min: minWindowHeight, max: maxWindowHeight}
	if kind == roomsizer.Door {
		wb.min, wb.max = minDoorWidth, maxDoorWidth
		hb.min, hb.max = minDoorHeight, maxDoorHeight
	}

	for {
		shorterWall := min(room.Width(), room.Length())
		w, err := p.readOpeningDimension(fmt.Sprintf("  Width (%s): ", p.unit), wb, shorterWall, "shorter wall")
		if err != nil {
			return err
		}
		h, err := p.readOpeningDimension(fmt.Sprintf("  Height (%s): ", p.unit), hb, room.Height(), "room height")
		if err != nil {
			return err
		}

		o, err := roomsizer.NewOpening(w, h, kind)
		if err == nil {
			err = room.AddOpening(o)
		}
		if err != nil {
			fmt.Fprintf(p.errw, "  Error: %v\n", err)
			fmt.Fprintf(p.errw, "  Please re-enter the %s dimensions.\n", kind)
			continue
		}
		return nil
	}
}

func (p *prompter) wallpaperSpecs() (roomsizer.RollSpec, *roomsizer.WastePolicy, error) {
	fmt.Fprintln(p.out, "\n=== Wallpaper Specifications ===")
	fmt.Fprintln(p.out, "Please enter the specifications of the wallpaper rolls.")

	var roll roomsizer.RollSpec
	for {
		w, err := p.readPositiveFloat(fmt.Sprintf("Roll width (%s): ", p.unit),
			bounds{field: "roll width", max: maxRollWidth})
		if err != nil {
			return roomsizer.RollSpec{}, nil, err
		}
		l, err := p.readPositiveFloat(fmt.Sprintf("Roll length (%s): ", p.unit),
			bounds{field: "roll length", max: maxRollLength})
		if err != nil {
			return roomsizer.RollSpec{}, nil, err
		}

		roll, err = roomsizer.NewRollSpec(w, l)
		if err != nil {
			fmt.Fprintf(p.errw, "Error: %v\n", err)
			fmt.Fprintln(p.errw, "Please re-enter the wallpaper specifications.")
			continue
		}
		break
	}

	fmt.Fprintln(p.out, "\n=== Waste Allowance (Optional) ===")
	use, err := p.readYesNo("Do you want to add extra allowance for pattern matching or waste?", false)
	if err != nil {
		return roll, nil, err
	}
	if !use {
		return roll, nil, nil
	}

	fmt.Fprintln(p.out, "\nPattern matching allowance:")
	fmt.Fprintln(p.out, "(Extra length per strip for aligning patterns)")
	allow, err := p.readPositiveFloat(fmt.Sprintf("Drop allowance per strip (%s) [or 0 for none]: ", p.unit),
		bounds{field: "drop allowance", allowZero: true, max: maxAllowance})
	if err != nil {
		return roll, nil, err
	}

	fmt.Fprintln(p.out, "\nGeneral waste factor:")
	fmt.Fprintln(p.out, "(Multiplier for extra rolls, 1.1 means ten percent extra)")
	for {
		factor, err := p.readPositiveFloat("Extra factor [1.0 for no extra]: ",
			bounds{field: "extra factor", max: maxFactor})
		if err != nil {
			return roll, nil, err
		}

		policy, err := roomsizer.NewWastePolicy(allow, factor)
		if err != nil {
			fmt.Fprintf(p.errw, "Error: %v\n", err)
			continue
		}
		return roll, &policy, nil
	}
}

// runPrompt drives the whole interactive session. Cancelling is a normal
// way out and exits zero.
func runPrompt(in io.Reader, out, errw io.Writer, unit string, log logr.Logger) int {
	p := newPrompter(in, out, errw, unit)

	rule := strings.Repeat("=", 50)
	fmt.Fprintln(p.out, rule)
	fmt.Fprintln(p.out, "WALLPAPER CALCULATOR")
	fmt.Fprintln(p.out, rule)
	fmt.Fprintln(p.out, "\nThis tool will help you determine how many wallpaper")
	fmt.Fprintln(p.out, "rolls you need for your room.")

	room, err := p.roomDimensions()
	if err != nil {
		return p.finish(err)
	}
	if err := p.openings(room); err != nil {
		return p.finish(err)
	}
	roll, policy, err := p.wallpaperSpecs()
	if err != nil {
		return p.finish(err)
	}

	if policy == nil {
		def := roomsizer.DefaultWastePolicy()
		policy = &def
	}
	rep, err := roomsizer.NewStripCalculator(roll, *policy).WithLogger(log).Plan(room)

	fmt.Fprintln(p.out, "\n"+rule)
	fmt.Fprintln(p.out, "CALCULATION RESULTS")
	fmt.Fprintln(p.out, rule)
	if err != nil {
		fmt.Fprintf(p.errw, "\nError calculating rolls: %v\n", err)
		return 1
	}

	fmt.Fprintln(p.out)
	writeSummary(p.out, rep, p.unit)
	fmt.Fprintln(p.out, "\nNote: this is a theoretical count. Buy a roll or two")
	fmt.Fprintln(p.out, "beyond it to be safe.")
	fmt.Fprintln(p.out, "\n"+rule)
	return 0
}

func (p *prompter) finish(err error) int {
	if errors.Is(err, errCancelled) {
		fmt.Fprintln(p.errw, "\nOperation cancelled.")
		return 0
	}
	fmt.Fprintf(p.errw, "\nAn unexpected error occurred: %v\n", err)
	return 1
}
