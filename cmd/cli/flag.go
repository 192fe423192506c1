package main

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
)

var (
	width, length, height float64
	rollWidth, rollLength float64

	numWindows, numDoors int
	windows, doors       openings

	dropAllowance, extraFactor float64

	asJSON        bool
	outname, unit string

	plain, showDim bool

	verbosity int
)

// requiredFlags must appear together to select the non-interactive mode.
var requiredFlags = []string{"width", "length", "height", "roll-width", "roll-length"}

func param() {
	flag.Float64Var(&width, "width", 0, "room width in units")
	flag.Float64Var(&length, "length", 0, "room length in units")
	flag.Float64Var(&height, "height", 0, "room height in units")
	flag.Float64Var(&rollWidth, "roll-width", 0, "wallpaper roll width in units")
	flag.Float64Var(&rollLength, "roll-length", 0, "wallpaper roll length in units")

	flag.IntVar(&numWindows, "windows", 0, "number of windows at the default size")
	flag.IntVar(&numDoors, "doors", 0, "number of doors at the default size")
	flag.Var(&windows, "window", "window dimensions as \"wxh\" in units, repeatable")
	flag.Var(&doors, "door", "door dimensions as \"wxh\" in units, repeatable")

	flag.Float64Var(&dropAllowance, "drop-allowance", 0.0, "extra length per strip for pattern matching")
	flag.Float64Var(&extraFactor, "extra-factor", 1.0, "multiplier for general waste, 1.1 means ten percent extra")

	flag.BoolVar(&asJSON, "json", false, "print the full report as json")
	flag.StringVar(&outname, "o", "", "name of the strip plan file to write")
	flag.StringVar(&unit, "u", "m", "unit of measurements")
	flag.BoolVar(&plain, "inkscape", true, "when false will save svg as inkscape svg")
	flag.BoolVar(&showDim, "showdim", false, "generate a layer with dimensions \"wxh\" for each strip")
	flag.IntVar(&verbosity, "v", 0, "log verbosity, 1 enables debug output")

	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "inkscape" {
			plain = false
		}
	})
}

// seenRequired counts how many of the required flags were set explicitly.
func seenRequired() int {
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	n := 0
	for _, name := range requiredFlags {
		if set[name] {
			n++
		}
	}
	return n
}

// seen reports whether the named flag was set explicitly.
func seen(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// openings collects repeatable "wxh" dimension pairs, several at once when
// separated by commas.
type openings [][2]float64

func (oo *openings) String() string {
	return fmt.Sprintf("%v", *oo)
}

func (oo *openings) Set(value string) error {
	for _, dim := range strings.Split(value, ",") {
		wh := strings.Split(dim, "x")

		switch len(wh) {
		case 0:
			return errors.New("need to specify dimensions for opening")
		case 1:
			wh = append(wh, wh[0])
		}

		w, err := strconv.ParseFloat(wh[0], 64)
		if err != nil {
			return errors.New("can't get width")
		}

		h, err := strconv.ParseFloat(wh[1], 64)
		if err != nil {
			return errors.New("can't get height")
		}

		*oo = append(*oo, [2]float64{w, h})
	}

	return nil
}
