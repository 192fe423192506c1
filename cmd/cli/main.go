// Command cli computes wallpaper rolls for a room, either from flags or
// through an interactive session when no flags are given.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"github.com/Vilis322/roomsizer"
	"github.com/Vilis322/roomsizer/internal/config"
	"github.com/Vilis322/roomsizer/internal/logging"
	"github.com/Vilis322/roomsizer/internal/svg"
)

// Opening sizes assumed for the count-only -windows and -doors flags.
var (
	defaultWindow = [2]float64{1.2, 1.5}
	defaultDoor   = [2]float64{0.9, 2.0}
)

func main() {
	param()

	cfg := config.Load()
	if seen("v") {
		cfg.Verbosity = verbosity
	}
	log := logging.New(logging.Options{
		Verbosity: cfg.Verbosity,
		Dir:       cfg.LogDir,
		File:      cfg.LogFile,
	})

	var code int
	switch n := seenRequired(); {
	case n == len(requiredFlags):
		code = runFlags(log)
	case n == 0:
		code = runPrompt(os.Stdin, os.Stdout, os.Stderr, unit, log)
	default:
		fmt.Fprintf(os.Stderr, "all of -%s are required together\n",
			strings.Join(requiredFlags, " -"))
		code = 1
	}
	os.Exit(code)
}

func runFlags(log logr.Logger) int {
	room, err := buildRoom()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	roll, err := roomsizer.NewRollSpec(rollWidth, rollLength)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	policy := roomsizer.DefaultWastePolicy()
	if dropAllowance > 0 || extraFactor != 1.0 {
		policy, err = roomsizer.NewWastePolicy(dropAllowance, extraFactor)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	rep, err := roomsizer.NewStripCalculator(roll, policy).WithLogger(log).Plan(room)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if asJSON {
		b, err := json.Marshal(rep)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", errors.Wrap(err, "marshaling report"))
			return 1
		}
		fmt.Printf("%s\n", b)
	} else {
		writeSummary(os.Stdout, rep, unit)
	}

	if len(outname) > 0 {
		doc, err := svg.Plan(rep, unit, plain, showDim)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", errors.Wrap(err, "rendering strip plan"))
			return 1
		}
		errs := writeFiles(map[string]string{outname + ".svg": doc})
		if len(errs) > 0 {
			for _, err := range errs {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			return 1
		}
	}

	return 0
}

func buildRoom() (*roomsizer.Room, error) {
	room, err := roomsizer.NewRoom(width, length, height)
	if err != nil {
		return nil, err
	}

	add := func(w, h float64, kind roomsizer.Kind) error {
		o, err := roomsizer.NewOpening(w, h, kind)
		if err != nil {
			return err
		}
		return room.AddOpening(o)
	}

	if numWindows > 0 {
		fmt.Fprintf(os.Stderr, "warning: -windows assumes the default window size %.2fx%.2f\n",
			defaultWindow[0], defaultWindow[1])
	}
	for i := 0; i < numWindows; i++ {
		if err := add(defaultWindow[0], defaultWindow[1], roomsizer.Window); err != nil {
			return nil, err
		}
	}
	if numDoors > 0 {
		fmt.Fprintf(os.Stderr, "warning: -doors assumes the default door size %.2fx%.2f\n",
			defaultDoor[0], defaultDoor[1])
	}
	for i := 0; i < numDoors; i++ {
		if err := add(defaultDoor[0], defaultDoor[1], roomsizer.Door); err != nil {
			return nil, err
		}
	}
	for _, wh := range windows {
		if err := add(wh[0], wh[1], roomsizer.Window); err != nil {
			return nil, err
		}
	}
	for _, wh := range doors {
		if err := add(wh[0], wh[1], roomsizer.Door); err != nil {
			return nil, err
		}
	}

	return room, nil
}
