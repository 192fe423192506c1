package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Vilis322/roomsizer"
)

// writeSummary prints the human-readable result block.
func writeSummary(w io.Writer, rep *roomsizer.Report, unit string) {
	fmt.Fprintf(w, "Perimeter: %.2f %s\n", rep.Perimeter, unit)
	fmt.Fprintf(w, "Wall area: %.2f %s²\n", rep.WallArea, unit)
	fmt.Fprintf(w, "Net area to cover: %.2f %s²\n", rep.NetWallArea, unit)
	fmt.Fprintf(w, "Strips needed: %d of %.2fx%.2f (%d per roll", rep.StripsNeeded, rep.RollWidth, rep.StripHeight, rep.StripsPerRoll)
	if rep.StripsSaved > 0 {
		fmt.Fprintf(w, ", %d saved by openings", rep.StripsSaved)
	}
	fmt.Fprintln(w, ")")
	fmt.Fprintf(w, "Number of wallpaper rolls needed: %d\n", rep.Rolls)
}

func writeFiles(outs map[string]string) (errs []error) {
	for nm, doc := range outs {
		w, err := os.Create(nm)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		defer w.Close()
		_, err = io.WriteString(w, doc)
		if err != nil {
			errs = append(errs, err)
			continue
		}
	}
	return
}
