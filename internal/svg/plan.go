package svg

import (
	"errors"
	"fmt"
	"math"

	"github.com/Vilis322/roomsizer"
)

var (
	paperStyle = "fill:#eee;stroke:gray;stroke-width:0.01"
	savedStyle = "fill:#cfc;stroke:gray;stroke-width:0.01"
)

// Plan renders a report as an unrolled band: every strip the perimeter
// needs, side by side at roll width by strip height. The tail of the band
// shows the strips openings save; the model places no openings, so the tail
// carries the count only, not a position. With showDim every strip gets its
// cut size as a label. The result is a standalone document in the given
// unit.
func Plan(rep *roomsizer.Report, unit string, plain, showDim bool) (string, error) {
	body, w, h, err := band(rep, plain, showDim)
	if err != nil {
		return "", err
	}
	return End(Start(w, h, unit, plain) + body), nil
}

// PlanWeb renders the same band sized to its container, for embedding in a
// page.
func PlanWeb(rep *roomsizer.Report, plain, showDim bool) (string, error) {
	body, w, h, err := band(rep, plain, showDim)
	if err != nil {
		return "", err
	}
	return End(StartWeb(w, h, plain) + body), nil
}

func band(rep *roomsizer.Report, plain, showDim bool) (string, float64, float64, error) {
	if rep == nil {
		return "", 0, 0, errors.New("no report")
	}
	if rep.StripsNeeded < 1 || rep.RollWidth <= 0 || rep.StripHeight <= 0 {
		return "", 0, 0, errors.New("no strips to draw")
	}

	w := float64(rep.StripsNeeded) * rep.RollWidth
	h := rep.StripHeight

	gb := GroupStart("id=\"strips\"")
	if !plain {
		gb = GroupStart("id=\"strips\"", "inkscape:label=\"strips\"", "inkscape:groupmode=\"layer\"")
	}
	net := rep.StripsNeeded - rep.StripsSaved
	if net < 0 {
		net = 0
	}
	for i := 0; i < rep.StripsNeeded; i++ {
		st := paperStyle
		if i >= net {
			st = savedStyle
		}
		gb += Rect(float64(i)*rep.RollWidth, 0, rep.RollWidth, h, st)
	}
	gb = GroupEnd(gb)

	gt := ""
	if showDim {
		gt = GroupStart("id=\"dimensions\"")
		if !plain {
			gt = GroupStart("id=\"dimensions\"", "inkscape:label=\"dimensions\"", "inkscape:groupmode=\"layer\"")
		}
		label := fmt.Sprintf("%.2fx%.2f", rep.RollWidth, h)
		size := textHeight(len(label), h)
		if limit := 0.8 * rep.RollWidth; size > limit {
			size = limit
		}
		for i := 0; i < rep.StripsNeeded; i++ {
			xt := float64(i)*rep.RollWidth + rep.RollWidth/2
			yt := h / 2
			rotation := fmt.Sprintf(" transform=\"rotate(90, %.2f,%.2f)\" ", xt, yt)
			gt += Text(xt, yt, rotation, label,
				fmt.Sprintf("text-anchor:middle;font-size:%.2f;fill:#000", size))
		}
		gt = GroupEnd(gt)
	}

	return gb + gt, w, h, nil
}

// textHeight guesses a readable glyph height for numchar characters laid
// along a run of w.
func textHeight(numchar int, w float64) float64 {
	wchar := w / float64(numchar)
	return math.Floor(1.5*wchar*100.0) / 100
}
