// Package svg renders strip plans as SVG documents.
package svg

import (
	"fmt"
	"strings"
)

const (
	svgtop = `<?xml version="1.0"?>
<svg`
	svginitfmt = `%s width="%f%s" height="%f%s"`
	svgns      = `
     xmlns="http://www.w3.org/2000/svg"
     xmlns:xlink="http://www.w3.org/1999/xlink"`
	svgnsinkscape = `
   xmlns:sodipodi="http://sodipodi.sourceforge.net/DTD/sodipodi-0.dtd"
   xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape"`
	vbfmt = `viewBox="%f %f %f %f"`
)

// Start opens a document of w by h physical units. Unless plain, the
// inkscape namespaces are declared too.
func Start(w, h float64, unit string, plain bool) string {
	s := fmt.Sprintf(svginitfmt, svgtop, w, unit, h, unit) + " " +
		fmt.Sprintf(vbfmt, 0.0, 0.0, w, h) + svgns
	if !plain {
		s += svgnsinkscape
	}
	s += ">"
	return s
}

// StartWeb opens a document that scales to its container, framed by a gray
// border, for embedding in a page.
func StartWeb(w, h float64, plain bool) string {
	s := svgtop +
		" style=\"position:absolute;width:100%;height:100%;\" preserveAspectRatio=\"xMidYMid meet\" " +
		fmt.Sprintf(vbfmt, 0.0, 0.0, w, h) + svgns
	if !plain {
		s += svgnsinkscape
	}
	s += ">"
	s += Rect(0.0, 0.0, w, h, "stroke:gray;stroke-width:0.02;fill:none")
	return s
}

func End(s string) string {
	return s + "</svg>"
}

func GroupStart(ss ...string) string {
	gs := ""
	for _, s := range ss {
		gs += s + " "
	}
	gs = strings.TrimSpace(gs)
	return fmt.Sprintf("<g %s>", gs)
}

func GroupEnd(g string) string {
	return g + "</g>"
}

func Rect(x, y, w, h float64, s string) string {
	return fmt.Sprintf(`
<rect x="%f" y="%f" width="%f" height="%f" style="%s" />`, x, y, w, h, s)
}

func Text(x, y float64, transform, txt, s string) string {
	return fmt.Sprintf(`
<text x="%f" y="%f" %s style="%s" >
%s
</text>`, x, y, transform, s, txt)
}
