// Package openscad writes sketch regions as OpenSCAD 2D polygons and hands
// them to the openscad tool for conversion to SVG or DXF.
package openscad

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/topology"
)

// ErrNoWires is returned when there is no closed wire to export.
var ErrNoWires = errors.New("no closed wires to export")

// DefaultMaxError is the default chord deviation for arcs, in sketch units
const DefaultMaxError = 0.01

const (
	minArcSegments = 4
	maxArcSegments = 256
)

// Outline returns the polygon vertices of a wire. Arc edges are replaced by
// chords that deviate at most maxError from the arc. The closing vertex is
// not repeated.
func Outline(w topology.Wire, maxError float64) []geometry.Vector2 {
	var pts []geometry.Vector2
	for _, e := range w.Edges {
		if e.Kind != topology.EdgeArc {
			pts = append(pts, e.Start)
			continue
		}
		n := arcSegments(e.Arc, maxError)
		for i := range n {
			theta := e.Arc.StartAngle + e.Arc.Sweep*float64(i)/float64(n)
			pts = append(pts, e.Arc.PointAt(theta))
		}
	}
	return pts
}

func arcSegments(a geometry.Arc, maxError float64) int {
	if maxError <= 0 || a.Radius <= maxError {
		return minArcSegments
	}
	step := 2 * math.Acos(1-maxError/a.Radius)
	n := int(math.Ceil(a.Subtended() / step))
	return max(minArcSegments, min(maxArcSegments, n))
}

// Write emits one polygon holding every wire as a path. OpenSCAD fills
// multi-path polygons with the even-odd rule, so nested wires become holes.
func Write(w io.Writer, name string, wires []topology.Wire, maxError float64) error {
	if len(wires) == 0 {
		return ErrNoWires
	}
	if maxError <= 0 {
		maxError = DefaultMaxError
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "// %s\n", name)
	bw.WriteString("polygon(\n  points = [")

	var paths [][]int
	next := 0
	for wi, wire := range wires {
		pts := Outline(wire, maxError)
		path := make([]int, len(pts))
		for i, p := range pts {
			if next > 0 {
				bw.WriteString(", ")
			}
			if i == 0 {
				fmt.Fprintf(bw, "\n    // wire %d\n    ", wi+1)
			}
			fmt.Fprintf(bw, "[%s, %s]", num(p.X), num(p.Y))
			path[i] = next
			next++
		}
		paths = append(paths, path)
	}

	bw.WriteString("\n  ],\n  paths = [")
	for i, path := range paths {
		if i > 0 {
			bw.WriteString(", ")
		}
		bw.WriteString("[")
		for j, idx := range path {
			if j > 0 {
				bw.WriteString(", ")
			}
			bw.WriteString(strconv.Itoa(idx))
		}
		bw.WriteString("]")
	}
	bw.WriteString("]\n);\n")
	return bw.Flush()
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'g', 10, 64)
}
