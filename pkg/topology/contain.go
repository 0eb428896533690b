package topology

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/gosketch/pkg/geometry"
)

// ErrInvalidBoundary is returned for boundaries that are empty, open, or
// self-intersecting.
var ErrInvalidBoundary = errors.New("invalid boundary")

// Location is the classification of a point against a region
type Location uint8

const (
	Outside Location = iota
	Inside
	OnBoundary
)

func (l Location) String() string {
	switch l {
	case Inside:
		return "inside"
	case OnBoundary:
		return "on-boundary"
	default:
		return "outside"
	}
}

// FillRule selects how winding numbers map to inside and outside
type FillRule uint8

const (
	// EvenOdd treats a point as inside when a ray from it crosses the
	// boundary an odd number of times.
	EvenOdd FillRule = iota
	// NonZero treats a point as inside when its winding number is not zero.
	NonZero
)

func (r FillRule) String() string {
	if r == NonZero {
		return "nonzero"
	}
	return "evenodd"
}

// Region is a validated closed boundary. It is immutable and safe for
// concurrent use.
type Region struct {
	edges  []Edge
	bounds geometry.Bounds2
}

// NewRegion validates edges as a simple closed boundary. Consecutive edges
// must meet within tolerance, the last edge must return to the first, and no
// two edges may meet anywhere except at a vertex they share.
func NewRegion(edges []Edge) (*Region, error) {
	n := len(edges)
	if n == 0 {
		return nil, fmt.Errorf("%w: no edges", ErrInvalidBoundary)
	}

	welded := make([]Edge, n)
	copy(welded, edges)
	for i, e := range welded {
		switch e.Kind {
		case EdgeLine:
			if e.Start.NearlyEqual(e.End) {
				return nil, fmt.Errorf("%w: edge %d has zero length", ErrInvalidBoundary, i)
			}
		case EdgeArc:
			if e.Arc.Radius <= geometry.Tolerance {
				return nil, fmt.Errorf("%w: edge %d has zero radius", ErrInvalidBoundary, i)
			}
		}
		next := (i + 1) % n
		if !e.End.NearlyEqual(welded[next].Start) {
			if next == 0 {
				return nil, fmt.Errorf("%w: boundary is not closed", ErrInvalidBoundary)
			}
			return nil, fmt.Errorf("%w: edge %d does not connect to edge %d", ErrInvalidBoundary, i, next)
		}
		// Shared vertices get bit-identical coordinates so the crossing rule
		// sees the same y from both sides.
		if next != 0 {
			welded[next].Start = e.End
		} else {
			welded[n-1].End = welded[0].Start
		}
	}

	if err := checkSimple(welded); err != nil {
		return nil, err
	}

	b := geometry.EmptyBounds()
	for _, e := range welded {
		b = b.Union(e.Bounds())
	}
	return &Region{edges: welded, bounds: b}, nil
}

// Classify locates p against the boundary using the even-odd rule
func Classify(edges []Edge, p geometry.Vector2) (Location, error) {
	r, err := NewRegion(edges)
	if err != nil {
		return Outside, err
	}
	return r.Classify(p), nil
}

// Edges returns a copy of the validated edges
func (r *Region) Edges() []Edge {
	out := make([]Edge, len(r.edges))
	copy(out, r.edges)
	return out
}

// Bounds returns the bounding box of the boundary
func (r *Region) Bounds() geometry.Bounds2 {
	return r.bounds
}

// Classify locates p using the even-odd rule
func (r *Region) Classify(p geometry.Vector2) Location {
	return r.Locate(p, EvenOdd)
}

// Locate locates p with the given fill rule. Points within tolerance of any
// edge are OnBoundary regardless of the rule.
func (r *Region) Locate(p geometry.Vector2, rule FillRule) Location {
	for _, e := range r.edges {
		if e.DistanceToPoint(p) <= geometry.Tolerance {
			return OnBoundary
		}
	}
	if !r.bounds.Contains(p) {
		return Outside
	}

	w := r.winding(p)
	switch rule {
	case NonZero:
		if w != 0 {
			return Inside
		}
	default:
		if w%2 != 0 {
			return Inside
		}
	}
	return Outside
}

// Winding returns the winding number of the boundary around p. Points on the
// boundary report 0.
func (r *Region) Winding(p geometry.Vector2) int {
	if r.Locate(p, NonZero) == OnBoundary {
		return 0
	}
	return r.winding(p)
}

// winding casts a ray from p towards +x. Each edge that straddles the ray
// contributes +1 when it crosses upwards and -1 downwards.
//
// Vertices lying exactly on the ray count as lying below it, which is the
// same as moving the ray up by an infinitesimal amount. Both edges sharing
// a vertex see the same coordinates, so a ray through a vertex is counted
// once when the boundary passes through and not at all when it only touches.
func (r *Region) winding(p geometry.Vector2) int {
	w := 0
	for _, e := range r.edges {
		if e.Kind == EdgeArc {
			w += arcCrossings(e, p)
		} else {
			w += straightCrossing(e.Start, e.End, p)
		}
	}
	return w
}

func straightCrossing(a, b, p geometry.Vector2) int {
	aAbove := a.Y > p.Y
	bAbove := b.Y > p.Y
	if aAbove == bAbove {
		return 0
	}
	x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
	if x <= p.X {
		return 0
	}
	if bAbove {
		return 1
	}
	return -1
}

// arcCrossings splits the arc at the top and bottom of its circle into
// pieces that are monotone in y. Each piece straddles the ray at most once,
// and where it does, the crossing x is read off the circle on the side of
// the center the piece lies on. The bulge direction therefore decides the
// contribution, not the chord.
func arcCrossings(e Edge, p geometry.Vector2) int {
	arc := e.Arc
	c := arc.Center
	r := arc.Radius

	cuts := monotoneCuts(arc)
	w := 0
	prev := e.Start
	prevT := 0.0
	for i := 0; i <= len(cuts); i++ {
		var next geometry.Vector2
		var nextT float64
		if i == len(cuts) {
			next, nextT = e.End, arc.Subtended()
		} else {
			nextT = cuts[i]
			if math.Sin(angleAt(arc, nextT)) > 0 {
				next = geometry.Vector2{X: c.X, Y: c.Y + r}
			} else {
				next = geometry.Vector2{X: c.X, Y: c.Y - r}
			}
		}

		aAbove := prev.Y > p.Y
		bAbove := next.Y > p.Y
		if aAbove != bAbove {
			dy := p.Y - c.Y
			dx := math.Sqrt(math.Max(0, r*r-dy*dy))
			x := c.X - dx
			if math.Cos(angleAt(arc, (prevT+nextT)/2)) > 0 {
				x = c.X + dx
			}
			if x > p.X {
				if bAbove {
					w++
				} else {
					w--
				}
			}
		}
		prev, prevT = next, nextT
	}
	return w
}

// monotoneCuts returns the distances along the arc, measured as angle from
// its start, at which it passes through the top or bottom of its circle.
func monotoneCuts(arc geometry.Arc) []float64 {
	span := arc.Subtended()
	tol := geometry.Tolerance / arc.Radius

	var first float64
	if arc.Sweep > 0 {
		first = math.Mod(math.Pi/2-arc.StartAngle, math.Pi)
	} else {
		first = math.Mod(arc.StartAngle-math.Pi/2, math.Pi)
	}
	if first < 0 {
		first += math.Pi
	}
	if first <= tol {
		first += math.Pi
	}

	var cuts []float64
	for t := first; t < span-tol; t += math.Pi {
		cuts = append(cuts, t)
	}
	return cuts
}

func angleAt(arc geometry.Arc, t float64) float64 {
	if arc.Sweep < 0 {
		return arc.StartAngle - t
	}
	return arc.StartAngle + t
}

// checkSimple rejects boundaries whose edges meet anywhere other than the
// vertices they share with their neighbours.
func checkSimple(edges []Edge) error {
	n := len(edges)
	if n == 1 {
		if !edges[0].IsClosed() {
			return fmt.Errorf("%w: boundary is not closed", ErrInvalidBoundary)
		}
		return nil
	}
	for i := 0; i < n; i++ {
		if edges[i].IsClosed() {
			return fmt.Errorf("%w: closed edge %d inside a multi-edge boundary", ErrInvalidBoundary, i)
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var shared []geometry.Vector2
			if j == i+1 {
				shared = append(shared, edges[i].End)
			}
			if i == 0 && j == n-1 {
				shared = append(shared, edges[0].Start)
			}

			overlap, hits := intersectEdges(edges[i], edges[j])
			if overlap {
				return fmt.Errorf("%w: edges %d and %d overlap", ErrInvalidBoundary, i, j)
			}
			for _, h := range hits {
				if !nearAny(h, shared) {
					return fmt.Errorf("%w: edges %d and %d intersect at %v", ErrInvalidBoundary, i, j, h)
				}
			}
		}
	}
	return nil
}

func nearAny(p geometry.Vector2, pts []geometry.Vector2) bool {
	for _, q := range pts {
		if p.NearlyEqual(q) {
			return true
		}
	}
	return false
}

func intersectEdges(a, b Edge) (bool, []geometry.Vector2) {
	switch {
	case a.Kind == EdgeLine && b.Kind == EdgeLine:
		sa := geometry.NewSegment(a.Start, a.End)
		sb := geometry.NewSegment(b.Start, b.End)
		if sa.Overlaps(sb) {
			return true, nil
		}
		if p, ok := sa.Intersect(sb); ok {
			return false, []geometry.Vector2{p}
		}
		// Parallel segments can still touch end to end.
		var hits []geometry.Vector2
		for _, p := range []geometry.Vector2{b.Start, b.End} {
			if sa.ContainsPoint(p) {
				hits = append(hits, p)
			}
		}
		return false, hits
	case a.Kind == EdgeArc && b.Kind == EdgeArc:
		if a.Arc.OverlapsArc(b.Arc) {
			return true, nil
		}
		return false, a.Arc.IntersectArc(b.Arc)
	case a.Kind == EdgeArc:
		return false, a.Arc.IntersectSegment(geometry.NewSegment(b.Start, b.End))
	default:
		return false, b.Arc.IntersectSegment(geometry.NewSegment(a.Start, a.End))
	}
}
