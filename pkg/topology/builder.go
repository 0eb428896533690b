package topology

import (
	"math"
	"slices"
	"sort"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
)

type halfEdge struct {
	edge  Edge
	angle float64
	curv  float64
	twin  int
	next  int
}

// Build derives the closed faces of the store's line/arc graph plus one wire
// per circle. Each face is traced by leaving every vertex along the
// outgoing edge that lies just clockwise of the edge we arrived on, which
// keeps the face on the left and yields counter-clockwise wires. The
// unbounded face of each component winds clockwise and is dropped.
//
// Edges that are not part of any cycle (dangling lines, bridges between
// loops) are pruned before the final trace. A face made only of straight
// edges needs at least three of them.
func Build(store *sketch.Store) []Wire {
	edges := collectEdges(store)

	var faces [][]Edge
	for {
		var bridges map[sketch.EntityID]bool
		faces, bridges = traceFaces(edges)
		if len(bridges) == 0 {
			break
		}
		edges = slices.DeleteFunc(edges, func(e Edge) bool { return bridges[e.Entity] })
	}

	var wires []Wire
	for _, face := range faces {
		w := Wire{Edges: face}
		if !acceptable(w) {
			continue
		}
		wires = append(wires, canonical(w))
	}
	sort.SliceStable(wires, func(i, j int) bool {
		return wires[i].Edges[0].Entity < wires[j].Edges[0].Entity
	})

	for _, c := range store.Circles() {
		circle, err := store.CircleGeometry(c.ID)
		if err != nil {
			continue
		}
		e := CircleEdge(circle)
		e.Entity = c.ID
		wires = append(wires, Wire{Edges: []Edge{e}})
	}
	return wires
}

// collectEdges returns every line and arc as an edge running from its
// first to its second endpoint, ordered by entity id.
func collectEdges(store *sketch.Store) []Edge {
	var edges []Edge
	for _, l := range store.Lines() {
		a, errA := store.Position(l.Start)
		b, errB := store.Position(l.End)
		if errA != nil || errB != nil {
			continue
		}
		e := LineEdge(a, b)
		e.Entity, e.From, e.To = l.ID, l.Start, l.End
		edges = append(edges, e)
	}
	for _, a := range store.Arcs() {
		arc, err := store.ArcGeometry(a.ID)
		if err != nil {
			continue
		}
		start, _ := store.Position(a.Start)
		end, _ := store.Position(a.End)
		e := Edge{Kind: EdgeArc, Start: start, End: end, Arc: arc, Entity: a.ID, From: a.Start, To: a.End}
		edges = append(edges, e)
	}
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Entity < edges[j].Entity })
	return edges
}

// traceFaces walks every half-edge once. It also reports the entities that
// a single face runs along in both directions.
func traceFaces(edges []Edge) ([][]Edge, map[sketch.EntityID]bool) {
	half := make([]halfEdge, 0, 2*len(edges))
	outgoing := make(map[sketch.EntityID][]int)
	for _, e := range edges {
		for _, dir := range []Edge{e, e.Reversed()} {
			angle, curv := dir.departure()
			idx := len(half)
			half = append(half, halfEdge{edge: dir, angle: angle, curv: curv})
			outgoing[dir.From] = append(outgoing[dir.From], idx)
		}
		n := len(half)
		half[n-2].twin = n - 1
		half[n-1].twin = n - 2
	}

	position := make([]int, len(half))
	for _, out := range outgoing {
		sortAround(out, half)
		for pos, idx := range out {
			position[idx] = pos
		}
	}

	for i := range half {
		twin := half[i].twin
		around := outgoing[half[twin].edge.From]
		pos := position[twin]
		half[i].next = around[(pos-1+len(around))%len(around)]
	}

	visited := make([]bool, len(half))
	var faces [][]Edge
	bridges := make(map[sketch.EntityID]bool)
	for start := range half {
		if visited[start] {
			continue
		}
		var face []Edge
		seen := make(map[sketch.EntityID]bool)
		for cur := start; !visited[cur]; cur = half[cur].next {
			visited[cur] = true
			e := half[cur].edge
			if seen[e.Entity] {
				bridges[e.Entity] = true
			}
			seen[e.Entity] = true
			face = append(face, e)
		}
		faces = append(faces, face)
	}
	return faces, bridges
}

func acceptable(w Wire) bool {
	if !w.IsClosed() {
		return false
	}
	if w.Len() < 3 {
		for _, e := range w.Edges {
			if e.Kind == EdgeArc {
				return w.Area() > geometry.Tolerance
			}
		}
		return false
	}
	return w.Area() > geometry.Tolerance
}

// canonical rotates the wire so that it starts at its lowest entity id
func canonical(w Wire) Wire {
	first := 0
	for i, e := range w.Edges {
		if e.Entity < w.Edges[first].Entity {
			first = i
		}
	}
	rotated := make([]Edge, 0, len(w.Edges))
	rotated = append(rotated, w.Edges[first:]...)
	rotated = append(rotated, w.Edges[:first]...)
	return Wire{Edges: rotated}
}

// Cache holds the wires of one store until the store changes
type Cache struct {
	store   *sketch.Store
	version uint64
	wires   []Wire
}

// Wires returns the cached wires, rebuilding them when the store or its
// version changed since the last call.
func (c *Cache) Wires(store *sketch.Store) []Wire {
	if c.store != store || c.version != store.Version() || c.wires == nil {
		c.store = store
		c.version = store.Version()
		c.wires = Build(store)
		if c.wires == nil {
			c.wires = []Wire{}
		}
	}
	return c.wires
}

// Invalidate drops the cached wires
func (c *Cache) Invalidate() {
	c.store = nil
	c.wires = nil
}

// sortAround orders the half-edges leaving one vertex counter-clockwise.
// Departure angles within geometry.Tolerance of each other, across the 0/2π
// seam too, are one direction and fall back to curvature.
func sortAround(out []int, half []halfEdge) {
	if len(out) == 0 {
		return
	}
	sort.SliceStable(out, func(i, j int) bool {
		return half[out[i]].angle < half[out[j]].angle
	})

	dir := make(map[int]float64, len(out))
	rep := half[out[0]].angle
	for k, idx := range out {
		if k > 0 && half[idx].angle-half[out[k-1]].angle > geometry.Tolerance {
			rep = half[idx].angle
		}
		dir[idx] = rep
	}
	next := half[out[0]].angle + 2*math.Pi
	for k := len(out) - 1; k > 0; k-- {
		idx := out[k]
		if next-half[idx].angle > geometry.Tolerance {
			break
		}
		dir[idx] = dir[out[0]]
		next = half[idx].angle
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if dir[a] != dir[b] {
			return dir[a] < dir[b]
		}
		if half[a].curv != half[b].curv {
			return half[a].curv < half[b].curv
		}
		return a < b
	})
}
