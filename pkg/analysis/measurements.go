package analysis

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/philipparndt/gosketch/pkg/geometry"
	"github.com/philipparndt/gosketch/pkg/sketch"
	"github.com/philipparndt/gosketch/pkg/topology"
)

// EdgeInfo contains information about one curve of the sketch
type EdgeInfo struct {
	Entity sketch.EntityID
	Kind   sketch.Kind
	Start  geometry.Vector2
	End    geometry.Vector2
	Length float64
}

// WireInfo describes one closed wire
type WireInfo struct {
	Entities  []sketch.EntityID
	Area      float64
	Perimeter float64
	Bounds    geometry.Bounds2
}

// MeasurementResult contains various measurements of a sketch
type MeasurementResult struct {
	Bounds        geometry.Bounds2
	Dimensions    geometry.Vector2
	PointCount    int
	LineCount     int
	CircleCount   int
	ArcCount      int
	EdgeCount     int
	TotalLength   float64
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	AllEdges      []EdgeInfo
	Wires         []WireInfo
}

// AnalyzeSketch measures every entity of a store and the wires it forms
func AnalyzeSketch(store *sketch.Store) *MeasurementResult {
	result := &MeasurementResult{
		Bounds:      store.Bounds(),
		PointCount:  len(store.Points()),
		LineCount:   len(store.Lines()),
		CircleCount: len(store.Circles()),
		ArcCount:    len(store.Arcs()),
	}
	if !result.Bounds.IsEmpty() {
		result.Dimensions = result.Bounds.Size()
	}

	for _, l := range store.Lines() {
		if seg, err := store.Segment(l.ID); err == nil {
			result.AllEdges = append(result.AllEdges, EdgeInfo{
				Entity: l.ID, Kind: sketch.KindLine, Start: seg.A, End: seg.B, Length: seg.Length(),
			})
		}
	}
	for _, a := range store.Arcs() {
		if arc, err := store.ArcGeometry(a.ID); err == nil {
			result.AllEdges = append(result.AllEdges, EdgeInfo{
				Entity: a.ID, Kind: sketch.KindArc, Start: arc.StartPoint(), End: arc.EndPoint(), Length: arc.Length(),
			})
		}
	}
	for _, c := range store.Circles() {
		if circle, err := store.CircleGeometry(c.ID); err == nil {
			p := circle.Center.Add(geometry.Vector2{X: circle.Radius})
			result.AllEdges = append(result.AllEdges, EdgeInfo{
				Entity: c.ID, Kind: sketch.KindCircle, Start: p, End: p, Length: circle.Circumference(),
			})
		}
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount > 0 {
		lengths := make([]float64, result.EdgeCount)
		for i, e := range result.AllEdges {
			lengths[i] = e.Length
		}
		result.TotalLength = floats.Sum(lengths)
		result.MinEdgeLength = floats.Min(lengths)
		result.MaxEdgeLength = floats.Max(lengths)
		result.AvgEdgeLength = result.TotalLength / float64(result.EdgeCount)
	}

	for _, w := range topology.Build(store) {
		result.Wires = append(result.Wires, WireInfo{
			Entities:  w.Entities(),
			Area:      w.Area(),
			Perimeter: w.Perimeter(),
			Bounds:    w.Bounds(),
		})
	}

	return result
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(result *MeasurementResult, minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.AllEdges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindLongestEdges returns the N longest edges in the sketch
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length > b.Length })
}

// FindShortestEdges returns the N shortest edges in the sketch
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return sortedEdges(result, count, func(a, b EdgeInfo) bool { return a.Length < b.Length })
}

func sortedEdges(result *MeasurementResult, count int, less func(a, b EdgeInfo) bool) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return less(edges[i], edges[j])
	})

	if count > len(edges) {
		count = len(edges)
	}
	if count < 0 {
		count = 0
	}
	return edges[:count]
}

// FindNearestPoint finds the point entity nearest to a position
func FindNearestPoint(store *sketch.Store, pos geometry.Vector2) (sketch.EntityID, float64) {
	var nearest sketch.EntityID
	minDistance := math.Inf(1)

	for _, p := range store.Points() {
		if d := pos.Distance(p.Position); d < minDistance {
			minDistance = d
			nearest = p.ID
		}
	}
	return nearest, minDistance
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 2D position
func FormatVector(v geometry.Vector2) string {
	return fmt.Sprintf("(%.6f, %.6f)", v.X, v.Y)
}
