package sketch

import (
	"fmt"

	"github.com/philipparndt/gosketch/pkg/geometry"
)

// EntityID identifies an entity within one sketch. IDs start at 1 and are
// never reused; 0 is the null id.
type EntityID uint32

// SketchID identifies a sketch within a document.
type SketchID uint16

// Kind is the type of an entity
type Kind uint8

const (
	KindPoint Kind = iota + 1
	KindLine
	KindCircle
	KindArc
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	case KindCircle:
		return "circle"
	case KindArc:
		return "arc"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Point is a position in sketch-local space
type Point struct {
	ID       EntityID
	Position geometry.Vector2
}

// Line connects two point entities
type Line struct {
	ID         EntityID
	Start, End EntityID
}

// Circle is a full circle around a center point entity
type Circle struct {
	ID     EntityID
	Center EntityID
	Radius float64
}

// Arc runs around Center from Start to End. CCW selects the
// counter-clockwise span; toggling it flips the bulge.
type Arc struct {
	ID                 EntityID
	Center, Start, End EntityID
	CCW                bool
}

// Endpoints returns the point ids an edge entity connects
func (l Line) Endpoints() (EntityID, EntityID) { return l.Start, l.End }

// Endpoints returns the point ids an edge entity connects
func (a Arc) Endpoints() (EntityID, EntityID) { return a.Start, a.End }
