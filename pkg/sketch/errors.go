package sketch

import "errors"

var (
	// ErrInvalidGeometry is returned when a commit would create a degenerate entity.
	ErrInvalidGeometry = errors.New("invalid geometry")

	// ErrEntityInUse is returned when removing a point still referenced by another entity.
	ErrEntityInUse = errors.New("entity in use")

	// ErrNotFound is returned for unknown entity or sketch ids.
	ErrNotFound = errors.New("not found")
)
