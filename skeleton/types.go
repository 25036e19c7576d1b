package skeleton

import (
	"errors"
)

// Sentinel errors for skeleton operations.
var (
	// ErrBadShape indicates negative dimensions or a mask of the wrong length.
	ErrBadShape = errors.New("skeleton: invalid shape")
	// ErrRaggedRows indicates FromRows input rows of differing lengths.
	ErrRaggedRows = errors.New("skeleton: all rows must have the same length")
	// ErrOutOfRange indicates a branch or node index outside valid bounds.
	ErrOutOfRange = errors.New("skeleton: index out of range")
	// ErrMalformedBranch indicates a branch row without exactly two set entries.
	ErrMalformedBranch = errors.New("skeleton: branch must touch exactly two nodes")
	// ErrCoordLength indicates y and x coordinate slices of differing lengths.
	ErrCoordLength = errors.New("skeleton: y and x must have the same length")
)

// IncidenceMatrix is a boolean branch×node matrix stored row-major in a
// flat slice for cache friendliness. branches is the number of rows,
// nodes the number of columns, and data holds branches*nodes entries.
// Either dimension may be zero (a fully simplified graph can lose all of
// its branches).
type IncidenceMatrix struct {
	branches, nodes int
	data            []bool // flat backing storage, length == branches*nodes
}

// Coordinates holds the (y, x) positions of the nodes of one graph as two
// equal-length slices, index-aligned with the node axis of the incidence
// matrix the coordinates belong to.
type Coordinates struct {
	Y []float64
	X []float64
}

// NewCoordinates builds a Coordinates from y and x slices of equal length.
// Returns ErrCoordLength when the lengths differ. The slices are not copied.
func NewCoordinates(y, x []float64) (Coordinates, error) {
	if len(y) != len(x) {
		return Coordinates{}, ErrCoordLength
	}
	return Coordinates{Y: y, X: x}, nil
}

// Len returns the number of nodes the coordinates describe.
func (c Coordinates) Len() int { return len(c.Y) }

// Point returns the (y, x) position of node i. Out-of-bounds indices
// panic, like slice indexing.
func (c Coordinates) Point(i int) (y, x float64) { return c.Y[i], c.X[i] }

// Validate returns ErrCoordLength when the y and x slices differ in length.
func (c Coordinates) Validate() error {
	if len(c.Y) != len(c.X) {
		return ErrCoordLength
	}
	return nil
}

// Clone returns a deep copy of the coordinates.
func (c Coordinates) Clone() Coordinates {
	y := make([]float64, len(c.Y))
	x := make([]float64, len(c.X))
	copy(y, c.Y)
	copy(x, c.X)
	return Coordinates{Y: y, X: x}
}

// Select returns the coordinates of the given node indices, in order.
// Returns ErrOutOfRange when an index is outside [0, Len).
func (c Coordinates) Select(ids []int) (Coordinates, error) {
	if err := c.Validate(); err != nil {
		return Coordinates{}, err
	}
	for _, id := range ids {
		if id < 0 || id >= c.Len() {
			return Coordinates{}, ErrOutOfRange
		}
	}
	y := make([]float64, len(ids))
	x := make([]float64, len(ids))
	for i, id := range ids {
		y[i] = c.Y[id]
		x[i] = c.X[id]
	}
	return Coordinates{Y: y, X: x}, nil
}

// SelectMask returns the coordinates of the nodes where mask is true,
// preserving order. Returns ErrBadShape when len(mask) != Len.
func (c Coordinates) SelectMask(mask []bool) (Coordinates, error) {
	if err := c.Validate(); err != nil {
		return Coordinates{}, err
	}
	if len(mask) != c.Len() {
		return Coordinates{}, ErrBadShape
	}
	var y, x []float64
	for i, keep := range mask {
		if keep {
			y = append(y, c.Y[i])
			x = append(x, c.X[i])
		}
	}
	return Coordinates{Y: y, X: x}, nil
}
