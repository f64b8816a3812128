package common

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the module.
var (
	// ErrIncompatible indicates a rewrite was composed with, or applied to,
	// a diagram whose boundary does not match.
	ErrIncompatible = errors.New("common: incompatible boundary")

	// ErrDimension indicates an operation required higher dimension than
	// the input actually has (e.g. exploding a 0-diagram).
	ErrDimension = errors.New("common: dimension error")
)

// DimensionError is returned when an operation needed a positive-dimension
// diagram or rewrite and received a 0-dimensional one instead.
type DimensionError struct {
	// Op names the operation that failed, for diagnostics.
	Op string
}

func (e *DimensionError) Error() string {
	if e.Op == "" {
		return ErrDimension.Error()
	}

	return fmt.Sprintf("%s: %s", ErrDimension, e.Op)
}

// Unwrap lets callers match DimensionError via errors.Is(err, ErrDimension).
func (e *DimensionError) Unwrap() error { return ErrDimension }

// Generator is an atomic labelled cell. Two generators are equal iff their
// IDs match; Dimension is carried for convenience but never participates
// in equality.
type Generator struct {
	// ID uniquely identifies this generator within its signature.
	ID int

	// Dimension is the dimension of the cell this generator labels.
	Dimension int
}

// NewGenerator constructs a Generator with the given id and dimension.
func NewGenerator(id, dimension int) Generator {
	return Generator{ID: id, Dimension: dimension}
}

// Equal reports whether two generators share the same identity.
// Per spec, generator equality is identifier equality only.
func (g Generator) Equal(other Generator) bool {
	return g.ID == other.ID
}

func (g Generator) String() string {
	return fmt.Sprintf("g%d[%d]", g.ID, g.Dimension)
}

// Direction distinguishes the two legs of a cospan / the two halves of a
// cone, and the two ways a boundary can face.
type Direction int

const (
	// Forward is the cospan's forward leg (source → apex).
	Forward Direction = iota
	// Backward is the cospan's backward leg (target → apex).
	Backward
)

func (d Direction) String() string {
	if d == Forward {
		return "Forward"
	}

	return "Backward"
}

// Boundary names which end of a diagram's principal dimension a boundary
// path step refers to.
type Boundary int

const (
	// Source is the diagram's source boundary.
	Source Boundary = iota
	// Target is the diagram's target boundary.
	Target
)

func (b Boundary) String() string {
	if b == Source {
		return "Source"
	}

	return "Target"
}

// Height is a discrete position inside a 1-dimensional slice: either a
// Regular position (between cospans) or a Singular one (at a cospan).
// A diagram of size n has heights Regular(0), Singular(0), ..., Singular(n-1),
// Regular(n) in that total order.
type Height struct {
	// Kind distinguishes Regular from Singular; see IsSingular/IsRegular.
	kind heightKind
	// Index is the height's position among heights of its own kind.
	Index int
}

type heightKind uint8

const (
	regularKind heightKind = iota
	singularKind
)

// Regular constructs the regular height at index k (k >= 0).
func Regular(k int) Height { return Height{kind: regularKind, Index: k} }

// Singular constructs the singular height at index k (k >= 0).
func Singular(k int) Height { return Height{kind: singularKind, Index: k} }

// IsRegular reports whether h is a regular height.
func (h Height) IsRegular() bool { return h.kind == regularKind }

// IsSingular reports whether h is a singular height.
func (h Height) IsSingular() bool { return h.kind == singularKind }

// LinearIndex converts h to its position in the total order of heights:
// Regular(k) -> 2k, Singular(k) -> 2k+1.
func (h Height) LinearIndex() int {
	if h.IsRegular() {
		return 2 * h.Index
	}

	return 2*h.Index + 1
}

// HeightFromLinearIndex is the inverse of LinearIndex.
func HeightFromLinearIndex(i int) Height {
	if i%2 == 0 {
		return Regular(i / 2)
	}

	return Singular((i - 1) / 2)
}

func (h Height) String() string {
	if h.IsRegular() {
		return fmt.Sprintf("Regular(%d)", h.Index)
	}

	return fmt.Sprintf("Singular(%d)", h.Index)
}

// Compare orders heights by their linear index. Returns -1, 0, or 1.
func (h Height) Compare(other Height) int {
	a, b := h.LinearIndex(), other.LinearIndex()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// SliceIndex names a position at which a diagram may be sliced: either one
// of its two boundaries, or an interior Height.
type SliceIndex struct {
	// isBoundary distinguishes the Boundary and Interior variants.
	isBoundary bool
	boundary   Boundary
	height     Height
}

// BoundarySlice constructs a SliceIndex referring to a boundary.
func BoundarySlice(b Boundary) SliceIndex { return SliceIndex{isBoundary: true, boundary: b} }

// InteriorSlice constructs a SliceIndex referring to an interior height.
func InteriorSlice(h Height) SliceIndex { return SliceIndex{isBoundary: false, height: h} }

// IsBoundary reports whether si refers to a boundary.
func (si SliceIndex) IsBoundary() bool { return si.isBoundary }

// Boundary returns the boundary si refers to; valid only if IsBoundary().
func (si SliceIndex) Boundary() Boundary { return si.boundary }

// Height returns the height si refers to; valid only if !IsBoundary().
func (si SliceIndex) Height() Height { return si.height }

func (si SliceIndex) String() string {
	if si.isBoundary {
		return si.boundary.String()
	}

	return si.height.String()
}
