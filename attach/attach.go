package attach

import (
	"errors"

	"github.com/globular-cat/homotopy/common"
	"github.com/globular-cat/homotopy/diagram"
	"github.com/globular-cat/homotopy/rewrite"
)

// ErrUnsupportedDepth is returned by Attach when asked to descend through
// any level of boundary before splicing: this engine only attaches at the
// diagram it is handed directly (see BoundaryPath).
var ErrUnsupportedDepth = errors.New("attach: only depth-0 boundary paths are supported")

// BoundaryPath names a boundary (Source or Target) reached by descending
// Depth dimensions, always through that same boundary, from some outer
// diagram. Only Depth == 0 (attach directly to the diagram passed to
// Attach) is implemented by this engine; see ErrUnsupportedDepth.
type BoundaryPath struct {
	boundary common.Boundary
	depth    int
}

// NewBoundaryPath constructs a boundary path through b, depth dimensions
// deep.
func NewBoundaryPath(b common.Boundary, depth int) BoundaryPath {
	return BoundaryPath{boundary: b, depth: depth}
}

// Boundary returns the boundary direction this path descends through.
func (p BoundaryPath) Boundary() common.Boundary { return p.boundary }

// Depth returns the number of dimensions this path descends.
func (p BoundaryPath) Depth() int { return p.depth }

// BuildCospans computes the replacement cospans for the diagram Attach
// reaches, given that diagram itself.
type BuildCospans func(slice diagram.Diagram) ([]rewrite.Cospan, error)

// Attach verifies d has enough dimension for bp, then replaces d's own
// cospan run with whatever build returns, keeping d's source unchanged.
// bp.Boundary() is accepted for API symmetry with the wider boundary-path
// vocabulary (expand, sibling attach variants) even though a depth-0 path
// does not otherwise distinguish Source from Target.
func Attach(d diagram.Diagram, bp BoundaryPath, build BuildCospans) (diagram.Diagram, error) {
	if bp.Depth() > 0 {
		return nil, ErrUnsupportedDepth
	}
	if d.Dimension() == 0 {
		return nil, &common.DimensionError{Op: "attach"}
	}

	dn, ok := d.(*diagram.DiagramN)
	if !ok {
		return nil, &common.DimensionError{Op: "attach"}
	}

	cospans, err := build(d)
	if err != nil {
		return nil, err
	}

	return diagram.NewDiagramN(dn.Source(), cospans)
}
