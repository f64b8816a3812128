package explode

import (
	"github.com/globular-cat/homotopy/common"
	"github.com/globular-cat/homotopy/diagram"
	"github.com/globular-cat/homotopy/scaffold"
)

// BuildSliceGraph constructs the depth-times exploded scaffold of d,
// rooted at a single node keyed by the empty coordinate, tracking each
// slot's full coordinate path. It fails with a DimensionError if depth
// exceeds d's dimension.
func BuildSliceGraph(d diagram.Diagram, depth int) (*scaffold.Graph[scaffold.Coord, struct{}], error) {
	if depth > d.Dimension() {
		return nil, &common.DimensionError{Op: "BuildSliceGraph"}
	}

	g := scaffold.NewGraph[scaffold.Coord, struct{}]()
	g.AddNode(scaffold.Coord{}, d)

	for i := 0; i < depth; i++ {
		next, _, err := Explode(g, coordNodeKey, func(Origin, *struct{}) (struct{}, bool) { return struct{}{}, true })
		if err != nil {
			return nil, err
		}
		g = next
	}

	return g, nil
}

// coordNodeKey drops boundary slots and extends interior slots' coordinate
// with the new height, matching the original graph builder's behaviour.
func coordNodeKey(si common.SliceIndex, key scaffold.Coord) (scaffold.Coord, bool) {
	if si.IsBoundary() {
		return nil, false
	}

	return scaffold.AddCoord(si, key)
}
