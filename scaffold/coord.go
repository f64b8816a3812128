package scaffold

import "github.com/globular-cat/homotopy/common"

// Coord is the coordinate of a node reached by repeated explosion: the
// sequence of interior heights taken at each exploded dimension, root
// first.
type Coord []common.SliceIndex

// AddCoord appends si to a copy of coord; it is the node_key callback
// BuildSliceGraph uses by default to track full coordinates through
// repeated explosion.
func AddCoord(si common.SliceIndex, coord Coord) (Coord, bool) {
	next := make(Coord, len(coord), len(coord)+1)
	copy(next, coord)

	return append(next, si), true
}
