package collapse

import (
	"strings"

	"github.com/globular-cat/homotopy/common"
	"github.com/globular-cat/homotopy/scaffold"
)

// Coord is the coordinate of a fully-exploded 0-diagram node: the sequence
// of interior heights taken at each exploded dimension, root first.
type Coord []common.Height

// Key renders c as a canonical string, used wherever a Coord is needed as
// a map key: Go slices are not themselves comparable, unlike the Hash +
// Eq Vec<Height> the original algorithm keys its identification map by.
func (c Coord) Key() string {
	parts := make([]string, len(c))
	for i, h := range c {
		parts[i] = h.String()
	}

	return strings.Join(parts, "/")
}

// FromScaffoldCoord strips a scaffold.Coord down to the Heights of its
// interior slices. Every element is expected to be interior: a fully
// exploded scaffold's node_key callback never lets a boundary slot
// survive into the next round, so no Coord reaching this package should
// ever carry one; a boundary element present here signals a caller built
// the exploded scaffold incorrectly.
func FromScaffoldCoord(c scaffold.Coord) (Coord, bool) {
	out := make(Coord, len(c))
	for i, si := range c {
		if si.IsBoundary() {
			return nil, false
		}
		out[i] = si.Height()
	}

	return out, true
}
