package mesh

import (
	"sort"
	"strings"

	"github.com/globular-cat/homotopy/common"
	"github.com/globular-cat/homotopy/diagram"
	"github.com/globular-cat/homotopy/explode"
	"github.com/globular-cat/homotopy/scaffold"
)

// Coordinate locates a point of a Mesh: one interior SliceIndex per
// exploded dimension, root first.
type Coordinate = scaffold.Coord

// Mesh is the slice graph reached by exploding a diagram Dimension times,
// indexed for cube lookup by coordinate.
type Mesh struct {
	graph   *scaffold.Graph[Coordinate, struct{}]
	dim     int
	byCoord map[string]scaffold.NodeID
}

// New explodes d Dimension times and indexes the result for cube
// enumeration. Dimension must not exceed d.Dimension().
func New(d diagram.Diagram, dimension int) (*Mesh, error) {
	g, err := explode.BuildSliceGraph(d, dimension)
	if err != nil {
		return nil, err
	}

	byCoord := make(map[string]scaffold.NodeID, len(g.Nodes()))
	for _, id := range g.Nodes() {
		coord, _, ok := g.Node(id)
		if !ok {
			continue
		}
		byCoord[encodeCoord(coord)] = id
	}

	return &Mesh{graph: g, dim: dimension, byCoord: byCoord}, nil
}

// Dimension is the number of explosions the mesh was built with.
func (m *Mesh) Dimension() int { return m.dim }

// Point is one node of the mesh: its coordinate and the diagram slice
// living at it.
type Point struct {
	Coord   Coordinate
	Diagram diagram.Diagram
}

// Points returns every node of the exploded graph.
func (m *Mesh) Points() []Point {
	ids := m.graph.Nodes()
	out := make([]Point, 0, len(ids))
	for _, id := range ids {
		coord, d, ok := m.graph.Node(id)
		if !ok {
			continue
		}
		out = append(out, Point{Coord: coord, Diagram: d})
	}
	sort.Slice(out, func(i, j int) bool { return encodeCoord(out[i].Coord) < encodeCoord(out[j].Coord) })

	return out
}

// Cube is a d-dimensional cell of the mesh: 2^d corner coordinates, in
// binary-counting order over its flex axes (axis 0 the low bit), together
// with the diagram slice at each corner.
type Cube struct {
	// Axes names, low to high, which coordinate positions vary across this
	// cube's corners; every other axis is fixed at the anchor's value.
	Axes    []int
	Corners []Coordinate
	Points  []diagram.Diagram

	// Visible reports whether every axis this cube does not vary over sits
	// at an interior singular height in the anchor coordinate: the
	// approximation this package uses in place of the original's
	// orientation-history visibility rule.
	Visible bool
}

// Dimension is len(Axes): the number of independent directions the cube
// spans.
func (c Cube) Dimension() int { return len(c.Axes) }

// Cubes enumerates every cube anchored at a node all of whose flexed axes
// sit at a regular height there, extending each upward (Regular(k) ->
// Regular(k+1)) across its flex set. A cube exists only if every one of its
// 2^|Axes| corners is itself a node of the mesh; cubes are not deduplicated
// against cubes anchored at a different corner, since only the
// all-axes-at-their-lowest corner can anchor a given flex set's cube.
func (m *Mesh) Cubes() []Cube {
	var cubes []Cube
	for _, id := range m.graph.Nodes() {
		coord, _, ok := m.graph.Node(id)
		if !ok {
			continue
		}

		var regularAxes []int
		for i, si := range coord {
			if !si.IsBoundary() && si.Height().IsRegular() {
				regularAxes = append(regularAxes, i)
			}
		}

		for _, subset := range subsets(regularAxes) {
			cube, ok := m.buildCube(coord, subset)
			if !ok {
				continue
			}
			cubes = append(cubes, cube)
		}
	}

	return cubes
}

func (m *Mesh) buildCube(anchor Coordinate, axes []int) (Cube, bool) {
	n := 1 << len(axes)
	corners := make([]Coordinate, n)
	points := make([]diagram.Diagram, n)

	for mask := 0; mask < n; mask++ {
		corner := make(Coordinate, len(anchor))
		copy(corner, anchor)
		for bit, axis := range axes {
			if mask&(1<<bit) != 0 {
				h := corner[axis].Height()
				corner[axis] = common.InteriorSlice(common.Regular(h.Index + 1))
			}
		}
		id, ok := m.byCoord[encodeCoord(corner)]
		if !ok {
			return Cube{}, false
		}
		_, d, ok := m.graph.Node(id)
		if !ok {
			return Cube{}, false
		}
		corners[mask] = corner
		points[mask] = d
	}

	flex := make(map[int]bool, len(axes))
	for _, a := range axes {
		flex[a] = true
	}
	visible := true
	for i, si := range anchor {
		if flex[i] {
			continue
		}
		if si.IsBoundary() || si.Height().IsRegular() {
			visible = false

			break
		}
	}

	return Cube{Axes: axes, Corners: corners, Points: points, Visible: visible}, true
}

// subsets enumerates every subset of axes, smallest first.
func subsets(axes []int) [][]int {
	n := len(axes)
	out := make([][]int, 0, 1<<n)
	for mask := 0; mask < 1<<n; mask++ {
		var s []int
		for i, a := range axes {
			if mask&(1<<i) != 0 {
				s = append(s, a)
			}
		}
		out = append(out, s)
	}

	return out
}

func encodeCoord(coord Coordinate) string {
	parts := make([]string, len(coord))
	for i, si := range coord {
		parts[i] = si.String()
	}

	return strings.Join(parts, "/")
}
