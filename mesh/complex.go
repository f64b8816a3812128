package mesh

// triAssemblyOrder lists, for a 2-cube's four corners in binary-counting
// order (axis 0 the low bit: 0=(lo,lo), 1=(hi,lo), 2=(lo,hi), 3=(hi,hi)),
// the two triangles a renderer needs to cover the quad.
var triAssemblyOrder = [2][3]int{{0, 1, 3}, {0, 3, 2}}

// SimplexKind names which shape a Simplex holds.
type SimplexKind int

const (
	// Point is a single vertex.
	Point SimplexKind = iota
	// Wire is an edge between two vertices.
	Wire
	// Surface is a triangle between three vertices.
	Surface
)

// Simplex is one renderable piece of a Complex: a point, wire, or
// triangle, carrying the mesh coordinates of its corners.
type Simplex struct {
	Kind    SimplexKind
	Corners []Coordinate
	Visible bool
}

// Complex is a thin triangulation of a Mesh: every cube of dimension 0, 1,
// or 2 rendered as a point, wire, or (for 2-cubes, split along
// triAssemblyOrder) up to two triangles. Cubes of higher dimension have no
// direct renderable form and are omitted.
type Complex struct {
	Simplices []Simplex
}

// BuildComplex triangulates every cube m.Cubes() produces.
func BuildComplex(m *Mesh) *Complex {
	c := &Complex{}
	for _, cube := range m.Cubes() {
		switch cube.Dimension() {
		case 0:
			c.Simplices = append(c.Simplices, Simplex{Kind: Point, Corners: []Coordinate{cube.Corners[0]}, Visible: cube.Visible})
		case 1:
			c.Simplices = append(c.Simplices, Simplex{Kind: Wire, Corners: []Coordinate{cube.Corners[0], cube.Corners[1]}, Visible: cube.Visible})
		case 2:
			for _, tri := range triAssemblyOrder {
				a, b, cc := cube.Corners[tri[0]], cube.Corners[tri[1]], cube.Corners[tri[2]]
				if encodeCoord(a) == encodeCoord(b) || encodeCoord(b) == encodeCoord(cc) || encodeCoord(a) == encodeCoord(cc) {
					continue
				}
				c.Simplices = append(c.Simplices, Simplex{Kind: Surface, Corners: []Coordinate{a, b, cc}, Visible: cube.Visible})
			}
		}
	}

	return c
}

// Visible filters a Complex's simplices down to the visible ones.
func (c *Complex) Visible() []Simplex {
	out := make([]Simplex, 0, len(c.Simplices))
	for _, s := range c.Simplices {
		if s.Visible {
			out = append(out, s)
		}
	}

	return out
}
