package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globular-cat/homotopy/common"
	"github.com/globular-cat/homotopy/diagram"
	"github.com/globular-cat/homotopy/rewrite"
)

func g(id int) common.Generator { return common.NewGenerator(id, 0) }

// chainDiagram builds a 1-diagram of n identity cospans over a single
// generator: g1 -id-> g1 <-id- g1 -id-> ... <-id- g1, n times.
func chainDiagram(t *testing.T, n int) *diagram.DiagramN {
	t.Helper()
	src := diagram.NewDiagram0(g(1))
	cospans := make([]rewrite.Cospan, n)
	for i := range cospans {
		cospans[i] = rewrite.Cospan{
			Forward:  rewrite.NewRewrite0(g(1), g(1), nil),
			Backward: rewrite.NewRewrite0(g(1), g(1), nil),
		}
	}
	d, err := diagram.NewDiagramN(src, cospans)
	require.NoError(t, err)

	return d
}

func TestNewRejectsTooDeep(t *testing.T) {
	d := chainDiagram(t, 3)
	_, err := New(d, 2)
	assert.Error(t, err)
}

func TestPointsCoverEveryInteriorHeight(t *testing.T) {
	d := chainDiagram(t, 3)
	m, err := New(d, 1)
	require.NoError(t, err)

	points := m.Points()
	assert.Len(t, points, 7) // Regular(0..3), Singular(0..2)

	seen := make(map[string]bool, len(points))
	for _, p := range points {
		assert.Len(t, p.Coord, 1)
		seen[encodeCoord(p.Coord)] = true
	}
	assert.Len(t, seen, 7)
}

func TestCubesEnumeratesPointsAndEdges(t *testing.T) {
	d := chainDiagram(t, 3)
	m, err := New(d, 1)
	require.NoError(t, err)

	cubes := m.Cubes()

	var zero, one int
	var zeroVisible, oneVisible int
	for _, c := range cubes {
		switch c.Dimension() {
		case 0:
			zero++
			require.Len(t, c.Corners, 1)
			if c.Visible {
				zeroVisible++
			}
		case 1:
			one++
			require.Len(t, c.Corners, 2)
			if c.Visible {
				oneVisible++
			}
		default:
			t.Fatalf("unexpected cube dimension %d", c.Dimension())
		}
	}

	assert.Equal(t, 7, zero) // one 0-cube per point
	assert.Equal(t, 3, one)  // one 1-cube per cospan
	assert.Equal(t, 3, zeroVisible) // the three singular heights
	assert.Equal(t, 3, oneVisible)  // every regular-regular span is visible
}

func TestBuildComplexMatchesCubeCounts(t *testing.T) {
	d := chainDiagram(t, 3)
	m, err := New(d, 1)
	require.NoError(t, err)

	complex := BuildComplex(m)

	var points, wires int
	for _, s := range complex.Simplices {
		switch s.Kind {
		case Point:
			points++
		case Wire:
			wires++
		case Surface:
			t.Fatalf("unexpected surface simplex from a depth-1 mesh")
		}
	}
	assert.Equal(t, 7, points)
	assert.Equal(t, 3, wires)

	visible := complex.Visible()
	assert.Len(t, visible, 6)
}

func TestSubsetsIncludesEmptyAndFull(t *testing.T) {
	s := subsets([]int{0, 1})
	assert.Len(t, s, 4)
	assert.Empty(t, s[0])
	assert.ElementsMatch(t, []int{0, 1}, s[3])
}
