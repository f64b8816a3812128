package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globular-cat/homotopy/common"
	"github.com/globular-cat/homotopy/rewrite"
)

func g(id int) common.Generator { return common.NewGenerator(id, 0) }

func TestFromGeneratorDimensionZero(t *testing.T) {
	src := NewDiagram0(g(1))
	tgt := NewDiagram0(g(2))

	d, err := FromGenerator(g(3), src, tgt)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Dimension())
	assert.Equal(t, 1, d.Size())
}

func TestSlicesLawSizeAndAlternation(t *testing.T) {
	src := NewDiagram0(g(1))
	tgt := NewDiagram0(g(2))
	d, err := FromGenerator(g(3), src, tgt)
	require.NoError(t, err)

	slices := d.Slices()
	assert.Len(t, slices, 2*d.Size()+1)

	assert.Equal(t, g(1), slices[0].(*Diagram0).Generator())
	assert.Equal(t, g(3), slices[1].(*Diagram0).Generator())
	assert.Equal(t, g(2), slices[2].(*Diagram0).Generator())
}

func TestRewriteForwardIncompatible(t *testing.T) {
	d0 := NewDiagram0(g(1))
	r := rewrite.NewRewrite0(g(9), g(10), nil)

	_, err := RewriteForward(d0, r)
	require.Error(t, err)
}

func TestRewriteForwardIdentity(t *testing.T) {
	d0 := NewDiagram0(g(1))
	out, err := RewriteForward(d0, rewrite.Identity(0))
	require.NoError(t, err)
	assert.Same(t, Diagram(d0), out)
}

// A two-cospan diagram g1 -f0-> a <-b0- g2 -f1-> b <-b1- g3 whose two
// singular cells carry generators g10 and g11, collapsed by a cone spanning
// both into one target cospan g1 -f-> apex <-b- g3.
func twoCospanDiagram(t *testing.T) *DiagramN {
	t.Helper()
	src := NewDiagram0(g(1))
	cs0 := rewrite.Cospan{Forward: rewrite.NewRewrite0(g(1), g(10), nil), Backward: rewrite.NewRewrite0(g(2), g(10), nil)}
	cs1 := rewrite.Cospan{Forward: rewrite.NewRewrite0(g(2), g(11), nil), Backward: rewrite.NewRewrite0(g(3), g(11), nil)}
	d, err := NewDiagramN(src, []rewrite.Cospan{cs0, cs1})
	require.NoError(t, err)

	return d
}

func TestRewriteForwardAndBackwardRoundTripThroughCone(t *testing.T) {
	d := twoCospanDiagram(t)

	target := rewrite.Cospan{Forward: rewrite.NewRewrite0(g(1), g(20), nil), Backward: rewrite.NewRewrite0(g(3), g(20), nil)}
	cone := rewrite.NewCone(0, d.Cospans(),
		target,
		[]rewrite.Rewrite{rewrite.Identity(0), rewrite.Identity(0), rewrite.Identity(0)},
		[]rewrite.Rewrite{rewrite.NewRewrite0(g(10), g(20), nil), rewrite.NewRewrite0(g(11), g(20), nil)},
	)
	r := rewrite.NewRewriteN(1, []rewrite.Cone{cone})

	out, err := RewriteForward(d, r)
	require.NoError(t, err)
	dn := out.(*DiagramN)
	require.Equal(t, 1, dn.Size())
	assert.Equal(t, target, dn.Cospans()[0])

	back, err := RewriteBackward(out, r)
	require.NoError(t, err)
	assert.Equal(t, d.Cospans(), back.(*DiagramN).Cospans())
}
