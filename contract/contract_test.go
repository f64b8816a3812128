package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globular-cat/homotopy/attach"
	"github.com/globular-cat/homotopy/common"
	"github.com/globular-cat/homotopy/diagram"
	"github.com/globular-cat/homotopy/rewrite"
	"github.com/globular-cat/homotopy/scaffold"
)

func g(id int) common.Generator { return common.NewGenerator(id, 0) }

func TestBiasFlip(t *testing.T) {
	assert.Equal(t, Lower, Higher.Flip())
	assert.Equal(t, Higher, Lower.Flip())
	assert.Equal(t, Same, Same.Flip())
}

func TestCollapseGraphEmptyIsInvalid(t *testing.T) {
	gr := NewGraph()
	_, err := CollapseGraph(gr)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCollapseBaseUnifiesIdentityChain(t *testing.T) {
	gr := NewGraph()
	n0 := gr.AddNode(diagram.NewDiagram0(g(1)), nil)
	n1 := gr.AddNode(diagram.NewDiagram0(g(1)), nil)
	n2 := gr.AddNode(diagram.NewDiagram0(g(1)), nil)
	gr.AddEdge(n0, n1, rewrite.NewRewrite0(g(1), g(1), nil))
	gr.AddEdge(n1, n2, rewrite.NewRewrite0(g(1), g(1), nil))

	cocone, err := CollapseGraph(gr)
	require.NoError(t, err)

	d0, ok := cocone.Colimit.(*diagram.Diagram0)
	require.True(t, ok)
	assert.Equal(t, g(1), d0.Generator())

	for _, id := range []scaffold.NodeID{n0, n1, n2} {
		leg, ok := cocone.Legs[id].(*rewrite.Rewrite0)
		require.True(t, ok)
		assert.True(t, leg.IsIdentity())
	}
}

// threeCospanDiagram builds the 1-diagram g1 -id-> g1 <-id- g1 -id-> g1 <-id-
// g1, i.e. three identity cospans over a single generator throughout: every
// regular and singular slice carries the same generator, so contractBase's
// bowtie colimit unifies trivially.
func threeCospanDiagram(t *testing.T) *diagram.DiagramN {
	t.Helper()
	src := diagram.NewDiagram0(g(1))
	id := func() rewrite.Cospan {
		return rewrite.Cospan{Forward: rewrite.NewRewrite0(g(1), g(1), nil), Backward: rewrite.NewRewrite0(g(1), g(1), nil)}
	}
	d, err := diagram.NewDiagramN(src, []rewrite.Cospan{id(), id(), id()})
	require.NoError(t, err)

	return d
}

func TestContractBaseMergesAdjacentCospans(t *testing.T) {
	d := threeCospanDiagram(t)

	r, err := contractBase(d, 0, nil, rewrite.DefaultLabelEquiv)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Dimension())
	require.Len(t, r.Cones(), 1)
	c := r.Cones()[0]
	assert.Equal(t, 0, c.Index)
	assert.Equal(t, 2, c.Width())
}

func TestContractBaseHeightOutOfRange(t *testing.T) {
	d := threeCospanDiagram(t)

	_, err := contractBase(d, 5, nil, rewrite.DefaultLabelEquiv)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = contractBase(d, -1, nil, rewrite.DefaultLabelEquiv)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestContractInPathRegularStepWrapsZeroWidth(t *testing.T) {
	inner := threeCospanDiagram(t)
	outer, err := diagram.NewDiagramN(inner, []rewrite.Cospan{{Forward: rewrite.Identity(1), Backward: rewrite.Identity(1)}})
	require.NoError(t, err)

	r, err := contractInPath(outer, []common.Height{common.Regular(0)}, 0, nil, rewrite.DefaultLabelEquiv)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Dimension())
	require.Len(t, r.Cones(), 1)
	assert.Equal(t, 0, r.Cones()[0].Width())
}

func TestContractInPathSingularStepComposesCospanLegs(t *testing.T) {
	inner := threeCospanDiagram(t)
	outer, err := diagram.NewDiagramN(inner, []rewrite.Cospan{{Forward: rewrite.Identity(1), Backward: rewrite.Identity(1)}})
	require.NoError(t, err)

	r, err := contractInPath(outer, []common.Height{common.Singular(0)}, 0, nil, rewrite.DefaultLabelEquiv)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Dimension())
	require.Len(t, r.Cones(), 1)
	c := r.Cones()[0]
	assert.Equal(t, 0, c.Index)
	assert.Equal(t, 1, c.Width())
}

func TestContractEndToEndShrinksCospanCount(t *testing.T) {
	d := threeCospanDiagram(t)

	out, err := Contract(d, attach.NewBoundaryPath(common.Target, 0), nil, 0, nil)
	require.NoError(t, err)
	dn, ok := out.(*diagram.DiagramN)
	require.True(t, ok)
	assert.Equal(t, 2, dn.Size())
	assert.Same(t, d.Source(), dn.Source())
}

func TestContractInteriorPathInvalidStepIsInvalid(t *testing.T) {
	d := threeCospanDiagram(t)

	_, err := contractInPath(d, []common.Height{common.Singular(9)}, 0, nil, rewrite.DefaultLabelEquiv)
	assert.ErrorIs(t, err, ErrInvalid)
}
