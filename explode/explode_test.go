package explode_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globular-cat/homotopy/common"
	"github.com/globular-cat/homotopy/diagram"
	"github.com/globular-cat/homotopy/explode"
	"github.com/globular-cat/homotopy/rewrite"
	"github.com/globular-cat/homotopy/scaffold"
)

func g(id int) common.Generator { return common.NewGenerator(id, 0) }

// oneCospanDiagram builds a 1-diagram g1 -f-> apex <-b- g2 (one singular
// height) so its explosion is easy to reason about by hand.
func oneCospanDiagram(t *testing.T) *diagram.DiagramN {
	t.Helper()
	src := diagram.NewDiagram0(g(1))
	cs := rewrite.Cospan{
		Forward:  rewrite.NewRewrite0(g(1), g(10), nil),
		Backward: rewrite.NewRewrite0(g(2), g(10), nil),
	}
	d, err := diagram.NewDiagramN(src, []rewrite.Cospan{cs})
	require.NoError(t, err)

	return d
}

// identityNodeKey keeps every slot, tagging each with its SliceIndex so
// tests can tell slots apart without needing coordinate bookkeeping.
func identityNodeKey(si common.SliceIndex, _ common.SliceIndex) (common.SliceIndex, bool) {
	return si, true
}

func identityEdgeKey(origin explode.Origin, _ *explode.Origin) (explode.Origin, bool) {
	return origin, true
}

func TestExplodeNodeProducesAllSlotsForSingleCospan(t *testing.T) {
	d := oneCospanDiagram(t)

	g0 := scaffold.NewGraph[int, int]()
	g0.AddNode(0, d)

	out, slices, err := explode.Explode(g0, func(si common.SliceIndex, parent int) (int, bool) {
		return 0, true
	}, func(explode.Origin, *int) (int, bool) { return 0, true })
	require.NoError(t, err)

	slots := slices[1]
	// Source, Regular(0), Singular(0), Regular(1), Target: five slots.
	require.Len(t, slots, 5)
	for _, id := range slots {
		assert.NotZero(t, id)
	}
	assert.Equal(t, 5, out.NodeCount())
}

func TestExplodeNodeInternalEdgesLinkConsecutiveSlots(t *testing.T) {
	d := oneCospanDiagram(t)

	g0 := scaffold.NewGraph[common.SliceIndex, explode.Origin]()
	g0.AddNode(common.SliceIndex{}, d)

	out, slices, err := explode.Explode(g0, identityNodeKey, identityEdgeKey)
	require.NoError(t, err)

	slots := slices[1]
	src, reg0, sing0, reg1, tgt := slots[0], slots[1], slots[2], slots[3], slots[4]

	_, ok := out.FindEdge(src, reg0)
	assert.True(t, ok, "source slot should have an internal identity edge into Regular(0)")

	_, ok = out.FindEdge(reg0, sing0)
	assert.True(t, ok, "Regular(0) should have a forward-leg edge into Singular(0)")

	_, ok = out.FindEdge(reg1, sing0)
	assert.True(t, ok, "Regular(1) should have a backward-leg edge into Singular(0)")

	_, ok = out.FindEdge(tgt, reg1)
	assert.True(t, ok, "target slot should have an internal identity edge into Regular(1)")
}

func TestExplodeEdgeSparseIdentitiesBetweenUntouchedBoundaries(t *testing.T) {
	src := oneCospanDiagram(t)
	tgt := oneCospanDiagram(t)

	g0 := scaffold.NewGraph[common.SliceIndex, explode.Origin]()
	srcID := g0.AddNode(common.SliceIndex{}, src)
	tgtID := g0.AddNode(common.SliceIndex{}, tgt)
	g0.AddEdge(srcID, tgtID, explode.Origin{}, rewrite.Identity(1))

	out, slices, err := explode.Explode(g0, identityNodeKey, identityEdgeKey)
	require.NoError(t, err)

	srcSlots, tgtSlots := slices[srcID], slices[tgtID]

	_, ok := out.FindEdge(srcSlots[0], tgtSlots[0])
	assert.True(t, ok, "corresponding source boundary slots should be linked by a sparse identity")

	_, ok = out.FindEdge(srcSlots[4], tgtSlots[4])
	assert.True(t, ok, "corresponding target boundary slots should be linked by a sparse identity")
}

func TestExplodeRejectsZeroDimensionalNodes(t *testing.T) {
	g0 := scaffold.NewGraph[int, int]()
	g0.AddNode(0, diagram.NewDiagram0(g(1)))

	_, _, err := explode.Explode(g0, func(si common.SliceIndex, parent int) (int, bool) {
		return 0, true
	}, func(explode.Origin, *int) (int, bool) { return 0, true })
	require.Error(t, err)
	var dimErr *common.DimensionError
	assert.ErrorAs(t, err, &dimErr)
}

func TestBuildSliceGraphTracksCoordinates(t *testing.T) {
	d := oneCospanDiagram(t)

	out, err := explode.BuildSliceGraph(d, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, out.NodeCount())

	seen := map[string]bool{}
	for _, id := range out.Nodes() {
		key, _, _ := out.Node(id)
		seen[fmt.Sprintf("%v", key)] = true
	}
	assert.Len(t, seen, 3, "every interior slot should carry a distinct coordinate")
}
