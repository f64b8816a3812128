package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globular-cat/homotopy/common"
	"github.com/globular-cat/homotopy/diagram"
	"github.com/globular-cat/homotopy/rewrite"
)

func gen(id int) common.Generator { return common.NewGenerator(id, 0) }

func TestAddNodeAddEdgeAndLookup(t *testing.T) {
	g := NewGraph[string, string]()
	a := g.AddNode("a", diagram.NewDiagram0(gen(1)))
	b := g.AddNode("b", diagram.NewDiagram0(gen(2)))
	e := g.AddEdge(a, b, "a->b", rewrite.NewRewrite0(gen(1), gen(2), nil))

	key, d, ok := g.Node(a)
	require.True(t, ok)
	assert.Equal(t, "a", key)
	assert.Equal(t, gen(1), d.(*diagram.Diagram0).Generator())

	found, ok := g.FindEdge(a, b)
	require.True(t, ok)
	assert.Equal(t, e, found)
}

func TestRemoveNodeIsStableForSurvivors(t *testing.T) {
	g := NewGraph[string, string]()
	a := g.AddNode("a", diagram.NewDiagram0(gen(1)))
	b := g.AddNode("b", diagram.NewDiagram0(gen(2)))
	c := g.AddNode("c", diagram.NewDiagram0(gen(3)))
	g.AddEdge(a, b, "a->b", rewrite.NewRewrite0(gen(1), gen(2), nil))
	g.AddEdge(b, c, "b->c", rewrite.NewRewrite0(gen(2), gen(3), nil))

	assert.True(t, g.RemoveNode(b))

	_, _, ok := g.Node(a)
	assert.True(t, ok, "a survives removal of b with its id unchanged")
	_, _, ok = g.Node(c)
	assert.True(t, ok)

	assert.Empty(t, g.Edges(), "edges incident to the removed node are gone")
	assert.False(t, g.RemoveNode(b), "removing an already-removed node reports false")
}

func TestEdgesConnectingMultiEdge(t *testing.T) {
	g := NewGraph[string, string]()
	a := g.AddNode("a", diagram.NewDiagram0(gen(1)))
	b := g.AddNode("b", diagram.NewDiagram0(gen(2)))
	e1 := g.AddEdge(a, b, "e1", rewrite.NewRewrite0(gen(1), gen(2), nil))
	e2 := g.AddEdge(a, b, "e2", rewrite.NewRewrite0(gen(1), gen(2), "x"))

	conns := g.EdgesConnecting(a, b)
	assert.ElementsMatch(t, []EdgeID{e1, e2}, conns)
}

func TestMapTransformsNodesAndEdges(t *testing.T) {
	g := NewGraph[string, string]()
	a := g.AddNode("a", diagram.NewDiagram0(gen(1)))
	b := g.AddNode("b", diagram.NewDiagram0(gen(2)))
	g.AddEdge(a, b, "a->b", rewrite.NewRewrite0(gen(1), gen(2), nil))

	mapped := Map[string, string, int, int](g,
		func(k string, d diagram.Diagram) (int, diagram.Diagram) { return len(k), d },
		func(k string, r rewrite.Rewrite) (int, rewrite.Rewrite) { return len(k), r },
	)

	key, _, ok := mapped.Node(a)
	require.True(t, ok)
	assert.Equal(t, 1, key)
	assert.Equal(t, 2, mapped.NodeCount())
}
