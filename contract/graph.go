package contract

import (
	"github.com/globular-cat/homotopy/diagram"
	"github.com/globular-cat/homotopy/explode"
	"github.com/globular-cat/homotopy/rewrite"
	"github.com/globular-cat/homotopy/scaffold"
)

// Graph is a small labelled graph of same-dimension diagrams and rewrites
// between them: the input to CollapseGraph's colimit construction, and the
// shape contractBase and each recursive subproblem build. Node keys are
// self-keyed sliceKeys (Parent == the node's own id, SI unused at this
// level) purely so the underlying scaffold can be handed directly to
// explode.Explode, whose slice key function needs a parent to tag each
// slot with; edge keys carry explode.Origin so explodeGraph can recover
// it, and are otherwise meaningless at this (un-exploded) level.
type Graph struct {
	g    *scaffold.Graph[sliceKey, explode.Origin]
	bias map[scaffold.NodeID]Bias
}

// NewGraph constructs an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		g:    scaffold.NewGraph[sliceKey, explode.Origin](),
		bias: make(map[scaffold.NodeID]Bias),
	}
}

// AddNode inserts d, optionally carrying a bias used to break linearization
// ties further up the recursion. Returns the node's stable id.
func (gr *Graph) AddNode(d diagram.Diagram, bias *Bias) scaffold.NodeID {
	id := gr.g.AddNode(sliceKey{}, d)
	gr.g.SetNodeKey(id, sliceKey{Parent: id})
	if bias != nil {
		gr.bias[id] = *bias
	}

	return id
}

// AddEdge inserts a rewrite src -> dst.
func (gr *Graph) AddEdge(src, dst scaffold.NodeID, r rewrite.Rewrite) scaffold.EdgeID {
	return gr.g.AddEdge(src, dst, explode.Origin{}, r)
}

// Bias returns the bias recorded for id, if any.
func (gr *Graph) Bias(id scaffold.NodeID) (Bias, bool) {
	b, ok := gr.bias[id]

	return b, ok
}

// Nodes returns every node id, in ascending order.
func (gr *Graph) Nodes() []scaffold.NodeID { return gr.g.Nodes() }

// Node returns the diagram stored at id.
func (gr *Graph) Node(id scaffold.NodeID) (diagram.Diagram, bool) {
	_, d, ok := gr.g.Node(id)

	return d, ok
}

// Dimension reports the common dimension of every node's diagram, or -1 if
// the graph has no nodes.
func (gr *Graph) Dimension() int {
	for _, id := range gr.g.Nodes() {
		_, d, _ := gr.g.Node(id)

		return d.Dimension()
	}

	return -1
}

// IsSink reports whether id has no outgoing edges.
func (gr *Graph) IsSink(id scaffold.NodeID) bool {
	return len(gr.g.OutEdges(id)) == 0
}
