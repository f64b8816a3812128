package scaffold

import (
	"github.com/globular-cat/homotopy/diagram"
	"github.com/globular-cat/homotopy/rewrite"
)

// Map produces a parallel graph with every node and edge value passed
// through nodeFn/edgeFn, preserving topology and node/edge ids.
func Map[NK, EK, NK2, EK2 any](
	g *Graph[NK, EK],
	nodeFn func(NK, diagram.Diagram) (NK2, diagram.Diagram),
	edgeFn func(EK, rewrite.Rewrite) (EK2, rewrite.Rewrite),
) *Graph[NK2, EK2] {
	out := NewGraph[NK2, EK2]()

	for _, id := range g.Nodes() {
		key, d, _ := g.Node(id)
		nk, nd := nodeFn(key, d)
		out.nodes[id] = &nodeEntry[NK2]{key: nk, diagram: nd}
		out.out[id] = make(map[EdgeID]struct{})
		out.in[id] = make(map[EdgeID]struct{})
		if uint64(id) > out.nextNode {
			out.nextNode = uint64(id)
		}
	}

	for _, id := range g.Edges() {
		key, from, to, r, _ := g.Edge(id)
		ek, er := edgeFn(key, r)
		out.edges[id] = &edgeEntry[EK2]{key: ek, from: from, to: to, rewrite: er}
		out.out[from][id] = struct{}{}
		out.in[to][id] = struct{}{}
		if uint64(id) > out.nextEdge {
			out.nextEdge = uint64(id)
		}
	}

	return out
}
