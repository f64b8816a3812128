package contract

import (
	"sort"

	"github.com/globular-cat/homotopy/common"
	"github.com/globular-cat/homotopy/diagram"
	"github.com/globular-cat/homotopy/explode"
	"github.com/globular-cat/homotopy/scaffold"
)

// sliceKey is the exploded node key: which input diagram this slice came
// from, and which slice index of that diagram it is.
type sliceKey struct {
	Parent scaffold.NodeID
	SI     common.SliceIndex
}

// deltaEdgeInfo classifies one exploded edge for the purposes of building
// Δ: whether it is one of a diagram's own cospan legs (Internal, at a given
// source singular height and direction), a slice between singular heights
// of two input diagrams (SingularSlice or Sparse, both of which link
// singular heights that must be identified), or neither (a RegularSlice
// "flange" edge, which is not part of Δ).
type deltaEdgeInfo struct {
	isInternal      bool
	isSingularSlice bool
	height          int
	dir             common.Direction
}

// explodedGraph is the result of exploding a Graph one dimension down,
// along with the per-edge Δ classification and per-node parent lookup
// needed to build Δ itself and, later, each recursive subproblem.
type explodedGraph struct {
	out          *scaffold.Graph[sliceKey, explode.Origin]
	nodeToSlices map[scaffold.NodeID][]scaffold.NodeID
	info         map[scaffold.EdgeID]deltaEdgeInfo
}

func explodeGraph(gr *Graph) (*explodedGraph, error) {
	nodeKey := func(si common.SliceIndex, parent sliceKey) (sliceKey, bool) {
		if si.IsBoundary() {
			return sliceKey{}, false
		}

		return sliceKey{Parent: parent.Parent, SI: si}, true
	}
	edgeKey := func(origin explode.Origin, _ *explode.Origin) (explode.Origin, bool) {
		return origin, true
	}

	out, nodeToSlices, err := explode.Explode(gr.g, nodeKey, edgeKey)
	if err != nil {
		return nil, err
	}

	info := make(map[scaffold.EdgeID]deltaEdgeInfo, len(out.Edges()))
	for _, eid := range out.Edges() {
		origin, src, dst, _, _ := out.Edge(eid)
		switch origin.Kind {
		case explode.Internal:
			srcKey, _, _ := out.Node(src)
			dstKey, _, _ := out.Node(dst)
			dir := common.Forward
			if srcKey.SI.Height().Index != dstKey.SI.Height().Index {
				dir = common.Backward
			}
			info[eid] = deltaEdgeInfo{isInternal: true, height: dstKey.SI.Height().Index, dir: dir}
		case explode.Sparse, explode.SingularSlice:
			info[eid] = deltaEdgeInfo{isSingularSlice: true}
		default: // explode.RegularSlice: not part of Δ
			info[eid] = deltaEdgeInfo{}
		}
	}

	return &explodedGraph{out: out, nodeToSlices: nodeToSlices, info: info}, nil
}

// buildDelta constructs Δ: a node per singular height of the input graph's
// sink diagrams, and edges ordering heights from the same sink, plus
// bidirectional edges linking heights of different sinks connected by a
// span in the exploded graph.
func buildDelta(gr *Graph, eg *explodedGraph) (nodes map[scaffold.NodeID]bool, adj map[scaffold.NodeID][]scaffold.NodeID) {
	nodes = make(map[scaffold.NodeID]bool)
	edgeSet := make(map[[2]scaffold.NodeID]bool)

	addNode := func(id scaffold.NodeID) { nodes[id] = true }
	addEdge := func(a, b scaffold.NodeID) {
		nodes[a], nodes[b] = true, true
		edgeSet[[2]scaffold.NodeID{a, b}] = true
	}

	for _, n := range gr.Nodes() {
		if !gr.IsSink(n) {
			continue
		}
		slots := eg.nodeToSlices[n]
		d, _ := gr.Node(n)
		dn, ok := d.(*diagram.DiagramN)
		if !ok {
			continue
		}
		size := dn.Size()
		if size == 0 {
			continue
		}
		if size == 1 {
			addNode(slots[common.Singular(0).LinearIndex()+1])

			continue
		}
		var singulars []scaffold.NodeID
		for k := 0; k < size; k++ {
			id := slots[common.Singular(k).LinearIndex()+1]
			if id != 0 {
				singulars = append(singulars, id)
			}
		}
		for i := 0; i+1 < len(singulars); i++ {
			addEdge(singulars[i], singulars[i+1])
		}
	}

	type edgeRef struct {
		id       scaffold.EdgeID
		src, dst scaffold.NodeID
	}
	var sliceEdges []edgeRef
	for _, eid := range eg.out.Edges() {
		if eg.info[eid].isSingularSlice {
			_, src, dst, _, _ := eg.out.Edge(eid)
			sliceEdges = append(sliceEdges, edgeRef{eid, src, dst})
		}
	}
	bySrc := make(map[scaffold.NodeID][]edgeRef, len(sliceEdges))
	for _, e := range sliceEdges {
		bySrc[e.src] = append(bySrc[e.src], e)
	}
	for _, r := range sliceEdges {
		for _, s := range bySrc[r.src] {
			if s.id <= r.id {
				continue
			}
			if nodes[r.dst] && nodes[s.dst] {
				addEdge(r.dst, s.dst)
				addEdge(s.dst, r.dst)
			}
		}
	}

	pairs := make([][2]scaffold.NodeID, 0, len(edgeSet))
	for pair := range edgeSet {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}

		return pairs[i][1] < pairs[j][1]
	})

	adj = make(map[scaffold.NodeID][]scaffold.NodeID, len(nodes))
	for _, pair := range pairs {
		adj[pair[0]] = append(adj[pair[0]], pair[1])
	}

	return nodes, adj
}
