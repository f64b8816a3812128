package scaffold

import (
	"sort"
	"sync"

	"github.com/globular-cat/homotopy/diagram"
	"github.com/globular-cat/homotopy/rewrite"
)

// NodeID stably identifies a node across its Graph's lifetime: ids are
// never reused, so removing other nodes or edges never invalidates a
// surviving NodeID.
type NodeID uint64

// EdgeID stably identifies an edge, with the same non-reuse guarantee as
// NodeID.
type EdgeID uint64

type nodeEntry[NK any] struct {
	key     NK
	diagram diagram.Diagram
}

type edgeEntry[EK any] struct {
	key      EK
	from, to NodeID
	rewrite  rewrite.Rewrite
}

// Graph is a stable, labelled directed multigraph whose node weight is
// (key, diagram) and edge weight is (key, rewrite). NK and EK are the
// caller-chosen key types (coordinates during explosion, "one or many"
// coordinate sets during collapse, etc).
type Graph[NK any, EK any] struct {
	muVert    sync.RWMutex // guards nodes and nextNode
	muEdgeAdj sync.RWMutex // guards edges, nextEdge, out and in

	nextNode uint64
	nextEdge uint64

	nodes map[NodeID]*nodeEntry[NK]
	edges map[EdgeID]*edgeEntry[EK]

	out map[NodeID]map[EdgeID]struct{}
	in  map[NodeID]map[EdgeID]struct{}
}

// NewGraph constructs an empty scaffold.
func NewGraph[NK any, EK any]() *Graph[NK, EK] {
	return &Graph[NK, EK]{
		nodes: make(map[NodeID]*nodeEntry[NK]),
		edges: make(map[EdgeID]*edgeEntry[EK]),
		out:   make(map[NodeID]map[EdgeID]struct{}),
		in:    make(map[NodeID]map[EdgeID]struct{}),
	}
}

// AddNode inserts a node carrying key and d, returning its stable id.
func (g *Graph[NK, EK]) AddNode(key NK, d diagram.Diagram) NodeID {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	g.nextNode++
	id := NodeID(g.nextNode)
	g.nodes[id] = &nodeEntry[NK]{key: key, diagram: d}

	g.muEdgeAdj.Lock()
	g.out[id] = make(map[EdgeID]struct{})
	g.in[id] = make(map[EdgeID]struct{})
	g.muEdgeAdj.Unlock()

	return id
}

// AddEdge inserts an edge src->dst carrying key and r, returning its
// stable id. Both endpoints must already exist.
func (g *Graph[NK, EK]) AddEdge(src, dst NodeID, key EK, r rewrite.Rewrite) EdgeID {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	g.nextEdge++
	id := EdgeID(g.nextEdge)
	g.edges[id] = &edgeEntry[EK]{key: key, from: src, to: dst, rewrite: r}
	g.out[src][id] = struct{}{}
	g.in[dst][id] = struct{}{}

	return id
}

// RemoveNode deletes a node and every edge incident to it. Surviving ids
// are unaffected. Reports whether the node existed.
func (g *Graph[NK, EK]) RemoveNode(id NodeID) bool {
	g.muVert.Lock()
	if _, ok := g.nodes[id]; !ok {
		g.muVert.Unlock()

		return false
	}
	delete(g.nodes, id)
	g.muVert.Unlock()

	g.muEdgeAdj.Lock()
	for e := range g.out[id] {
		g.removeEdgeLocked(e)
	}
	for e := range g.in[id] {
		g.removeEdgeLocked(e)
	}
	delete(g.out, id)
	delete(g.in, id)
	g.muEdgeAdj.Unlock()

	return true
}

// RemoveEdge deletes an edge. Surviving ids are unaffected. Reports
// whether the edge existed.
func (g *Graph[NK, EK]) RemoveEdge(id EdgeID) bool {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.edges[id]; !ok {
		return false
	}
	g.removeEdgeLocked(id)

	return true
}

// removeEdgeLocked assumes muEdgeAdj is already held.
func (g *Graph[NK, EK]) removeEdgeLocked(id EdgeID) {
	e, ok := g.edges[id]
	if !ok {
		return
	}
	delete(g.edges, id)
	delete(g.out[e.from], id)
	delete(g.in[e.to], id)
}

// Node returns the key and diagram stored at id.
func (g *Graph[NK, EK]) Node(id NodeID) (NK, diagram.Diagram, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		var zero NK

		return zero, nil, false
	}

	return n.key, n.diagram, true
}

// SetNodeKey overwrites the key stored at id, used by collapse to merge
// surviving nodes' "one or many" coordinate sets in place.
func (g *Graph[NK, EK]) SetNodeKey(id NodeID, key NK) bool {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return false
	}
	n.key = key

	return true
}

// Edge returns the key, endpoints and rewrite stored at id.
func (g *Graph[NK, EK]) Edge(id EdgeID) (key EK, from, to NodeID, r rewrite.Rewrite, ok bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		var zero EK

		return zero, 0, 0, nil, false
	}

	return e.key, e.from, e.to, e.rewrite, true
}

// Nodes returns every live node id, sorted for deterministic iteration.
func (g *Graph[NK, EK]) Nodes() []NodeID {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Edges returns every live edge id, sorted for deterministic iteration.
func (g *Graph[NK, EK]) Edges() []EdgeID {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	ids := make([]EdgeID, 0, len(g.edges))
	for id := range g.edges {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// OutEdges returns the ids of edges leaving id, sorted for deterministic
// iteration.
func (g *Graph[NK, EK]) OutEdges(id NodeID) []EdgeID {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := g.out[id]
	ids := make([]EdgeID, 0, len(out))
	for e := range out {
		ids = append(ids, e)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// InEdges returns the ids of edges arriving at id, sorted for deterministic
// iteration.
func (g *Graph[NK, EK]) InEdges(id NodeID) []EdgeID {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	in := g.in[id]
	ids := make([]EdgeID, 0, len(in))
	for e := range in {
		ids = append(ids, e)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// FindEdge returns one edge src->dst, if any exists.
func (g *Graph[NK, EK]) FindEdge(src, dst NodeID) (EdgeID, bool) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for e := range g.out[src] {
		if g.edges[e].to == dst {
			return e, true
		}
	}

	return 0, false
}

// EdgesConnecting returns every edge src->dst, sorted for deterministic
// iteration.
func (g *Graph[NK, EK]) EdgesConnecting(src, dst NodeID) []EdgeID {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var ids []EdgeID
	for e := range g.out[src] {
		if g.edges[e].to == dst {
			ids = append(ids, e)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// NodeCount reports the number of live nodes.
func (g *Graph[NK, EK]) NodeCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.nodes)
}
