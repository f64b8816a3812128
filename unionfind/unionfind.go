package unionfind

import "github.com/globular-cat/homotopy/scaffold"

// UnionFind is a disjoint-set over scaffold.NodeID with path compression
// and union by rank. The zero value is not usable; construct with New.
type UnionFind struct {
	parent map[scaffold.NodeID]scaffold.NodeID
	rank   map[scaffold.NodeID]int
}

// New constructs a UnionFind where every id in ids starts in its own
// singleton class.
func New(ids []scaffold.NodeID) *UnionFind {
	uf := &UnionFind{
		parent: make(map[scaffold.NodeID]scaffold.NodeID, len(ids)),
		rank:   make(map[scaffold.NodeID]int, len(ids)),
	}
	for _, id := range ids {
		uf.parent[id] = id
	}

	return uf
}

// Find returns the representative of id's class, compressing the path
// from id to the root as it walks up. Panics if id was never registered.
func (uf *UnionFind) Find(id scaffold.NodeID) scaffold.NodeID {
	if _, ok := uf.parent[id]; !ok {
		panic("unionfind: Find of unregistered id")
	}
	root := id
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for id != root {
		next := uf.parent[id]
		uf.parent[id] = root
		id = next
	}

	return root
}

// Union merges the classes of a and b, returning the surviving
// representative. If a and b are already in the same class, it is
// returned unchanged and no structural change occurs.
func (uf *UnionFind) Union(a, b scaffold.NodeID) scaffold.NodeID {
	ra, rb := uf.Find(a), uf.Find(b)
	if ra == rb {
		return ra
	}

	switch {
	case uf.rank[ra] < uf.rank[rb]:
		uf.parent[ra] = rb

		return rb
	case uf.rank[ra] > uf.rank[rb]:
		uf.parent[rb] = ra

		return ra
	default:
		uf.parent[rb] = ra
		uf.rank[ra]++

		return ra
	}
}

// Connected reports whether a and b are in the same class.
func (uf *UnionFind) Connected(a, b scaffold.NodeID) bool {
	return uf.Find(a) == uf.Find(b)
}

// Classes groups every registered id by representative.
func (uf *UnionFind) Classes() map[scaffold.NodeID][]scaffold.NodeID {
	classes := make(map[scaffold.NodeID][]scaffold.NodeID)
	for id := range uf.parent {
		r := uf.Find(id)
		classes[r] = append(classes[r], id)
	}

	return classes
}
