package collapse

import (
	"github.com/globular-cat/homotopy/common"
	"github.com/globular-cat/homotopy/diagram"
	"github.com/globular-cat/homotopy/rewrite"
	"github.com/globular-cat/homotopy/scaffold"
	"github.com/globular-cat/homotopy/unionfind"
)

// coordTree groups nodes by shared coordinate prefixes, so collapse can
// process independent subtrees before any shared ancestor: every node of
// a uniform-depth coordinate scaffold sits at a tree leaf, and collapse
// subproblems are solved bottom-up, leaves first, root last.
type coordTree struct {
	own      []scaffold.NodeID
	children map[string]*coordTree
	order    []string // insertion order of children keys, for determinism
}

func newCoordTree() *coordTree {
	return &coordTree{children: make(map[string]*coordTree)}
}

func coordKey(h common.Height) string { return h.String() }

func (t *coordTree) insert(coord Coord, id scaffold.NodeID) {
	cur := t
	for _, h := range coord {
		key := coordKey(h)
		child, ok := cur.children[key]
		if !ok {
			child = newCoordTree()
			cur.children[key] = child
			cur.order = append(cur.order, key)
		}
		cur = child
	}
	cur.own = append(cur.own, id)
}

// Collapse is the OneMany, keyed entry point: it wraps every node's key
// as a One-valued coordinate and calls CollapseStableWithEquiv with
// rewrite.DefaultLabelEquiv.
func Collapse[EK any](g *scaffold.Graph[Coord, EK]) (*scaffold.Graph[OneMany[Coord], EK], *unionfind.UnionFind, error) {
	return CollapseStableWithEquiv(g, rewrite.DefaultLabelEquiv)
}

// CollapseStableWithEquiv behaves like Collapse but lets the caller supply
// a non-default label equivalence (e.g. a signature's own LabelEquiv).
func CollapseStableWithEquiv[EK any](g *scaffold.Graph[Coord, EK], equiv rewrite.LabelEquiv) (*scaffold.Graph[OneMany[Coord], EK], *unionfind.UnionFind, error) {
	wrapped := scaffold.Map(g,
		func(key Coord, d diagram.Diagram) (OneMany[Coord], diagram.Diagram) {
			return One(key), d
		},
		func(key EK, r rewrite.Rewrite) (EK, rewrite.Rewrite) { return key, r },
	)

	uf, err := collapseStable(wrapped, equiv)
	if err != nil {
		return nil, nil, err
	}

	return wrapped, uf, nil
}

// collapseStable reduces wrapped in place along the collapsibility
// relation, returning the union-find whose classes name the quotient.
func collapseStable[EK any](g *scaffold.Graph[OneMany[Coord], EK], equiv rewrite.LabelEquiv) (*unionfind.UnionFind, error) {
	ids := g.Nodes()
	uf := unionfind.New(ids)

	tree := newCoordTree()
	for _, id := range ids {
		key, _, _ := g.Node(id)
		tree.insert(key.Coordinate(), id)
	}

	_, err := processSubtree(tree, g, uf, equiv)

	return uf, err
}

// processSubtree returns the surviving node ids belonging to tree's
// subtree, after recursively processing every child and then quotienting
// within this level.
func processSubtree[EK any](tree *coordTree, g *scaffold.Graph[OneMany[Coord], EK], uf *unionfind.UnionFind, equiv rewrite.LabelEquiv) ([]scaffold.NodeID, error) {
	if len(tree.children) == 0 {
		return tree.own, nil
	}

	var nodes []scaffold.NodeID
	for _, key := range tree.order {
		child := tree.children[key]
		sub, err := processSubtree(child, g, uf, equiv)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, sub...)
	}

	return collapseSubproblem(g, uf, nodes, equiv)
}

// collapseSubproblem finds every collapsible edge among nodes and unifies
// its endpoints, returning the surviving subset of nodes.
func collapseSubproblem[EK any](g *scaffold.Graph[OneMany[Coord], EK], uf *unionfind.UnionFind, nodes []scaffold.NodeID, equiv rewrite.LabelEquiv) ([]scaffold.NodeID, error) {
	in := make(map[scaffold.NodeID]bool, len(nodes))
	for _, n := range nodes {
		in[n] = true
	}

	type pair struct{ s, t scaffold.NodeID }
	var quotient []pair

	for _, eid := range g.Edges() {
		_, src, dst, r, _ := g.Edge(eid)
		if !in[src] || !in[dst] {
			continue
		}
		r0, err := zeroRewrite(r)
		if err != nil {
			return nil, err
		}
		if !r0.IsIdentity() {
			continue
		}
		ok, err := trianglesAgree(g, src, dst, equiv)
		if err != nil {
			return nil, err
		}
		if ok {
			quotient = append(quotient, pair{src, dst})
		}
	}

	removed := make(map[scaffold.NodeID]bool)
	for _, p := range quotient {
		if err := unify(g, p.s, p.t, uf, equiv, func(rn scaffold.NodeID) { removed[rn] = true }); err != nil {
			return nil, err
		}
	}

	survivors := nodes[:0:0]
	for _, n := range nodes {
		if !removed[n] {
			survivors = append(survivors, n)
		}
	}

	return survivors, nil
}

// trianglesAgree checks every triangle formed by the identity edge
// src->dst with an edge incoming to src, or outgoing from dst, agrees
// label-wise with the diagonal edge it forms.
func trianglesAgree[EK any](g *scaffold.Graph[OneMany[Coord], EK], src, dst scaffold.NodeID, equiv rewrite.LabelEquiv) (bool, error) {
	for _, eid := range g.InEdges(src) {
		_, p, _, pr, _ := g.Edge(eid)
		diag, ok := g.FindEdge(p, dst)
		if !ok {
			continue
		}
		agree, err := labelsMatch(g, diag, pr, equiv)
		if err != nil {
			return false, err
		}
		if !agree {
			return false, nil
		}
	}

	for _, eid := range g.OutEdges(dst) {
		_, _, n, nr, _ := g.Edge(eid)
		diag, ok := g.FindEdge(src, n)
		if !ok {
			continue
		}
		agree, err := labelsMatch(g, diag, nr, equiv)
		if err != nil {
			return false, err
		}
		if !agree {
			return false, nil
		}
	}

	return true, nil
}

func labelsMatch[EK any](g *scaffold.Graph[OneMany[Coord], EK], diag scaffold.EdgeID, sideR rewrite.Rewrite, equiv rewrite.LabelEquiv) (bool, error) {
	sideR0, err := zeroRewrite(sideR)
	if err != nil {
		return false, err
	}
	_, _, _, diagR, _ := g.Edge(diag)
	diagR0, err := zeroRewrite(diagR)
	if err != nil {
		return false, err
	}

	return equiv(sideR0.Label(), diagR0.Label()), nil
}
