package contract

import (
	"github.com/globular-cat/homotopy/diagram"
	"github.com/globular-cat/homotopy/explode"
	"github.com/globular-cat/homotopy/rewrite"
	"github.com/globular-cat/homotopy/scaffold"
	"github.com/globular-cat/homotopy/unionfind"
)

// collapseBase computes the colimit of a Graph of 0-diagrams: the same
// label-coherent identity-edge quotient collapse.Collapse performs on a
// coordinate-keyed scaffold, specialised to a small, unrestricted (no
// coordinate-subtree partitioning needed) graph, followed by identifying
// every node of maximal generator dimension as the single top cell the
// colimit must be. equiv decides label equality, the same host-supplied
// predicate collapse.CollapseStableWithEquiv takes.
func collapseBase(gr *Graph, equiv rewrite.LabelEquiv) (*Cocone, error) {
	g := gr.g
	ids := g.Nodes()
	uf := unionfind.New(ids)

	for _, eid := range g.Edges() {
		_, s, t, r, _ := g.Edge(eid)
		r0, ok := r.(*rewrite.Rewrite0)
		if !ok {
			return nil, ErrInvalid
		}
		if !r0.IsIdentity() {
			continue
		}
		if trianglesAgreeBase(g, s, t, equiv) {
			uf.Union(s, t)
		}
	}

	maxID, maxDim, ok := maxGeneratorDimension(g, ids)
	if !ok {
		return nil, ErrInvalid
	}

	var maxNodes []scaffold.NodeID
	for _, id := range ids {
		_, d, _ := g.Node(id)
		if d.(*diagram.Diagram0).Generator().Dimension == maxDim {
			maxNodes = append(maxNodes, id)
		}
	}
	for i := 1; i < len(maxNodes); i++ {
		x, y := maxNodes[i-1], maxNodes[i]
		_, dx, _ := g.Node(x)
		_, dy, _ := g.Node(y)
		if !dx.(*diagram.Diagram0).Generator().Equal(dy.(*diagram.Diagram0).Generator()) {
			return nil, ErrInvalid
		}
		uf.Union(x, y)
	}

	type quotientKey struct{ from, to scaffold.NodeID }
	quotient := make(map[quotientKey]rewrite.Rewrite)
	for _, eid := range g.Edges() {
		_, s, t, r, _ := g.Edge(eid)
		fs, ft := uf.Find(s), uf.Find(t)
		if fs == ft {
			continue
		}
		k := quotientKey{fs, ft}
		if old, seen := quotient[k]; seen {
			if !zeroRewriteEqual(old, r, equiv) {
				return nil, ErrInvalid
			}

			continue
		}
		quotient[k] = r
	}

	target := uf.Find(maxID)
	legs := make(map[scaffold.NodeID]rewrite.Rewrite, len(ids))
	for _, id := range ids {
		p := uf.Find(id)
		if p == target {
			legs[id] = rewrite.ZeroIdentity()

			continue
		}
		r, ok := quotient[quotientKey{p, target}]
		if !ok {
			return nil, ErrInvalid
		}
		legs[id] = r
	}

	_, colimitDiagram, _ := g.Node(maxID)

	return &Cocone{Colimit: colimitDiagram, Legs: legs}, nil
}

// maxGeneratorDimension returns the id and generator dimension of the node
// with the highest-dimension generator, used as the colimit's representative.
func maxGeneratorDimension(g *scaffold.Graph[sliceKey, explode.Origin], ids []scaffold.NodeID) (scaffold.NodeID, int, bool) {
	best := -1
	var bestID scaffold.NodeID
	found := false
	for _, id := range ids {
		_, d, _ := g.Node(id)
		d0, ok := d.(*diagram.Diagram0)
		if !ok {
			continue
		}
		if !found || d0.Generator().Dimension > best {
			best = d0.Generator().Dimension
			bestID = id
			found = true
		}
	}

	return bestID, best, found
}

// trianglesAgreeBase checks every triangle the identity edge src->dst forms
// with an edge incoming to src, or outgoing from dst, unrestricted to any
// node subset (contract's base graphs are always small enough to check in
// full, unlike collapse.Collapse's coordinate-subtree partitioning).
func trianglesAgreeBase(g *scaffold.Graph[sliceKey, explode.Origin], src, dst scaffold.NodeID, equiv rewrite.LabelEquiv) bool {
	for _, eid := range g.InEdges(src) {
		_, p, _, pr, _ := g.Edge(eid)
		diag, ok := g.FindEdge(p, dst)
		if !ok {
			continue
		}
		_, _, _, dr, _ := g.Edge(diag)
		if !zeroLabelEqual(pr, dr, equiv) {
			return false
		}
	}
	for _, eid := range g.OutEdges(dst) {
		_, _, n, nr, _ := g.Edge(eid)
		diag, ok := g.FindEdge(src, n)
		if !ok {
			continue
		}
		_, _, _, dr, _ := g.Edge(diag)
		if !zeroLabelEqual(nr, dr, equiv) {
			return false
		}
	}

	return true
}

func zeroLabelEqual(a, b rewrite.Rewrite, equiv rewrite.LabelEquiv) bool {
	a0, aok := a.(*rewrite.Rewrite0)
	b0, bok := b.(*rewrite.Rewrite0)
	if !aok || !bok {
		return false
	}

	return equiv(a0.Label(), b0.Label())
}

// zeroRewriteEqual decides whether two quotient edges computed for the same
// (source class, target class) pair agree, the Go stand-in for the
// original's direct Rewrite equality check (well-definedness of the
// quotient graph).
func zeroRewriteEqual(a, b rewrite.Rewrite, equiv rewrite.LabelEquiv) bool {
	a0, aok := a.(*rewrite.Rewrite0)
	b0, bok := b.(*rewrite.Rewrite0)
	if !aok || !bok {
		return false
	}
	if a0.IsIdentity() || b0.IsIdentity() {
		return a0.IsIdentity() == b0.IsIdentity()
	}

	return a0.Source().Equal(b0.Source()) && a0.Target().Equal(b0.Target()) &&
		equiv(a0.Label(), b0.Label())
}
