package collapse

import (
	"fmt"

	"github.com/globular-cat/homotopy/rewrite"
	"github.com/globular-cat/homotopy/scaffold"
	"github.com/globular-cat/homotopy/unionfind"
)

// zeroRewrite coerces r to a *rewrite.Rewrite0, erroring on anything else:
// collapse only ever operates over stable scaffolds of 0-diagrams.
func zeroRewrite(r rewrite.Rewrite) (*rewrite.Rewrite0, error) {
	r0, ok := r.(*rewrite.Rewrite0)
	if !ok {
		return nil, fmt.Errorf("collapse: unify requires 0-rewrites, got %T", r)
	}

	return r0, nil
}

// hasLabel reports whether some edge src->dst already carries a label
// equivalent to label under equiv.
func hasLabel[EK any](g *scaffold.Graph[OneMany[Coord], EK], src, dst scaffold.NodeID, label rewrite.Label, equiv rewrite.LabelEquiv) (bool, error) {
	for _, eid := range g.EdgesConnecting(src, dst) {
		_, _, _, r, _ := g.Edge(eid)
		r0, err := zeroRewrite(r)
		if err != nil {
			return false, err
		}
		if equiv(r0.Label(), label) {
			return true, nil
		}
	}

	return false, nil
}

// unify merges the classes of p and q in quotient, folding q's (or p's,
// whichever does not survive) incident edges and node key into the
// surviving node. onRemoveNode is invoked with the removed node's id, so
// callers can drop it from an in-flight subproblem's node list.
func unify[EK any](
	g *scaffold.Graph[OneMany[Coord], EK],
	p, q scaffold.NodeID,
	quotient *unionfind.UnionFind,
	equiv rewrite.LabelEquiv,
	onRemoveNode func(scaffold.NodeID),
) error {
	p, q = quotient.Find(p), quotient.Find(q)
	if p == q {
		return nil
	}
	keep := quotient.Union(p, q)
	remove := p
	if keep == p {
		remove = q
	}

	for _, eid := range g.OutEdges(remove) {
		ek, _, target, r, _ := g.Edge(eid)
		if target == keep {
			continue
		}
		r0, err := zeroRewrite(r)
		if err != nil {
			return err
		}
		g.RemoveEdge(eid)
		already, err := hasLabel(g, keep, target, r0.Label(), equiv)
		if err != nil {
			return err
		}
		if !already {
			g.AddEdge(keep, target, ek, r)
		}
	}

	for _, eid := range g.InEdges(remove) {
		ek, source, _, r, _ := g.Edge(eid)
		if source == keep {
			continue
		}
		r0, err := zeroRewrite(r)
		if err != nil {
			return err
		}
		g.RemoveEdge(eid)
		already, err := hasLabel(g, source, keep, r0.Label(), equiv)
		if err != nil {
			return err
		}
		if !already {
			g.AddEdge(source, keep, ek, r)
		}
	}

	removedKey, _, _ := g.Node(remove)
	g.RemoveNode(remove)
	onRemoveNode(remove)

	keepKey, _, _ := g.Node(keep)
	g.SetNodeKey(keep, keepKey.Extend(removedKey))

	return nil
}
