package contract

import (
	"github.com/globular-cat/homotopy/attach"
	"github.com/globular-cat/homotopy/common"
	"github.com/globular-cat/homotopy/diagram"
	"github.com/globular-cat/homotopy/rewrite"
	"github.com/globular-cat/homotopy/scaffold"
)

// CollapseGraph computes the colimit of gr under strict label equality; it
// is CollapseGraphWithEquiv(gr, rewrite.DefaultLabelEquiv).
func CollapseGraph(gr *Graph) (*Cocone, error) {
	return CollapseGraphWithEquiv(gr, rewrite.DefaultLabelEquiv)
}

// CollapseGraphWithEquiv computes the colimit of gr: a direct label-coherent
// quotient when every node is a 0-diagram, or the recursive exploded-Δ
// construction otherwise. equiv lets a host with its own notion of label
// equality (e.g. a signature's LabelEquiv) override strict equality, the
// same role collapse.CollapseStableWithEquiv's equiv parameter plays.
func CollapseGraphWithEquiv(gr *Graph, equiv rewrite.LabelEquiv) (*Cocone, error) {
	switch gr.Dimension() {
	case -1:
		return nil, ErrInvalid
	case 0:
		return collapseBase(gr, equiv)
	default:
		return collapseRecursive(gr, equiv)
	}
}

// Contract collapses the singular height at the end of interiorPath,
// inside the diagram d reached by bp (depth 0 only: d itself), together
// with the singular height after it, returning d with that cospan run
// replaced by the
// contraction's result. bias breaks ties the collapse's colimit order
// would otherwise leave ambiguous.
//
// The original algorithm instead wraps the contraction rewrite as a
// single new cospan one dimension up, splicing it back through
// boundary_path's full recursive descent — a shape this engine's
// depth-0-only attach has no use for, since here d and the diagram
// attach rewrites are the same diagram: the collapsed cospan run itself
// (already at d's own leg dimension) is the whole answer.
func Contract(d diagram.Diagram, bp attach.BoundaryPath, interiorPath []common.Height, height int, bias *Bias) (diagram.Diagram, error) {
	return ContractWithEquiv(d, bp, interiorPath, height, bias, rewrite.DefaultLabelEquiv)
}

// ContractWithEquiv behaves like Contract but lets the caller supply a
// non-default label equivalence for the base collapses it performs.
func ContractWithEquiv(d diagram.Diagram, bp attach.BoundaryPath, interiorPath []common.Height, height int, bias *Bias, equiv rewrite.LabelEquiv) (diagram.Diagram, error) {
	return attach.Attach(d, bp, func(slice diagram.Diagram) ([]rewrite.Cospan, error) {
		dn, ok := slice.(*diagram.DiagramN)
		if !ok {
			return nil, ErrInvalid
		}

		contractRewrite, err := contractInPath(dn, interiorPath, height, bias, equiv)
		if err != nil {
			return nil, err
		}

		singular, err := diagram.RewriteForward(dn, contractRewrite)
		if err != nil {
			return nil, ErrInvalid
		}
		singularN, ok := singular.(*diagram.DiagramN)
		if !ok {
			return nil, ErrInvalid
		}

		return singularN.Cospans(), nil
	})
}

// contractBase collapses the two adjacent cospans at height and height+1
// of diagram into one, by taking the colimit of the 5-node graph
// r0 -> s0 <- r1 -> s1 <- r2 their regular/singular slices and legs form.
func contractBase(dn *diagram.DiagramN, height int, bias *Bias, equiv rewrite.LabelEquiv) (*rewrite.RewriteN, error) {
	cospans := dn.Cospans()
	if height < 0 || height+1 >= len(cospans) {
		return nil, ErrInvalid
	}
	cospan0, cospan1 := cospans[height], cospans[height+1]

	regular0, err := dn.Slice(common.InteriorSlice(common.Regular(height)))
	if err != nil {
		return nil, ErrInvalid
	}
	singular0, err := dn.Slice(common.InteriorSlice(common.Singular(height)))
	if err != nil {
		return nil, ErrInvalid
	}
	regular1, err := dn.Slice(common.InteriorSlice(common.Regular(height + 1)))
	if err != nil {
		return nil, ErrInvalid
	}
	singular1, err := dn.Slice(common.InteriorSlice(common.Singular(height + 1)))
	if err != nil {
		return nil, ErrInvalid
	}
	regular2, err := dn.Slice(common.InteriorSlice(common.Regular(height + 2)))
	if err != nil {
		return nil, ErrInvalid
	}

	var bias0, bias1 *Bias
	if bias != nil {
		flipped := bias.Flip()
		bias0, bias1 = &flipped, bias
	}

	gr := NewGraph()
	r0 := gr.AddNode(regular0, nil)
	s0 := gr.AddNode(singular0, bias0)
	r1 := gr.AddNode(regular1, nil)
	s1 := gr.AddNode(singular1, bias1)
	r2 := gr.AddNode(regular2, nil)
	gr.AddEdge(r0, s0, cospan0.Forward)
	gr.AddEdge(r1, s0, cospan0.Backward)
	gr.AddEdge(r1, s1, cospan1.Forward)
	gr.AddEdge(r2, s1, cospan1.Backward)

	result, err := CollapseGraphWithEquiv(gr, equiv)
	if err != nil {
		return nil, err
	}

	regularSlices := []rewrite.Rewrite{result.Legs[r0], result.Legs[r1], result.Legs[r2]}
	singularSlices := []rewrite.Rewrite{result.Legs[s0], result.Legs[s1]}

	cone := rewrite.NewCone(height, []rewrite.Cospan{cospan0, cospan1},
		rewrite.Cospan{Forward: regularSlices[0], Backward: regularSlices[2]},
		regularSlices, singularSlices)

	return rewrite.NewRewriteN(dn.Dimension(), []rewrite.Cone{cone}), nil
}

// contractInPath descends path one Height at a time, contracting at the
// bottom and wrapping the resulting rewrite back up through each step:
// a Regular step wraps it in a zero-width insertion cone (nothing
// collapses at that level, the inner rewrite just slots into one regular
// height); a Singular step composes the inner rewrite with the source
// cospan's own legs, since the inner rewrite acts on the interior of a
// cell that is itself collapsed by that cospan.
func contractInPath(dn *diagram.DiagramN, path []common.Height, height int, bias *Bias, equiv rewrite.LabelEquiv) (*rewrite.RewriteN, error) {
	if len(path) == 0 {
		return contractBase(dn, height, bias, equiv)
	}

	step, rest := path[0], path[1:]
	slice, err := dn.Slice(common.InteriorSlice(step))
	if err != nil {
		return nil, ErrInvalid
	}
	sliceN, ok := slice.(*diagram.DiagramN)
	if !ok {
		return nil, ErrInvalid
	}

	inner, err := contractInPath(sliceN, rest, height, bias, equiv)
	if err != nil {
		return nil, err
	}

	if step.IsRegular() {
		cone := rewrite.NewCone(step.Index,
			nil,
			rewrite.Cospan{Forward: inner, Backward: inner},
			[]rewrite.Rewrite{inner},
			nil,
		)

		return rewrite.NewRewriteN(dn.Dimension(), []rewrite.Cone{cone}), nil
	}

	i := step.Index
	if i < 0 || i >= len(dn.Cospans()) {
		return nil, ErrInvalid
	}
	sourceCospan := dn.Cospans()[i]
	forward, err := rewrite.Compose(sourceCospan.Forward, inner)
	if err != nil {
		return nil, ErrInvalid
	}
	backward, err := rewrite.Compose(sourceCospan.Backward, inner)
	if err != nil {
		return nil, ErrInvalid
	}

	cone := rewrite.NewCone(i,
		[]rewrite.Cospan{sourceCospan},
		rewrite.Cospan{Forward: forward, Backward: backward},
		[]rewrite.Rewrite{forward, backward},
		[]rewrite.Rewrite{inner},
	)

	return rewrite.NewRewriteN(dn.Dimension(), []rewrite.Cone{cone}), nil
}

// buildRestriction copies the exploded nodes named by keep (and the
// exploded edges between them) into a fresh Graph, returning both the
// restriction-local id -> sliceKey lookup (to classify and order legs by
// parent and height once the restriction's colimit is computed) and the
// exploded id -> restriction-local id lookup (to translate the source and
// target exploded ids restrictionSourceTarget names).
func buildRestriction(eg *explodedGraph, keep map[scaffold.NodeID]bool) (*Graph, map[scaffold.NodeID]sliceKey, map[scaffold.NodeID]scaffold.NodeID, error) {
	restriction := NewGraph()
	keys := make(map[scaffold.NodeID]sliceKey, len(keep))
	byExploded := make(map[scaffold.NodeID]scaffold.NodeID, len(keep))

	for _, id := range sortedNodeIDs(keep) {
		key, d, ok := eg.out.Node(id)
		if !ok {
			return nil, nil, nil, ErrInvalid
		}
		rid := restriction.AddNode(d, nil)
		keys[rid] = key
		byExploded[id] = rid
	}

	for _, eid := range eg.out.Edges() {
		_, src, dst, r, _ := eg.out.Edge(eid)
		rs, sok := byExploded[src]
		rd, dok := byExploded[dst]
		if !sok || !dok {
			continue
		}
		restriction.AddEdge(rs, rd, r)
	}

	return restriction, keys, byExploded, nil
}

// restrictionSourceTarget names the exploded ids that stand for the
// restriction's own source and target: since explode.Explode allocates a
// given parent's own slots contiguously in height order and a restriction
// is built from a single contiguous run of heights closed under ancestry,
// the lowest and highest ids among keep are the run's two endpoints.
func restrictionSourceTarget(_ *explodedGraph, keep map[scaffold.NodeID]bool) (scaffold.NodeID, scaffold.NodeID, error) {
	if len(keep) == 0 {
		return 0, 0, ErrInvalid
	}

	var lo, hi scaffold.NodeID
	first := true
	for id := range keep {
		if first || id < lo {
			lo = id
		}
		if first || id > hi {
			hi = id
		}
		first = false
	}

	return lo, hi, nil
}
