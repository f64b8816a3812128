package contract

import (
	"sort"

	"github.com/globular-cat/homotopy/diagram"
	"github.com/globular-cat/homotopy/rewrite"
	"github.com/globular-cat/homotopy/scaffold"
)

// collapseRecursive computes the colimit of a Graph of dimension >= 1 by
// exploding it one dimension down, finding the colimit order of its
// singular heights (Δ, condensed to strongly-connected components and
// linearized), solving one (n-1)-dimensional subproblem per linear
// component, and reassembling the results into an n-dimensional colimit.
// equiv is threaded down into each recursive subproblem's own CollapseGraph
// call.
func collapseRecursive(gr *Graph, equiv rewrite.LabelEquiv) (*Cocone, error) {
	eg, err := explodeGraph(gr)
	if err != nil {
		return nil, err
	}

	deltaNodes, deltaAdj := buildDelta(gr, eg)
	deltaOrder := sortedNodeIDs(deltaNodes)

	sccs := tarjanSCC(deltaOrder, deltaAdj)

	sccAdj, _ := condenseAdjacency(sccs, deltaAdj)
	priorities, biases, err := linearize(sccs, sccAdj, eg, gr)
	if err != nil {
		return nil, err
	}

	linearComponents := orderByPriority(sccs, priorities, biases)

	sinkSet := make(map[scaffold.NodeID]bool)
	for _, n := range gr.Nodes() {
		if gr.IsSink(n) {
			sinkSet[n] = true
		}
	}
	regularMonotone := buildRegularMonotone(eg, sinkSet, linearComponents)

	type subproblem struct {
		cocone         *Cocone
		source, target scaffold.NodeID
		// keys maps each restriction-local node id to the exploded sliceKey
		// it came from, so the final assembly can find, for each original
		// input node, which restriction-local legs belong to it and in
		// what height order.
		keys map[scaffold.NodeID]sliceKey
	}
	subs := make([]subproblem, 0, len(linearComponents))

	for i, scc := range linearComponents {
		anchors := make(map[scaffold.NodeID]bool, len(scc))
		for _, n := range scc {
			anchors[n] = true
		}
		for _, m := range regularMonotone[i] {
			anchors[m] = true
		}
		for _, m := range regularMonotone[i+1] {
			anchors[m] = true
		}

		keep := ancestorsOf(eg, anchors)

		restriction, keys, byExploded, err := buildRestriction(eg, keep)
		if err != nil {
			return nil, err
		}

		sourceExploded, targetExploded, err := restrictionSourceTarget(eg, keep)
		if err != nil {
			return nil, err
		}

		cocone, err := CollapseGraphWithEquiv(restriction, equiv)
		if err != nil {
			return nil, err
		}

		subs = append(subs, subproblem{
			cocone: cocone,
			source: byExploded[sourceExploded],
			target: byExploded[targetExploded],
			keys:   keys,
		})
	}

	if len(subs) == 0 {
		return nil, ErrInvalid
	}

	first := subs[0]
	colimitSource, err := diagram.RewriteBackward(first.cocone.Colimit, first.cocone.Legs[first.source])
	if err != nil {
		return nil, ErrInvalid
	}
	colimitCospans := make([]rewrite.Cospan, len(subs))
	for i, s := range subs {
		colimitCospans[i] = rewrite.Cospan{
			Forward:  s.cocone.Legs[s.source],
			Backward: s.cocone.Legs[s.target],
		}
	}
	colimit, err := diagram.NewDiagramN(colimitSource, colimitCospans)
	if err != nil {
		return nil, ErrInvalid
	}

	legs := make(map[scaffold.NodeID]rewrite.Rewrite, len(gr.Nodes()))
	for _, n := range gr.Nodes() {
		regularByHeight := make([][]rewrite.Rewrite, len(subs))
		singularByHeight := make([][]rewrite.Rewrite, len(subs))

		for i, s := range subs {
			type member struct {
				key sliceKey
				id  scaffold.NodeID
			}
			var members []member
			for id, key := range s.keys {
				if key.Parent == n {
					members = append(members, member{key, id})
				}
			}
			sort.Slice(members, func(a, b int) bool {
				return members[a].key.SI.Height().LinearIndex() < members[b].key.SI.Height().LinearIndex()
			})

			var reg, sing []rewrite.Rewrite
			for _, m := range members {
				leg := s.cocone.Legs[m.id]
				if m.key.SI.Height().IsRegular() {
					reg = append(reg, leg)
				} else {
					sing = append(sing, leg)
				}
			}
			regularByHeight[i] = reg
			singularByHeight[i] = sing
		}

		d, _ := gr.Node(n)
		dn, ok := d.(*diagram.DiagramN)
		if !ok {
			return nil, ErrInvalid
		}
		leg, err := rewrite.FromSlices(colimit.Dimension(), dn.Cospans(), colimit.Cospans(), regularByHeight, singularByHeight)
		if err != nil {
			return nil, err
		}
		legs[n] = leg
	}

	return &Cocone{Colimit: colimit, Legs: legs}, nil
}

func sortedNodeIDs(set map[scaffold.NodeID]bool) []scaffold.NodeID {
	out := make([]scaffold.NodeID, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// condenseAdjacency builds the condensation DAG's adjacency (by scc index)
// and a lookup from original node to its scc index.
func condenseAdjacency(sccs [][]scaffold.NodeID, adj map[scaffold.NodeID][]scaffold.NodeID) (map[int][]int, map[scaffold.NodeID]int) {
	sccOf := make(map[scaffold.NodeID]int)
	for i, scc := range sccs {
		for _, n := range scc {
			sccOf[n] = i
		}
	}

	edgeSet := make(map[[2]int]bool)
	for v, ws := range adj {
		for _, w := range ws {
			a, b := sccOf[v], sccOf[w]
			if a != b {
				edgeSet[[2]int{a, b}] = true
			}
		}
	}
	pairs := make([][2]int, 0, len(edgeSet))
	for pair := range edgeSet {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}

		return pairs[i][1] < pairs[j][1]
	})

	sccAdj := make(map[int][]int)
	for _, pair := range pairs {
		sccAdj[pair[0]] = append(sccAdj[pair[0]], pair[1])
	}

	return sccAdj, sccOf
}

// linearize assigns each scc a priority: the longest dependency chain
// length from any source scc, computed by walking sccs in (already
// topological) order and taking one more than the max priority of any
// predecessor. Ties with no common bias to break them are reported as
// ErrAmbiguous.
//
// This computes the longest-path-from-source depth directly, rather than
// reproducing the original algorithm's index-based traversal verbatim: that
// traversal relies on petgraph's specific condensation index convention
// (which component gets which NodeIndex), which cannot be verified without
// running the original, so the Go port instead implements the clearly
// intended semantics: a deterministic topological depth used to order
// singular heights in the constructed colimit.
func linearize(sccs [][]scaffold.NodeID, sccAdj map[int][]int, eg *explodedGraph, gr *Graph) ([]int, []*Bias, error) {
	n := len(sccs)
	priorities := make([]int, n)
	preds := make(map[int][]int)
	for u, ws := range sccAdj {
		for _, w := range ws {
			preds[w] = append(preds[w], u)
		}
	}
	for i := 0; i < n; i++ {
		best := -1
		for _, p := range preds[i] {
			if priorities[p] > best {
				best = priorities[p]
			}
		}
		priorities[i] = best + 1
	}

	biases := make([]*Bias, n)
	for i, scc := range sccs {
		biases[i] = sccBias(scc, eg, gr)
	}

	byPriority := make(map[int][]int)
	for i, p := range priorities {
		byPriority[p] = append(byPriority[p], i)
	}
	for _, group := range byPriority {
		if len(group) < 2 {
			continue
		}
		for _, i := range group {
			if biases[i] == nil {
				return nil, nil, ErrAmbiguous
			}
		}
	}

	return priorities, biases, nil
}

// sccBias mirrors the original's Option<Bias>::min().flatten(): the scc's
// bias is None unless every node in it names a bias, in which case it is
// the smallest of them (Higher < Same < Lower).
func sccBias(scc []scaffold.NodeID, eg *explodedGraph, gr *Graph) *Bias {
	var min *Bias
	for _, n := range scc {
		key, _, _ := eg.out.Node(n)
		b, ok := gr.Bias(key.Parent)
		if !ok {
			return nil
		}
		if min == nil || b < *min {
			bb := b
			min = &bb
		}
	}

	return min
}

// orderByPriority orders sccs by (priority, bias): linearize already
// guarantees every scc tied on priority names a non-nil bias, so bias is
// the documented tiebreaker (Higher < Same < Lower), with scc-index order
// as a final, purely cosmetic tiebreaker among sccs whose bias also ties.
func orderByPriority(sccs [][]scaffold.NodeID, priorities []int, biases []*Bias) [][]scaffold.NodeID {
	order := make([]int, len(sccs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		i, j := order[a], order[b]
		if priorities[i] != priorities[j] {
			return priorities[i] < priorities[j]
		}
		bi, bj := biases[i], biases[j]
		switch {
		case bi == nil && bj == nil:
			return false
		case bi == nil:
			return false
		case bj == nil:
			return true
		default:
			return *bi < *bj
		}
	})

	out := make([][]scaffold.NodeID, len(sccs))
	for i, idx := range order {
		out[i] = sccs[idx]
	}

	return out
}

// buildRegularMonotone tracks, per linear component boundary, the exploded
// node id of the regular height immediately following the heights consumed
// so far, for each sink diagram. See DESIGN.md's "regular_monotone...
// degenerate case" entry for the carry-forward rule used when a component
// contributes nothing for a given sink.
func buildRegularMonotone(eg *explodedGraph, sinkSet map[scaffold.NodeID]bool, linearComponents [][]scaffold.NodeID) []map[scaffold.NodeID]scaffold.NodeID {
	result := make([]map[scaffold.NodeID]scaffold.NodeID, len(linearComponents)+1)
	result[0] = make(map[scaffold.NodeID]scaffold.NodeID)
	for _, id := range eg.out.Nodes() {
		key, _, _ := eg.out.Node(id)
		if !sinkSet[key.Parent] {
			continue
		}
		if key.SI.Height().IsRegular() && key.SI.Height().Index == 0 {
			result[0][key.Parent] = id
		}
	}

	for k, scc := range linearComponents {
		prev := result[k]
		next := make(map[scaffold.NodeID]scaffold.NodeID, len(prev))
		for p, v := range prev {
			next[p] = v // carryForwardRegular: no new level crossed unless scc touches p.
		}

		maxByParent := make(map[scaffold.NodeID]scaffold.NodeID)
		for _, n := range scc {
			key, _, _ := eg.out.Node(n)
			if cur, ok := maxByParent[key.Parent]; !ok || n > cur {
				maxByParent[key.Parent] = n
			}
		}
		for p, maxID := range maxByParent {
			next[p] = maxID + 1
		}

		result[k+1] = next
	}

	return result
}

// ancestorsOf returns anchors plus every exploded node with a path to one
// of them, computed by reverse-BFS over the exploded DAG.
func ancestorsOf(eg *explodedGraph, anchors map[scaffold.NodeID]bool) map[scaffold.NodeID]bool {
	rev := make(map[scaffold.NodeID][]scaffold.NodeID)
	for _, eid := range eg.out.Edges() {
		_, src, dst, _, _ := eg.out.Edge(eid)
		rev[dst] = append(rev[dst], src)
	}

	keep := make(map[scaffold.NodeID]bool, len(anchors))
	var queue []scaffold.NodeID
	for a := range anchors {
		if !keep[a] {
			keep[a] = true
			queue = append(queue, a)
		}
	}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, p := range rev[v] {
			if !keep[p] {
				keep[p] = true
				queue = append(queue, p)
			}
		}
	}

	return keep
}
