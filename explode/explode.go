package explode

import (
	"fmt"

	"github.com/globular-cat/homotopy/common"
	"github.com/globular-cat/homotopy/diagram"
	"github.com/globular-cat/homotopy/rewrite"
	"github.com/globular-cat/homotopy/scaffold"
)

// NodeKeyFunc computes the key of a slot in an exploded node; returning
// false drops that slot entirely.
type NodeKeyFunc[NK any] func(si common.SliceIndex, parent NK) (NK, bool)

// EdgeKeyFunc computes the key of a synthesised edge given its Origin and
// the key of the parent edge it descends from; parent is nil for Internal
// edges, which descend from a node rather than an edge (the original
// algorithm's "no parent edge" case). Returning false drops that edge.
type EdgeKeyFunc[EK any] func(origin Origin, parent *EK) (EK, bool)

// Explode turns g, a scaffold of n-diagrams and n-rewrites, into the
// scaffold of their (n-1)-dimensional slices, plus a map from each
// original node to its slot NodeIDs in slice order (Source, Regular(0),
// Singular(0), ..., Regular(size), Target); a dropped slot is the zero
// NodeID. Fails with DimensionError if any node holds a 0-diagram.
func Explode[NK any, EK any](
	g *scaffold.Graph[NK, EK],
	nodeKey NodeKeyFunc[NK],
	edgeKey EdgeKeyFunc[EK],
) (*scaffold.Graph[NK, EK], map[scaffold.NodeID][]scaffold.NodeID, error) {
	out := scaffold.NewGraph[NK, EK]()
	nodeToSlices := make(map[scaffold.NodeID][]scaffold.NodeID, len(g.Nodes()))

	for _, id := range g.Nodes() {
		key, d, _ := g.Node(id)
		dn, ok := d.(*diagram.DiagramN)
		if !ok {
			return nil, nil, &common.DimensionError{Op: "Explode"}
		}

		slots, err := explodeNode(out, key, dn, nodeKey, edgeKey)
		if err != nil {
			return nil, nil, err
		}
		nodeToSlices[id] = slots
	}

	for _, id := range g.Edges() {
		key, src, dst, r, _ := g.Edge(id)
		srcDiagram, _ := nodeDiagram(g, src)
		dstDiagram, _ := nodeDiagram(g, dst)
		srcDN, srcOk := srcDiagram.(*diagram.DiagramN)
		dstDN, dstOk := dstDiagram.(*diagram.DiagramN)
		if !srcOk || !dstOk {
			return nil, nil, &common.DimensionError{Op: "Explode"}
		}

		rn, err := asRewriteN(r, srcDN.Dimension())
		if err != nil {
			return nil, nil, err
		}

		if err := explodeEdge(out, key, nodeToSlices[src], nodeToSlices[dst], srcDN, dstDN, rn, edgeKey); err != nil {
			return nil, nil, err
		}
	}

	return out, nodeToSlices, nil
}

func nodeDiagram[NK any, EK any](g *scaffold.Graph[NK, EK], id scaffold.NodeID) (diagram.Diagram, bool) {
	_, d, ok := g.Node(id)

	return d, ok
}

// asRewriteN coerces r to a *rewrite.RewriteN at the given dimension,
// synthesising an empty (identity) one when r is the canonical identity.
func asRewriteN(r rewrite.Rewrite, dim int) (*rewrite.RewriteN, error) {
	if rn, ok := r.(*rewrite.RewriteN); ok {
		return rn, nil
	}
	if rewrite.IsIdentity(r) {
		return rewrite.NewRewriteN(dim, nil), nil
	}

	return nil, fmt.Errorf("explode: edge rewrite must be an n-rewrite or identity, got %T", r)
}

func identityEdge[NK any, EK any](out *scaffold.Graph[NK, EK], src, dst scaffold.NodeID, dim int, origin Origin, parent *EK, edgeKey EdgeKeyFunc[EK]) {
	key, ok := edgeKey(origin, parent)
	if !ok {
		return
	}
	out.AddEdge(src, dst, key, rewrite.Identity(dim))
}

// explodeNode emits the 2*size+3 slots for one node and the internal
// edges among them, returning the slot ids in slice order (zero = dropped).
func explodeNode[NK any, EK any](
	out *scaffold.Graph[NK, EK],
	parentKey NK,
	dn *diagram.DiagramN,
	nodeKey NodeKeyFunc[NK],
	edgeKey EdgeKeyFunc[EK],
) ([]scaffold.NodeID, error) {
	dim := dn.Dimension() - 1
	slices := dn.Slices()

	// Slot i in [Source, Regular(0), Singular(0), ..., Regular(size), Target]:
	// slices[0..len(slices)-1] are the interior heights in linear order.
	sliceIndices := make([]common.SliceIndex, 0, len(slices)+2)
	sliceIndices = append(sliceIndices, common.BoundarySlice(common.Source))
	for lin := 0; lin < len(slices); lin++ {
		sliceIndices = append(sliceIndices, common.InteriorSlice(common.HeightFromLinearIndex(lin)))
	}
	sliceIndices = append(sliceIndices, common.BoundarySlice(common.Target))

	slots := make([]scaffold.NodeID, len(sliceIndices))
	for i, si := range sliceIndices {
		var d diagram.Diagram
		switch {
		case i == 0:
			d = slices[0]
		case i == len(sliceIndices)-1:
			d = slices[len(slices)-1]
		default:
			d = slices[i-1]
		}
		if key, ok := nodeKey(si, parentKey); ok {
			slots[i] = out.AddNode(key, d)
		}
	}

	// Identity from source slot to Regular(0).
	if slots[0] != 0 && slots[1] != 0 {
		identityEdge(out, slots[0], slots[1], dim, Origin{Kind: Internal}, nil, edgeKey)
	}

	for i, cs := range dn.Cospans() {
		regLo := common.Regular(i).LinearIndex() + 1
		sing := common.Singular(i).LinearIndex() + 1
		regHi := common.Regular(i + 1).LinearIndex() + 1

		if slots[regLo] != 0 && slots[sing] != 0 {
			if key, ok := edgeKey(Origin{Kind: Internal}, nil); ok {
				out.AddEdge(slots[regLo], slots[sing], key, cs.Forward)
			}
		}
		if slots[regHi] != 0 && slots[sing] != 0 {
			if key, ok := edgeKey(Origin{Kind: Internal}, nil); ok {
				out.AddEdge(slots[regHi], slots[sing], key, cs.Backward)
			}
		}
	}

	last := len(slots) - 1
	if slots[last] != 0 && slots[last-1] != 0 {
		identityEdge(out, slots[last], slots[last-1], dim, Origin{Kind: Internal}, nil, edgeKey)
	}

	return slots, nil
}

func explodeEdge[NK any, EK any](
	out *scaffold.Graph[NK, EK],
	parentKey EK,
	srcSlots, dstSlots []scaffold.NodeID,
	srcDN, dstDN *diagram.DiagramN,
	r *rewrite.RewriteN,
	edgeKey EdgeKeyFunc[EK],
) error {
	dim := r.Dimension() - 1
	pk := parentKey

	sparse := func(s, t scaffold.NodeID) {
		if s == 0 || t == 0 {
			return
		}
		identityEdge(out, s, t, dim, Origin{Kind: Sparse}, &pk, edgeKey)
	}

	// Identity between the two source slices, and between the two target
	// slices.
	sparse(srcSlots[0], dstSlots[0])
	sparse(srcSlots[len(srcSlots)-1], dstSlots[len(dstSlots)-1])

	// Rewrite slices targeting singular levels.
	for sh := 0; sh < srcDN.Size(); {
		th := r.SingularImage(sh)
		s := srcSlots[common.Singular(sh).LinearIndex()+1]
		t := dstSlots[common.Singular(th).LinearIndex()+1]

		if cone, ok := r.ConeOverTarget(th); ok {
			for i, singular := range cone.SingularSlices {
				rs := srcSlots[common.Singular(sh+i).LinearIndex()+1]
				if rs == 0 || t == 0 {
					continue
				}
				if key, ok := edgeKey(Origin{Kind: SingularSlice, Index: i, Width: len(cone.SingularSlices)}, &pk); ok {
					out.AddEdge(rs, t, key, singular)
				}
			}
			sh += cone.Width()

			continue
		}
		sparse(s, t)
		sh++
	}

	// Rewrite slices targeting regular levels (identities).
	for th := 0; th <= dstDN.Size(); th++ {
		sh := r.RegularImage(th)
		s := srcSlots[common.Regular(sh).LinearIndex()+1]
		t := dstSlots[common.Regular(th).LinearIndex()+1]
		sparse(s, t)
	}

	// Regular source heights absorbed into a cone's interior: flange edge
	// composing the source cospan's forward leg with the rewrite's slice.
	for sh := 0; sh <= srcDN.Size(); sh++ {
		start, end := r.RegularPreimage(sh)
		if start != end {
			continue
		}
		th := start
		s := srcSlots[common.Regular(sh).LinearIndex()+1]
		t := dstSlots[common.Singular(th).LinearIndex()+1]
		if s == 0 || t == 0 || sh >= len(srcDN.Cospans()) {
			continue
		}
		composed, err := rewrite.Compose(srcDN.Cospans()[sh].Forward, r.Slice(common.Singular(sh)))
		if err != nil {
			return err
		}
		if key, ok := edgeKey(Origin{Kind: RegularSlice}, &pk); ok {
			out.AddEdge(s, t, key, composed)
		}
	}

	// Empty-cone case: target singular heights with no source preimage at
	// all get a flange copy of the target cospan's forward leg.
	for th := 0; th < dstDN.Size(); th++ {
		start, end := r.SingularPreimage(th)
		if start != end {
			continue
		}
		sh := start
		s := srcSlots[common.Regular(sh).LinearIndex()+1]
		t := dstSlots[common.Singular(th).LinearIndex()+1]
		if s == 0 || t == 0 {
			continue
		}
		if key, ok := edgeKey(Origin{Kind: RegularSlice}, &pk); ok {
			out.AddEdge(s, t, key, dstDN.Cospans()[th].Forward)
		}
	}

	return nil
}
