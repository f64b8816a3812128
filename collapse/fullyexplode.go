package collapse

import (
	"github.com/globular-cat/homotopy/diagram"
	"github.com/globular-cat/homotopy/explode"
	"github.com/globular-cat/homotopy/rewrite"
	"github.com/globular-cat/homotopy/scaffold"
)

// FullyExplode explodes d down to its 0-dimensional slices, producing a
// scaffold whose nodes are keyed by the Coord of interior heights taken to
// reach each slice.
func FullyExplode(d diagram.Diagram) (*scaffold.Graph[Coord, struct{}], error) {
	sliced, err := explode.BuildSliceGraph(d, d.Dimension())
	if err != nil {
		return nil, err
	}

	out := scaffold.Map(sliced,
		func(key scaffold.Coord, slice diagram.Diagram) (Coord, diagram.Diagram) {
			c, ok := FromScaffoldCoord(key)
			if !ok {
				panic("collapse: FullyExplode produced a boundary-tagged node coordinate")
			}

			return c, slice
		},
		func(key struct{}, r rewrite.Rewrite) (struct{}, rewrite.Rewrite) { return key, r },
	)

	return out, nil
}

// LabelIdentifications fully explodes d and collapses the result,
// returning, for every slot that survived or was merged away, the
// complete group of coordinates it was identified with (itself alone if
// it never merged). Groups are keyed by each member coordinate's Key, so
// every coordinate in a group maps to the same (shared) slice value.
func LabelIdentifications(d diagram.Diagram) (map[string][]Coord, error) {
	exploded, err := FullyExplode(d)
	if err != nil {
		return nil, err
	}

	collapsed, uf, err := Collapse(exploded)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]Coord)
	seen := make(map[scaffold.NodeID]bool)
	for _, id := range exploded.Nodes() {
		rep := uf.Find(id)
		if seen[rep] {
			continue
		}
		seen[rep] = true

		key, _, ok := collapsed.Node(rep)
		if !ok {
			continue
		}

		group := append([]Coord{}, key.Values()...)
		for _, c := range group {
			out[c.Key()] = group
		}
	}

	return out, nil
}
