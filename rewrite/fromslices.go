package rewrite

import "fmt"

// FromSlices assembles the n-rewrite from a diagram with sourceCospans to a
// diagram with targetCospans, given, for each target singular height i, the
// regular and singular (n-1)-rewrites a cone at that height collapses: a
// contiguous run of width == len(singularSlices[i]) source singular heights
// starting immediately after the previous cone's run. A zero-width entry
// (no singular slices) inserts a new singular height that absorbs no source
// cell at all, the same pattern contract_in_path's regular-height branch
// uses to wrap an (n-1)-rewrite without collapsing anything.
func FromSlices(dim int, sourceCospans, targetCospans []Cospan, regularSlices, singularSlices [][]Rewrite) (*RewriteN, error) {
	if len(targetCospans) != len(regularSlices) || len(targetCospans) != len(singularSlices) {
		return nil, fmt.Errorf("rewrite: FromSlices requires one slice list per target singular height")
	}

	cones := make([]Cone, 0, len(targetCospans))
	srcIdx := 0
	for i, tc := range targetCospans {
		width := len(singularSlices[i])
		if len(regularSlices[i]) != width+1 {
			return nil, fmt.Errorf("rewrite: FromSlices target height %d has mismatched regular/singular slice counts", i)
		}
		if width == 0 {
			cones = append(cones, NewCone(srcIdx, nil, tc, regularSlices[i], nil))

			continue
		}
		if srcIdx+width > len(sourceCospans) {
			return nil, fmt.Errorf("rewrite: FromSlices source cospan run overruns source diagram at target height %d", i)
		}
		sourceRun := append([]Cospan(nil), sourceCospans[srcIdx:srcIdx+width]...)
		cones = append(cones, NewCone(srcIdx, sourceRun, tc, regularSlices[i], singularSlices[i]))
		srcIdx += width
	}

	return NewRewriteN(dim, cones), nil
}
