package rewrite

import (
	"fmt"
)

// Compose implements rewrite composition r;s (apply r, then s). It is
// defined iff r.Dimension() == s.Dimension(); dimension-0 composition
// checks the middle generator, dimension-n composition merges r's cones
// through s's singular image and recomposes overlapping cone slices.
func Compose(r, s Rewrite) (Rewrite, error) {
	if r.Dimension() != s.Dimension() {
		return nil, fmt.Errorf("rewrite: compose requires equal dimensions, got %d and %d", r.Dimension(), s.Dimension())
	}

	if IsIdentity(r) {
		return s, nil
	}
	if IsIdentity(s) {
		return r, nil
	}

	switch rv := r.(type) {
	case *Rewrite0:
		sv, ok := s.(*Rewrite0)
		if !ok {
			return nil, fmt.Errorf("rewrite: cannot compose a 0-rewrite with an n-rewrite")
		}

		return composeZero(rv, sv)
	case *RewriteN:
		sv, ok := s.(*RewriteN)
		if !ok {
			return nil, fmt.Errorf("rewrite: cannot compose an n-rewrite with a 0-rewrite")
		}

		return composeN(rv, sv)
	default:
		return nil, fmt.Errorf("rewrite: unrecognised rewrite variant %T", r)
	}
}

func composeZero(r, s *Rewrite0) (*Rewrite0, error) {
	rIdentity, sIdentity := r.IsIdentity(), s.IsIdentity()

	switch {
	case rIdentity && sIdentity:
		return ZeroIdentity(), nil
	case rIdentity:
		return s, nil
	case sIdentity:
		return r, nil
	}

	if !r.Target().Equal(s.Source()) {
		return nil, fmt.Errorf("%w: middle generator mismatch composing 0-rewrites", ErrIncompatible)
	}

	label := s.Label()
	if label == nil {
		label = r.Label()
	}

	return NewRewrite0(r.Source(), s.Target(), label), nil
}

// composeN merges the cones of r (A -> B) and s (B -> C) into a single
// RewriteN (A -> C). Every r-cone whose image under s falls outside any
// s-cone passes through unchanged (s acts as identity there); every group
// of r-cones (and the identity-passthrough heights between them) whose
// images fall inside the same s-cone are merged into one composite cone
// spanning the union of their source ranges.
func composeN(r, s *RewriteN) (*RewriteN, error) {
	dim := r.dim

	type group struct {
		sCone    *Cone // the s-cone absorbing this group, nil if passthrough
		rCones   []Cone
		loTarget int // s.Index (merged group) or r.SingularImage(cone.Index) (passthrough)
	}

	var groups []*group
	bySCone := map[int]*group{} // keyed by s-cone Index, for merging

	for i := range r.cones {
		c := r.cones[i]
		th := r.SingularImage(c.Index)
		if sc, ok := s.ConeOverTarget(th); ok {
			g, seen := bySCone[sc.Index]
			if !seen {
				g = &group{sCone: &sc, loTarget: sc.Index}
				bySCone[sc.Index] = g
				groups = append(groups, g)
			}
			g.rCones = append(g.rCones, c)
		} else {
			groups = append(groups, &group{rCones: []Cone{c}, loTarget: th})
		}
	}

	cones := make([]Cone, 0, len(groups))
	for _, g := range groups {
		if g.sCone == nil {
			// Passthrough: s acts as identity on this cone's image, so the
			// composite cone is r's cone with its slices composed against
			// identity (a no-op).
			cones = append(cones, g.rCones[0])

			continue
		}

		merged, err := mergeCones(g.rCones, *g.sCone, s)
		if err != nil {
			return nil, err
		}
		cones = append(cones, merged)
	}

	return NewRewriteN(dim, cones), nil
}

// mergeCones builds the composite cone covering every source singular
// height from rCones (already contiguous and target-aligned into sc) by
// recomposing their regular/singular slices with sc's corresponding
// slices, and adopting sc's Target cospan as the composite's Target.
func mergeCones(rCones []Cone, sc Cone, s *RewriteN) (Cone, error) {
	var sourceCospans []Cospan
	var singularSlices []Rewrite
	regularSlices := []Rewrite{}

	for i, rc := range rCones {
		sourceCospans = append(sourceCospans, rc.SourceCospans...)

		for j, singular := range rc.SingularSlices {
			sSlice := sc.SingularSlices[i+j]
			composed, err := Compose(singular, sSlice)
			if err != nil {
				return Cone{}, err
			}
			singularSlices = append(singularSlices, composed)
		}

		for j, regular := range rc.RegularSlices {
			if i > 0 && j == 0 {
				// Shared boundary between two consecutive rCones: already
				// appended as the previous cone's final regular slice.
				continue
			}
			sSlice := sc.RegularSlices[i+j]
			composed, err := Compose(regular, sSlice)
			if err != nil {
				return Cone{}, err
			}
			regularSlices = append(regularSlices, composed)
		}
	}

	return NewCone(rCones[0].Index, sourceCospans, sc.Target, regularSlices, singularSlices), nil
}
