package rewrite

import (
	"sort"

	"github.com/globular-cat/homotopy/common"
)

// RewriteN is a rewrite of dimension n >= 1: a sorted sequence of cones
// with disjoint source ranges.
type RewriteN struct {
	dim   int
	cones []Cone
}

// NewRewriteN constructs a RewriteN from dim and cones, sorting the cones
// by source Index (invariant I2) and validating that their source ranges
// are disjoint. Panics if two cones overlap, since overlapping cones can
// never arise from correct construction.
func NewRewriteN(dim int, cones []Cone) *RewriteN {
	sorted := append([]Cone(nil), cones...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Index < sorted[j].Index })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Index < sorted[i-1].SourceEnd() {
			panic("rewrite: RewriteN cones must have disjoint source ranges")
		}
	}

	return &RewriteN{dim: dim, cones: sorted}
}

// Dimension implements Rewrite.
func (r *RewriteN) Dimension() int { return r.dim }

func (*RewriteN) isRewrite() {}

// Cones returns the rewrite's cones in source-index order. The returned
// slice must not be mutated by callers.
func (r *RewriteN) Cones() []Cone { return r.cones }

// IsIdentity reports whether r carries no cones at all.
func (r *RewriteN) IsIdentity() bool { return len(r.cones) == 0 }

// coneForSource returns the cone covering source singular height h, or
// (Cone{}, false) if h falls outside every cone (i.e. h maps through
// unaffected, one-for-one, to the target).
func (r *RewriteN) coneForSource(h int) (Cone, bool) {
	// Cones are sorted and disjoint; a linear scan is simplest and the
	// cone counts in practice are small relative to diagram size.
	for _, c := range r.cones {
		if h >= c.Index && h < c.SourceEnd() {
			return c, true
		}
	}

	return Cone{}, false
}

// ConeAt returns the cone covering source singular height h, if any. It is
// the exported form of coneForSource, used by callers (the diagram layer)
// that need to walk a diagram's cospans run-by-run under a rewrite.
func (r *RewriteN) ConeAt(h int) (Cone, bool) { return r.coneForSource(h) }

// ConeOverTarget returns the cone whose Target cospan lands at the given
// target singular height, or (Cone{}, false) if no cone does (i.e. the
// target height passes through unaffected).
func (r *RewriteN) ConeOverTarget(targetHeight int) (Cone, bool) {
	for _, c := range r.cones {
		if r.SingularImage(c.Index) == targetHeight {
			return c, true
		}
	}

	return Cone{}, false
}

// SingularImage is the monotone function mapping a source singular height
// to its image target singular height:
//
//	singular_image(h) = h - sum(|c.SourceCospans| - 1) over cones c with
//	                     c.Index + |c.SourceCospans| <= h
func (r *RewriteN) SingularImage(h int) int {
	shift := 0
	for _, c := range r.cones {
		if c.SourceEnd() <= h {
			shift += c.Width() - 1
		}
	}

	return h - shift
}

// RegularImage is the monotone function mapping a target regular height to
// the regular height in the source it is the image of: the dual of
// SingularImage, counting cones strictly preceding the target height.
func (r *RewriteN) RegularImage(targetRegularHeight int) int {
	shift := 0
	for _, c := range r.cones {
		target := r.SingularImage(c.Index)
		if target < targetRegularHeight {
			shift += c.Width() - 1
		}
	}

	return targetRegularHeight + shift
}

// SingularPreimage returns the half-open interval [start, end) of source
// singular heights mapping to targetHeight, when some cone covers it. When
// no cone covers targetHeight the interval is empty (start == end) and
// start instead carries the SOURCE REGULAR height whose flange copy
// supplies this target singular height's "empty cone" slice during
// explosion (spec 4.4's empty-cone case) — the same encoding the rewrite
// algebra's original implementation uses to avoid a second return type.
func (r *RewriteN) SingularPreimage(targetHeight int) (start, end int) {
	if c, ok := r.ConeOverTarget(targetHeight); ok {
		return c.Index, c.SourceEnd()
	}
	shift := 0
	for _, c := range r.cones {
		if r.SingularImage(c.Index) < targetHeight {
			shift += c.Width() - 1
		}
	}
	h := targetHeight + shift

	return h, h
}

// RegularPreimage returns the half-open interval [start, end) of target
// regular heights that sourceHeight (a source regular height) maps onto.
// An empty interval identifies that sourceHeight was absorbed into a
// cone's interior; start then carries the TARGET SINGULAR height the
// absorbing cone collapses into, so callers can synthesize the
// regular-flange edge spec 4.4 describes.
func (r *RewriteN) RegularPreimage(sourceHeight int) (start, end int) {
	for _, c := range r.cones {
		if sourceHeight > c.Index && sourceHeight < c.SourceEnd() {
			target := r.SingularImage(c.Index)

			return target, target
		}
	}
	target := r.regularImageForward(sourceHeight)

	return target, target + 1
}

// regularImageForward maps a source regular height to the target regular
// height it lands on: the forward direction of the regular monotone:
// RegularImage, which callers use elsewhere, is its inverse (target ->
// source).
func (r *RewriteN) regularImageForward(sourceHeight int) int {
	shift := 0
	for _, c := range r.cones {
		if c.SourceEnd() <= sourceHeight {
			shift += c.Width() - 1
		}
	}

	return sourceHeight - shift
}

// Slice returns the (n-1)-rewrite induced at the given height: for a
// singular height covered by a cone, the cone's matching SingularSlice at
// the offset within the cone; for a regular height, always the identity
// (n-1)-rewrite, regardless of whether a cone spans it — a cone's own
// RegularSlices describe how the cone's interior regular heights map to
// each other, not what a single regular height induces on its own.
func (r *RewriteN) Slice(h common.Height) Rewrite {
	if h.IsSingular() {
		if c, ok := r.coneForSource(h.Index); ok {
			return c.SingularSlices[h.Index-c.Index]
		}
	}

	return Identity(r.dim - 1)
}
