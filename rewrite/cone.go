package rewrite

// Cone is the local data of an n-rewrite collapsing a contiguous run of
// source singular heights into one target singular height: the starting
// SOURCE singular height Index (cones are ordered and disjoint by source
// index, invariant I2; RewriteN.SingularImage folds Index against the
// preceding cones' widths to recover the corresponding target height), the
// SourceCospans being collapsed, the Target cospan they collapse into, one
// (n-1)-rewrite per regular height inside the cone (RegularSlices, len ==
// len(SourceCospans)+1), and one per source singular height (SingularSlices,
// len == len(SourceCospans)).
type Cone struct {
	// Index is the starting source singular height this cone covers.
	Index int

	// SourceCospans are the cospans of source singular heights being
	// collapsed by this cone, in height order.
	SourceCospans []Cospan

	// Target is the cospan this cone collapses SourceCospans into.
	Target Cospan

	// RegularSlices holds one (n-1)-rewrite per regular height spanned by
	// the cone, including both its boundaries: len == len(SourceCospans)+1.
	RegularSlices []Rewrite

	// SingularSlices holds one (n-1)-rewrite per source singular height
	// spanned by the cone: len == len(SourceCospans).
	SingularSlices []Rewrite
}

// NewCone constructs a Cone and validates invariant I3 (slice-count
// arithmetic). Panics if the slice counts do not match the cospan count,
// since a malformed cone can never arise from correct construction code.
func NewCone(index int, sourceCospans []Cospan, target Cospan, regularSlices, singularSlices []Rewrite) Cone {
	if len(regularSlices) != len(sourceCospans)+1 {
		panic("rewrite: cone regular slice count must be len(source cospans)+1")
	}
	if len(singularSlices) != len(sourceCospans) {
		panic("rewrite: cone singular slice count must equal len(source cospans)")
	}

	return Cone{
		Index:          index,
		SourceCospans:  sourceCospans,
		Target:         target,
		RegularSlices:  regularSlices,
		SingularSlices: singularSlices,
	}
}

// Width reports the number of source singular heights this cone collapses.
func (c Cone) Width() int { return len(c.SourceCospans) }

// SourceEnd returns the (exclusive) upper bound of the source singular
// height range this cone covers, i.e. Index+Width() in the *source*
// indexing before collapse is applied by siblings.
func (c Cone) SourceEnd() int { return c.Index + c.Width() }
