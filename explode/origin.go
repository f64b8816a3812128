package explode

import "fmt"

// OriginKind classifies where an exploded edge came from.
type OriginKind int

const (
	// Internal is an edge derived from a diagram's own cospans: the
	// boundary-injection identities and the per-cospan forward/backward
	// legs.
	Internal OriginKind = iota
	// Sparse is an identity rewrite between corresponding boundary or
	// untouched regular/singular slices of an exploded edge.
	Sparse
	// RegularSlice is a synthesised slice composing a cospan leg with the
	// parent rewrite's induced slice, covering both the "regular absorbed
	// into a cone" and "empty cone" cases (the glossary's "flange" edges;
	// the underlying algorithm tags both with this one origin).
	RegularSlice
	// SingularSlice is one of a cone's internal singular-slice edges.
	SingularSlice
)

func (k OriginKind) String() string {
	switch k {
	case Internal:
		return "Internal"
	case Sparse:
		return "Sparse"
	case RegularSlice:
		return "RegularSlice"
	case SingularSlice:
		return "SingularSlice"
	default:
		return fmt.Sprintf("OriginKind(%d)", int(k))
	}
}

// Origin tags an exploded edge with its provenance. Index and Width are
// only meaningful for Kind == SingularSlice: the edge is slice Index of
// Width total slices in its cone.
type Origin struct {
	Kind  OriginKind
	Index int
	Width int
}
