package rewrite

import "github.com/globular-cat/homotopy/common"

// Rewrite0 is a rewrite between 0-diagrams: either the identity (data ==
// nil) or a triple (source generator, target generator, optional label)
// with source.Dimension <= target.Dimension.
//
// A non-nil Rewrite0 whose source and target generators are equal still
// behaves as an identity for collapse-coherence purposes (see IsIdentity),
// even though it is a distinct value from the canonical IdentityRewrite.
type Rewrite0 struct {
	data *rewrite0Data
}

type rewrite0Data struct {
	Source common.Generator
	Target common.Generator
	Label  Label
}

// ZeroIdentity constructs the 0-rewrite that carries no generator change.
func ZeroIdentity() *Rewrite0 {
	return &Rewrite0{}
}

// NewRewrite0 constructs a 0-rewrite from source to target carrying an
// optional label. Panics if source.Dimension > target.Dimension, since
// that can never arise from a well-typed signature.
func NewRewrite0(source, target common.Generator, label Label) *Rewrite0 {
	if source.Dimension > target.Dimension {
		panic("rewrite: Rewrite0 requires source.Dimension <= target.Dimension")
	}

	return &Rewrite0{data: &rewrite0Data{Source: source, Target: target, Label: label}}
}

// Dimension implements Rewrite; always 0.
func (r *Rewrite0) Dimension() int { return 0 }

func (*Rewrite0) isRewrite() {}

// IsIdentity reports whether r carries no generator change: either it has
// no data at all, or its source and target generators coincide.
func (r *Rewrite0) IsIdentity() bool {
	return r.data == nil || r.data.Source.Equal(r.data.Target)
}

// Source returns the source generator, or the zero Generator when r
// carries no data (ZeroIdentity).
func (r *Rewrite0) Source() common.Generator {
	if r.data == nil {
		return common.Generator{}
	}

	return r.data.Source
}

// Target returns the target generator, or the zero Generator when r
// carries no data (ZeroIdentity).
func (r *Rewrite0) Target() common.Generator {
	if r.data == nil {
		return common.Generator{}
	}

	return r.data.Target
}

// Label returns the rewrite's label, or nil for the identity.
func (r *Rewrite0) Label() Label {
	if r.data == nil {
		return nil
	}

	return r.data.Label
}
