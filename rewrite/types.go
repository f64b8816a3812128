package rewrite

import (
	"reflect"

	"github.com/globular-cat/homotopy/common"
)

// Sentinel errors for the rewrite algebra.
var (
	// ErrIncompatible is returned by Compose when the target of the left
	// rewrite does not match the source of the right one.
	ErrIncompatible = common.ErrIncompatible
)

// Label is opaque to this package; the host signature owns its meaning.
// Equality between labels is always decided through a LabelEquiv function,
// never Go's native ==, since hosts may wrap richer provenance data.
type Label interface{}

// LabelEquiv decides whether two labels are to be treated as equal. The
// zero value of this type (nil) is never passed to algorithms in this
// package; DefaultLabelEquiv is substituted by callers that do not supply
// their own, per spec: "default: structural equality".
type LabelEquiv func(a, b Label) bool

// DefaultLabelEquiv implements strict equality for comparable labels and
// falls back to reflect.DeepEqual otherwise, so Label is not required to
// be comparable.
func DefaultLabelEquiv(a, b Label) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a).Comparable() && reflect.TypeOf(b).Comparable() {
		return a == b
	}

	return reflect.DeepEqual(a, b)
}

// Rewrite is the closed tagged variant of a rewrite of some dimension: the
// canonical identity, a 0-rewrite, or an n-rewrite. Callers dispatch with a
// type switch on the concrete type rather than calling interface methods
// for anything beyond Dimension().
type Rewrite interface {
	// Dimension reports the dimension this rewrite operates at.
	Dimension() int

	// isRewrite closes the variant to this package's three implementations.
	isRewrite()
}

// IdentityRewrite is the canonical identity rewrite at a given dimension.
// It carries no cones and no generator data; Identity(dim) always
// constructs the same logical value.
type IdentityRewrite struct {
	dim int
}

// Identity constructs the canonical identity rewrite of the given
// dimension.
func Identity(dim int) IdentityRewrite {
	return IdentityRewrite{dim: dim}
}

// Dimension implements Rewrite.
func (r IdentityRewrite) Dimension() int { return r.dim }

func (IdentityRewrite) isRewrite() {}

// IsIdentity reports whether r is the canonical identity rewrite,
// regardless of dimension. Rewrite0 and RewriteN values that happen to act
// as identities (matching source/target generator, or no cones at all)
// are NOT reported as identity here — use their own IsIdentity-like
// predicates when that distinction matters (e.g. collapse coherence).
func IsIdentity(r Rewrite) bool {
	_, ok := r.(IdentityRewrite)

	return ok
}
