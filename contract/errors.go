package contract

import "errors"

// Sentinel errors for contraction, one per failure mode a caller might
// want to branch on.
var (
	// ErrInvalid covers every structurally malformed request: a height or
	// boundary path outside the diagram, a quotient graph that disagrees
	// with itself, or a colimit whose legs cannot be assembled.
	ErrInvalid = errors.New("contract: invalid contraction")

	// ErrAmbiguous is returned when the Δ-graph's linearization leaves two
	// singular heights tied with no Bias to break the tie.
	ErrAmbiguous = errors.New("contract: ambiguous contraction order")

	// ErrIllTyped is reserved for a typechecking pass. Contraction performs
	// no typecheck and no normalization, has no option to enable either,
	// and never returns this error.
	ErrIllTyped = errors.New("contract: contraction does not typecheck")
)
