package contract

// Bias breaks a tie between two singular heights a contraction's colimit
// order would otherwise leave ambiguous: Higher prefers the later height,
// Lower the earlier one, Same expresses no preference and flips to itself.
type Bias int

const (
	Higher Bias = iota
	Same
	Lower
)

// Flip swaps Higher and Lower, leaving Same fixed; used when a contraction
// descends into the cospan below the one it was asked to contract, where
// the caller's preference points the opposite way.
func (b Bias) Flip() Bias {
	switch b {
	case Higher:
		return Lower
	case Lower:
		return Higher
	default:
		return Same
	}
}

func (b Bias) String() string {
	switch b {
	case Higher:
		return "Higher"
	case Lower:
		return "Lower"
	default:
		return "Same"
	}
}
