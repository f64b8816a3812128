package diagram

import (
	"errors"
	"fmt"

	"github.com/globular-cat/homotopy/common"
	"github.com/globular-cat/homotopy/rewrite"
)

// Sentinel errors for the diagram model.
var (
	// ErrIncompatible is returned when a rewrite is applied to a diagram
	// whose boundary it does not match.
	ErrIncompatible = common.ErrIncompatible
)

// Diagram is the closed tagged variant of a diagram of some dimension: a
// bare generator (Diagram0) or a source plus cospans (DiagramN). Callers
// type-switch on the concrete type, as with rewrite.Rewrite.
type Diagram interface {
	// Dimension reports the dimension this diagram occupies.
	Dimension() int

	// isDiagram closes the variant to this package's two implementations.
	isDiagram()
}

// Diagram0 is a single generator, the base case of the diagram recursion.
type Diagram0 struct {
	generator common.Generator
}

// NewDiagram0 wraps a generator as a 0-diagram.
func NewDiagram0(g common.Generator) *Diagram0 { return &Diagram0{generator: g} }

// Generator returns the wrapped generator.
func (d *Diagram0) Generator() common.Generator { return d.generator }

// Dimension implements Diagram; always 0.
func (d *Diagram0) Dimension() int { return 0 }

func (*Diagram0) isDiagram() {}

// DiagramN is a diagram of dimension source.Dimension()+1: a source
// (n-1)-diagram plus an ordered list of cospans of (n-1)-rewrites. The
// regular/singular slices between and at the cospans are never stored;
// see Slices.
type DiagramN struct {
	source  Diagram
	cospans []rewrite.Cospan
}

// NewDiagramN constructs an n-diagram from a source and an ordered cospan
// list, checking invariant I1 (every leg shares source's dimension).
func NewDiagramN(source Diagram, cospans []rewrite.Cospan) (*DiagramN, error) {
	for i, cs := range cospans {
		if cs.Forward.Dimension() != source.Dimension() || cs.Backward.Dimension() != source.Dimension() {
			return nil, fmt.Errorf("diagram: cospan %d dimension disagrees with source dimension %d", i, source.Dimension())
		}
	}

	return &DiagramN{source: source, cospans: append([]rewrite.Cospan(nil), cospans...)}, nil
}

// newDiagramNUnchecked builds a DiagramN from data already known to satisfy
// I1 (e.g. recombined from an existing diagram's own cospans), skipping the
// redundant dimension re-check.
func newDiagramNUnchecked(source Diagram, cospans []rewrite.Cospan) *DiagramN {
	return &DiagramN{source: source, cospans: cospans}
}

// Dimension implements Diagram.
func (d *DiagramN) Dimension() int { return d.source.Dimension() + 1 }

func (*DiagramN) isDiagram() {}

// Size is the diagram's cospan count.
func (d *DiagramN) Size() int { return len(d.cospans) }

// Cospans returns the diagram's cospans in height order. Callers must not
// mutate the returned slice.
func (d *DiagramN) Cospans() []rewrite.Cospan { return d.cospans }

// Source returns the diagram's source (regular height 0) boundary.
func (d *DiagramN) Source() Diagram { return d.source }

// Target returns the diagram's target (regular height Size()) boundary.
func (d *DiagramN) Target() Diagram {
	slices := d.Slices()

	return slices[len(slices)-1]
}

// FromGenerator constructs a 1-cell diagram of dimension source.Dimension()+1
// with a single cospan whose forward and backward legs rewrite source and
// target into g. For 0-dimensional source/target this is exactly a pair of
// 0-rewrites into g; for higher dimensions, where g carries no independent
// boundary diagram of its own in this engine, the legs degrade to the
// identity (n-1)-rewrite, which still satisfies every structural invariant
// but does not model g as distinct cell content above dimension 0 — callers
// needing that must attach g's own presentation separately.
func FromGenerator(g common.Generator, source, target Diagram) (*DiagramN, error) {
	if source.Dimension() != target.Dimension() {
		return nil, fmt.Errorf("%w: source and target dimension disagree", ErrIncompatible)
	}
	dim := source.Dimension()

	var forward, backward rewrite.Rewrite
	if dim == 0 {
		sg := source.(*Diagram0).Generator()
		tg := target.(*Diagram0).Generator()
		forward = rewrite.NewRewrite0(sg, g, nil)
		backward = rewrite.NewRewrite0(tg, g, nil)
	} else {
		forward = rewrite.Identity(dim)
		backward = rewrite.Identity(dim)
	}

	return NewDiagramN(source, []rewrite.Cospan{{Forward: forward, Backward: backward}})
}

// Slices returns the diagram's full 2*Size()+1 slice sequence, alternating
// regular and singular, by applying each cospan's forward leg forward from
// the running regular slice and its backward leg in reverse to recover the
// next regular slice.
func (d *DiagramN) Slices() []Diagram {
	result := make([]Diagram, 0, 2*d.Size()+1)
	cur := d.source
	result = append(result, cur)

	for _, cs := range d.cospans {
		singular, err := RewriteForward(cur, cs.Forward)
		if err != nil {
			panic(fmt.Sprintf("diagram: malformed diagram, forward leg does not apply: %v", err))
		}
		result = append(result, singular)

		next, err := RewriteBackward(singular, cs.Backward)
		if err != nil {
			panic(fmt.Sprintf("diagram: malformed diagram, backward leg does not invert: %v", err))
		}
		result = append(result, next)
		cur = next
	}

	return result
}

// Slice returns the diagram's (n-1)-diagram at the given slice index.
func (d *DiagramN) Slice(si common.SliceIndex) (Diagram, error) {
	slices := d.Slices()
	if si.IsBoundary() {
		if si.Boundary() == common.Source {
			return slices[0], nil
		}

		return slices[len(slices)-1], nil
	}
	idx := si.Height().LinearIndex()
	if idx < 0 || idx >= len(slices) {
		return nil, errors.New("diagram: slice index out of range")
	}

	return slices[idx], nil
}
