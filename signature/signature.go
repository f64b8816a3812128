package signature

import (
	"github.com/globular-cat/homotopy/common"
	"github.com/globular-cat/homotopy/diagram"
	"github.com/globular-cat/homotopy/rewrite"
)

// GeneratorInfo describes one generator registered in a Signature: its
// own boundary diagram and whether it is invertible.
type GeneratorInfo interface {
	Diagram() diagram.Diagram
	IsInvertible() bool
}

// Signature is a read-only view of a signature: the full generator list,
// lookup by generator, and the label equivalence to quotient by
// (structural equality by default). Contraction and collapse do not take
// a Signature; they take a rewrite.LabelEquiv, for which LabelEquiv can
// be passed.
type Signature interface {
	Generators() []common.Generator
	GeneratorInfo(g common.Generator) (GeneratorInfo, bool)
	LabelEquiv(x, y rewrite.Label) bool
}

// generatorData is the SignatureBuilder's concrete GeneratorInfo: the
// generator itself plus the diagram it was registered with.
type generatorData struct {
	generator common.Generator
	diagram   diagram.Diagram
}

func (d generatorData) Diagram() diagram.Diagram { return d.diagram }

// IsInvertible reports whether d's generator is invertible. Every
// generator above dimension 0 is treated as invertible here; dimension-0
// generators (plain objects) never are.
func (d generatorData) IsInvertible() bool { return d.generator.Dimension > 0 }

// SignatureBuilder accumulates generators in registration order, each
// one assigned its index as ID, and builds their diagrams as they are
// added so later generators can cite earlier ones as boundary.
type SignatureBuilder struct {
	entries []generatorData
}

// NewSignatureBuilder constructs an empty builder.
func NewSignatureBuilder() *SignatureBuilder {
	return &SignatureBuilder{}
}

// AddZero registers a fresh 0-dimensional generator and returns its
// diagram.
func (b *SignatureBuilder) AddZero() diagram.Diagram {
	g := common.NewGenerator(len(b.entries), 0)
	d := diagram.NewDiagram0(g)
	b.entries = append(b.entries, generatorData{generator: g, diagram: d})

	return d
}

// Add registers a generator whose boundary is (source, target), one
// dimension higher than source's, and returns its diagram.
func (b *SignatureBuilder) Add(source, target diagram.Diagram) (*diagram.DiagramN, error) {
	g := common.NewGenerator(len(b.entries), source.Dimension()+1)

	d, err := diagram.FromGenerator(g, source, target)
	if err != nil {
		return nil, err
	}
	b.entries = append(b.entries, generatorData{generator: g, diagram: d})

	return d, nil
}

// Generators returns every registered generator, in registration order.
func (b *SignatureBuilder) Generators() []common.Generator {
	out := make([]common.Generator, len(b.entries))
	for i, e := range b.entries {
		out[i] = e.generator
	}

	return out
}

// GeneratorInfo looks up g by its ID, which doubles as its registration
// index.
func (b *SignatureBuilder) GeneratorInfo(g common.Generator) (GeneratorInfo, bool) {
	if g.ID < 0 || g.ID >= len(b.entries) {
		return nil, false
	}

	return b.entries[g.ID], true
}

// LabelEquiv is structural equality, via rewrite.DefaultLabelEquiv.
func (b *SignatureBuilder) LabelEquiv(x, y rewrite.Label) bool {
	return rewrite.DefaultLabelEquiv(x, y)
}

var _ Signature = (*SignatureBuilder)(nil)
