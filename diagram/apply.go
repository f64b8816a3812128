package diagram

import (
	"fmt"

	"github.com/globular-cat/homotopy/rewrite"
)

// RewriteForward applies rewrite r to diagram d, producing the diagram r
// maps d onto. An n-rewrite never changes a diagram's own source/target
// boundary (those are (n-1)-dimensional and untouched by an n-rewrite); it
// only replaces the runs of cospans its cones cover with each cone's
// Target cospan, leaving every other cospan untouched.
func RewriteForward(d Diagram, r rewrite.Rewrite) (Diagram, error) {
	if rewrite.IsIdentity(r) {
		return d, nil
	}

	switch rv := r.(type) {
	case *rewrite.Rewrite0:
		d0, ok := d.(*Diagram0)
		if !ok {
			return nil, fmt.Errorf("%w: 0-rewrite applied to a non-0-diagram", ErrIncompatible)
		}
		if !d0.Generator().Equal(rv.Source()) {
			return nil, fmt.Errorf("%w: 0-rewrite source does not match diagram generator", ErrIncompatible)
		}

		return NewDiagram0(rv.Target()), nil
	case *rewrite.RewriteN:
		dn, ok := d.(*DiagramN)
		if !ok || dn.Dimension() != rv.Dimension() {
			return nil, fmt.Errorf("%w: n-rewrite dimension does not match diagram", ErrIncompatible)
		}

		cospans := make([]rewrite.Cospan, 0, dn.Size())
		for i := 0; i < dn.Size(); {
			if c, ok := rv.ConeAt(i); ok {
				cospans = append(cospans, c.Target)
				i = c.SourceEnd()

				continue
			}
			cospans = append(cospans, dn.cospans[i])
			i++
		}

		return newDiagramNUnchecked(dn.source, cospans), nil
	default:
		return nil, fmt.Errorf("diagram: unrecognised rewrite variant %T", r)
	}
}

// RewriteBackward applies rewrite r in reverse, recovering the diagram r
// maps onto d: the dual of RewriteForward, expanding each cone's Target
// cospan back into its SourceCospans.
func RewriteBackward(d Diagram, r rewrite.Rewrite) (Diagram, error) {
	if rewrite.IsIdentity(r) {
		return d, nil
	}

	switch rv := r.(type) {
	case *rewrite.Rewrite0:
		d0, ok := d.(*Diagram0)
		if !ok {
			return nil, fmt.Errorf("%w: 0-rewrite applied to a non-0-diagram", ErrIncompatible)
		}
		if !d0.Generator().Equal(rv.Target()) {
			return nil, fmt.Errorf("%w: 0-rewrite target does not match diagram generator", ErrIncompatible)
		}

		return NewDiagram0(rv.Source()), nil
	case *rewrite.RewriteN:
		dn, ok := d.(*DiagramN)
		if !ok || dn.Dimension() != rv.Dimension() {
			return nil, fmt.Errorf("%w: n-rewrite dimension does not match diagram", ErrIncompatible)
		}

		cospans := make([]rewrite.Cospan, 0, dn.Size())
		for th := 0; th < dn.Size(); th++ {
			if c, ok := rv.ConeOverTarget(th); ok {
				cospans = append(cospans, c.SourceCospans...)

				continue
			}
			cospans = append(cospans, dn.cospans[th])
		}

		return newDiagramNUnchecked(dn.source, cospans), nil
	default:
		return nil, fmt.Errorf("diagram: unrecognised rewrite variant %T", r)
	}
}
