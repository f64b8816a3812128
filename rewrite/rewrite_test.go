package rewrite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globular-cat/homotopy/common"
)

func gen(id, dim int) common.Generator {
	return common.Generator{ID: id, Dimension: dim}
}

func TestIdentityIsIdentity(t *testing.T) {
	id := Identity(2)
	assert.True(t, IsIdentity(id))
	assert.Equal(t, 2, id.Dimension())
}

func TestRewrite0IdentityVsData(t *testing.T) {
	z := ZeroIdentity()
	assert.True(t, z.IsIdentity())
	assert.False(t, IsIdentity(z)) // Rewrite0 never satisfies the canonical IdentityRewrite check

	same := NewRewrite0(gen(1, 0), gen(1, 0), nil)
	assert.True(t, same.IsIdentity())

	diff := NewRewrite0(gen(1, 0), gen(2, 0), "label")
	assert.False(t, diff.IsIdentity())
	assert.Equal(t, "label", diff.Label())
}

func TestComposeZeroMiddleMismatch(t *testing.T) {
	r := NewRewrite0(gen(1, 0), gen(2, 0), nil)
	s := NewRewrite0(gen(3, 0), gen(4, 0), nil)

	_, err := Compose(r, s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncompatible))
}

func TestComposeZeroLabelInheritance(t *testing.T) {
	r := NewRewrite0(gen(1, 0), gen(2, 0), "r-label")
	s := NewRewrite0(gen(2, 0), gen(3, 0), "s-label")

	composed, err := Compose(r, s)
	require.NoError(t, err)
	c := composed.(*Rewrite0)
	assert.Equal(t, gen(1, 0), c.Source())
	assert.Equal(t, gen(3, 0), c.Target())
	assert.Equal(t, "s-label", c.Label())
}

func TestComposeZeroIdentityUnit(t *testing.T) {
	r := NewRewrite0(gen(1, 0), gen(2, 0), "r-label")

	left, err := Compose(ZeroIdentity(), r)
	require.NoError(t, err)
	assert.Same(t, Rewrite(r), left)

	right, err := Compose(r, ZeroIdentity())
	require.NoError(t, err)
	assert.Same(t, Rewrite(r), right)
}

func singularLeaf(label string) Rewrite {
	return NewRewrite0(gen(1, 0), gen(2, 0), label)
}

func TestNewRewriteNSortsAndValidatesCones(t *testing.T) {
	c0 := NewCone(2, []Cospan{{Forward: Identity(0), Backward: Identity(0)}}, Cospan{Forward: Identity(0), Backward: Identity(0)},
		[]Rewrite{Identity(0), Identity(0)}, []Rewrite{Identity(0)})
	c1 := NewCone(0, []Cospan{{Forward: Identity(0), Backward: Identity(0)}}, Cospan{Forward: Identity(0), Backward: Identity(0)},
		[]Rewrite{Identity(0), Identity(0)}, []Rewrite{Identity(0)})

	rn := NewRewriteN(1, []Cone{c0, c1})
	assert.Equal(t, 0, rn.Cones()[0].Index)
	assert.Equal(t, 2, rn.Cones()[1].Index)
}

func TestNewRewriteNPanicsOnOverlap(t *testing.T) {
	c0 := NewCone(0, []Cospan{{Forward: Identity(0), Backward: Identity(0)}}, Cospan{Forward: Identity(0), Backward: Identity(0)},
		[]Rewrite{Identity(0), Identity(0)}, []Rewrite{Identity(0)})
	c1 := NewCone(0, []Cospan{{Forward: Identity(0), Backward: Identity(0)}}, Cospan{Forward: Identity(0), Backward: Identity(0)},
		[]Rewrite{Identity(0), Identity(0)}, []Rewrite{Identity(0)})

	assert.Panics(t, func() { NewRewriteN(1, []Cone{c0, c1}) })
}

// A width-2 cone at source index 1 collapsing heights {1,2} into target
// singular height 1. singular_image only subtracts cones that end at or
// before h, so: singular_image(0)=0, singular_image(1)=1,
// singular_image(2)=2 (interior height, cone not yet ended),
// singular_image(3)=2.
func widthTwoCone() *RewriteN {
	c := NewCone(1,
		[]Cospan{
			{Forward: singularLeaf("f0"), Backward: singularLeaf("b0")},
			{Forward: singularLeaf("f1"), Backward: singularLeaf("b1")},
		},
		Cospan{Forward: singularLeaf("f"), Backward: singularLeaf("b")},
		[]Rewrite{Identity(0), Identity(0), Identity(0)},
		[]Rewrite{singularLeaf("s0"), singularLeaf("s1")},
	)

	return NewRewriteN(1, []Cone{c})
}

func TestSingularImageAndConeOverTarget(t *testing.T) {
	r := widthTwoCone()

	assert.Equal(t, 0, r.SingularImage(0))
	assert.Equal(t, 1, r.SingularImage(1))
	assert.Equal(t, 2, r.SingularImage(2))
	assert.Equal(t, 2, r.SingularImage(3))

	c, ok := r.ConeOverTarget(1)
	require.True(t, ok)
	assert.Equal(t, 1, c.Index)

	_, ok = r.ConeOverTarget(0)
	assert.False(t, ok)
}

func TestSingularPreimageCoveredAndEmpty(t *testing.T) {
	r := widthTwoCone()

	start, end := r.SingularPreimage(1)
	assert.Equal(t, 1, start)
	assert.Equal(t, 3, end)

	// target height 0 has no cone: empty interval, start carries the
	// source regular height feeding the flange.
	start, end = r.SingularPreimage(0)
	assert.Equal(t, start, end)
}

func TestRegularPreimageAbsorbedInterior(t *testing.T) {
	r := widthTwoCone()

	// source regular height 2 sits strictly inside the cone [1,3): absorbed.
	start, end := r.RegularPreimage(2)
	assert.Equal(t, start, end)

	// source regular height 0 is untouched: maps straight through.
	start, end = r.RegularPreimage(0)
	assert.Equal(t, 0, start)
	assert.Equal(t, 1, end)
}

func TestSliceReturnsConeSlicesOrIdentity(t *testing.T) {
	r := widthTwoCone()

	s := r.Slice(common.Singular(1))
	assert.Equal(t, Rewrite(singularLeaf("s0")), s)

	s = r.Slice(common.Singular(2))
	assert.Equal(t, Rewrite(singularLeaf("s1")), s)

	// Height 0 (singular) lies outside the cone: identity.
	s = r.Slice(common.Singular(0))
	assert.True(t, IsIdentity(s))
}
