package common_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/globular-cat/homotopy/common"
)

func TestGeneratorEquality(t *testing.T) {
	a := common.NewGenerator(1, 2)
	b := common.NewGenerator(1, 5) // same ID, different dimension recorded
	c := common.NewGenerator(2, 2)

	assert.True(t, a.Equal(b), "generators with the same ID are equal regardless of dimension")
	assert.False(t, a.Equal(c))
}

func TestHeightLinearIndex(t *testing.T) {
	cases := []struct {
		h    common.Height
		want int
	}{
		{common.Regular(0), 0},
		{common.Singular(0), 1},
		{common.Regular(1), 2},
		{common.Singular(3), 7},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.h.LinearIndex())
		assert.Equal(t, tc.h, common.HeightFromLinearIndex(tc.want))
	}
}

func TestHeightOrderingMatchesDiagramSizeN(t *testing.T) {
	// A diagram of size n has heights Regular(0), Singular(0), ..., Regular(n)
	// in that total order.
	const n = 4
	var heights []common.Height
	for i := 0; i <= n; i++ {
		heights = append(heights, common.Regular(i))
		if i < n {
			heights = append(heights, common.Singular(i))
		}
	}
	for i := 1; i < len(heights); i++ {
		assert.Equal(t, -1, heights[i-1].Compare(heights[i]))
	}
}

func TestSliceIndexBoundaryVsInterior(t *testing.T) {
	b := common.BoundarySlice(common.Source)
	assert.True(t, b.IsBoundary())
	assert.Equal(t, common.Source, b.Boundary())

	i := common.InteriorSlice(common.Singular(2))
	assert.False(t, i.IsBoundary())
	assert.Equal(t, common.Singular(2), i.Height())
}

func TestDimensionErrorUnwraps(t *testing.T) {
	err := &common.DimensionError{Op: "Explode"}
	assert.True(t, errors.Is(err, common.ErrDimension))
	assert.Contains(t, err.Error(), "Explode")
}
