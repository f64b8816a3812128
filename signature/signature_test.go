package signature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globular-cat/homotopy/common"
	"github.com/globular-cat/homotopy/signature"
)

func TestAddZeroAssignsSequentialIDs(t *testing.T) {
	b := signature.NewSignatureBuilder()
	d0 := b.AddZero()
	d1 := b.AddZero()

	gens := b.Generators()
	require.Len(t, gens, 2)
	assert.Equal(t, 0, gens[0].ID)
	assert.Equal(t, 1, gens[1].ID)
	assert.Equal(t, 0, d0.Dimension())
	assert.Equal(t, 0, d1.Dimension())
}

func TestAddBuildsOneDimensionHigherThanSource(t *testing.T) {
	b := signature.NewSignatureBuilder()
	src := b.AddZero()
	tgt := b.AddZero()

	edge, err := b.Add(src, tgt)
	require.NoError(t, err)
	assert.Equal(t, 1, edge.Dimension())

	info, ok := b.GeneratorInfo(b.Generators()[2])
	require.True(t, ok)
	assert.True(t, info.IsInvertible())
}

func TestZeroDimensionGeneratorsAreNotInvertible(t *testing.T) {
	b := signature.NewSignatureBuilder()
	b.AddZero()

	info, ok := b.GeneratorInfo(b.Generators()[0])
	require.True(t, ok)
	assert.False(t, info.IsInvertible())
}

func TestGeneratorInfoMissingID(t *testing.T) {
	b := signature.NewSignatureBuilder()
	b.AddZero()

	_, ok := b.GeneratorInfo(common.NewGenerator(99, 0))
	assert.False(t, ok)
}
