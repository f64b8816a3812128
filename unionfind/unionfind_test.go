package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/globular-cat/homotopy/scaffold"
	"github.com/globular-cat/homotopy/unionfind"
)

func TestEveryNodeStartsInItsOwnClass(t *testing.T) {
	ids := []scaffold.NodeID{1, 2, 3}
	uf := unionfind.New(ids)
	for _, id := range ids {
		assert.Equal(t, id, uf.Find(id))
	}
}

func TestUnionMergesClassesAndIsIdempotent(t *testing.T) {
	ids := []scaffold.NodeID{1, 2, 3, 4}
	uf := unionfind.New(ids)

	uf.Union(1, 2)
	assert.True(t, uf.Connected(1, 2))
	assert.False(t, uf.Connected(1, 3))

	uf.Union(3, 4)
	uf.Union(2, 3)
	assert.True(t, uf.Connected(1, 4))

	rep := uf.Find(1)
	assert.Equal(t, rep, uf.Union(1, 4))
	assert.Equal(t, rep, uf.Find(4))

	classes := uf.Classes()
	assert.Len(t, classes, 1)
}

func TestDistinctSurvivorsStayInDistinctClasses(t *testing.T) {
	ids := []scaffold.NodeID{1, 2, 3}
	uf := unionfind.New(ids)
	uf.Union(1, 2)

	classes := uf.Classes()
	assert.Len(t, classes, 2)
}
