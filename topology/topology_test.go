package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	_, err := New(0, nil)
	assert.Error(t, err)

	_, err = New(3, [][2]int{{0, 3}})
	assert.Error(t, err)

	_, err = New(3, [][2]int{{1, 1}})
	assert.Error(t, err)

	// 2 is isolated
	_, err = New(3, [][2]int{{0, 1}})
	assert.Error(t, err)

	// duplicate edges collapse
	topo, err := New(2, [][2]int{{0, 1}, {1, 0}})
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 1}}, topo.Edges())
}

func TestLineDistances(t *testing.T) {
	topo := Line(5)
	assert.Equal(t, 5, topo.NumQubits())
	assert.Equal(t, 0, topo.Distance(2, 2))
	assert.Equal(t, 4, topo.Distance(0, 4))
	assert.Equal(t, 3, topo.Distance(4, 1))
	assert.Equal(t, []int{0, 1, 2, 3}, topo.ShortestPath(0, 3))
	assert.Equal(t, []int{3, 2, 1, 0}, topo.ShortestPath(3, 0))
	assert.Equal(t, []int{2}, topo.ShortestPath(2, 2))
}

func TestCompleteDistances(t *testing.T) {
	topo := Complete(4)
	for u := 0; u < 4; u++ {
		for v := 0; v < 4; v++ {
			if u == v {
				assert.Equal(t, 0, topo.Distance(u, v))
			} else {
				assert.Equal(t, 1, topo.Distance(u, v))
			}
		}
	}
}

func TestRingDistances(t *testing.T) {
	topo := Ring(6)
	assert.Equal(t, 1, topo.Distance(0, 5))
	assert.Equal(t, 3, topo.Distance(0, 3))
	assert.Equal(t, 2, topo.Distance(1, 5))
}

func TestGrid(t *testing.T) {
	topo := Grid(2, 3)
	// 0 1 2
	// 3 4 5
	assert.Equal(t, 6, topo.NumQubits())
	assert.Equal(t, 1, topo.Distance(1, 4))
	assert.Equal(t, 3, topo.Distance(0, 5))
	assert.Equal(t, []int{1, 3}, topo.Neighbors(0))
	assert.Equal(t, []int{1}, topo.NeighborsIn(0, []int{1, 4, 5}))
}

func TestNeighbors(t *testing.T) {
	topo := Line(4)
	assert.Equal(t, []int{1}, topo.Neighbors(0))
	assert.Equal(t, []int{0, 2}, topo.Neighbors(1))
	assert.Equal(t, []int{2}, topo.NeighborsIn(1, []int{2, 3}))
	assert.Empty(t, topo.NeighborsIn(0, []int{2, 3}))
}

func TestCutVertices(t *testing.T) {
	topo := Line(5)
	full := []int{0, 1, 2, 3, 4}
	assert.Equal(t, []int{0, 4}, topo.NonCutting(full))
	assert.True(t, topo.IsCutting(2, full))
	assert.False(t, topo.IsCutting(0, full))

	// removing 2 from the subset splits the line; within {0,1} and
	// {3,4} nothing cuts
	assert.Equal(t, []int{0, 1, 3, 4}, topo.NonCutting([]int{0, 1, 3, 4}))

	// a single vertex never cuts
	assert.Equal(t, []int{3}, topo.NonCutting([]int{3}))
}

func TestCutVerticesRing(t *testing.T) {
	topo := Ring(5)
	full := []int{0, 1, 2, 3, 4}
	// a cycle has no cut vertex
	assert.Equal(t, full, topo.NonCutting(full))
	// dropping one vertex leaves a path whose interior cuts
	assert.Equal(t, []int{1, 4}, topo.NonCutting([]int{1, 2, 3, 4}))
	assert.True(t, topo.IsCutting(2, []int{1, 2, 3, 4}))
}
