package rtree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geoshp/internal/geoerr"
	"geoshp/internal/geotypes"
)

func box(minX, minY, maxX, maxY float64) geotypes.BoundingBox {
	return geotypes.NewBoundingBox(minX, minY, maxX, maxY)
}

func TestInsertAndRangeQuery(t *testing.T) {
	tree := New(4)
	tree.Insert(box(0, 0, 1, 1), 0)
	tree.Insert(box(5, 5, 6, 6), 1)
	tree.Insert(box(0.5, 0.5, 1.5, 1.5), 2)

	require.Equal(t, 3, tree.Len())

	got := tree.RangeQuery(box(-1, -1, 2, 2))
	assert.ElementsMatch(t, []int{0, 2}, got)
}

func TestRangeQueryEmptyTree(t *testing.T) {
	tree := New(4)
	assert.Empty(t, tree.RangeQuery(box(0, 0, 10, 10)))
}

// TestManyInsertsPreserveAllEntries drives enough inserts through a small
// max-entries tree to force repeated leaf and internal splits, then checks
// that every inserted box is still retrievable by a range query covering
// everything, and that ancestor bboxes never shrink to exclude a
// descendant they should contain.
func TestManyInsertsPreserveAllEntries(t *testing.T) {
	tree := New(4)
	const n = 500
	r := rand.New(rand.NewSource(1))

	inserted := make(map[int]geotypes.BoundingBox, n)
	for i := 0; i < n; i++ {
		x := r.Float64() * 1000
		y := r.Float64() * 1000
		b := box(x, y, x+1, y+1)
		tree.Insert(b, i)
		inserted[i] = b
	}

	require.Equal(t, n, tree.Len())

	got := tree.RangeQuery(box(-1e6, -1e6, 1e6, 1e6))
	require.Len(t, got, n)

	expected := make([]int, n)
	for i := range expected {
		expected[i] = i
	}
	assert.ElementsMatch(t, expected, got)

	checkAncestorBoundsCoverDescendants(t, tree, tree.root)
}

// checkAncestorBoundsCoverDescendants walks the tree verifying every
// node's bbox is the exact union of its children's/entries' bboxes -- the
// invariant that must hold after every insert and split.
func checkAncestorBoundsCoverDescendants(t *testing.T, tree *RTree, idx int) {
	t.Helper()
	n := tree.nodes[idx]
	union := geotypes.EmptyBoundingBox()
	if n.isLeaf {
		for _, e := range n.entries {
			union = union.Union(e.bbox)
		}
	} else {
		for _, childIdx := range n.children {
			checkAncestorBoundsCoverDescendants(t, tree, childIdx)
			union = union.Union(tree.nodes[childIdx].bbox)
		}
	}
	assert.Equal(t, n.bbox, union, "node %d bbox does not equal union of children", idx)
}

func TestSplitRespectsMinEntries(t *testing.T) {
	tree := New(4)
	for i := 0; i < 20; i++ {
		x := float64(i)
		tree.Insert(box(x, x, x+1, x+1), i)
	}
	for idx, n := range tree.nodes {
		if idx == tree.root {
			continue
		}
		count := len(n.entries) + len(n.children)
		assert.GreaterOrEqual(t, count, tree.minEntries, "node %d below minEntries", idx)
	}
}

func TestNearestReturnsClosestFirst(t *testing.T) {
	tree := New(4)
	tree.Insert(box(0, 0, 0, 0), 0)
	tree.Insert(box(10, 10, 10, 10), 1)
	tree.Insert(box(1, 1, 1, 1), 2)
	tree.Insert(box(-5, -5, -5, -5), 3)

	got, err := tree.Nearest(geotypes.Point{X: 0, Y: 0}, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, got)
}

func TestNearestKGreaterThanCount(t *testing.T) {
	tree := New(4)
	tree.Insert(box(0, 0, 0, 0), 0)
	tree.Insert(box(1, 1, 1, 1), 1)

	got, err := tree.Nearest(geotypes.Point{X: 0, Y: 0}, 10)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestNearestRejectsNonPositiveK(t *testing.T) {
	tree := New(4)
	tree.Insert(box(0, 0, 0, 0), 0)
	_, err := tree.Nearest(geotypes.Point{X: 0, Y: 0}, 0)
	assert.True(t, geoerr.IsInvalidQuery(err), "err = %v, want InvalidQuery", err)
}

// TestNearestBreaksTiesByDataIndex covers two entries at identical distance
// from the query point: container/heap gives no ordering guarantee among
// equal-Less items on its own, so Less must break the tie by data index for
// the result order to be deterministic.
func TestNearestBreaksTiesByDataIndex(t *testing.T) {
	tree := New(4)
	tree.Insert(box(5, 0, 5, 0), 7)
	tree.Insert(box(-5, 0, -5, 0), 3)
	tree.Insert(box(0, 5, 0, 5), 9)

	got, err := tree.Nearest(geotypes.Point{X: 0, Y: 0}, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 7, 9}, got)
}

func TestWithinDistance(t *testing.T) {
	tree := New(4)
	tree.Insert(box(0, 0, 0, 0), 0)
	tree.Insert(box(3, 0, 3, 0), 1)
	tree.Insert(box(100, 100, 100, 100), 2)

	got, err := tree.WithinDistance(geotypes.Point{X: 0, Y: 0}, 5)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1}, got)
}

func TestWithinDistanceNegative(t *testing.T) {
	tree := New(4)
	tree.Insert(box(0, 0, 0, 0), 0)
	_, err := tree.WithinDistance(geotypes.Point{X: 0, Y: 0}, -1)
	assert.True(t, geoerr.IsInvalidQuery(err), "err = %v, want InvalidQuery", err)
}
