package rtree

import (
	"container/heap"

	"geoshp/internal/geoerr"
	"geoshp/internal/geotypes"
)

// pqItem is one entry in the best-first search frontier: either an
// unexpanded node (isLeafEntry false) or a leaf entry's data index
// (isLeafEntry true), ordered by its distance from the query point.
type pqItem struct {
	dist        float64
	nodeIdx     int
	dataIndex   int
	isLeafEntry bool
}

// priorityQueue is a min-heap of pqItem ordered by dist, used to drive the
// best-first nearest-neighbor search.
type priorityQueue []pqItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].dataIndex < pq[j].dataIndex
}

func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }

func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// Nearest returns the data indices of the k entries closest to point, in
// increasing order of distance and, among entries at equal distance,
// increasing data index, via best-first search: a priority queue
// seeded with the root and repeatedly expanded along its closest frontier
// item, which guarantees the first k leaf entries popped are the k
// nearest (Roussopoulos et al.). Returns fewer than k if the tree holds
// fewer than k entries. Returns an InvalidQuery error if k <= 0.
func (t *RTree) Nearest(point geotypes.Point, k int) ([]int, error) {
	if k <= 0 {
		return nil, geoerr.NewInvalidQuery("k must be positive")
	}
	if t.count == 0 {
		return nil, nil
	}

	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, pqItem{dist: t.nodes[t.root].bbox.DistanceToPoint(point), nodeIdx: t.root})

	var result []int
	for pq.Len() > 0 && len(result) < k {
		item := heap.Pop(pq).(pqItem)

		if item.isLeafEntry {
			result = append(result, item.dataIndex)
			continue
		}

		n := t.nodes[item.nodeIdx]
		if n.isLeaf {
			for _, e := range n.entries {
				heap.Push(pq, pqItem{dist: e.bbox.DistanceToPoint(point), dataIndex: e.dataIndex, isLeafEntry: true})
			}
			continue
		}
		for _, childIdx := range n.children {
			heap.Push(pq, pqItem{dist: t.nodes[childIdx].bbox.DistanceToPoint(point), nodeIdx: childIdx})
		}
	}
	return result, nil
}

// WithinDistance returns the data indices of every entry whose stored bbox
// lies within maxDistance of point. It range-queries a square expanded by
// maxDistance around point (a cheap necessary condition) and then filters
// that candidate set with the exact bbox-to-point distance, so the result
// never includes a false positive introduced by the box expansion. Returns
// an InvalidQuery error if maxDistance is negative.
func (t *RTree) WithinDistance(point geotypes.Point, maxDistance float64) ([]int, error) {
	if maxDistance < 0 {
		return nil, geoerr.NewInvalidQuery("maxDistance must be non-negative")
	}
	if t.count == 0 {
		return nil, nil
	}
	search := geotypes.NewBoundingBox(
		point.X-maxDistance, point.Y-maxDistance,
		point.X+maxDistance, point.Y+maxDistance,
	)

	var result []int
	t.withinDistanceNode(t.root, point, maxDistance, search, &result)
	return result, nil
}

func (t *RTree) withinDistanceNode(idx int, point geotypes.Point, maxDistance float64, search geotypes.BoundingBox, result *[]int) {
	n := t.nodes[idx]
	if !n.bbox.Intersects(search) {
		return
	}
	if n.isLeaf {
		for _, e := range n.entries {
			if e.bbox.DistanceToPoint(point) <= maxDistance {
				*result = append(*result, e.dataIndex)
			}
		}
		return
	}
	for _, childIdx := range n.children {
		t.withinDistanceNode(childIdx, point, maxDistance, search, result)
	}
}
