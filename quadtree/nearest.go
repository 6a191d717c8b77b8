package quadtree

import (
	"container/heap"
	"sort"

	"github.com/forestrie/go-quadtree/geom"
)

// NearestNeighbor returns the single closest item to p. The second return
// is false only when the tree holds no items at all.
func (t *Tree) NearestNeighbor(p geom.Point) (Item, bool) {
	best := t.NearestNeighbors(p, 1)
	if len(best) == 0 {
		return Item{}, false
	}
	return best[0], true
}

// NearestNeighbors returns the min(k, Len()) items closest to p, ascending
// by squared distance. Ties on equal distance are broken by ascending id,
// so the result is deterministic regardless of insertion or traversal
// order.
//
// The search is best-first: nodes are visited in ascending order of the
// squared distance from p to their boundary, and once k candidates are held
// any node whose lower bound exceeds the current worst candidate is pruned
// together with its whole subtree. A node whose bound equals the worst
// distance is still visited, since it may hold an equal-distance item with
// a smaller id.
func (t *Tree) NearestNeighbors(p geom.Point, k int) []Item {
	if k <= 0 {
		return nil
	}

	nodes := nodeQueue{{node: t, dist: t.boundary.SqDistToPoint(p)}}
	var best candidateHeap

	for len(nodes) > 0 {
		ne := heap.Pop(&nodes).(nodeDist)
		if len(best) == k && ne.dist > best[0].dist {
			continue
		}

		n := ne.node
		for _, it := range n.items {
			c := candidate{item: it, dist: p.SqDist(it.Point)}
			if len(best) < k {
				heap.Push(&best, c)
			} else if best[0].worseThan(c) {
				best[0] = c
				heap.Fix(&best, 0)
			}
		}

		if n.children != nil {
			for i := range n.children {
				child := &n.children[i]
				d := child.boundary.SqDistToPoint(p)
				if len(best) == k && d > best[0].dist {
					continue
				}
				heap.Push(&nodes, nodeDist{node: child, dist: d})
			}
		}
	}

	out := make([]Item, len(best))
	for i, c := range best {
		out[i] = c.item
	}
	sort.Slice(out, func(i, j int) bool {
		di, dj := p.SqDist(out[i].Point), p.SqDist(out[j].Point)
		if di != dj {
			return di < dj
		}
		return out[i].ID < out[j].ID
	})
	return out
}

type candidate struct {
	item Item
	dist float64
}

// worseThan orders candidates by (squared distance, id). The worst
// candidate is the greatest under this total order.
func (c candidate) worseThan(o candidate) bool {
	if c.dist != o.dist {
		return c.dist > o.dist
	}
	return c.item.ID > o.item.ID
}

// candidateHeap is a bounded max-heap of the k best candidates so far, so
// the worst retained candidate is inspectable at the root in O(1).
type candidateHeap []candidate

func (h candidateHeap) Len() int           { return len(h) }
func (h candidateHeap) Less(i, j int) bool { return h[i].worseThan(h[j]) }
func (h candidateHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *candidateHeap) Push(x any)        { *h = append(*h, x.(candidate)) }
func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

type nodeDist struct {
	node *Tree
	dist float64
}

// nodeQueue is a min-heap of nodes keyed by the squared distance from the
// query point to their boundary (0 when the point is inside it).
type nodeQueue []nodeDist

func (q nodeQueue) Len() int           { return len(q) }
func (q nodeQueue) Less(i, j int) bool { return q[i].dist < q[j].dist }
func (q nodeQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x any)        { *q = append(*q, x.(nodeDist)) }
func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	x := old[n-1]
	*q = old[:n-1]
	return x
}
