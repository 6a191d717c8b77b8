package quadtree

import (
	"github.com/forestrie/go-quadtree/geom"
)

// Query returns every stored item whose point lies in rng under half-open
// containment. Subtrees whose boundary does not strictly overlap rng are
// pruned whole. The returned order is traversal dependent and unspecified;
// the set is exact.
func (t *Tree) Query(rng geom.Rect) []Item {
	var out []Item
	t.queryInto(rng, &out)
	return out
}

func (t *Tree) queryInto(rng geom.Rect, out *[]Item) {
	if !t.boundary.Intersects(rng) {
		return
	}
	for _, it := range t.items {
		if rng.Contains(it.Point) {
			*out = append(*out, it)
		}
	}
	if t.children != nil {
		for i := range t.children {
			t.children[i].queryInto(rng, out)
		}
	}
}
