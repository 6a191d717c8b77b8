package quadtree

import (
	"github.com/forestrie/go-quadtree/geom"
)

// Delete removes the first stored item matching (id, p) exactly and reports
// whether one was removed. Equality is exact: no epsilon on either
// coordinate. After a successful removal every ancestor on the unwind path
// re-checks itself for merge eligibility, so a single delete can collapse
// several levels of the tree.
func (t *Tree) Delete(id uint64, p geom.Point) bool {
	if !t.boundary.Contains(p) {
		return false
	}
	if t.children == nil {
		for i, it := range t.items {
			if it.ID == id && it.Point == p {
				t.items = append(t.items[:i], t.items[i+1:]...)
				return true
			}
		}
		return false
	}
	if !t.children[t.childIndex(p)].Delete(id, p) {
		return false
	}
	t.maybeMerge()
	return true
}

// maybeMerge collapses this node's children back into it when all four are
// leaves and their combined item count no longer exceeds capacity. The
// children are discarded whole and this node becomes a leaf again.
func (t *Tree) maybeMerge() {
	kids := t.children
	if kids == nil {
		return
	}
	total := 0
	for i := range kids {
		if kids[i].children != nil {
			return
		}
		total += len(kids[i].items)
	}
	if total > t.capacity {
		return
	}

	merged := make([]Item, 0, total)
	for i := range kids {
		merged = append(merged, kids[i].items...)
	}
	t.items = merged
	t.children = nil
}
