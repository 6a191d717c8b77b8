package quadtree

import (
	"github.com/forestrie/go-quadtree/geom"
)

// Item is one indexed point. Identity for deletion is the exact (ID, Point)
// pair; the same id may appear at several points and the same point under
// several ids.
type Item struct {
	ID    uint64
	Point geom.Point
}

// unboundedDepth marks a node whose subdivision is limited only by point
// distinctness.
const unboundedDepth = -1

// Tree is a quadtree node. The root is created by New or NewWithMaxDepth;
// interior and leaf nodes are the same type, distinguished only by whether
// children is nil.
type Tree struct {
	boundary geom.Rect
	capacity int

	// depth is the remaining subdivision budget: 0 means this node must
	// never split, unboundedDepth means no limit. Decremented on each
	// level created by split.
	depth int

	items    []Item
	children *[4]Tree
}

// New returns an empty tree covering boundary, with no depth limit. A node
// holds at most capacity items before subdividing.
func New(boundary geom.Rect, capacity int) (*Tree, error) {
	return newTree(boundary, capacity, unboundedDepth)
}

// NewWithMaxDepth is New with a hard subdivision ceiling. maxDepth counts
// levels below the root: at that depth a node accumulates items past
// capacity instead of splitting, which bounds recursion even when many
// coincident points are inserted.
func NewWithMaxDepth(boundary geom.Rect, capacity, maxDepth int) (*Tree, error) {
	if maxDepth < 1 {
		return nil, ErrBadMaxDepth
	}
	return newTree(boundary, capacity, maxDepth)
}

func newTree(boundary geom.Rect, capacity, depth int) (*Tree, error) {
	if boundary.IsDegenerate() {
		return nil, ErrDegenerateBoundary
	}
	if capacity < 1 {
		return nil, ErrBadCapacity
	}
	return &Tree{boundary: boundary, capacity: capacity, depth: depth}, nil
}

// Boundary returns the rect this node covers.
func (t *Tree) Boundary() geom.Rect {
	return t.boundary
}

// Insert adds it to the tree. It returns false, without modifying the tree,
// if it.Point is not contained in the boundary; for the root this is the
// caller's only signal that a point is outside the index's coverage.
func (t *Tree) Insert(it Item) bool {
	if !t.boundary.Contains(it.Point) {
		return false
	}
	if t.children == nil {
		if len(t.items) < t.capacity || t.depth == 0 {
			t.items = append(t.items, it)
			return true
		}
		t.split()
	}
	return t.children[t.childIndex(it.Point)].Insert(it)
}

// InsertMany inserts pts under sequential ids beginning at startID. It
// stops at the first point outside the boundary and reports false; the
// first return is the id of the last item actually inserted (startID-1 if
// none were).
func (t *Tree) InsertMany(startID uint64, pts []geom.Point) (uint64, bool) {
	id := startID
	for _, p := range pts {
		if !t.Insert(Item{ID: id, Point: p}) {
			return id - 1, false
		}
		id++
	}
	return id - 1, true
}

// childIndex maps a point in this node's boundary to the quadrant that
// contains it: bit 0 set for x >= cx, bit 1 set for y >= cy. Total and
// unambiguous under the half-open containment rule.
func (t *Tree) childIndex(p geom.Point) int {
	cx, cy := t.boundary.Midpoint()
	idx := 0
	if p.X >= cx {
		idx |= 1
	}
	if p.Y >= cy {
		idx |= 2
	}
	return idx
}

// split turns this leaf into an internal node with four children covering
// the equal quadrants of the boundary, then re-dispatches every directly
// stored item into its quadrant. Re-dispatch can recursively split a child
// that is itself over capacity.
func (t *Tree) split() {
	cx, cy := t.boundary.Midpoint()
	b := t.boundary

	childDepth := t.depth
	if childDepth > 0 {
		childDepth--
	}

	kids := &[4]Tree{
		{boundary: geom.Rect{MinX: b.MinX, MinY: b.MinY, MaxX: cx, MaxY: cy}},
		{boundary: geom.Rect{MinX: cx, MinY: b.MinY, MaxX: b.MaxX, MaxY: cy}},
		{boundary: geom.Rect{MinX: b.MinX, MinY: cy, MaxX: cx, MaxY: b.MaxY}},
		{boundary: geom.Rect{MinX: cx, MinY: cy, MaxX: b.MaxX, MaxY: b.MaxY}},
	}
	for i := range kids {
		kids[i].capacity = t.capacity
		kids[i].depth = childDepth
	}

	items := t.items
	t.items = nil
	t.children = kids

	for _, it := range items {
		kids[t.childIndex(it.Point)].Insert(it)
	}
}

// Len returns the total number of items currently indexed.
func (t *Tree) Len() int {
	n := len(t.items)
	if t.children != nil {
		for i := range t.children {
			n += t.children[i].Len()
		}
	}
	return n
}

// AllRectangles returns the boundary of every node, leaves and internal
// alike, in pre-order. A debugging and visualization hook.
func (t *Tree) AllRectangles() []geom.Rect {
	var out []geom.Rect
	t.appendRectangles(&out)
	return out
}

func (t *Tree) appendRectangles(out *[]geom.Rect) {
	*out = append(*out, t.boundary)
	if t.children != nil {
		for i := range t.children {
			t.children[i].appendRectangles(out)
		}
	}
}
