package quadtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forestrie/go-quadtree/geom"
	"github.com/forestrie/go-quadtree/qttesting"
)

func TestDeleteSimple(t *testing.T) {
	tree := mustNew(t, 4)

	p1 := geom.Point{X: 10, Y: 10}
	p2 := geom.Point{X: 20, Y: 20}
	p3 := geom.Point{X: 30, Y: 30}
	require.True(t, tree.Insert(Item{ID: 1, Point: p1}))
	require.True(t, tree.Insert(Item{ID: 2, Point: p2}))
	require.True(t, tree.Insert(Item{ID: 3, Point: p3}))
	require.Equal(t, 3, tree.Len())

	assert.True(t, tree.Delete(2, p2))
	assert.Equal(t, 2, tree.Len())

	// Deleting the same pair again is an ordinary false, not an error.
	assert.False(t, tree.Delete(2, p2))
	assert.Equal(t, 2, tree.Len())

	assert.True(t, tree.Delete(1, p1))
	assert.True(t, tree.Delete(3, p3))
	assert.Equal(t, 0, tree.Len())
}

func TestDeleteNonExistent(t *testing.T) {
	tree := mustNew(t, 4)
	require.True(t, tree.Insert(Item{ID: 1, Point: geom.Point{X: 10, Y: 10}}))
	require.True(t, tree.Insert(Item{ID: 2, Point: geom.Point{X: 20, Y: 20}}))

	tests := []struct {
		name string
		id   uint64
		p    geom.Point
	}{
		{"wrong id at a stored point", 99, geom.Point{X: 10, Y: 10}},
		{"right id at the wrong point", 1, geom.Point{X: 30, Y: 30}},
		{"point outside the boundary", 1, geom.Point{X: 200, Y: 200}},
		{"near miss by a millionth", 1, geom.Point{X: 10.000001, Y: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, tree.Delete(tt.id, tt.p))
			assert.Equal(t, 2, tree.Len())
		})
	}
}

// The concrete scenario: capacity 4, ids 1-5 force a split, deleting 3,4,5
// lets the tree merge back down.
func TestDeleteWithSplitAndMerge(t *testing.T) {
	tree := mustNew(t, 4)

	pts := []geom.Point{
		{X: 10, Y: 10}, {X: 20, Y: 20}, {X: 30, Y: 30}, {X: 40, Y: 40}, {X: 60, Y: 60},
	}
	for i, p := range pts {
		require.True(t, tree.Insert(Item{ID: uint64(i + 1), Point: p}))
	}

	initialRects := len(tree.AllRectangles())
	require.Greater(t, initialRects, 1, "five items over capacity four must split")
	require.Equal(t, 5, tree.Len())

	assert.True(t, tree.Delete(3, pts[2]))
	assert.True(t, tree.Delete(4, pts[3]))
	assert.True(t, tree.Delete(5, pts[4]))

	assert.Equal(t, 2, tree.Len())
	assert.LessOrEqual(t, len(tree.AllRectangles()), initialRects)
}

func TestDeleteCascadingMerge(t *testing.T) {
	tree := mustNew(t, 1)

	// Near-coincident points in one corner build a deep chain of splits.
	pts := []geom.Point{
		{X: 10.0, Y: 10.0}, {X: 10.1, Y: 10.1}, {X: 10.2, Y: 10.2},
		{X: 10.3, Y: 10.3}, {X: 10.4, Y: 10.4},
	}
	for i, p := range pts {
		require.True(t, tree.Insert(Item{ID: uint64(i), Point: p}))
	}

	initialRects := len(tree.AllRectangles())
	require.Equal(t, 5, tree.Len())
	require.Greater(t, initialRects, 5, "a deep chain of nodes")

	assert.True(t, tree.Delete(2, pts[2]))
	assert.True(t, tree.Delete(3, pts[3]))
	assert.True(t, tree.Delete(4, pts[4]))
	assert.Equal(t, 2, tree.Len())
	assert.LessOrEqual(t, len(tree.AllRectangles()), initialRects)

	// Removing all but one collapses every level on a single unwind.
	assert.True(t, tree.Delete(1, pts[1]))
	assert.Len(t, tree.AllRectangles(), 1,
		"one remaining item fits the root, the whole tree merges back to a leaf")
}

func TestDeleteAllMergesToRoot(t *testing.T) {
	tree := mustNew(t, 3)
	c := qttesting.NewTestContext(t, qttesting.TestConfig{Seed: 42, Boundary: testBoundary()})

	items := make([]Item, 0, 64)
	for i, p := range c.Points(64) {
		items = append(items, Item{ID: uint64(i + 1), Point: p})
	}
	for _, it := range items {
		require.True(t, tree.Insert(it))
	}
	require.Equal(t, 64, tree.Len())

	// Delete in an order unrelated to insertion order.
	for i := len(items) - 1; i >= 0; i -= 2 {
		require.True(t, tree.Delete(items[i].ID, items[i].Point))
	}
	for i := 0; i < len(items); i += 2 {
		require.True(t, tree.Delete(items[i].ID, items[i].Point))
	}

	assert.Equal(t, 0, tree.Len())
	assert.Len(t, tree.AllRectangles(), 1, "fully merged back to the root")
}

func TestDeleteDistinguishesCoincidentItems(t *testing.T) {
	tree := mustNew(t, 4)

	loc := geom.Point{X: 50, Y: 50}
	require.True(t, tree.Insert(Item{ID: 10, Point: loc}))
	require.True(t, tree.Insert(Item{ID: 20, Point: loc}))
	require.True(t, tree.Insert(Item{ID: 30, Point: loc}))
	require.Equal(t, 3, tree.Len())

	assert.True(t, tree.Delete(20, loc))
	assert.Equal(t, 2, tree.Len())

	got := itemIDs(tree.Query(geom.NewRect(49, 49, 51, 51)))
	assert.Equal(t, []uint64{10, 30}, got)

	assert.False(t, tree.Delete(20, loc), "already removed")
}

func TestDeletePreservesOtherOperations(t *testing.T) {
	tree := mustNew(t, 4)
	require.True(t, tree.Insert(Item{ID: 1, Point: geom.Point{X: 10, Y: 10}}))
	require.True(t, tree.Insert(Item{ID: 2, Point: geom.Point{X: 20, Y: 20}}))
	require.True(t, tree.Insert(Item{ID: 3, Point: geom.Point{X: 80, Y: 80}}))
	require.True(t, tree.Insert(Item{ID: 4, Point: geom.Point{X: 90, Y: 90}}))

	require.True(t, tree.Delete(2, geom.Point{X: 20, Y: 20}))

	got := tree.Query(geom.NewRect(5, 5, 25, 25))
	require.Len(t, got, 1)
	assert.Equal(t, uint64(1), got[0].ID)

	nearest, ok := tree.NearestNeighbor(geom.Point{X: 15, Y: 15})
	require.True(t, ok)
	assert.Equal(t, uint64(1), nearest.ID)

	assert.True(t, tree.Insert(Item{ID: 5, Point: geom.Point{X: 50, Y: 50}}))
	assert.Equal(t, 4, tree.Len())
}
