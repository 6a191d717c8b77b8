package quadtree

/*

# Adaptive point quadtree

This package implements a 2D spatial index over points tagged with external
64 bit ids. Memory and query cost follow local point density rather than the
area of the boundary: regions with few points stay as single leaves, dense
regions subdivide recursively.

## Structure

A Tree is a recursive node. Every node owns a boundary rect, a capacity, an
optional remaining subdivision budget, a slice of directly stored items, and
either no children or exactly four children partitioning the boundary into
equal quadrants:

	+--------+--------+
	|   2    |   3    |      quadrant index bit 0: x >= cx
	+--------+--------+      quadrant index bit 1: y >= cy
	|   0    |   1    |
	+--------+--------+

Ownership of children is exclusive and strictly hierarchical. There are no
parent pointers: every traversal is top down and every merge decision is
returned bottom up through the call chain.

## Split and merge

A leaf that reaches capacity subdivides on the next insert and re-dispatches
its items into the quadrant that half-open containment assigns them. The
optional max depth is a hard ceiling: a node at depth zero appends past
capacity instead of subdividing, which is what guarantees termination when
many coincident points accumulate.

Deletion is the mirror. After a successful removal below it, an internal
node whose four children are all leaves holding no more than capacity items
in total collapses them back into itself. The check re-runs at every
ancestor on the way back up, so one deletion can cascade several merge
levels.

## Queries

Query collects the exact set of items inside a half-open range, pruning any
subtree whose boundary does not strictly overlap it. Result order is
traversal dependent and unspecified.

NearestNeighbors is a best-first pruned search: nodes are visited in
ascending order of the squared distance from the query point to their
boundary, and once k candidates are held any node whose lower bound exceeds
the current worst candidate is discarded whole. Ties on equal distance are
broken by ascending id, so results are deterministic.

Failure to insert or delete is an ordinary boolean outcome, not an error:
a point outside the boundary and a missing (id, point) pair are expected,
frequent and cheap for the caller to check. The only errors in this package
are construction errors for degenerate parameters.

The tree is a single-threaded structure with no internal locking. The
embedding layer is responsible for serializing access.

*/
