package geom

/*

# Geometry primitives for the quadtree

This package provides the two value types everything else is built on: a 2D
Point and an axis aligned Rect. Both are plain structs, copied freely, and
compared by exact IEEE equality. There is no epsilon anywhere in this module.

## Half-open containment vs strict-overlap intersection

The two predicates are deliberately asymmetric:

  - Contains is half-open: a point belongs to a rect iff
    MinX <= x < MaxX and MinY <= y < MaxY.
  - Intersects is a strict open-interval overlap: two rects intersect iff
    each one's min is strictly less than the other's max on both axes.
    Rects that only share an edge or a corner do NOT intersect.

The asymmetry is what makes quadrant subdivision exact. When a boundary is
cut at its midpoint into four child rects, every point in the parent belongs
to exactly one child under the half-open rule, with no double counting on
the shared edges. The strict overlap rule keeps range-query pruning
consistent with that: a query rect that merely touches a child boundary
cannot contain any of the child's points, so the child is safely skipped.

## Distance lower bound

SqDistToPoint gives the squared distance from a point to the nearest part of
a rect, 0 if the point is inside or on it. The nearest-neighbor search uses
it as an exact lower bound on the distance to any item stored under a node.

*/
