package geom

// Rect is an axis aligned rectangle. Callers are expected to keep
// Min <= Max on both axes; NewRect and the quadtree constructors check
// this, the predicates themselves do not.
type Rect struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// NewRect builds a Rect from its four bounds.
func NewRect(minX, minY, maxX, maxY float64) Rect {
	return Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// Contains reports whether p lies in r under the half-open rule: points on
// the min edges are inside, points on the max edges are outside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X < r.MaxX && p.Y >= r.MinY && p.Y < r.MaxY
}

// Intersects reports whether r and o overlap on a region of non-zero area.
// Rects sharing only an edge or a corner do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.MinX < o.MaxX && r.MaxX > o.MinX && r.MinY < o.MaxY && r.MaxY > o.MinY
}

// SqDistToPoint returns the squared distance from p to the nearest point of
// r, or 0 if p is inside or on r. Computed per axis by clamping p into
// [Min, Max] and summing the squared deltas.
func (r Rect) SqDistToPoint(p Point) float64 {
	dx := axisDist(p.X, r.MinX, r.MaxX)
	dy := axisDist(p.Y, r.MinY, r.MaxY)
	return dx*dx + dy*dy
}

func axisDist(v, lo, hi float64) float64 {
	if v < lo {
		return lo - v
	}
	if v > hi {
		return v - hi
	}
	return 0
}

// Midpoint returns the center of r on both axes, the cut used for quadrant
// subdivision.
func (r Rect) Midpoint() (cx, cy float64) {
	return 0.5 * (r.MinX + r.MaxX), 0.5 * (r.MinY + r.MaxY)
}

// IsDegenerate reports whether r has no interior on either axis (min >= max).
// The quadtree refuses degenerate boundaries at construction.
func (r Rect) IsDegenerate() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}
