package geom

// Point is a 2D point. It is a value type and is compared by exact IEEE
// equality, never by tolerance.
type Point struct {
	X float64
	Y float64
}

// SqDist returns the squared euclidean distance between p and q.
func (p Point) SqDist(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}
