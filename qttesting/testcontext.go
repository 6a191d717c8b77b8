// Package qttesting provides deterministic test data generation shared by
// the quadtree and objstore package tests.
package qttesting

import (
	"math/rand/v2"
	"testing"

	"github.com/google/uuid"

	"github.com/forestrie/go-quadtree/geom"
)

type TestConfig struct {
	// Seed drives the RNG. It is normal to force it to some fixed value so
	// that the generated data is the same from run to run.
	Seed     uint64
	Boundary geom.Rect
}

type TestContext struct {
	T   *testing.T
	Cfg TestConfig
	Rng *rand.Rand
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	return TestContext{
		T:   t,
		Cfg: cfg,
		Rng: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed+1)),
	}
}

// Point generates a point strictly inside the configured boundary.
func (c *TestContext) Point() geom.Point {
	b := c.Cfg.Boundary
	return geom.Point{
		X: b.MinX + c.Rng.Float64()*(b.MaxX-b.MinX),
		Y: b.MinY + c.Rng.Float64()*(b.MaxY-b.MinY),
	}
}

// Points generates n in-bounds points. Pairing them with distinct ids keeps
// every (id, point) identity distinct even if the RNG repeats a coordinate.
func (c *TestContext) Points(n int) []geom.Point {
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = c.Point()
	}
	return pts
}

// PayloadTag returns a fresh uuid string for tagging payload objects, so
// entries are tellable apart in failure output.
func (c *TestContext) PayloadTag() string {
	return uuid.NewString()
}
