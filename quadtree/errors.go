package quadtree

import "errors"

var (
	ErrDegenerateBoundary = errors.New("quadtree: boundary min must be strictly less than max on both axes")
	ErrBadCapacity        = errors.New("quadtree: capacity must be at least 1")
	ErrBadMaxDepth        = errors.New("quadtree: max depth must be at least 1")
)
