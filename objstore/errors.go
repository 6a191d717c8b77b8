package objstore

import "errors"

var (
	ErrIDTooLarge    = errors.New("objstore: id does not fit the platform addressing width")
	ErrIDOutOfBounds = errors.New("objstore: id out of bounds for the dense length")
	ErrOutOfOrderID  = errors.New("objstore: non-dense id requires gap filling")
)
