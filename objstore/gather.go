package objstore

// Gather produces a payload handle per id, preserving input order.
//
// In strict mode any hole, out-of-range id, or id with no payload fails the
// whole call with ErrIDOutOfBounds. In lenient mode such ids yield a nil
// handle instead. An id that cannot be addressed at all fails with
// ErrIDTooLarge in either mode; that is a caller bug, not a hole.
func (s *Store[G]) Gather(ids []uint64, strict bool) ([]*Object, error) {
	out := make([]*Object, 0, len(ids))
	for _, id := range ids {
		i, err := idIndex(id)
		if err != nil {
			return nil, err
		}
		if i >= len(s.entries) || s.entries[i] == nil || s.entries[i].Obj == nil {
			if strict {
				return nil, ErrIDOutOfBounds
			}
			out = append(out, nil)
			continue
		}
		out = append(out, s.entries[i].Obj)
	}
	return out, nil
}

// BulkLookup is Gather unwrapped one level: it returns the payload values
// themselves, with nil standing in for "no payload" in lenient mode. Meant
// for a boundary layer assembling host-native result collections in one
// pass.
func (s *Store[G]) BulkLookup(ids []uint64, strict bool) ([]any, error) {
	objs, err := s.Gather(ids, strict)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(objs))
	for i, o := range objs {
		if o != nil {
			out[i] = o.Value
		}
	}
	return out, nil
}
