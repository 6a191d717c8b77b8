package objstore

import (
	"math"
	"sort"
)

// Object is an opaque payload cell. The store keys its reverse index on the
// cell's address, so identity is reference equality of the *Object, never
// structural equality of Value. A nil *Object means "no payload".
type Object struct {
	Value any
}

// NewObject wraps v in a fresh identity cell.
func NewObject(v any) *Object {
	return &Object{Value: v}
}

// Entry is the stored record for a live id: the geometric key plus an
// optional payload handle. The id itself is implied by the entry's index in
// the dense slice.
type Entry[G any] struct {
	Geom G
	Obj  *Object
}

// Removed pairs an id with the entry that was popped from it.
type Removed[G any] struct {
	ID    uint64
	Entry *Entry[G]
}

// Store is a dense store of entries indexed by id.
//
// Invariants:
//   - valid ids are < DenseLen(); a slot is occupied or a hole (nil).
//   - every occupied slot counts once in the live length.
//   - popped ids go onto the free list (LIFO) for reuse.
//   - the reverse map tracks identity -> ids for every occupied slot whose
//     payload is non-nil; each bucket is deduplicated and unordered.
type Store[G any] struct {
	entries  []*Entry[G]
	free     []uint64
	objToIDs map[*Object][]uint64
	live     int
}

// New returns an empty store.
func New[G any]() *Store[G] {
	return &Store[G]{objToIDs: make(map[*Object][]uint64)}
}

// NewWithCapacity returns an empty store with room preallocated for n
// entries.
func NewWithCapacity[G any](n int) *Store[G] {
	return &Store[G]{
		entries:  make([]*Entry[G], 0, n),
		objToIDs: make(map[*Object][]uint64),
	}
}

// Len returns the number of live entries.
func (s *Store[G]) Len() int {
	return s.live
}

// IsEmpty reports whether no entries are live.
func (s *Store[G]) IsEmpty() bool {
	return s.live == 0
}

// DenseLen returns the current dense length. Valid ids are < DenseLen().
func (s *Store[G]) DenseLen() int {
	return len(s.entries)
}

// Clear removes every entry, hole and reverse mapping.
func (s *Store[G]) Clear() {
	s.entries = nil
	s.free = nil
	s.objToIDs = make(map[*Object][]uint64)
	s.live = 0
}

// ContainsID reports whether id addresses a live entry.
func (s *Store[G]) ContainsID(id uint64) bool {
	i, err := idIndex(id)
	if err != nil || i >= len(s.entries) {
		return false
	}
	return s.entries[i] != nil
}

// ContainsObj reports whether this exact object identity is held at any id.
func (s *Store[G]) ContainsObj(obj *Object) bool {
	_, ok := s.objToIDs[obj]
	return ok
}

// AllocID returns a reusable dense id: the most recently freed index if any
// (LIFO), else the next tail index. The result is always within or exactly
// at the current dense length.
func (s *Store[G]) AllocID() uint64 {
	if n := len(s.free); n > 0 {
		id := s.free[n-1]
		s.free = s.free[:n-1]
		return id
	}
	return uint64(len(s.entries))
}

// Insert stores (geom, obj) under a freshly allocated id and returns it.
// It cannot fail: AllocID never returns an id past the dense length.
func (s *Store[G]) Insert(geom G, obj *Object) uint64 {
	id := s.AllocID()
	_ = s.InsertAt(id, geom, obj, false)
	return id
}

// InsertAt places or replaces the entry at id.
//
// An id addressing the dense range, or extending it by exactly one,
// is always accepted: replacing an occupied slot releases the old payload's
// reverse mapping first, and filling a hole increments the live count. An
// id further beyond the dense length fails with ErrOutOfOrderID unless
// fillGaps is true, in which case the intervening slots become holes.
func (s *Store[G]) InsertAt(id uint64, geom G, obj *Object, fillGaps bool) error {
	i, err := idIndex(id)
	if err != nil {
		return err
	}

	if i > len(s.entries) {
		if !fillGaps {
			return ErrOutOfOrderID
		}
		for len(s.entries) < i {
			s.entries = append(s.entries, nil)
		}
	}

	e := &Entry[G]{Geom: geom, Obj: obj}

	if i == len(s.entries) {
		if obj != nil {
			s.addRevMapping(obj, id)
		}
		s.entries = append(s.entries, e)
		s.live++
		return nil
	}

	wasHole := s.entries[i] == nil
	if old := s.entries[i]; old != nil && old.Obj != nil {
		s.removeRevMapping(old.Obj, id)
	}
	if obj != nil {
		s.addRevMapping(obj, id)
	}
	s.entries[i] = e
	if wasHole {
		s.live++
	}
	return nil
}

// Get returns the entry at id, or nil for a hole or out-of-range id. The
// returned pointer aliases the stored entry, so callers may mutate it in
// place.
func (s *Store[G]) Get(id uint64) *Entry[G] {
	i, err := idIndex(id)
	if err != nil || i >= len(s.entries) {
		return nil
	}
	return s.entries[i]
}

// GetObj returns the payload handle at id, or nil when the id is absent or
// holds no payload.
func (s *Store[G]) GetObj(id uint64) *Object {
	e := s.Get(id)
	if e == nil {
		return nil
	}
	return e.Obj
}

// PopID removes and returns the entry at id, pushing id onto the free list.
// A hole or out-of-range id is a no-op returning false.
func (s *Store[G]) PopID(id uint64) (*Entry[G], bool) {
	i, err := idIndex(id)
	if err != nil || i >= len(s.entries) {
		return nil, false
	}
	e := s.entries[i]
	if e == nil {
		return nil, false
	}
	s.entries[i] = nil
	if e.Obj != nil {
		s.removeRevMapping(e.Obj, id)
	}
	s.free = append(s.free, id)
	s.live--
	return e, true
}

// MinIDForObj returns the numerically smallest id holding this object
// identity, the deterministic representative of the identity's id set.
func (s *Store[G]) MinIDForObj(obj *Object) (uint64, bool) {
	ids, ok := s.objToIDs[obj]
	if !ok || len(ids) == 0 {
		return 0, false
	}
	min := ids[0]
	for _, id := range ids[1:] {
		if id < min {
			min = id
		}
	}
	return min, true
}

// IDsForObjSorted returns every id holding this object identity, ascending.
func (s *Store[G]) IDsForObjSorted(obj *Object) []uint64 {
	ids, ok := s.objToIDs[obj]
	if !ok {
		return nil
	}
	out := make([]uint64, len(ids))
	copy(out, ids)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// PopByObjectAll removes every id currently mapped to this object identity,
// releasing the whole reverse bucket at once. Removed entries are returned
// ascending by id and each freed id goes onto the free list.
func (s *Store[G]) PopByObjectAll(obj *Object) []Removed[G] {
	ids, ok := s.objToIDs[obj]
	if !ok {
		return nil
	}
	delete(s.objToIDs, obj)

	sorted := make([]uint64, len(ids))
	copy(sorted, ids)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	out := make([]Removed[G], 0, len(sorted))
	for _, id := range sorted {
		i := int(id)
		e := s.entries[i]
		if e == nil {
			continue
		}
		s.entries[i] = nil
		s.free = append(s.free, id)
		s.live--
		out = append(out, Removed[G]{ID: id, Entry: e})
	}
	return out
}

// PopByObjectMin removes only the canonical (numerically smallest) id for
// this object identity.
func (s *Store[G]) PopByObjectMin(obj *Object) (Removed[G], bool) {
	id, ok := s.MinIDForObj(obj)
	if !ok {
		return Removed[G]{}, false
	}
	e, ok := s.PopID(id)
	if !ok {
		return Removed[G]{}, false
	}
	return Removed[G]{ID: id, Entry: e}, true
}

func (s *Store[G]) addRevMapping(obj *Object, id uint64) {
	ids := s.objToIDs[obj]
	for _, x := range ids {
		if x == id {
			return
		}
	}
	s.objToIDs[obj] = append(ids, id)
}

func (s *Store[G]) removeRevMapping(obj *Object, id uint64) {
	ids, ok := s.objToIDs[obj]
	if !ok {
		return
	}
	for i, x := range ids {
		if x == id {
			ids = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(ids) == 0 {
		delete(s.objToIDs, obj)
		return
	}
	s.objToIDs[obj] = ids
}

// idIndex converts an external id to a slice index, failing when the id
// cannot be represented as an int on this platform.
func idIndex(id uint64) (int, error) {
	if id > uint64(math.MaxInt) {
		return 0, ErrIDTooLarge
	}
	return int(id), nil
}
