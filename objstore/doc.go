package objstore

/*

# Dense id <-> (geom, object) store

This package manages a dense, reusable identifier space. Each live id pairs
a geometric key of caller-chosen type with an optional opaque payload
Object, and a reverse index answers "which ids hold this exact object"
by identity rather than by value.

## Dense ids with holes

Ids are indexes into a dense slice. A slot is either occupied or a hole;
holes are produced by PopID and by gap-filling InsertAt, and their indexes
go onto a LIFO free list so AllocID preferentially reuses recently vacated
slots before growing the tail. Valid ids are always below DenseLen.

## Object identity

An Object is an opaque cell around a caller value. The store never inspects
the value; identity is the *Object pointer itself, stable for the cell's
lifetime. Two cells with equal contents are distinct identities, and one
cell stored at several ids is a single identity mapped to all of them. The
reverse index keys directly on the pointer.

A nil *Object means "no payload". If the embedding environment has its own
empty/none sentinel, normalizing it to nil is the embedder's job; it never
leaks into this package.

## Errors

Store operations use a small closed taxonomy, surfaced rather than
swallowed:

  - ErrIDTooLarge: the id cannot be used as a slice index on this platform.
  - ErrIDOutOfBounds: a strict Gather/BulkLookup met a hole, a missing
    payload, or an id past the dense length.
  - ErrOutOfOrderID: InsertAt targeted an id beyond DenseLen without gap
    filling enabled. Retryable with fillGaps true.

Plain lookups (Get, GetObj, PopID) never fail: absent is an ordinary nil or
false result.

The store is a single-threaded structure with no internal locking. The
embedding layer is responsible for serializing access.

*/
