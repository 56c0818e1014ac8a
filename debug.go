package vecs

// Debug enables invariant checks that are too expensive to run on every
// mutating operation in production — column-length parity across an
// archetype, and a generation match when a SlotMap entry is re-pointed.
// Handle-column round-trips through the SlotMap are not checked. Go has no
// separate debug build mode, so these checks are gated behind this
// package-level flag instead of a build tag.
//
// Set to true in tests or during development; leave false in production,
// where the cost of re-validating every column on every mutation would
// defeat the point of a dense columnar store.
var Debug = false

func debugAssert(cond bool, msg string) {
	if Debug && !cond {
		panic("vecs: invariant violation: " + msg)
	}
}
