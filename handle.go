package vecs

// Handle is an opaque, generation-checked reference to an entity. It stays
// valid across any internal storage reorganization the Registry performs,
// until the entity is erased.
//
// A Handle is valid for a Registry iff the slot named by Index exists and
// its stored generation equals Generation. Generation 0 is never issued; it
// marks a slot that has not yet been handed out.
type Handle struct {
	Index      uint32
	Generation uint16
}

// IsZero reports whether h is the zero Handle, which is never a valid
// handle for any Registry.
func (h Handle) IsZero() bool {
	return h.Index == 0 && h.Generation == 0
}
