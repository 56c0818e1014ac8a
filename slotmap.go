package vecs

// slot is either live — naming an archetype and row — or free, in which
// case next threads it into the free list. generation is incremented on
// every erase, wrapping past zero (zero is reserved for "never issued").
type slot struct {
	generation uint16
	archetype  *Archetype // nil while free
	row        int
	next       uint32 // valid only while archetype == nil
}

// SlotMap is the generational index translating an external Handle to an
// internal (Archetype, row) location. It is the one structure every Handle
// round-trips through: for every row r of every Archetype A,
// lookup(A.handles[r]) must return (A, r). SlotMap has no lock of its own —
// every call into it is already made under Registry.mu, so a separate
// SlotMap-level lock would only add a third, redundant locking layer on top
// of the Registry/Archetype one the package actually uses.
type SlotMap struct {
	slots     []slot
	firstFree uint32 // index into slots, or noFree
	live      int
}

const noFree = ^uint32(0)

func newSlotMap() *SlotMap {
	return &SlotMap{firstFree: noFree}
}

// slotIndexAvailable reports whether n (the current slot count) still
// leaves a value for a new slot's index — split out from alloc as a plain
// function of an int so the 2^32 boundary is testable without actually
// allocating a slice anywhere near that size.
func slotIndexAvailable(n int) bool {
	return uint64(n) < uint64(noFree)
}

// alloc reserves a slot and returns a Handle for it. The slot's archetype is
// left nil — the caller must follow up with resolve once the row the
// Handle will occupy is known, which is necessarily after the row has been
// pushed (the row's Handle column entry must already equal this Handle).
// alloc returns ErrCapacityExhausted, leaving the SlotMap unchanged, if
// every uint32 index is already in use — Handle.Index can't grow past
// 2^32-1, and that value is itself reserved as the noFree sentinel.
func (m *SlotMap) alloc() (Handle, error) {
	var idx uint32
	if m.firstFree != noFree {
		idx = m.firstFree
		m.firstFree = m.slots[idx].next
		gen := m.slots[idx].generation
		if gen == 0 {
			gen = 1
		}
		m.slots[idx] = slot{generation: gen}
	} else {
		if !slotIndexAvailable(len(m.slots)) {
			return Handle{}, ErrCapacityExhausted
		}
		idx = uint32(len(m.slots))
		m.slots = append(m.slots, slot{generation: 1})
	}
	m.live++
	return Handle{Index: idx, Generation: m.slots[idx].generation}, nil
}

// resolve records where h's entity now lives. h must have just been
// returned by alloc (or be a live handle being migrated).
func (m *SlotMap) resolve(h Handle, a *Archetype, row int) {
	s := &m.slots[h.Index]
	debugAssert(s.generation == h.Generation, "resolve: generation mismatch")
	s.archetype = a
	s.row = row
}

// lookup returns the live slot for h, or ok=false if h is stale (generation
// mismatch) or out of range.
func (m *SlotMap) lookup(h Handle) (a *Archetype, row int, ok bool) {
	if int(h.Index) >= len(m.slots) {
		return nil, 0, false
	}
	s := &m.slots[h.Index]
	if s.generation != h.Generation || s.archetype == nil {
		return nil, 0, false
	}
	return s.archetype, s.row, true
}

// erase invalidates h: it requires a live match, drops the payload,
// increments the generation (skipping zero on wrap), and links the slot
// into the free list.
func (m *SlotMap) erase(h Handle) bool {
	if int(h.Index) >= len(m.slots) {
		return false
	}
	s := &m.slots[h.Index]
	if s.generation != h.Generation || s.archetype == nil {
		return false
	}
	gen := s.generation + 1
	if gen == 0 {
		gen = 1
	}
	*s = slot{generation: gen, next: m.firstFree}
	m.firstFree = h.Index
	m.live--
	return true
}

// size returns the number of live slots.
func (m *SlotMap) size() int {
	return m.live
}

// reset frees every slot in place, bumping each one's generation (skipping
// zero on wrap) so that every previously issued Handle becomes permanently
// invalid — including ones whose index is reissued immediately afterward,
// which would otherwise collide on (index, generation) with a handle issued
// before the reset.
func (m *SlotMap) reset() {
	for i := range m.slots {
		gen := m.slots[i].generation + 1
		if gen == 0 {
			gen = 1
		}
		m.slots[i] = slot{generation: gen}
	}
	m.firstFree = noFree
	for i := len(m.slots) - 1; i >= 0; i-- {
		m.slots[i].next = m.firstFree
		m.firstFree = uint32(i)
	}
	m.live = 0
}
