package vecs

import "testing"

func mustAlloc(t *testing.T, m *SlotMap) Handle {
	t.Helper()
	h, err := m.alloc()
	if err != nil {
		t.Fatalf("alloc: %v", err)
	}
	return h
}

func TestSlotMapAllocResolveLookup(t *testing.T) {
	m := newSlotMap()
	h := mustAlloc(t, m)
	if h.Generation == 0 {
		t.Fatal("generation 0 must never be issued")
	}
	a := newArchetype(nil)
	m.resolve(h, a, 3)

	gotA, row, ok := m.lookup(h)
	if !ok {
		t.Fatal("expected live lookup to succeed")
	}
	if gotA != a || row != 3 {
		t.Fatalf("expected (archetype, 3), got (%v, %d)", gotA, row)
	}
}

func TestSlotMapLookupFailsForStaleGeneration(t *testing.T) {
	m := newSlotMap()
	h := mustAlloc(t, m)
	a := newArchetype(nil)
	m.resolve(h, a, 0)

	if !m.erase(h) {
		t.Fatal("erase of a live handle should succeed")
	}
	if _, _, ok := m.lookup(h); ok {
		t.Fatal("lookup should fail once the handle has been erased")
	}
}

func TestSlotMapLookupFailsForOutOfRangeIndex(t *testing.T) {
	m := newSlotMap()
	if _, _, ok := m.lookup(Handle{Index: 999, Generation: 1}); ok {
		t.Fatal("lookup of an index never allocated must fail")
	}
}

func TestSlotMapFreeListReusesSlotsWithBumpedGeneration(t *testing.T) {
	m := newSlotMap()
	a := newArchetype(nil)

	h1 := mustAlloc(t, m)
	m.resolve(h1, a, 0)
	gen1 := h1.Generation

	if !m.erase(h1) {
		t.Fatal("erase should succeed")
	}

	h2 := mustAlloc(t, m)
	m.resolve(h2, a, 0)

	if h2.Index != h1.Index {
		t.Fatalf("expected the freed slot to be reused, got index %d want %d", h2.Index, h1.Index)
	}
	if h2.Generation == gen1 {
		t.Fatal("reused slot must carry a bumped generation")
	}
	if _, _, ok := m.lookup(h1); ok {
		t.Fatal("the old handle must not resolve after its slot was reused")
	}
	if _, _, ok := m.lookup(h2); !ok {
		t.Fatal("the new handle must resolve")
	}
}

func TestSlotMapSizeTracksLiveCount(t *testing.T) {
	m := newSlotMap()
	a := newArchetype(nil)
	if m.size() != 0 {
		t.Fatalf("expected 0, got %d", m.size())
	}
	h1 := mustAlloc(t, m)
	m.resolve(h1, a, 0)
	h2 := mustAlloc(t, m)
	m.resolve(h2, a, 1)
	if m.size() != 2 {
		t.Fatalf("expected 2, got %d", m.size())
	}
	m.erase(h1)
	if m.size() != 1 {
		t.Fatalf("expected 1 after erase, got %d", m.size())
	}
}

func TestSlotMapResetInvalidatesEveryHandlePermanently(t *testing.T) {
	m := newSlotMap()
	a := newArchetype(nil)
	h1 := mustAlloc(t, m)
	m.resolve(h1, a, 0)
	h2 := mustAlloc(t, m)
	m.resolve(h2, a, 1)

	m.reset()
	if m.size() != 0 {
		t.Fatalf("expected size 0 after reset, got %d", m.size())
	}
	if _, _, ok := m.lookup(h1); ok {
		t.Fatal("h1 must be invalid after reset")
	}
	if _, _, ok := m.lookup(h2); ok {
		t.Fatal("h2 must be invalid after reset")
	}

	// A freshly allocated handle may reuse an index but must not collide on
	// (index, generation) with any handle issued before reset.
	h3 := mustAlloc(t, m)
	m.resolve(h3, a, 0)
	if h3.Index == h1.Index && h3.Generation == h1.Generation {
		t.Fatal("post-reset handle collided with a pre-reset handle")
	}
	if h3.Index == h2.Index && h3.Generation == h2.Generation {
		t.Fatal("post-reset handle collided with a pre-reset handle")
	}
}

func TestSlotIndexAvailableAtTheUint32Boundary(t *testing.T) {
	if !slotIndexAvailable(int(noFree) - 1) {
		t.Fatal("one slot short of the sentinel value must still be available")
	}
	if slotIndexAvailable(int(noFree)) {
		t.Fatal("reaching the sentinel value must not be available")
	}
}
