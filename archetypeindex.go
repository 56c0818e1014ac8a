package vecs

import (
	"sort"
	"sync"
)

// typeSetKey is the canonical identity of a type-set: its sorted TypeIDs,
// joined into a form usable as a map key. A Go string built this way
// compares byte-for-byte, which is exactly element-wise comparison once
// the TypeIDs are sorted, so no separate combined hash is needed.
type typeSetKey string

func canonicalize(ids []TypeID) ([]TypeID, error) {
	sorted := append([]TypeID(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	for i := 1; i < len(sorted); i++ {
		if sorted[i] == sorted[i-1] {
			return nil, ErrDuplicateType
		}
	}
	return sorted, nil
}

func keyOf(sorted []TypeID) typeSetKey {
	b := make([]byte, len(sorted)*8)
	for i, id := range sorted {
		v := uint64(id)
		for j := 0; j < 8; j++ {
			b[i*8+j] = byte(v >> (8 * j))
		}
	}
	return typeSetKey(b)
}

// ArchetypeIndex maps a canonical type-set to its unique Archetype, and
// maintains a per-type reverse index (which archetypes contain TypeID X) to
// accelerate "has all of these types" queries without scanning every
// archetype.
type ArchetypeIndex struct {
	mu         sync.RWMutex
	byKey      map[typeSetKey]*Archetype
	all        []*Archetype
	containing map[TypeID][]*Archetype
}

func newArchetypeIndex() *ArchetypeIndex {
	return &ArchetypeIndex{
		byKey:      map[typeSetKey]*Archetype{},
		containing: map[TypeID][]*Archetype{},
	}
}

// findOrCreate returns the unique Archetype for sorted (already-canonical,
// duplicate-free) type-set types, building and indexing one if none exists
// yet. Archetype uniqueness for a given type-set is exactly this map's
// invariant.
func (idx *ArchetypeIndex) findOrCreate(sorted []TypeID) *Archetype {
	key := keyOf(sorted)

	idx.mu.RLock()
	if a, ok := idx.byKey[key]; ok {
		idx.mu.RUnlock()
		return a
	}
	idx.mu.RUnlock()

	idx.mu.Lock()
	defer idx.mu.Unlock()
	if a, ok := idx.byKey[key]; ok {
		return a
	}
	a := newArchetype(sorted)
	idx.byKey[key] = a
	idx.all = append(idx.all, a)
	for _, id := range sorted {
		idx.containing[id] = append(idx.containing[id], a)
	}
	return a
}

// archetypesWithAll returns every archetype whose type-set is a superset of
// query, by intersecting the reverse index of the rarest queried type
// against the rest. An empty query matches every archetype that exists
// (including the implicit zero-component one: an entity created with no
// components simply lives in the archetype keyed by the empty type-set).
func (idx *ArchetypeIndex) archetypesWithAll(query []TypeID) []*Archetype {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if len(query) == 0 {
		out := make([]*Archetype, len(idx.all))
		copy(out, idx.all)
		return out
	}

	rarestType := query[0]
	rarestList := idx.containing[rarestType]
	for _, id := range query[1:] {
		if len(idx.containing[id]) < len(rarestList) {
			rarestType = id
			rarestList = idx.containing[id]
		}
	}

	out := make([]*Archetype, 0, len(rarestList))
	for _, a := range rarestList {
		matches := true
		for _, id := range query {
			if id == rarestType {
				continue
			}
			if !a.Has(id) {
				matches = false
				break
			}
		}
		if matches {
			out = append(out, a)
		}
	}
	return out
}
