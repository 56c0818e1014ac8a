package vecs

// This file holds the generic, arity-keyed entry points into Registry:
// Create1..Create4, Get1..Get4, Put1..Put4 and Erase1..Erase4. Go methods
// cannot take their own type parameters, so these are free functions
// taking *Registry as their first argument rather than methods on
// Registry. Arity is capped at 4; the pattern below extends verbatim if a
// caller needs a fifth.

// Create1 creates an entity with a single component of type T1.
func Create1[T1 any](r *Registry, v1 T1) (Handle, error) {
	id1 := TypeOf[T1]()
	types, err := canonicalize([]TypeID{id1})
	if err != nil {
		return Handle{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	h, err := r.createLocked(types, func(a *Archetype, row int) {
		got := columnPush[T1](a.column(id1), v1)
		debugAssert(got == row, "Create1: column push row mismatch")
	})
	if err != nil {
		return Handle{}, err
	}
	return h, nil
}

// Create2 creates an entity carrying components of types T1 and T2, as a
// single archetype insertion.
func Create2[T1, T2 any](r *Registry, v1 T1, v2 T2) (Handle, error) {
	id1, id2 := TypeOf[T1](), TypeOf[T2]()
	types, err := canonicalize([]TypeID{id1, id2})
	if err != nil {
		return Handle{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	h, err := r.createLocked(types, func(a *Archetype, row int) {
		debugAssert(columnPush[T1](a.column(id1), v1) == row, "Create2: column push row mismatch")
		debugAssert(columnPush[T2](a.column(id2), v2) == row, "Create2: column push row mismatch")
	})
	if err != nil {
		return Handle{}, err
	}
	return h, nil
}

// Create3 creates an entity carrying components of types T1, T2 and T3.
func Create3[T1, T2, T3 any](r *Registry, v1 T1, v2 T2, v3 T3) (Handle, error) {
	id1, id2, id3 := TypeOf[T1](), TypeOf[T2](), TypeOf[T3]()
	types, err := canonicalize([]TypeID{id1, id2, id3})
	if err != nil {
		return Handle{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	h, err := r.createLocked(types, func(a *Archetype, row int) {
		debugAssert(columnPush[T1](a.column(id1), v1) == row, "Create3: column push row mismatch")
		debugAssert(columnPush[T2](a.column(id2), v2) == row, "Create3: column push row mismatch")
		debugAssert(columnPush[T3](a.column(id3), v3) == row, "Create3: column push row mismatch")
	})
	if err != nil {
		return Handle{}, err
	}
	return h, nil
}

// Create4 creates an entity carrying components of types T1 through T4.
func Create4[T1, T2, T3, T4 any](r *Registry, v1 T1, v2 T2, v3 T3, v4 T4) (Handle, error) {
	id1, id2, id3, id4 := TypeOf[T1](), TypeOf[T2](), TypeOf[T3](), TypeOf[T4]()
	types, err := canonicalize([]TypeID{id1, id2, id3, id4})
	if err != nil {
		return Handle{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	h, err := r.createLocked(types, func(a *Archetype, row int) {
		debugAssert(columnPush[T1](a.column(id1), v1) == row, "Create4: column push row mismatch")
		debugAssert(columnPush[T2](a.column(id2), v2) == row, "Create4: column push row mismatch")
		debugAssert(columnPush[T3](a.column(id3), v3) == row, "Create4: column push row mismatch")
		debugAssert(columnPush[T4](a.column(id4), v4) == row, "Create4: column push row mismatch")
	})
	if err != nil {
		return Handle{}, err
	}
	return h, nil
}

// Get1 returns a pointer to h's T1 component. The pointer is valid only
// until the next Registry call that might mutate h's archetype (Create,
// Put, Erase of any kind, or Clear).
func Get1[T1 any](r *Registry, h Handle) (*T1, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, row, ok := r.slots.lookup(h)
	if !ok {
		return nil, ErrStaleHandle
	}
	c := a.column(TypeOf[T1]())
	if c == nil {
		return nil, ErrMissingComponent
	}
	return columnGet[T1](c, row), nil
}

// Get2 returns pointers to h's T1 and T2 components.
func Get2[T1, T2 any](r *Registry, h Handle) (*T1, *T2, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, row, ok := r.slots.lookup(h)
	if !ok {
		return nil, nil, ErrStaleHandle
	}
	c1, c2 := a.column(TypeOf[T1]()), a.column(TypeOf[T2]())
	if c1 == nil || c2 == nil {
		return nil, nil, ErrMissingComponent
	}
	return columnGet[T1](c1, row), columnGet[T2](c2, row), nil
}

// Get3 returns pointers to h's T1, T2 and T3 components.
func Get3[T1, T2, T3 any](r *Registry, h Handle) (*T1, *T2, *T3, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, row, ok := r.slots.lookup(h)
	if !ok {
		return nil, nil, nil, ErrStaleHandle
	}
	c1, c2, c3 := a.column(TypeOf[T1]()), a.column(TypeOf[T2]()), a.column(TypeOf[T3]())
	if c1 == nil || c2 == nil || c3 == nil {
		return nil, nil, nil, ErrMissingComponent
	}
	return columnGet[T1](c1, row), columnGet[T2](c2, row), columnGet[T3](c3, row), nil
}

// Get4 returns pointers to h's T1 through T4 components.
func Get4[T1, T2, T3, T4 any](r *Registry, h Handle) (*T1, *T2, *T3, *T4, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, row, ok := r.slots.lookup(h)
	if !ok {
		return nil, nil, nil, nil, ErrStaleHandle
	}
	c1, c2, c3, c4 := a.column(TypeOf[T1]()), a.column(TypeOf[T2]()), a.column(TypeOf[T3]()), a.column(TypeOf[T4]())
	if c1 == nil || c2 == nil || c3 == nil || c4 == nil {
		return nil, nil, nil, nil, ErrMissingComponent
	}
	return columnGet[T1](c1, row), columnGet[T2](c2, row), columnGet[T3](c3, row), columnGet[T4](c4, row), nil
}

// Put1 sets h's T1 component to v1, adding it (and migrating h's entity to
// a new archetype) if h doesn't already carry one.
func Put1[T1 any](r *Registry, h Handle, v1 T1) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	oldA, row, ok := r.slots.lookup(h)
	if !ok {
		return ErrStaleHandle
	}
	id1 := TypeOf[T1]()
	if oldA.Has(id1) {
		*columnGet[T1](oldA.column(id1), row) = v1
		return nil
	}
	newTypes, err := canonicalize(append(append([]TypeID(nil), oldA.Types()...), id1))
	if err != nil {
		return err
	}
	newA, newRow := r.migrateLocked(h, oldA, row, newTypes)
	*columnGet[T1](newA.column(id1), newRow) = v1
	return nil
}

// Put2 sets h's T1 and T2 components, as a single coalesced archetype
// transition if either (or both) are new to h's entity.
func Put2[T1, T2 any](r *Registry, h Handle, v1 T1, v2 T2) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	oldA, row, ok := r.slots.lookup(h)
	if !ok {
		return ErrStaleHandle
	}
	id1, id2 := TypeOf[T1](), TypeOf[T2]()
	if _, err := canonicalize([]TypeID{id1, id2}); err != nil {
		return err
	}
	if oldA.Has(id1) && oldA.Has(id2) {
		*columnGet[T1](oldA.column(id1), row) = v1
		*columnGet[T2](oldA.column(id2), row) = v2
		return nil
	}
	union := append([]TypeID(nil), oldA.Types()...)
	union = append(union, id1, id2)
	newTypes, err := canonicalizeUnion(union)
	if err != nil {
		return err
	}
	newA, newRow := r.migrateLocked(h, oldA, row, newTypes)
	*columnGet[T1](newA.column(id1), newRow) = v1
	*columnGet[T2](newA.column(id2), newRow) = v2
	return nil
}

// Put3 sets h's T1, T2 and T3 components, as a single coalesced archetype
// transition if any are new to h's entity.
func Put3[T1, T2, T3 any](r *Registry, h Handle, v1 T1, v2 T2, v3 T3) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	oldA, row, ok := r.slots.lookup(h)
	if !ok {
		return ErrStaleHandle
	}
	id1, id2, id3 := TypeOf[T1](), TypeOf[T2](), TypeOf[T3]()
	if _, err := canonicalize([]TypeID{id1, id2, id3}); err != nil {
		return err
	}
	if oldA.Has(id1) && oldA.Has(id2) && oldA.Has(id3) {
		*columnGet[T1](oldA.column(id1), row) = v1
		*columnGet[T2](oldA.column(id2), row) = v2
		*columnGet[T3](oldA.column(id3), row) = v3
		return nil
	}
	union := append([]TypeID(nil), oldA.Types()...)
	union = append(union, id1, id2, id3)
	newTypes, err := canonicalizeUnion(union)
	if err != nil {
		return err
	}
	newA, newRow := r.migrateLocked(h, oldA, row, newTypes)
	*columnGet[T1](newA.column(id1), newRow) = v1
	*columnGet[T2](newA.column(id2), newRow) = v2
	*columnGet[T3](newA.column(id3), newRow) = v3
	return nil
}

// Put4 sets h's T1 through T4 components, as a single coalesced archetype
// transition if any are new to h's entity.
func Put4[T1, T2, T3, T4 any](r *Registry, h Handle, v1 T1, v2 T2, v3 T3, v4 T4) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	oldA, row, ok := r.slots.lookup(h)
	if !ok {
		return ErrStaleHandle
	}
	id1, id2, id3, id4 := TypeOf[T1](), TypeOf[T2](), TypeOf[T3](), TypeOf[T4]()
	if _, err := canonicalize([]TypeID{id1, id2, id3, id4}); err != nil {
		return err
	}
	if oldA.Has(id1) && oldA.Has(id2) && oldA.Has(id3) && oldA.Has(id4) {
		*columnGet[T1](oldA.column(id1), row) = v1
		*columnGet[T2](oldA.column(id2), row) = v2
		*columnGet[T3](oldA.column(id3), row) = v3
		*columnGet[T4](oldA.column(id4), row) = v4
		return nil
	}
	union := append([]TypeID(nil), oldA.Types()...)
	union = append(union, id1, id2, id3, id4)
	newTypes, err := canonicalizeUnion(union)
	if err != nil {
		return err
	}
	newA, newRow := r.migrateLocked(h, oldA, row, newTypes)
	*columnGet[T1](newA.column(id1), newRow) = v1
	*columnGet[T2](newA.column(id2), newRow) = v2
	*columnGet[T3](newA.column(id3), newRow) = v3
	*columnGet[T4](newA.column(id4), newRow) = v4
	return nil
}

// Erase1 removes h's T1 component, migrating it to the archetype for the
// remaining type-set. It returns ErrMissingComponent if h doesn't carry a
// T1 to begin with.
func Erase1[T1 any](r *Registry, h Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	oldA, row, ok := r.slots.lookup(h)
	if !ok {
		return ErrStaleHandle
	}
	id1 := TypeOf[T1]()
	if !oldA.Has(id1) {
		return ErrMissingComponent
	}
	r.migrateLocked(h, oldA, row, without(oldA.Types(), id1))
	return nil
}

// Erase2 removes h's T1 and T2 components in a single migration.
func Erase2[T1, T2 any](r *Registry, h Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	oldA, row, ok := r.slots.lookup(h)
	if !ok {
		return ErrStaleHandle
	}
	id1, id2 := TypeOf[T1](), TypeOf[T2]()
	if !oldA.Has(id1) || !oldA.Has(id2) {
		return ErrMissingComponent
	}
	r.migrateLocked(h, oldA, row, without(oldA.Types(), id1, id2))
	return nil
}

// Erase3 removes h's T1, T2 and T3 components in a single migration.
func Erase3[T1, T2, T3 any](r *Registry, h Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	oldA, row, ok := r.slots.lookup(h)
	if !ok {
		return ErrStaleHandle
	}
	id1, id2, id3 := TypeOf[T1](), TypeOf[T2](), TypeOf[T3]()
	if !oldA.Has(id1) || !oldA.Has(id2) || !oldA.Has(id3) {
		return ErrMissingComponent
	}
	r.migrateLocked(h, oldA, row, without(oldA.Types(), id1, id2, id3))
	return nil
}

// Erase4 removes h's T1 through T4 components in a single migration.
func Erase4[T1, T2, T3, T4 any](r *Registry, h Handle) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	oldA, row, ok := r.slots.lookup(h)
	if !ok {
		return ErrStaleHandle
	}
	id1, id2, id3, id4 := TypeOf[T1](), TypeOf[T2](), TypeOf[T3](), TypeOf[T4]()
	if !oldA.Has(id1) || !oldA.Has(id2) || !oldA.Has(id3) || !oldA.Has(id4) {
		return ErrMissingComponent
	}
	r.migrateLocked(h, oldA, row, without(oldA.Types(), id1, id2, id3, id4))
	return nil
}

// canonicalizeUnion canonicalizes ids after deduplicating: unlike
// Create's canonicalize, a Put whose new component overlaps one already in
// oldA.Types() is not an error — the already-present id is simply ignored.
func canonicalizeUnion(ids []TypeID) ([]TypeID, error) {
	seen := make(map[TypeID]bool, len(ids))
	deduped := ids[:0:0]
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		deduped = append(deduped, id)
	}
	return canonicalize(deduped)
}

// without returns a new slice containing every element of ids except those
// in remove.
func without(ids []TypeID, remove ...TypeID) []TypeID {
	out := make([]TypeID, 0, len(ids))
	for _, id := range ids {
		skip := false
		for _, r := range remove {
			if id == r {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, id)
		}
	}
	return out
}
