package vecs

// This file implements View & Iterator: a query over every archetype
// carrying at least a given set of component types, walked via a
// per-archetype change-counter snapshot so that a structural mutation
// (Create, Put, Erase, Clear) made mid-walk is caught rather than silently
// read past. The matching archetype list is cached once at construction,
// and the walk then runs over the cached slices rather than re-querying
// per row.
//
// As with Get/Put/Erase, View constructors are free functions rather than
// methods — Go forbids a method from introducing its own type parameters.
//
// Each holds no lock while running fn, so it is a single-writer iterator:
// safe for a callback to mutate the same Registry from the same goroutine
// (directly or via a CommandBuffer), but not safe to run concurrently with
// a mutating call from a different goroutine against an archetype Each is
// visiting. See View1.Each for the full contract.

// viewArchetype pairs a matched Archetype with the change-counter value
// observed when the View was constructed.
type viewArchetype struct {
	a        *Archetype
	snapshot uint64
}

func snapshotArchetypes(list []*Archetype) []viewArchetype {
	out := make([]viewArchetype, len(list))
	for i, a := range list {
		out[i] = viewArchetype{a: a, snapshot: a.changeSnapshot()}
	}
	return out
}

func (va viewArchetype) validate() error {
	if va.a.changeSnapshot() != va.snapshot {
		return ErrIterationInvalidated
	}
	return nil
}

// View1 iterates every entity carrying at least a component of type T1.
type View1[T1 any] struct {
	r    *Registry
	id1  TypeID
	list []viewArchetype
}

// NewView1 constructs a View1 over r's current archetypes. The set of
// matched archetypes is fixed at construction time; entities created after
// this call into a brand new archetype shape are not visited.
func NewView1[T1 any](r *Registry) *View1[T1] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id1 := TypeOf[T1]()
	return &View1[T1]{r: r, id1: id1, list: snapshotArchetypes(r.index.archetypesWithAll([]TypeID{id1}))}
}

// Each calls fn once per matching entity, with a pointer to its T1
// component. fn returning false stops iteration early. Each returns
// ErrIterationInvalidated if a matched archetype was structurally mutated
// since the View was constructed: each archetype's change counter is
// checked when the walk reaches it and again after every callback on its
// rows. A change to an archetype the walk has already left is not
// reported.
//
// Each does not hold Registry.mu or any Archetype lock across the walk: a
// callback is free to call Put/Erase/Clear on the same Registry from the
// same goroutine (typically via a CommandBuffer, but a direct call works
// too) without deadlocking against itself, and the per-row re-check below
// catches that case and reports ErrIterationInvalidated rather than
// walking off the end of a reshaped archetype.
//
// This is a single-writer iterator, not a fully concurrent one: because no
// lock is held while fn runs, a second goroutine calling Put/Erase/Clear on
// an archetype Each is actively visiting races the column reads inside
// this loop rather than merely returning a stale value. Do not run Each
// concurrently with a mutating call from another goroutine against the
// same Registry; confine all Registry access during a walk to the
// goroutine running Each (using a CommandBuffer for any mutation
// discovered mid-walk), or otherwise guarantee single-writer access for
// the duration of the call.
func (v *View1[T1]) Each(fn func(h Handle, c1 *T1) bool) error {
	for _, va := range v.list {
		if err := va.validate(); err != nil {
			return err
		}
		c1 := va.a.column(v.id1)
		n := va.a.Len()
		for row := 0; row < n; row++ {
			if !fn(va.a.HandleAt(row), columnGet[T1](c1, row)) {
				return nil
			}
			// Re-validate after every callback: fn may have triggered a
			// migration or erase that reshaped this very archetype, which
			// would make any further row index into it unsafe to use.
			if err := va.validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// View2 iterates every entity carrying at least components of types T1
// and T2.
type View2[T1, T2 any] struct {
	r        *Registry
	id1, id2 TypeID
	list     []viewArchetype
}

func NewView2[T1, T2 any](r *Registry) *View2[T1, T2] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id1, id2 := TypeOf[T1](), TypeOf[T2]()
	return &View2[T1, T2]{r: r, id1: id1, id2: id2, list: snapshotArchetypes(r.index.archetypesWithAll([]TypeID{id1, id2}))}
}

// Each walks matching entities as View1.Each does; see its doc comment for
// the full invalidation and concurrency contract.
func (v *View2[T1, T2]) Each(fn func(h Handle, c1 *T1, c2 *T2) bool) error {
	for _, va := range v.list {
		if err := va.validate(); err != nil {
			return err
		}
		c1, c2 := va.a.column(v.id1), va.a.column(v.id2)
		n := va.a.Len()
		for row := 0; row < n; row++ {
			if !fn(va.a.HandleAt(row), columnGet[T1](c1, row), columnGet[T2](c2, row)) {
				return nil
			}
			if err := va.validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// View3 iterates every entity carrying at least components of types T1,
// T2 and T3.
type View3[T1, T2, T3 any] struct {
	r             *Registry
	id1, id2, id3 TypeID
	list          []viewArchetype
}

func NewView3[T1, T2, T3 any](r *Registry) *View3[T1, T2, T3] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id1, id2, id3 := TypeOf[T1](), TypeOf[T2](), TypeOf[T3]()
	return &View3[T1, T2, T3]{r: r, id1: id1, id2: id2, id3: id3, list: snapshotArchetypes(r.index.archetypesWithAll([]TypeID{id1, id2, id3}))}
}

// Each walks matching entities as View1.Each does; see its doc comment for
// the full invalidation and concurrency contract.
func (v *View3[T1, T2, T3]) Each(fn func(h Handle, c1 *T1, c2 *T2, c3 *T3) bool) error {
	for _, va := range v.list {
		if err := va.validate(); err != nil {
			return err
		}
		c1, c2, c3 := va.a.column(v.id1), va.a.column(v.id2), va.a.column(v.id3)
		n := va.a.Len()
		for row := 0; row < n; row++ {
			if !fn(va.a.HandleAt(row), columnGet[T1](c1, row), columnGet[T2](c2, row), columnGet[T3](c3, row)) {
				return nil
			}
			if err := va.validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// View4 iterates every entity carrying at least components of types T1
// through T4.
type View4[T1, T2, T3, T4 any] struct {
	r                  *Registry
	id1, id2, id3, id4 TypeID
	list               []viewArchetype
}

func NewView4[T1, T2, T3, T4 any](r *Registry) *View4[T1, T2, T3, T4] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id1, id2, id3, id4 := TypeOf[T1](), TypeOf[T2](), TypeOf[T3](), TypeOf[T4]()
	return &View4[T1, T2, T3, T4]{r: r, id1: id1, id2: id2, id3: id3, id4: id4,
		list: snapshotArchetypes(r.index.archetypesWithAll([]TypeID{id1, id2, id3, id4}))}
}

// Each walks matching entities as View1.Each does; see its doc comment for
// the full invalidation and concurrency contract.
func (v *View4[T1, T2, T3, T4]) Each(fn func(h Handle, c1 *T1, c2 *T2, c3 *T3, c4 *T4) bool) error {
	for _, va := range v.list {
		if err := va.validate(); err != nil {
			return err
		}
		c1, c2, c3, c4 := va.a.column(v.id1), va.a.column(v.id2), va.a.column(v.id3), va.a.column(v.id4)
		n := va.a.Len()
		for row := 0; row < n; row++ {
			if !fn(va.a.HandleAt(row), columnGet[T1](c1, row), columnGet[T2](c2, row), columnGet[T3](c3, row), columnGet[T4](c4, row)) {
				return nil
			}
			if err := va.validate(); err != nil {
				return err
			}
		}
	}
	return nil
}
