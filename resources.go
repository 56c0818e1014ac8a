package vecs

// Resources is a Registry-scoped side-table for values that belong to the
// simulation as a whole rather than to any one entity — a shared RNG seed,
// a frame counter, an asset cache. It is not part of the archetype storage
// model, but every production ECS ends up needing a place to put exactly
// this kind of state.
//
// Resources keys directly by this package's TypeID — already computed for
// every component type via TypeOf — rather than reflect.Type, so there is
// one identity scheme for "what kind of T is this" across the whole
// package. Storage is a slice plus a free list so that removing a resource
// and installing a new one of a different type doesn't leave a permanent
// hole.
type Resources struct {
	items   []any
	byType  map[TypeID]int
	freeIDs []int
}

// SetResource installs v as the resource of type T, replacing any existing
// value of that type in place (so pointers handed out by an earlier
// GetResource[T] observe the new value). It reuses a freed slot if one is
// available.
func SetResource[T any](res *Resources, v T) {
	id := TypeOf[T]()
	if res.byType == nil {
		res.byType = make(map[TypeID]int)
	}
	if slot, ok := res.byType[id]; ok {
		*(res.items[slot].(*T)) = v
		return
	}
	boxed := &v
	var slot int
	if n := len(res.freeIDs); n > 0 {
		slot = res.freeIDs[n-1]
		res.freeIDs = res.freeIDs[:n-1]
		res.items[slot] = boxed
	} else {
		res.items = append(res.items, boxed)
		slot = len(res.items) - 1
	}
	res.byType[id] = slot
}

// HasResource reports whether a resource of type T is installed.
func HasResource[T any](res *Resources) bool {
	_, ok := res.byType[TypeOf[T]()]
	return ok
}

// GetResource returns a pointer to the installed resource of type T, or
// nil if none is installed. The pointer is invalidated by a later
// RemoveResource[T] or Clear.
func GetResource[T any](res *Resources) *T {
	slot, ok := res.byType[TypeOf[T]()]
	if !ok {
		return nil
	}
	return res.items[slot].(*T)
}

// RemoveResource removes the installed resource of type T, if any, freeing
// its slot for reuse.
func RemoveResource[T any](res *Resources) {
	id := TypeOf[T]()
	slot, ok := res.byType[id]
	if !ok {
		return
	}
	res.items[slot] = nil
	delete(res.byType, id)
	res.freeIDs = append(res.freeIDs, slot)
}

// Clear removes every installed resource.
func (res *Resources) Clear() {
	for i := range res.items {
		res.items[i] = nil
	}
	res.items = res.items[:0]
	clear(res.byType)
	res.freeIDs = res.freeIDs[:0]
}
