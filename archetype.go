package vecs

import "sync"

// Archetype is a set of columns sharing the same canonical (sorted) set of
// component TypeIDs, plus an implicit Handle column recording which entity
// owns each row. Every column in an Archetype, including the Handle column,
// has the same length at all times.
//
// changeCounter increments on every row insert, swap-remove, migration, or
// clear, and is snapshotted by a View at construction time to detect
// structural mutation mid-walk.
type Archetype struct {
	mu            sync.RWMutex
	types         []TypeID
	columns       map[TypeID]*column
	handles       []Handle
	changeCounter uint64
}

func newArchetype(types []TypeID) *Archetype {
	cols := make(map[TypeID]*column, len(types))
	for _, id := range types {
		t := typeOf(id)
		if t == nil {
			panic("vecs: archetype built from an unregistered TypeID")
		}
		cols[id] = newColumn(t)
	}
	return &Archetype{
		types:   types,
		columns: cols,
	}
}

// Types returns the archetype's canonical, sorted type-set. The returned
// slice is owned by the Archetype and must not be modified.
func (a *Archetype) Types() []TypeID {
	return a.types
}

// Has reports whether id is one of this archetype's component types.
func (a *Archetype) Has(id TypeID) bool {
	_, ok := a.columns[id]
	return ok
}

// column returns the column storing values of id, or nil if this archetype
// doesn't carry that type.
func (a *Archetype) column(id TypeID) *column {
	return a.columns[id]
}

// Len returns the number of rows (live entities) in this archetype.
func (a *Archetype) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.handles)
}

// HandleAt returns the Handle owning row.
func (a *Archetype) HandleAt(row int) Handle {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.handles[row]
}

// changeSnapshot returns the current value of the change counter, to be
// compared against on every subsequent View dereference.
func (a *Archetype) changeSnapshot() uint64 {
	return a.changeCounter
}

// pushHandle appends h to the Handle column and returns its row. Callers
// must push exactly one value onto every one of this archetype's component
// columns for the same row, in the same call sequence, to preserve column
// length parity.
func (a *Archetype) pushHandle(h Handle) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.handles = append(a.handles, h)
	row := len(a.handles) - 1
	a.changeCounter++
	return row
}

// eraseRow swap-removes row from every column, including the Handle column.
// If the swap moved a different row's data into row (i.e. row wasn't
// already last), eraseRow returns the Handle that now lives at row and
// moved=true — the caller (Registry) is responsible for rewriting that
// Handle's SlotMap entry to point at row. Archetype intentionally holds no
// reference to the SlotMap: the ownership graph is Registry -> SlotMap ->
// (non-owning refs into Archetypes), never the reverse.
func (a *Archetype) eraseRow(row int) (movedHandle Handle, moved bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	last := len(a.handles) - 1
	debugAssert(row >= 0 && row <= last, "eraseRow: row out of range")
	for _, id := range a.types {
		a.columns[id].swapRemove(row)
	}
	if row != last {
		a.handles[row] = a.handles[last]
		movedHandle, moved = a.handles[row], true
	}
	a.handles = a.handles[:last]
	a.changeCounter++
	a.checkInvariants()
	return movedHandle, moved
}

// clear empties every column and the Handle column, bumping the change
// counter once.
func (a *Archetype) clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, id := range a.types {
		a.columns[id].clear()
	}
	a.handles = a.handles[:0]
	a.changeCounter++
}

// checkInvariants verifies column-length parity. It is a no-op unless
// Debug is set.
func (a *Archetype) checkInvariants() {
	if !Debug {
		return
	}
	n := len(a.handles)
	for _, id := range a.types {
		debugAssert(a.columns[id].len() == n, "column length does not match handle column length")
	}
}
