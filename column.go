package vecs

import (
	"reflect"
	"unsafe"
)

// column is a type-erased dense vector of component values of one type:
// push, indexed access, swap-remove, and cross-column move, all O(1)
// amortized.
//
// Storage is a single growable backing array addressed by unsafe pointer
// arithmetic with a stored element size, one column per type actually
// present in an archetype rather than a fixed-size array indexed by a
// bounded component mask, since an archetype's type-set is unbounded.
type column struct {
	typ      reflect.Type
	data     unsafe.Pointer
	elemSize uintptr
	length   int
	capacity int
}

func newColumn(t reflect.Type) *column {
	return &column{typ: t, elemSize: t.Size()}
}

// reserve grows the backing array to hold at least n elements, copying
// existing data forward. Growth doubles capacity.
func (c *column) reserve(n int) {
	if n <= c.capacity {
		return
	}
	newCap := c.capacity * 2
	if newCap < n {
		newCap = n
	}
	if newCap < 4 {
		newCap = 4
	}
	newSlice := reflect.MakeSlice(reflect.SliceOf(c.typ), c.length, newCap)
	newData := newSlice.UnsafePointer()
	if c.data != nil && c.length > 0 {
		memCopy(newData, c.data, uintptr(c.length)*c.elemSize)
	}
	c.data = newData
	c.capacity = newCap
}

// at returns a pointer to the element at row. The caller must ensure
// row < len(c).
func (c *column) at(row int) unsafe.Pointer {
	return unsafe.Add(c.data, uintptr(row)*c.elemSize)
}

func (c *column) len() int { return c.length }

// pushRaw appends a copy of the elemSize bytes at src and returns the new
// row index.
func (c *column) pushRaw(src unsafe.Pointer) int {
	c.reserve(c.length + 1)
	row := c.length
	if src != nil {
		memCopy(c.at(row), src, c.elemSize)
	} else {
		zeroBytes(c.at(row), c.elemSize)
	}
	c.length++
	return row
}

// swapRemove removes row by moving the last element into its place (unless
// row is already last), then shrinking. It returns the old index of the
// element that now lives at row, and whether a move happened at all.
func (c *column) swapRemove(row int) (movedFrom int, moved bool) {
	last := c.length - 1
	if row != last {
		memCopy(c.at(row), c.at(last), c.elemSize)
		movedFrom, moved = last, true
	}
	// Zero the vacated slot so it doesn't hold a stale reference alive for
	// the GC if T contains pointers.
	zeroBytes(c.at(last), c.elemSize)
	c.length--
	return movedFrom, moved
}

// moveRowFrom appends a copy of src's row into c. It does not modify src;
// callers remove the source row separately via swapRemove as the second
// step of a migration.
func (c *column) moveRowFrom(src *column, row int) int {
	return c.pushRaw(src.at(row))
}

func (c *column) clear() {
	if c.data != nil && c.length > 0 {
		zeroBytes(c.data, uintptr(c.length)*c.elemSize)
	}
	c.length = 0
}

func memCopy(dst, src unsafe.Pointer, size uintptr) {
	if size == 0 {
		return
	}
	copy(unsafe.Slice((*byte)(dst), size), unsafe.Slice((*byte)(src), size))
}

func zeroBytes(dst unsafe.Pointer, size uintptr) {
	if size == 0 {
		return
	}
	b := unsafe.Slice((*byte)(dst), size)
	for i := range b {
		b[i] = 0
	}
}

// columnGet returns a typed pointer to row within c. The caller is
// responsible for having verified that c stores values of type T.
func columnGet[T any](c *column, row int) *T {
	return (*T)(c.at(row))
}

// columnPush appends v to c and returns the new row.
func columnPush[T any](c *column, v T) int {
	return c.pushRaw(unsafe.Pointer(&v))
}

// columnPushZero appends a zero value of T to c and returns the new row and
// a pointer to it, for callers that will fill the value in place.
func columnPushZero[T any](c *column) (int, *T) {
	row := c.pushRaw(nil)
	return row, columnGet[T](c, row)
}
