package slotmap

import (
	"iter"
	"unsafe"
)

// IsValid reports whether h currently refers to a live item: its
// generation is non-zero, its key offset is in range, and its generation
// matches the key's. Staleness is an expected outcome, not an error.
func (m *Map[T]) IsValid(h Handle) bool {
	id := uint64(h) >> m.idShift
	ki := uint64(h) & m.indexMask
	return id != 0 && ki < uint64(len(m.keys)) && id == m.keys[ki]>>m.idShift
}

// Get returns a pointer to the item h refers to, or nil if h is null or
// stale. The pointer is valid until the next Add or Remove.
func (m *Map[T]) Get(h Handle) *T {
	if !m.IsValid(h) {
		return nil
	}
	return &m.items[m.keys[uint64(h)&m.indexMask]&m.indexMask]
}

// At returns a pointer to the item at position i in the item store.
// Unchecked beyond a range panic; positions are only stable between
// mutations.
func (m *Map[T]) At(i int) *T {
	if i < 0 || i >= m.itemCount {
		panic("slotmap: item position out of range")
	}
	return &m.items[i]
}

// GetHandle recovers the handle owning the item at position i, via the
// key-offset table. Panics if i is out of range.
func (m *Map[T]) GetHandle(i int) Handle {
	ki := m.keyOffset(i)
	return Handle(ki | (m.keys[ki]>>m.idShift)<<m.idShift)
}

// HandleOf recovers the handle owning the item p points at. p must point
// into the live item store.
func (m *Map[T]) HandleOf(p *T) Handle {
	return m.GetHandle(m.indexOf(p))
}

// Items returns a view of the live items. Order is unspecified and
// changes on removal. The view is invalidated by any Add or Remove.
func (m *Map[T]) Items() []T {
	return m.items[:m.itemCount]
}

// All returns an iterator over live items and their handles. Order is
// unspecified. The Map must not be mutated during iteration; item
// pointers are valid until the next mutation.
func (m *Map[T]) All() iter.Seq2[Handle, *T] {
	return func(yield func(Handle, *T) bool) {
		for i := 0; i < m.itemCount; i++ {
			if !yield(m.GetHandle(i), &m.items[i]) {
				return
			}
		}
	}
}

// keyOffset returns the key-table offset owning the item at position i,
// panicking on misuse.
func (m *Map[T]) keyOffset(i int) uint64 {
	if i < 0 || i >= m.itemCount {
		panic("slotmap: item position out of range")
	}
	return m.keyOffsets[i]
}

// indexOf recovers an item's position from its address by pointer
// distance from the store's base.
func (m *Map[T]) indexOf(p *T) int {
	size := unsafe.Sizeof(*p)
	if size == 0 {
		panic("slotmap: zero-size item type has no distinct addresses")
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(m.items)))
	i := int((uintptr(unsafe.Pointer(p)) - base) / size)
	if i < 0 || i >= m.itemCount {
		panic("slotmap: pointer does not address a live item")
	}
	return i
}
