package slotmap

import "unsafe"

// Len returns the number of live items.
func (m *Map[T]) Len() int {
	return m.itemCount
}

// Cap returns the allocated capacity of the item store, in items. Always
// a multiple of the configured chunk size.
func (m *Map[T]) Cap() int {
	return len(m.items)
}

// KeyCount returns the number of allocated keys, live and free. The key
// table never shrinks, so this is also the high-water mark of issued
// key offsets plus the free reserve.
func (m *Map[T]) KeyCount() int {
	return len(m.keys)
}

// FreeKeys returns the number of keys currently on the free list.
func (m *Map[T]) FreeKeys() int {
	return len(m.keys) - m.itemCount
}

// SizeBytes returns the number of bytes occupied by live items.
func (m *Map[T]) SizeBytes() int {
	var zero T
	return m.itemCount * int(unsafe.Sizeof(zero))
}

// ChunkSize returns the allocation granularity of this Map, in items.
func (m *Map[T]) ChunkSize() int {
	return m.chunkSize
}

// Utilization returns the ratio of live items to allocated item capacity
// (0.0 to 1.0). Returns 0.0 if nothing has been allocated yet.
func (m *Map[T]) Utilization() float64 {
	if len(m.items) == 0 {
		return 0
	}
	return float64(m.itemCount) / float64(len(m.items))
}

// Metrics returns a snapshot of Map statistics.
func (m *Map[T]) Metrics() MapMetrics {
	return MapMetrics{
		Len:         m.Len(),
		Cap:         m.Cap(),
		KeyCount:    m.KeyCount(),
		FreeKeys:    m.FreeKeys(),
		SizeBytes:   m.SizeBytes(),
		ChunkSize:   m.ChunkSize(),
		Utilization: m.Utilization(),
	}
}

// MapMetrics contains statistical information about a Map.
type MapMetrics struct {
	Len         int     // Live items
	Cap         int     // Allocated item capacity
	KeyCount    int     // Allocated keys, live and free
	FreeKeys    int     // Keys on the free list
	SizeBytes   int     // Bytes occupied by live items
	ChunkSize   int     // Allocation granularity in items
	Utilization float64 // Ratio of live items to capacity (0.0-1.0)
}
