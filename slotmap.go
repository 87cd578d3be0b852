package slotmap

// Map is a generational slot map holding items of type T. The zero value
// is not usable; create one with New or NewWithConfig. Not goroutine-safe.
type Map[T any] struct {
	// keys packs (index, generation) per slot in the Handle layout. For a
	// key currently assigned to a live item, index is the item's position
	// in items; for a free key it is the offset of the next free key.
	keys []uint64

	// keyOffsets[i] is the key-table offset owning the item at position i.
	// Kept in lock-step with items so removal can fix up the moved key.
	keyOffsets []uint64

	// items holds live items in positions [0, itemCount). len(items) is the
	// allocated capacity, always a multiple of chunkSize.
	items []T

	freeHead uint64 // oldest free key, next to be issued
	freeTail uint64 // most recently freed key

	itemCount int

	indexMask   uint64 // doubles as the maximum representable index
	idShift     uint   // == IndexBits
	idMax       uint64
	minFreeKeys int
	chunkSize   int
}

// New creates a Map with the default Config.
func New[T any]() *Map[T] {
	return NewWithConfig[T](Config{})
}

// NewWithConfig creates a Map with the given Config. Zero or negative
// fields fall back to the package defaults. Panics if the resulting
// Config is invalid (bit widths exceeding 64, or a chunk size that is
// not a power of two).
func NewWithConfig[T any](cfg Config) *Map[T] {
	cfg = cfg.withDefaults()
	cfg.validate()

	return &Map[T]{
		indexMask:   ^uint64(0) >> (64 - uint(cfg.IndexBits)),
		idShift:     uint(cfg.IndexBits),
		idMax:       ^uint64(0) >> (64 - uint(cfg.IDBits)),
		minFreeKeys: cfg.MinFreeKeys,
		chunkSize:   cfg.ChunkSize,
	}
}

// Add stores v and returns a handle to it. The handle stays valid until
// the item is removed, surviving any internal reallocation. Panics when
// the configured index space is exhausted.
func (m *Map[T]) Add(v T) Handle {
	if uint64(m.itemCount) >= m.indexMask {
		panic("slotmap: index space exhausted; increase Config.IndexBits")
	}

	// Grow the key table before the free list drops to minFreeKeys. The
	// free list is never empty after this, which Remove relies on.
	if need := m.itemCount + m.minFreeKeys + 1; len(m.keys) < need {
		m.growKeys(m.chunkCeil(need))
	}

	if m.itemCount == len(m.items) {
		m.resizeItems(m.nextChunk(m.itemCount))
	}

	ki := m.freeHead // issue the oldest free key
	w := m.keys[ki]
	m.freeHead = w & m.indexMask

	pos := uint64(m.itemCount)
	id := w >> m.idShift
	m.keys[ki] = pos | id<<m.idShift
	m.itemCount++

	m.keyOffsets[pos] = ki
	m.items[pos] = v

	return Handle(ki | id<<m.idShift)
}

// Remove destroys the item h refers to. Returns false without side
// effects if h is null, stale, or out of range; true if the item was
// removed. Every other outstanding handle stays valid.
func (m *Map[T]) Remove(h Handle) bool {
	if !m.IsValid(h) {
		return false
	}
	m.removeKey(uint64(h) & m.indexMask)
	return true
}

// RemoveAt destroys the item at position i in the item store. Unchecked
// beyond a range panic; positions shift on removal, so i must come from
// a current iteration.
func (m *Map[T]) RemoveAt(i int) {
	m.removeKey(m.keyOffset(i))
}

// RemoveItem destroys the item p points at. p must point into the live
// item store, i.e. be obtained from Get, At, Items or All since the last
// Add or Remove.
func (m *Map[T]) RemoveItem(p *T) {
	m.removeKey(m.keyOffset(m.indexOf(p)))
}

// Clear destroys all items back to front, bumping each owning key's
// generation and threading it onto the free list. Every handle issued so
// far is invalid afterwards. The item store may shrink; the key table is
// retained.
func (m *Map[T]) Clear() {
	for m.itemCount != 0 {
		m.removeKey(m.keyOffsets[m.itemCount-1])
	}
}

// removeKey frees the key at table offset ki, which must be live. This is
// the single removal path behind Remove, RemoveAt, RemoveItem and Clear.
func (m *Map[T]) removeKey(ki uint64) {
	w := m.keys[ki]
	pos := w & m.indexMask
	id := w >> m.idShift

	if id >= m.idMax {
		panic("slotmap: generation counter exhausted; increase Config.IDBits and/or Config.MinFreeKeys")
	}

	m.keys[ki] = pos | (id+1)<<m.idShift // invalidate outstanding handles to this key
	m.itemCount--

	last := uint64(m.itemCount)
	lastKey := m.keyOffsets[last]

	var zero T
	if pos == m.keys[lastKey]&m.indexMask {
		// Removed item was the last one; no move needed.
		m.items[pos] = zero
	} else {
		// Swap-compaction: the last item fills the vacated slot.
		m.keyOffsets[pos] = lastKey
		m.items[pos] = m.items[last]
		m.items[last] = zero
	}

	// The moved item's key now owns position pos. Redundant in the
	// self-move branch above, where lastKey == ki.
	m.keys[lastKey] = pos | (m.keys[lastKey]>>m.idShift)<<m.idShift

	// Thread ki onto the free-list tail. The tail is always a free key:
	// Add keeps at least minFreeKeys (>= 1 after defaulting) in reserve.
	tw := m.keys[m.freeTail]
	m.keys[m.freeTail] = ki | (tw>>m.idShift)<<m.idShift
	m.freeTail = ki

	if len(m.items) >= m.itemCount+2*m.chunkSize {
		m.resizeItems(m.chunkCeil(m.itemCount))
	}
}

// growKeys extends the key table to n slots, threading the new keys onto
// the free list with generation 1. The key table never shrinks.
func (m *Map[T]) growKeys(n int) {
	old := len(m.keys)
	if n <= old {
		return
	}

	keys := make([]uint64, n)
	copy(keys, m.keys)
	m.keys = keys

	for i := old; i < n; i++ {
		// The link points one past the slot; it is rewritten before the
		// free list ever advances that far.
		m.keys[i] = uint64(i+1)&m.indexMask | 1<<m.idShift
	}

	if old != 0 {
		// Relink the old tail to the first new key. Its previous link is
		// stale by construction (a tail never has a successor).
		tw := m.keys[m.freeTail]
		m.keys[m.freeTail] = uint64(old) | (tw>>m.idShift)<<m.idShift
	}
	m.freeTail = uint64(n - 1)
}

// resizeItems reallocates the item store and key-offset table to n slots,
// carrying over the live prefix. Used for both growth and shrink; n is
// never below itemCount.
func (m *Map[T]) resizeItems(n int) {
	if n == len(m.items) {
		return
	}

	items := make([]T, n)
	copy(items, m.items[:m.itemCount])
	m.items = items

	offsets := make([]uint64, n)
	copy(offsets, m.keyOffsets[:m.itemCount])
	m.keyOffsets = offsets
}

// nextChunk rounds n up to the next chunk multiple strictly above n.
func (m *Map[T]) nextChunk(n int) int {
	return (n + m.chunkSize) &^ (m.chunkSize - 1)
}

// chunkCeil rounds n up to the nearest chunk multiple.
func (m *Map[T]) chunkCeil(n int) int {
	return (n + m.chunkSize - 1) &^ (m.chunkSize - 1)
}
