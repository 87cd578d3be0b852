package slotmap

// Handle identifies an item in a Map. The low Config.IndexBits bits hold
// the offset of the item's key in the key table; the next Config.IDBits
// bits hold the generation that key had when the handle was issued. A
// handle is a plain value with structural equality and no ownership; it
// is only meaningful against the Map that issued it.
type Handle uint64

// NullHandle is the zero Handle. Its generation field is 0, which no key
// ever holds, so it is invalid against every Map.
const NullHandle Handle = 0

// IsNull reports whether h is the null handle.
func (h Handle) IsNull() bool {
	return h == NullHandle
}

// Default Config values. The defaults give 2^40-1 addressable items and a
// 24-bit generation counter per slot.
const (
	DefaultIndexBits   = 40
	DefaultIDBits      = 24
	DefaultMinFreeKeys = 32
	DefaultChunkSize   = 512
)

// Config fixes the layout and growth behavior of a Map. It is set at
// construction and cannot be changed afterwards.
type Config struct {
	// IndexBits is the width of the index field in keys and handles.
	// It bounds the number of items the Map can hold at once.
	IndexBits int

	// IDBits is the width of the generation counter. Together with
	// IndexBits it must not exceed 64. A wider counter pushes out the
	// wraparound horizon at the cost of index space.
	IDBits int

	// MinFreeKeys is the number of free keys the Map keeps in reserve.
	// The key table grows before the free list drops to this size, so a
	// remove/add cycle does not reallocate every time. It also controls
	// how thinly generation increments are spread across slots: a freed
	// key sits behind at least MinFreeKeys others before it is reissued.
	MinFreeKeys int

	// ChunkSize is the allocation granularity, in items, for the key
	// table and the item store. Must be a power of two.
	ChunkSize int
}

// withDefaults replaces zero or negative fields with the package defaults.
func (c Config) withDefaults() Config {
	if c.IndexBits <= 0 {
		c.IndexBits = DefaultIndexBits
	}
	if c.IDBits <= 0 {
		c.IDBits = DefaultIDBits
	}
	if c.MinFreeKeys <= 0 {
		c.MinFreeKeys = DefaultMinFreeKeys
	}
	if c.ChunkSize <= 0 {
		c.ChunkSize = DefaultChunkSize
	}
	return c
}

// validate panics on a Config that cannot produce coherent handles.
// Misconfiguration is a programmer error, not a runtime condition.
func (c Config) validate() {
	if c.IndexBits+c.IDBits > 64 {
		panic("slotmap: IndexBits + IDBits must not exceed 64")
	}
	if c.ChunkSize&(c.ChunkSize-1) != 0 {
		panic("slotmap: ChunkSize must be a power of two")
	}
}
