// Package slotmap implements a generational slot map: contiguous storage
// for items of a fixed type, addressed through stable handles that can be
// cheaply checked for staleness after the referenced item is removed.
//
// # Overview
//
// A slot map is used to store items without clear ownership. Callers never
// hold pointers long-term; they hold a Handle, which packs a key-table
// offset and a generation counter into a single word. Removing an item
// bumps its key's generation, which invalidates every outstanding handle
// to that slot without touching the handles themselves. This is
// particularly useful for:
//
//   - Entity/component storage in games and simulations
//   - Object registries where callers may outlive the objects they reference
//   - Replacing reference counting when staleness is an expected outcome
//   - Dense, linearly iterable storage with O(1) insert and remove
//
// # Basic Usage
//
//	m := slotmap.New[Enemy]()
//
//	h := m.Add(Enemy{HP: 100})
//
//	if e := m.Get(h); e != nil {
//		e.HP -= 10
//	}
//
//	m.Remove(h)
//	m.IsValid(h) // false from here on, even if the slot is reused
//
// # Memory Layout
//
// Live items are kept densely packed in a single backing slice; removal
// moves the last item into the vacated slot, so iteration is a plain
// linear scan with no gaps. A separate key table provides the
// handle-to-position indirection, and a parallel offset table maps each
// item position back to its owning key. All three grow in fixed-size
// chunks; the item store also shrinks when utilization drops two chunks
// below capacity. The key table never shrinks, since reissuing an old
// (index, generation) pair would break the staleness guarantee.
//
// Freed keys are recycled FIFO rather than LIFO, spreading generation
// increments evenly across slots and pushing the counter's wraparound
// horizon as far out as the configured bit width allows.
//
// # Pointers vs Handles
//
// Get, At, Items and All hand out pointers or views into the backing
// store. These are valid only until the next Add or Remove, which may
// relocate the store. Handles are unaffected by relocation and stay valid
// until the item they reference is removed.
//
// # Thread Safety
//
// A Map is not safe for concurrent use. All operations are synchronous
// and non-blocking; callers that share a Map across goroutines must
// provide their own exclusion.
//
// # Limits
//
// Index and generation widths are fixed per Map by Config. Exhausting the
// index space, or wrapping a slot's generation counter, would silently
// corrupt handle semantics, so both panic instead. Tune Config.IndexBits,
// Config.IDBits and Config.MinFreeKeys to push these ceilings beyond the
// expected workload.
package slotmap
