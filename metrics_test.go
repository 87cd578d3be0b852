package slotmap

import (
	"testing"
	"unsafe"
)

func TestMapMetrics(t *testing.T) {
	m := NewWithConfig[int64](Config{IndexBits: 16, IDBits: 16, MinFreeKeys: 2, ChunkSize: 8})

	// Test initial state: nothing is allocated until the first Add.
	if m.Len() != 0 {
		t.Errorf("Initial Len = %d, want 0", m.Len())
	}
	if m.Cap() != 0 {
		t.Errorf("Initial Cap = %d, want 0", m.Cap())
	}
	if m.KeyCount() != 0 {
		t.Errorf("Initial KeyCount = %d, want 0", m.KeyCount())
	}
	if m.Utilization() != 0 {
		t.Errorf("Initial Utilization = %f, want 0", m.Utilization())
	}
	if m.ChunkSize() != 8 {
		t.Errorf("ChunkSize = %d, want 8", m.ChunkSize())
	}

	for i := int64(0); i < 3; i++ {
		m.Add(i)
	}

	if m.Len() != 3 {
		t.Errorf("Len = %d, want 3", m.Len())
	}
	if m.Cap() != 8 {
		t.Errorf("Cap = %d, want 8", m.Cap())
	}
	if m.KeyCount() != 8 {
		t.Errorf("KeyCount = %d, want 8", m.KeyCount())
	}
	if m.FreeKeys() != 5 {
		t.Errorf("FreeKeys = %d, want 5", m.FreeKeys())
	}
	if want := 3 * int(unsafe.Sizeof(int64(0))); m.SizeBytes() != want {
		t.Errorf("SizeBytes = %d, want %d", m.SizeBytes(), want)
	}

	utilization := m.Utilization()
	if utilization <= 0 || utilization > 1 {
		t.Errorf("Utilization = %f, want 0 < x <= 1", utilization)
	}

	// Test metrics snapshot
	metrics := m.Metrics()
	if metrics.Len != m.Len() {
		t.Errorf("Metrics.Len = %d, want %d", metrics.Len, m.Len())
	}
	if metrics.Cap != m.Cap() {
		t.Errorf("Metrics.Cap = %d, want %d", metrics.Cap, m.Cap())
	}
	if metrics.KeyCount != m.KeyCount() {
		t.Errorf("Metrics.KeyCount = %d, want %d", metrics.KeyCount, m.KeyCount())
	}
	if metrics.FreeKeys != m.FreeKeys() {
		t.Errorf("Metrics.FreeKeys = %d, want %d", metrics.FreeKeys, m.FreeKeys())
	}
	if metrics.SizeBytes != m.SizeBytes() {
		t.Errorf("Metrics.SizeBytes = %d, want %d", metrics.SizeBytes, m.SizeBytes())
	}
	if metrics.ChunkSize != m.ChunkSize() {
		t.Errorf("Metrics.ChunkSize = %d, want %d", metrics.ChunkSize, m.ChunkSize())
	}
	if metrics.Utilization != m.Utilization() {
		t.Errorf("Metrics.Utilization = %f, want %f", metrics.Utilization, m.Utilization())
	}
}

func TestMetricsAfterClear(t *testing.T) {
	m := NewWithConfig[int](Config{IndexBits: 16, IDBits: 16, MinFreeKeys: 2, ChunkSize: 8})

	for i := 0; i < 20; i++ {
		m.Add(i)
	}
	if m.Len() != 20 {
		t.Fatalf("Len = %d, want 20", m.Len())
	}

	m.Clear()

	if m.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", m.Len())
	}
	if m.SizeBytes() != 0 {
		t.Errorf("SizeBytes after Clear = %d, want 0", m.SizeBytes())
	}
	if m.Utilization() != 0 {
		t.Errorf("Utilization after Clear = %f, want 0", m.Utilization())
	}

	// The key table survives Clear; all keys are back on the free list.
	if m.KeyCount() == 0 {
		t.Error("Expected key table to remain after Clear")
	}
	if m.FreeKeys() != m.KeyCount() {
		t.Errorf("FreeKeys after Clear = %d, want %d", m.FreeKeys(), m.KeyCount())
	}
}
