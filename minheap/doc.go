// Package minheap implements an indexed binary min-heap of (priority, value)
// entries, where values are strings and priorities are integers.
//
// The heap keeps a map from each value to its slot in the backing array, so the
// priority of any stored value can be changed, or the value removed, in
// O(log n) without scanning. Values are unique: inserting a value that is
// already present fails with ErrDuplicateValue.
//
// Entries are ordered by priority and then by value, so entries with equal
// priority leave the heap in ascending lexicographic order of value.
//
// Key features:
//   - O(log n) Insert, RemoveMin, Remove and ChangePriority
//   - O(1) Peek, Len and value lookups
//   - Backing storage grows by a fixed increment (see WithGrowth)
//   - Optional zap logging and Prometheus instrumentation
//
// Basic usage:
//
//	h := minheap.New()
//
//	_ = h.Insert(100, "abc")
//	_ = h.Insert(20, "ghi")
//
//	// Lower the priority of an existing value
//	_ = h.ChangePriority("abc", 10)
//
//	for !h.Empty() {
//	    e, _ := h.RemoveMin()
//	    fmt.Println(e.Value, e.Priority)
//	}
//
// A Heap must not be used from multiple goroutines without external locking.
package minheap
