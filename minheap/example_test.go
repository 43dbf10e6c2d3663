package minheap_test

import (
	"fmt"

	"github.com/davidvella/prioq/minheap"
)

// ExampleHeap demonstrates inserting entries and draining them in order.
func ExampleHeap() {
	h := minheap.New()

	_ = h.Insert(100, "abc")
	_ = h.Insert(50, "def")
	_ = h.Insert(20, "ghi")
	_ = h.Insert(75, "jkl")

	e, _ := h.Peek()
	fmt.Printf("Minimum: %s = %d\n", e.Value, e.Priority)

	for !h.Empty() {
		e, _ := h.RemoveMin()
		fmt.Printf("Removed: %s = %d\n", e.Value, e.Priority)
	}

	// Output:
	// Minimum: ghi = 20
	// Removed: ghi = 20
	// Removed: def = 50
	// Removed: jkl = 75
	// Removed: abc = 100
}

// ExampleHeap_ChangePriority shows moving an entry towards the root.
func ExampleHeap_ChangePriority() {
	h := minheap.New()

	_ = h.Insert(100, "abc")
	_ = h.Insert(50, "def")
	_ = h.Insert(20, "ghi")

	if err := h.ChangePriority("abc", 1); err != nil {
		fmt.Println(err)
	}

	e, _ := h.Peek()
	fmt.Println(e)

	err := h.ChangePriority("xyz", 1)
	fmt.Println(minheap.ErrNotFound.Equal(err))

	// Output:
	// (1, "abc")
	// true
}

// ExampleHeap_String prints the heap one level per line.
func ExampleHeap_String() {
	h := minheap.New()
	for i, v := range []string{"A", "B", "C", "D", "E"} {
		_ = h.Insert(i+1, v)
	}

	fmt.Print(h)

	// Output:
	// (1, "A")
	// (2, "B") (3, "C")
	// (4, "D") (5, "E")
}
