package minheap

import (
	"fmt"
	"strings"

	"github.com/pingcap/errors"
	"go.uber.org/zap"
)

// Entry is a (priority, value) pair stored in the heap.
type Entry struct {
	Priority int
	Value    string
}

// Less orders entries by priority, then by value. Every comparison made by the
// heap goes through Less, which is what makes equal-priority extraction
// lexicographic.
func (e Entry) Less(other Entry) bool {
	if e.Priority != other.Priority {
		return e.Priority < other.Priority
	}
	return e.Value < other.Value
}

func (e Entry) String() string {
	return fmt.Sprintf("(%d, %q)", e.Priority, e.Value)
}

// Heap is an array-backed binary min-heap of entries with a value to position
// index. Slots [0, size) hold a valid heap; slots [size, len(storage)) are unused.
//
// A Heap is not safe for concurrent use.
type Heap struct {
	storage    []Entry
	size       int
	positionOf map[string]int
	opts       options
}

// New creates an empty heap.
func New(opts ...Option) *Heap {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	h := &Heap{
		storage:    make([]Entry, o.initialCapacity),
		positionOf: make(map[string]int, o.initialCapacity),
		opts:       o,
	}
	h.opts.metrics.SetCapacity(len(h.storage))
	return h
}

// Len returns the number of entries in the heap.
func (h *Heap) Len() int {
	return h.size
}

// Empty reports whether the heap holds no entries.
func (h *Heap) Empty() bool {
	return h.size == 0
}

// Cap returns the number of allocated slots.
func (h *Heap) Cap() int {
	return len(h.storage)
}

// Peek returns the minimum entry without removing it.
func (h *Heap) Peek() (Entry, bool) {
	if h.size == 0 {
		return Entry{}, false
	}
	return h.storage[0], true
}

// Contains reports whether value is in the heap.
func (h *Heap) Contains(value string) bool {
	_, ok := h.positionOf[value]
	return ok
}

// Priority returns the current priority of value.
func (h *Heap) Priority(value string) (int, error) {
	pos, ok := h.positionOf[value]
	if !ok {
		return 0, h.notFound("priority", value)
	}
	return h.storage[pos].Priority, nil
}

// Insert adds value with the given priority. It fails with ErrDuplicateValue if
// value is already present.
func (h *Heap) Insert(priority int, value string) error {
	if _, ok := h.positionOf[value]; ok {
		h.opts.metrics.Reject(reasonDuplicate)
		h.opts.logger.Debug("rejected insert of duplicate value",
			zap.String("value", value), zap.Int("priority", priority))
		return ErrDuplicateValue.GenWithStackByArgs(value)
	}

	if h.size == len(h.storage) {
		h.grow()
	}

	pos := h.size
	h.storage[pos] = Entry{Priority: priority, Value: value}
	h.positionOf[value] = pos
	h.size++
	h.up(pos)

	h.opts.metrics.Inserted(h.size)
	return nil
}

// RemoveMin removes and returns the minimum entry. The boolean is false when the
// heap is empty.
func (h *Heap) RemoveMin() (Entry, bool) {
	if h.size == 0 {
		return Entry{}, false
	}
	return h.removeAt(0), true
}

// Remove deletes value from the heap and returns its entry.
func (h *Heap) Remove(value string) (Entry, error) {
	pos, ok := h.positionOf[value]
	if !ok {
		return Entry{}, h.notFound("remove", value)
	}
	return h.removeAt(pos), nil
}

// ChangePriority replaces the priority of value and restores heap order. It
// fails with ErrNotFound if value is not present.
func (h *Heap) ChangePriority(value string, priority int) error {
	pos, ok := h.positionOf[value]
	if !ok {
		return h.notFound("change priority", value)
	}

	old := h.storage[pos].Priority
	h.storage[pos].Priority = priority
	switch {
	case priority < old:
		h.up(pos)
	case priority > old:
		h.down(pos)
	}

	h.opts.metrics.PriorityChanged()
	return nil
}

// Entries returns a copy of the occupied slots in array order.
func (h *Heap) Entries() []Entry {
	out := make([]Entry, h.size)
	copy(out, h.storage[:h.size])
	return out
}

// String renders the heap breadth first, one line per level.
func (h *Heap) String() string {
	if h.size == 0 {
		return "[empty]"
	}

	var sb strings.Builder
	width, inRow := 1, 0
	for i := 0; i < h.size; i++ {
		if inRow > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(h.storage[i].String())
		inRow++
		if inRow == width || i == h.size-1 {
			sb.WriteByte('\n')
			width *= 2
			inRow = 0
		}
	}
	return sb.String()
}

// Validate checks heap order, index consistency and density.
func (h *Heap) Validate() error {
	if h.size < 0 || h.size > len(h.storage) {
		return errors.Errorf("size %d outside [0, %d]", h.size, len(h.storage))
	}
	if len(h.positionOf) != h.size {
		return errors.Errorf("index holds %d values, heap holds %d", len(h.positionOf), h.size)
	}
	for i := 0; i < h.size; i++ {
		e := h.storage[i]
		if pos, ok := h.positionOf[e.Value]; !ok || pos != i {
			return errors.Errorf("value %q at slot %d indexed at %d (present=%v)", e.Value, i, pos, ok)
		}
		if i > 0 && e.Less(h.storage[parent(i)]) {
			return errors.Errorf("slot %d %v is less than its parent %v", i, e, h.storage[parent(i)])
		}
	}
	return nil
}

func (h *Heap) grow() {
	h.storage = append(h.storage, make([]Entry, h.opts.growth)...)
	h.opts.metrics.Grew(len(h.storage))
	h.opts.logger.Debug("grew heap storage",
		zap.Int("size", h.size), zap.Int("capacity", len(h.storage)))
}

// removeAt takes the entry at pos out of the heap, filling the hole with the
// last occupied slot.
func (h *Heap) removeAt(pos int) Entry {
	removed := h.storage[pos]
	last := h.size - 1

	if pos != last {
		h.swap(pos, last)
	}
	h.storage[last] = Entry{}
	h.size--
	delete(h.positionOf, removed.Value)

	if pos != last {
		// The moved entry may belong above or below pos; at most one of these moves it.
		if !h.down(pos) {
			h.up(pos)
		}
	}

	h.opts.metrics.Removed(h.size)
	return removed
}

func (h *Heap) notFound(op, value string) error {
	h.opts.metrics.Reject(reasonNotFound)
	h.opts.logger.Debug("value not in heap", zap.String("op", op), zap.String("value", value))
	return ErrNotFound.GenWithStackByArgs(value)
}

// swap is the only place that exchanges two slots, so the index never disagrees
// with storage once it returns.
func (h *Heap) swap(p, q int) {
	h.storage[p], h.storage[q] = h.storage[q], h.storage[p]
	h.positionOf[h.storage[p].Value] = p
	h.positionOf[h.storage[q].Value] = q
}

func (h *Heap) less(i, j int) bool {
	return h.storage[i].Less(h.storage[j])
}

// up moves the entry at pos towards the root until its parent is not greater.
func (h *Heap) up(pos int) {
	for pos > 0 {
		p := parent(pos)
		if !h.less(pos, p) {
			break
		}
		h.swap(pos, p)
		pos = p
	}
}

// down moves the entry at pos towards the leaves and reports whether it moved.
// The right child is tested first and wins if it is the minimum.
func (h *Heap) down(pos int) bool {
	start := pos
	for {
		smallest := pos
		l, r := left(pos), right(pos)

		if r < h.size && h.less(r, smallest) {
			smallest = r
		}
		if l < h.size && h.less(l, smallest) {
			smallest = l
		}

		if smallest == pos {
			break
		}

		h.swap(pos, smallest)
		pos = smallest
	}
	return pos != start
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }
