// Package prioq provides a priority queue of string values keyed by integer
// priorities. Lower priorities are dequeued first; values with equal priority
// are dequeued in ascending lexicographic order.
package prioq

import (
	"iter"

	"github.com/davidvella/prioq/minheap"
)

// Queue is a priority queue backed by an indexed min-heap. It is not safe for
// concurrent use; callers sharing a Queue must serialize access themselves.
type Queue struct {
	heap *minheap.Heap
}

// New creates an empty queue.
func New(opts ...Option) *Queue {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Queue{heap: minheap.New(o.heapOptions()...)}
}

// Enqueue adds value with the given priority. The value must not already be in
// the queue.
func (q *Queue) Enqueue(value string, priority int) error {
	return q.heap.Insert(priority, value)
}

// Dequeue removes the value with the lowest priority and returns it with its
// priority. It fails with ErrEmptyQueue if there is nothing to dequeue.
func (q *Queue) Dequeue() (string, int, error) {
	e, ok := q.heap.RemoveMin()
	if !ok {
		return "", 0, ErrEmptyQueue.GenWithStackByArgs()
	}
	return e.Value, e.Priority, nil
}

// Peek returns the value that Dequeue would return, without removing it.
func (q *Queue) Peek() (string, int, error) {
	e, ok := q.heap.Peek()
	if !ok {
		return "", 0, ErrEmptyQueue.GenWithStackByArgs()
	}
	return e.Value, e.Priority, nil
}

// UpdatePriority changes the priority of a value already in the queue.
func (q *Queue) UpdatePriority(value string, priority int) error {
	return q.heap.ChangePriority(value, priority)
}

// Remove takes value out of the queue regardless of its position and returns
// the priority it had.
func (q *Queue) Remove(value string) (int, error) {
	e, err := q.heap.Remove(value)
	if err != nil {
		return 0, err
	}
	return e.Priority, nil
}

// Priority returns the current priority of value.
func (q *Queue) Priority(value string) (int, error) {
	return q.heap.Priority(value)
}

// Contains reports whether value is in the queue.
func (q *Queue) Contains(value string) bool {
	return q.heap.Contains(value)
}

// Len returns the number of values in the queue.
func (q *Queue) Len() int {
	return q.heap.Len()
}

// Empty reports whether the queue is empty.
func (q *Queue) Empty() bool {
	return q.heap.Empty()
}

// Drain dequeues values in priority order for as long as the caller keeps
// iterating. Values not reached stay in the queue.
func (q *Queue) Drain() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for !q.heap.Empty() {
			e, _ := q.heap.RemoveMin()
			if !yield(e.Value, e.Priority) {
				return
			}
		}
	}
}

func (q *Queue) String() string {
	return q.heap.String()
}
