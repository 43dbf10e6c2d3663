package prioq

import (
	"github.com/pingcap/errors"

	"github.com/davidvella/prioq/minheap"
)

// ErrEmptyQueue is returned by Dequeue and Peek on an empty queue.
var ErrEmptyQueue = errors.Normalize("priority queue is empty", errors.RFCCodeText("prioq:EmptyQueue"))

// Errors passed through unchanged from the underlying heap.
var (
	ErrDuplicateValue = minheap.ErrDuplicateValue
	ErrNotFound       = minheap.ErrNotFound
)
