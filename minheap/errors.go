package minheap

import "github.com/pingcap/errors"

// Error classes returned by Heap. Test with ErrX.Equal(err).
var (
	ErrDuplicateValue = errors.Normalize("value %q is already in the heap", errors.RFCCodeText("prioq:minheap:DuplicateValue"))
	ErrNotFound       = errors.Normalize("value %q is not in the heap", errors.RFCCodeText("prioq:minheap:NotFound"))
)

// Label values for rejected operations.
const (
	reasonDuplicate = "duplicate_value"
	reasonNotFound  = "not_found"
)
