package sync

import (
	"errors"
	"fmt"
)

// Code classifies a sync failure.
type Code string

const (
	// CodeInvalidPayload marks a record that could not be interpreted,
	// usually a missing natural-key field.
	CodeInvalidPayload Code = "invalid_payload"
	// CodeConflict marks a natural-key race that survived the one
	// retry-as-update.
	CodeConflict Code = "conflict"
	// CodeStorage marks a storage-layer failure. Not retried here.
	CodeStorage Code = "storage_error"
	// CodeNotFound marks a lookup miss on a read path.
	CodeNotFound Code = "not_found"
)

// Error is a sync failure tagged with the natural key it concerns. Key
// is empty when the failure happened before the key could be resolved.
type Error struct {
	Code Code
	Key  string
	Err  error
}

func (e *Error) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return fmt.Sprintf("%s (%s): %v", e.Code, e.Key, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CodeOf extracts the failure code from err, CodeStorage when err is
// not a sync error.
func CodeOf(err error) Code {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return CodeStorage
}

// KeyOf extracts the natural key from err, "" when untagged.
func KeyOf(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Key
	}
	return ""
}
