package bitvec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/bitvec/internal/alloc"
	"github.com/hupe1980/bitvec/internal/resource"
)

var (
	// ErrAllocationFailed is returned when the allocator cannot provide memory.
	ErrAllocationFailed = errors.New("allocation failed")

	// ErrMemoryLimitExceeded is returned when a memory budget refuses an allocation.
	ErrMemoryLimitExceeded = errors.New("memory limit exceeded")

	// ErrCapacityOverflow is returned when a requested capacity cannot be represented.
	ErrCapacityOverflow = errors.New("capacity overflow")
)

// AllocError reports a failed attempt to hold Requested elements.
//
// The original underlying error can be accessed via errors.Unwrap.
type AllocError struct {
	Requested int
	cause     error
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("allocating %d elements: %v", e.Requested, e.cause)
}

func (e *AllocError) Unwrap() error { return e.cause }

func translateError(err error, requested int) error {
	if err == nil {
		return nil
	}

	var ae *AllocError
	if errors.As(err, &ae) {
		return err
	}

	switch {
	case errors.Is(err, resource.ErrMemoryLimitExceeded):
		err = fmt.Errorf("%w: %w", ErrMemoryLimitExceeded, err)
	case errors.Is(err, alloc.ErrAllocationFailed):
		err = fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	case errors.Is(err, ErrCapacityOverflow), errors.Is(err, ErrAllocationFailed):
	default:
		err = fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}

	return &AllocError{Requested: requested, cause: err}
}
