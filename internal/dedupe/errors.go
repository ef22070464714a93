package dedupe

import (
	"errors"
	"fmt"
)

// ErrWorkerFailure marks an unexpected failure while classifying a batch.
// Classification is deterministic, so failures are never retried.
var ErrWorkerFailure = errors.New("worker failure")

// BatchError reports which batch failed and why.
type BatchError struct {
	Batch int
	Err   error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%s: batch %d: %v", ErrWorkerFailure, e.Batch, e.Err)
}

func (e *BatchError) Is(target error) bool {
	return target == ErrWorkerFailure
}

func (e *BatchError) Unwrap() error {
	return e.Err
}
