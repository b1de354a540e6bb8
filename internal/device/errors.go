package device

import (
	"errors"
	"fmt"
)

var (
	ErrAllocation     = errors.New("allocation failed")
	ErrInvalidHandle  = errors.New("invalid handle")
	ErrQueueBusy      = errors.New("queue has attached generators")
	ErrQueueDestroyed = errors.New("queue destroyed")
)

func executionError(rec any) error {
	if recErr, ok := rec.(error); ok {
		return fmt.Errorf("device execution failed: %w", recErr)
	}
	return fmt.Errorf("device execution failed: %v", rec)
}
