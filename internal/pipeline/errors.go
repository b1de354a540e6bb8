package pipeline

import (
	"errors"
	"fmt"

	"github.com/samcharles93/gpurand/internal/device"
	"github.com/samcharles93/gpurand/internal/rng"
)

var ErrSequence = errors.New("pipeline stage out of order")

const (
	StageValidate        = "validate"
	StageAcquireQueue    = "acquire_queue"
	StageAllocateBuffers = "allocate_buffers"
	StageBindGenerator   = "bind_generator"
	StageSeed            = "seed"
	StageGenerate        = "generate"
	StageCopyOut         = "copy_out"
	StageTeardown        = "teardown"
)

// StageError records which pipeline stage failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s failed (%s): %v", e.Stage, Kind(e.Err), e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Kind names the error class of err.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrSequence):
		return "SequenceError"
	case errors.Is(err, device.ErrAllocation):
		return "AllocationError"
	case errors.Is(err, device.ErrInvalidHandle):
		return "InvalidHandleError"
	case errors.Is(err, rng.ErrUnsupportedVariant):
		return "UnsupportedVariantError"
	case errors.Is(err, rng.ErrGeneration):
		return "GenerationError"
	default:
		return "DeviceError"
	}
}

// Stage returns the failing stage recorded in err, if any.
func Stage(err error) string {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return ""
}
