package pipeline

import "fmt"

// State is a pipeline's position in its single forward pass.
type State int

const (
	Uninitialized State = iota
	QueueReady
	BuffersAllocated
	GeneratorBound
	Seeded
	Generated
	CopiedOut
	TornDown
)

var stateNames = [...]string{
	Uninitialized:    "UNINITIALIZED",
	QueueReady:       "QUEUE_READY",
	BuffersAllocated: "BUFFERS_ALLOCATED",
	GeneratorBound:   "GENERATOR_BOUND",
	Seeded:           "SEEDED",
	Generated:        "GENERATED",
	CopiedOut:        "COPIED_OUT",
	TornDown:         "TORN_DOWN",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}
