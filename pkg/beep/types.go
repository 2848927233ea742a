// ABOUTME: Beep request, outcome and state definitions
// ABOUTME: Transient values built per invocation and discarded afterwards
package beep

import "time"

// Request describes a single beep. FrequencyHz of 0 requests silence.
type Request struct {
	FrequencyHz uint32
	DurationMs  uint32
}

// Duration returns the wait between start and stop
func (r Request) Duration() time.Duration {
	return time.Duration(r.DurationMs) * time.Millisecond
}

// Outcome is the result of one emission attempt
type Outcome int

const (
	Succeeded Outcome = iota
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// State tracks an emission in progress
type State int

const (
	StateIdle State = iota
	StateStarting
	StateFailed
	StatePlaying
	StateStopping
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStarting:
		return "starting"
	case StateFailed:
		return "failed"
	case StatePlaying:
		return "playing"
	case StateStopping:
		return "stopping"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}
