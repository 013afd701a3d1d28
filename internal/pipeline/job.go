package pipeline

import (
	"time"

	"github.com/google/uuid"

	"aurora/internal/export"
	"aurora/internal/media"
)

// State is a job lifecycle state.
type State string

const (
	StateIdle                State = "idle"
	StateExtracting          State = "extracting"
	StateTranscribing        State = "transcribing"
	StateAwaitingDestination State = "awaiting_destination"
	StateExporting           State = "exporting"
	StateSucceeded           State = "succeeded"
	StateFailed              State = "failed"
	StateCancelled           State = "cancelled"
)

// Terminal reports whether the state ends a job.
func (s State) Terminal() bool {
	switch s {
	case StateSucceeded, StateFailed, StateCancelled:
		return true
	}
	return false
}

// allowedTransitions encodes the job state machine. Failed and
// Cancelled are reachable from every non-terminal state.
var allowedTransitions = map[State][]State{
	StateIdle:                {StateExtracting, StateTranscribing, StateFailed, StateCancelled},
	StateExtracting:          {StateTranscribing, StateFailed, StateCancelled},
	StateTranscribing:        {StateAwaitingDestination, StateFailed, StateCancelled},
	StateAwaitingDestination: {StateExporting, StateFailed, StateCancelled},
	StateExporting:           {StateSucceeded, StateFailed, StateCancelled},
}

// CanTransition reports whether moving from one state to another is
// legal under the job state machine.
func CanTransition(from, to State) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Job is a single transcription run. The orchestrator owns it; callers
// receive a snapshot in the Outcome once the job is terminal.
type Job struct {
	ID          uuid.UUID
	SourcePath  string
	MediaKind   media.Kind
	Format      export.Format
	Destination string
	State       State
	StartedAt   time.Time
	FinishedAt  time.Time
	Err         error
}

// transition moves the job forward, enforcing the state machine.
// Illegal transitions indicate an orchestrator bug.
func (j *Job) transition(to State) {
	if !CanTransition(j.State, to) {
		panic("pipeline: illegal transition " + string(j.State) + " -> " + string(to))
	}
	j.State = to
}
