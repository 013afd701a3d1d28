package pipeline

import (
	"errors"
	"fmt"
)

// Stage identifies the pipeline stage where an error originated.
type Stage string

const (
	StageExtraction    Stage = "extraction"
	StageTranscription Stage = "transcription"
	StageExport        Stage = "export"
	StageBusy          Stage = "busy"
)

// ErrBusy indicates that a job is already active.
var ErrBusy = errors.New("a transcription job is already running")

// Error is a stage-tagged pipeline failure. It wraps the underlying
// cause so callers can use errors.Is and errors.As against it.
type Error struct {
	Stage   Stage
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Stage, e.Message, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Stage, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Stage, e.Message)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps cause as a failure of the given stage.
func NewError(stage Stage, message string, cause error) *Error {
	return &Error{Stage: stage, Message: message, Err: cause}
}

func busyError() *Error {
	return &Error{Stage: StageBusy, Err: ErrBusy}
}
