package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorWrapsCause(t *testing.T) {
	cause := errors.New("exit status 1")
	err := NewError(StageExtraction, "extract audio", cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected errors.Is to see the cause")
	}
	var stageErr *Error
	if !errors.As(error(err), &stageErr) {
		t.Fatal("expected errors.As to match *Error")
	}
	if stageErr.Stage != StageExtraction {
		t.Fatalf("stage %q", stageErr.Stage)
	}
	if msg := err.Error(); !strings.Contains(msg, "extraction") || !strings.Contains(msg, "exit status 1") {
		t.Fatalf("message %q", msg)
	}
}

func TestBusyErrorIsDetectable(t *testing.T) {
	err := busyError()
	if !errors.Is(err, ErrBusy) {
		t.Fatal("expected errors.Is(err, ErrBusy)")
	}
	wrapped := fmt.Errorf("start job: %w", err)
	if !errors.Is(wrapped, ErrBusy) {
		t.Fatal("expected wrapped busy error to match")
	}
}
