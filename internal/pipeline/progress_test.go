package pipeline

import "testing"

func TestGuardedSinkDropsRegressions(t *testing.T) {
	capture := &progressCapture{}
	sink := newGuardedSink(capture)

	sink.report(10, "a")
	sink.report(30, "b")
	sink.report(20, "stale")
	sink.report(30, "repeat")
	sink.report(100, "done")

	want := []int{10, 30, 30, 100}
	if len(capture.percents) != len(want) {
		t.Fatalf("percents %v", capture.percents)
	}
	for i, p := range want {
		if capture.percents[i] != p {
			t.Fatalf("percents %v, want %v", capture.percents, want)
		}
	}
}

func TestGuardedSinkFailsExactlyOnce(t *testing.T) {
	capture := &progressCapture{}
	sink := newGuardedSink(capture)

	sink.report(40, "transcribing")
	sink.fail("failed")
	sink.fail("failed again")
	sink.report(90, "late")

	want := []int{40, 0}
	if len(capture.percents) != len(want) {
		t.Fatalf("percents %v", capture.percents)
	}
	if capture.percents[1] != 0 {
		t.Fatalf("expected reset to 0, got %v", capture.percents)
	}
}

func TestGuardedSinkNilTargetIsSafe(t *testing.T) {
	sink := newGuardedSink(nil)
	sink.report(10, "a")
	sink.fail("failed")
}
