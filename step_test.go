package lilt

import (
	"math"
	"strings"
	"testing"
)

func TestStepBackfillUnderLargeDt(t *testing.T) {
	var indexes []int
	var values []float64
	tw := FloatTween(0, 10, 1).
		SetStep(StepTimeInterval, 0.1).
		SetAutoKill(false).
		OnStep(func(i int, v float64) {
			indexes = append(indexes, i)
			values = append(values, v)
		}).
		Play()
	defer tw.Release()

	tw.Advance(0.35)
	if len(indexes) != 3 || indexes[0] != 1 || indexes[1] != 2 || indexes[2] != 3 {
		t.Fatalf("indexes = %v, want [1 2 3]", indexes)
	}
	// Each step sees the value at its own boundary.
	for i, want := range []float64{1, 2, 3} {
		if math.Abs(values[i]-want) > 1e-6 {
			t.Errorf("values[%d] = %v, want %v", i, values[i], want)
		}
	}
	if tw.StepIndex() != 3 {
		t.Errorf("StepIndex = %d, want 3", tw.StepIndex())
	}
}

func TestStepTimeIntervalAccumulates(t *testing.T) {
	count := 0
	tw := FloatTween(0, 1, 1).
		SetStep(StepTimeInterval, 0.1).
		SetAutoKill(false).
		OnStep(func(int, float64) { count++ }).
		Play()
	defer tw.Release()

	for i := 0; i < 10; i++ {
		tw.Advance(0.1)
	}
	if count != 10 {
		t.Errorf("count = %d, want 10", count)
	}
}

func TestStepProgressAcrossLoops(t *testing.T) {
	var indexes []int
	tw := FloatTween(0, 1, 2).
		SetLoops(1, LoopRestart).
		SetStep(StepProgress, 0.25).
		SetAutoKill(false).
		OnStep(func(i int, _ float64) { indexes = append(indexes, i) }).
		Play()
	defer tw.Release()

	tw.Advance(1.5) // 0.75 of cycle 0
	if len(indexes) != 3 {
		t.Fatalf("after 1.5s: %d steps, want 3", len(indexes))
	}
	tw.Advance(1.5) // finishes cycle 0, halfway into cycle 1
	if len(indexes) != 6 {
		t.Fatalf("after 3s: %d steps, want 6", len(indexes))
	}
	if indexes[5] != 6 {
		t.Errorf("last index = %d, want 6", indexes[5])
	}
}

func TestStepSilentDuringDelay(t *testing.T) {
	count := 0
	tw := FloatTween(0, 1, 1).
		SetDelay(1).
		SetStep(StepTimeInterval, 0.1).
		SetAutoKill(false).
		OnStep(func(int, float64) { count++ }).
		Play()
	defer tw.Release()

	tw.Advance(0.95)
	if count != 0 {
		t.Errorf("count = %d during delay, want 0", count)
	}
	tw.Advance(0.3) // 0.05 of delay, 0.25 active
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestStepInvalidIntervalWarns(t *testing.T) {
	buf := captureWarnings(t)
	count := 0
	tw := FloatTween(0, 1, 1).
		SetStep(StepTimeInterval, 0).
		SetAutoKill(false).
		OnStep(func(int, float64) { count++ }).
		Play()
	defer tw.Release()

	tw.Advance(0.5)
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
	if !strings.Contains(buf.String(), "step interval") {
		t.Errorf("warning output = %q", buf.String())
	}
}

func TestStepRewindResetsIndex(t *testing.T) {
	tw := FloatTween(0, 1, 1).SetStep(StepTimeInterval, 0.1).SetAutoKill(false).Play()
	defer tw.Release()

	tw.Advance(0.55)
	tw.Rewind()
	if tw.StepIndex() != 0 {
		t.Errorf("StepIndex = %d after rewind, want 0", tw.StepIndex())
	}
}
