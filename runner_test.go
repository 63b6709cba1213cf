package lilt

import (
	"strings"
	"testing"
)

type recordingSink struct {
	events []TweenEvent
}

func (s *recordingSink) EmitEvent(e TweenEvent) { s.events = append(s.events, e) }

func TestRunnerRegistrationOrder(t *testing.T) {
	r := NewRunner()
	var order []string
	r.Add(FloatTween(0, 1, 1).OnUpdate(func(float64) { order = append(order, "a") }).Play())
	r.Add(FloatTween(0, 1, 1).OnUpdate(func(float64) { order = append(order, "b") }).Play())
	r.Add(FloatTween(0, 1, 1).OnUpdate(func(float64) { order = append(order, "c") }).Play())

	r.Update(0.1)
	if got := strings.Join(order, ""); got != "abc" {
		t.Errorf("order = %q, want abc", got)
	}
	r.KillAll()
}

func TestRunnerSweepsFinished(t *testing.T) {
	r := NewRunner()
	r.Add(FloatTween(0, 1, 0.5).Play())
	keep := FloatTween(0, 1, 2).Play()
	r.Add(keep)

	r.Update(0.5)
	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
	if len(r.entries) != 1 {
		t.Errorf("entries = %d, want 1 after sweep", len(r.entries))
	}
	r.KillAll()
}

func TestRunnerStaleEntryAfterRecycle(t *testing.T) {
	r := NewRunner()
	tw := FloatTween(0, 1, 1).Play()
	r.Add(tw)
	tw.Kill() // autokill returns it to the pool

	// Reacquiring the same slot must not be driven by the old entry.
	reused := FloatPool.Acquire()
	defer reused.Release()
	r.Update(0.1)
	if r.Len() != 0 {
		t.Errorf("Len = %d, want 0", r.Len())
	}
}

func TestRunnerAddDuringTickStartsNextTick(t *testing.T) {
	r := NewRunner()
	var late *Tween[float64]
	lateUpdates := 0
	r.Add(FloatTween(0, 1, 0.1).OnComplete(func() {
		late = FloatTween(0, 1, 1).OnUpdate(func(float64) { lateUpdates++ }).Play()
		r.Add(late)
	}).Play())

	r.Update(0.1)
	if lateUpdates != 0 {
		t.Errorf("tween added during tick advanced %d times in that tick", lateUpdates)
	}
	r.Update(0.1)
	if lateUpdates != 1 {
		t.Errorf("lateUpdates = %d, want 1", lateUpdates)
	}
	r.KillAll()
}

func TestRunnerTimeScale(t *testing.T) {
	r := NewRunner()
	r.TimeScale = 0.5
	scaled := FloatTween(0, 10, 1).SetAutoKill(false).Play()
	unscaled := FloatTween(0, 10, 1).SetAutoKill(false).SetUnscaledTime(true).Play()
	defer scaled.Release()
	defer unscaled.Release()
	r.Add(scaled)
	r.Add(unscaled)

	r.Update(0.2)
	assertNear(t, "scaled", scaled.Value(), 1)
	assertNear(t, "unscaled", unscaled.Value(), 2)
}

func TestRunnerEventSink(t *testing.T) {
	sink := &recordingSink{}
	r := NewRunner()
	r.SetEventSink(sink)
	tw := FloatTween(0, 1, 0.3).SetStep(StepTimeInterval, 0.1).SetTag("fade").Play()
	id := tw.ID
	r.Add(tw)

	r.Update(0.35)

	var types []EventType
	for _, e := range sink.events {
		types = append(types, e.Type)
		if e.TweenID != id || e.Tag != "fade" {
			t.Errorf("event %+v: want id %d tag fade", e, id)
		}
	}
	want := []EventType{EventStep, EventStep, EventStep, EventComplete, EventKill}
	if len(types) != len(want) {
		t.Fatalf("types = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("types[%d] = %v, want %v", i, types[i], want[i])
		}
	}
}

func TestRunnerKillAll(t *testing.T) {
	r := NewRunner()
	kills := 0
	for i := 0; i < 3; i++ {
		r.Add(FloatTween(0, 1, 1).OnKill(func() { kills++ }).Play())
	}
	r.Add(nil)
	r.KillAll()
	if kills != 3 || r.Len() != 0 {
		t.Errorf("kills = %d Len = %d, want 3 and 0", kills, r.Len())
	}
}

func TestRunnerDebugLog(t *testing.T) {
	buf := captureWarnings(t)
	globalDebug = true
	t.Cleanup(func() { globalDebug = false })

	r := NewRunner()
	r.Add(FloatTween(0, 1, 1).Play())
	r.Update(0.1)
	if !strings.Contains(buf.String(), "advanced: 1") {
		t.Errorf("debug output = %q", buf.String())
	}
	r.KillAll()
}
