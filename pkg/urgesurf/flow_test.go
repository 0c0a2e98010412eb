package urgesurf

import (
	"testing"
	"time"
)

// manualAfter captures scheduled callbacks so tests control when the delayed
// auto-advance fires.
type manualAfter struct {
	fns []func()
}

func (m *manualAfter) after(_ time.Duration, fn func()) {
	m.fns = append(m.fns, fn)
}

func (m *manualAfter) fire() {
	for _, fn := range m.fns {
		fn()
	}
	m.fns = nil
}

func newTestFlow() (*Flow, *manualAfter) {
	f := New()
	m := &manualAfter{}
	f.SetAfter(m.after)
	return f, m
}

func TestBeginAlwaysAdvances(t *testing.T) {
	f, _ := newTestFlow()

	if f.Step() != StepIntensity {
		t.Fatalf("step = %v", f.Step())
	}
	f.SetIntensity(8)
	if !f.Forward() {
		t.Fatal("begin must always advance")
	}
	if f.Step() != StepFeeling {
		t.Fatalf("step = %v", f.Step())
	}
}

func TestFeelingGate(t *testing.T) {
	f, _ := newTestFlow()
	f.Forward() // begin

	if f.Forward() {
		t.Fatal("empty feeling must not advance")
	}
	f.SetFeeling("   ")
	if f.Forward() {
		t.Fatal("whitespace feeling must not advance")
	}
	if f.Step() != StepFeeling {
		t.Fatalf("step moved to %v", f.Step())
	}

	f.SetFeeling("restless and raw")
	if !f.Forward() {
		t.Fatal("non-empty feeling must advance")
	}
	if f.Step() != StepBreathe {
		t.Fatalf("step = %v", f.Step())
	}
}

func TestBreatheAutoAdvance(t *testing.T) {
	f, after := newTestFlow()
	f.Forward()
	f.SetFeeling("on edge")
	f.Forward()

	f.Breathe()
	f.Breathe()
	if len(after.fns) != 0 {
		t.Fatal("auto-advance scheduled before target reached")
	}
	f.Breathe()
	if f.Breaths() != BreathTarget {
		t.Fatalf("breaths = %d", f.Breaths())
	}
	if f.Step() != StepBreathe {
		t.Fatal("advance must wait for the delay")
	}
	if len(after.fns) != 1 {
		t.Fatalf("expected one scheduled advance, got %d", len(after.fns))
	}

	after.fire()
	if f.Step() != StepStrategy {
		t.Fatalf("expected automatic transition to strategy, got %v", f.Step())
	}

	// Extra breaths past the cap do nothing.
	f.Back()
	f.Breathe()
	if f.Breaths() != BreathTarget {
		t.Fatalf("breaths grew past cap: %d", f.Breaths())
	}
}

func TestNoSchedulerMeansNoBackgroundAdvance(t *testing.T) {
	// Without SetAfter the flow must never move on its own; a background
	// transition here would race the goroutine driving the wizard.
	f := New()
	f.Forward()
	f.SetFeeling("wired")
	f.Forward()

	f.Breathe()
	f.Breathe()
	f.Breathe()
	time.Sleep(2 * AdvanceDelay)
	if f.Step() != StepBreathe {
		t.Fatalf("flow advanced without a scheduler, step = %v", f.Step())
	}

	if !f.Forward() {
		t.Fatal("manual advance after the breath target must work")
	}
	if f.Step() != StepStrategy {
		t.Fatalf("step = %v", f.Step())
	}
}

func TestBackCancelsPendingAdvance(t *testing.T) {
	f, after := newTestFlow()
	f.Forward()
	f.SetFeeling("tight chest")
	f.Forward()

	f.Breathe()
	f.Breathe()
	f.Breathe()
	f.Back() // back to feeling before the delay fires
	after.fire()

	if f.Step() != StepFeeling {
		t.Fatalf("stale advance moved the wizard to %v", f.Step())
	}
}

func TestBackPreservesDraft(t *testing.T) {
	f, after := newTestFlow()
	f.SetIntensity(9)
	f.Forward()
	f.SetFeeling("spiraling")
	f.Forward()
	f.Breathe()
	f.Breathe()
	f.Breathe()
	after.fire()
	f.ChooseStrategy("Take a walk, even just 5 minutes")

	f.Back()
	f.Back()
	if f.Step() != StepFeeling {
		t.Fatalf("step = %v", f.Step())
	}
	if f.Feeling() != "spiraling" || f.Strategy() != "Take a walk, even just 5 minutes" || f.Intensity() != 9 {
		t.Fatal("stepping back cleared entered values")
	}

	if !f.Back() {
		t.Fatal("back to initial step")
	}
	if f.Back() {
		t.Fatal("back from the initial step must be refused")
	}
}

func TestStrategyGate(t *testing.T) {
	f, after := newTestFlow()
	f.Forward()
	f.SetFeeling("numb")
	f.Forward()
	f.Breathe()
	f.Breathe()
	f.Breathe()
	after.fire()

	if f.Forward() {
		t.Fatal("empty strategy must not advance")
	}
	f.ChooseStrategy("Write down what I'm feeling")
	if !f.Forward() {
		t.Fatal("selected strategy must advance")
	}
	if f.Step() != StepReflection {
		t.Fatalf("step = %v", f.Step())
	}
}

func TestCompleteCommitsOnceAndResets(t *testing.T) {
	f, after := newTestFlow()

	if _, err := f.Complete(time.Now()); err == nil {
		t.Fatal("complete before the final step must fail")
	}

	f.SetIntensity(8)
	f.Forward()
	f.SetFeeling("like I might give in")
	f.Forward()
	f.Breathe()
	f.Breathe()
	f.Breathe()
	after.fire()
	f.ChooseStrategy("Call someone who understands")
	f.Forward()
	f.SetPostIntensity(3)
	f.SetReflection("it passed faster than I thought")

	now := time.Date(2024, 1, 11, 21, 0, 0, 0, time.UTC)
	rec, err := f.Complete(now)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	if rec.Feeling != "like I might give in" || rec.Intensity != 8 ||
		rec.Strategy != "Call someone who understands" ||
		rec.PostIntensity != 3 || rec.PostReflection != "it passed faster than I thought" {
		t.Fatalf("record = %+v", rec)
	}
	if !rec.Timestamp.Equal(now) {
		t.Fatalf("timestamp = %v", rec.Timestamp)
	}

	// A completed flow leaves no residual draft.
	if f.Step() != StepIntensity || f.Feeling() != "" || f.Strategy() != "" ||
		f.Breaths() != 0 || f.Reflection() != "" || f.Intensity() != 5 {
		t.Fatalf("residual draft after completion: %+v", f)
	}
}

func TestIntensityClamped(t *testing.T) {
	f, _ := newTestFlow()
	f.SetIntensity(0)
	if f.Intensity() != 1 {
		t.Fatalf("intensity = %d", f.Intensity())
	}
	f.SetIntensity(42)
	if f.Intensity() != 10 {
		t.Fatalf("intensity = %d", f.Intensity())
	}
}
