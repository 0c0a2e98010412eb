// Package urgesurf implements the guided coping wizard: a strictly linear
// five-step flow for riding out an urge without reacting to it.
package urgesurf

import (
	"errors"
	"strings"
	"time"

	"tableflip.dev/vireo/pkg/document"
)

// Step is the active wizard stage.
type Step int

// Wizard steps, in the only order they can be visited.
const (
	StepIntensity Step = iota
	StepFeeling
	StepBreathe
	StepStrategy
	StepReflection
)

// StepInfo is the heading shown for a step.
type StepInfo struct {
	Title    string
	Subtitle string
}

// Info returns the heading for a step.
func Info(s Step) StepInfo {
	switch s {
	case StepIntensity:
		return StepInfo{Title: "How Strong Is the Urge?", Subtitle: "Rate it 1 to 10. Just notice it."}
	case StepFeeling:
		return StepInfo{Title: "Name What You're Feeling", Subtitle: "No judgment. Just truth."}
	case StepBreathe:
		return StepInfo{Title: "Breathe", Subtitle: "Three deep breaths. You have time."}
	case StepStrategy:
		return StepInfo{Title: "Recall a Better Strategy", Subtitle: "What helps you instead?"}
	case StepReflection:
		return StepInfo{Title: "You Surfed the Urge", Subtitle: "That's courage."}
	}
	return StepInfo{}
}

// BreathTarget is the number of breaths that trigger the auto-advance.
const BreathTarget = 3

// AdvanceDelay is how long after the final breath the wizard moves on by
// itself. The only automatic transition in the flow.
const AdvanceDelay = 500 * time.Millisecond

// ErrIncomplete is returned when Complete is called before the final step.
var ErrIncomplete = errors.New("urgesurf: session is not at the reflection step")

// Flow holds the wizard's working draft. The draft lives only here until
// Complete commits it to the document in a single append; stepping back never
// clears entered values.
type Flow struct {
	step Step

	intensity     int
	feeling       string
	breaths       int
	strategy      string
	postIntensity int
	reflection    string

	// after schedules the delayed breathe auto-advance. Flow is not safe for
	// concurrent use, so the scheduler must invoke fn from the caller's own
	// loop; see SetAfter.
	after func(d time.Duration, fn func())
	gen   int
}

// New returns a flow at the first step. Pre- and post-intensity start at the
// middle of the scale. Until SetAfter installs a scheduler the breathe
// auto-advance stays pending and the flow waits for a manual Forward.
func New() *Flow {
	return &Flow{
		intensity:     5,
		postIntensity: 5,
		after:         func(time.Duration, func()) {},
	}
}

// SetAfter installs the delayed-advance scheduler. The scheduler must call fn
// on the same goroutine that drives the flow: UIs route it through their
// event loop, the CLI fires it inline, tests capture and invoke it by hand.
func (f *Flow) SetAfter(after func(d time.Duration, fn func())) {
	f.after = after
}

// Step returns the active step.
func (f *Flow) Step() Step {
	return f.step
}

// Intensity returns the pre-session urge intensity.
func (f *Flow) Intensity() int { return f.intensity }

// Feeling returns the named feeling draft.
func (f *Flow) Feeling() string { return f.feeling }

// Breaths returns how many breaths have been taken this flow.
func (f *Flow) Breaths() int { return f.breaths }

// Strategy returns the chosen strategy.
func (f *Flow) Strategy() string { return f.strategy }

// PostIntensity returns the post-session urge intensity.
func (f *Flow) PostIntensity() int { return f.postIntensity }

// Reflection returns the free-text reflection draft.
func (f *Flow) Reflection() string { return f.reflection }

// SetIntensity records the pre-session intensity, clamped to 1..10.
func (f *Flow) SetIntensity(n int) {
	f.intensity = clampScale(n)
}

// SetFeeling records the feeling text.
func (f *Flow) SetFeeling(s string) {
	f.feeling = s
}

// ChooseStrategy selects a strategy, from the catalog or free text.
func (f *Flow) ChooseStrategy(s string) {
	f.strategy = strings.TrimSpace(s)
}

// SetPostIntensity records the post-session intensity, clamped to 1..10.
func (f *Flow) SetPostIntensity(n int) {
	f.postIntensity = clampScale(n)
}

// SetReflection records the reflection text.
func (f *Flow) SetReflection(s string) {
	f.reflection = s
}

func clampScale(n int) int {
	if n < 1 {
		return 1
	}
	if n > 10 {
		return 10
	}
	return n
}

// CanForward reports whether the gate for the current step is satisfied.
func (f *Flow) CanForward() bool {
	switch f.step {
	case StepIntensity:
		// "Begin" always advances.
		return true
	case StepFeeling:
		return strings.TrimSpace(f.feeling) != ""
	case StepBreathe:
		return f.breaths >= BreathTarget
	case StepStrategy:
		return f.strategy != ""
	default:
		// Completion is explicit, not a forward navigation.
		return false
	}
}

// Forward advances one step when the current gate allows it and reports
// whether it moved.
func (f *Flow) Forward() bool {
	if !f.CanForward() {
		return false
	}
	f.gen++
	f.step++
	return true
}

// Back decrements the step index from any non-initial step. Entered values
// persist across Back/Forward navigation within one flow instance.
func (f *Flow) Back() bool {
	if f.step == StepIntensity {
		return false
	}
	f.gen++
	f.step--
	return true
}

// Breathe counts one breath, capped at BreathTarget. Reaching the target
// schedules the automatic transition to the strategy step after AdvanceDelay;
// no manual continue is required.
func (f *Flow) Breathe() {
	if f.step != StepBreathe || f.breaths >= BreathTarget {
		return
	}
	f.breaths++
	if f.breaths < BreathTarget {
		return
	}

	gen := f.gen
	f.after(AdvanceDelay, func() {
		// Navigation since the final breath invalidates the pending advance.
		if f.gen != gen || f.step != StepBreathe {
			return
		}
		f.gen++
		f.step = StepStrategy
	})
}

// Complete builds the session record and resets the wizard to a blank first
// step. The draft is committed to the document exactly once, by the caller
// appending the returned record; a completed flow leaves no residual draft.
func (f *Flow) Complete(now time.Time) (document.UrgeSurfRecord, error) {
	if f.step != StepReflection {
		return document.UrgeSurfRecord{}, ErrIncomplete
	}

	rec := document.UrgeSurfRecord{
		Feeling:        f.feeling,
		Intensity:      f.intensity,
		Strategy:       f.strategy,
		PostReflection: f.reflection,
		PostIntensity:  f.postIntensity,
		Timestamp:      document.Timestamp{Time: now},
	}

	f.gen++
	f.step = StepIntensity
	f.intensity = 5
	f.feeling = ""
	f.breaths = 0
	f.strategy = ""
	f.postIntensity = 5
	f.reflection = ""

	return rec, nil
}
