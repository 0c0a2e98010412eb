// Package timer implements the countdown state machine behind the focus and
// music-scratchpad sessions. The machine is advanced by explicit Tick calls,
// one per second of wall-clock time, supplied by Run or by a UI tick message;
// tests drive it directly with a virtual clock.
package timer

import (
	"strings"
	"time"

	"tableflip.dev/vireo/pkg/document"
)

// State is the timer lifecycle state.
type State int

// Timer states. A focus timer that completes emits its record and returns to
// StateIdle on its own; the music variant parks in StateCompleted until the
// user ends the session explicitly.
const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateCompleted:
		return "completed"
	default:
		return "idle"
	}
}

// Preset is a named focus duration.
type Preset struct {
	Name     string
	Duration int // minutes
	Icon     string
}

// Presets returns the built-in focus presets.
func Presets() []Preset {
	return []Preset{
		{Name: "Stretch", Duration: 10, Icon: "🧘"},
		{Name: "Read", Duration: 45, Icon: "📖"},
		{Name: "Deep Work", Duration: 90, Icon: "💻"},
		{Name: "Quick Break", Duration: 5, Icon: "☕"},
	}
}

// PresetNamed finds a built-in preset by case-insensitive name.
func PresetNamed(name string) (Preset, bool) {
	for _, p := range Presets() {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// MusicSessionMinutes is the fixed music-scratchpad session length.
const MusicSessionMinutes = 20

// Timer is a countdown session. The zero value is not usable; construct with
// New or NewMusic.
type Timer struct {
	state     State
	remaining int
	preset    Preset

	// autoLog emits a completion record and auto-dismisses back to idle.
	// The music variant leaves it off: expiry parks at 0:00 and only the
	// explicit end action commits anything.
	autoLog    bool
	onComplete func(document.TimerSessionRecord)
	now        func() time.Time

	last *document.TimerSessionRecord
}

// New returns a focus timer. onComplete receives the session record exactly
// once per full completion; cancelled or reset sessions never produce one.
func New(onComplete func(document.TimerSessionRecord)) *Timer {
	return &Timer{
		autoLog:    true,
		onComplete: onComplete,
		now:        time.Now,
	}
}

// NewMusic returns the fixed-length music-session countdown. Its expiry does
// not log anything; ending the enclosing session is an explicit user action.
func NewMusic() *Timer {
	return &Timer{
		now: time.Now,
	}
}

// SetNow injects a clock, for tests.
func (t *Timer) SetNow(now func() time.Time) {
	t.now = now
}

// Start transitions Idle→Running with the preset's full duration remaining.
// Starting while a session is in progress is ignored.
func (t *Timer) Start(p Preset) {
	if t.state != StateIdle {
		return
	}
	t.preset = p
	t.remaining = p.Duration * 60
	t.state = StateRunning
	t.last = nil
}

// StartMusic begins the fixed 20-minute music countdown.
func (t *Timer) StartMusic() {
	t.Start(Preset{Name: "Music", Duration: MusicSessionMinutes, Icon: "🎵"})
}

// Pause suspends time accrual. No-op outside Running.
func (t *Timer) Pause() {
	if t.state == StateRunning {
		t.state = StatePaused
	}
}

// Resume picks up exactly where the countdown left off. No-op outside Paused.
func (t *Timer) Resume() {
	if t.state == StatePaused {
		t.state = StateRunning
	}
}

// Reset returns to Idle from any state, discarding the in-progress session.
// No partial-session record is ever persisted.
func (t *Timer) Reset() {
	t.state = StateIdle
	t.remaining = 0
	t.preset = Preset{}
}

// Tick advances the countdown by one second. It only counts while Running;
// ticks during Paused or Idle accrue nothing. Reaching zero completes the
// session: the focus variant emits its record and returns to Idle, the music
// variant parks in Completed at 0:00.
func (t *Timer) Tick() {
	if t.state != StateRunning {
		return
	}
	t.remaining--
	if t.remaining > 0 {
		return
	}
	t.remaining = 0
	t.state = StateCompleted

	if !t.autoLog {
		return
	}

	rec := document.TimerSessionRecord{
		Type:        t.preset.Name,
		Duration:    t.preset.Duration,
		CompletedAt: document.Timestamp{Time: t.now()},
	}
	t.last = &rec
	if t.onComplete != nil {
		t.onComplete(rec)
	}

	// Auto-dismiss: no user action required after completion.
	t.state = StateIdle
	t.preset = Preset{}
}

// State returns the current lifecycle state.
func (t *Timer) State() State {
	return t.state
}

// Remaining returns seconds left in the countdown.
func (t *Timer) Remaining() int {
	return t.remaining
}

// Preset returns the active preset. Zero value when idle.
func (t *Timer) Preset() Preset {
	return t.preset
}

// LastCompleted returns the most recent completion record, if the last
// session ran to the end.
func (t *Timer) LastCompleted() *document.TimerSessionRecord {
	return t.last
}
