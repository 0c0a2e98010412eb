package timer

import (
	"context"
	"time"
)

// Run drives the timer with real one-second ticks until the session leaves
// the Running/Paused states or ctx is cancelled. The tick source is released
// on return no matter how the session ends; a cancelled run resets the timer
// so no completion record is emitted for unfinished work.
func Run(ctx context.Context, t *Timer, onTick func(remaining int, state State)) error {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			t.Reset()
			return ctx.Err()
		case <-ticker.C:
			t.Tick()
			if onTick != nil {
				onTick(t.Remaining(), t.State())
			}
			switch t.State() {
			case StateRunning, StatePaused:
			default:
				return nil
			}
		}
	}
}
