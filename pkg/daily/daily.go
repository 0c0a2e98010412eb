// Package daily derives and updates today's entry inside the document and
// computes streaks and rolling windows.
package daily

import (
	"math"
	"time"

	"tableflip.dev/vireo/pkg/document"
)

// KeyLayout formats a calendar day as a dailyLogs map key.
const KeyLayout = "2006-01-02"

// Key returns the date key for the given instant.
func Key(t time.Time) string {
	return t.Format(KeyLayout)
}

// GetOrCreate returns today's log from the document, or a fresh empty log
// keyed to today when none has been written yet. The caller writes the
// updated log back under the same key and persists.
func GetOrCreate(doc *document.Document, now time.Time) document.DailyLog {
	key := Key(now)
	if doc != nil {
		if log, ok := doc.DailyLogs[key]; ok {
			return log
		}
	}
	return document.NewDailyLog(key)
}

// Streak returns whole days elapsed since startDate (a KeyLayout date), or 0
// when no start date is set. The absolute difference means a start date in
// the future still yields a positive count; that mirrors long-standing
// behavior and stands until product says otherwise.
func Streak(startDate string, now time.Time) int {
	if startDate == "" {
		return 0
	}
	start, err := time.Parse(KeyLayout, startDate)
	if err != nil {
		return 0
	}
	diff := now.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// Day is one slot in a rolling window: the date key, the stored log if any,
// and a short display label.
type Day struct {
	Key   string
	Log   *document.DailyLog
	Label string
}

// LastNDays returns the most recent n calendar days ending today, oldest
// first. The final day is labeled "Today"; earlier days get a short weekday
// name.
func LastNDays(doc *document.Document, n int, now time.Time) []Day {
	days := make([]Day, 0, n)
	for i := n - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i)
		key := Key(date)

		day := Day{Key: key, Label: date.Format("Mon")}
		if i == 0 {
			day.Label = "Today"
		}
		if doc != nil {
			if log, ok := doc.DailyLogs[key]; ok {
				l := log
				day.Log = &l
			}
		}
		days = append(days, day)
	}
	return days
}

// Last7Days is the check-in timeline window.
func Last7Days(doc *document.Document, now time.Time) []Day {
	return LastNDays(doc, 7, now)
}

// Last30Days is the aggregation window used by insights. It is never mutated.
func Last30Days(doc *document.Document, now time.Time) []Day {
	return LastNDays(doc, 30, now)
}
