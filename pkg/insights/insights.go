// Package insights computes read-only statistics over a rolling window of
// daily logs. It never mutates the document.
package insights

import (
	"fmt"

	"tableflip.dev/vireo/pkg/daily"
	"tableflip.dev/vireo/pkg/document"
)

// Summary is the aggregated view of a window. Only entries with a recorded
// mood count toward denominators; with zero countable days the summary
// reports no data instead of dividing by zero.
type Summary struct {
	CountedDays    int
	AvgSleep       float64
	MostCommonMood document.Mood
	OutsideDays    int
	ExerciseDays   int
	GratitudeDays  int
}

// HasData reports whether any day in the window had a recorded mood.
func (s Summary) HasData() bool {
	return s.CountedDays > 0
}

// Ratio renders count over the counted-day denominator, or "no data" when
// the window is empty.
func (s Summary) Ratio(count int) string {
	if !s.HasData() {
		return "no data"
	}
	return fmt.Sprintf("%d/%d", count, s.CountedDays)
}

// Aggregate summarizes a window of days, ordinarily daily.Last30Days. Days
// are visited oldest first, so the mood-mode tie-break (first encountered
// wins) is deterministic.
func Aggregate(days []daily.Day) Summary {
	var s Summary

	moodCounts := make(map[document.Mood]int)
	var moodOrder []document.Mood

	var sleepTotal float64
	sleepDays := 0

	for _, day := range days {
		log := day.Log
		if log == nil || log.Mood == "" {
			continue
		}
		s.CountedDays++

		if _, seen := moodCounts[log.Mood]; !seen {
			moodOrder = append(moodOrder, log.Mood)
		}
		moodCounts[log.Mood]++

		if log.Sleep != nil {
			sleepTotal += *log.Sleep
			sleepDays++
		}
		if log.GotOutside {
			s.OutsideDays++
		}
		if log.MovedBody {
			s.ExerciseDays++
		}
		if log.Gratitude != "" {
			s.GratitudeDays++
		}
	}

	if sleepDays > 0 {
		s.AvgSleep = sleepTotal / float64(sleepDays)
	}

	best := 0
	for _, mood := range moodOrder {
		if moodCounts[mood] > best {
			best = moodCounts[mood]
			s.MostCommonMood = mood
		}
	}

	return s
}
