package insights

import (
	"testing"
	"time"

	"tableflip.dev/vireo/pkg/daily"
	"tableflip.dev/vireo/pkg/document"
)

func window(t *testing.T, doc *document.Document) []daily.Day {
	t.Helper()
	now := time.Date(2024, 1, 30, 12, 0, 0, 0, time.UTC)
	return daily.Last30Days(doc, now)
}

func logOn(doc *document.Document, date string, mutate func(*document.DailyLog)) {
	log := document.NewDailyLog(date)
	if mutate != nil {
		mutate(&log)
	}
	doc.DailyLogs[date] = log
}

func TestAggregateCountsAndRatios(t *testing.T) {
	doc := document.New()

	// 12 days with a mood; 10 of them got outside.
	for i := 1; i <= 12; i++ {
		date := time.Date(2024, 1, i, 0, 0, 0, 0, time.UTC).Format(daily.KeyLayout)
		outside := i <= 10
		logOn(doc, date, func(l *document.DailyLog) {
			l.Mood = document.MoodOkay
			l.GotOutside = outside
		})
	}
	// A day without a mood must not count toward any denominator.
	logOn(doc, "2024-01-13", func(l *document.DailyLog) {
		l.GotOutside = true
	})

	s := Aggregate(window(t, doc))
	if s.CountedDays != 12 {
		t.Fatalf("counted days = %d, want 12", s.CountedDays)
	}
	if s.OutsideDays != 10 {
		t.Fatalf("outside days = %d, want 10", s.OutsideDays)
	}
	if got := s.Ratio(s.OutsideDays); got != "10/12" {
		t.Fatalf("ratio = %q", got)
	}
}

func TestAggregateAvgSleep(t *testing.T) {
	doc := document.New()
	sleeps := []float64{6, 8, 7}
	for i, hours := range sleeps {
		h := hours
		date := time.Date(2024, 1, 10+i, 0, 0, 0, 0, time.UTC).Format(daily.KeyLayout)
		logOn(doc, date, func(l *document.DailyLog) {
			l.Mood = document.MoodGood
			l.Sleep = &h
		})
	}
	// Mood but no sleep recorded: counts toward days, not toward the mean.
	logOn(doc, "2024-01-20", func(l *document.DailyLog) {
		l.Mood = document.MoodLow
	})

	s := Aggregate(window(t, doc))
	if s.AvgSleep != 7 {
		t.Fatalf("avg sleep = %v, want 7", s.AvgSleep)
	}
}

func TestAggregateAvgSleepZeroWhenNoneRecorded(t *testing.T) {
	doc := document.New()
	logOn(doc, "2024-01-10", func(l *document.DailyLog) {
		l.Mood = document.MoodGood
	})

	s := Aggregate(window(t, doc))
	if s.AvgSleep != 0 {
		t.Fatalf("avg sleep = %v, want 0", s.AvgSleep)
	}
}

func TestMostCommonMoodTieBreak(t *testing.T) {
	doc := document.New()
	// Two moods tie; the one seen first in window order wins.
	logOn(doc, "2024-01-10", func(l *document.DailyLog) { l.Mood = document.MoodLow })
	logOn(doc, "2024-01-11", func(l *document.DailyLog) { l.Mood = document.MoodGreat })
	logOn(doc, "2024-01-12", func(l *document.DailyLog) { l.Mood = document.MoodLow })
	logOn(doc, "2024-01-13", func(l *document.DailyLog) { l.Mood = document.MoodGreat })

	s := Aggregate(window(t, doc))
	if s.MostCommonMood != document.MoodLow {
		t.Fatalf("most common mood = %q, want first-encountered tie winner", s.MostCommonMood)
	}
}

func TestEmptyWindowReportsNoData(t *testing.T) {
	s := Aggregate(window(t, document.New()))
	if s.HasData() {
		t.Fatal("expected no data")
	}
	if got := s.Ratio(s.OutsideDays); got != "no data" {
		t.Fatalf("ratio = %q, want no data", got)
	}
}

func TestGratitudeAndExerciseDays(t *testing.T) {
	doc := document.New()
	logOn(doc, "2024-01-10", func(l *document.DailyLog) {
		l.Mood = document.MoodOkay
		l.MovedBody = true
		l.Gratitude = "quiet morning"
	})
	logOn(doc, "2024-01-11", func(l *document.DailyLog) {
		l.Mood = document.MoodOkay
	})

	s := Aggregate(window(t, doc))
	if s.ExerciseDays != 1 || s.GratitudeDays != 1 {
		t.Fatalf("exercise=%d gratitude=%d", s.ExerciseDays, s.GratitudeDays)
	}
}
