package daily

import (
	"testing"
	"time"

	"tableflip.dev/vireo/pkg/document"
)

func TestStreak(t *testing.T) {
	now := time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start string
		want  int
	}{
		{name: "ten days in", start: "2024-01-01", want: 10},
		{name: "no start date", start: "", want: 0},
		{name: "unparsable start date", start: "soonish", want: 0},
		{name: "same day", start: "2024-01-11", want: 0},
		// Absolute difference: a future start still yields a positive count.
		{name: "future start date", start: "2024-01-21", want: 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Streak(tc.start, now); got != tc.want {
				t.Fatalf("Streak(%q) = %d, want %d", tc.start, got, tc.want)
			}
		})
	}
}

func TestStreakRoundsPartialDaysUp(t *testing.T) {
	now := time.Date(2024, 1, 11, 15, 4, 5, 0, time.UTC)
	if got := Streak("2024-01-01", now); got != 11 {
		t.Fatalf("expected partial day to round up to 11, got %d", got)
	}
}

func TestGetOrCreate(t *testing.T) {
	now := time.Date(2024, 1, 11, 9, 0, 0, 0, time.UTC)
	doc := document.New()

	log := GetOrCreate(doc, now)
	if log.Date != "2024-01-11" {
		t.Fatalf("expected fresh log keyed to today, got %q", log.Date)
	}
	if log.Mood != "" || log.Notes != "" || log.DrankToday {
		t.Fatalf("expected empty fields, got %+v", log)
	}

	log.Mood = document.MoodGood
	doc.DailyLogs[log.Date] = log

	again := GetOrCreate(doc, now)
	if again.Mood != document.MoodGood {
		t.Fatalf("expected stored log back, got %+v", again)
	}
}

func TestOneLogPerDay(t *testing.T) {
	now := time.Date(2024, 1, 11, 9, 0, 0, 0, time.UTC)
	doc := document.New()

	first := GetOrCreate(doc, now)
	first.Mood = document.MoodGreat
	first.Notes = "morning"
	doc.DailyLogs[first.Date] = first

	second := GetOrCreate(doc, now)
	second.Mood = document.MoodLow
	doc.DailyLogs[second.Date] = second

	if len(doc.DailyLogs) != 1 {
		t.Fatalf("expected exactly one entry for the day, got %d", len(doc.DailyLogs))
	}
	got := doc.DailyLogs["2024-01-11"]
	if got.Mood != document.MoodLow || got.Notes != "morning" {
		t.Fatalf("expected last write to win per-field, got %+v", got)
	}
}

func TestLast7Days(t *testing.T) {
	now := time.Date(2024, 1, 11, 12, 0, 0, 0, time.UTC) // a Thursday
	doc := document.New()
	doc.DailyLogs["2024-01-09"] = document.DailyLog{Date: "2024-01-09", Mood: document.MoodOkay}

	days := Last7Days(doc, now)
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if days[0].Key != "2024-01-05" {
		t.Fatalf("expected window to start at 2024-01-05, got %s", days[0].Key)
	}
	if days[6].Key != "2024-01-11" || days[6].Label != "Today" {
		t.Fatalf("expected last day labeled Today, got %+v", days[6])
	}
	if days[0].Label != "Fri" {
		t.Fatalf("expected short weekday label, got %q", days[0].Label)
	}

	for _, d := range days {
		if d.Key == "2024-01-09" {
			if d.Log == nil || d.Log.Mood != document.MoodOkay {
				t.Fatalf("expected stored log for %s, got %+v", d.Key, d.Log)
			}
		} else if d.Log != nil {
			t.Fatalf("expected nil log for %s", d.Key)
		}
	}
}

func TestLast30DaysLength(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	days := Last30Days(document.New(), now)
	if len(days) != 30 {
		t.Fatalf("expected 30 days, got %d", len(days))
	}
	if days[len(days)-1].Key != "2024-03-01" {
		t.Fatalf("expected window to end today, got %s", days[len(days)-1].Key)
	}
}
