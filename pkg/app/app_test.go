package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/vireo/pkg/document"
	"tableflip.dev/vireo/pkg/store"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func newService(t *testing.T) *Service {
	t.Helper()
	p, err := store.Open(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("open persistence: %v", err)
	}
	s, err := New(p)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	s.SetNow(func() time.Time {
		return time.Date(2024, 1, 11, 12, 0, 0, 0, time.UTC)
	})
	return s
}

func TestMutatePersistsBeforeRead(t *testing.T) {
	p, err := store.Open(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	s, err := New(p)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if err := s.AddStrategy("Step outside for one song"); err != nil {
		t.Fatalf("mutate: %v", err)
	}

	// The write must be observable through a completely separate load.
	stored, err := p.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	found := false
	for _, st := range stored.BetterStrategies {
		if st == "Step outside for one song" {
			found = true
		}
	}
	if !found {
		t.Fatal("mutation was not persisted before returning")
	}
}

func TestDocumentReturnsCopy(t *testing.T) {
	s := newService(t)

	doc := s.Document()
	doc.BetterStrategies = append(doc.BetterStrategies, "scribbled draft")

	if n := len(s.Document().BetterStrategies); n != len(document.DefaultStrategies()) {
		t.Fatalf("edit through the read copy leaked into the service: %d strategies", n)
	}
}

func TestSubscribeNotifiedOnMutation(t *testing.T) {
	s := newService(t)

	calls := 0
	s.Subscribe(func() { calls++ })

	if err := s.UpdateToday(func(l *document.DailyLog) {
		l.Mood = document.MoodGood
	}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected one notification, got %d", calls)
	}
}

func TestUpdateTodayTargetsTodayKey(t *testing.T) {
	s := newService(t)

	if err := s.UpdateToday(func(l *document.DailyLog) {
		l.Mood = document.MoodGreat
		l.GotOutside = true
	}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := s.UpdateToday(func(l *document.DailyLog) {
		l.Mood = document.MoodOkay
	}); err != nil {
		t.Fatalf("second update: %v", err)
	}

	doc := s.Document()
	if len(doc.DailyLogs) != 1 {
		t.Fatalf("expected one log for the day, got %d", len(doc.DailyLogs))
	}
	log := doc.DailyLogs["2024-01-11"]
	if log.Mood != document.MoodOkay || !log.GotOutside {
		t.Fatalf("expected per-field last-write-wins, got %+v", log)
	}
}

func TestSetSobrietyStartAndStreak(t *testing.T) {
	s := newService(t)

	if err := s.SetSobrietyStart("not-a-date"); err == nil {
		t.Fatal("expected invalid date to be rejected")
	}
	if err := s.SetSobrietyStart("2024-01-01"); err != nil {
		t.Fatalf("set start: %v", err)
	}
	if got := s.Streak(); got != 11 {
		t.Fatalf("streak = %d", got)
	}
	if !s.Document().SobrietyTracking {
		t.Fatal("expected tracking enabled")
	}
}

func TestAppendOnlyListsPreserveOrder(t *testing.T) {
	s := newService(t)

	for _, rec := range []document.TimerSessionRecord{
		{Type: "Stretch", Duration: 10},
		{Type: "Read", Duration: 45},
		{Type: "Deep Work", Duration: 90},
	} {
		if err := s.LogTimerSession(rec); err != nil {
			t.Fatalf("log: %v", err)
		}
	}

	doc := s.Document()
	if len(doc.TimerSessions) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(doc.TimerSessions))
	}
	for i, want := range []string{"Stretch", "Read", "Deep Work"} {
		if doc.TimerSessions[i].Type != want {
			t.Fatalf("storage order disturbed: %v", doc.TimerSessions)
		}
	}
}

func TestAddStrategyNoDedup(t *testing.T) {
	s := newService(t)
	base := len(s.Document().BetterStrategies)

	if err := s.AddStrategy("Make tea"); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.AddStrategy("Make tea"); err != nil {
		t.Fatalf("add twice: %v", err)
	}
	if err := s.AddStrategy("  "); err == nil {
		t.Fatal("blank strategy must be rejected")
	}

	if got := len(s.Document().BetterStrategies); got != base+2 {
		t.Fatalf("expected monotonic growth without dedup, got %d", got)
	}
}

func TestAddMusicEntryDropsEmpty(t *testing.T) {
	s := newService(t)

	if err := s.AddMusicEntry(document.MusicEntry{Text: "   "}); err != nil {
		t.Fatalf("empty entry: %v", err)
	}
	if n := len(s.Document().MusicEntries); n != 0 {
		t.Fatalf("empty entry was stored, %d entries", n)
	}

	if err := s.AddMusicEntry(document.MusicEntry{Audio: "data:audio/wav;base64,AAAA"}); err != nil {
		t.Fatalf("audio-only entry: %v", err)
	}
	if n := len(s.Document().MusicEntries); n != 1 {
		t.Fatalf("expected audio-only entry stored, %d entries", n)
	}
}

func TestAnchorsAndConnections(t *testing.T) {
	s := newService(t)

	if err := s.AddAnchor("The morning I chose to stay"); err != nil {
		t.Fatalf("add anchor: %v", err)
	}
	if err := s.AddConnection("Sam", "checks in on Fridays"); err != nil {
		t.Fatalf("add connection: %v", err)
	}

	if err := s.RemoveAnchor(5); err == nil {
		t.Fatal("expected out-of-range removal to error")
	}
	if err := s.RemoveAnchor(0); err != nil {
		t.Fatalf("remove anchor: %v", err)
	}
	if err := s.RemoveConnection(0); err != nil {
		t.Fatalf("remove connection: %v", err)
	}

	doc := s.Document()
	if len(doc.AnchorMoments) != 0 || len(doc.Connections) != 0 {
		t.Fatalf("expected empty lists, got %+v %+v", doc.AnchorMoments, doc.Connections)
	}
}

func TestCopingKitOps(t *testing.T) {
	s := newService(t)

	if err := s.AddKitContact(document.Contact{Name: "Jo", Phone: "555-0110"}); err != nil {
		t.Fatalf("add contact: %v", err)
	}
	if err := s.AddKitContact(document.Contact{Name: "  "}); err == nil {
		t.Fatal("blank contact must be rejected")
	}
	if err := s.AddKitAffirmation("Still here."); err != nil {
		t.Fatalf("add affirmation: %v", err)
	}

	kit := s.Document().CopingKit
	if len(kit.Contacts) != 1 || kit.Contacts[0].Name != "Jo" {
		t.Fatalf("contacts = %+v", kit.Contacts)
	}
}

func TestNewToleratesCorruptStore(t *testing.T) {
	p := corruptPersistence{}
	s, err := New(p)
	if err != nil {
		t.Fatalf("expected corrupt store to be tolerated, got %v", err)
	}
	if s.Document().DailyLogs == nil {
		t.Fatal("expected defaulted document")
	}
}

type corruptPersistence struct{}

func (corruptPersistence) Load() (*document.Document, error) {
	return document.New(), &store.CorruptStoreError{Err: errors.New("bad json")}
}

func (corruptPersistence) Save(*document.Document) error {
	return nil
}

func (corruptPersistence) Watch(ctx context.Context) (<-chan store.Event, error) {
	return nil, errors.New("not supported")
}
