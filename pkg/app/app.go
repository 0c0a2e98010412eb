// Package app provides the high-level operations CLIs and UIs share. Service
// is the single owner of the live document: reads go through Document, writes
// go through Mutate, and every mutation is persisted before it returns.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"tableflip.dev/vireo/pkg/daily"
	"tableflip.dev/vireo/pkg/document"
	"tableflip.dev/vireo/pkg/store"
)

// Service wraps persistence and the in-memory document.
type Service struct {
	persistence store.Persistence

	mu   sync.Mutex
	doc  *document.Document
	subs []func()

	now func() time.Time
}

// New loads the document and returns a ready service. A corrupt store is
// reported on stderr and replaced with a fresh document; there is no backup
// to recover, so losing the data beats crashing on it.
func New(p store.Persistence) (*Service, error) {
	if p == nil {
		return nil, errors.New("app: no persistence configured")
	}
	doc, err := p.Load()
	if err != nil {
		var corrupt *store.CorruptStoreError
		if !errors.As(err, &corrupt) {
			return nil, err
		}
		fmt.Fprintf(os.Stderr, "app: %v; starting over with a fresh journal\n", err)
	}
	return &Service{
		persistence: p,
		doc:         doc,
		now:         time.Now,
	}, nil
}

// SetNow injects a clock, for tests.
func (s *Service) SetNow(now func() time.Time) {
	s.now = now
}

// Now returns the service clock's current time.
func (s *Service) Now() time.Time {
	return s.now()
}

// Document returns a deep copy of the current document. Callers can read it
// freely; edits only take effect through Mutate.
func (s *Service) Document() *document.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Mutate applies fn to a copy of the document, persists the result, and only
// then swaps it in. A failed save leaves the in-memory document untouched,
// so no consumer ever observes an un-persisted mutation.
func (s *Service) Mutate(fn func(*document.Document)) error {
	s.mu.Lock()
	work := s.doc.Clone()
	fn(work)
	if err := s.persistence.Save(work); err != nil {
		s.mu.Unlock()
		return err
	}
	s.doc = work
	subs := append([]func(){}, s.subs...)
	s.mu.Unlock()

	for _, sub := range subs {
		sub()
	}
	return nil
}

// Subscribe registers a listener invoked after every successful mutation.
func (s *Service) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Watch subscribes to on-disk change events from other processes.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	return s.persistence.Watch(ctx)
}

// Reload replaces the in-memory document with the stored one. Used when a
// watch event reports an external write.
func (s *Service) Reload() error {
	doc, err := s.persistence.Load()
	if err != nil {
		var corrupt *store.CorruptStoreError
		if !errors.As(err, &corrupt) {
			return err
		}
	}
	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
	return nil
}

// TodayLog returns today's check-in, stored or fresh.
func (s *Service) TodayLog() document.DailyLog {
	return daily.GetOrCreate(s.Document(), s.now())
}

// UpdateToday applies fn to today's log and persists it under today's key.
// Writing twice on one day overwrites per-field; there is never more than
// one entry per calendar day.
func (s *Service) UpdateToday(fn func(*document.DailyLog)) error {
	now := s.now()
	return s.Mutate(func(d *document.Document) {
		log := daily.GetOrCreate(d, now)
		fn(&log)
		log.Date = daily.Key(now)
		d.DailyLogs[log.Date] = log
	})
}

// SetSobrietyStart records the streak start date and turns tracking on.
func (s *Service) SetSobrietyStart(date string) error {
	if _, err := time.Parse(daily.KeyLayout, date); err != nil {
		return fmt.Errorf("app: start date must be %s: %w", daily.KeyLayout, err)
	}
	return s.Mutate(func(d *document.Document) {
		d.SobrietyTracking = true
		d.SobrietyStartDate = date
	})
}

// Streak returns whole days since the sobriety start date, 0 when unset.
func (s *Service) Streak() int {
	return daily.Streak(s.Document().SobrietyStartDate, s.now())
}

// LogTimerSession appends a completed focus session and persists.
func (s *Service) LogTimerSession(rec document.TimerSessionRecord) error {
	return s.Mutate(func(d *document.Document) {
		d.TimerSessions = append(d.TimerSessions, rec)
	})
}

// LogUrgeSurf appends one completed urge-surf session and persists. The
// wizard's draft is committed here exactly once, never incrementally.
func (s *Service) LogUrgeSurf(rec document.UrgeSurfRecord) error {
	return s.Mutate(func(d *document.Document) {
		d.UrgeSurfLogs = append(d.UrgeSurfLogs, rec)
	})
}

// AddStrategy appends a user-supplied strategy to the catalog. The catalog
// grows monotonically; no deduplication.
func (s *Service) AddStrategy(strategy string) error {
	strategy = strings.TrimSpace(strategy)
	if strategy == "" {
		return errors.New("app: empty strategy")
	}
	return s.Mutate(func(d *document.Document) {
		d.BetterStrategies = append(d.BetterStrategies, strategy)
	})
}

// AddMusicEntry appends a scratchpad entry. Entries with neither text nor
// audio are dropped, matching the end-session behavior.
func (s *Service) AddMusicEntry(entry document.MusicEntry) error {
	if strings.TrimSpace(entry.Text) == "" && entry.Audio == "" {
		return nil
	}
	return s.Mutate(func(d *document.Document) {
		d.MusicEntries = append(d.MusicEntries, entry)
	})
}

// AddAnchor appends an anchor moment.
func (s *Service) AddAnchor(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return errors.New("app: empty anchor moment")
	}
	rec := document.AnchorMoment{Text: text, Timestamp: document.Timestamp{Time: s.now()}}
	return s.Mutate(func(d *document.Document) {
		d.AnchorMoments = append(d.AnchorMoments, rec)
	})
}

// RemoveAnchor deletes the anchor at index.
func (s *Service) RemoveAnchor(idx int) error {
	return s.removeAt(idx, func(d *document.Document) int {
		return len(d.AnchorMoments)
	}, func(d *document.Document, i int) {
		d.AnchorMoments = append(d.AnchorMoments[:i], d.AnchorMoments[i+1:]...)
	})
}

// AddConnection appends a connection.
func (s *Service) AddConnection(name, note string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("app: empty connection name")
	}
	return s.Mutate(func(d *document.Document) {
		d.Connections = append(d.Connections, document.Connection{Name: name, Note: note})
	})
}

// RemoveConnection deletes the connection at index.
func (s *Service) RemoveConnection(idx int) error {
	return s.removeAt(idx, func(d *document.Document) int {
		return len(d.Connections)
	}, func(d *document.Document, i int) {
		d.Connections = append(d.Connections[:i], d.Connections[i+1:]...)
	})
}

func (s *Service) removeAt(idx int, length func(*document.Document) int, remove func(*document.Document, int)) error {
	var outOfRange bool
	err := s.Mutate(func(d *document.Document) {
		if idx < 0 || idx >= length(d) {
			outOfRange = true
			return
		}
		remove(d, idx)
	})
	if err != nil {
		return err
	}
	if outOfRange {
		return fmt.Errorf("app: index %d out of range", idx)
	}
	return nil
}

// AddKitContact appends a crisis-kit contact.
func (s *Service) AddKitContact(c document.Contact) error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("app: empty contact name")
	}
	return s.Mutate(func(d *document.Document) {
		d.CopingKit.Contacts = append(d.CopingKit.Contacts, c)
	})
}

// AddKitStrategy appends a crisis-kit strategy.
func (s *Service) AddKitStrategy(strategy string) error {
	strategy = strings.TrimSpace(strategy)
	if strategy == "" {
		return errors.New("app: empty strategy")
	}
	return s.Mutate(func(d *document.Document) {
		d.CopingKit.Strategies = append(d.CopingKit.Strategies, strategy)
	})
}

// AddKitAffirmation appends a crisis-kit affirmation.
func (s *Service) AddKitAffirmation(text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return errors.New("app: empty affirmation")
	}
	return s.Mutate(func(d *document.Document) {
		d.CopingKit.Affirmations = append(d.CopingKit.Affirmations, text)
	})
}
