// Package document defines the single persisted wellness document and its
// schema upgrades.
package document

import "slices"

// StorageKey is the fixed key the document is stored under.
const StorageKey = "vireo"

// Mood is a daily check-in mood value.
type Mood string

// Moods, best to worst day.
const (
	MoodGreat     Mood = "great"
	MoodGood      Mood = "good"
	MoodOkay      Mood = "okay"
	MoodLow       Mood = "low"
	MoodDifficult Mood = "difficult"
)

// Moods returns all moods in display order.
func Moods() []Mood {
	return []Mood{MoodGreat, MoodGood, MoodOkay, MoodLow, MoodDifficult}
}

// Energy is a daily check-in energy value.
type Energy string

// Energy levels.
const (
	EnergyHigh   Energy = "high"
	EnergyMedium Energy = "medium"
	EnergyLow    Energy = "low"
)

// Energies returns all energy levels in display order.
func Energies() []Energy {
	return []Energy{EnergyHigh, EnergyMedium, EnergyLow}
}

// DailyLog is one calendar day's check-in. Mood, Energy and Sleep are unset
// until the user records them.
type DailyLog struct {
	Date        string   `json:"date"`
	Mood        Mood     `json:"mood,omitempty"`
	Energy      Energy   `json:"energy,omitempty"`
	Sleep       *float64 `json:"sleep,omitempty"`
	DrankToday  bool     `json:"drankToday"`
	FeltTempted bool     `json:"feltTempted"`
	GotOutside  bool     `json:"gotOutside"`
	MovedBody   bool     `json:"movedBody"`
	Gratitude   string   `json:"gratitude,omitempty"`
	SmallWin    string   `json:"smallWin,omitempty"`
	Notes       string   `json:"notes,omitempty"`
}

// NewDailyLog returns an empty log for the given date key.
func NewDailyLog(date string) DailyLog {
	return DailyLog{Date: date}
}

// TimerSessionRecord is one completed focus session. Only full completions
// are recorded, never partial ones.
type TimerSessionRecord struct {
	Type        string    `json:"type"`
	Duration    int       `json:"duration"` // minutes
	CompletedAt Timestamp `json:"completedAt"`
}

// UrgeSurfRecord is one completed urge-surf session.
type UrgeSurfRecord struct {
	Feeling        string    `json:"feeling"`
	Intensity      int       `json:"intensity"`
	Strategy       string    `json:"strategy"`
	PostReflection string    `json:"postReflection,omitempty"`
	PostIntensity  int       `json:"postIntensity,omitempty"`
	Timestamp      Timestamp `json:"timestamp"`
}

// MusicEntry is one music-scratchpad journal entry. Audio, when present, is a
// base64 encoding of the captured voice memo.
type MusicEntry struct {
	Text      string    `json:"text,omitempty"`
	Audio     string    `json:"audio,omitempty"`
	Timestamp Timestamp `json:"timestamp"`
}

// HasAudio reports whether the entry carries a voice memo.
func (e MusicEntry) HasAudio() bool {
	return e.Audio != ""
}

// AnchorMoment is a remembered moment worth holding on to.
type AnchorMoment struct {
	Text      string    `json:"text"`
	Timestamp Timestamp `json:"timestamp"`
}

// Connection is a person the user wants to stay connected with.
type Connection struct {
	Name string `json:"name"`
	Note string `json:"note,omitempty"`
}

// Contact is a crisis-kit contact.
type Contact struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Note  string `json:"note,omitempty"`
}

// CopingKit is the crisis-support kit.
type CopingKit struct {
	Contacts     []Contact `json:"contacts"`
	Strategies   []string  `json:"strategies"`
	Affirmations []string  `json:"affirmations"`
}

// Document is the single root object persisted across sessions. All lists are
// append-only in storage order; "recent" views reverse at render time only.
type Document struct {
	Theme             string               `json:"theme,omitempty"`
	ThemeColor        string               `json:"themeColor,omitempty"`
	SobrietyTracking  bool                 `json:"sobrietyTracking"`
	SobrietyStartDate string               `json:"sobrietyStartDate,omitempty"` // YYYY-MM-DD
	DailyLogs         map[string]DailyLog  `json:"dailyLogs"`
	TimerSessions     []TimerSessionRecord `json:"timerSessions"`
	UrgeSurfLogs      []UrgeSurfRecord     `json:"urgeSurfLogs"`
	MusicEntries      []MusicEntry         `json:"musicEntries"`
	AnchorMoments     []AnchorMoment       `json:"anchorMoments"`
	Connections       []Connection         `json:"connections"`
	BetterStrategies  []string             `json:"betterStrategies"`
	CopingKit         *CopingKit           `json:"copingKit,omitempty"`
}

// New returns a fresh document with all defaults populated.
func New() *Document {
	d := &Document{}
	Migrate(d)
	return d
}

// Clone returns a deep copy so callers can stage edits without touching the
// live document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	c := *d

	if d.DailyLogs != nil {
		c.DailyLogs = make(map[string]DailyLog, len(d.DailyLogs))
		for k, v := range d.DailyLogs {
			if v.Sleep != nil {
				s := *v.Sleep
				v.Sleep = &s
			}
			c.DailyLogs[k] = v
		}
	}

	// slices.Clone keeps an empty list empty instead of collapsing it to nil,
	// so a cloned document marshals the same JSON arrays as its source.
	c.TimerSessions = slices.Clone(d.TimerSessions)
	c.UrgeSurfLogs = slices.Clone(d.UrgeSurfLogs)
	c.MusicEntries = slices.Clone(d.MusicEntries)
	c.AnchorMoments = slices.Clone(d.AnchorMoments)
	c.Connections = slices.Clone(d.Connections)
	c.BetterStrategies = slices.Clone(d.BetterStrategies)

	if d.CopingKit != nil {
		kit := CopingKit{
			Contacts:     slices.Clone(d.CopingKit.Contacts),
			Strategies:   slices.Clone(d.CopingKit.Strategies),
			Affirmations: slices.Clone(d.CopingKit.Affirmations),
		}
		c.CopingKit = &kit
	}

	return &c
}
