package document

// DefaultStrategies seeds the better-strategies catalog on first run.
func DefaultStrategies() []string {
	return []string{
		"Call someone who understands",
		"Take a walk, even just 5 minutes",
		"Write down what I'm feeling",
		"Listen to music that moves me",
		"Remember why I started this journey",
	}
}

// DefaultAffirmations seeds the coping kit on first run.
func DefaultAffirmations() []string {
	return []string{
		"This feeling will pass.",
		"I have gotten through worse than this.",
		"One breath at a time.",
	}
}

// Default display preferences.
const (
	DefaultTheme      = "dark"
	DefaultThemeColor = "purple"
)

// Transform is one additive schema upgrade. Apply fills in fields a document
// written by an older version does not have and reports whether it changed
// anything. Transforms never remove or rename existing fields, so applying
// them to a current document is a no-op.
type Transform struct {
	Name  string
	Apply func(*Document) bool
}

// Transforms returns the ordered upgrade list applied on every load.
func Transforms() []Transform {
	return []Transform{
		{Name: "daily-logs", Apply: func(d *Document) bool {
			if d.DailyLogs != nil {
				return false
			}
			d.DailyLogs = map[string]DailyLog{}
			return true
		}},
		{Name: "session-logs", Apply: func(d *Document) bool {
			changed := false
			if d.TimerSessions == nil {
				d.TimerSessions = []TimerSessionRecord{}
				changed = true
			}
			if d.UrgeSurfLogs == nil {
				d.UrgeSurfLogs = []UrgeSurfRecord{}
				changed = true
			}
			if d.MusicEntries == nil {
				d.MusicEntries = []MusicEntry{}
				changed = true
			}
			return changed
		}},
		{Name: "seed-strategies", Apply: func(d *Document) bool {
			if d.BetterStrategies != nil {
				return false
			}
			d.BetterStrategies = DefaultStrategies()
			return true
		}},
		{Name: "anchors-and-connections", Apply: func(d *Document) bool {
			changed := false
			if d.AnchorMoments == nil {
				d.AnchorMoments = []AnchorMoment{}
				changed = true
			}
			if d.Connections == nil {
				d.Connections = []Connection{}
				changed = true
			}
			return changed
		}},
		{Name: "coping-kit", Apply: func(d *Document) bool {
			if d.CopingKit != nil {
				if d.CopingKit.Contacts == nil {
					d.CopingKit.Contacts = []Contact{}
					return true
				}
				return false
			}
			d.CopingKit = &CopingKit{
				Contacts:     []Contact{},
				Strategies:   DefaultStrategies(),
				Affirmations: DefaultAffirmations(),
			}
			return true
		}},
		{Name: "display-prefs", Apply: func(d *Document) bool {
			changed := false
			if d.Theme == "" {
				d.Theme = DefaultTheme
				changed = true
			}
			if d.ThemeColor == "" {
				d.ThemeColor = DefaultThemeColor
				changed = true
			}
			return changed
		}},
	}
}

// Migrate applies every transform in order and reports whether the document
// was altered. Loading an already-current document leaves it untouched.
func Migrate(d *Document) bool {
	changed := false
	for _, t := range Transforms() {
		if t.Apply(d) {
			changed = true
		}
	}
	return changed
}
