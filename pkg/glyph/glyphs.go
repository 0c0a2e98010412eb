package glyph

import (
	"tableflip.dev/vireo/pkg/document"
)

// Glyph pairs a stored value with its display symbol.
type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

var moodSymbols = map[document.Mood]Glyph{
	document.MoodGreat:     {Key: "great", Symbol: "✨", Meaning: "a great day"},
	document.MoodGood:      {Key: "good", Symbol: "☺", Meaning: "a good day"},
	document.MoodOkay:      {Key: "okay", Symbol: "–", Meaning: "an okay day"},
	document.MoodLow:       {Key: "low", Symbol: "↓", Meaning: "a low day"},
	document.MoodDifficult: {Key: "difficult", Symbol: "☂", Meaning: "a difficult day"},
}

var energySymbols = map[document.Energy]Glyph{
	document.EnergyHigh:   {Key: "high", Symbol: "⚡", Meaning: "high energy"},
	document.EnergyMedium: {Key: "medium", Symbol: "◐", Meaning: "medium energy"},
	document.EnergyLow:    {Key: "low", Symbol: "○", Meaning: "low energy"},
}

// Mood returns the symbol for a mood, or a faint dot when unset.
func Mood(m document.Mood) string {
	if g, ok := moodSymbols[m]; ok {
		return g.Symbol
	}
	return "·"
}

// Energy returns the symbol for an energy level, or a faint dot when unset.
func Energy(e document.Energy) string {
	if g, ok := energySymbols[e]; ok {
		return g.Symbol
	}
	return "·"
}

// MoodGlyphs returns the mood legend in display order.
func MoodGlyphs() []Glyph {
	g := make([]Glyph, 0, len(moodSymbols))
	for _, m := range document.Moods() {
		g = append(g, moodSymbols[m])
	}
	return g
}

// EnergyGlyphs returns the energy legend in display order.
func EnergyGlyphs() []Glyph {
	g := make([]Glyph, 0, len(energySymbols))
	for _, e := range document.Energies() {
		g = append(g, energySymbols[e])
	}
	return g
}
