package printers

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"

	"tableflip.dev/vireo/pkg/daily"
	"tableflip.dev/vireo/pkg/document"
	"tableflip.dev/vireo/pkg/glyph"
	"tableflip.dev/vireo/pkg/insights"
)

type PrettyPrint struct {
	ShowDates bool
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" none\n\n")
}

// Timeline prints one line per day: label, mood and energy symbols, and a
// marker for days that logged a temptation. Days render oldest first.
func (pp *PrettyPrint) Timeline(days []daily.Day) {
	if len(days) == 0 {
		pp.none()
		return
	}

	p := color.New()
	f := color.New(color.Faint)
	w := color.New(color.FgHiYellow)

	for _, d := range days {
		label := d.Label
		if pp.ShowDates {
			label = d.Key
		}
		if d.Log == nil || d.Log.Mood == "" {
			_, _ = f.Printf("%10s  ·\n", label)
			continue
		}
		_, _ = p.Printf("%10s  %s %s", label, glyph.Mood(d.Log.Mood), glyph.Energy(d.Log.Energy))
		if d.Log.FeltTempted {
			_, _ = w.Print("  ~")
		}
		if d.Log.SmallWin != "" {
			_, _ = f.Printf("  %s", d.Log.SmallWin)
		}
		_, _ = p.Println("")
	}
	_, _ = p.Println("")
}

// Streak prints the day count banner. Decoration drops away when stdout is
// not a terminal so the number stays scriptable.
func (pp *PrettyPrint) Streak(days int) {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		fmt.Println(days)
		return
	}

	b := color.New(color.Bold, color.FgHiGreen)
	f := color.New(color.Faint)

	unit := "days"
	if days == 1 {
		unit = "day"
	}
	_, _ = b.Printf("  %d %s\n", days, unit)
	_, _ = f.Println("  one day at a time")
}

// Sessions prints the focus session history as a table, newest last.
func (pp *PrettyPrint) Sessions(sessions []document.TimerSessionRecord) {
	if len(sessions) == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	table.AddRow("WHEN", "TYPE", "MINUTES")
	for _, s := range sessions {
		table.AddRow(s.CompletedAt.Local().Format("Jan _2 15:04"), s.Type, s.Duration)
	}
	fmt.Fprintln(color.Output, table)
	fmt.Println("")
}

// UrgeLogs prints the urge surf history with before and after intensity.
func (pp *PrettyPrint) UrgeLogs(logs []document.UrgeSurfRecord) {
	if len(logs) == 0 {
		pp.none()
		return
	}

	table := uitable.New()
	table.MaxColWidth = 40
	table.Wrap = true
	table.AddRow("WHEN", "FEELING", "BEFORE", "AFTER", "STRATEGY")
	for _, l := range logs {
		table.AddRow(l.Timestamp.Local().Format("Jan _2 15:04"), l.Feeling, l.Intensity, l.PostIntensity, l.Strategy)
	}
	fmt.Fprintln(color.Output, table)
	fmt.Println("")
}

// Insights prints the aggregated window summary.
func (pp *PrettyPrint) Insights(sum insights.Summary) {
	if !sum.HasData() {
		pp.none()
		return
	}

	f := color.New(color.Faint)
	p := color.New()

	if sum.AvgSleep > 0 {
		_, _ = p.Printf("  sleep      %.1f hrs avg\n", sum.AvgSleep)
	} else {
		_, _ = f.Println("  sleep      no data")
	}
	if sum.MostCommonMood != "" {
		_, _ = p.Printf("  mood       %s %s most days\n", glyph.Mood(sum.MostCommonMood), sum.MostCommonMood)
	}
	_, _ = p.Printf("  outside    %s\n", sum.Ratio(sum.OutsideDays))
	_, _ = p.Printf("  moved      %s\n", sum.Ratio(sum.ExerciseDays))
	_, _ = p.Printf("  gratitude  %s\n", sum.Ratio(sum.GratitudeDays))
	_, _ = p.Println("")
}

// Kit prints the coping kit: contacts, strategies, then affirmations.
func (pp *PrettyPrint) Kit(kit *document.CopingKit) {
	if kit == nil {
		pp.none()
		return
	}

	pp.Title("Contacts")
	if len(kit.Contacts) == 0 {
		pp.none()
	} else {
		table := uitable.New()
		for _, c := range kit.Contacts {
			table.AddRow(c.Name, c.Phone)
		}
		fmt.Fprintln(color.Output, table)
		fmt.Println("")
	}

	pp.Title("Strategies")
	pp.List(kit.Strategies)

	pp.Title("Affirmations")
	pp.List(kit.Affirmations)
}

// List prints numbered entries, storage order.
func (pp *PrettyPrint) List(items []string) {
	if len(items) == 0 {
		pp.none()
		return
	}

	p := color.New()
	f := color.New(color.Faint)
	for i, item := range items {
		_, _ = f.Printf("%3d ", i+1)
		_, _ = p.Println(item)
	}
	_, _ = p.Println("")
}

// Journal prints music journal entries with their timestamps and an audio
// marker where a recording is attached.
func (pp *PrettyPrint) Journal(entries []document.MusicEntry) {
	if len(entries) == 0 {
		pp.none()
		return
	}

	p := color.New()
	f := color.New(color.Faint, color.Italic)
	for _, e := range entries {
		_, _ = f.Println(e.Timestamp.Local().Format("Jan _2 2006 15:04"))
		if e.Text != "" {
			_, _ = p.Println(indent(e.Text, 2))
		}
		if e.HasAudio() {
			_, _ = f.Println("  [audio attached]")
		}
		_, _ = p.Println("")
	}
}

// Legend prints the mood and energy symbol key.
func (pp *PrettyPrint) Legend() {
	f := color.New(color.Faint)
	for _, g := range glyph.MoodGlyphs() {
		_, _ = f.Printf("  %s %s\n", g.Symbol, g.Meaning)
	}
	for _, g := range glyph.EnergyGlyphs() {
		_, _ = f.Printf("  %s %s\n", g.Symbol, g.Meaning)
	}
	_, _ = f.Println("")
}

func indent(text string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}
