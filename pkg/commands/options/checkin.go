package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/vireo/pkg/document"
)

// CheckinOptions captures the daily check-in flags. Unset flags leave the
// stored field alone so a check-in can be filled in over the day.
type CheckinOptions struct {
	Mood      string
	Energy    string
	Sleep     float64
	Drank     bool
	Tempted   bool
	Outside   bool
	Moved     bool
	Gratitude string
	SmallWin  string
	Notes     string
}

func AddCheckinArgs(cmd *cobra.Command, o *CheckinOptions) {
	cmd.Flags().StringVarP(&o.Mood, "mood", "m", "",
		"How today felt. One of: "+joinMoods()+".")
	cmd.Flags().StringVarP(&o.Energy, "energy", "e", "",
		"Energy level. One of: "+joinEnergies()+".")
	cmd.Flags().Float64VarP(&o.Sleep, "sleep", "s", 0,
		"Hours of sleep last night.")
	cmd.Flags().BoolVar(&o.Drank, "drank", false,
		"Mark that you drank today.")
	cmd.Flags().BoolVar(&o.Tempted, "tempted", false,
		"Mark that you felt tempted today.")
	cmd.Flags().BoolVar(&o.Outside, "outside", false,
		"Mark that you got outside today.")
	cmd.Flags().BoolVar(&o.Moved, "moved", false,
		"Mark that you moved your body today.")
	cmd.Flags().StringVarP(&o.Gratitude, "gratitude", "g", "",
		"One thing you are grateful for.")
	cmd.Flags().StringVarP(&o.SmallWin, "win", "w", "",
		"A small win from today.")
	cmd.Flags().StringVarP(&o.Notes, "notes", "n", "",
		"Anything else about today.")
}

// Validate rejects mood and energy values outside the known sets.
func (o *CheckinOptions) Validate() error {
	if o.Mood != "" {
		found := false
		for _, m := range document.Moods() {
			if string(m) == o.Mood {
				found = true
			}
		}
		if !found {
			return fmt.Errorf("unknown mood %q, expected one of: %s", o.Mood, joinMoods())
		}
	}
	if o.Energy != "" {
		found := false
		for _, e := range document.Energies() {
			if string(e) == o.Energy {
				found = true
			}
		}
		if !found {
			return fmt.Errorf("unknown energy %q, expected one of: %s", o.Energy, joinEnergies())
		}
	}
	return nil
}

// Apply copies the set flags onto the log. Boolean flags only flip fields on;
// a check-in never un-marks a habit from the command line.
func (o *CheckinOptions) Apply(cmd *cobra.Command, log *document.DailyLog) {
	if o.Mood != "" {
		log.Mood = document.Mood(o.Mood)
	}
	if o.Energy != "" {
		log.Energy = document.Energy(o.Energy)
	}
	if cmd.Flags().Changed("sleep") {
		sleep := o.Sleep
		log.Sleep = &sleep
	}
	if o.Drank {
		log.DrankToday = true
	}
	if o.Tempted {
		log.FeltTempted = true
	}
	if o.Outside {
		log.GotOutside = true
	}
	if o.Moved {
		log.MovedBody = true
	}
	if o.Gratitude != "" {
		log.Gratitude = o.Gratitude
	}
	if o.SmallWin != "" {
		log.SmallWin = o.SmallWin
	}
	if o.Notes != "" {
		log.Notes = o.Notes
	}
}

func joinMoods() string {
	parts := make([]string, 0, len(document.Moods()))
	for _, m := range document.Moods() {
		parts = append(parts, string(m))
	}
	return strings.Join(parts, ", ")
}

func joinEnergies() string {
	parts := make([]string, 0, len(document.Energies()))
	for _, e := range document.Energies() {
		parts = append(parts, string(e))
	}
	return strings.Join(parts, ", ")
}
