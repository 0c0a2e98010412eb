package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/vireo/pkg/app"
	"tableflip.dev/vireo/pkg/commands/options"
	"tableflip.dev/vireo/pkg/daily"
	"tableflip.dev/vireo/pkg/printers"
	"tableflip.dev/vireo/pkg/timeutil"
)

func addDays(topLevel *cobra.Command) {
	wo := &options.WindowOptions{Window: "7d"}
	oo := &options.OnOptions{}
	legend := false

	cmd := &cobra.Command{
		Use:   "days",
		Short: "Show the recent check-in timeline",
		Example: `
vireo days
vireo days --window 30d
vireo days --on 2024-01-01
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := wo.GetWindow()
			if err != nil {
				return err
			}
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			s, err := newService()
			if err != nil {
				return err
			}

			end := s.Now()
			if on != nil {
				end = *on
			}

			pp := printers.PrettyPrint{ShowDates: on != nil || timeutil.Days(window) > 7}
			pp.Title("Days")
			pp.Timeline(lastDays(s, timeutil.Days(window), end))
			if legend {
				pp.Legend()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&wo.Window, "window", "7d",
		`Look-back window, example: --window=30d.`)
	options.AddOnArgs(cmd, oo)
	cmd.Flags().BoolVar(&legend, "legend", false,
		"Print the mood and energy symbol key.")

	topLevel.AddCommand(cmd)
}

func lastDays(s *app.Service, n int, end time.Time) []daily.Day {
	return daily.LastNDays(s.Document(), n, end)
}
