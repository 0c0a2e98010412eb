package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/vireo/pkg/commands/options"
	"tableflip.dev/vireo/pkg/document"
	"tableflip.dev/vireo/pkg/printers"
)

func addCheckin(topLevel *cobra.Command) {
	co := &options.CheckinOptions{}

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Record today's check-in",
		Long: "Record today's check-in. Each flag fills one field of today's entry;\n" +
			"running checkin again the same day updates the entry in place.",
		Example: `
vireo checkin --mood good --energy medium --sleep 7.5
vireo checkin --outside --moved --win "called my sister"
`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return co.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			err = s.UpdateToday(func(l *document.DailyLog) {
				co.Apply(cmd, l)
			})
			if err != nil {
				return oo.HandleError(err)
			}

			pp := printers.PrettyPrint{}
			pp.Title("Today")
			pp.Timeline(lastDays(s, 1, s.Now()))
			return nil
		},
	}

	options.AddCheckinArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
