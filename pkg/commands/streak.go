package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/vireo/pkg/printers"
)

func addStreak(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "streak",
		Short: "Show days since your start date",
		Example: `
vireo streak
vireo streak start 2024-01-01
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			doc := s.Document()
			if !doc.SobrietyTracking || doc.SobrietyStartDate == "" {
				return errors.New("no start date set, try: vireo streak start <yyyy-mm-dd>")
			}

			pp := printers.PrettyPrint{}
			pp.Streak(s.Streak())
			return nil
		},
	}

	addStreakStart(cmd)

	topLevel.AddCommand(cmd)
}

func addStreakStart(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "start <yyyy-mm-dd>",
		Short: "Set the streak start date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			if err := s.SetSobrietyStart(args[0]); err != nil {
				return oo.HandleError(err)
			}

			pp := printers.PrettyPrint{}
			pp.Streak(s.Streak())
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
