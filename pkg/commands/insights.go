package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/vireo/pkg/commands/options"
	"tableflip.dev/vireo/pkg/insights"
	"tableflip.dev/vireo/pkg/printers"
	"tableflip.dev/vireo/pkg/timeutil"
)

func addInsights(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}

	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Summarize recent check-ins",
		Example: `
vireo insights
vireo insights --window 7d
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := wo.GetWindow()
			if err != nil {
				return err
			}
			s, err := newService()
			if err != nil {
				return err
			}

			sum := insights.Aggregate(lastDays(s, timeutil.Days(window), s.Now()))

			pp := printers.PrettyPrint{}
			pp.Title("Insights")
			pp.Insights(sum)
			return nil
		},
	}

	options.AddWindowArgs(cmd, wo)

	topLevel.AddCommand(cmd)
}
