package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/vireo/pkg/printers"
)

func addStrategies(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "strategies",
		Short: "The better-strategy catalog used by urge surfing",
		Example: `
vireo strategies
vireo strategies add "Walk around the block once"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			list := s.Document().BetterStrategies

			pp := printers.PrettyPrint{}
			pp.TitleWithCount("Strategies", len(list))
			pp.List(list)
			return nil
		},
	}

	addStrategyAdd(cmd)

	topLevel.AddCommand(cmd)
}

func addStrategyAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a strategy to the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			return oo.HandleError(s.AddStrategy(strings.Join(args, " ")))
		},
	}

	topLevel.AddCommand(cmd)
}
