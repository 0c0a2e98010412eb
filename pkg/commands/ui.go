package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/vireo/pkg/tui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
vireo ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			return tui.Run(s)
		},
	}

	topLevel.AddCommand(cmd)
}
