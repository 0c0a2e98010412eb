package commands

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/vireo/pkg/printers"
)

func addAnchors(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "anchors",
		Short: "Moments worth holding onto",
		Example: `
vireo anchors
vireo anchors add "The morning I chose to stay"
vireo anchors rm 1
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			doc := s.Document()

			texts := make([]string, 0, len(doc.AnchorMoments))
			for _, a := range doc.AnchorMoments {
				texts = append(texts, a.Text)
			}

			pp := printers.PrettyPrint{}
			pp.TitleWithCount("Anchor moments", len(texts))
			pp.List(texts)
			return nil
		},
	}

	addAnchorAdd(cmd)
	addAnchorRm(cmd)

	topLevel.AddCommand(cmd)
}

func addAnchorAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add an anchor moment",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			return oo.HandleError(s.AddAnchor(strings.Join(args, " ")))
		},
	}

	topLevel.AddCommand(cmd)
}

func addAnchorRm(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rm <number>",
		Short: "Remove an anchor moment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			s, err := newService()
			if err != nil {
				return err
			}
			// Listed 1-based, stored 0-based.
			return oo.HandleError(s.RemoveAnchor(n - 1))
		},
	}

	topLevel.AddCommand(cmd)
}
