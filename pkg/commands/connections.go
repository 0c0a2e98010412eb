package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/vireo/pkg/printers"
)

func addConnections(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "connections",
		Short: "People who keep you steady",
		Example: `
vireo connections
vireo connections add "Sam" --note "checks in on Fridays"
vireo connections rm 1
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			doc := s.Document()

			texts := make([]string, 0, len(doc.Connections))
			for _, c := range doc.Connections {
				if c.Note != "" {
					texts = append(texts, fmt.Sprintf("%s (%s)", c.Name, c.Note))
				} else {
					texts = append(texts, c.Name)
				}
			}

			pp := printers.PrettyPrint{}
			pp.TitleWithCount("Connections", len(texts))
			pp.List(texts)
			return nil
		},
	}

	addConnectionAdd(cmd)
	addConnectionRm(cmd)

	topLevel.AddCommand(cmd)
}

func addConnectionAdd(topLevel *cobra.Command) {
	note := ""

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a connection",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			return oo.HandleError(s.AddConnection(strings.Join(args, " "), note))
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "How they show up for you.")

	topLevel.AddCommand(cmd)
}

func addConnectionRm(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rm <number>",
		Short: "Remove a connection",
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
			return oo.HandleError(s.RemoveConnection(n - 1))
		},
	}

	topLevel.AddCommand(cmd)
}
