package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/vireo/pkg/document"
	"tableflip.dev/vireo/pkg/tui/theme"
)

func addTheme(topLevel *cobra.Command) {
	mode := ""

	cmd := &cobra.Command{
		Use:       "theme [color]",
		Short:     "Set the accent color and display mode",
		ValidArgs: theme.Accents(),
		Args:      cobra.MaximumNArgs(1),
		Example: `
vireo theme green
vireo theme --mode light
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}

			accent := ""
			if len(args) == 1 {
				accent = strings.ToLower(args[0])
				found := false
				for _, a := range theme.Accents() {
					if a == accent {
						found = true
					}
				}
				if !found {
					return fmt.Errorf("unknown accent %q, expected one of: %s", args[0], strings.Join(theme.Accents(), ", "))
				}
			}
			if mode != "" && mode != "dark" && mode != "light" {
				return fmt.Errorf("unknown mode %q, expected dark or light", mode)
			}
			if accent == "" && mode == "" {
				doc := s.Document()
				fmt.Printf("%s, %s accent\n", doc.Theme, doc.ThemeColor)
				return nil
			}

			return oo.HandleError(s.Mutate(func(d *document.Document) {
				if accent != "" {
					d.ThemeColor = accent
				}
				if mode != "" {
					d.Theme = mode
				}
			}))
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Display mode, dark or light.")

	topLevel.AddCommand(cmd)
}
