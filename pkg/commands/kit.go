package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/vireo/pkg/document"
	"tableflip.dev/vireo/pkg/printers"
)

func addKit(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "kit",
		Short: "Your crisis support kit",
		Example: `
vireo kit
vireo kit contact "Jo" --phone 555-0110
vireo kit strategy "Cold water on my face"
vireo kit affirm "This feeling will pass"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}

			pp := printers.PrettyPrint{}
			pp.Kit(s.Document().CopingKit)
			return nil
		},
	}

	addKitContact(cmd)
	addKitStrategy(cmd)
	addKitAffirm(cmd)

	topLevel.AddCommand(cmd)
}

func addKitContact(topLevel *cobra.Command) {
	phone := ""

	cmd := &cobra.Command{
		Use:   "contact <name>",
		Short: "Add a person to reach out to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			c := document.Contact{Name: strings.Join(args, " "), Phone: phone}
			return oo.HandleError(s.AddKitContact(c))
		},
	}

	cmd.Flags().StringVar(&phone, "phone", "", "Phone number for the contact.")

	topLevel.AddCommand(cmd)
}

func addKitStrategy(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "strategy <text>",
		Short: "Add a kit strategy",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			return oo.HandleError(s.AddKitStrategy(strings.Join(args, " ")))
		},
	}

	topLevel.AddCommand(cmd)
}

func addKitAffirm(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "affirm <text>",
		Short: "Add an affirmation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			return oo.HandleError(s.AddKitAffirmation(strings.Join(args, " ")))
		},
	}

	topLevel.AddCommand(cmd)
}
