package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/vireo/pkg/app"
	"tableflip.dev/vireo/pkg/commands/options"
	"tableflip.dev/vireo/pkg/store"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "vireo",
		Short: base.Wrap80("A quiet daily loop: check in, focus, ride the wave out."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVar(&oo.JSON, "json", false,
		"Output errors as JSON.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addCheckin(topLevel)
	addDays(topLevel)
	addStreak(topLevel)
	addFocus(topLevel)
	addUrge(topLevel)
	addMusic(topLevel)
	addInsights(topLevel)
	addKit(topLevel)
	addAnchors(topLevel)
	addConnections(topLevel)
	addStrategies(topLevel)
	addTheme(topLevel)
	addVersion(topLevel)
}

func newService() (*app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	p, err := store.Open(cfg)
	if err != nil {
		return nil, err
	}
	return app.New(p)
}
