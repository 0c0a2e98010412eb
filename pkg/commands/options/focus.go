package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/vireo/pkg/timeutil"
)

// FocusOptions
type FocusOptions struct {
	For   string
	NoLog bool
}

func AddFocusArgs(cmd *cobra.Command, o *FocusOptions) {
	cmd.Flags().StringVar(&o.For, "for", "",
		`Custom session length, example: --for=25m.`)
	cmd.Flags().BoolVar(&o.NoLog, "no-log", false,
		"Do not record the session when it completes.")
}

func (o *FocusOptions) GetFor() (time.Duration, bool, error) {
	if o.For == "" {
		return 0, false, nil
	}
	d, _, err := timeutil.ParseWindow(o.For)
	if err != nil {
		return 0, false, err
	}
	return d, true, nil
}
