package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/vireo/pkg/timeutil"
)

// WindowOptions
type WindowOptions struct {
	Window string
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVar(&o.Window, "window", timeutil.DefaultWindow,
		`Look-back window, example: --window=7d.`)
}

func (o *WindowOptions) GetWindow() (time.Duration, error) {
	d, _, err := timeutil.ParseWindow(o.Window)
	return d, err
}
