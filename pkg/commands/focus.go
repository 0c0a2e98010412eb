package commands

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/vireo/pkg/commands/options"
	"tableflip.dev/vireo/pkg/document"
	"tableflip.dev/vireo/pkg/printers"
	"tableflip.dev/vireo/pkg/timer"
	"tableflip.dev/vireo/pkg/timeutil"
)

func addFocus(topLevel *cobra.Command) {
	long := strings.Builder{}
	long.WriteString("Run a focus session.\n\nPresets:\n")
	validArgs := make([]string, 0, 4)
	for _, p := range timer.Presets() {
		long.WriteString(fmt.Sprintf("%s %s: %d minutes\n", p.Icon, p.Name, p.Duration))
		validArgs = append(validArgs, strings.ToLower(strings.ReplaceAll(p.Name, " ", "-")))
	}

	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Timed focus sessions",
		Long:  long.String(),
		Example: `
vireo focus start stretch
vireo focus start --for 25m
vireo focus log
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addFocusStart(cmd, validArgs)
	addFocusLog(cmd)

	topLevel.AddCommand(cmd)
}

func addFocusStart(topLevel *cobra.Command, validArgs []string) {
	fo := &options.FocusOptions{}

	cmd := &cobra.Command{
		Use:       "start [preset]",
		Short:     "Start a countdown and log it on completion",
		ValidArgs: validArgs,
		Args:      cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			preset, err := resolvePreset(fo, args)
			if err != nil {
				return err
			}

			s, err := newService()
			if err != nil {
				return err
			}

			t := timer.New(func(rec document.TimerSessionRecord) {
				if fo.NoLog {
					return
				}
				if err := s.LogTimerSession(rec); err != nil {
					fmt.Fprintf(os.Stderr, "could not log session: %v\n", err)
				}
			})
			t.Start(preset)

			// Ctrl-C abandons the session without logging anything.
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			f := color.New(color.Faint)
			_, _ = f.Printf("%s %s for %d minutes. Ctrl-C to abandon.\n", preset.Icon, preset.Name, preset.Duration)

			err = timer.Run(ctx, t, func(remaining int, _ timer.State) {
				fmt.Printf("\r  %s  ", timeutil.FormatClock(remaining))
			})
			fmt.Println("")
			if errors.Is(err, context.Canceled) {
				_, _ = f.Println("Session abandoned. Nothing logged.")
				return nil
			}
			if err != nil {
				return err
			}

			b := color.New(color.Bold, color.FgHiGreen)
			_, _ = b.Println("Session complete. That counts.")
			return nil
		},
	}

	options.AddFocusArgs(cmd, fo)

	topLevel.AddCommand(cmd)
}

func resolvePreset(fo *options.FocusOptions, args []string) (timer.Preset, error) {
	d, ok, err := fo.GetFor()
	if err != nil {
		return timer.Preset{}, err
	}
	if ok {
		minutes := int(math.Ceil(d.Minutes()))
		if minutes < 1 {
			return timer.Preset{}, errors.New("session must run at least one minute")
		}
		return timer.Preset{Name: "Custom", Duration: minutes, Icon: "⏳"}, nil
	}
	if len(args) == 0 {
		return timer.Preset{}, errors.New("name a preset or pass --for, try: vireo focus start stretch")
	}
	name := strings.ReplaceAll(args[0], "-", " ")
	p, ok := timer.PresetNamed(name)
	if !ok {
		return timer.Preset{}, fmt.Errorf("unknown preset %q", args[0])
	}
	return p, nil
}

func addFocusLog(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show completed sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			sessions := s.Document().TimerSessions

			pp := printers.PrettyPrint{}
			pp.TitleWithCount("Sessions", len(sessions))
			pp.Sessions(sessions)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
