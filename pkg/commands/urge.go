package commands

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/vireo/pkg/document"
	"tableflip.dev/vireo/pkg/printers"
	"tableflip.dev/vireo/pkg/urgesurf"
)

func addUrge(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "urge",
		Short: "Surf an urge instead of acting on it",
		Long: "Walk the five-step coping flow: rate the urge, name the feeling,\n" +
			"breathe, pick a better strategy, then reflect. The session is saved\n" +
			"only when you finish the last step.",
		Example: `
vireo urge
vireo urge log
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			return runUrgeWizard(s.Document().BetterStrategies, func(rec document.UrgeSurfRecord) error {
				return s.LogUrgeSurf(rec)
			})
		},
	}

	addUrgeLog(cmd)

	topLevel.AddCommand(cmd)
}

type urgePrompter struct {
	in  *bufio.Scanner
	out *color.Color
	dim *color.Color
}

func runUrgeWizard(strategies []string, commit func(document.UrgeSurfRecord) error) error {
	p := urgePrompter{
		in:  bufio.NewScanner(os.Stdin),
		out: color.New(),
		dim: color.New(color.Faint),
	}
	flow := urgesurf.New()
	// The CLI walks the steps synchronously, so the breathe auto-advance
	// fires inline instead of on a timer.
	flow.SetAfter(func(_ time.Duration, fn func()) { fn() })

	for {
		info := urgesurf.Info(flow.Step())
		_, _ = color.New(color.Bold).Println("\n" + info.Title)
		_, _ = p.dim.Println(info.Subtitle)

		switch flow.Step() {
		case urgesurf.StepIntensity:
			flow.SetIntensity(p.askScale("Intensity", flow.Intensity()))
			flow.Forward()
		case urgesurf.StepFeeling:
			feeling := p.ask("Feeling")
			flow.SetFeeling(feeling)
			if !flow.Forward() {
				_, _ = p.dim.Println("Name it to move on. One word is enough.")
			}
		case urgesurf.StepBreathe:
			for flow.Breaths() < urgesurf.BreathTarget {
				_, _ = p.dim.Printf("Breath %d of %d. Press enter when you let it out.", flow.Breaths()+1, urgesurf.BreathTarget)
				p.in.Scan()
				flow.Breathe()
			}
		case urgesurf.StepStrategy:
			for i, s := range strategies {
				_, _ = p.out.Printf("%3d %s\n", i+1, s)
			}
			choice := p.ask("Pick a number or write your own")
			if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(strategies) {
				flow.ChooseStrategy(strategies[n-1])
			} else {
				flow.ChooseStrategy(choice)
			}
			if !flow.Forward() {
				_, _ = p.dim.Println("Pick something, anything that helps.")
			}
		case urgesurf.StepReflection:
			flow.SetPostIntensity(p.askScale("Where is the urge now", flow.PostIntensity()))
			flow.SetReflection(p.ask("Anything to note (optional)"))

			rec, err := flow.Complete(time.Now())
			if err != nil {
				return err
			}
			if err := commit(rec); err != nil {
				return oo.HandleError(err)
			}

			b := color.New(color.Bold, color.FgHiGreen)
			if rec.PostIntensity < rec.Intensity {
				_, _ = b.Printf("\nFrom %d down to %d. Saved.\n", rec.Intensity, rec.PostIntensity)
			} else {
				_, _ = b.Println("\nYou stayed with it. Saved.")
			}
			return nil
		}
	}
}

func (p urgePrompter) ask(label string) string {
	_, _ = p.out.Printf("%s: ", label)
	if !p.in.Scan() {
		return ""
	}
	return strings.TrimSpace(p.in.Text())
}

func (p urgePrompter) askScale(label string, def int) int {
	for {
		_, _ = p.out.Printf("%s [1-10, enter for %d]: ", label, def)
		if !p.in.Scan() {
			return def
		}
		text := strings.TrimSpace(p.in.Text())
		if text == "" {
			return def
		}
		if n, err := strconv.Atoi(text); err == nil && n >= 1 && n <= 10 {
			return n
		}
		fmt.Println("Give a number from 1 to 10.")
	}
}

func addUrgeLog(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show past urge-surf sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			logs := s.Document().UrgeSurfLogs

			pp := printers.PrettyPrint{}
			pp.TitleWithCount("Urges surfed", len(logs))
			pp.UrgeLogs(logs)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
