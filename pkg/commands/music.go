package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/vireo/pkg/document"
	"tableflip.dev/vireo/pkg/export"
	"tableflip.dev/vireo/pkg/printers"
	"tableflip.dev/vireo/pkg/recording"
	"tableflip.dev/vireo/pkg/timeutil"
)

func addMusic(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "music",
		Short: "The music scratchpad",
		Example: `
vireo music add "verse idea: start on the minor"
vireo music record
vireo music list
vireo music export
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addMusicAdd(cmd)
	addMusicRecord(cmd)
	addMusicList(cmd)
	addMusicExport(cmd)

	topLevel.AddCommand(cmd)
}

func addMusicAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Save a scratchpad note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			entry := document.MusicEntry{
				Text:      strings.Join(args, " "),
				Timestamp: document.Timestamp{Time: s.Now()},
			}
			return oo.HandleError(s.AddMusicEntry(entry))
		},
	}

	topLevel.AddCommand(cmd)
}

func addMusicRecord(topLevel *cobra.Command) {
	keep := false
	note := ""

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a voice memo into the scratchpad",
		Long: "Record from the microphone until Ctrl-C, then save the memo as a\n" +
			"scratchpad entry. With --keep the raw audio is also written to a\n" +
			".wav file in the current directory.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}

			session := recording.NewSession(&recording.MicCapture{})
			defer session.Teardown()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			if err := session.Start(ctx); err != nil {
				var denied *recording.PermissionDeniedError
				if errors.As(err, &denied) {
					return fmt.Errorf("microphone unavailable: %w", denied.Err)
				}
				return err
			}

			f := color.New(color.Faint)
			_, _ = f.Println("Recording. Ctrl-C to stop.")

			ticker := time.NewTicker(time.Second)
			defer ticker.Stop()
		record:
			for {
				select {
				case <-ctx.Done():
					break record
				case <-ticker.C:
					session.Tick()
					fmt.Printf("\r  %s  ", timeutil.FormatClock(session.Elapsed()))
				}
			}
			fmt.Println("")

			if err := session.Stop(); err != nil {
				return err
			}
			artifact := session.Artifact()
			if artifact == nil || len(artifact.Data) == 0 {
				return errors.New("nothing was captured")
			}

			if keep {
				name, err := export.WriteVoiceMemo(artifact, s.Now())
				if err != nil {
					return err
				}
				_, _ = f.Printf("Wrote %s\n", name)
			}

			audio, err := session.Commit()
			if err != nil {
				return err
			}
			entry := document.MusicEntry{
				Text:      note,
				Audio:     audio,
				Timestamp: document.Timestamp{Time: s.Now()},
			}
			return oo.HandleError(s.AddMusicEntry(entry))
		},
	}

	cmd.Flags().BoolVar(&keep, "keep", false,
		"Also write the raw recording to a .wav file.")
	cmd.Flags().StringVarP(&note, "note", "n", "",
		"Text to store alongside the memo.")

	topLevel.AddCommand(cmd)
}

func addMusicList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show scratchpad entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			entries := s.Document().MusicEntries

			pp := printers.PrettyPrint{}
			pp.TitleWithCount("Music journal", len(entries))
			pp.Journal(entries)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}

func addMusicExport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the journal to a text file",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			name, err := export.WriteJournalFile(s.Document().MusicEntries, s.Now())
			if err != nil {
				return oo.HandleError(err)
			}
			fmt.Printf("Wrote %s\n", name)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
