// Package export renders journal data into downloadable files.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"tableflip.dev/vireo/pkg/document"
	"tableflip.dev/vireo/pkg/recording"
)

// Delimiter separates journal entries in the exported text.
const Delimiter = "---"

// Journal writes the music journal as plain text: timestamp, entry text, and
// an audio marker per entry, separated by a delimiter line. Entries appear in
// storage order.
func Journal(entries []document.MusicEntry, w io.Writer) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s\n%s\n", e.Timestamp.Local().Format("1/2/2006, 3:04:05 PM"), e.Text); err != nil {
			return err
		}
		if e.HasAudio() {
			if _, err := fmt.Fprintln(w, "[Audio Recording Attached]"); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintln(w, ""); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "\n%s\n\n", Delimiter); err != nil {
			return err
		}
	}
	return nil
}

// JournalFileName names the export after the current date.
func JournalFileName(now time.Time) string {
	return fmt.Sprintf("vireo-music-journal-%s.txt", now.Format("2006-01-02"))
}

// WriteJournalFile exports the journal next to the working directory and
// returns the file name.
func WriteJournalFile(entries []document.MusicEntry, now time.Time) (string, error) {
	if len(entries) == 0 {
		return "", errors.New("export: no journal entries")
	}
	name := JournalFileName(now)
	f, err := os.Create(name)
	if err != nil {
		return "", fmt.Errorf("export: create %s: %w", name, err)
	}
	defer f.Close()

	if err := Journal(entries, f); err != nil {
		return "", fmt.Errorf("export: write %s: %w", name, err)
	}
	return name, nil
}

// VoiceMemoFileName names a voice memo export with its capture timestamp.
func VoiceMemoFileName(now time.Time) string {
	return fmt.Sprintf("vireo-voice-memo-%s.wav", now.UTC().Format(time.RFC3339))
}

// WriteVoiceMemo exports the raw captured artifact and returns the file name.
func WriteVoiceMemo(a *recording.Artifact, now time.Time) (string, error) {
	if a == nil || len(a.Data) == 0 {
		return "", errors.New("export: no recording to save")
	}
	name := VoiceMemoFileName(now)
	if err := os.WriteFile(name, a.Data, 0o644); err != nil {
		return "", fmt.Errorf("export: write %s: %w", name, err)
	}
	return name, nil
}
