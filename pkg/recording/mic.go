package recording

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
)

// MicCapture records from the default input device by shelling out to a
// capture tool that streams WAV to stdout. arecord ships with ALSA; sox's
// rec works as a fallback on systems without it.
type MicCapture struct {
	// Command overrides the capture invocation. Defaults to arecord.
	Command []string
}

func (m *MicCapture) command() []string {
	if len(m.Command) > 0 {
		return m.Command
	}
	return []string{"arecord", "-q", "-f", "cd", "-t", "wav", "-"}
}

// Start launches the capture process. A missing binary or a busy/denied
// device surfaces as the start error; the caller wraps it for the user.
func (m *MicCapture) Start(ctx context.Context) (Handle, error) {
	argv := m.command()
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stderr = io.Discard

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("capture pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", argv[0], err)
	}

	h := &micHandle{
		cmd:    cmd,
		chunks: make(chan []byte, 16),
	}

	go func() {
		defer close(h.chunks)
		buf := make([]byte, 4096)
		for {
			n, err := stdout.Read(buf)
			if n > 0 {
				chunk := make([]byte, n)
				copy(chunk, buf[:n])
				h.chunks <- chunk
			}
			if err != nil {
				return
			}
		}
	}()

	return h, nil
}

type micHandle struct {
	cmd      *exec.Cmd
	chunks   chan []byte
	stopOnce sync.Once
	stopErr  error
}

func (h *micHandle) Chunks() <-chan []byte {
	return h.chunks
}

// Stop interrupts the capture process and waits for it to flush. Guarded so
// a double stop releases the process exactly once.
func (h *micHandle) Stop() error {
	h.stopOnce.Do(func() {
		if h.cmd.Process != nil {
			_ = h.cmd.Process.Signal(os.Interrupt)
		}
		// The exit status of an interrupted recorder is noise; the audio
		// already streamed through stdout.
		_ = h.cmd.Wait()
	})
	return h.stopErr
}
