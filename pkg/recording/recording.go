// Package recording manages the microphone capture lifecycle and the
// in-memory audio artifact it produces. The hardware edge lives behind the
// Capture interface so the lifecycle is testable without a device.
package recording

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"sync"
)

// State is the capture lifecycle state.
type State int

// Session states.
const (
	StateIdle State = iota
	StateRequesting
	StateRecording
	StateStopped // artifact in hand
	StateCommitted
)

func (s State) String() string {
	switch s {
	case StateRequesting:
		return "requesting"
	case StateRecording:
		return "recording"
	case StateStopped:
		return "stopped"
	case StateCommitted:
		return "committed"
	default:
		return "idle"
	}
}

// PermissionDeniedError reports that microphone access was denied or the
// device failed. Fatal to this recording attempt only, not to the app.
type PermissionDeniedError struct {
	Err error
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("recording: microphone unavailable: %v", e.Err)
}

func (e *PermissionDeniedError) Unwrap() error {
	return e.Err
}

// ErrArtifactPending is returned when a new recording is started while a
// stopped artifact has been neither deleted nor committed.
var ErrArtifactPending = errors.New("recording: previous artifact not released")

// Capture is the hardware boundary: grant/deny on Start, stream-stop on the
// handle, nothing else observable.
type Capture interface {
	Start(ctx context.Context) (Handle, error)
}

// Handle is one live capture stream. Chunks is closed after Stop, once the
// final audio data has been delivered.
type Handle interface {
	Chunks() <-chan []byte
	Stop() error
}

// Artifact is a finalized in-memory recording.
type Artifact struct {
	Data     []byte
	Duration int // seconds
	MIMEType string
}

// Encode renders the artifact the way it is embedded in a music entry: a
// base64 data URL.
func (a *Artifact) Encode() string {
	if a == nil {
		return ""
	}
	return "data:" + a.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(a.Data)
}

// Session is one microphone capture lifecycle. At most one live artifact per
// session; the previous one is released before a new capture begins.
type Session struct {
	capture Capture

	mu       sync.Mutex
	state    State
	handle   Handle
	chunks   []byte
	elapsed  int
	artifact *Artifact
	drained  chan struct{}
}

// NewSession wraps a capture implementation.
func NewSession(c Capture) *Session {
	return &Session{capture: c}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Elapsed returns recorded seconds so far.
func (s *Session) Elapsed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}

// Artifact returns the finalized recording, if any.
func (s *Session) Artifact() *Artifact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.artifact
}

// Start requests microphone access and begins accumulating audio chunks. On
// denial or device error the session returns to Idle and the caller gets a
// PermissionDeniedError to surface.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	switch s.state {
	case StateIdle, StateCommitted:
	case StateStopped:
		s.mu.Unlock()
		return ErrArtifactPending
	default:
		s.mu.Unlock()
		return fmt.Errorf("recording: session already %s", s.state)
	}
	s.state = StateRequesting
	s.artifact = nil
	s.chunks = nil
	s.elapsed = 0
	s.mu.Unlock()

	h, err := s.capture.Start(ctx)
	if err != nil {
		s.mu.Lock()
		s.state = StateIdle
		s.mu.Unlock()
		return &PermissionDeniedError{Err: err}
	}

	s.mu.Lock()
	s.handle = h
	s.state = StateRecording
	s.drained = make(chan struct{})
	s.mu.Unlock()

	go func(h Handle, done chan struct{}) {
		defer close(done)
		for chunk := range h.Chunks() {
			s.mu.Lock()
			s.chunks = append(s.chunks, chunk...)
			s.mu.Unlock()
		}
	}(h, s.drained)

	return nil
}

// Tick counts one second of recording time. Same tick contract as the
// session timer; there is no upper bound until Stop.
func (s *Session) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateRecording {
		s.elapsed++
	}
}

// Stop finalizes the accumulated chunks into a single artifact and releases
// the capture stream. Safe to call more than once; the stream is released
// exactly once and a second call is a no-op.
func (s *Session) Stop() error {
	s.mu.Lock()
	if s.state != StateRecording {
		s.mu.Unlock()
		return nil
	}
	h := s.handle
	s.handle = nil
	drained := s.drained
	s.mu.Unlock()

	err := h.Stop()
	<-drained // final chunks delivered before the channel closes

	s.mu.Lock()
	s.artifact = &Artifact{
		Data:     s.chunks,
		Duration: s.elapsed,
		MIMEType: "audio/wav",
	}
	s.chunks = nil
	s.state = StateStopped
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("recording: stop capture: %w", err)
	}
	return nil
}

// Delete discards the artifact and returns to Idle.
func (s *Session) Delete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateStopped {
		return
	}
	s.artifact = nil
	s.elapsed = 0
	s.state = StateIdle
}

// Download exports the artifact without changing state.
func (s *Session) Download(w io.Writer) error {
	s.mu.Lock()
	a := s.artifact
	s.mu.Unlock()
	if a == nil {
		return errors.New("recording: no artifact to download")
	}
	_, err := w.Write(a.Data)
	return err
}

// Commit hands the artifact over for storage, encoded, and releases the
// transient handle. After Commit the session can start a fresh recording.
func (s *Session) Commit() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateStopped || s.artifact == nil {
		return "", errors.New("recording: no artifact to commit")
	}
	encoded := s.artifact.Encode()
	s.artifact = nil
	s.state = StateCommitted
	return encoded, nil
}

// Teardown releases everything regardless of state. A teardown mid-recording
// stops the stream and produces no artifact and no entry.
func (s *Session) Teardown() {
	s.mu.Lock()
	h := s.handle
	s.handle = nil
	drained := s.drained
	s.mu.Unlock()

	if h != nil {
		_ = h.Stop()
		if drained != nil {
			<-drained
		}
	}

	s.mu.Lock()
	s.artifact = nil
	s.chunks = nil
	s.elapsed = 0
	s.state = StateIdle
	s.mu.Unlock()
}
