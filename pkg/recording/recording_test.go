package recording

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
)

// fakeCapture is a device-free Capture implementation.
type fakeCapture struct {
	denied bool

	mu      sync.Mutex
	handles []*fakeHandle
}

func (f *fakeCapture) Start(_ context.Context) (Handle, error) {
	if f.denied {
		return nil, errors.New("device busy")
	}
	h := &fakeHandle{chunks: make(chan []byte, 8)}
	f.mu.Lock()
	f.handles = append(f.handles, h)
	f.mu.Unlock()
	return h, nil
}

type fakeHandle struct {
	chunks chan []byte

	mu    sync.Mutex
	stops int
}

func (h *fakeHandle) feed(b []byte) {
	h.chunks <- b
}

func (h *fakeHandle) Chunks() <-chan []byte {
	return h.chunks
}

func (h *fakeHandle) Stop() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stops++
	if h.stops == 1 {
		close(h.chunks)
	}
	return nil
}

func (h *fakeHandle) stopCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stops
}

func TestRecordStopProducesArtifact(t *testing.T) {
	cap := &fakeCapture{}
	s := NewSession(cap)

	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.State() != StateRecording {
		t.Fatalf("state = %v", s.State())
	}

	h := cap.handles[0]
	h.feed([]byte("RIFF"))
	h.feed([]byte("data"))
	s.Tick()
	s.Tick()
	s.Tick()

	if err := s.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if s.State() != StateStopped {
		t.Fatalf("state = %v", s.State())
	}

	a := s.Artifact()
	if a == nil {
		t.Fatal("expected artifact")
	}
	if string(a.Data) != "RIFFdata" {
		t.Fatalf("artifact data = %q", a.Data)
	}
	if a.Duration != 3 {
		t.Fatalf("artifact duration = %d", a.Duration)
	}
}

func TestDoubleStopReleasesStreamOnce(t *testing.T) {
	cap := &fakeCapture{}
	s := NewSession(cap)
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	if err := s.Stop(); err != nil {
		t.Fatalf("first stop: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("second stop must not error: %v", err)
	}
	if got := cap.handles[0].stopCount(); got != 1 {
		t.Fatalf("stream released %d times, want 1", got)
	}
}

func TestPermissionDenied(t *testing.T) {
	s := NewSession(&fakeCapture{denied: true})

	err := s.Start(context.Background())
	var denied *PermissionDeniedError
	if !errors.As(err, &denied) {
		t.Fatalf("expected PermissionDeniedError, got %v", err)
	}
	if s.State() != StateIdle {
		t.Fatalf("denial must return to idle, state = %v", s.State())
	}
}

func TestTeardownMidRecording(t *testing.T) {
	cap := &fakeCapture{}
	s := NewSession(cap)
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	cap.handles[0].feed([]byte("partial"))
	s.Tick()

	s.Teardown()

	if got := cap.handles[0].stopCount(); got != 1 {
		t.Fatalf("stream released %d times, want 1", got)
	}
	if s.Artifact() != nil {
		t.Fatal("teardown mid-recording must not finalize an artifact")
	}
	if s.State() != StateIdle {
		t.Fatalf("state = %v", s.State())
	}
}

func TestDeleteReturnsToIdle(t *testing.T) {
	cap := &fakeCapture{}
	s := NewSession(cap)
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	cap.handles[0].feed([]byte("x"))
	if err := s.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}

	s.Delete()
	if s.State() != StateIdle || s.Artifact() != nil || s.Elapsed() != 0 {
		t.Fatalf("delete left state=%v artifact=%v elapsed=%d", s.State(), s.Artifact(), s.Elapsed())
	}

	// A fresh recording is allowed after delete.
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("restart after delete: %v", err)
	}
}

func TestStartWithArtifactPendingRefused(t *testing.T) {
	cap := &fakeCapture{}
	s := NewSession(cap)
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}

	if err := s.Start(context.Background()); !errors.Is(err, ErrArtifactPending) {
		t.Fatalf("expected ErrArtifactPending, got %v", err)
	}
}

func TestDownloadDoesNotChangeState(t *testing.T) {
	cap := &fakeCapture{}
	s := NewSession(cap)
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	cap.handles[0].feed([]byte("wavdata"))
	if err := s.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}

	var out bytes.Buffer
	if err := s.Download(&out); err != nil {
		t.Fatalf("download: %v", err)
	}
	if out.String() != "wavdata" {
		t.Fatalf("downloaded %q", out.String())
	}
	if s.State() != StateStopped || s.Artifact() == nil {
		t.Fatal("download must not change state")
	}
}

func TestCommitEncodesAndReleases(t *testing.T) {
	cap := &fakeCapture{}
	s := NewSession(cap)
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	cap.handles[0].feed([]byte{0x52, 0x49, 0x46, 0x46})
	if err := s.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}

	encoded, err := s.Commit()
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if !strings.HasPrefix(encoded, "data:audio/wav;base64,") {
		t.Fatalf("encoded = %q", encoded)
	}
	if s.Artifact() != nil {
		t.Fatal("commit must release the artifact handle")
	}
	if s.State() != StateCommitted {
		t.Fatalf("state = %v", s.State())
	}

	// And the session can record again afterwards.
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("restart after commit: %v", err)
	}
}
