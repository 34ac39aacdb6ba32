package speech

import (
	"context"
	"sync"
	"testing"
	"time"

	"wayfinder/pkg/logger"
)

// fakeSynthesizer records utterances and blocks until its context is
// cancelled or release is closed.
type fakeSynthesizer struct {
	mu        sync.Mutex
	spoken    []string
	volumes   []float64
	cancelled int
	release   chan struct{}
}

func newFakeSynthesizer() *fakeSynthesizer {
	return &fakeSynthesizer{release: make(chan struct{})}
}

func (f *fakeSynthesizer) Speak(ctx context.Context, text string, volume float64) error {
	f.mu.Lock()
	f.spoken = append(f.spoken, text)
	f.volumes = append(f.volumes, volume)
	f.mu.Unlock()

	select {
	case <-ctx.Done():
		f.mu.Lock()
		f.cancelled++
		f.mu.Unlock()
		return ctx.Err()
	case <-f.release:
		return nil
	}
}

func (f *fakeSynthesizer) snapshot() ([]string, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.spoken...), f.cancelled
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestSpeakDisabledIsNoop(t *testing.T) {
	synth := newFakeSynthesizer()
	relay := NewRelay(synth, logger.GetDefault())

	relay.Speak("hello", 0.7, false)
	time.Sleep(20 * time.Millisecond)

	spoken, _ := synth.snapshot()
	if len(spoken) != 0 {
		t.Fatalf("spoken = %v; want nothing while disabled", spoken)
	}
}

func TestSpeakEmptyTextIsNoop(t *testing.T) {
	synth := newFakeSynthesizer()
	relay := NewRelay(synth, logger.GetDefault())

	relay.Speak("", 0.7, true)
	time.Sleep(20 * time.Millisecond)

	spoken, _ := synth.snapshot()
	if len(spoken) != 0 {
		t.Fatalf("spoken = %v; want nothing for empty text", spoken)
	}
}

func TestSpeakCancelsPrevious(t *testing.T) {
	synth := newFakeSynthesizer()
	relay := NewRelay(synth, logger.GetDefault())

	relay.Speak("first", 0.7, true)
	waitFor(t, func() bool {
		spoken, _ := synth.snapshot()
		return len(spoken) == 1
	})

	// Second utterance must cancel the first; last write wins.
	relay.Speak("second", 0.7, true)
	waitFor(t, func() bool {
		spoken, cancelled := synth.snapshot()
		return len(spoken) == 2 && cancelled == 1
	})

	spoken, _ := synth.snapshot()
	if spoken[1] != "second" {
		t.Fatalf("second utterance = %q; want %q", spoken[1], "second")
	}
}

func TestStopCancelsInFlight(t *testing.T) {
	synth := newFakeSynthesizer()
	relay := NewRelay(synth, logger.GetDefault())

	relay.Speak("talking", 0.5, true)
	waitFor(t, func() bool {
		spoken, _ := synth.snapshot()
		return len(spoken) == 1
	})

	relay.Stop()
	waitFor(t, func() bool {
		_, cancelled := synth.snapshot()
		return cancelled == 1
	})
}
