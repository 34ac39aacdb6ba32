package speech

import (
	"context"
	"sync"

	"wayfinder/pkg/logger"
)

// Relay is the voice output gate. It enforces the one-utterance invariant:
// starting a new utterance always cancels the one in flight, last write wins,
// nothing is ever queued.
type Relay struct {
	mu     sync.Mutex
	synth  Synthesizer
	cancel context.CancelFunc
	log    *logger.Logger
}

func NewRelay(synth Synthesizer, log *logger.Logger) *Relay {
	return &Relay{synth: synth, log: log}
}

// Speak voices text at the given volume. No-op when disabled or when no
// synthesizer is configured. The utterance runs fire-and-forget; errors are
// logged, never returned, matching the UI behavior of speech being best effort.
func (r *Relay) Speak(text string, volume float64, enabled bool) {
	if !enabled || r.synth == nil || text == "" {
		return
	}

	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.mu.Unlock()

	go func() {
		defer cancel()
		if err := r.synth.Speak(ctx, text, volume); err != nil && ctx.Err() == nil {
			r.log.ErrorWithContext(ctx, "Utterance failed", err, map[string]interface{}{
				"text_length": len(text),
			})
		}
	}()
}

// Stop cancels the in-flight utterance, if any.
func (r *Relay) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}
