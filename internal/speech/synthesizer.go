package speech

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strconv"
)

// Synthesizer produces audible speech for a single utterance. Implementations
// must stop speaking promptly when the context is cancelled.
type Synthesizer interface {
	Speak(ctx context.Context, text string, volume float64) error
}

// EspeakSynthesizer shells out to a local espeak-ng compatible binary. This is
// the on-host synthesis facility for kiosk deployments; killing the process
// via context cancellation is what cuts an utterance short.
type EspeakSynthesizer struct {
	command string
}

func NewEspeakSynthesizer(command string) *EspeakSynthesizer {
	if command == "" {
		command = "espeak-ng"
	}
	return &EspeakSynthesizer{command: command}
}

func (e *EspeakSynthesizer) Speak(ctx context.Context, text string, volume float64) error {
	if text == "" {
		return nil
	}

	// Speed 160 wpm approximates the original's 0.9 utterance rate.
	cmd := exec.CommandContext(ctx, e.command, "-a", strconv.Itoa(espeakAmplitude(volume)), "-s", "160", text)
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("speech synthesis failed: %w", err)
	}

	return nil
}

// espeakAmplitude maps the relay's [0,1] volume onto espeak's 0-200
// amplitude range, clamping out-of-range input.
func espeakAmplitude(volume float64) int {
	amplitude := int(volume * 200)
	if amplitude < 0 {
		return 0
	}
	if amplitude > 200 {
		return 200
	}
	return amplitude
}

// RemoteSynthesizer speaks by fetching synthesized audio from the
// text-to-speech service and writing the bytes to a sink. This is the proxy
// variant of the relay: one blocking network call per utterance.
type RemoteSynthesizer struct {
	service Service
	voiceID string
	sink    io.Writer
}

func NewRemoteSynthesizer(service Service, voiceID string, sink io.Writer) *RemoteSynthesizer {
	return &RemoteSynthesizer{service: service, voiceID: voiceID, sink: sink}
}

func (r *RemoteSynthesizer) Speak(ctx context.Context, text string, volume float64) error {
	audio, err := r.service.TextToSpeech(ctx, text, r.voiceID)
	if err != nil {
		return err
	}

	if _, err := r.sink.Write(audio); err != nil {
		return fmt.Errorf("failed to write audio: %w", err)
	}

	return nil
}
