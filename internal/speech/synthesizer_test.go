package speech

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"wayfinder/pkg/cache"
	"wayfinder/pkg/logger"
)

func TestRemoteSynthesizerWritesAudio(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("remote-audio"))
	}))
	defer upstream.Close()

	client := NewElevenLabsClient(upstream.URL, "k", "voice")
	service := NewService(client, cache.NewService(nil), logger.GetDefault())

	var sink bytes.Buffer
	synth := NewRemoteSynthesizer(service, "voice", &sink)

	if err := synth.Speak(context.Background(), "hello", 0.7); err != nil {
		t.Fatalf("Speak: %v", err)
	}
	if sink.String() != "remote-audio" {
		t.Errorf("sink = %q; want upstream audio bytes", sink.String())
	}
}

func TestEspeakAmplitudeBounds(t *testing.T) {
	// Volume outside [0,1] must clamp into espeak's 0-200 amplitude range
	// rather than producing an invalid flag value.
	cases := []struct {
		volume float64
		want   int
	}{
		{0, 0},
		{0.5, 100},
		{1, 200},
		{-1, 0},
		{2, 200},
	}

	for _, tc := range cases {
		if got := espeakAmplitude(tc.volume); got != tc.want {
			t.Errorf("espeakAmplitude(%g) = %d; want %d", tc.volume, got, tc.want)
		}
	}
}
