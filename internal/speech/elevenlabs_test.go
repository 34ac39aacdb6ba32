package speech

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSynthesize(t *testing.T) {
	var gotPath, gotKey string
	var gotBody synthesisRequest

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("xi-api-key")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("mp3-bytes"))
	}))
	defer upstream.Close()

	client := NewElevenLabsClient(upstream.URL, "secret-key", "default-voice")

	audio, err := client.Synthesize(context.Background(), "hello there", "")
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	if string(audio) != "mp3-bytes" {
		t.Errorf("audio = %q; want upstream bytes", audio)
	}
	if gotPath != "/v1/text-to-speech/default-voice" {
		t.Errorf("path = %q; want default voice in path", gotPath)
	}
	if gotKey != "secret-key" {
		t.Errorf("api key header = %q; want secret-key", gotKey)
	}
	if gotBody.Text != "hello there" || gotBody.ModelID != modelID {
		t.Errorf("body = %+v; want text and model id", gotBody)
	}
	if gotBody.VoiceSettings.Stability != settingStability ||
		gotBody.VoiceSettings.SimilarityBoost != settingSimilarity ||
		!gotBody.VoiceSettings.UseSpeakerBoost {
		t.Errorf("voice settings = %+v; want fixed tuple", gotBody.VoiceSettings)
	}
}

func TestSynthesizeVoiceOverride(t *testing.T) {
	var gotPath string

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte("x"))
	}))
	defer upstream.Close()

	client := NewElevenLabsClient(upstream.URL, "k", "default-voice")
	if _, err := client.Synthesize(context.Background(), "hi", "custom-voice"); err != nil {
		t.Fatalf("Synthesize: %v", err)
	}

	if gotPath != "/v1/text-to-speech/custom-voice" {
		t.Errorf("path = %q; want custom voice in path", gotPath)
	}
}

func TestSynthesizeUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer upstream.Close()

	client := NewElevenLabsClient(upstream.URL, "k", "v")
	if _, err := client.Synthesize(context.Background(), "hi", ""); err == nil {
		t.Fatal("Synthesize succeeded; want error on upstream failure")
	}
}
