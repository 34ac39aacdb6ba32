package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Fixed voice model and settings tuple sent with every synthesis request.
const (
	modelID = "eleven_multilingual_v2"

	settingStability  = 0.5
	settingSimilarity = 0.8
	settingStyle      = 0.5
)

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
}

type synthesisRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

// ElevenLabsClient calls the ElevenLabs text-to-speech API. The secret key
// stays server-side; callers only ever see audio bytes or an error.
type ElevenLabsClient struct {
	baseURL        string
	apiKey         string
	defaultVoiceID string
	httpClient     *http.Client
}

func NewElevenLabsClient(baseURL, apiKey, defaultVoiceID string) *ElevenLabsClient {
	return &ElevenLabsClient{
		baseURL:        baseURL,
		apiKey:         apiKey,
		defaultVoiceID: defaultVoiceID,
		// No client timeout; cancellation rides on the request context.
		httpClient: &http.Client{},
	}
}

// Synthesize converts text to audio using the given voice, falling back to
// the configured default voice when voiceID is empty.
func (c *ElevenLabsClient) Synthesize(ctx context.Context, text, voiceID string) ([]byte, error) {
	if voiceID == "" {
		voiceID = c.defaultVoiceID
	}

	body, err := json.Marshal(synthesisRequest{
		Text:    text,
		ModelID: modelID,
		VoiceSettings: voiceSettings{
			Stability:       settingStability,
			SimilarityBoost: settingSimilarity,
			Style:           settingStyle,
			UseSpeakerBoost: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal synthesis request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/text-to-speech/%s", c.baseURL, voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build synthesis request: %w", err)
	}
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("synthesis request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("voice API returned status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio response: %w", err)
	}

	return audio, nil
}
