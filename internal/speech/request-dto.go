package speech

type TextToSpeechRequest struct {
	Text    string `json:"text" validate:"required,min=1,max=5000"`
	VoiceID string `json:"voiceId"`
}
