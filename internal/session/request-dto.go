package session

type UpdateSettingsRequest struct {
	VoiceEnabled      *bool    `json:"voice_enabled"`
	VoiceVolume       *float64 `json:"voice_volume" binding:"omitempty,min=0,max=1"`
	CurrentLocationID *string  `json:"current_location_id" binding:"omitempty,min=1"`
}

type ZoomRequest struct {
	Direction string `json:"direction" binding:"required,oneof=in out reset"`
}

type PopupRequest struct {
	LocationID string `json:"location_id" binding:"required,min=1"`
}
