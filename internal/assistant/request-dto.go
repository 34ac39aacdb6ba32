package assistant

// QueryRequest carries one visitor question. SessionID is optional; anonymous
// queries resolve from the venue's default location with voice off.
type QueryRequest struct {
	Query     string `json:"query" binding:"required,min=1,max=500"`
	SessionID string `json:"session_id" binding:"omitempty,uuid"`
}
