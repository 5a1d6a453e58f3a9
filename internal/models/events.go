package models

import "github.com/google/uuid"

// WebSocket message types

type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// ModelUpdate is broadcast when one model's attempt changes state.
type ModelUpdate struct {
	RequestID uuid.UUID `json:"request_id"`
	Model     string    `json:"model"`
	Status    string    `json:"status"`
	Progress  int       `json:"progress"`
	Score     *float64  `json:"score,omitempty"`
}

// RequestComplete is broadcast once all attempts have settled and the
// winner has been recorded.
type RequestComplete struct {
	RequestID   uuid.UUID          `json:"request_id"`
	WinnerModel string             `json:"winner_model"`
	AllScores   map[string]float64 `json:"all_scores"`
}

// StatusEvent greets a freshly connected observer.
type StatusEvent struct {
	Message string `json:"message"`
}

// API Error response

type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}
