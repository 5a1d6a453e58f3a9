package models

import (
	"time"

	"github.com/google/uuid"
)

// Request lifecycle statuses.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
)

// ChatRequest is one user message fanned out to every configured model.
// It is owned by the request store and lives for the lifetime of the process.
type ChatRequest struct {
	ID          uuid.UUID                `json:"request_id"`
	UserMessage string                   `json:"user_message"`
	CreatedAt   time.Time                `json:"created_at"`
	Status      string                   `json:"status"` // "processing" | "completed"
	Models      map[string]*ModelAttempt `json:"models"`
	WinnerModel string                   `json:"winner_model,omitempty"`
	AllScores   map[string]float64       `json:"all_scores,omitempty"`
	TotalTime   float64                  `json:"total_time,omitempty"` // seconds, set on completion
}

// ModelAttempt tracks one model's processing within one chat request.
type ModelAttempt struct {
	Status      string     `json:"status"` // "pending" | "processing" | "completed"
	StartedAt   time.Time  `json:"started_at"`
	Response    string     `json:"response,omitempty"`
	ElapsedTime float64    `json:"elapsed_time"` // seconds
	Score       float64    `json:"score"`
	EndedAt     *time.Time `json:"ended_at,omitempty"`
}

// GatewayResult is the uniform outcome of one completion call. Failures are
// carried as values, never as errors, so per-model tasks stay non-crashing.
type GatewayResult struct {
	Success      bool
	Content      string
	ErrorMessage string
	ElapsedTime  float64 // seconds
	Usage        map[string]interface{}
}

// ChatMessageRequest is the payload sent to POST /api/chat.
type ChatMessageRequest struct {
	Message string `json:"message"`
}

// ChatAcceptedResponse is returned once background processing has started.
type ChatAcceptedResponse struct {
	RequestID uuid.UUID `json:"request_id"`
	Message   string    `json:"message"`
	Models    []string  `json:"models"`
}

// ModelResult is one completed attempt projected for the result endpoint.
type ModelResult struct {
	ModelName   string  `json:"model_name"`
	DisplayName string  `json:"display_name"`
	Category    string  `json:"category"`
	Response    string  `json:"response"`
	ElapsedTime float64 `json:"elapsed_time"`
	Score       float64 `json:"score"`
}

// RequestResult is the final projection served by GET /api/result/{id}.
type RequestResult struct {
	RequestID         uuid.UUID          `json:"request_id"`
	UserMessage       string             `json:"user_message"`
	WinnerModel       string             `json:"winner_model"`
	WinnerDisplayName string             `json:"winner_display_name"`
	Results           []ModelResult      `json:"results"`
	TotalTime         float64            `json:"total_time"`
	AllScores         map[string]float64 `json:"all_scores"`
}
