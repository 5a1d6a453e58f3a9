package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"arena-backend/internal/models"
)

// RequestStore is the in-memory table of in-flight and completed chat
// requests. It is the only shared mutable state in the process; all access
// goes through its methods. Requests are never evicted.
type RequestStore struct {
	mu       sync.RWMutex
	requests map[uuid.UUID]*models.ChatRequest
}

func New() *RequestStore {
	return &RequestStore{
		requests: make(map[uuid.UUID]*models.ChatRequest),
	}
}

// CreateRequest inserts a fresh request in "processing" state and returns
// its generated identifier.
func (s *RequestStore) CreateRequest(message string) uuid.UUID {
	id := uuid.New()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests[id] = &models.ChatRequest{
		ID:          id,
		UserMessage: message,
		CreatedAt:   time.Now(),
		Status:      models.StatusProcessing,
		Models:      make(map[string]*models.ModelAttempt),
	}
	return id
}

// InitAttempt registers a pending attempt for the given model. No-op for an
// unknown request id; the caller is trusted to have just created the request.
func (s *RequestStore) InitAttempt(id uuid.UUID, modelID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[id]
	if !ok {
		return
	}
	req.Models[modelID] = &models.ModelAttempt{
		Status:    models.StatusPending,
		StartedAt: time.Now(),
	}
}

// SetAttemptStatus overwrites the status of one model's attempt.
// No-op for unknown request or model ids.
func (s *RequestStore) SetAttemptStatus(id uuid.UUID, modelID, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[id]
	if !ok {
		return
	}
	attempt, ok := req.Models[modelID]
	if !ok {
		return
	}
	attempt.Status = status
}

// CompleteAttempt settles one model's attempt with its response, elapsed
// time and score. No-op for unknown request or model ids.
func (s *RequestStore) CompleteAttempt(id uuid.UUID, modelID, response string, elapsed, score float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[id]
	if !ok {
		return
	}
	attempt, ok := req.Models[modelID]
	if !ok {
		return
	}

	now := time.Now()
	attempt.Status = models.StatusCompleted
	attempt.Response = response
	attempt.ElapsedTime = elapsed
	attempt.Score = score
	attempt.EndedAt = &now
}

// FinalizeRequest marks the request completed with its winner, the full
// score mapping and the total elapsed time since creation.
func (s *RequestStore) FinalizeRequest(id uuid.UUID, winnerModel string, allScores map[string]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[id]
	if !ok {
		return
	}
	req.Status = models.StatusCompleted
	req.WinnerModel = winnerModel
	req.AllScores = allScores
	req.TotalTime = time.Since(req.CreatedAt).Seconds()
}

// GetRequest returns a deep copy of the request so callers can read it
// without holding the store lock. A snapshot of an in-flight request may
// show some attempts still pending while others are completed; that is the
// progress-polling contract.
func (s *RequestStore) GetRequest(id uuid.UUID) (*models.ChatRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	req, ok := s.requests[id]
	if !ok {
		return nil, false
	}

	snapshot := *req
	snapshot.Models = make(map[string]*models.ModelAttempt, len(req.Models))
	for modelID, attempt := range req.Models {
		copied := *attempt
		if attempt.EndedAt != nil {
			ended := *attempt.EndedAt
			copied.EndedAt = &ended
		}
		snapshot.Models[modelID] = &copied
	}
	if req.AllScores != nil {
		snapshot.AllScores = make(map[string]float64, len(req.AllScores))
		for modelID, score := range req.AllScores {
			snapshot.AllScores[modelID] = score
		}
	}
	return &snapshot, true
}
