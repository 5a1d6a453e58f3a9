package orchestrator

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"arena-backend/internal/models"
	"arena-backend/internal/scoring"
	"arena-backend/internal/store"
)

// ErrEmptyMessage rejects chat messages that are empty after trimming.
var ErrEmptyMessage = errors.New("message is required")

// CompletionClient issues one completion call per (model, message) pair.
type CompletionClient interface {
	Complete(ctx context.Context, modelID, message string, timeout time.Duration) models.GatewayResult
}

// EventEmitter pushes progress events to connected observers.
type EventEmitter interface {
	Broadcast(msg interface{})
}

// Orchestrator owns the request lifecycle: create, fan out one task per
// configured model, score the results, pick the winner, finalize.
type Orchestrator struct {
	store   *store.RequestStore
	gateway CompletionClient
	catalog models.Catalog
	events  EventEmitter
	timeout time.Duration
}

func New(requestStore *store.RequestStore, gateway CompletionClient, catalog models.Catalog, events EventEmitter, timeout time.Duration) *Orchestrator {
	return &Orchestrator{
		store:   requestStore,
		gateway: gateway,
		catalog: catalog,
		events:  events,
		timeout: timeout,
	}
}

// HandleChatMessage records a new request with one pending attempt per
// configured model and kicks off background processing. It returns as soon
// as the pending state is stored; the fan-out runs detached from the
// caller's request cycle.
func (o *Orchestrator) HandleChatMessage(message string) (uuid.UUID, []string, error) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return uuid.Nil, nil, ErrEmptyMessage
	}

	requestID := o.store.CreateRequest(trimmed)
	log.Printf("Created request %s for message %q", requestID, preview(trimmed))

	modelIDs := o.catalog.IDs()
	for _, modelID := range modelIDs {
		o.store.InitAttempt(requestID, modelID)
	}

	go o.processAllModels(requestID, trimmed)

	return requestID, modelIDs, nil
}

type modelOutcome struct {
	modelID string
	score   float64
}

// processAllModels runs one task per configured model in parallel, joins on
// all of them, then finalizes the request. A task that panics is logged and
// contributes no outcome; the request still completes with whatever results
// did arrive.
func (o *Orchestrator) processAllModels(requestID uuid.UUID, message string) {
	outcomes := make(chan modelOutcome, len(o.catalog))

	var wg sync.WaitGroup
	for _, modelID := range o.catalog.IDs() {
		wg.Add(1)
		go func(modelID string) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Printf("Model task %s for request %s panicked: %v", modelID, requestID, r)
				}
			}()
			outcomes <- o.processModel(requestID, modelID, message)
		}(modelID)
	}

	go func() {
		wg.Wait()
		close(outcomes)
	}()

	// Collect in completion order; the join on the closed channel is the
	// barrier before finalization.
	var results []modelOutcome
	for outcome := range outcomes {
		results = append(results, outcome)
	}

	winner := selectWinner(results)

	allScores := make(map[string]float64, len(results))
	for _, r := range results {
		allScores[r.modelID] = r.score
	}

	o.store.FinalizeRequest(requestID, winner, allScores)

	o.events.Broadcast(models.WSMessage{
		Type: "request_complete",
		Payload: models.RequestComplete{
			RequestID:   requestID,
			WinnerModel: winner,
			AllScores:   allScores,
		},
	})

	log.Printf("Request %s completed, winner: %s", requestID, winner)
}

// processModel runs the dispatch-and-score pipeline for one model.
func (o *Orchestrator) processModel(requestID uuid.UUID, modelID, message string) modelOutcome {
	o.store.SetAttemptStatus(requestID, modelID, models.StatusProcessing)
	o.events.Broadcast(models.WSMessage{
		Type: "model_update",
		Payload: models.ModelUpdate{
			RequestID: requestID,
			Model:     modelID,
			Status:    models.StatusProcessing,
			Progress:  50,
		},
	})

	result := o.gateway.Complete(context.Background(), modelID, message, o.timeout)
	if !result.Success {
		log.Printf("Model %s failed for request %s: %s", modelID, requestID, result.ErrorMessage)
	}

	score := scoring.Score(result)
	o.store.CompleteAttempt(requestID, modelID, result.Content, result.ElapsedTime, score)

	o.events.Broadcast(models.WSMessage{
		Type: "model_update",
		Payload: models.ModelUpdate{
			RequestID: requestID,
			Model:     modelID,
			Status:    models.StatusCompleted,
			Progress:  100,
			Score:     &score,
		},
	})

	return modelOutcome{modelID: modelID, score: score}
}

// selectWinner picks the model with the highest score. Ties go to the
// earlier outcome in completion order; an empty slice yields no winner.
func selectWinner(results []modelOutcome) string {
	winner := ""
	best := 0.0
	for i, r := range results {
		if i == 0 || r.score > best {
			winner = r.modelID
			best = r.score
		}
	}
	return winner
}

func preview(message string) string {
	if len(message) > 50 {
		return message[:50] + "..."
	}
	return message
}
