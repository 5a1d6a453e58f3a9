package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"arena-backend/internal/models"
	"arena-backend/internal/orchestrator"
	"arena-backend/internal/store"
)

type completionClient interface {
	HasAPIKey() bool
	Complete(ctx context.Context, modelID, message string, timeout time.Duration) models.GatewayResult
}

type ChatHandler struct {
	store   *store.RequestStore
	orch    *orchestrator.Orchestrator
	gateway completionClient
	catalog models.Catalog
}

func NewChatHandler(requestStore *store.RequestStore, orch *orchestrator.Orchestrator, gateway completionClient, catalog models.Catalog) *ChatHandler {
	return &ChatHandler{
		store:   requestStore,
		orch:    orch,
		gateway: gateway,
		catalog: catalog,
	}
}

// HandleChat accepts a chat message and kicks off multi-model processing.
// The response returns as soon as the request and its pending attempts are
// recorded; model calls run in the background.
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Message is required"})
		return
	}

	requestID, modelIDs, err := h.orch.HandleChatMessage(req.Message)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Message is required"})
		return
	}

	writeJSON(w, http.StatusOK, models.ChatAcceptedResponse{
		RequestID: requestID,
		Message:   "Processing started",
		Models:    modelIDs,
	})
}

// GetStatus returns the current snapshot of a request, or an empty object
// for an unknown id. Polling this while models are still running is how
// clients without a websocket observe progress.
func (h *ChatHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	requestID, err := uuid.Parse(chi.URLParam(r, "requestID"))
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{})
		return
	}

	request, ok := h.store.GetRequest(requestID)
	if !ok {
		writeJSON(w, http.StatusOK, map[string]interface{}{})
		return
	}

	writeJSON(w, http.StatusOK, request)
}

// GetResult returns the final projection of a completed request. Requests
// still processing get a 400 so clients keep polling.
func (h *ChatHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	requestID, err := uuid.Parse(chi.URLParam(r, "requestID"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Request not completed yet"})
		return
	}

	request, ok := h.store.GetRequest(requestID)
	if !ok || request.Status != models.StatusCompleted {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Request not completed yet"})
		return
	}

	results := make([]models.ModelResult, 0, len(request.Models))
	for _, cfg := range h.catalog {
		attempt, ok := request.Models[cfg.ID]
		if !ok || attempt.Status != models.StatusCompleted {
			continue
		}
		results = append(results, models.ModelResult{
			ModelName:   cfg.ID,
			DisplayName: cfg.DisplayName,
			Category:    cfg.Category,
			Response:    attempt.Response,
			ElapsedTime: attempt.ElapsedTime,
			Score:       attempt.Score,
		})
	}

	writeJSON(w, http.StatusOK, models.RequestResult{
		RequestID:         request.ID,
		UserMessage:       request.UserMessage,
		WinnerModel:       request.WinnerModel,
		WinnerDisplayName: h.catalog.DisplayName(request.WinnerModel),
		Results:           results,
		TotalTime:         request.TotalTime,
		AllScores:         request.AllScores,
	})
}

// DebugTest reports gateway credential status and, when a key is present,
// probes the first free model with a short timeout.
func (h *ChatHandler) DebugTest(w http.ResponseWriter, r *http.Request) {
	keyStatus := "missing"
	if h.gateway.HasAPIKey() {
		keyStatus = "set"
	}

	info := map[string]interface{}{
		"api_key_status":     keyStatus,
		"available_models":   h.catalog.IDs(),
		"client_initialized": h.gateway.HasAPIKey(),
	}

	if h.gateway.HasAPIKey() {
		if testModel, ok := h.catalog.FirstInCategory("free"); ok {
			result := h.gateway.Complete(r.Context(), testModel.ID, "Hello, test message", 10*time.Second)

			testResponse := map[string]interface{}{
				"model":          testModel.ID,
				"success":        result.Success,
				"content_length": len(result.Content),
				"error":          result.ErrorMessage,
				"elapsed_time":   result.ElapsedTime,
			}
			if result.Content != "" {
				preview := result.Content
				if len(preview) > 100 {
					preview = preview[:100]
				}
				testResponse["content_preview"] = preview
			}
			info["test_response"] = testResponse
		}
	}

	writeJSON(w, http.StatusOK, info)
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
