package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"arena-backend/internal/models"
)

const (
	maxTokens   = 1000
	temperature = 0.7

	refererHeader = "https://localhost:8080"
	titleHeader   = "AI Multi-Model Chat Arena"
)

// Client issues completion calls against an OpenRouter-compatible gateway.
// Every outcome is returned as a GatewayResult; Complete never returns an
// error, so per-model tasks stay uniform.
type Client struct {
	apiKey  string
	chatURL string
	client  *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		chatURL: strings.TrimRight(baseURL, "/") + "/chat/completions",
		client:  &http.Client{},
	}
}

// HasAPIKey reports whether the client was configured with a credential.
func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}

type completionPayload struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		Text    string `json:"text"`
		Content string `json:"content"`
	} `json:"choices"`
	Usage map[string]interface{} `json:"usage"`
}

// Complete issues one completion call for (modelID, message) and settles
// within the given timeout. No retries; a timeout is reported as a failure
// result with elapsed time pinned to the configured timeout.
func (c *Client) Complete(ctx context.Context, modelID, message string, timeout time.Duration) models.GatewayResult {
	if c.apiKey == "" {
		return models.GatewayResult{
			Success:      false,
			ErrorMessage: "No OpenRouter API key configured",
		}
	}

	payload := completionPayload{
		Model:       modelID,
		Messages:    []chatMessage{{Role: "user", Content: message}},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return models.GatewayResult{Success: false, ErrorMessage: err.Error()}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.chatURL, bytes.NewReader(body))
	if err != nil {
		return models.GatewayResult{Success: false, ErrorMessage: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("HTTP-Referer", refererHeader)
	req.Header.Set("X-Title", titleHeader)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			log.Printf("Request timeout for %s after %s", modelID, timeout)
			return models.GatewayResult{
				Success:      false,
				ErrorMessage: "Request timeout",
				ElapsedTime:  timeout.Seconds(),
			}
		}
		return models.GatewayResult{
			Success:      false,
			ErrorMessage: err.Error(),
			ElapsedTime:  time.Since(start).Seconds(),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		return models.GatewayResult{
			Success:      false,
			ErrorMessage: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, string(respBody)),
			ElapsedTime:  time.Since(start).Seconds(),
		}
	}

	var parsed completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return models.GatewayResult{
			Success:      false,
			ErrorMessage: err.Error(),
			ElapsedTime:  time.Since(start).Seconds(),
		}
	}

	elapsed := time.Since(start).Seconds()

	// A 200 with an unexpected shape is still a success with empty
	// content; logged, not raised.
	content := extractContent(parsed)
	if content == "" {
		log.Printf("No content found in gateway response for %s", modelID)
	}

	return models.GatewayResult{
		Success:     true,
		Content:     content,
		ElapsedTime: elapsed,
		Usage:       parsed.Usage,
	}
}

// extractContent pulls the response text out of the first choice, trying
// the message.content, text and content shapes in that order.
func extractContent(resp completionResponse) string {
	if len(resp.Choices) == 0 {
		return ""
	}
	choice := resp.Choices[0]
	if choice.Message.Content != "" {
		return choice.Message.Content
	}
	if choice.Text != "" {
		return choice.Text
	}
	return choice.Content
}
