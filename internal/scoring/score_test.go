package scoring

import (
	"strings"
	"testing"

	"arena-backend/internal/models"
)

func TestScore_FailureIsZero(t *testing.T) {
	tests := []struct {
		name   string
		result models.GatewayResult
	}{
		{"plain failure", models.GatewayResult{Success: false, ErrorMessage: "HTTP 500: boom"}},
		{"timeout", models.GatewayResult{Success: false, ErrorMessage: "Request timeout", ElapsedTime: 30}},
		{"failure with content", models.GatewayResult{Success: false, Content: "ignored. text.", ElapsedTime: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Score(tc.result); got != 0 {
				t.Errorf("Expected 0 for failure, got %v", got)
			}
		})
	}
}

func TestScore_KnownValues(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		elapsed  float64
		expected float64
	}{
		// 4 words -> 0.016; (1-2/30)*0.3 = 0.28; 3 "."-segments -> 0.09
		{"two sentences in 2s", "Hi there. Good day.", 2, 38.6},
		// 2 words -> 0.008; (1-1/30)*0.3 = 0.29; 3 segments -> 0.09
		{"short reply in 1s", "Hi. There.", 1, 38.8},
		// empty content still scores its time component plus one segment
		{"empty content instant", "", 0, 33},
		{"slow response gets no time credit", "One. Two.", 30, 9.8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Score(models.GatewayResult{Success: true, Content: tc.content, ElapsedTime: tc.elapsed})
			if got != tc.expected {
				t.Errorf("Expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestScore_TrailingSegmentCounts(t *testing.T) {
	// "Hi. There." splits into 3 segments, trailing empty included;
	// dropping the final period removes one segment.
	withPeriod := Score(models.GatewayResult{Success: true, Content: "Hi. There.", ElapsedTime: 10})
	withoutPeriod := Score(models.GatewayResult{Success: true, Content: "Hi. There", ElapsedTime: 10})

	if withPeriod <= withoutPeriod {
		t.Errorf("Expected trailing period to raise coherence: %v vs %v", withPeriod, withoutPeriod)
	}
}

func TestScore_Bounds(t *testing.T) {
	long := strings.Repeat("word ", 150) + strings.Repeat("Sentence. ", 20)

	tests := []struct {
		name   string
		result models.GatewayResult
	}{
		{"max everything", models.GatewayResult{Success: true, Content: long, ElapsedTime: 0}},
		{"worst success", models.GatewayResult{Success: true, Content: "", ElapsedTime: 120}},
		{"negative-time guard", models.GatewayResult{Success: true, Content: "Hi.", ElapsedTime: 500}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Score(tc.result)
			if got < 0 || got > 100 {
				t.Errorf("Score out of [0,100]: %v", got)
			}
		})
	}

	if got := Score(models.GatewayResult{Success: true, Content: long, ElapsedTime: 0}); got != 100 {
		t.Errorf("Expected saturated score 100, got %v", got)
	}
}

func TestScore_Deterministic(t *testing.T) {
	result := models.GatewayResult{Success: true, Content: "Stable. Output. Here.", ElapsedTime: 3.7}

	first := Score(result)
	for i := 0; i < 10; i++ {
		if got := Score(result); got != first {
			t.Fatalf("Score not deterministic: %v then %v", first, got)
		}
	}
}
