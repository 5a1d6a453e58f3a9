package scoring

import (
	"math"
	"strings"

	"arena-backend/internal/models"
)

// Weights and normalization bounds for the response quality heuristic.
const (
	contentWeight   = 0.4
	timeWeight      = 0.3
	coherenceWeight = 0.3

	maxWords     = 100
	maxSeconds   = 30.0
	maxSentences = 10.0
)

// Score maps a gateway result to a quality score in [0, 100]. Failures
// always score 0. Pure and deterministic: same result, same score.
func Score(result models.GatewayResult) float64 {
	if !result.Success {
		return 0
	}

	words := float64(len(strings.Fields(result.Content)))
	contentScore := math.Min(words, maxWords) / maxWords

	timeScore := math.Max(0, 1-result.ElapsedTime/maxSeconds)

	// Sentence count is the number of "."-delimited segments, trailing
	// empty segment included ("Hi. There." counts 3). Kept as-is for
	// parity with the original heuristic.
	sentences := float64(len(strings.Split(result.Content, ".")))
	coherenceScore := math.Min(sentences/maxSentences, 1)

	final := contentWeight*contentScore + timeWeight*timeScore + coherenceWeight*coherenceScore
	return math.Round(final*100*100) / 100
}
