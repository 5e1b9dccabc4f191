package resume

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// SimilarityScorer produces a semantic similarity score for two texts,
// nominally in [0, 1]. The analysis pipeline treats the score as opaque;
// a scorer error fails the whole analysis.
type SimilarityScorer interface {
	Score(ctx context.Context, a, b string) (float64, error)
}

// EmbeddingScorer scores similarity by embedding both texts through an
// embedding HTTP service and folding the vectors with cosine similarity.
type EmbeddingScorer struct {
	baseURL       string
	serviceSecret string
	http          *http.Client
}

// NewEmbeddingScorer creates an embedding scorer client.
func NewEmbeddingScorer(baseURL, serviceSecret string) *EmbeddingScorer {
	return &EmbeddingScorer{
		baseURL:       baseURL,
		serviceSecret: serviceSecret,
		http:          serviceClient(60 * time.Second),
	}
}

// Score embeds a and b in one call and returns their cosine similarity.
func (s *EmbeddingScorer) Score(ctx context.Context, a, b string) (float64, error) {
	engine.IncrSimilarityCalls()

	resp, err := postJSON(ctx, s.http, s.baseURL+"/embed", s.serviceSecret, map[string]any{
		"texts": []string{a, b},
	})
	if err != nil {
		engine.IncrSimilarityErrors()
		return 0, fmt.Errorf("similarity embed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		engine.IncrSimilarityErrors()
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("similarity embed: status %d: %s", resp.StatusCode, string(body))
	}

	var raw struct {
		Embeddings [][]float64 `json:"embeddings"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		engine.IncrSimilarityErrors()
		return 0, fmt.Errorf("similarity embed decode: %w", err)
	}
	if len(raw.Embeddings) != 2 {
		engine.IncrSimilarityErrors()
		return 0, fmt.Errorf("similarity embed: expected 2 vectors, got %d", len(raw.Embeddings))
	}

	return cosine(raw.Embeddings[0], raw.Embeddings[1]), nil
}

// cosine returns the cosine similarity of two vectors, 0 when either has
// zero magnitude or lengths differ.
func cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
