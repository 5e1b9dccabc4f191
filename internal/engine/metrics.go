package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	AnalysisRequests atomic.Int64
	LLMCalls         atomic.Int64
	LLMErrors        atomic.Int64
	SimilarityCalls  atomic.Int64
	SimilarityErrors atomic.Int64
	NERCalls         atomic.Int64
	NERErrors        atomic.Int64
	DocumentsParsed  atomic.Int64
	DocumentErrors   atomic.Int64
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"analysis_requests": metrics.AnalysisRequests.Load(),
		"llm_calls":         metrics.LLMCalls.Load(),
		"llm_errors":        metrics.LLMErrors.Load(),
		"similarity_calls":  metrics.SimilarityCalls.Load(),
		"similarity_errors": metrics.SimilarityErrors.Load(),
		"ner_calls":         metrics.NERCalls.Load(),
		"ner_errors":        metrics.NERErrors.Load(),
		"documents_parsed":  metrics.DocumentsParsed.Load(),
		"document_errors":   metrics.DocumentErrors.Load(),
		"cache_hits":        hits,
		"cache_misses":      misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"analysis_requests",
		"llm_calls", "llm_errors",
		"similarity_calls", "similarity_errors",
		"ner_calls", "ner_errors",
		"documents_parsed", "document_errors",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the resume/ and document/ sub-packages.
func IncrAnalysisRequests() { metrics.AnalysisRequests.Add(1) }
func IncrSimilarityCalls()  { metrics.SimilarityCalls.Add(1) }
func IncrSimilarityErrors() { metrics.SimilarityErrors.Add(1) }
func IncrNERCalls()         { metrics.NERCalls.Add(1) }
func IncrNERErrors()        { metrics.NERErrors.Add(1) }
func IncrDocumentsParsed()  { metrics.DocumentsParsed.Add(1) }
func IncrDocumentErrors()   { metrics.DocumentErrors.Add(1) }

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 5*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
