package engine

import (
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/llm"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	LLMAPIKey          string
	LLMAPIKeyFallbacks []string
	LLMAPIBase         string
	LLMModel           string
	LLMTemperature     float64
	LLMMaxTokens       int

	EmbeddingURL   string        // embedding similarity service base URL
	NERURL         string        // entity recognizer service base URL; empty = entity signal disabled
	InternalSecret string        // shared secret for internal HTTP services
	ServiceTimeout time.Duration // per-request timeout for internal HTTP services

	MaxResumeChars int // prompt budget for resume text
	MaxJobChars    int // prompt budget for job description text

	CacheMaxEntries      int
	CacheCleanupInterval time.Duration

	HTTPClient *http.Client
	LLMClient  *llm.Client // nil = AI composition disabled, deterministic layout only
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages.
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}
