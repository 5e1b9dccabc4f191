// go_resume — Resume Tailoring MCP server.
//
// Ingests resume text (or an uploaded PDF/DOCX/HTML document) and a job
// description, structures the resume with rule-based heuristics, compares
// extracted skill sets, scores semantic similarity, and recomposes the
// resume tailored to the job. Runs as HTTP MCP server or stdio transport.
package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-kit/llm"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_resume/internal/engine"
	"github.com/anatolykoptev/go_resume/internal/resume"
	"github.com/anatolykoptev/go_resume/internal/resumeserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	analyzer := initEngine()

	slog.Info("starting go_resume",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_resume",
		Version: version,
	}, nil)

	resumeserver.RegisterTools(server, analyzer)
	slog.Info("tools registered", slog.Int("count", 5))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_resume",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 120 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() *resume.Analyzer {
	c := engine.Config{
		LLMAPIKey:            env.Str("LLM_API_KEY", ""),
		LLMAPIKeyFallbacks:   env.List("LLM_API_KEY_FALLBACKS", ""),
		LLMAPIBase:           env.Str("LLM_API_BASE", "https://generativelanguage.googleapis.com/v1beta/openai"),
		LLMModel:             env.Str("LLM_MODEL", "gemini-2.5-flash"),
		LLMTemperature:       env.Float("LLM_TEMPERATURE", 0.2),
		LLMMaxTokens:         env.Int("LLM_MAX_TOKENS", 8192),
		EmbeddingURL:         env.Str("EMBEDDING_URL", "http://127.0.0.1:8895"),
		NERURL:               env.Str("NER_URL", ""),
		InternalSecret:       env.Str("INTERNAL_SERVICE_SECRET", ""),
		ServiceTimeout:       env.Duration("SERVICE_TIMEOUT", 30*time.Second),
		MaxResumeChars:       env.Int("MAX_RESUME_CHARS", 4000),
		MaxJobChars:          env.Int("MAX_JOB_CHARS", 3000),
		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
	}
	c.HTTPClient = &http.Client{
		Timeout: c.ServiceTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        20,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     60 * time.Second,
		},
	}

	if c.LLMAPIKey != "" {
		c.LLMClient = llm.NewClient(c.LLMAPIBase, c.LLMAPIKey, c.LLMModel,
			llm.WithFallbackKeys(c.LLMAPIKeyFallbacks),
			llm.WithMaxTokens(c.LLMMaxTokens),
			llm.WithTemperature(c.LLMTemperature),
			llm.WithHTTPClient(&http.Client{Timeout: 60 * time.Second}),
		)
	} else {
		slog.Warn("no LLM API key, composing resumes deterministically")
	}

	engine.Init(c)

	cacheTTL := env.Duration("CACHE_TTL", 15*time.Minute)
	engine.InitCache(env.Str("REDIS_URL", ""), cacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)

	scorer := resume.NewEmbeddingScorer(c.EmbeddingURL, c.InternalSecret)
	slog.Info("embedding scorer configured", slog.String("url", c.EmbeddingURL))

	var recognizer resume.EntityRecognizer
	if c.NERURL != "" {
		recognizer = resume.NewHTTPRecognizer(c.NERURL, c.InternalSecret)
		slog.Info("entity recognizer configured", slog.String("url", c.NERURL))
	} else {
		slog.Info("entity recognizer disabled, skill extraction uses keyword and phrase signals only")
	}

	return resume.NewAnalyzer(scorer, recognizer)
}
