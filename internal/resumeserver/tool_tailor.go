package resumeserver

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/anatolykoptev/go_resume/internal/document"
	"github.com/anatolykoptev/go_resume/internal/engine"
	"github.com/anatolykoptev/go_resume/internal/resume"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerResumeTailor(server *mcp.Server, a *resume.Analyzer) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_tailor",
		Description: "Analyze a resume against a job description and produce a job-tailored rewrite. Returns similarity score, extracted resume/job skills, matching and missing skills, recommendations, and the recomposed resume. Accepts plain text or a base64 document (PDF, DOCX, HTML).",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.TailorInput) (*mcp.CallToolResult, *resume.Analysis, error) {
		resumeText, err := resolveResumeText(input)
		if err != nil {
			return nil, nil, err
		}
		if input.JobDescription == "" {
			return nil, nil, errors.New("job_description is required")
		}

		cacheKey := engine.CacheKey("resume_tailor", resumeText, input.JobDescription)
		if out, ok := engine.CacheLoadJSON[*resume.Analysis](ctx, cacheKey); ok {
			return nil, out, nil
		}

		result, err := a.Analyze(ctx, resumeText, input.JobDescription)
		if err != nil {
			return nil, nil, err
		}

		engine.CacheStoreJSON(ctx, cacheKey, result)
		return nil, result, nil
	})
}

// resolveResumeText prefers inline text and falls back to decoding and
// extracting an uploaded document.
func resolveResumeText(input engine.TailorInput) (string, error) {
	if input.ResumeText != "" {
		return input.ResumeText, nil
	}
	if input.ResumeData == "" {
		return "", errors.New("resume_text or resume_data is required")
	}
	data, err := base64.StdEncoding.DecodeString(input.ResumeData)
	if err != nil {
		return "", fmt.Errorf("resume_data: invalid base64: %w", err)
	}
	text, err := document.ExtractText(input.ResumeMIME, data)
	if err != nil {
		return "", err
	}
	return text, nil
}
