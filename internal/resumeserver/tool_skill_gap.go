package resumeserver

import (
	"context"
	"errors"

	"github.com/anatolykoptev/go_resume/internal/engine"
	"github.com/anatolykoptev/go_resume/internal/resume"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerSkillGap(server *mcp.Server, a *resume.Analyzer) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "skill_gap",
		Description: "Compare skills extracted from a resume against a job description. Returns both skill sets, the matching and missing skills, and the match percentage. No scoring or rewriting.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.SkillGapInput) (*mcp.CallToolResult, *resume.GapReport, error) {
		if input.ResumeText == "" {
			return nil, nil, errors.New("resume_text is required")
		}
		if input.JobDescription == "" {
			return nil, nil, errors.New("job_description is required")
		}

		cacheKey := engine.CacheKey("skill_gap", input.ResumeText, input.JobDescription)
		if out, ok := engine.CacheLoadJSON[*resume.GapReport](ctx, cacheKey); ok {
			return nil, out, nil
		}

		report, err := a.SkillGap(ctx, input.ResumeText, input.JobDescription)
		if err != nil {
			return nil, nil, err
		}

		engine.CacheStoreJSON(ctx, cacheKey, report)
		return nil, report, nil
	})
}
