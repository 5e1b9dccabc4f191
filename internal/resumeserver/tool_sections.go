package resumeserver

import (
	"context"
	"errors"

	"github.com/anatolykoptev/go_resume/internal/engine"
	"github.com/anatolykoptev/go_resume/internal/resume"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// resume_sections is a debugging aid: it echoes what the rule-based
// extractors see without running the full pipeline.
func registerResumeSections(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_sections",
		Description: "Segment resume text into labeled sections and extract structured experience and education entries. Useful for inspecting how a resume is parsed before tailoring.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.SectionsInput) (*mcp.CallToolResult, *resume.Outline, error) {
		if input.ResumeText == "" {
			return nil, nil, errors.New("resume_text is required")
		}
		return nil, resume.BuildOutline(input.ResumeText), nil
	})
}
