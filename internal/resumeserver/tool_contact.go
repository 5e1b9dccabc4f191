package resumeserver

import (
	"context"
	"errors"

	"github.com/anatolykoptev/go_resume/internal/engine"
	"github.com/anatolykoptev/go_resume/internal/resume"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerResumeContact(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_contact",
		Description: "Extract contact details (name, email, phone, LinkedIn, GitHub) from resume text. Missing details come back empty rather than failing.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.ContactInput) (*mcp.CallToolResult, resume.Contact, error) {
		if input.ResumeText == "" {
			return nil, resume.Contact{}, errors.New("resume_text is required")
		}
		return nil, resume.ExtractContact(input.ResumeText), nil
	})
}
