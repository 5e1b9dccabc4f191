// Package resumeserver exposes the analysis pipeline as MCP tools, one
// file per tool. Handlers validate input, consult the cache and delegate;
// all domain logic lives in internal/resume.
package resumeserver

import (
	"github.com/anatolykoptev/go_resume/internal/resume"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all resume tools on the given MCP server:
// resume_tailor, skill_gap, resume_sections, resume_contact,
// resume_extract_text.
func RegisterTools(server *mcp.Server, a *resume.Analyzer) {
	registerResumeTailor(server, a)
	registerSkillGap(server, a)
	registerResumeSections(server)
	registerResumeContact(server)
	registerExtractText(server)
}
