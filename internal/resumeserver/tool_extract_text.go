package resumeserver

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/anatolykoptev/go_resume/internal/document"
	"github.com/anatolykoptev/go_resume/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerExtractText(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resume_extract_text",
		Description: "Extract plain text from an uploaded document (PDF, DOCX, HTML or plain text, base64-encoded). Fails on corrupted, password-protected or image-only documents.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.ExtractTextInput) (*mcp.CallToolResult, engine.ExtractTextOutput, error) {
		if input.Data == "" {
			return nil, engine.ExtractTextOutput{}, errors.New("data is required")
		}
		raw, err := base64.StdEncoding.DecodeString(input.Data)
		if err != nil {
			return nil, engine.ExtractTextOutput{}, fmt.Errorf("data: invalid base64: %w", err)
		}

		text, err := document.ExtractText(input.MIME, raw)
		if err != nil {
			return nil, engine.ExtractTextOutput{}, err
		}
		return nil, engine.ExtractTextOutput{Text: text, Chars: utf8.RuneCountInString(text)}, nil
	})
}
