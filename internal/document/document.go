// Package document turns uploaded resume files into plain text.
// Supported formats: PDF, DOCX, HTML and plain text. Extraction that
// yields no usable text fails with *UnreadableError so callers can
// distinguish a bad document from an infrastructure problem.
package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// MIME types accepted by ExtractText.
const (
	MIMEPlain = "text/plain"
	MIMEHTML  = "text/html"
	MIMEPDF   = "application/pdf"
	MIMEDOCX  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// UnreadableError reports a document whose text could not be extracted:
// corrupted, password-protected, image-only or empty.
type UnreadableError struct {
	Reason string
}

func (e *UnreadableError) Error() string {
	return "document unreadable: " + e.Reason
}

// ExtractText extracts plain text from a document. An empty mime is
// sniffed from the content. The result has normalized newlines and is
// never blank: blank extractions return *UnreadableError.
func ExtractText(mime string, data []byte) (string, error) {
	if len(data) == 0 {
		engine.IncrDocumentErrors()
		return "", &UnreadableError{Reason: "empty document"}
	}
	if mime == "" {
		mime = Sniff(data)
	}

	var (
		text string
		err  error
	)
	switch normalizeMIME(mime) {
	case MIMEPlain:
		text = string(data)
	case MIMEHTML:
		text, err = extractHTML(data)
	case MIMEPDF:
		text, err = extractPDF(data)
	case MIMEDOCX:
		text, err = extractDOCX(data)
	default:
		engine.IncrDocumentErrors()
		return "", &UnreadableError{Reason: fmt.Sprintf("unsupported document type %q", mime)}
	}
	if err != nil {
		engine.IncrDocumentErrors()
		return "", err
	}

	text = strings.TrimSpace(engine.NormalizeNewlines(text))
	if text == "" {
		engine.IncrDocumentErrors()
		return "", &UnreadableError{Reason: "no text content extracted"}
	}

	engine.IncrDocumentsParsed()
	return text, nil
}

// Sniff guesses a document's MIME type from magic bytes. DOCX files are
// zip archives, so the zip signature maps to DOCX here.
func Sniff(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte("%PDF-")):
		return MIMEPDF
	case bytes.HasPrefix(data, []byte("PK\x03\x04")):
		return MIMEDOCX
	case looksLikeHTML(data):
		return MIMEHTML
	default:
		return MIMEPlain
	}
}

func looksLikeHTML(data []byte) bool {
	head := data
	if len(head) > 256 {
		head = head[:256]
	}
	s := strings.ToLower(string(bytes.TrimSpace(head)))
	return strings.HasPrefix(s, "<!doctype html") ||
		strings.HasPrefix(s, "<html") ||
		strings.Contains(s, "<body")
}

// normalizeMIME drops parameters ("text/html; charset=utf-8") and maps
// legacy aliases.
func normalizeMIME(mime string) string {
	mime = strings.ToLower(strings.TrimSpace(mime))
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = strings.TrimSpace(mime[:i])
	}
	switch mime {
	case "application/msword", "application/docx":
		return MIMEDOCX
	case "text/htm", "application/xhtml+xml":
		return MIMEHTML
	case "text", "text/txt", "text/markdown":
		return MIMEPlain
	}
	return mime
}
