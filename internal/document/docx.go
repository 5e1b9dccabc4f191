package document

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var (
	docxParaEndRe = regexp.MustCompile(`</w:p>`)
	docxTagRe     = regexp.MustCompile(`<[^>]+>`)
)

// extractDOCX reads the word/document.xml content and strips the WordprocessingML
// markup, turning paragraph ends into newlines.
func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &UnreadableError{Reason: fmt.Sprintf("docx parse failed: %v", err)}
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = docxParaEndRe.ReplaceAllString(content, "\n")
	content = docxTagRe.ReplaceAllString(content, "")
	return decodeXMLEntities(content), nil
}

func decodeXMLEntities(s string) string {
	r := strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
	)
	return r.Replace(s)
}
