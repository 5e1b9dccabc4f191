package document

import (
	"bytes"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"golang.org/x/net/html"
)

// extractHTML converts HTML to markdown, which reads well as resume plain
// text (headings and bullets survive). If conversion fails, falls back to
// a raw text-node walk.
func extractHTML(data []byte) (string, error) {
	md, err := htmltomarkdown.ConvertString(string(data))
	if err == nil && strings.TrimSpace(md) != "" {
		return md, nil
	}

	return collectText(data), nil
}

// collectText walks the parsed DOM and joins visible text nodes, skipping
// script and style subtrees.
func collectText(data []byte) string {
	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return ""
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript":
				return
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				b.WriteString(text)
				b.WriteString("\n")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return b.String()
}
