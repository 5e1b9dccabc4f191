package resume

import (
	"regexp"
	"strings"
)

var (
	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe    = regexp.MustCompile(`(\+?1[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`)
	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	githubRe   = regexp.MustCompile(`(?i)github\.com/[\w-]+`)
)

// ExtractContact pulls contact details out of resume text. Each field is
// the first regex match in the whole text; absent details stay empty.
func ExtractContact(text string) Contact {
	c := Contact{
		Email:    emailRe.FindString(text),
		Phone:    strings.TrimSpace(phoneRe.FindString(text)),
		LinkedIn: linkedinRe.FindString(text),
		GitHub:   githubRe.FindString(text),
	}
	c.Name = extractName(text)
	return c
}

// extractName scans the first 5 non-empty lines for a plausible person
// name: at most 4 tokens, no digits, no email or URL markers.
func extractName(text string) string {
	seen := 0
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		seen++
		if seen > 5 {
			return ""
		}
		if isPlausibleName(line) {
			return line
		}
	}
	return ""
}

func isPlausibleName(line string) bool {
	if len(strings.Fields(line)) > 4 {
		return false
	}
	if strings.ContainsAny(line, "0123456789@") {
		return false
	}
	if strings.Contains(strings.ToLower(line), "http") {
		return false
	}
	return true
}

// FallbackName returns a display name when extraction found none: the
// first non-empty line that is not an obvious document header, else a
// neutral placeholder.
func FallbackName(text string) string {
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		switch strings.ToLower(strings.Trim(line, " :")) {
		case "resume", "cv", "curriculum vitae":
			continue
		}
		return line
	}
	return "Your Name"
}
