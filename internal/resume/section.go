package resume

import "strings"

// Segment splits resume text into labeled sections in a single pass.
// Lines before the first recognized header land in SectionOther. Header
// lines themselves are consumed, blank lines are dropped, and content
// lines keep their original order within each section.
func Segment(text string) Sections {
	sections := make(Sections)
	current := SectionOther

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if label, ok := matchHeader(line); ok {
			current = label
			continue
		}
		if sections[current] != "" {
			sections[current] += "\n"
		}
		sections[current] += line
	}
	return sections
}

// matchHeader reports whether line is a section header and which section
// it opens. Patterns are tried in priority order.
func matchHeader(line string) (Section, bool) {
	if len(line) >= headerMaxLen {
		return "", false
	}
	lower := strings.ToLower(line)
	for _, p := range sectionPatterns {
		if p.re.MatchString(lower) {
			return p.label, true
		}
	}
	return "", false
}
