package resume

import "strings"

// ExtractExperience walks resume text line by line and builds work history
// entries. Extraction starts after a short line containing an experience
// keyword and stops at the first short line announcing another section.
//
// Inside the region each line is classified in order: an entry boundary
// (contains "|", " at " or " - ") starts a new entry, a bullet extends the
// current entry's description, the first digit-bearing line fills the
// dates, anything else is free description. Entries without a title or
// company are dropped.
func ExtractExperience(text string) []Experience {
	var entries []Experience
	var cur *Experience
	inside := false

	flush := func() {
		if cur != nil && (cur.Title != "" || cur.Company != "") {
			entries = append(entries, *cur)
		}
		cur = nil
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)

		if !inside {
			if len(line) < headerMaxLen && containsAny(lower, experienceEnter) {
				inside = true
			}
			continue
		}
		if len(line) < headerMaxLen && containsAny(lower, experienceLeave) {
			flush()
			return entries
		}

		switch {
		case isEntryBoundary(line):
			flush()
			e := parseEntryBoundary(line)
			cur = &e
		case strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-"):
			if cur != nil {
				cur.Description = append(cur.Description, strings.TrimSpace(strings.TrimLeft(line, "•-")))
			}
		case cur != nil && cur.Dates == "" && containsDigit(line):
			cur.Dates = line
		case cur != nil:
			cur.Description = append(cur.Description, line)
		}
	}
	flush()
	return entries
}

// ExtractEducation collects the education region verbatim: every non-blank
// line between an education header and the next section header.
func ExtractEducation(text string) []string {
	var lines []string
	inside := false

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)

		if !inside {
			if len(line) < headerMaxLen && containsAny(lower, educationEnter) {
				inside = true
			}
			continue
		}
		if len(line) < headerMaxLen && containsAny(lower, educationLeave) {
			return lines
		}
		lines = append(lines, line)
	}
	return lines
}

// isEntryBoundary reports whether a line looks like the first line of a
// work entry rather than a continuation.
func isEntryBoundary(line string) bool {
	return strings.Contains(line, "|") ||
		strings.Contains(line, " at ") ||
		strings.Contains(line, " - ")
}

// parseEntryBoundary splits an entry's first line into title, company and
// dates. "Engineer | Acme | 2020-2023", "Engineer at Acme - 2020" and
// "Engineer - Acme - 2020" are all accepted; missing parts stay empty.
func parseEntryBoundary(line string) Experience {
	var parts []string
	switch {
	case strings.Contains(line, "|"):
		parts = strings.SplitN(line, "|", 3)
	case strings.Contains(line, " at "):
		split := strings.SplitN(line, " at ", 2)
		parts = []string{split[0]}
		parts = append(parts, strings.SplitN(split[1], " - ", 2)...)
	default:
		parts = strings.SplitN(line, " - ", 3)
	}

	var e Experience
	for i, p := range parts {
		p = strings.TrimSpace(p)
		switch i {
		case 0:
			e.Title = p
		case 1:
			e.Company = p
		case 2:
			e.Dates = p
		}
	}
	return e
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func containsDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}
