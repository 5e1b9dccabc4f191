package resume

import (
	"context"
	"log/slog"
	"sort"
	"strings"
)

// SkillSet is a deduplicated, case-insensitively sorted list of skills.
// Comparison is case-insensitive; original casing is kept for display.
type SkillSet []string

// Has reports whether the set contains name, ignoring case.
func (s SkillSet) Has(name string) bool {
	lower := strings.ToLower(name)
	for _, sk := range s {
		if strings.ToLower(sk) == lower {
			return true
		}
	}
	return false
}

// NewSkillSet normalizes raw skill strings into a SkillSet: trims, drops
// empties, sorts case-insensitively and removes case-insensitive
// duplicates (first form after sorting wins, so output is deterministic
// regardless of input order).
func NewSkillSet(items ...string) SkillSet {
	cleaned := make([]string, 0, len(items))
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			cleaned = append(cleaned, it)
		}
	}
	sortSkills(cleaned)

	out := make(SkillSet, 0, len(cleaned))
	seen := make(map[string]bool, len(cleaned))
	for _, it := range cleaned {
		lower := strings.ToLower(it)
		if seen[lower] {
			continue
		}
		seen[lower] = true
		out = append(out, it)
	}
	return out
}

func sortSkills(s []string) {
	sort.Slice(s, func(i, j int) bool {
		li, lj := strings.ToLower(s[i]), strings.ToLower(s[j])
		if li != lj {
			return li < lj
		}
		return s[i] < s[j]
	})
}

// Extractor derives skill sets from free text by unioning three signals:
// recognizer entities, dictionary keywords and noun-phrase candidates.
// A nil Recognizer disables the entity signal; recognizer errors skip it
// with a warning rather than failing the extraction.
type Extractor struct {
	Recognizer EntityRecognizer
}

// ExtractSkills returns the skills found in text. Never fails: the worst
// degradation is losing the entity signal.
func (e *Extractor) ExtractSkills(ctx context.Context, text string) SkillSet {
	var all []string

	if e != nil && e.Recognizer != nil {
		entities, err := e.Recognizer.Recognize(ctx, text)
		if err != nil {
			slog.Warn("skill extraction: entity recognizer unavailable, signal skipped",
				slog.Any("error", err))
		} else {
			all = append(all, entitySkills(entities)...)
		}
	}

	all = append(all, keywordSkills(text)...)
	all = append(all, phraseSkills(text)...)
	return NewSkillSet(all...)
}

// entitySkills keeps recognized entities whose label is skill-bearing and
// whose text overlaps a seed tech token.
func entitySkills(entities []Entity) []string {
	var out []string
	for _, ent := range entities {
		if !entitySkillLabels[strings.ToUpper(ent.Label)] {
			continue
		}
		lower := strings.ToLower(ent.Text)
		for _, seed := range seedTechTokens {
			if strings.Contains(lower, seed) {
				out = append(out, ent.Text)
				break
			}
		}
	}
	return out
}

// keywordSkills records every dictionary term appearing in text as a
// case-insensitive substring. Hits are reported in title case.
func keywordSkills(text string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, term := range skillDictionary {
		if strings.Contains(lower, term) {
			out = append(out, titleWords(term))
		}
	}
	return out
}

// phraseSkills keeps noun-phrase candidates that look like skills: longer
// than 2 characters and either containing an uppercase letter in the
// source text or overlapping one of the first 10 dictionary terms.
func phraseSkills(text string) []string {
	core := skillDictionary
	if len(core) > 10 {
		core = core[:10]
	}

	var out []string
	for _, phrase := range nounPhrases(text) {
		if len(phrase) <= 2 {
			continue
		}
		if hasUpper(phrase) {
			out = append(out, phrase)
			continue
		}
		lower := strings.ToLower(phrase)
		for _, term := range core {
			if strings.Contains(lower, term) {
				out = append(out, phrase)
				break
			}
		}
	}
	return out
}

// Compare matches a resume skill set against a job skill set. Every job
// skill lands in exactly one bucket; resume-only skills are ignored. Job
// casing is preserved.
func Compare(resumeSkills, jobSkills SkillSet) Comparison {
	have := make(map[string]bool, len(resumeSkills))
	for _, s := range resumeSkills {
		have[strings.ToLower(s)] = true
	}

	cmp := Comparison{Matching: []string{}, Missing: []string{}}
	for _, s := range jobSkills {
		if have[strings.ToLower(s)] {
			cmp.Matching = append(cmp.Matching, s)
		} else {
			cmp.Missing = append(cmp.Missing, s)
		}
	}
	sortSkills(cmp.Matching)
	sortSkills(cmp.Missing)
	return cmp
}

// matchPercent is the share of job skills covered by the resume, 0-100.
func matchPercent(cmp Comparison) float64 {
	total := len(cmp.Matching) + len(cmp.Missing)
	if total == 0 {
		return 0
	}
	return float64(len(cmp.Matching)) / float64(total) * 100
}

// titleWords upper-cases the first letter of every word, lower-cases the
// rest. A word starts after any non-letter, so "ci/cd" becomes "Ci/Cd".
func titleWords(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		switch {
		case isLetter && !prevLetter:
			b.WriteRune(toUpper(r))
		case isLetter:
			b.WriteRune(toLower(r))
		default:
			b.WriteRune(r)
		}
		prevLetter = isLetter
	}
	return b.String()
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r - 'A' + 'a'
	}
	return r
}

func hasUpper(s string) bool {
	return s != strings.ToLower(s)
}
