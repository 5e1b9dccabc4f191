package resume

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// RewriteFunc is the AI composition strategy: prompt in, rewritten resume
// text out.
type RewriteFunc func(ctx context.Context, prompt string) (string, error)

// Composer produces a job-tailored resume. When a Rewrite strategy is set
// it is tried first; any failure or empty output falls back to the
// deterministic layout, invisibly to the caller. Compose never fails.
type Composer struct {
	Rewrite RewriteFunc
}

// NewComposer wires the engine LLM as the rewrite strategy when one is
// configured, otherwise returns a deterministic-only composer.
func NewComposer() *Composer {
	if !engine.HasLLM() {
		return &Composer{}
	}
	return &Composer{Rewrite: engine.CallLLM}
}

// ComposeInput carries everything the composer needs, already extracted
// by the pipeline so composition stays side-effect free.
type ComposeInput struct {
	ResumeText string
	JobText    string
	Contact    Contact
	Sections   Sections
	Experience []Experience
	Education  []string
	Comparison Comparison
}

const rewritePrompt = `You are an expert resume writer. Rewrite the resume below so it targets the job description, without inventing experience the candidate does not have.

RESUME:
%s

JOB DESCRIPTION:
%s

SKILLS THE CANDIDATE ALREADY MATCHES: %s
SKILLS THE JOB WANTS BUT THE RESUME LACKS: %s

Rules:
1. Keep every fact truthful — reword, reorder and emphasize, never fabricate.
2. Lead with a summary tailored to this job.
3. Use sections: PROFESSIONAL SUMMARY, TECHNICAL SKILLS, PROFESSIONAL EXPERIENCE, EDUCATION.
4. Use "•" bullets with strong action verbs and concrete outcomes.
5. Weave matching skills into summary and experience bullets naturally.

Respond with valid JSON only (no markdown, no ` + "`json`" + ` block):
{"answer": "the full rewritten resume text"}`

// Compose returns the tailored resume text.
func (c *Composer) Compose(ctx context.Context, in ComposeInput) string {
	if c.Rewrite != nil {
		raw, err := c.Rewrite(ctx, buildRewritePrompt(in))
		if err != nil {
			slog.Warn("composer: rewrite failed, using deterministic layout", slog.Any("error", err))
		} else if out := parseRewriteAnswer(raw); out != "" {
			return out
		}
	}
	return composeDeterministic(in)
}

// parseRewriteAnswer unwraps the {"answer": ...} envelope. Models
// occasionally emit broken JSON or skip the envelope entirely, so a
// salvage pass and a raw fallback keep usable output.
func parseRewriteAnswer(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	var out struct {
		Answer string `json:"answer"`
	}
	if err := json.Unmarshal([]byte(raw), &out); err == nil {
		return strings.TrimSpace(out.Answer)
	}
	if answer := engine.ExtractJSONAnswer(raw); answer != "" {
		return strings.TrimSpace(answer)
	}
	return raw
}

func buildRewritePrompt(in ComposeInput) string {
	resumeLimit := engine.Cfg.MaxResumeChars
	if resumeLimit <= 0 {
		resumeLimit = 4000
	}
	jobLimit := engine.Cfg.MaxJobChars
	if jobLimit <= 0 {
		jobLimit = 3000
	}
	return fmt.Sprintf(rewritePrompt,
		engine.TruncateAtWord(in.ResumeText, resumeLimit),
		engine.TruncateAtWord(in.JobText, jobLimit),
		joinOr(in.Comparison.Matching, "none detected"),
		joinOr(in.Comparison.Missing, "none detected"),
	)
}

// composeDeterministic renders the tailored resume from extracted parts
// alone. Layout is stable so output is reproducible for identical input.
func composeDeterministic(in ComposeInput) string {
	var b strings.Builder
	rule := strings.Repeat("=", 60)

	name := in.Contact.Name
	if name == "" {
		name = FallbackName(in.ResumeText)
	}

	b.WriteString(rule + "\n")
	b.WriteString("  " + strings.ToUpper(name) + "\n")
	b.WriteString(rule + "\n")

	if line := contactLine(in.Contact); line != "" {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	writeHeading(&b, "PROFESSIONAL SUMMARY")
	b.WriteString(summaryText(in) + "\n\n")

	writeHeading(&b, "TECHNICAL SKILLS")
	for _, line := range skillLines(in.Comparison) {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	writeHeading(&b, "PROFESSIONAL EXPERIENCE")
	writeExperience(&b, in.Experience)
	b.WriteString("\n")

	if len(in.Education) > 0 {
		writeHeading(&b, "EDUCATION")
		for _, line := range in.Education {
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}

	// Additional sections carried over verbatim.
	for _, extra := range []struct {
		label   Section
		heading string
	}{
		{SectionProjects, "PROJECTS"},
		{SectionCertifications, "CERTIFICATIONS"},
		{SectionAchievements, "ACHIEVEMENTS"},
	} {
		if in.Sections.Has(extra.label) {
			writeHeading(&b, extra.heading)
			b.WriteString(in.Sections[extra.label] + "\n\n")
		}
	}

	writeHeading(&b, "OPTIMIZATION SUGGESTIONS")
	b.WriteString("Based on the job description analysis:\n")
	if len(in.Comparison.Missing) > 0 {
		b.WriteString("• Consider gaining experience with: " + strings.Join(firstN(in.Comparison.Missing, 5), ", ") + "\n")
	}
	if len(in.Comparison.Matching) > 0 {
		b.WriteString("• Emphasize your expertise in: " + strings.Join(firstN(in.Comparison.Matching, 5), ", ") + "\n")
	}
	b.WriteString("• Quantify achievements with specific metrics and results\n")
	b.WriteString("• Use action verbs and job-specific keywords\n")
	b.WriteString("• Tailor your summary to match the job requirements\n")

	return strings.TrimRight(b.String(), "\n")
}

func writeHeading(b *strings.Builder, title string) {
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("-", len(title)) + "\n")
}

// contactLine joins the present contact details with " | ".
func contactLine(c Contact) string {
	var parts []string
	for _, p := range []string{c.Email, c.Phone, c.LinkedIn, c.GitHub} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " | ")
}

// summaryText reuses an existing summary, extended with a gap sentence,
// or synthesizes one from the entry count, inferred job field and skills.
func summaryText(in ComposeInput) string {
	if in.Sections.Has(SectionSummary) {
		summary := in.Sections[SectionSummary]
		if gaps := firstN(in.Comparison.Missing, 3); len(gaps) > 0 {
			summary += " Seeking to leverage existing expertise while developing skills in " +
				strings.Join(gaps, ", ") + "."
		}
		return summary
	}

	field := inferJobField(in.JobText)
	strengths := joinOr(firstN(in.Comparison.Matching, 3), "modern technologies")

	var b strings.Builder
	fmt.Fprintf(&b, "Results-driven %s professional", field)
	if n := len(in.Experience); n > 0 {
		fmt.Fprintf(&b, " with %d %s of hands-on experience", n, plural(n, "position", "positions"))
	}
	fmt.Fprintf(&b, ". Core strengths include %s.", strengths)
	if gaps := firstN(in.Comparison.Missing, 2); len(gaps) > 0 {
		fmt.Fprintf(&b, " Actively developing skills in %s.", strings.Join(gaps, " and "))
	}
	return b.String()
}

// skillLines partitions skills into technical and additional, appending up
// to 4 job skills the resume lacks as explicit development targets.
func skillLines(cmp Comparison) []string {
	var technical, additional []string
	for _, s := range cmp.Matching {
		if isTechnicalSkill(s) {
			technical = append(technical, s)
		} else {
			additional = append(additional, s)
		}
	}

	var lines []string
	if len(technical) > 0 {
		lines = append(lines, "• Programming & Technologies: "+strings.Join(technical, ", "))
	}
	if developing := firstN(cmp.Missing, 4); len(developing) > 0 {
		marked := make([]string, len(developing))
		for i, s := range developing {
			marked[i] = s + " (Developing)"
		}
		lines = append(lines, "• Currently Developing: "+strings.Join(marked, ", "))
	}
	if len(additional) > 0 {
		lines = append(lines, "• Additional Skills: "+strings.Join(additional, ", "))
	}
	if len(lines) == 0 {
		lines = append(lines, "• [Add your technical skills here]")
	}
	return lines
}

func isTechnicalSkill(s string) bool {
	lower := strings.ToLower(s)
	for _, k := range techKeywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

func writeExperience(b *strings.Builder, entries []Experience) {
	if len(entries) == 0 {
		b.WriteString("[Your work experience will appear here]\n")
		return
	}
	for _, e := range entries {
		var head []string
		for _, p := range []string{e.Title, e.Company, e.Dates} {
			if p != "" {
				head = append(head, p)
			}
		}
		b.WriteString(strings.Join(head, " | ") + "\n")

		if len(e.Description) == 0 {
			b.WriteString("  • Contributed to team goals and project deliverables\n")
			b.WriteString("  • Applied technical skills to solve business problems\n")
			continue
		}
		for _, d := range e.Description {
			b.WriteString("  " + EnhanceBullet(d) + "\n")
		}
	}
}

// inferJobField guesses the job's field from its description for the
// synthesized summary. Defaults to "technology".
func inferJobField(jobText string) string {
	lower := strings.ToLower(jobText)
	for _, jf := range jobFieldKeywords {
		if strings.Contains(lower, jf.keyword) {
			return jf.field
		}
	}
	return "technology"
}

func firstN(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func joinOr(s []string, fallback string) string {
	if len(s) == 0 {
		return fallback
	}
	return strings.Join(s, ", ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
