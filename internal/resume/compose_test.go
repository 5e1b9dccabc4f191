package resume

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleComposeInput() ComposeInput {
	return ComposeInput{
		ResumeText: "Jane Smith\njane@example.com",
		JobText:    "Backend engineer role using Python and Kubernetes",
		Contact: Contact{
			Name:     "Jane Smith",
			Email:    "jane@example.com",
			Phone:    "(555) 123-4567",
			LinkedIn: "linkedin.com/in/janesmith",
		},
		Sections: Sections{
			SectionSummary: "Backend engineer focused on reliability.",
		},
		Experience: []Experience{
			{Title: "Engineer", Company: "Acme", Dates: "2020-2023", Description: []string{"worked on billing"}},
			{Title: "Intern", Company: "Initech"},
		},
		Education:  []string{"BSc Computer Science, MIT"},
		Comparison: Comparison{Matching: []string{"Python", "Sql"}, Missing: []string{"Kubernetes", "Terraform"}},
	}
}

func TestComposeDeterministicLayout(t *testing.T) {
	out := composeDeterministic(sampleComposeInput())

	assert.Contains(t, out, strings.Repeat("=", 60))
	assert.Contains(t, out, "  JANE SMITH")
	assert.Contains(t, out, "jane@example.com | (555) 123-4567 | linkedin.com/in/janesmith")
	assert.Contains(t, out, "PROFESSIONAL SUMMARY")
	assert.Contains(t, out, "TECHNICAL SKILLS")
	assert.Contains(t, out, "PROFESSIONAL EXPERIENCE")
	assert.Contains(t, out, "EDUCATION")
	assert.Contains(t, out, "BSc Computer Science, MIT")
	assert.Contains(t, out, "OPTIMIZATION SUGGESTIONS")
	assert.Contains(t, out, "Quantify achievements with specific metrics and results")
}

func TestComposeDeterministicIsStable(t *testing.T) {
	in := sampleComposeInput()
	assert.Equal(t, composeDeterministic(in), composeDeterministic(in))
}

func TestComposeSummaryGapSentence(t *testing.T) {
	out := composeDeterministic(sampleComposeInput())
	assert.Contains(t, out, "Backend engineer focused on reliability.")
	assert.Contains(t, out, "developing skills in Kubernetes, Terraform")
}

func TestComposeSynthesizedSummary(t *testing.T) {
	in := sampleComposeInput()
	in.Sections = Sections{}

	out := composeDeterministic(in)
	assert.Contains(t, out, "Results-driven")
	assert.Contains(t, out, "2 positions")
	assert.Contains(t, out, "Python")
}

func TestComposeEnhancesBullets(t *testing.T) {
	out := composeDeterministic(sampleComposeInput())
	assert.Contains(t, out, "• Collaborated on billing")
	assert.NotContains(t, out, "worked on billing")
}

func TestComposeFillerBulletsForEmptyEntries(t *testing.T) {
	out := composeDeterministic(sampleComposeInput())
	// The Intern entry has no description.
	assert.Contains(t, out, "Contributed to team goals")
	assert.Contains(t, out, "Applied technical skills")
}

func TestComposeDevelopingMarkers(t *testing.T) {
	in := sampleComposeInput()
	in.Comparison.Missing = []string{"A", "B", "C", "D", "E", "F"}

	out := composeDeterministic(in)
	require.Contains(t, out, "(Developing)")
	assert.Equal(t, 4, strings.Count(out, "(Developing)"), "development targets capped at 4")
}

func TestComposeSkillPartition(t *testing.T) {
	in := sampleComposeInput()
	in.Comparison = Comparison{Matching: []string{"Python", "Leadership"}}

	out := composeDeterministic(in)
	assert.Contains(t, out, "• Programming & Technologies: Python")
	assert.Contains(t, out, "• Additional Skills: Leadership")
}

func TestComposeNoSkills(t *testing.T) {
	in := sampleComposeInput()
	in.Comparison = Comparison{}

	out := composeDeterministic(in)
	assert.Contains(t, out, "[Add your technical skills here]")
}

func TestComposeFallbackNameWhenContactEmpty(t *testing.T) {
	in := sampleComposeInput()
	in.Contact = Contact{}
	in.ResumeText = "Resume\nJohn Q Public\nmore text"

	out := composeDeterministic(in)
	assert.Contains(t, out, "JOHN Q PUBLIC")
}

func TestComposeVerbatimExtraSections(t *testing.T) {
	in := sampleComposeInput()
	in.Sections[SectionProjects] = "Side project: static site generator"
	in.Sections[SectionCertifications] = "CKA"

	out := composeDeterministic(in)
	assert.Contains(t, out, "PROJECTS")
	assert.Contains(t, out, "Side project: static site generator")
	assert.Contains(t, out, "CERTIFICATIONS")
	assert.Contains(t, out, "CKA")
}

func TestComposeUsesRewriteWhenAvailable(t *testing.T) {
	c := &Composer{Rewrite: func(_ context.Context, prompt string) (string, error) {
		assert.Contains(t, prompt, "JOB DESCRIPTION")
		return `{"answer": "AI TAILORED RESUME"}`, nil
	}}

	out := c.Compose(context.Background(), sampleComposeInput())
	assert.Equal(t, "AI TAILORED RESUME", out)
}

func TestParseRewriteAnswer(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"valid envelope", `{"answer": "rewritten text"}`, "rewritten text"},
		{"malformed json salvaged", `{"answer": "line one
line two"}`, "line one\nline two"},
		{"bare text passes through", "SUMMARY\nplain resume text", "SUMMARY\nplain resume text"},
		{"empty answer", `{"answer": ""}`, ""},
		{"blank output", "  \n ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRewriteAnswer(tt.raw))
		})
	}
}

func TestComposeFallsBackOnRewriteError(t *testing.T) {
	c := &Composer{Rewrite: func(_ context.Context, _ string) (string, error) {
		return "", errors.New("model overloaded")
	}}

	out := c.Compose(context.Background(), sampleComposeInput())
	assert.Contains(t, out, "  JANE SMITH", "deterministic layout expected after rewrite failure")
}

func TestComposeFallsBackOnEmptyRewrite(t *testing.T) {
	c := &Composer{Rewrite: func(_ context.Context, _ string) (string, error) {
		return "   \n", nil
	}}

	out := c.Compose(context.Background(), sampleComposeInput())
	assert.Contains(t, out, "OPTIMIZATION SUGGESTIONS")
}

func TestInferJobField(t *testing.T) {
	tests := []struct{ text, want string }{
		{"We need a data pipeline wizard", "data"},
		{"Senior frontend developer", "frontend development"},
		{"Great devops culture", "infrastructure"},
		{"Quantum basket weaving", "technology"},
	}
	for _, tt := range tests {
		if got := inferJobField(tt.text); got != tt.want {
			t.Errorf("inferJobField(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
