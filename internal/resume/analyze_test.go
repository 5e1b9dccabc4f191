package resume

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubScorer struct {
	score float64
	err   error
	calls int
}

func (s *stubScorer) Score(_ context.Context, _, _ string) (float64, error) {
	s.calls++
	return s.score, s.err
}

const testResume = `Jane Smith
jane@example.com
(555) 123-4567

SUMMARY
Backend engineer focused on reliability.

EXPERIENCE
Senior Engineer | Acme Corp | 2020-2023
• worked on the billing platform using Python and PostgreSQL

EDUCATION
BSc Computer Science, MIT

SKILLS
Python, Docker, SQL`

const testJob = `We are hiring a backend engineer.
Requirements: Python, Kubernetes, SQL and experience with CI/CD.`

func newTestAnalyzer(score float64, err error) (*Analyzer, *stubScorer) {
	scorer := &stubScorer{score: score, err: err}
	return &Analyzer{
		Scorer:    scorer,
		Extractor: &Extractor{},
		Composer:  &Composer{},
	}, scorer
}

func TestAnalyze(t *testing.T) {
	a, scorer := newTestAnalyzer(0.78, nil)

	got, err := a.Analyze(context.Background(), testResume, testJob)
	require.NoError(t, err)
	require.Equal(t, 1, scorer.calls)

	assert.Equal(t, 0.78, got.SimilarityScore)
	assert.Contains(t, got.ResumeSkills, "Python")
	assert.Contains(t, got.JobSkills, "Kubernetes")
	assert.Contains(t, got.MatchingSkills, "Python")
	assert.Contains(t, got.MissingSkills, "Kubernetes")
	assert.NotEmpty(t, got.ComposedResume)
	assert.Equal(t, len(got.ResumeSkills), got.Stats.TotalResumeSkills)
	assert.Equal(t, len(got.JobSkills), got.Stats.TotalJobSkills)
	assert.InDelta(t,
		float64(len(got.MatchingSkills))/float64(len(got.JobSkills))*100,
		got.Stats.SkillMatchPercentage, 0.001)
}

func TestAnalyzeValidation(t *testing.T) {
	a, _ := newTestAnalyzer(0.5, nil)
	ctx := context.Background()

	_, err := a.Analyze(ctx, "", testJob)
	assert.ErrorIs(t, err, ErrEmptyResume)

	_, err = a.Analyze(ctx, "   \n ", testJob)
	assert.ErrorIs(t, err, ErrEmptyResume)

	_, err = a.Analyze(ctx, testResume, "")
	assert.ErrorIs(t, err, ErrEmptyJob)
}

func TestAnalyzeScorerFailureIsFatal(t *testing.T) {
	scoreErr := errors.New("embedding service down")
	a, _ := newTestAnalyzer(0, scoreErr)

	_, err := a.Analyze(context.Background(), testResume, testJob)
	require.Error(t, err)
	assert.ErrorIs(t, err, scoreErr)
}

func TestAnalyzeNoScorer(t *testing.T) {
	a := &Analyzer{Extractor: &Extractor{}, Composer: &Composer{}}
	_, err := a.Analyze(context.Background(), testResume, testJob)
	assert.ErrorIs(t, err, ErrNoScorer)
}

func TestAnalyzeRecognizerFailureDegrades(t *testing.T) {
	a, _ := newTestAnalyzer(0.75, nil)
	a.Extractor = &Extractor{Recognizer: &stubRecognizer{err: errors.New("down")}}

	got, err := a.Analyze(context.Background(), testResume, testJob)
	require.NoError(t, err)
	assert.Contains(t, got.ResumeSkills, "Python", "keyword signal survives recognizer outage")
}

func TestAnalyzeIdempotent(t *testing.T) {
	a, _ := newTestAnalyzer(0.8, nil)
	ctx := context.Background()

	first, err := a.Analyze(ctx, testResume, testJob)
	require.NoError(t, err)
	second, err := a.Analyze(ctx, testResume, testJob)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAnalyzeEchoTruncated(t *testing.T) {
	a, _ := newTestAnalyzer(0.8, nil)
	long := testResume + "\n" + strings.Repeat("x", 2000)

	got, err := a.Analyze(context.Background(), long, testJob)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(got.ResumeText, "..."))
	assert.LessOrEqual(t, len([]rune(got.ResumeText)), echoLimit+3)
}

func TestBuildRecommendations(t *testing.T) {
	gaps := Comparison{Missing: []string{"Kubernetes", "Terraform"}}
	noGaps := Comparison{}

	tests := []struct {
		name         string
		score        float64
		cmp          Comparison
		wantKeywords bool
		wantGapLine  bool
		wantPraise   bool
	}{
		{"weak score", 0.69, gaps, true, true, false},
		{"at low threshold", 0.70, gaps, false, true, false},
		{"mid score no gaps", 0.80, noGaps, false, false, false},
		{"strong score", 0.85, noGaps, false, false, true},
		{"strong score with gaps", 0.90, gaps, false, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs := strings.Join(buildRecommendations(tt.score, tt.cmp), "\n")
			assert.Equal(t, tt.wantKeywords, strings.Contains(recs, "relevant keywords"))
			assert.Equal(t, tt.wantGapLine, strings.Contains(recs, "Consider adding these skills"))
			assert.Equal(t, tt.wantPraise, strings.Contains(recs, "Excellent match"))
		})
	}
}

func TestBuildRecommendationsTopFive(t *testing.T) {
	cmp := Comparison{Missing: []string{"a1", "b2", "c3", "d4", "e5", "f6", "g7"}}
	recs := buildRecommendations(0.75, cmp)
	require.Len(t, recs, 1)
	assert.Contains(t, recs[0], "e5")
	assert.NotContains(t, recs[0], "f6")
}

func TestBuildOutline(t *testing.T) {
	out := BuildOutline(testResume)

	assert.Equal(t, "Jane Smith", out.Contact.Name)
	assert.Equal(t, "jane@example.com", out.Contact.Email)
	require.Len(t, out.Experience, 1)
	assert.Equal(t, "Acme Corp", out.Experience[0].Company)
	assert.Equal(t, []string{"BSc Computer Science, MIT"}, out.Education)
	assert.Contains(t, out.Sections["skills"], "Python")
}

func TestSkillGap(t *testing.T) {
	a, scorer := newTestAnalyzer(0.5, nil)

	got, err := a.SkillGap(context.Background(), testResume, testJob)
	require.NoError(t, err)

	assert.Zero(t, scorer.calls, "skill gap must not score")
	assert.Contains(t, got.MatchingSkills, "Python")
	assert.Contains(t, got.MissingSkills, "Kubernetes")
	assert.InDelta(t,
		float64(len(got.MatchingSkills))/float64(len(got.JobSkills))*100,
		got.SkillMatchPercentage, 0.001)

	_, err = a.SkillGap(context.Background(), "", testJob)
	assert.ErrorIs(t, err, ErrEmptyResume)
}
