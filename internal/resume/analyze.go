package resume

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// Input validation errors, surfaced to clients as-is.
var (
	ErrEmptyResume = errors.New("resume text is empty")
	ErrEmptyJob    = errors.New("job description is empty")
	ErrNoScorer    = errors.New("similarity scorer is not configured")
)

// echoLimit caps the resume text echoed back in the analysis payload.
const echoLimit = 1000

// Analyzer runs the full resume-vs-job pipeline. The scorer is required;
// the extractor's recognizer and the composer's rewrite strategy are
// optional and degrade gracefully.
type Analyzer struct {
	Scorer    SimilarityScorer
	Extractor *Extractor
	Composer  *Composer
}

// NewAnalyzer assembles the default pipeline. recognizer may be nil.
func NewAnalyzer(scorer SimilarityScorer, recognizer EntityRecognizer) *Analyzer {
	return &Analyzer{
		Scorer:    scorer,
		Extractor: &Extractor{Recognizer: recognizer},
		Composer:  NewComposer(),
	}
}

// Analyze scores, compares and recomposes a resume against a job
// description. Fails only on empty input or a scorer error; everything
// downstream of the score degrades instead of failing.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jobText string) (*Analysis, error) {
	resumeText = engine.NormalizeNewlines(strings.TrimSpace(resumeText))
	jobText = engine.NormalizeNewlines(strings.TrimSpace(jobText))
	if resumeText == "" {
		return nil, ErrEmptyResume
	}
	if jobText == "" {
		return nil, ErrEmptyJob
	}
	if a.Scorer == nil {
		return nil, ErrNoScorer
	}
	engine.IncrAnalysisRequests()

	contact := ExtractContact(resumeText)
	sections := Segment(resumeText)
	experience := ExtractExperience(resumeText)
	education := ExtractEducation(resumeText)

	resumeSkills := a.Extractor.ExtractSkills(ctx, resumeText)
	jobSkills := a.Extractor.ExtractSkills(ctx, jobText)
	cmp := Compare(resumeSkills, jobSkills)

	var score float64
	err := engine.TrackOperation(ctx, "similarity_score", func(ctx context.Context) error {
		var err error
		score, err = a.Scorer.Score(ctx, resumeText, jobText)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("similarity scorer: %w", err)
	}

	composed := a.Composer.Compose(ctx, ComposeInput{
		ResumeText: resumeText,
		JobText:    jobText,
		Contact:    contact,
		Sections:   sections,
		Experience: experience,
		Education:  education,
		Comparison: cmp,
	})

	return &Analysis{
		SimilarityScore: score,
		ResumeText:      engine.TruncateRunes(resumeText, echoLimit, "..."),
		ResumeSkills:    resumeSkills,
		JobSkills:       jobSkills,
		MatchingSkills:  cmp.Matching,
		MissingSkills:   cmp.Missing,
		Recommendations: buildRecommendations(score, cmp),
		ComposedResume:  composed,
		Stats: AnalysisStats{
			TotalResumeSkills:    len(resumeSkills),
			TotalJobSkills:       len(jobSkills),
			SkillMatchPercentage: matchPercent(cmp),
		},
	}, nil
}

// SkillGap runs extraction and comparison only, no scoring or composition.
func (a *Analyzer) SkillGap(ctx context.Context, resumeText, jobText string) (*GapReport, error) {
	resumeText = engine.NormalizeNewlines(strings.TrimSpace(resumeText))
	jobText = engine.NormalizeNewlines(strings.TrimSpace(jobText))
	if resumeText == "" {
		return nil, ErrEmptyResume
	}
	if jobText == "" {
		return nil, ErrEmptyJob
	}

	resumeSkills := a.Extractor.ExtractSkills(ctx, resumeText)
	jobSkills := a.Extractor.ExtractSkills(ctx, jobText)
	cmp := Compare(resumeSkills, jobSkills)

	return &GapReport{
		ResumeSkills:         resumeSkills,
		JobSkills:            jobSkills,
		MatchingSkills:       cmp.Matching,
		MissingSkills:        cmp.Missing,
		SkillMatchPercentage: matchPercent(cmp),
	}, nil
}

// BuildOutline runs the rule-based extractors without collaborators. Used
// by the introspection tool and handy in tests.
func BuildOutline(resumeText string) *Outline {
	resumeText = engine.NormalizeNewlines(resumeText)
	sections := Segment(resumeText)
	echo := make(map[string]string, len(sections))
	for label, content := range sections {
		echo[string(label)] = content
	}
	return &Outline{
		Contact:    ExtractContact(resumeText),
		Sections:   echo,
		Experience: ExtractExperience(resumeText),
		Education:  ExtractEducation(resumeText),
	}
}

// Recommendation thresholds on the similarity score.
const (
	lowSimilarity  = 0.70
	highSimilarity = 0.85
)

// buildRecommendations turns the score and comparison into actionable
// advice. A weak score earns keyword suggestions, gaps list the top
// missing skills, a strong score earns a congratulation. The buckets are
// independent so a strong resume with gaps still sees them.
func buildRecommendations(score float64, cmp Comparison) []string {
	var recs []string
	if score < lowSimilarity {
		recs = append(recs,
			"Consider adding more relevant keywords from the job description",
			"Highlight experiences that match the job requirements",
		)
	}
	if len(cmp.Missing) > 0 {
		recs = append(recs, "Consider adding these skills: "+strings.Join(firstN(cmp.Missing, 5), ", "))
	}
	if score >= highSimilarity {
		recs = append(recs, "Excellent match! Your resume aligns well with the job requirements")
	}
	return recs
}
