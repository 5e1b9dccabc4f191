package resume

// Section labels a segmented region of resume text.
type Section string

const (
	SectionContact        Section = "contact"
	SectionSummary        Section = "summary"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionProjects       Section = "projects"
	SectionCertifications Section = "certifications"
	SectionAchievements   Section = "achievements"
	SectionOther          Section = "other"
)

// Sections maps section labels to their newline-joined content.
type Sections map[Section]string

// Has reports whether the section was detected with non-empty content.
func (s Sections) Has(label Section) bool {
	return s[label] != ""
}

// Contact holds extracted contact details. Zero-value fields mean the
// detail was not found; extraction itself never fails.
type Contact struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// Experience is a single work history entry.
type Experience struct {
	Title       string   `json:"title,omitempty"`
	Company     string   `json:"company,omitempty"`
	Dates       string   `json:"dates,omitempty"`
	Description []string `json:"description,omitempty"`
}

// Comparison is the result of matching a resume skill set against a job
// skill set. Both slices are subsets of the job skills, preserve the job's
// casing, and are sorted case-insensitively.
type Comparison struct {
	Matching []string `json:"matching_skills"`
	Missing  []string `json:"missing_skills"`
}

// AnalysisStats summarizes skill counts for the analysis payload.
type AnalysisStats struct {
	TotalResumeSkills    int     `json:"total_resume_skills"`
	TotalJobSkills       int     `json:"total_job_skills"`
	SkillMatchPercentage float64 `json:"skill_match_percentage"`
}

// Analysis is the full output of the tailoring pipeline.
type Analysis struct {
	SimilarityScore float64       `json:"similarity_score"`
	ResumeText      string        `json:"resume_text"`
	ResumeSkills    []string      `json:"resume_skills"`
	JobSkills       []string      `json:"job_skills"`
	MatchingSkills  []string      `json:"matching_skills"`
	MissingSkills   []string      `json:"missing_skills"`
	Recommendations []string      `json:"recommendations"`
	ComposedResume  string        `json:"composed_resume"`
	Stats           AnalysisStats `json:"analysis"`
}

// GapReport is the output of the skills-only comparison.
type GapReport struct {
	ResumeSkills         []string `json:"resume_skills"`
	JobSkills            []string `json:"job_skills"`
	MatchingSkills       []string `json:"matching_skills"`
	MissingSkills        []string `json:"missing_skills"`
	SkillMatchPercentage float64  `json:"skill_match_percentage"`
}

// Outline is the structured echo of the rule-based extractors.
type Outline struct {
	Contact    Contact           `json:"contact"`
	Sections   map[string]string `json:"sections"`
	Experience []Experience      `json:"experience"`
	Education  []string          `json:"education"`
}

// Entity is a named entity returned by the recognizer.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}
