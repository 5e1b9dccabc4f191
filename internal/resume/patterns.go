package resume

import "regexp"

// headerMaxLen is the longest a line can be and still count as a section
// header. Real headers are short; prose lines that happen to contain a
// header keyword are almost always longer.
const headerMaxLen = 50

// sectionPatterns maps header keywords to section labels. Tested in order
// against lowercased candidate lines; first match wins, so "Work Experience
// and Education" classifies as experience.
var sectionPatterns = []struct {
	label Section
	re    *regexp.Regexp
}{
	{SectionContact, regexp.MustCompile(`contact|personal|info`)},
	{SectionSummary, regexp.MustCompile(`summary|objective|profile|about`)},
	{SectionExperience, regexp.MustCompile(`experience|work|employment|career|professional`)},
	{SectionEducation, regexp.MustCompile(`education|academic|qualification|degree`)},
	{SectionSkills, regexp.MustCompile(`skills|technical|competenc|abilities`)},
	{SectionProjects, regexp.MustCompile(`projects|portfolio`)},
	{SectionCertifications, regexp.MustCompile(`certification|certificate|license`)},
	{SectionAchievements, regexp.MustCompile(`achievement|award|honor|accomplishment`)},
}

// skillDictionary is the curated skill vocabulary for the keyword signal.
// Matched as a case-insensitive substring; hits are recorded in title case.
var skillDictionary = []string{
	"python", "java", "javascript", "react", "node.js",
	"sql", "html", "css",
	"machine learning", "data analysis", "project management",
	"leadership", "communication", "teamwork", "problem solving",
	"git", "docker", "kubernetes", "aws", "azure", "gcp",
	"tensorflow", "pytorch", "pandas", "numpy",
	"fastapi", "django", "flask",
	"mongodb", "postgresql", "mysql", "redis", "elasticsearch",
	"agile", "scrum", "devops", "ci/cd",
	"testing", "debugging", "api", "rest", "graphql", "microservices",
	"cloud computing", "data science", "analytics",
}

// seedTechTokens anchor the entity signal: a recognized entity only counts
// as a skill when its text overlaps one of these.
var seedTechTokens = []string{"python", "java", "react", "aws", "google", "microsoft"}

// entitySkillLabels are the recognizer labels eligible for the entity signal.
var entitySkillLabels = map[string]bool{
	"ORG":      true,
	"PRODUCT":  true,
	"LANGUAGE": true,
	"PERSON":   true,
}

// verbSwaps upgrades weak verbs in experience bullets. Whole-word,
// case-insensitive; replacements are lowercase because the enhanced bullet
// is re-capitalized afterwards.
var verbSwaps = []struct {
	re *regexp.Regexp
	to string
}{
	{regexp.MustCompile(`(?i)\bworked\b`), "collaborated"},
	{regexp.MustCompile(`(?i)\bused\b`), "utilized"},
	{regexp.MustCompile(`(?i)\bmade\b`), "built"},
	{regexp.MustCompile(`(?i)\bdid\b`), "executed"},
	{regexp.MustCompile(`(?i)\bhelped\b`), "supported"},
	{regexp.MustCompile(`(?i)\bhandled\b`), "managed"},
	{regexp.MustCompile(`(?i)\bgot\b`), "achieved"},
	{regexp.MustCompile(`(?i)\bfixed\b`), "resolved"},
}

// techKeywords partition composed skills into the "Programming & Technologies"
// line versus "Additional Skills".
var techKeywords = []string{"python", "java", "javascript", "react", "node", "sql", "html", "css", "git"}

// experience/education line FSMs: enter on a short line containing an enter
// keyword, leave on a short line containing a leave keyword.
var (
	experienceEnter = []string{"experience", "work", "employment", "career"}
	experienceLeave = []string{"education", "skills", "projects", "certifications"}
	educationEnter  = []string{"education", "academic", "qualification", "degree"}
	educationLeave  = []string{"experience", "skills", "projects", "certifications"}
)

// jobFieldKeywords infer a rough field from job description text, used when
// a summary has to be synthesized from scratch. First match wins.
var jobFieldKeywords = []struct {
	keyword string
	field   string
}{
	{"data", "data"},
	{"frontend", "frontend development"},
	{"backend", "backend development"},
	{"devops", "infrastructure"},
	{"cloud", "cloud"},
	{"security", "security"},
	{"mobile", "mobile development"},
	{"design", "design"},
	{"manager", "management"},
	{"engineer", "software engineering"},
	{"developer", "software development"},
}

// phraseStopwords terminate a noun-phrase run in the chunker.
var phraseStopwords = map[string]bool{
	"a": true, "an": true, "the": true,
	"and": true, "or": true, "but": true,
	"of": true, "to": true, "in": true, "on": true, "for": true,
	"with": true, "at": true, "by": true, "from": true, "as": true,
	"is": true, "are": true, "was": true, "were": true, "be": true, "been": true,
	"that": true, "this": true, "these": true, "those": true,
	"it": true, "its": true, "we": true, "you": true, "i": true,
	"our": true, "your": true, "their": true, "my": true,
	"have": true, "has": true, "had": true, "will": true, "would": true,
	"can": true, "could": true, "should": true, "must": true,
	"not": true, "no": true, "all": true, "any": true, "some": true,
	"such": true, "other": true, "more": true, "most": true,
	"who": true, "what": true, "where": true, "when": true, "how": true,
	"do": true, "does": true, "did": true, "using": true, "etc": true,
}
