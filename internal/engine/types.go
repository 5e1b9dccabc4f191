package engine

// --- Tool input types ---

type TailorInput struct {
	ResumeText     string `json:"resume_text,omitempty" jsonschema:"Plain resume text. Either this or resume_data is required"`
	ResumeData     string `json:"resume_data,omitempty" jsonschema:"Base64-encoded resume document (PDF, DOCX, HTML or plain text)"`
	ResumeMIME     string `json:"resume_mime,omitempty" jsonschema:"MIME type of resume_data (e.g. application/pdf). Sniffed from content when omitted"`
	JobDescription string `json:"job_description" jsonschema:"Full job description text to tailor the resume against"`
}

type SkillGapInput struct {
	ResumeText     string `json:"resume_text" jsonschema:"Plain resume text"`
	JobDescription string `json:"job_description" jsonschema:"Full job description text"`
}

type SectionsInput struct {
	ResumeText string `json:"resume_text" jsonschema:"Plain resume text to segment into sections and entries"`
}

type ContactInput struct {
	ResumeText string `json:"resume_text" jsonschema:"Plain resume text to extract contact details from"`
}

type ExtractTextInput struct {
	Data string `json:"data" jsonschema:"Base64-encoded document (PDF, DOCX, HTML or plain text)"`
	MIME string `json:"mime,omitempty" jsonschema:"Document MIME type. Sniffed from content when omitted"`
}

// ExtractTextOutput carries extracted plain text back to the client.
type ExtractTextOutput struct {
	Text  string `json:"text"`
	Chars int    `json:"chars"`
}
