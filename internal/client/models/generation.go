package models

type JobAnalysisPayload struct {
	JobDescription string `json:"job_description" validate:"required,notblank"`
	UserID         string `json:"user_id,omitempty"`
}

type JobAnalysisResponse struct {
	JobID                 string `json:"job_id"`
	ExtractedRequirements string `json:"extracted_requirements"`
}

type TailorOptions struct {
	TargetRole string `json:"target_role"`
	Tone       Tone   `json:"tone" validate:"required,enum"`
}

type TailorRequestPayload struct {
	UserID         string        `json:"user_id" validate:"required"`
	ResumeText     string        `json:"resume_text" validate:"required,notblank"`
	JobDescription string        `json:"job_description" validate:"required,notblank"`
	Options        TailorOptions `json:"options"`
}

type TailorResponse struct {
	TailoredResume        string `json:"tailored_resume"`
	ExtractedRequirements string `json:"extracted_requirements"`
	UsageID               string `json:"usage_id"`
}

type CoverLetterPayload struct {
	UserID         string `json:"user_id" validate:"required"`
	ResumeText     string `json:"resume_text" validate:"required,notblank"`
	JobDescription string `json:"job_description" validate:"required,notblank"`
	CompanyName    string `json:"company_name" validate:"required,notblank"`
	RoleTitle      string `json:"role_title" validate:"required,notblank"`
}

type CoverLetterResponse struct {
	CoverLetter string `json:"cover_letter"`
}

type StarStoryPayload struct {
	UserID         string `json:"user_id" validate:"required"`
	ResumeText     string `json:"resume_text" validate:"required,notblank"`
	JobDescription string `json:"job_description" validate:"required,notblank"`
	Count          int    `json:"count" validate:"min=1,max=10"`
}

type StarStoryResponse struct {
	StarStories []string `json:"star_stories"`
}
