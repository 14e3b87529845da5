package models

import "time"

type Resume struct {
	ID          string       `json:"id"`
	UserID      string       `json:"user_id"`
	Title       string       `json:"title"`
	FileName    string       `json:"file_name"`
	Content     string       `json:"content"`
	Version     int          `json:"version"`
	Status      ResumeStatus `json:"status"`
	TailorCount int          `json:"tailor_count"`
	IsDefault   bool         `json:"is_default"`
	LastUsedAt  *time.Time   `json:"last_used_at,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func (r Resume) CheckContract() error {
	return checkEnum("status", r.Status)
}

type CreateResumePayload struct {
	Title     string `json:"title" validate:"required,notblank,max=200"`
	Content   string `json:"content" validate:"required,notblank"`
	FileName  string `json:"file_name,omitempty"`
	IsDefault bool   `json:"is_default"`
}

// CreateResumeResponse is the minimal acknowledgement of POST /resumes.
type CreateResumeResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	FileName  string    `json:"file_name"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateResumePayload changes only the fields that are set.
type UpdateResumePayload struct {
	Title     *string       `json:"title,omitempty" validate:"omitempty,notblank,max=200"`
	Content   *string       `json:"content,omitempty" validate:"omitempty,notblank"`
	Status    *ResumeStatus `json:"status,omitempty" validate:"omitempty,enum"`
	IsDefault *bool         `json:"is_default,omitempty"`
}

type UpdateResumeResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Version   int       `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GetResumesResponse struct {
	Resumes []Resume `json:"resumes"`
}

func (r GetResumesResponse) CheckContract() error {
	return CheckAll(r.Resumes)
}

type GetResumeResponse struct {
	Resume Resume `json:"resume"`
}

func (r GetResumeResponse) CheckContract() error {
	return r.Resume.CheckContract()
}

type DuplicateResumePayload struct {
	NewTitle string `json:"new_title" validate:"required,notblank,max=200"`
}

type DuplicateResumeResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// AckResponse is the body of endpoints that only confirm an action.
type AckResponse struct {
	Message string `json:"message,omitempty"`
	ID      string `json:"id,omitempty"`
}
