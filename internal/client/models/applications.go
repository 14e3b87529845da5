package models

import "time"

// MaxApplicationTags caps the tags attached to one application.
const MaxApplicationTags = 5

type JobApplication struct {
	ID             string            `json:"id"`
	UserID         string            `json:"user_id"`
	JobTitle       string            `json:"job_title"`
	CompanyName    string            `json:"company_name"`
	JobURL         string            `json:"job_url,omitempty"`
	JobDescription string            `json:"job_description,omitempty"`
	Status         ApplicationStatus `json:"status"`
	Notes          string            `json:"notes,omitempty"`
	SalaryRange    string            `json:"salary_range,omitempty"`
	Location       string            `json:"location,omitempty"`
	JobType        JobType           `json:"job_type,omitempty"`
	Tags           []string          `json:"tags,omitempty"`
	AppliedDate    *time.Time        `json:"applied_date,omitempty"`
	FollowUpCount  int               `json:"follow_up_count"`
	FollowUps      []FollowUp        `json:"follow_ups,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func (a JobApplication) CheckContract() error {
	if err := checkEnum("status", a.Status); err != nil {
		return err
	}
	if err := checkEnum("job_type", a.JobType); err != nil {
		return err
	}
	return CheckAll(a.FollowUps)
}

type CreateApplicationPayload struct {
	JobTitle       string            `json:"job_title" validate:"required,notblank"`
	CompanyName    string            `json:"company_name" validate:"required,notblank"`
	JobURL         string            `json:"job_url,omitempty" validate:"omitempty,url"`
	JobDescription string            `json:"job_description,omitempty"`
	Status         ApplicationStatus `json:"status,omitempty" validate:"omitempty,enum"`
	Notes          string            `json:"notes,omitempty"`
	SalaryRange    string            `json:"salary_range,omitempty"`
	Location       string            `json:"location,omitempty"`
	JobType        JobType           `json:"job_type,omitempty" validate:"omitempty,enum"`
	Tags           []string          `json:"tags,omitempty" validate:"max=5,dive,notblank"`
	AppliedDate    *time.Time        `json:"applied_date,omitempty"`
}

type CreateApplicationResponse struct {
	ID          string            `json:"id"`
	JobTitle    string            `json:"job_title"`
	CompanyName string            `json:"company_name"`
	Status      ApplicationStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}

func (r CreateApplicationResponse) CheckContract() error {
	return checkEnum("status", r.Status)
}

// UpdateApplicationPayload changes only the fields that are set.
type UpdateApplicationPayload struct {
	JobTitle       *string            `json:"job_title,omitempty" validate:"omitempty,notblank"`
	CompanyName    *string            `json:"company_name,omitempty" validate:"omitempty,notblank"`
	JobURL         *string            `json:"job_url,omitempty" validate:"omitempty,url"`
	JobDescription *string            `json:"job_description,omitempty"`
	Status         *ApplicationStatus `json:"status,omitempty" validate:"omitempty,enum"`
	Notes          *string            `json:"notes,omitempty"`
	SalaryRange    *string            `json:"salary_range,omitempty"`
	Location       *string            `json:"location,omitempty"`
	JobType        *JobType           `json:"job_type,omitempty" validate:"omitempty,enum"`
	Tags           []string           `json:"tags,omitempty" validate:"max=5,dive,notblank"`
	AppliedDate    *time.Time         `json:"applied_date,omitempty"`
}

type GetApplicationsResponse struct {
	Applications []JobApplication `json:"applications"`
}

func (r GetApplicationsResponse) CheckContract() error {
	return CheckAll(r.Applications)
}

type GetApplicationResponse struct {
	Application JobApplication `json:"application"`
}

func (r GetApplicationResponse) CheckContract() error {
	return r.Application.CheckContract()
}

type FollowUp struct {
	ID            string         `json:"id"`
	ApplicationID string         `json:"application_id"`
	FollowUpType  FollowUpType   `json:"follow_up_type"`
	Note          string         `json:"note"`
	Status        FollowUpStatus `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
}

func (f FollowUp) CheckContract() error {
	if err := checkEnum("follow_up_type", f.FollowUpType); err != nil {
		return err
	}
	return checkEnum("status", f.Status)
}

type AddFollowUpPayload struct {
	FollowUpType FollowUpType   `json:"follow_up_type" validate:"required,enum"`
	Note         string         `json:"note" validate:"required,notblank"`
	Status       FollowUpStatus `json:"status,omitempty" validate:"omitempty,enum"`
}

type AddFollowUpResponse struct {
	ID            string       `json:"id"`
	ApplicationID string       `json:"application_id"`
	FollowUpType  FollowUpType `json:"follow_up_type"`
	CreatedAt     time.Time    `json:"created_at"`
}

func (r AddFollowUpResponse) CheckContract() error {
	return checkEnum("follow_up_type", r.FollowUpType)
}
