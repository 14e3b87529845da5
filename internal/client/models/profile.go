package models

import "time"

type ProfileData struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	FullName         string    `json:"full_name"`
	Plan             Plan      `json:"plan"`
	CreditsRemaining int       `json:"credits_remaining"`
	EmailVerified    bool      `json:"email_verified"`
	TwoFAEnabled     bool      `json:"two_fa_enabled"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (p ProfileData) CheckContract() error {
	return checkEnum("plan", p.Plan)
}

// UpdateProfilePayload changes only the fields that are set.
type UpdateProfilePayload struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,notblank"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
}

type ChangePasswordPayload struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,password,nefield=OldPassword"`
}

type ChangePasswordResponse struct {
	Message string `json:"message"`
	Updated bool   `json:"updated"`
}

type DeleteAccountPayload struct {
	Password string `json:"password" validate:"required"`
}

type DeleteAccountResponse struct {
	Message string `json:"message"`
	Deleted bool   `json:"deleted"`
}

type Quotas struct {
	ResumeTailorsPerMonth int `json:"resume_tailors_per_month"`
	CoverLettersPerMonth  int `json:"cover_letters_per_month"`
	StarStoriesPerMonth   int `json:"star_stories_per_month"`
	JobAnalysesPerMonth   int `json:"job_analyses_per_month"`
}

type UsageResponse struct {
	UserID           string `json:"user_id"`
	Plan             Plan   `json:"plan"`
	CreditsRemaining int    `json:"credits_remaining"`
	Quotas           Quotas `json:"quotas"`
}

func (u UsageResponse) CheckContract() error {
	return checkEnum("plan", u.Plan)
}
