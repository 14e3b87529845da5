package models

import "time"

// User is the identity kept by the client once a session is established.
type User struct {
	ID         string             `json:"id"`
	Email      string             `json:"email"`
	FullName   string             `json:"full_name"`
	IsVerified VerificationStatus `json:"is_verified"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func (u User) CheckContract() error {
	return checkEnum("is_verified", u.IsVerified)
}

// TokenPair groups the credentials returned by the auth endpoints.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// AuthResponse is returned by register, login, refresh, me and the 2FA
// login verification.
type AuthResponse struct {
	UserID           string `json:"user_id"`
	Email            string `json:"email"`
	FullName         string `json:"full_name"`
	Plan             Plan   `json:"plan"`
	CreditsRemaining int    `json:"credits_remaining"`
	AccessToken      string `json:"access_token"`
	RefreshToken     string `json:"refresh_token"`
	TokenType        string `json:"token_type"`
	Requires2FA      bool   `json:"requires_2fa,omitempty"`
}

func (r AuthResponse) CheckContract() error {
	return checkEnum("plan", r.Plan)
}

func (r AuthResponse) Tokens() TokenPair {
	return TokenPair{AccessToken: r.AccessToken, RefreshToken: r.RefreshToken, TokenType: r.TokenType}
}

// User converts the response into the session identity. The server only
// issues auth responses for verified accounts, and does not send
// timestamps, so both are set locally.
func (r AuthResponse) User(now time.Time) User {
	return User{
		ID:         r.UserID,
		Email:      r.Email,
		FullName:   r.FullName,
		IsVerified: VerificationVerified,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

type RegisterPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
	FullName string `json:"full_name" validate:"required,notblank"`
}

type LoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TwoFASetupResponse struct {
	Secret string `json:"secret"`
	// QRCode is a data URL of the provisioning QR image.
	QRCode      string   `json:"qr_code"`
	BackupCodes []string `json:"backup_codes"`
}

type TwoFAVerifyPayload struct {
	Code string `json:"code" validate:"required,otp"`
}

type TwoFAVerifyResponse struct {
	Verified     bool   `json:"verified"`
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
}

type TwoFALoginPayload struct {
	UserID string `json:"user_id" validate:"required"`
	Code   string `json:"code" validate:"required,otp"`
}

type TwoFADisableResponse struct {
	Success bool `json:"success"`
}

type SendVerificationEmailPayload struct {
	Email string `json:"email" validate:"required,email"`
}

// MessageResponse is the {message, email} acknowledgement shared by the
// email verification and password reset request endpoints.
type MessageResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}

type VerifyEmailPayload struct {
	Token string `json:"token" validate:"required,notblank"`
}

type VerifyEmailResponse struct {
	Verified bool   `json:"verified"`
	Message  string `json:"message"`
	UserID   string `json:"user_id,omitempty"`
	Email    string `json:"email,omitempty"`
}

// HasIdentity reports whether the server confirmed who was verified.
func (r VerifyEmailResponse) HasIdentity() bool {
	return r.UserID != "" && r.Email != ""
}

type RequestPasswordResetPayload struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordPayload struct {
	Token       string `json:"token" validate:"required,notblank"`
	NewPassword string `json:"new_password" validate:"required,password"`
}

type ResetPasswordResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
	Email   string `json:"email"`
}
