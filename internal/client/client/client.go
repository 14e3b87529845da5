package client

import (
	"context"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/models"
)

var _ Client = (*HTTPClient)(nil)

type Client interface {
	Register(ctx context.Context, p models.RegisterPayload) (models.AuthResponse, error)
	Login(ctx context.Context, p models.LoginPayload) (models.AuthResponse, error)
	Logout(ctx context.Context) error
	RefreshToken(ctx context.Context) (models.AuthResponse, error)
	Me(ctx context.Context) (models.AuthResponse, error)

	SetupTwoFA(ctx context.Context) (models.TwoFASetupResponse, error)
	VerifyTwoFASetup(ctx context.Context, p models.TwoFAVerifyPayload) (models.TwoFAVerifyResponse, error)
	VerifyTwoFALogin(ctx context.Context, p models.TwoFALoginPayload) (models.AuthResponse, error)
	DisableTwoFA(ctx context.Context) (models.TwoFADisableResponse, error)

	SendVerificationEmail(ctx context.Context, p models.SendVerificationEmailPayload) (models.MessageResponse, error)
	VerifyEmail(ctx context.Context, p models.VerifyEmailPayload) (models.VerifyEmailResponse, error)
	ResendVerificationEmail(ctx context.Context) (models.MessageResponse, error)
	RequestPasswordReset(ctx context.Context, p models.RequestPasswordResetPayload) (models.MessageResponse, error)
	ResetPassword(ctx context.Context, p models.ResetPasswordPayload) (models.ResetPasswordResponse, error)

	GetProfile(ctx context.Context) (models.ProfileData, error)
	UpdateProfile(ctx context.Context, p models.UpdateProfilePayload) (models.ProfileData, error)
	ChangePassword(ctx context.Context, p models.ChangePasswordPayload) (models.ChangePasswordResponse, error)
	DeleteAccount(ctx context.Context, p models.DeleteAccountPayload) (models.DeleteAccountResponse, error)
	GetUsage(ctx context.Context, userID string) (models.UsageResponse, error)

	AnalyzeJob(ctx context.Context, p models.JobAnalysisPayload) (models.JobAnalysisResponse, error)
	TailorResume(ctx context.Context, p models.TailorRequestPayload) (models.TailorResponse, error)
	GenerateCoverLetter(ctx context.Context, p models.CoverLetterPayload) (models.CoverLetterResponse, error)
	GenerateStarStories(ctx context.Context, p models.StarStoryPayload) (models.StarStoryResponse, error)

	GetPlans(ctx context.Context) ([]models.PlanInfo, error)
	GetSubscription(ctx context.Context) (*models.Subscription, error)
	CreateCheckoutSession(ctx context.Context, p models.CreateCheckoutSessionPayload) (models.CreateCheckoutSessionResponse, error)
	CreateSubscription(ctx context.Context, p models.CreateSubscriptionPayload) (models.SubscriptionResponse, error)
	UpdateSubscription(ctx context.Context, p models.UpdateSubscriptionPayload) (models.SubscriptionResponse, error)
	CancelSubscription(ctx context.Context, p models.CancelSubscriptionPayload) (models.SubscriptionResponse, error)
	CreatePaymentIntent(ctx context.Context, p models.PaymentIntentPayload) (models.PaymentIntentResponse, error)
	GetBillingHistory(ctx context.Context) ([]models.BillingEvent, error)

	GetResumes(ctx context.Context) ([]models.Resume, error)
	GetResume(ctx context.Context, id string) (models.Resume, error)
	CreateResume(ctx context.Context, p models.CreateResumePayload) (models.Resume, error)
	UpdateResume(ctx context.Context, id string, p models.UpdateResumePayload) (models.Resume, error)
	DeleteResume(ctx context.Context, id string) error
	SetDefaultResume(ctx context.Context, id string) (models.Resume, error)
	DuplicateResume(ctx context.Context, id, newTitle string) (models.Resume, error)

	GetApplications(ctx context.Context) ([]models.JobApplication, error)
	GetApplication(ctx context.Context, id string) (models.JobApplication, error)
	CreateApplication(ctx context.Context, p models.CreateApplicationPayload) (models.JobApplication, error)
	UpdateApplication(ctx context.Context, id string, p models.UpdateApplicationPayload) (models.JobApplication, error)
	DeleteApplication(ctx context.Context, id string) error
	AddFollowUp(ctx context.Context, applicationID string, p models.AddFollowUpPayload) (models.FollowUp, error)

	GetAnalytics(ctx context.Context) (models.UserAnalytics, error)
}
