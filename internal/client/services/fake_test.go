package services

import (
	"context"
	"slices"
	"sync"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/client"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/models"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/tokenstore"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/logging"
)

// fakeClient implements client.Client for container tests. It reproduces
// the token side effects of the HTTP client on its store. Methods a test
// does not set up fall through to the nil embedded interface and panic.
type fakeClient struct {
	client.Client

	mu     sync.Mutex
	tokens tokenstore.Store
	calls  []string

	LoginRet models.AuthResponse
	LoginErr error

	VerifyLoginRet  models.AuthResponse
	VerifyLoginErr  error
	LastVerifyLogin models.TwoFALoginPayload

	RegisterRet models.AuthResponse
	RegisterErr error

	RefreshRet models.AuthResponse
	RefreshErr error

	LogoutErr error

	VerifyEmailRet models.VerifyEmailResponse
	VerifyEmailErr error

	MeRet models.AuthResponse
	MeErr error

	ResendRet models.MessageResponse
	ResendErr error

	Resumes         []models.Resume
	ResumesErr      error
	CreateResumeErr error
	DeleteResumeErr error
	UpdateResumeErr error
	LastCreate      models.CreateResumePayload
	NextResumeID    string

	Applications   []models.JobApplication
	AppErr         error
	FollowUpRet    models.FollowUp
	LastFollowUpTo string

	PlansRet        []models.PlanInfo
	HistoryRet      []models.BillingEvent
	SubscribeRet    models.SubscriptionResponse
	SubscribeErr    error
	LastSubscribe   models.CreateSubscriptionPayload
	ChangePlanRet   models.SubscriptionResponse
	LastChangePlan  models.UpdateSubscriptionPayload
	IntentRet       models.PaymentIntentResponse
	LastIntent      models.PaymentIntentPayload
	SubscriptionRet *models.Subscription
	SubscriptionErr error
	CancelRet       models.SubscriptionResponse
	LastCancel      models.CancelSubscriptionPayload

	ProfileRet       models.ProfileData
	UpdateProfileErr error
	LastProfile      models.UpdateProfilePayload
	PasswordRet      models.ChangePasswordResponse
	LastPassword     models.ChangePasswordPayload
	UsageRet         models.UsageResponse
	LastUsageUser    string
	DeleteAccountRet models.DeleteAccountResponse
	DeleteAccountErr error
	VerifySetupRet   models.TwoFAVerifyResponse
	DisableRet       models.TwoFADisableResponse

	LastTailor models.TailorRequestPayload
	TailorRet  models.TailorResponse
	LastStar   models.StarStoryPayload
	LastLetter models.CoverLetterPayload
	LastJob    models.JobAnalysisPayload

	AnalyticsRet models.UserAnalytics
	AnalyticsErr error
}

func newFakeClient() *fakeClient {
	return &fakeClient{tokens: tokenstore.NewMemoryStore()}
}

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}

func (f *fakeClient) save(ctx context.Context, tok string) error {
	if tok == "" {
		return nil
	}
	return f.tokens.Set(ctx, tok)
}

func (f *fakeClient) Login(ctx context.Context, _ models.LoginPayload) (models.AuthResponse, error) {
	f.record("Login")
	if f.LoginErr != nil {
		return models.AuthResponse{}, f.LoginErr
	}
	if f.LoginRet.Requires2FA {
		return f.LoginRet, f.tokens.Clear(ctx)
	}
	return f.LoginRet, f.save(ctx, f.LoginRet.AccessToken)
}

func (f *fakeClient) VerifyTwoFALogin(ctx context.Context, p models.TwoFALoginPayload) (models.AuthResponse, error) {
	f.record("VerifyTwoFALogin")
	f.LastVerifyLogin = p
	if f.VerifyLoginErr != nil {
		return models.AuthResponse{}, f.VerifyLoginErr
	}
	return f.VerifyLoginRet, f.save(ctx, f.VerifyLoginRet.AccessToken)
}

func (f *fakeClient) Register(ctx context.Context, _ models.RegisterPayload) (models.AuthResponse, error) {
	f.record("Register")
	if f.RegisterErr != nil {
		return models.AuthResponse{}, f.RegisterErr
	}
	return f.RegisterRet, f.save(ctx, f.RegisterRet.AccessToken)
}

func (f *fakeClient) RefreshToken(ctx context.Context) (models.AuthResponse, error) {
	f.record("RefreshToken")
	if f.RefreshErr != nil {
		return models.AuthResponse{}, f.RefreshErr
	}
	return f.RefreshRet, f.save(ctx, f.RefreshRet.AccessToken)
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.record("Logout")
	_ = f.tokens.Clear(ctx)
	return f.LogoutErr
}

func (f *fakeClient) VerifyEmail(context.Context, models.VerifyEmailPayload) (models.VerifyEmailResponse, error) {
	f.record("VerifyEmail")
	return f.VerifyEmailRet, f.VerifyEmailErr
}

func (f *fakeClient) ResendVerificationEmail(context.Context) (models.MessageResponse, error) {
	f.record("ResendVerificationEmail")
	return f.ResendRet, f.ResendErr
}

func (f *fakeClient) Me(context.Context) (models.AuthResponse, error) {
	f.record("Me")
	return f.MeRet, f.MeErr
}

func (f *fakeClient) GetResumes(context.Context) ([]models.Resume, error) {
	f.record("GetResumes")
	return slices.Clone(f.Resumes), f.ResumesErr
}

func (f *fakeClient) GetResume(_ context.Context, id string) (models.Resume, error) {
	f.record("GetResume")
	for _, r := range f.Resumes {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Resume{}, &models.APIError{StatusCode: 404, Message: "Resume not found"}
}

func (f *fakeClient) CreateResume(_ context.Context, p models.CreateResumePayload) (models.Resume, error) {
	f.record("CreateResume")
	f.LastCreate = p
	if f.CreateResumeErr != nil {
		return models.Resume{}, f.CreateResumeErr
	}
	r := models.Resume{ID: f.NextResumeID, Title: p.Title, Content: p.Content, FileName: p.FileName, IsDefault: p.IsDefault, Status: models.ResumeActive, Version: 1}
	f.Resumes = append(f.Resumes, r)
	return r, nil
}

func (f *fakeClient) UpdateResume(_ context.Context, id string, p models.UpdateResumePayload) (models.Resume, error) {
	f.record("UpdateResume")
	if f.UpdateResumeErr != nil {
		return models.Resume{}, f.UpdateResumeErr
	}
	r := models.Resume{ID: id, Status: models.ResumeActive, Version: 2}
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Content != nil {
		r.Content = *p.Content
	}
	return r, nil
}

func (f *fakeClient) DeleteResume(_ context.Context, id string) error {
	f.record("DeleteResume")
	if f.DeleteResumeErr != nil {
		return f.DeleteResumeErr
	}
	f.Resumes = removeByID(f.Resumes, id, resumeID)
	return nil
}

func (f *fakeClient) SetDefaultResume(ctx context.Context, id string) (models.Resume, error) {
	f.record("SetDefaultResume")
	for i := range f.Resumes {
		f.Resumes[i].IsDefault = f.Resumes[i].ID == id
	}
	return f.GetResume(ctx, id)
}

func (f *fakeClient) DuplicateResume(_ context.Context, id, newTitle string) (models.Resume, error) {
	f.record("DuplicateResume")
	for _, r := range f.Resumes {
		if r.ID == id {
			c := r
			c.ID = f.NextResumeID
			c.Title = newTitle
			c.IsDefault = false
			f.Resumes = append(f.Resumes, c)
			return c, nil
		}
	}
	return models.Resume{}, &models.APIError{StatusCode: 404, Message: "Resume not found"}
}

func (f *fakeClient) GetApplications(context.Context) ([]models.JobApplication, error) {
	f.record("GetApplications")
	return slices.Clone(f.Applications), f.AppErr
}

func (f *fakeClient) GetApplication(_ context.Context, id string) (models.JobApplication, error) {
	f.record("GetApplication")
	if f.AppErr != nil {
		return models.JobApplication{}, f.AppErr
	}
	for _, a := range f.Applications {
		if a.ID == id {
			return a, nil
		}
	}
	return models.JobApplication{}, &models.APIError{StatusCode: 404, Message: "Application not found"}
}

func (f *fakeClient) CreateApplication(_ context.Context, p models.CreateApplicationPayload) (models.JobApplication, error) {
	f.record("CreateApplication")
	if f.AppErr != nil {
		return models.JobApplication{}, f.AppErr
	}
	status := p.Status
	if status == "" {
		status = models.StatusSaved
	}
	a := models.JobApplication{ID: "a-new", JobTitle: p.JobTitle, CompanyName: p.CompanyName, Status: status, Tags: p.Tags}
	f.Applications = append(f.Applications, a)
	return a, nil
}

func (f *fakeClient) UpdateApplication(ctx context.Context, id string, p models.UpdateApplicationPayload) (models.JobApplication, error) {
	f.record("UpdateApplication")
	if f.AppErr != nil {
		return models.JobApplication{}, f.AppErr
	}
	for i := range f.Applications {
		if f.Applications[i].ID == id && p.Status != nil {
			f.Applications[i].Status = *p.Status
		}
	}
	return f.GetApplication(ctx, id)
}

func (f *fakeClient) DeleteApplication(_ context.Context, id string) error {
	f.record("DeleteApplication")
	if f.AppErr != nil {
		return f.AppErr
	}
	f.Applications = removeByID(f.Applications, id, applicationID)
	return nil
}

func (f *fakeClient) AddFollowUp(_ context.Context, applicationID string, p models.AddFollowUpPayload) (models.FollowUp, error) {
	f.record("AddFollowUp")
	f.LastFollowUpTo = applicationID
	if f.AppErr != nil {
		return models.FollowUp{}, f.AppErr
	}
	out := f.FollowUpRet
	out.ApplicationID = applicationID
	out.Note = p.Note
	return out, nil
}

func (f *fakeClient) GetPlans(context.Context) ([]models.PlanInfo, error) {
	f.record("GetPlans")
	return slices.Clone(f.PlansRet), nil
}

func (f *fakeClient) GetSubscription(context.Context) (*models.Subscription, error) {
	f.record("GetSubscription")
	return f.SubscriptionRet, f.SubscriptionErr
}

func (f *fakeClient) CancelSubscription(_ context.Context, p models.CancelSubscriptionPayload) (models.SubscriptionResponse, error) {
	f.record("CancelSubscription")
	f.LastCancel = p
	return f.CancelRet, nil
}

func (f *fakeClient) CreateCheckoutSession(_ context.Context, p models.CreateCheckoutSessionPayload) (models.CreateCheckoutSessionResponse, error) {
	f.record("CreateCheckoutSession")
	return models.CreateCheckoutSessionResponse{SessionID: "cs_1", URL: "https://checkout.example/" + p.PriceID}, nil
}

func (f *fakeClient) GetBillingHistory(context.Context) ([]models.BillingEvent, error) {
	f.record("GetBillingHistory")
	return slices.Clone(f.HistoryRet), nil
}

func (f *fakeClient) CreateSubscription(_ context.Context, p models.CreateSubscriptionPayload) (models.SubscriptionResponse, error) {
	f.record("CreateSubscription")
	f.LastSubscribe = p
	if f.SubscribeErr != nil {
		return models.SubscriptionResponse{}, f.SubscribeErr
	}
	return f.SubscribeRet, nil
}

func (f *fakeClient) UpdateSubscription(_ context.Context, p models.UpdateSubscriptionPayload) (models.SubscriptionResponse, error) {
	f.record("UpdateSubscription")
	f.LastChangePlan = p
	return f.ChangePlanRet, nil
}

func (f *fakeClient) CreatePaymentIntent(_ context.Context, p models.PaymentIntentPayload) (models.PaymentIntentResponse, error) {
	f.record("CreatePaymentIntent")
	f.LastIntent = p
	return f.IntentRet, nil
}

func (f *fakeClient) GetProfile(context.Context) (models.ProfileData, error) {
	f.record("GetProfile")
	return f.ProfileRet, nil
}

func (f *fakeClient) UpdateProfile(_ context.Context, p models.UpdateProfilePayload) (models.ProfileData, error) {
	f.record("UpdateProfile")
	f.LastProfile = p
	if f.UpdateProfileErr != nil {
		return models.ProfileData{}, f.UpdateProfileErr
	}
	out := f.ProfileRet
	if p.FullName != nil {
		out.FullName = *p.FullName
	}
	if p.Email != nil {
		out.Email = *p.Email
	}
	return out, nil
}

func (f *fakeClient) ChangePassword(_ context.Context, p models.ChangePasswordPayload) (models.ChangePasswordResponse, error) {
	f.record("ChangePassword")
	f.LastPassword = p
	return f.PasswordRet, nil
}

func (f *fakeClient) GetUsage(_ context.Context, userID string) (models.UsageResponse, error) {
	f.record("GetUsage")
	f.LastUsageUser = userID
	return f.UsageRet, nil
}

func (f *fakeClient) DeleteAccount(ctx context.Context, _ models.DeleteAccountPayload) (models.DeleteAccountResponse, error) {
	f.record("DeleteAccount")
	if f.DeleteAccountErr != nil {
		return models.DeleteAccountResponse{}, f.DeleteAccountErr
	}
	_ = f.tokens.Clear(ctx)
	return f.DeleteAccountRet, nil
}

func (f *fakeClient) SetupTwoFA(context.Context) (models.TwoFASetupResponse, error) {
	f.record("SetupTwoFA")
	return models.TwoFASetupResponse{Secret: "JBSWY3DPEHPK3PXP", BackupCodes: []string{"a1", "b2"}}, nil
}

func (f *fakeClient) VerifyTwoFASetup(ctx context.Context, _ models.TwoFAVerifyPayload) (models.TwoFAVerifyResponse, error) {
	f.record("VerifyTwoFASetup")
	return f.VerifySetupRet, f.save(ctx, f.VerifySetupRet.AccessToken)
}

func (f *fakeClient) DisableTwoFA(context.Context) (models.TwoFADisableResponse, error) {
	f.record("DisableTwoFA")
	return f.DisableRet, nil
}

func (f *fakeClient) AnalyzeJob(_ context.Context, p models.JobAnalysisPayload) (models.JobAnalysisResponse, error) {
	f.record("AnalyzeJob")
	f.LastJob = p
	return models.JobAnalysisResponse{JobID: "j-1", ExtractedRequirements: "Go"}, nil
}

func (f *fakeClient) TailorResume(_ context.Context, p models.TailorRequestPayload) (models.TailorResponse, error) {
	f.record("TailorResume")
	f.LastTailor = p
	return f.TailorRet, nil
}

func (f *fakeClient) GenerateCoverLetter(_ context.Context, p models.CoverLetterPayload) (models.CoverLetterResponse, error) {
	f.record("GenerateCoverLetter")
	f.LastLetter = p
	return models.CoverLetterResponse{CoverLetter: "Dear " + p.CompanyName}, nil
}

func (f *fakeClient) GenerateStarStories(_ context.Context, p models.StarStoryPayload) (models.StarStoryResponse, error) {
	f.record("GenerateStarStories")
	f.LastStar = p
	return models.StarStoryResponse{StarStories: make([]string, p.Count)}, nil
}

func (f *fakeClient) GetAnalytics(context.Context) (models.UserAnalytics, error) {
	f.record("GetAnalytics")
	return f.AnalyticsRet, f.AnalyticsErr
}

func authResp(userID, token string) models.AuthResponse {
	return models.AuthResponse{
		UserID:           userID,
		Email:            "a@b.com",
		FullName:         "Ada Lovelace",
		Plan:             models.PlanFree,
		CreditsRemaining: 5,
		AccessToken:      token,
		RefreshToken:     "r-" + token,
		TokenType:        "bearer",
	}
}

func newAuth(f *fakeClient) (*AuthService, *Status) {
	st := NewStatus()
	return NewAuthService(f, f.tokens, st, logging.Discard()), st
}
