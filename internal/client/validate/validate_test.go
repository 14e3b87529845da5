package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/models"
)

func requireFieldError(t *testing.T, err error, field string) string {
	t.Helper()
	var verr *Error
	require.True(t, errors.As(err, &verr), "want *validate.Error, got %v", err)
	msg, ok := verr.Field(field)
	require.True(t, ok, "no error for field %q in %v", field, verr.Fields)
	return msg
}

func TestPasswordProblem(t *testing.T) {
	tests := []struct {
		password string
		want     string
	}{
		{"Short1", "Password must be at least 8 characters"},
		{"alllower1", "Password must contain at least one uppercase letter"},
		{"ALLUPPER1", "Password must contain at least one lowercase letter"},
		{"NoDigitsHere", "Password must contain at least one number"},
		{"Str0ngPass", ""},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			assert.Equal(t, tt.want, PasswordProblem(tt.password))
		})
	}
}

func TestStruct_Register(t *testing.T) {
	err := Struct(models.RegisterPayload{Email: "not-an-email", Password: "weak", FullName: "   "})
	require.Error(t, err)

	assert.Equal(t, "Please enter a valid email address", requireFieldError(t, err, "email"))
	assert.Equal(t, "Password must be at least 8 characters", requireFieldError(t, err, "password"))
	assert.Equal(t, "full name is required", requireFieldError(t, err, "full_name"))

	assert.NoError(t, Struct(models.RegisterPayload{Email: "a@b.com", Password: "Str0ngPass", FullName: "Ada Lovelace"}))
}

func TestStruct_TwoFACode(t *testing.T) {
	for _, code := range []string{"12345", "1234567", "12a456", ""} {
		err := Struct(models.TwoFALoginPayload{UserID: "u1", Code: code})
		require.Error(t, err, code)
		requireFieldError(t, err, "code")
	}
	assert.NoError(t, Struct(models.TwoFALoginPayload{UserID: "u1", Code: "123456"}))
	assert.NoError(t, OTP("000111"))
	assert.Error(t, OTP("0001"))
}

func TestStruct_ApplicationTagsAndEnums(t *testing.T) {
	p := models.CreateApplicationPayload{
		JobTitle:    "Backend Engineer",
		CompanyName: "Acme",
		Tags:        []string{"go", "k8s", "remote", "senior", "fintech", "extra"},
	}
	msg := requireFieldError(t, Struct(p), "tags")
	assert.Equal(t, "tags can have at most 5 entries", msg)

	p.Tags = p.Tags[:5]
	p.JobType = "gig"
	msg = requireFieldError(t, Struct(p), "job_type")
	assert.Contains(t, msg, `"gig"`)

	p.JobType = models.JobContract
	p.Status = models.StatusApplied
	assert.NoError(t, Struct(p))

	missing := models.CreateApplicationPayload{JobTitle: " "}
	err := Struct(missing)
	requireFieldError(t, err, "job_title")
	requireFieldError(t, err, "company_name")
}

func TestStruct_UpdatePointersOnlyCheckedWhenSet(t *testing.T) {
	assert.NoError(t, Struct(models.UpdateApplicationPayload{}))

	bad := models.ApplicationStatus("ghosted")
	requireFieldError(t, Struct(models.UpdateApplicationPayload{Status: &bad}), "status")

	good := models.StatusOffer
	assert.NoError(t, Struct(models.UpdateApplicationPayload{Status: &good}))
}

func TestStruct_ChangePasswordMustDiffer(t *testing.T) {
	err := Struct(models.ChangePasswordPayload{OldPassword: "Str0ngPass", NewPassword: "Str0ngPass"})
	assert.Equal(t, "New password must be different from the current password", requireFieldError(t, err, "new_password"))
}

func TestStruct_FollowUpNoteRequired(t *testing.T) {
	err := Struct(models.AddFollowUpPayload{FollowUpType: models.FollowUpEmail, Note: "  "})
	assert.Equal(t, "note is required", requireFieldError(t, err, "note"))
}

func TestStruct_StarCount(t *testing.T) {
	p := models.StarStoryPayload{UserID: "u1", ResumeText: "r", JobDescription: "j", Count: 0}
	requireFieldError(t, Struct(p), "count")
	p.Count = 3
	assert.NoError(t, Struct(p))
}

func TestError_JoinsMessages(t *testing.T) {
	e := &Error{Fields: []FieldError{{Field: "a", Message: "A is bad"}, {Field: "b", Message: "B is bad"}}}
	assert.Equal(t, "A is bad; B is bad", e.Error())
}

func TestRequiredAndPassword(t *testing.T) {
	assert.Equal(t, "resume id is required", requireFieldError(t, Required("resume_id", " "), "resume_id"))
	assert.NoError(t, Required("resume_id", "r1"))
	assert.Error(t, Password("password"))
	assert.NoError(t, Password("Passw0rdOK"))
}

func TestResumeFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		size    int64
		wantErr string
	}{
		{name: "txt ok", file: "cv.txt", size: 1024},
		{name: "upper case docx ok", file: "CV.DOCX", size: 1024},
		{name: "exact limit ok", file: "cv.pdf", size: MaxResumeFileSize},
		{name: "too large", file: "cv.pdf", size: MaxResumeFileSize + 1, wantErr: "File is too large (max 5 MB)"},
		{name: "empty", file: "cv.txt", size: 0, wantErr: "File is empty"},
		{name: "bad type", file: "cv.png", size: 10, wantErr: `Unsupported file type ".png"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ResumeFile(tt.file, tt.size)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			msg := requireFieldError(t, err, "file")
			assert.True(t, strings.HasPrefix(msg, tt.wantErr), msg)
		})
	}
}
