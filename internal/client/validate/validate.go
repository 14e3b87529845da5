// Package validate runs the pre-flight checks done before a request leaves
// the client: required fields, password complexity, one-time codes,
// enumerations and resume import files.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/models"
)

const MinPasswordLength = 8

var (
	v        *validator.Validate
	otpRegex = regexp.MustCompile(`^[0-9]{6}$`)
)

func init() {
	v = validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	mustRegister("password", func(fl validator.FieldLevel) bool {
		return PasswordProblem(fl.Field().String()) == ""
	})
	mustRegister("otp", func(fl validator.FieldLevel) bool {
		return otpRegex.MatchString(fl.Field().String())
	})
	mustRegister("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(models.Enum)
		return ok && e.Valid()
	})
}

func mustRegister(tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// FieldError is one failed rule.
type FieldError struct {
	Field   string
	Message string
}

// Error collects every failed rule of one payload.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Message)
	}
	return strings.Join(parts, "; ")
}

// Field returns the message recorded for name, if any.
func (e *Error) Field(name string) (string, bool) {
	for _, f := range e.Fields {
		if f.Field == name {
			return f.Message, true
		}
	}
	return "", false
}

func fieldError(field, msg string) *Error {
	return &Error{Fields: []FieldError{{Field: field, Message: msg}}}
}

// Struct validates a payload and returns *Error when a rule fails.
func Struct(payload any) error {
	err := v.Struct(payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	field := strings.ReplaceAll(fe.Field(), "_", " ")
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Please enter a valid email address"
	case "password":
		if p := PasswordProblem(fe.Value().(string)); p != "" {
			return p
		}
		return "Password does not meet the requirements"
	case "otp":
		return "Please enter a 6-digit code"
	case "enum":
		return fmt.Sprintf("%s has an unsupported value %q", field, fmt.Sprint(fe.Value()))
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "nefield":
		return "New password must be different from the current password"
	case "max":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s can have at most %s entries", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// PasswordProblem returns a user-facing description of the first rule the
// password breaks, or "" when it is acceptable.
func PasswordProblem(password string) string {
	if len(password) < MinPasswordLength {
		return fmt.Sprintf("Password must be at least %d characters", MinPasswordLength)
	}

	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	switch {
	case !upper:
		return "Password must contain at least one uppercase letter"
	case !lower:
		return "Password must contain at least one lowercase letter"
	case !digit:
		return "Password must contain at least one number"
	}
	return ""
}

// Password checks a password outside of a payload, e.g. a confirmation
// prompt.
func Password(password string) error {
	if p := PasswordProblem(password); p != "" {
		return fieldError("password", p)
	}
	return nil
}

// OTP checks a 6-digit one-time code.
func OTP(code string) error {
	if !otpRegex.MatchString(code) {
		return fieldError("code", "Please enter a 6-digit code")
	}
	return nil
}

// Required checks that a free-standing value such as an id is not blank.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fieldError(field, fmt.Sprintf("%s is required", strings.ReplaceAll(field, "_", " ")))
	}
	return nil
}
