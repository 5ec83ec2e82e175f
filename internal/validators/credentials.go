package validators

import (
	"context"
	"strings"

	"github.com/tmarnet/go-shop/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldEmail targets the email address of a credentials request.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password of a credentials request.
	FieldPassword = "password"
)

// Length bounds for credential fields. Email bounds match the database
// schema; the password upper bound is the largest input bcrypt accepts.
const (
	minEmailLength    = 3
	maxEmailLength    = 100
	minPasswordLength = 6
	maxPasswordLength = 72
)

// CredentialsValidator implements the Validator interface for
// models.CredentialsRequest, covering both registration and login input.
type CredentialsValidator struct {
}

// NewCredentialsValidator constructs a new CredentialsValidator
// and returns it as the Validator interface.
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate dispatches validation based on the dynamic type of obj. Both value
// and pointer forms of models.CredentialsRequest are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// both email and password are validated.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CredentialsRequest:
		return v.validateCredentials(ctx, value, fields...)
	case *models.CredentialsRequest:
		return v.validateCredentials(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(_ context.Context, credentials models.CredentialsRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if err := validateEmail(credentials.Email); err != nil {
				return err
			}
		case FieldPassword:
			if err := validatePassword(credentials.Password); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateEmail(email string) error {
	if len(email) < minEmailLength || len(email) > maxEmailLength {
		return ErrInvalidEmail
	}

	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return ErrInvalidEmail
	}

	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return ErrInvalidPassword
	}

	return nil
}
