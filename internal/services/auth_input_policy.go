package services

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// RegistrationInput is the normalized registration submission. Username and
// Email are expected to already be trimmed/lowercased via the Normalize
// helpers before validation runs.
type RegistrationInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// CredentialReader is the slice of the credential store the registration
// validators need for uniqueness checks.
type CredentialReader interface {
	ExistsByUsername(username string) (bool, error)
	ExistsByNormalizedEmail(email string) (bool, error)
}

var fieldValidator = validator.New()

// registrationValidators run in this exact order; the first failure wins.
type registrationValidator func(input RegistrationInput, users CredentialReader) error

var registrationValidators = []registrationValidator{
	validateUsernameLength,
	validateEmailSyntax,
	validatePasswordLength,
	validatePasswordsMatch,
	validateUsernameAvailable,
	validateEmailAvailable,
}

func ValidateRegistration(input RegistrationInput, users CredentialReader) error {
	for _, validate := range registrationValidators {
		if err := validate(input, users); err != nil {
			return err
		}
	}
	return nil
}

func validateUsernameLength(input RegistrationInput, _ CredentialReader) error {
	if err := fieldValidator.Var(input.Username, "required,min=2,max=30"); err != nil {
		return newValidationError("username", "must be 2-30 characters")
	}
	return nil
}

func validateEmailSyntax(input RegistrationInput, _ CredentialReader) error {
	if err := fieldValidator.Var(input.Email, "required,email"); err != nil {
		return newValidationError("emailAddress", "must be a valid email address")
	}
	return nil
}

func validatePasswordLength(input RegistrationInput, _ CredentialReader) error {
	if err := fieldValidator.Var(input.Password, "required,min=6"); err != nil {
		return newValidationError("password1", "must be at least 6 characters")
	}
	return nil
}

func validatePasswordsMatch(input RegistrationInput, _ CredentialReader) error {
	if input.Password != input.ConfirmPassword {
		return newValidationError("password2", "passwords do not match")
	}
	return nil
}

func validateUsernameAvailable(input RegistrationInput, users CredentialReader) error {
	exists, err := users.ExistsByUsername(input.Username)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateUsername
	}
	return nil
}

func validateEmailAvailable(input RegistrationInput, users CredentialReader) error {
	exists, err := users.ExistsByNormalizedEmail(input.Email)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateEmail
	}
	return nil
}

func NormalizeUsername(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
