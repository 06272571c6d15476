package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/nutriform/nutriform/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUserRepository interface {
	CredentialReader
	FindByUsername(username string) (models.User, error)
	FindByID(userID uint) (models.User, error)
	Create(user *models.User) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register validates the submission against the ordered validator list,
// hashes the password and persists exactly one account. The plaintext
// password never leaves this function.
func (service *AuthService) Register(input RegistrationInput) (models.User, error) {
	input.Username = NormalizeUsername(input.Username)
	input.Email = NormalizeEmail(input.Email)

	if err := ValidateRegistration(input, service.users); err != nil {
		return models.User{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login verifies the username/password pair. Hash comparison goes through
// bcrypt, never string equality. A missing user and a wrong password are
// indistinguishable to the caller.
func (service *AuthService) Login(username string, password string) (models.User, error) {
	user, err := service.users.FindByUsername(NormalizeUsername(username))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}
