package services

import (
	"errors"
	"time"

	"github.com/cradlehq/cradle/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

type AuthUserRepository interface {
	FindByID(userID uint) (models.User, error)
	FindByNormalizedEmail(email string) (models.User, error)
	ExistsByNormalizedEmail(email string) (bool, error)
	ExistsByUsername(username string) (bool, error)
	Create(user *models.User) error
	Save(user *models.User) error
	UpdatePassword(userID uint, passwordHash string) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register validates the identity fields and password policy, checks
// uniqueness, and persists the new account with a bcrypt hash.
func (service *AuthService) Register(usernameRaw, emailRaw, password, confirmPassword string) (models.User, error) {
	username, err := NormalizeUsername(usernameRaw)
	if err != nil {
		return models.User{}, err
	}
	email := NormalizeAuthEmail(emailRaw)
	if email == "" {
		return models.User{}, ErrEmailInvalid
	}
	if password != confirmPassword {
		return models.User{}, ErrPasswordMismatch
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return models.User{}, err
	}

	emailTaken, err := service.users.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.User{}, err
	}
	if emailTaken {
		return models.User{}, ErrEmailTaken
	}
	usernameTaken, err := service.users.ExistsByUsername(username)
	if err != nil {
		return models.User{}, err
	}
	if usernameTaken {
		return models.User{}, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Authenticate resolves the account by normalized email and compares the
// bcrypt hash. Every failure mode collapses into ErrInvalidCredentials so
// responses cannot distinguish "no such account" from "wrong password".
func (service *AuthService) Authenticate(emailRaw, passwordRaw string) (models.User, error) {
	email, password, err := NormalizeCredentialsInput(emailRaw, passwordRaw)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	user, err := service.users.FindByNormalizedEmail(email)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// UpdateProfile changes username and/or email; empty inputs leave the
// field untouched.
func (service *AuthService) UpdateProfile(user *models.User, usernameRaw, emailRaw string) error {
	if usernameRaw != "" {
		username, err := NormalizeUsername(usernameRaw)
		if err != nil {
			return err
		}
		if username != user.Username {
			taken, err := service.users.ExistsByUsername(username)
			if err != nil {
				return err
			}
			if taken {
				return ErrUsernameTaken
			}
			user.Username = username
		}
	}
	if emailRaw != "" {
		email := NormalizeAuthEmail(emailRaw)
		if email == "" {
			return ErrEmailInvalid
		}
		if email != user.Email {
			taken, err := service.users.ExistsByNormalizedEmail(email)
			if err != nil {
				return err
			}
			if taken {
				return ErrEmailTaken
			}
			user.Email = email
		}
	}
	return service.users.Save(user)
}

// ChangePassword verifies the current password before applying the policy
// to the replacement.
func (service *AuthService) ChangePassword(user *models.User, currentPassword, newPassword, confirmPassword string) error {
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return ErrInvalidCredentials
	}
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return service.users.UpdatePassword(user.ID, string(hash))
}

// ResetPassword redeems a forgot-password token. The password-state
// fingerprint check makes the token single use: applying the new hash
// rotates the state every other outstanding token was minted against.
func (service *AuthService) ResetPassword(secretKey []byte, rawToken, newPassword, confirmPassword string) error {
	claims, err := ParsePasswordResetToken(secretKey, rawToken, time.Now())
	if err != nil {
		return err
	}
	user, err := service.users.FindByID(claims.UserID)
	if err != nil {
		return ErrPasswordResetTokenInvalid
	}
	if !IsPasswordStateFingerprintMatch(claims.PasswordState, user.PasswordHash) {
		return ErrPasswordResetTokenInvalid
	}
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}
	if err := ValidatePasswordStrength(newPassword); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return service.users.UpdatePassword(user.ID, string(hash))
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func (service *AuthService) FindByNormalizedEmail(email string) (models.User, error) {
	return service.users.FindByNormalizedEmail(email)
}

func (service *AuthService) EmailExists(email string) (bool, error) {
	return service.users.ExistsByNormalizedEmail(email)
}

func (service *AuthService) UsernameExists(username string) (bool, error) {
	return service.users.ExistsByUsername(username)
}
