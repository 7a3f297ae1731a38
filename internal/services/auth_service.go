package services

import (
	"context"
	"errors"
	"strings"

	"github.com/jobinkurian/parishdesk/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials covers unknown username, wrong password, and
// storage failure alike; the caller must not be able to tell which
// field was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

var ErrMissingCredentials = errors.New("username and password are required")

type AuthUserRepository interface {
	FindByUsername(ctx context.Context, username string) (models.User, error)
	FindByID(ctx context.Context, userID uint) (models.User, error)
}

type AuthService struct {
	users AuthUserRepository
	log   *logrus.Logger
}

func NewAuthService(users AuthUserRepository, log *logrus.Logger) *AuthService {
	return &AuthService{users: users, log: log}
}

// SignIn authenticates a username/password pair against the stored
// bcrypt hash.
func (service *AuthService) SignIn(ctx context.Context, username string, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.User{}, ErrMissingCredentials
	}

	user, err := service.users.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) && service.log != nil {
			service.log.WithError(err).Warn("user lookup failed during sign-in")
		}
		return models.User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

func (service *AuthService) FindByID(ctx context.Context, userID uint) (models.User, error) {
	return service.users.FindByID(ctx, userID)
}

// HashPassword wraps bcrypt with the default cost.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
