package api

import (
	"errors"

	"github.com/jobinkurian/parishdesk/internal/db"
	"github.com/jobinkurian/parishdesk/internal/services"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Handler struct {
	repos        *db.Repositories
	auth         *services.AuthService
	secretKey    []byte
	cookieSecure bool
	log          *logrus.Logger
	metrics      *Metrics
}

func NewHandler(database *gorm.DB, secret string, cookieSecure bool, log *logrus.Logger, metrics *Metrics) (*Handler, error) {
	if secret == "" {
		return nil, errors.New("secret key is required")
	}
	if log == nil {
		log = logrus.New()
	}

	repos := db.NewRepositories(database)
	return &Handler{
		repos:        repos,
		auth:         services.NewAuthService(repos.Users, log),
		secretKey:    []byte(secret),
		cookieSecure: cookieSecure,
		log:          log,
		metrics:      metrics,
	}, nil
}
