// Package api is the HTTP surface: fiber handlers, routing, and the
// mapping from service errors to status codes. Handlers orchestrate
// repositories and call the policy layer for validation; they never
// contain domain rules themselves.
package api

import (
	"time"

	"github.com/cradlehq/cradle/internal/db"
	"github.com/cradlehq/cradle/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	repositories *db.Repositories
	authService  *services.AuthService
	ownership    *services.OwnershipPolicy
	secretKey    []byte
	uploadDir    string
	logger       *zap.Logger

	sessionTokenTTL time.Duration
	resetTokenTTL   time.Duration
}

func zapUserID(id uint) zap.Field {
	return zap.Uint("user_id", id)
}

func NewHandler(database *gorm.DB, secretKey []byte, uploadDir string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	repositories := db.NewRepositories(database)
	return &Handler{
		db:              database,
		repositories:    repositories,
		authService:     services.NewAuthService(repositories.Users),
		ownership:       services.NewOwnershipPolicy(repositories.Babies),
		secretKey:       secretKey,
		uploadDir:       uploadDir,
		logger:          logger,
		sessionTokenTTL: services.DefaultSessionTokenTTL,
		resetTokenTTL:   services.DefaultPasswordResetTTL,
	}
}
