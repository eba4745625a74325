package usecase

import (
	"time"

	"loyalty-core/internal/pkg/config"
	"loyalty-core/internal/pkg/errs"
	"loyalty-core/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator resolves a bearer token to a verified user id. The real
// storefront delegates this to its identity provider; the JWT implementation
// here covers deployments where this service verifies tokens itself.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, error)
}

type jwtTokenValidator struct {
	service *jwt.Service
}

func NewTokenValidator(cfg config.Config) (TokenValidator, error) {
	duration, err := time.ParseDuration(cfg.JWT.Duration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT duration")
	}

	return &jwtTokenValidator{
		service: jwt.NewService(cfg.JWT.Secret, duration),
	}, nil
}

func (v *jwtTokenValidator) ValidateToken(token string) (uuid.UUID, error) {
	claims, err := v.service.ValidateToken(token)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}
