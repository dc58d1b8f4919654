package usecase

import (
	"guest-conversion/internal/domain/user"
	"guest-conversion/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator resolves a bearer token to the caller's account and role.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}
	id, err := claims.Subject()
	if err != nil {
		return uuid.Nil, "", err
	}
	// 役割のないトークンはマーケットプレイス側の別用途のもの
	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", err
	}
	return id, role, nil
}
