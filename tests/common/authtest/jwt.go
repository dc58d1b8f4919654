//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"guest-conversion/internal/domain/user"
	"guest-conversion/internal/pkg/config"
	"guest-conversion/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper issues tokens the way the marketplace does, signed with the shared secret.
type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{service: jwt.NewService(cfg.Secret)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, role, time.Hour)
	require.NoError(t, err)
	return token
}

// Issue mints a token for a fresh account so subtests never share outbox rows.
func (h *JWTHelper) Issue(t *testing.T, role user.Role) (uuid.UUID, string) {
	t.Helper()
	id := uuid.New()
	return id, h.GenerateToken(t, id, role)
}

// CreateExpiredToken expires well beyond the validator's clock skew allowance.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, role, -5*time.Minute)
	require.NoError(t, err)
	return token
}
