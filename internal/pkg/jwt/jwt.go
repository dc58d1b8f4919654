package jwt

import (
	"errors"
	"time"

	"guest-conversion/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// clockSkew tolerates drift between the marketplace issuer and this service.
const clockSkew = 30 * time.Second

// Claims accept both the legacy user_id claim and the standard sub claim.
type Claims struct {
	UserID uuid.UUID `json:"user_id,omitempty"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// Subject resolves the account id, preferring user_id over sub.
func (c *Claims) Subject() (uuid.UUID, error) {
	if c.UserID != uuid.Nil {
		return c.UserID, nil
	}
	id, err := uuid.Parse(c.RegisteredClaims.Subject)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrInvalidToken
	}
	return id, nil
}

// Service validates access tokens issued by the marketplace. Tokens are
// shared-secret HS256; GenerateToken exists for tooling and tests.
type Service struct {
	secretKey []byte
	parser    *jwt.Parser
}

func NewService(secretKey string) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithLeeway(clockSkew),
			jwt.WithExpirationRequired(),
		),
	}
}

func (s *Service) GenerateToken(userID uuid.UUID, role user.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := s.parser.ParseWithClaims(tokenString, &Claims{}, func(*jwt.Token) (any, error) {
		return s.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
