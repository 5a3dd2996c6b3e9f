package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/willythepapi/FITART-v1/internal/types"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token has expired")
	ErrAuthDisabled       = errors.New("authentication is not configured")
)

// tokenIssuer is the iss claim of every session token.
const tokenIssuer = "zenithfit"

// AuthService checks the single user's passcode and issues HS256 session
// tokens.
type AuthService struct {
	jwtSecret    []byte
	passcodeHash []byte
	subject      string
	ttl          time.Duration
	now          func() time.Time
}

var _ IAuthService = (*AuthService)(nil)

// NewAuthService creates an AuthService. An empty secret disables auth.
func NewAuthService(jwtSecret, passcodeHash, subject string, ttl time.Duration) *AuthService {
	return &AuthService{
		jwtSecret:    []byte(jwtSecret),
		passcodeHash: []byte(passcodeHash),
		subject:      subject,
		ttl:          ttl,
		now:          time.Now,
	}
}

// Enabled reports whether a JWT secret is configured.
func (s *AuthService) Enabled() bool {
	return len(s.jwtSecret) > 0
}

// Login verifies passcode and returns a signed token with its claims.
func (s *AuthService) Login(passcode string) (string, *types.TokenClaims, error) {
	if !s.Enabled() || len(s.passcodeHash) == 0 {
		return "", nil, ErrAuthDisabled
	}
	if err := bcrypt.CompareHashAndPassword(s.passcodeHash, []byte(passcode)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := s.now()
	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   s.subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID: s.subject,
	}
	token, err := s.GenerateToken(claims)
	if err != nil {
		return "", nil, err
	}
	return token, claims, nil
}

// GenerateToken signs claims.
func (s *AuthService) GenerateToken(claims *types.TokenClaims) (string, error) {
	if !s.Enabled() {
		return "", ErrAuthDisabled
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a signed token.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	if !s.Enabled() {
		return nil, ErrAuthDisabled
	}

	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, ErrTokenExpired
	}
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
