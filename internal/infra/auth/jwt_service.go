// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"quill/config"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
}

// NewJWTService is the constructor for jwtService. Both secrets are required;
// missing configuration is fatal at startup.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.SecretKey.Access == cfg.SecretKey.Refresh {
		return nil, errors.New("access and refresh secrets must differ")
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     cfg.SecretKey.AccessTTL,
		refreshTTL:    cfg.SecretKey.RefreshTTL,
	}, nil
}

// IssueAccessToken creates a short-lived token signed with the primary secret.
func (s *jwtService) IssueAccessToken(userID int64, email string) (string, error) {
	return s.sign(userID, email, s.accessTTL, s.accessSecret)
}

// IssueRefreshToken creates a long-lived token signed with the secondary secret.
func (s *jwtService) IssueRefreshToken(userID int64, email string) (string, error) {
	return s.sign(userID, email, s.refreshTTL, s.refreshSecret)
}

// VerifyAccessToken checks a token against the primary secret.
func (s *jwtService) VerifyAccessToken(tokenString string) (*service.Claims, error) {
	return s.verify(tokenString, s.accessSecret)
}

// VerifyRefreshToken checks a token against the secondary secret.
func (s *jwtService) VerifyRefreshToken(tokenString string) (*service.Claims, error) {
	return s.verify(tokenString, s.refreshSecret)
}

// RefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) sign(userID int64, email string, ttl time.Duration, secret string) (string, error) {
	now := time.Now()
	claims := service.Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secret))
}

func (s *jwtService) verify(tokenString, secret string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token verification failed")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("malformed subject claim")
	}
	claims.UserID = userID

	return claims, nil
}
