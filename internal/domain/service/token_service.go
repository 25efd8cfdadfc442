package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by both token kinds.
type Claims struct {
	UserID int64  `json:"-"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying JWTs.
// Access and refresh tokens are signed with independent secrets and
// independent lifetimes; no token is ever persisted server-side.
type TokenService interface {
	// IssueAccessToken creates a short-lived bearer credential.
	IssueAccessToken(userID int64, email string) (string, error)

	// IssueRefreshToken creates a long-lived credential signed with the
	// secondary secret.
	IssueRefreshToken(userID int64, email string) (string, error)

	// VerifyAccessToken checks signature and expiry against the primary secret.
	VerifyAccessToken(tokenString string) (*Claims, error)

	// VerifyRefreshToken checks signature and expiry against the secondary
	// secret. A token signed with the access secret never verifies here.
	VerifyRefreshToken(tokenString string) (*Claims, error)

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}
