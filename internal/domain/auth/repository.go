package auth

import (
	"context"
	"time"
)

// RefreshTokenRepository stores refresh tokens by hash only.
type RefreshTokenRepository interface {
	CreateRefreshToken(ctx context.Context, employeeID string, token string, expiresAt time.Time) error

	// IsRefreshTokenRevoked reports whether the token is revoked or expired and returns its owner
	IsRefreshTokenRevoked(ctx context.Context, token string) (employeeID string, revoked bool, err error)

	RevokeRefreshToken(ctx context.Context, token string) error
}
