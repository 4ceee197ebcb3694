package auth

import (
	"context"
	"time"
)

// RefreshTokenRepository persists refresh tokens so logouts and rotations
// survive restarts.
type RefreshTokenRepository interface {
	Store(ctx context.Context, userID, token string, expiresAt time.Time) error
	Get(ctx context.Context, token string) (RefreshToken, error)
	Revoke(ctx context.Context, token string) error
	RevokeAllForUser(ctx context.Context, userID string) error
}
