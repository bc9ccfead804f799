package sessions

import (
	"context"
	"errors"

	"defect-tracker.com/defect-tracker/internal/constants"
)

// Session is the identity carried between requests by the cookie token.
type Session struct {
	UserID int            `json:"user_id"`
	Role   constants.Role `json:"role"`
}

type Store interface {
	Put(ctx context.Context, token string, session Session) error

	// Get returns ErrSessionNotFound for unknown or expired tokens.
	Get(ctx context.Context, token string) (Session, error)

	Delete(ctx context.Context, token string) error
}

var ErrSessionNotFound = errors.New("session not found")
