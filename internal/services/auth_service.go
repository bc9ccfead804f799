package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	apperrors "defect-tracker.com/defect-tracker/internal/errors"
	repository "defect-tracker.com/defect-tracker/internal/repositories"
	"defect-tracker.com/defect-tracker/internal/sessions"
)

// AuthService exchanges credentials for a session token and revokes tokens
// on logout. The stored hash is bcrypt(password+login), so the login salts
// the secret the same way the upstream credential store does.
type AuthService struct {
	users *repository.UserRepository
	store sessions.Store
}

func NewAuthService(users *repository.UserRepository, store sessions.Store) *AuthService {
	return &AuthService{
		users: users,
		store: store,
	}
}

// Login returns the token to be carried in the session cookie.
// ErrUserNotFound for an unknown login, ErrWrongPassword for a bad secret.
func (s *AuthService) Login(ctx context.Context, login, password string) (string, error) {
	user, err := s.users.FindByLogin(ctx, login)
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(password+login),
	); err != nil {
		return "", apperrors.ErrWrongPassword
	}

	token := uuid.NewString()
	session := sessions.Session{
		UserID: user.ID,
		Role:   user.Role,
	}
	if err := s.store.Put(ctx, token, session); err != nil {
		return "", err
	}
	return token, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.store.Delete(ctx, token)
}
