package services

import (
	"context"

	"github.com/adayportal/backend/config"
	"github.com/adayportal/backend/internal/sessions"
	"github.com/adayportal/backend/internal/utils"
)

// AuthService gates the admin area behind one configured credential pair.
type AuthService interface {
	Login(ctx context.Context, username, password string) (token string, err error)
	Logout(ctx context.Context, token string) error
	IsLoggedIn(ctx context.Context, token string) (bool, error)
}

type authService struct {
	store sessions.Store
	admin config.AdminConfig
}

func NewAuthService(store sessions.Store, admin config.AdminConfig) AuthService {
	return &authService{store: store, admin: admin}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	const op = "AuthService.Login"

	if !utils.ConstantTimeEquals(username, s.admin.Username) || !s.passwordMatches(password) {
		return "", utils.E(utils.CodeUnauthorized, op, "invalid credentials", nil)
	}

	token, err := s.store.Create(ctx)
	if err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to create session", err)
	}
	return token, nil
}

func (s *authService) passwordMatches(password string) bool {
	if s.admin.PasswordHash != "" {
		return utils.CheckPasswordHash(s.admin.PasswordHash, password) == nil
	}
	return utils.ConstantTimeEquals(password, s.admin.Password)
}

func (s *authService) Logout(ctx context.Context, token string) error {
	const op = "AuthService.Logout"

	if err := s.store.Destroy(ctx, token); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to destroy session", err)
	}
	return nil
}

func (s *authService) IsLoggedIn(ctx context.Context, token string) (bool, error) {
	return s.store.Valid(ctx, token)
}
