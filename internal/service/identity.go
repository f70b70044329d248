package service

import (
	"context"
	"fmt"
	"strings"

	"studysite/internal/auth"
	"studysite/internal/model"
	"studysite/internal/store"
)

// Register creates an account. It does not log the new account in.
// Validation order matters: the first failing check is the one reported.
func (s *Service) Register(ctx context.Context, username, password, confirm, role string) (*model.Account, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: please enter a username", store.ErrValidation)
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", store.ErrValidation)
	}
	if password != confirm {
		return nil, fmt.Errorf("%w: passwords do not match", store.ErrValidation)
	}
	if role == "" {
		role = model.RoleStudent
	}
	if role != model.RoleStudent && role != model.RoleTutor {
		return nil, fmt.Errorf("%w: unknown role %q", store.ErrValidation, role)
	}
	if !s.limiter.Allow(strings.ToLower(username)) {
		return nil, fmt.Errorf("%w: try again in a moment", ErrRateLimited)
	}
	a := model.Account{Username: username, Password: password, Role: role}
	if err := s.store.CreateAccount(ctx, a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Login checks credentials and establishes the session under the account's
// canonical-cased username, whatever casing was typed.
func (s *Service) Login(ctx context.Context, username, password string) (*model.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("%w: please enter your username", store.ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: please enter your password", store.ErrValidation)
	}
	if !s.limiter.Allow(strings.ToLower(username)) {
		return nil, fmt.Errorf("%w: try again in a moment", ErrRateLimited)
	}
	account, err := s.store.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	tok, err := auth.MakeToken(account.Username, s.secret)
	if err != nil {
		return nil, err
	}
	if err := s.store.SetSessionValue(ctx, tok); err != nil {
		return nil, err
	}
	return &model.Session{Username: account.Username}, nil
}

// Logout clears the session; logging out twice is fine.
func (s *Service) Logout(ctx context.Context) error {
	return s.store.ClearSession(ctx)
}

// CurrentUser returns the logged-in username, or "" when nobody is. A
// session can outlive its account; the username then no longer resolves and
// callers see an authenticated but unknown user.
func (s *Service) CurrentUser(ctx context.Context) (string, error) {
	raw, ok, err := s.store.SessionValue(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	claims, err := auth.ParseToken(raw, s.secret)
	if err != nil {
		// an unreadable or tampered session reads as logged out
		return "", nil
	}
	return claims.Username, nil
}

func (s *Service) requireUser(ctx context.Context) (string, error) {
	user, err := s.CurrentUser(ctx)
	if err != nil {
		return "", err
	}
	if user == "" {
		return "", fmt.Errorf("%w: please log in first", store.ErrNotAuthenticated)
	}
	return user, nil
}
