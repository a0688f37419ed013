package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"safetylog/internal/domain/session"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Register(ctx context.Context, username string, role session.Role) (*User, error)
	Find(ctx context.Context, username string) (*User, error)
	// ResolveRole returns the registered role for the username, or the
	// asserted role when the name is unknown.
	ResolveRole(ctx context.Context, username string, asserted session.Role) (session.Role, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) Servicer {
	return &Service{
		repo: repo,
		log:  log.With("component", "user_service"),
	}
}

func (s *Service) Register(ctx context.Context, username string, role session.Role) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrEmptyName
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.repo.Find(ctx, username); err == nil {
		return nil, ErrAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}

	u := &User{Username: username, Role: role}
	if err := s.repo.Save(ctx, u); err != nil {
		s.log.Error("failed to save user", "username", username, "error", err)
		return nil, fmt.Errorf("save user: %w", err)
	}

	s.log.Info("user registered", "username", username, "role", role)
	return u, nil
}

func (s *Service) Find(ctx context.Context, username string) (*User, error) {
	return s.repo.Find(ctx, strings.TrimSpace(username))
}

func (s *Service) ResolveRole(ctx context.Context, username string, asserted session.Role) (session.Role, error) {
	u, err := s.repo.Find(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return asserted, nil
		}
		return "", fmt.Errorf("resolve role: %w", err)
	}
	return u.Role, nil
}
