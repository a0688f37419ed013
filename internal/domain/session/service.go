package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Create(ctx context.Context, username string, role Role) (string, *Session, error)
	Validate(ctx context.Context, token string) (*Session, error)
	Destroy(ctx context.Context, token string) error
}

// Service keeps sessions in process memory, keyed by the sha256 of the
// issued token. Sessions live until logout or process exit; there is no
// server-side persistence for them.
type Service struct {
	mu       sync.RWMutex
	sessions map[string]Session
	log      *slog.Logger
}

func NewService(log *slog.Logger) *Service {
	return &Service{
		sessions: make(map[string]Session),
		log:      log.With("component", "session_service"),
	}
}

func (s *Service) Create(_ context.Context, username string, role Role) (string, *Session, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", nil, ErrEmptyName
	}
	if err := role.Validate(); err != nil {
		return "", nil, err
	}

	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	token := base64.URLEncoding.EncodeToString(tokenBytes)

	sess := Session{Username: username, Role: role}
	s.mu.Lock()
	s.sessions[hashToken(token)] = sess
	s.mu.Unlock()

	s.log.Info("session created", "username", username, "role", role)
	return token, &sess, nil
}

func (s *Service) Validate(_ context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	s.mu.RLock()
	sess, ok := s.sessions[hashToken(token)]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return &sess, nil
}

// Destroy removes the session; destroying an unknown token is a no-op.
func (s *Service) Destroy(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, hashToken(token))
	s.mu.Unlock()
	return nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
