package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"safetylog/internal/domain/session"
	"safetylog/internal/domain/user"
	"safetylog/internal/infrastructure/kvstore"

	"golang.org/x/exp/slog"
)

// UserRepository persists the registered-name registry under KeyUsers as
// a JSON object of username → role.
type UserRepository struct {
	mu  sync.Mutex
	kv  kvstore.Store
	log *slog.Logger
}

func NewUserRepository(kv kvstore.Store, log *slog.Logger) *UserRepository {
	return &UserRepository{
		kv:  kv,
		log: log.With("component", "user_repository"),
	}
}

func (r *UserRepository) Find(_ context.Context, username string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}
	role, ok := users[username]
	if !ok {
		return nil, user.ErrNotFound
	}
	return &user.User{Username: username, Role: role}, nil
}

func (r *UserRepository) Save(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return err
	}
	users[u.Username] = u.Role

	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("marshal users: %w", err)
	}
	if err := r.kv.Set(kvstore.KeyUsers, string(data)); err != nil {
		return fmt.Errorf("persist users: %w", err)
	}
	return nil
}

func (r *UserRepository) load() (map[string]session.Role, error) {
	raw, found, err := r.kv.Get(kvstore.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	users := make(map[string]session.Role)
	if found && raw != "" {
		if err := json.Unmarshal([]byte(raw), &users); err != nil {
			r.log.Warn("stored users are malformed, starting empty", "error", err)
			return make(map[string]session.Role), nil
		}
	}
	return users, nil
}
