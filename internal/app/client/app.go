package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"safetylog/internal/app/client/config"
	"safetylog/internal/domain/incident"
	"safetylog/internal/domain/session"
	"safetylog/internal/domain/user"
	"safetylog/internal/infrastructure/kvstore"
	"safetylog/internal/infrastructure/storage"

	"golang.org/x/exp/slog"
)

// App wires the local store, the domain services and the current session
// for the CLI. Everything runs in-process against the local kv store;
// there is no network backend.
type App struct {
	cfg       *config.Config
	log       *slog.Logger
	kv        kvstore.Store
	incidents incident.Servicer
	users     user.Servicer
	notifier  *Notifier
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	kv, err := kvstore.New(cfg.StoreBackend, cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	incidentRepo, err := storage.NewIncidentRepository(kv, log)
	if err != nil {
		kv.Close()
		return nil, fmt.Errorf("load incidents: %w", err)
	}
	userRepo := storage.NewUserRepository(kv, log)

	return &App{
		cfg:       cfg,
		log:       log,
		kv:        kv,
		incidents: incident.NewService(incidentRepo, log),
		users:     user.NewService(userRepo, log),
		notifier:  NewNotifier(os.Stdout),
	}, nil
}

func (a *App) Incidents() incident.Servicer {
	return a.incidents
}

func (a *App) Users() user.Servicer {
	return a.users
}

func (a *App) Notifier() *Notifier {
	return a.notifier
}

func (a *App) Config() *config.Config {
	return a.cfg
}

// Login stores the session on disk. The role is self-asserted unless the
// username is registered, in which case the registered role wins.
func (a *App) Login(ctx context.Context, username string, role session.Role) (*session.Session, error) {
	if username == "" {
		return nil, session.ErrEmptyName
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	resolved, err := a.users.ResolveRole(ctx, username, role)
	if err != nil {
		return nil, err
	}

	sess := &session.Session{Username: username, Role: resolved}
	data, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(a.cfg.SessionPath, data, 0o600); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	a.log.Info("logged in", "username", username, "role", resolved)
	return sess, nil
}

// Logout removes the stored session; logging out twice is a no-op.
func (a *App) Logout() error {
	if err := os.Remove(a.cfg.SessionPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}

// CurrentSession returns the stored session, or nil when logged out or
// when the stored file is unreadable.
func (a *App) CurrentSession() *session.Session {
	data, err := os.ReadFile(a.cfg.SessionPath)
	if err != nil {
		return nil
	}
	var sess session.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		a.log.Warn("stored session is malformed, ignoring", "error", err)
		return nil
	}
	return &sess
}

func (a *App) Close() error {
	return a.kv.Close()
}
