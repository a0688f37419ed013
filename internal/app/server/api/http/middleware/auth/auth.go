package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"safetylog/internal/domain/session"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Auth struct {
	sessions session.Servicer
	log      *slog.Logger
}

func New(sessions session.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		sessions: sessions,
		log:      log.With("component", "auth_middleware"),
	}
}

type contextKey string

const SessionKey contextKey = "session"

// Middleware resolves the bearer token into the session it labels and
// stores it in the request context. No credential is verified: the
// session carries whatever role the client asserted at login.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		token := ctx.Header("Authorization")

		if len(token) < 7 || token[:7] != "Bearer " {
			a.unauthorized(ctx)
			return
		}

		sess, err := a.sessions.Validate(ctx.Context(), token[7:])
		if err != nil {
			a.log.Debug("session validation failed", "error", err)
			a.unauthorized(ctx)
			return
		}

		newCtx := context.WithValue(ctx.Context(), SessionKey, sess)
		next(huma.WithContext(ctx, newCtx))
	}
}

func (a *Auth) unauthorized(ctx huma.Context) {
	ctx.SetStatus(http.StatusUnauthorized)
	ctx.SetHeader("Content-Type", "application/json")

	if err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]string{
		"error": "Unauthorized",
	}); err != nil {
		a.log.Error("write unauthorized response", "error", err)
	}
}

// GetSession pulls the authenticated session out of the request context.
func GetSession(ctx context.Context) (*session.Session, bool) {
	sess, ok := ctx.Value(SessionKey).(*session.Session)
	return sess, ok
}
