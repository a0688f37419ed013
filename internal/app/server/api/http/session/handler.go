package session

import (
	"context"
	"errors"
	"strings"

	"safetylog/internal/app/server/api/http/middleware/auth"
	domain "safetylog/internal/domain/session"
	"safetylog/internal/domain/user"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	sessions       domain.Servicer
	users          user.Servicer
	log            *slog.Logger
	middleware     huma.Middlewares
	authMiddleware huma.Middlewares
}

func NewHandler(sessions domain.Servicer, users user.Servicer, log *slog.Logger, public, authed huma.Middlewares) *Handler {
	return &Handler{
		sessions:       sessions,
		users:          users,
		log:            log,
		middleware:     public,
		authMiddleware: authed,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.logoutOp(), h.logout)
	huma.Register(api, h.meOp(), h.me)
	huma.Register(api, h.registerOp(), h.register)
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	role := input.Body.Role
	if role == "" {
		role = domain.RoleUser
	}

	// A registered name keeps the role it registered with.
	role, err := h.users.ResolveRole(ctx, input.Body.Username, role)
	if err != nil {
		return nil, huma.Error500InternalServerError("login failed")
	}

	token, sess, err := h.sessions.Create(ctx, input.Body.Username, role)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyName) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, huma.Error500InternalServerError("login failed")
	}

	return &loginOutput{
		Body: loginResponse{
			Token:   token,
			Session: sess,
		},
	}, nil
}

func (h *Handler) logout(ctx context.Context, input *logoutInput) (*output, error) {
	if _, ok := auth.GetSession(ctx); !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	// The auth middleware already validated the header shape.
	token := strings.TrimPrefix(input.Authorization, "Bearer ")
	if err := h.sessions.Destroy(ctx, token); err != nil {
		return nil, huma.Error500InternalServerError("logout failed")
	}
	return &output{Body: response{Status: "Ok"}}, nil
}

func (h *Handler) me(ctx context.Context, _ *struct{}) (*meOutput, error) {
	sess, ok := auth.GetSession(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}
	return &meOutput{Body: sess}, nil
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*output, error) {
	role := input.Body.Role
	if role == "" {
		role = domain.RoleUser
	}

	if _, err := h.users.Register(ctx, input.Body.Username, role); err != nil {
		switch {
		case errors.Is(err, user.ErrAlreadyExists):
			return nil, huma.Error409Conflict(err.Error())
		case errors.Is(err, user.ErrEmptyName):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		default:
			return nil, huma.Error500InternalServerError("registration failed")
		}
	}

	return &output{Body: response{Status: "Ok"}}, nil
}
