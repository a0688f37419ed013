// Incident logging API over the local record store.
//
// POST   /session/login              # Start a session (public)
// POST   /user/register              # Register a username (public)
// GET    /session                    # Current session (auth)
// DELETE /session                    # Logout (auth)
// GET    /api/incidents              # List with search/filter/sort/page (auth)
// POST   /api/incidents              # Log an incident (auth)
// GET    /api/incidents/{id}         # Get one incident (auth)
// PUT    /api/incidents/{id}         # Edit an incident (auth)
// DELETE /api/incidents/{id}         # Delete, confirm=true required (auth)
// GET    /api/incidents/summary      # Impact statistics, admin only (auth)
// GET    /api/incidents/export       # CSV download (auth)

package api

import (
	"safetylog/internal/app/server/api/http/health"
	incidentAPI "safetylog/internal/app/server/api/http/incident"
	"safetylog/internal/app/server/api/http/middleware"
	"safetylog/internal/app/server/api/http/middleware/auth"
	loggerMW "safetylog/internal/app/server/api/http/middleware/logger"
	sessionAPI "safetylog/internal/app/server/api/http/session"
	"safetylog/internal/domain/incident"
	"safetylog/internal/domain/session"
	"safetylog/internal/domain/user"
	"safetylog/internal/infrastructure/storage"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health   *health.Handler
	Session  *sessionAPI.Handler
	Incident *incidentAPI.Handler
}

// New builds the chi mux with all operations registered through huma.
func New(incidentRepo *storage.IncidentRepository, userRepo *storage.UserRepository, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Safetylog API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, config)

	h := handlers(incidentRepo, userRepo, log)
	h.Health.SetupRoutes(API)
	h.Session.SetupRoutes(API)
	h.Incident.SetupRoutes(API)

	return mux
}

func handlers(incidentRepo *storage.IncidentRepository, userRepo *storage.UserRepository, log *slog.Logger) *Handlers {
	sessionService := session.NewService(log)
	userService := user.NewService(userRepo, log)
	incidentService := incident.NewService(incidentRepo, log)

	authMW := auth.New(sessionService, log)
	logMW := loggerMW.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(logMW.Middleware())
	healthHandler := health.NewHandler(log, middlewares.GetAllAndClear())

	middlewares.Add(logMW.Middleware())
	publicMWs := middlewares.GetAllAndClear()
	middlewares.Add(authMW.Middleware())
	middlewares.Add(logMW.Middleware())
	sessionHandler := sessionAPI.NewHandler(sessionService, userService, log, publicMWs, middlewares.GetAllAndClear())

	middlewares.Add(authMW.Middleware())
	middlewares.Add(logMW.Middleware())
	incidentHandler := incidentAPI.NewHandler(incidentService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:   healthHandler,
		Session:  sessionHandler,
		Incident: incidentHandler,
	}
}
