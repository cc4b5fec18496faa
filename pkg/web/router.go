// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nexuslabs/tenancy-service/internal/db"
	"github.com/nexuslabs/tenancy-service/internal/logging"
	"github.com/nexuslabs/tenancy-service/internal/monitoring"
	"github.com/nexuslabs/tenancy-service/internal/tracing"
	"github.com/nexuslabs/tenancy-service/pkg/authentication"
	"github.com/nexuslabs/tenancy-service/pkg/billing"
	"github.com/nexuslabs/tenancy-service/pkg/clients"
	"github.com/nexuslabs/tenancy-service/pkg/exceptions"
	"github.com/nexuslabs/tenancy-service/pkg/metrics"
	"github.com/nexuslabs/tenancy-service/pkg/session"
	"github.com/nexuslabs/tenancy-service/pkg/status"
	"github.com/nexuslabs/tenancy-service/pkg/tenancy"
	"github.com/nexuslabs/tenancy-service/pkg/users"
	"github.com/nexuslabs/tenancy-service/pkg/workflows"
)

// Config carries the services and middlewares the router mounts. Every
// field is required except where noted.
type Config struct {
	Tenancy    tenancy.ServiceInterface
	Session    session.ServiceInterface
	Clients    clients.ServiceInterface
	Users      users.ServiceInterface
	Workflows  workflows.ServiceInterface
	Exceptions exceptions.ServiceInterface
	Billing    billing.ServiceInterface

	Authentication *authentication.Middleware
	DBClient       db.DBClientInterface

	SessionTTL         time.Duration
	CORSAllowedOrigins []string
}

func NewRouter(
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	router.Use(
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
		db.TransactionMiddleware(cfg.DBClient, logger),
	)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	sessionAPI := session.NewAPI(cfg.Session, cfg.SessionTTL, tracer, monitor, logger)
	sessionAPI.RegisterUnauthenticatedEndpoints(router)

	router.Group(func(r chi.Router) {
		r.Use(
			cfg.Authentication.Authenticate(),
			tenancy.NewMiddleware(cfg.Tenancy, logger).ResolvePrincipal(),
		)

		sessionAPI.RegisterEndpoints(r)
		clients.NewAPI(cfg.Clients, tracer, monitor, logger).RegisterEndpoints(r)
		users.NewAPI(cfg.Users, tracer, monitor, logger).RegisterEndpoints(r)
		workflows.NewAPI(cfg.Workflows, tracer, monitor, logger).RegisterEndpoints(r)
		exceptions.NewAPI(cfg.Exceptions, tracer, monitor, logger).RegisterEndpoints(r)
		billing.NewAPI(cfg.Billing, tracer, monitor, logger).RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
