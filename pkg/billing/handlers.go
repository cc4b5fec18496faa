// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexuslabs/tenancy-service/internal/logging"
	"github.com/nexuslabs/tenancy-service/internal/monitoring"
	"github.com/nexuslabs/tenancy-service/internal/response"
	"github.com/nexuslabs/tenancy-service/internal/tracing"
	"github.com/nexuslabs/tenancy-service/pkg/tenancy"
)

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service: service,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/billing", a.get)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "billing.API.get")
	defer span.End()

	principal := tenancy.PrincipalFromContext(ctx)
	if principal == nil {
		response.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	subscription, err := a.service.GetSubscription(ctx, principal.User, principal.Tenant)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	// subscription is nil for tenants that were never subscribed; the
	// portal renders that as an empty billing page.
	response.WriteJSON(w, http.StatusOK, subscription)
}
