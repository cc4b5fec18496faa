// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package exceptions

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/nexuslabs/tenancy-service/internal/logging"
	"github.com/nexuslabs/tenancy-service/internal/monitoring"
	"github.com/nexuslabs/tenancy-service/internal/response"
	"github.com/nexuslabs/tenancy-service/internal/tracing"
	"github.com/nexuslabs/tenancy-service/pkg/tenancy"
)

type updateExceptionRequest struct {
	Status string  `json:"status" validate:"required,oneof=new in_progress resolved ignored"`
	Remedy *string `json:"remedy,omitempty"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

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
		service:  service,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/exceptions", a.list)
	mux.Get("/api/exceptions/{id}", a.get)
	mux.Patch("/api/exceptions/{id}", a.update)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "exceptions.API.list")
	defer span.End()

	principal := tenancy.PrincipalFromContext(ctx)
	if principal == nil {
		response.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	result, err := a.service.ListExceptions(ctx, principal.User, principal.Tenant)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, result)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "exceptions.API.get")
	defer span.End()

	principal := tenancy.PrincipalFromContext(ctx)
	if principal == nil {
		response.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	exception, err := a.service.GetException(ctx, principal.User, principal.Tenant, chi.URLParam(r, "id"))
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, exception)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "exceptions.API.update")
	defer span.End()

	principal := tenancy.PrincipalFromContext(ctx)
	if principal == nil {
		response.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req updateExceptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		response.WriteError(w, http.StatusBadRequest, "a valid status is required")
		return
	}

	exception, err := a.service.UpdateStatus(ctx, principal.User, principal.Tenant, chi.URLParam(r, "id"), req.Status, req.Remedy)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, exception)
}
