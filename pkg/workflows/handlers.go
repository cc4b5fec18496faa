// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workflows

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/nexuslabs/tenancy-service/internal/logging"
	"github.com/nexuslabs/tenancy-service/internal/monitoring"
	"github.com/nexuslabs/tenancy-service/internal/response"
	"github.com/nexuslabs/tenancy-service/internal/tracing"
	"github.com/nexuslabs/tenancy-service/internal/types"
	"github.com/nexuslabs/tenancy-service/pkg/tenancy"
)

type updateWorkflowRequest struct {
	Name                   string  `json:"name" validate:"required"`
	Department             string  `json:"department" validate:"required"`
	Description            *string `json:"description,omitempty"`
	IsActive               bool    `json:"is_active"`
	TimeSavedPerExecution  float64 `json:"time_saved_per_execution" validate:"gte=0"`
	MoneySavedPerExecution float64 `json:"money_saved_per_execution" validate:"gte=0"`
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
	mux.Get("/api/workflows", a.list)
	mux.Get("/api/workflows/{id}", a.get)
	mux.Patch("/api/workflows/{id}", a.update)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workflows.API.list")
	defer span.End()

	principal := tenancy.PrincipalFromContext(ctx)
	if principal == nil {
		response.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	result, err := a.service.ListWorkflows(ctx, principal.User, principal.Tenant)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, result)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workflows.API.get")
	defer span.End()

	principal := tenancy.PrincipalFromContext(ctx)
	if principal == nil {
		response.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	workflow, err := a.service.GetWorkflow(ctx, principal.User, principal.Tenant, chi.URLParam(r, "id"))
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, workflow)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workflows.API.update")
	defer span.End()

	principal := tenancy.PrincipalFromContext(ctx)
	if principal == nil {
		response.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req updateWorkflowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		response.WriteError(w, http.StatusBadRequest, "name and department are required")
		return
	}

	workflow, err := a.service.UpdateWorkflow(ctx, principal.User, principal.Tenant, &types.Workflow{
		ID:                     chi.URLParam(r, "id"),
		Name:                   req.Name,
		Department:             req.Department,
		Description:            req.Description,
		IsActive:               req.IsActive,
		TimeSavedPerExecution:  req.TimeSavedPerExecution,
		MoneySavedPerExecution: req.MoneySavedPerExecution,
	})
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, workflow)
}
