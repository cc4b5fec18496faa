// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clients

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/nexuslabs/tenancy-service/internal/logging"
	"github.com/nexuslabs/tenancy-service/internal/monitoring"
	"github.com/nexuslabs/tenancy-service/internal/response"
	"github.com/nexuslabs/tenancy-service/internal/tracing"
	"github.com/nexuslabs/tenancy-service/internal/types"
	"github.com/nexuslabs/tenancy-service/pkg/tenancy"
)

type createClientRequest struct {
	Name              string    `json:"name" validate:"required"`
	URL               *string   `json:"url,omitempty"`
	ContractStartDate time.Time `json:"contract_start_date" validate:"required"`
	Departments       []string  `json:"departments"`
	PipelinePhase     string    `json:"pipeline_phase" validate:"required"`
}

type updateClientRequest struct {
	Name          string   `json:"name" validate:"required"`
	URL           *string  `json:"url,omitempty"`
	Departments   []string `json:"departments"`
	PipelinePhase string   `json:"pipeline_phase" validate:"required"`
}

type assignSERequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
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
	mux.Get("/api/clients", a.list)
	mux.Post("/api/clients", a.create)
	mux.Get("/api/clients/{id}", a.get)
	mux.Patch("/api/clients/{id}", a.update)
	mux.Delete("/api/clients/{id}", a.delete)
	mux.Post("/api/clients/{id}/ses", a.assignSE)
	mux.Delete("/api/clients/{id}/ses/{userID}", a.unassignSE)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "clients.API.list")
	defer span.End()

	principal := tenancy.PrincipalFromContext(ctx)
	if principal == nil {
		response.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	result, err := a.service.ListClients(ctx, principal.User)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, result)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "clients.API.get")
	defer span.End()

	principal := tenancy.PrincipalFromContext(ctx)
	if principal == nil {
		response.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	client, err := a.service.GetClient(ctx, principal.User, chi.URLParam(r, "id"))
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, client)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "clients.API.create")
	defer span.End()

	principal := tenancy.PrincipalFromContext(ctx)
	if principal == nil {
		response.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		response.WriteError(w, http.StatusBadRequest, "name, contract_start_date and pipeline_phase are required")
		return
	}

	client, err := a.service.CreateClient(ctx, principal.User, &types.Client{
		Name:              req.Name,
		URL:               req.URL,
		ContractStartDate: req.ContractStartDate,
		Departments:       req.Departments,
		PipelinePhase:     req.PipelinePhase,
	})
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, client)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "clients.API.update")
	defer span.End()

	principal := tenancy.PrincipalFromContext(ctx)
	if principal == nil {
		response.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req updateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		response.WriteError(w, http.StatusBadRequest, "name and pipeline_phase are required")
		return
	}

	client, err := a.service.UpdateClient(ctx, principal.User, &types.Client{
		ID:            chi.URLParam(r, "id"),
		Name:          req.Name,
		URL:           req.URL,
		Departments:   req.Departments,
		PipelinePhase: req.PipelinePhase,
	})
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, client)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "clients.API.delete")
	defer span.End()

	principal := tenancy.PrincipalFromContext(ctx)
	if principal == nil {
		response.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := a.service.DeleteClient(ctx, principal.User, chi.URLParam(r, "id")); err != nil {
		response.WriteServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) assignSE(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "clients.API.assignSE")
	defer span.End()

	principal := tenancy.PrincipalFromContext(ctx)
	if principal == nil {
		response.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req assignSERequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		response.WriteError(w, http.StatusBadRequest, "user_id is required")
		return
	}

	if err := a.service.AssignSE(ctx, principal.User, chi.URLParam(r, "id"), req.UserID); err != nil {
		response.WriteServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) unassignSE(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "clients.API.unassignSE")
	defer span.End()

	principal := tenancy.PrincipalFromContext(ctx)
	if principal == nil {
		response.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := a.service.UnassignSE(ctx, principal.User, chi.URLParam(r, "id"), chi.URLParam(r, "userID")); err != nil {
		response.WriteServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
