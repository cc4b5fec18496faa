// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

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

type inviteUserRequest struct {
	Email          string  `json:"email" validate:"required,email"`
	Name           string  `json:"name" validate:"required"`
	Role           string  `json:"role" validate:"required,oneof=admin se client"`
	ClientID       *string `json:"client_id,omitempty" validate:"omitempty,uuid"`
	CanManageUsers bool    `json:"can_manage_users"`
	IsBillingAdmin bool    `json:"is_billing_admin"`
}

type updateUserRequest struct {
	Name           string   `json:"name" validate:"required"`
	Phone          *string  `json:"phone,omitempty"`
	Role           string   `json:"role" validate:"required,oneof=admin se client"`
	ClientID       *string  `json:"client_id,omitempty" validate:"omitempty,uuid"`
	CanManageUsers bool     `json:"can_manage_users"`
	IsBillingAdmin bool     `json:"is_billing_admin"`
	HourlyCostRate *float64 `json:"hourly_cost_rate,omitempty"`
	HourlyBillRate *float64 `json:"hourly_bill_rate,omitempty"`
}

type inviteUserResponse struct {
	User         *types.User `json:"user"`
	RecoveryLink string      `json:"recovery_link"`
	RecoveryCode string      `json:"recovery_code"`
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
	mux.Get("/api/users", a.list)
	mux.Post("/api/users", a.invite)
	mux.Get("/api/users/{id}", a.get)
	mux.Patch("/api/users/{id}", a.update)
	mux.Delete("/api/users/{id}", a.delete)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.list")
	defer span.End()

	principal := tenancy.PrincipalFromContext(ctx)
	if principal == nil {
		response.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	result, err := a.service.ListUsers(ctx, principal.User)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, result)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.get")
	defer span.End()

	principal := tenancy.PrincipalFromContext(ctx)
	if principal == nil {
		response.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := a.service.GetUser(ctx, principal.User, chi.URLParam(r, "id"))
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, user)
}

func (a *API) invite(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.invite")
	defer span.End()

	principal := tenancy.PrincipalFromContext(ctx)
	if principal == nil {
		response.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req inviteUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		response.WriteError(w, http.StatusBadRequest, "email, name and a valid role are required")
		return
	}

	result, err := a.service.InviteUser(ctx, principal.User, &Invite{
		Email:          req.Email,
		Name:           req.Name,
		Role:           req.Role,
		ClientID:       req.ClientID,
		CanManageUsers: req.CanManageUsers,
		IsBillingAdmin: req.IsBillingAdmin,
	})
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, inviteUserResponse{
		User:         result.User,
		RecoveryLink: result.RecoveryLink,
		RecoveryCode: result.RecoveryCode,
	})
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.update")
	defer span.End()

	principal := tenancy.PrincipalFromContext(ctx)
	if principal == nil {
		response.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		response.WriteError(w, http.StatusBadRequest, "name and a valid role are required")
		return
	}

	user, err := a.service.UpdateUser(ctx, principal.User, &types.User{
		ID:             chi.URLParam(r, "id"),
		Name:           req.Name,
		Phone:          req.Phone,
		Role:           req.Role,
		ClientID:       req.ClientID,
		CanManageUsers: req.CanManageUsers,
		IsBillingAdmin: req.IsBillingAdmin,
		HourlyCostRate: req.HourlyCostRate,
		HourlyBillRate: req.HourlyBillRate,
	})
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, user)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.delete")
	defer span.End()

	principal := tenancy.PrincipalFromContext(ctx)
	if principal == nil {
		response.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := a.service.DeleteUser(ctx, principal.User, chi.URLParam(r, "id")); err != nil {
		response.WriteServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
