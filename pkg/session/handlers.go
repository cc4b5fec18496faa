// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

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
	"github.com/nexuslabs/tenancy-service/pkg/authentication"
	"github.com/nexuslabs/tenancy-service/pkg/tenancy"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signupRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Name     string  `json:"name" validate:"required"`
	Phone    *string `json:"phone,omitempty"`
	ClientID string  `json:"client_id,omitempty" validate:"omitempty,uuid"`
}

type updateProfileRequest struct {
	Name  string  `json:"name" validate:"required"`
	Phone *string `json:"phone,omitempty"`
}

type switchClientRequest struct {
	ClientID string `json:"client_id" validate:"required,uuid"`
}

type sessionResponse struct {
	User   *types.User          `json:"user"`
	Claims *types.SessionClaims `json:"claims"`
}

type API struct {
	service    ServiceInterface
	sessionTTL time.Duration
	validate   *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	sessionTTL time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:    service,
		sessionTTL: sessionTTL,
		validate:   validator.New(),
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}

// RegisterUnauthenticatedEndpoints mounts the routes reachable without a
// session.
func (a *API) RegisterUnauthenticatedEndpoints(mux chi.Router) {
	mux.Post("/api/auth/login", a.login)
	mux.Post("/api/auth/signup", a.signup)
	mux.Post("/api/auth/logout", a.logout)
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/me", a.me)
	mux.Patch("/api/me", a.updateProfile)
	mux.Get("/api/me/clients", a.listClients)
	mux.Post("/api/auth/switch-client", a.switchClient)
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "session.API.login")
	defer span.End()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		response.WriteError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	result, err := a.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	a.setSessionCookies(w, result)
	response.WriteJSON(w, http.StatusOK, sessionResponse{User: result.User, Claims: result.Claims})
}

func (a *API) signup(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "session.API.signup")
	defer span.End()

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		response.WriteError(w, http.StatusBadRequest, "invalid signup payload")
		return
	}

	result, err := a.service.Signup(ctx, &SignupRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
		ClientID: req.ClientID,
	})
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	a.setSessionCookies(w, result)
	response.WriteJSON(w, http.StatusCreated, sessionResponse{User: result.User, Claims: result.Claims})
}

func (a *API) logout(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "session.API.logout")
	defer span.End()

	a.clearCookie(w, authentication.SessionCookieName, true)
	a.clearCookie(w, authentication.TenantCookieName, false)
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "session.API.me")
	defer span.End()

	principal := tenancy.PrincipalFromContext(ctx)
	if principal == nil {
		response.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	response.WriteJSON(w, http.StatusOK, principal.User)
}

func (a *API) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "session.API.updateProfile")
	defer span.End()

	principal := tenancy.PrincipalFromContext(ctx)
	if principal == nil {
		response.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		response.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}

	result, err := a.service.UpdateProfile(ctx, principal.User.ID, req.Name, req.Phone)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	a.setSessionCookies(w, result)
	response.WriteJSON(w, http.StatusOK, sessionResponse{User: result.User, Claims: result.Claims})
}

func (a *API) listClients(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "session.API.listClients")
	defer span.End()

	principal := tenancy.PrincipalFromContext(ctx)
	if principal == nil {
		response.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	clients, err := a.service.ListVisibleClients(ctx, principal.User.ID)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, clients)
}

func (a *API) switchClient(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "session.API.switchClient")
	defer span.End()

	principal := tenancy.PrincipalFromContext(ctx)
	if principal == nil {
		response.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req switchClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		response.WriteError(w, http.StatusBadRequest, "client_id is required")
		return
	}

	result, err := a.service.Switch(ctx, principal.User.ID, req.ClientID)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	a.setSessionCookies(w, result)
	response.WriteJSON(w, http.StatusOK, sessionResponse{User: result.User, Claims: result.Claims})
}

// setSessionCookies writes the signed session token and, when the claims
// carry an active tenant, the fast-path tenant-selection cookie.
func (a *API) setSessionCookies(w http.ResponseWriter, result *SessionResult) {
	http.SetCookie(w, &http.Cookie{
		Name:     authentication.SessionCookieName,
		Value:    result.Token,
		Path:     "/",
		MaxAge:   int(a.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	if result.Claims != nil && result.Claims.ClientID != "" {
		// No explicit expiry: the tenant selection lives as long as the
		// browser session.
		http.SetCookie(w, &http.Cookie{
			Name:     authentication.TenantCookieName,
			Value:    result.Claims.ClientID,
			Path:     "/",
			SameSite: http.SameSiteLaxMode,
		})
	}
}

func (a *API) clearCookie(w http.ResponseWriter, name string, httpOnly bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: httpOnly,
	})
}
