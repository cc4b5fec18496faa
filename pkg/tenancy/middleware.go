// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"

	"github.com/nexuslabs/tenancy-service/internal/logging"
	"github.com/nexuslabs/tenancy-service/internal/types"
	"github.com/nexuslabs/tenancy-service/pkg/authentication"
)

type Middleware struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(service ServiceInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{service: service, logger: logger}
}

// ResolvePrincipal loads the authoritative user and resolves the active
// tenant for the authenticated session. Requests may nominate a tenant with
// the client_id query parameter; the nomination is validated like any other
// candidate. A missing tenant context is not fatal here since some
// operations (profile, tenant listing, admin surfaces) work without one.
func (m *Middleware) ResolvePrincipal() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := authentication.SessionFromContext(r.Context())
			if session == nil {
				m.writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			requested := r.URL.Query().Get("client_id")

			user, err := m.service.CurrentUser(r.Context(), session.UserID)
			if err != nil {
				m.writeResolutionError(w, err)
				return
			}

			principal := &Principal{User: user}

			tenant, err := m.service.ResolveTenant(r.Context(), session, requested)
			switch {
			case err == nil:
				principal.Tenant = tenant
				// Resolution validated membership against the
				// authoritative assignment edge; make sure the cached
				// set on the row agrees so the guards do too.
				if principal.User.Role == types.RoleSE && tenant.ClientID != "" &&
					!slices.Contains(principal.User.AssignedClients, tenant.ClientID) {
					principal.User.AssignedClients = append(principal.User.AssignedClients, tenant.ClientID)
				}
			case errors.Is(err, ErrNoTenantContext):
				// Leave Tenant nil; tenant-scoped handlers reject later.
			default:
				m.writeResolutionError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

func (m *Middleware) writeResolutionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUnauthorized):
		m.writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, ErrForbidden):
		m.writeError(w, http.StatusForbidden, "forbidden")
	default:
		m.logger.Errorf("tenant resolution failed: %v", err)
		m.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (m *Middleware) writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"error": message, "status": status})
}
