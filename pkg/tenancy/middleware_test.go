// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/nexuslabs/tenancy-service/internal/types"
	"github.com/nexuslabs/tenancy-service/pkg/authentication"
	"go.uber.org/mock/gomock"
)

func newTestMiddleware(t *testing.T) (*Middleware, *MockServiceInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	service := NewMockServiceInterface(ctrl)
	logger := NewMockLoggerInterface(ctrl)
	logger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

	return NewMiddleware(service, logger), service
}

func requestWithSession(session *authentication.Session, target string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, target, nil)
	if session != nil {
		r = r.WithContext(authentication.WithSession(r.Context(), session))
	}
	return r
}

func capturePrincipal(principal **Principal) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*principal = PrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddleware_ResolvePrincipal(t *testing.T) {
	t.Run("resolves user and tenant", func(t *testing.T) {
		mw, service := newTestMiddleware(t)
		session := &authentication.Session{UserID: "se-1"}
		user := &types.User{ID: "se-1", Role: types.RoleSE, AssignedClients: []string{"client-a"}}
		tenant := &types.TenantContext{UserID: "se-1", Role: types.RoleSE, ClientID: "client-a"}

		service.EXPECT().CurrentUser(gomock.Any(), "se-1").Return(user, nil)
		service.EXPECT().ResolveTenant(gomock.Any(), session, "").Return(tenant, nil)

		var principal *Principal
		w := httptest.NewRecorder()
		mw.ResolvePrincipal()(capturePrincipal(&principal)).ServeHTTP(w, requestWithSession(session, "/api/workflows"))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if principal == nil || principal.Tenant == nil || principal.Tenant.ClientID != "client-a" {
			t.Fatalf("expected a resolved principal, got %+v", principal)
		}
	})

	t.Run("forwards the client_id nomination", func(t *testing.T) {
		mw, service := newTestMiddleware(t)
		session := &authentication.Session{UserID: "se-1"}
		user := &types.User{ID: "se-1", Role: types.RoleSE, AssignedClients: []string{"client-a", "client-b"}}

		service.EXPECT().CurrentUser(gomock.Any(), "se-1").Return(user, nil)
		service.EXPECT().ResolveTenant(gomock.Any(), session, "client-b").
			Return(&types.TenantContext{UserID: "se-1", Role: types.RoleSE, ClientID: "client-b"}, nil)

		var principal *Principal
		w := httptest.NewRecorder()
		mw.ResolvePrincipal()(capturePrincipal(&principal)).ServeHTTP(w, requestWithSession(session, "/api/workflows?client_id=client-b"))

		if principal == nil || principal.Tenant == nil || principal.Tenant.ClientID != "client-b" {
			t.Fatalf("expected the nominated tenant, got %+v", principal)
		}
	})

	t.Run("reconciles a stale assignment cache for se users", func(t *testing.T) {
		mw, service := newTestMiddleware(t)
		session := &authentication.Session{UserID: "se-1"}
		// The row cache lags a fresh assignment the resolver just validated.
		user := &types.User{ID: "se-1", Role: types.RoleSE, AssignedClients: []string{"client-a"}}

		service.EXPECT().CurrentUser(gomock.Any(), "se-1").Return(user, nil)
		service.EXPECT().ResolveTenant(gomock.Any(), session, "client-b").
			Return(&types.TenantContext{UserID: "se-1", Role: types.RoleSE, ClientID: "client-b"}, nil)

		var principal *Principal
		w := httptest.NewRecorder()
		mw.ResolvePrincipal()(capturePrincipal(&principal)).ServeHTTP(w, requestWithSession(session, "/api/workflows?client_id=client-b"))

		if principal == nil || !slices.Contains(principal.User.AssignedClients, "client-b") {
			t.Fatalf("expected client-b in the reconciled assignment set, got %+v", principal)
		}
	})

	t.Run("missing tenant context is not fatal", func(t *testing.T) {
		mw, service := newTestMiddleware(t)
		session := &authentication.Session{UserID: "se-1"}
		user := &types.User{ID: "se-1", Role: types.RoleSE}

		service.EXPECT().CurrentUser(gomock.Any(), "se-1").Return(user, nil)
		service.EXPECT().ResolveTenant(gomock.Any(), session, "").Return(nil, ErrNoTenantContext)

		var principal *Principal
		w := httptest.NewRecorder()
		mw.ResolvePrincipal()(capturePrincipal(&principal)).ServeHTTP(w, requestWithSession(session, "/api/me"))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if principal == nil || principal.Tenant != nil {
			t.Fatalf("expected a principal without tenant scope, got %+v", principal)
		}
	})

	t.Run("no session is unauthorized", func(t *testing.T) {
		mw, _ := newTestMiddleware(t)

		var principal *Principal
		w := httptest.NewRecorder()
		mw.ResolvePrincipal()(capturePrincipal(&principal)).ServeHTTP(w, requestWithSession(nil, "/api/workflows"))

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
		if principal != nil {
			t.Fatalf("expected no principal, got %+v", principal)
		}
	})

	t.Run("tampered tenant nomination is forbidden", func(t *testing.T) {
		mw, service := newTestMiddleware(t)
		session := &authentication.Session{UserID: "se-1"}
		user := &types.User{ID: "se-1", Role: types.RoleSE, AssignedClients: []string{"client-a"}}

		service.EXPECT().CurrentUser(gomock.Any(), "se-1").Return(user, nil)
		service.EXPECT().ResolveTenant(gomock.Any(), session, "client-x").Return(nil, ErrForbidden)

		var principal *Principal
		w := httptest.NewRecorder()
		mw.ResolvePrincipal()(capturePrincipal(&principal)).ServeHTTP(w, requestWithSession(session, "/api/workflows?client_id=client-x"))

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("unknown user is unauthorized", func(t *testing.T) {
		mw, service := newTestMiddleware(t)
		session := &authentication.Session{UserID: "ghost"}

		service.EXPECT().CurrentUser(gomock.Any(), "ghost").Return(nil, ErrUnauthorized)

		w := httptest.NewRecorder()
		var principal *Principal
		mw.ResolvePrincipal()(capturePrincipal(&principal)).ServeHTTP(w, requestWithSession(session, "/api/workflows"))

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
