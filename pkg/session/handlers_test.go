// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nexuslabs/tenancy-service/internal/types"
	"github.com/nexuslabs/tenancy-service/pkg/authentication"
	"github.com/nexuslabs/tenancy-service/pkg/tenancy"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

func newTestAPI(t *testing.T) (*API, *MockServiceInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockServiceInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		}).AnyTimes()

	return NewAPI(mockService, time.Hour, mockTracer, mockMonitor, mockLogger), mockService
}

func withPrincipal(r *http.Request, user *types.User) *http.Request {
	return r.WithContext(tenancy.WithPrincipal(r.Context(), &tenancy.Principal{User: user}))
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestAPI_Login(t *testing.T) {
	api, mockService := newTestAPI(t)
	mux := chi.NewMux()
	api.RegisterUnauthenticatedEndpoints(mux)

	result := &SessionResult{
		User:   &types.User{ID: "se-1", Role: types.RoleSE},
		Claims: &types.SessionClaims{UserRole: types.RoleSE, ClientID: "client-a"},
		Token:  "signed-token",
	}
	mockService.EXPECT().Login(gomock.Any(), "se@nexus.test", "hunter2hunter2").Return(result, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"se@nexus.test","password":"hunter2hunter2"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	session := findCookie(t, rec, authentication.SessionCookieName)
	if session == nil || session.Value != "signed-token" {
		t.Fatalf("expected session cookie with issued token, got %+v", session)
	}
	if !session.HttpOnly {
		t.Errorf("session cookie must be http-only")
	}

	tenant := findCookie(t, rec, authentication.TenantCookieName)
	if tenant == nil || tenant.Value != "client-a" {
		t.Fatalf("expected tenant cookie client-a, got %+v", tenant)
	}
	if tenant.Path != "/" {
		t.Errorf("tenant cookie must be set on the root path, got %q", tenant.Path)
	}
	if tenant.MaxAge != 0 || tenant.RawExpires != "" {
		t.Errorf("tenant cookie must carry no explicit expiry, got %+v", tenant)
	}
}

func TestAPI_Login_InvalidPayload(t *testing.T) {
	api, _ := newTestAPI(t)
	mux := chi.NewMux()
	api.RegisterUnauthenticatedEndpoints(mux)

	for _, body := range []string{`not json`, `{"email":"nope"}`, `{"password":"x"}`} {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected %d, got %d", body, http.StatusBadRequest, rec.Code)
		}
	}
}

func TestAPI_Logout_ClearsCookies(t *testing.T) {
	api, _ := newTestAPI(t)
	mux := chi.NewMux()
	api.RegisterUnauthenticatedEndpoints(mux)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected %d, got %d", http.StatusNoContent, rec.Code)
	}
	for _, name := range []string{authentication.SessionCookieName, authentication.TenantCookieName} {
		c := findCookie(t, rec, name)
		if c == nil || c.MaxAge >= 0 {
			t.Errorf("expected expired %s cookie, got %+v", name, c)
		}
	}
}

func TestAPI_SwitchClient(t *testing.T) {
	api, mockService := newTestAPI(t)
	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	user := &types.User{ID: "se-1", Role: types.RoleSE}
	result := &SessionResult{
		User:   user,
		Claims: &types.SessionClaims{UserRole: types.RoleSE, ClientID: "11111111-2222-4333-8444-555555555555"},
		Token:  "reissued-token",
	}
	mockService.EXPECT().Switch(gomock.Any(), "se-1", "11111111-2222-4333-8444-555555555555").Return(result, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/switch-client", strings.NewReader(`{"client_id":"11111111-2222-4333-8444-555555555555"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, withPrincipal(req, user))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	tenant := findCookie(t, rec, authentication.TenantCookieName)
	if tenant == nil || tenant.Value != "11111111-2222-4333-8444-555555555555" {
		t.Errorf("expected tenant cookie for the new tenant, got %+v", tenant)
	}
}

func TestAPI_SwitchClient_Forbidden(t *testing.T) {
	api, mockService := newTestAPI(t)
	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	user := &types.User{ID: "se-1", Role: types.RoleSE}
	mockService.EXPECT().Switch(gomock.Any(), "se-1", gomock.Any()).Return(nil, tenancy.ErrForbidden)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/switch-client", strings.NewReader(`{"client_id":"11111111-2222-4333-8444-555555555555"}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, withPrincipal(req, user))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected %d, got %d", http.StatusForbidden, rec.Code)
	}
	if c := findCookie(t, rec, authentication.TenantCookieName); c != nil {
		t.Errorf("rejected switch must not touch the tenant cookie, got %+v", c)
	}
}

func TestAPI_Me(t *testing.T) {
	api, _ := newTestAPI(t)
	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	t.Run("authenticated", func(t *testing.T) {
		user := &types.User{ID: "user-1", Email: "user@nexus.test", Role: types.RoleClient}
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, withPrincipal(req, user))

		if rec.Code != http.StatusOK {
			t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "user@nexus.test") {
			t.Errorf("expected user payload, got %s", rec.Body.String())
		}
	})

	t.Run("no principal", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected %d, got %d", http.StatusUnauthorized, rec.Code)
		}
	})
}
