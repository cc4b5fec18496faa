// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"context"
	"errors"
	"testing"

	"github.com/nexuslabs/tenancy-service/internal/storage"
	"github.com/nexuslabs/tenancy-service/internal/types"
	"github.com/nexuslabs/tenancy-service/pkg/authentication"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package tenancy -destination ./mock_tenancy.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenancy -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenancy -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenancy -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func strPtr(s string) *string {
	return &s
}

func newTestService(t *testing.T) (*Service, *MockStorageInterface, *MockSecurityLoggerInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockSecurity := NewMockSecurityLoggerInterface(ctrl)

	ctx := context.Background()
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(ctx, trace.SpanFromContext(ctx)).AnyTimes()
	mockLogger.EXPECT().Security().Return(mockSecurity).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).AnyTimes()

	return NewService(mockStorage, mockTracer, mockMonitor, mockLogger), mockStorage, mockSecurity
}

func TestService_ResolveTenant_ClientRole(t *testing.T) {
	testCases := []struct {
		name        string
		user        *types.User
		session     *authentication.Session
		requested   string
		expectedID  string
		expectedErr error
	}{
		{
			name: "own tenant",
			user: &types.User{ID: "user-1", Role: types.RoleClient, ClientID: strPtr("client-a")},
			session: &authentication.Session{
				UserID: "user-1",
			},
			expectedID: "client-a",
		},
		{
			name: "cookie and claims for another tenant are ignored",
			user: &types.User{ID: "user-1", Role: types.RoleClient, ClientID: strPtr("client-a")},
			session: &authentication.Session{
				UserID:       "user-1",
				TenantCookie: "client-b",
				Claims:       &types.SessionClaims{UserRole: types.RoleClient, ClientID: "client-b"},
			},
			expectedID: "client-a",
		},
		{
			name: "request parameter for another tenant is ignored",
			user: &types.User{ID: "user-1", Role: types.RoleClient, ClientID: strPtr("client-a")},
			session: &authentication.Session{
				UserID: "user-1",
			},
			requested:  "client-b",
			expectedID: "client-a",
		},
		{
			name:        "no tenant on record",
			user:        &types.User{ID: "user-1", Role: types.RoleClient},
			session:     &authentication.Session{UserID: "user-1"},
			expectedErr: ErrNoTenantContext,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, _ := newTestService(t)
			mockStorage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(tc.user, nil)

			tenant, err := s.ResolveTenant(context.Background(), tc.session, tc.requested)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tenant.ClientID != tc.expectedID {
				t.Errorf("expected tenant %q, got %q", tc.expectedID, tenant.ClientID)
			}
			if tenant.Role != types.RoleClient {
				t.Errorf("expected role %q, got %q", types.RoleClient, tenant.Role)
			}
		})
	}
}

func TestService_ResolveTenant_SERole(t *testing.T) {
	assigned := []string{"client-a", "client-b", "client-c"}
	seUser := &types.User{ID: "se-1", Role: types.RoleSE, AssignedClients: assigned}

	testCases := []struct {
		name         string
		session      *authentication.Session
		requested    string
		assigned     []string
		expectedID   string
		expectedErr  error
		authzFailure bool
	}{
		{
			name: "request parameter wins over cookie and claim",
			session: &authentication.Session{
				UserID:       "se-1",
				TenantCookie: "client-b",
				Claims:       &types.SessionClaims{UserRole: types.RoleSE, ClientID: "client-c"},
			},
			requested:  "client-a",
			assigned:   assigned,
			expectedID: "client-a",
		},
		{
			name: "cookie wins over claim",
			session: &authentication.Session{
				UserID:       "se-1",
				TenantCookie: "client-b",
				Claims:       &types.SessionClaims{UserRole: types.RoleSE, ClientID: "client-c"},
			},
			assigned:   assigned,
			expectedID: "client-b",
		},
		{
			name: "claim used when cookie absent",
			session: &authentication.Session{
				UserID: "se-1",
				Claims: &types.SessionClaims{UserRole: types.RoleSE, ClientID: "client-c"},
			},
			assigned:   assigned,
			expectedID: "client-c",
		},
		{
			name: "claim with stale role falls back to first assigned",
			session: &authentication.Session{
				UserID: "se-1",
				Claims: &types.SessionClaims{UserRole: types.RoleAdmin, ClientID: "client-c"},
			},
			assigned:   assigned,
			expectedID: "client-a",
		},
		{
			name:       "no candidate defaults to first assigned",
			session:    &authentication.Session{UserID: "se-1"},
			assigned:   assigned,
			expectedID: "client-a",
		},
		{
			name: "tampered cookie outside assigned set is forbidden",
			session: &authentication.Session{
				UserID:       "se-1",
				TenantCookie: "client-z",
			},
			assigned:     assigned,
			expectedErr:  ErrForbidden,
			authzFailure: true,
		},
		{
			name: "tampered claim outside assigned set is forbidden",
			session: &authentication.Session{
				UserID: "se-1",
				Claims: &types.SessionClaims{UserRole: types.RoleSE, ClientID: "client-z"},
			},
			assigned:     assigned,
			expectedErr:  ErrForbidden,
			authzFailure: true,
		},
		{
			name:        "no assignments",
			session:     &authentication.Session{UserID: "se-1"},
			assigned:    []string{},
			expectedErr: ErrNoTenantContext,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, mockSecurity := newTestService(t)
			mockStorage.EXPECT().GetUserByID(gomock.Any(), "se-1").Return(seUser, nil)
			mockStorage.EXPECT().ListClientIDsAssignedTo(gomock.Any(), "se-1").Return(tc.assigned, nil)
			if tc.authzFailure {
				mockSecurity.EXPECT().AuthzFailure("se-1", "tenant_resolution")
			}

			tenant, err := s.ResolveTenant(context.Background(), tc.session, tc.requested)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tenant.ClientID != tc.expectedID {
				t.Errorf("expected tenant %q, got %q", tc.expectedID, tenant.ClientID)
			}
		})
	}
}

func TestService_ResolveTenant_AdminRole(t *testing.T) {
	admin := &types.User{ID: "admin-1", Role: types.RoleAdmin}

	t.Run("no nomination means no tenant scope", func(t *testing.T) {
		s, mockStorage, _ := newTestService(t)
		mockStorage.EXPECT().GetUserByID(gomock.Any(), "admin-1").Return(admin, nil)

		tenant, err := s.ResolveTenant(context.Background(), &authentication.Session{UserID: "admin-1"}, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tenant.ClientID != "" {
			t.Errorf("expected empty tenant scope for admin, got %q", tenant.ClientID)
		}
		if tenant.Role != types.RoleAdmin {
			t.Errorf("expected role %q, got %q", types.RoleAdmin, tenant.Role)
		}
	})

	t.Run("any nominated tenant is accepted unvalidated", func(t *testing.T) {
		s, mockStorage, _ := newTestService(t)
		mockStorage.EXPECT().GetUserByID(gomock.Any(), "admin-1").Return(admin, nil)

		tenant, err := s.ResolveTenant(context.Background(), &authentication.Session{UserID: "admin-1", TenantCookie: "client-a"}, "client-b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tenant.ClientID != "client-b" {
			t.Errorf("expected nominated tenant client-b, got %q", tenant.ClientID)
		}
	})
}

func TestService_ResolveTenant_Unauthorized(t *testing.T) {
	t.Run("nil session", func(t *testing.T) {
		s, _, _ := newTestService(t)
		if _, err := s.ResolveTenant(context.Background(), nil, ""); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected %v, got %v", ErrUnauthorized, err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		s, mockStorage, _ := newTestService(t)
		mockStorage.EXPECT().GetUserByID(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)
		if _, err := s.ResolveTenant(context.Background(), &authentication.Session{UserID: "ghost"}, ""); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected %v, got %v", ErrUnauthorized, err)
		}
	})
}

func TestService_SwitchTenant(t *testing.T) {
	assigned := []string{"client-a", "client-b"}

	t.Run("success", func(t *testing.T) {
		s, mockStorage, mockSecurity := newTestService(t)
		seUser := &types.User{ID: "se-1", Role: types.RoleSE, ClientID: strPtr("client-a"), AssignedClients: assigned}
		mockStorage.EXPECT().GetUserByID(gomock.Any(), "se-1").Return(seUser, nil)
		mockStorage.EXPECT().ListClientIDsAssignedTo(gomock.Any(), "se-1").Return(assigned, nil)
		mockSecurity.EXPECT().TenantSwitch("se-1", "client-a", "client-b")

		claims, err := s.SwitchTenant(context.Background(), "se-1", "client-b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.ClientID != "client-b" {
			t.Errorf("expected active tenant client-b, got %q", claims.ClientID)
		}
		if claims.UserRole != types.RoleSE {
			t.Errorf("expected role %q, got %q", types.RoleSE, claims.UserRole)
		}
		if len(claims.AssignedClients) != 2 {
			t.Errorf("expected full assigned set, got %v", claims.AssignedClients)
		}
	})

	t.Run("idempotent for the active tenant", func(t *testing.T) {
		s, mockStorage, mockSecurity := newTestService(t)
		seUser := &types.User{ID: "se-1", Role: types.RoleSE, ClientID: strPtr("client-a"), AssignedClients: assigned}
		mockStorage.EXPECT().GetUserByID(gomock.Any(), "se-1").Return(seUser, nil)
		mockStorage.EXPECT().ListClientIDsAssignedTo(gomock.Any(), "se-1").Return(assigned, nil)
		mockSecurity.EXPECT().TenantSwitch("se-1", "client-a", "client-a")

		claims, err := s.SwitchTenant(context.Background(), "se-1", "client-a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.ClientID != "client-a" {
			t.Errorf("expected active tenant client-a, got %q", claims.ClientID)
		}
	})

	t.Run("stale assignment cache is refreshed", func(t *testing.T) {
		s, mockStorage, mockSecurity := newTestService(t)
		seUser := &types.User{ID: "se-1", Role: types.RoleSE, AssignedClients: []string{"client-a"}}
		mockStorage.EXPECT().GetUserByID(gomock.Any(), "se-1").Return(seUser, nil)
		mockStorage.EXPECT().ListClientIDsAssignedTo(gomock.Any(), "se-1").Return(assigned, nil)
		mockStorage.EXPECT().UpdateUserAssignedClients(gomock.Any(), "se-1", assigned).Return(nil)
		mockSecurity.EXPECT().TenantSwitch("se-1", "", "client-b")

		if _, err := s.SwitchTenant(context.Background(), "se-1", "client-b"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unassigned tenant is forbidden without mutation", func(t *testing.T) {
		s, mockStorage, mockSecurity := newTestService(t)
		seUser := &types.User{ID: "se-1", Role: types.RoleSE, AssignedClients: assigned}
		mockStorage.EXPECT().GetUserByID(gomock.Any(), "se-1").Return(seUser, nil)
		mockStorage.EXPECT().ListClientIDsAssignedTo(gomock.Any(), "se-1").Return(assigned, nil)
		mockSecurity.EXPECT().AuthzFailure("se-1", "tenant_switch")

		if _, err := s.SwitchTenant(context.Background(), "se-1", "client-z"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected %v, got %v", ErrForbidden, err)
		}
	})

	t.Run("non-switching roles are forbidden", func(t *testing.T) {
		for _, role := range []string{types.RoleAdmin, types.RoleClient} {
			s, mockStorage, mockSecurity := newTestService(t)
			mockStorage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(&types.User{ID: "user-1", Role: role}, nil)
			mockSecurity.EXPECT().AuthzFailure("user-1", "tenant_switch")

			if _, err := s.SwitchTenant(context.Background(), "user-1", "client-a"); !errors.Is(err, ErrForbidden) {
				t.Fatalf("role %s: expected %v, got %v", role, ErrForbidden, err)
			}
		}
	})
}

func TestService_SyncClaims(t *testing.T) {
	assigned := []string{"client-a", "client-b"}

	testCases := []struct {
		name        string
		user        *types.User
		selected    string
		assigned    []string
		expected    *types.SessionClaims
		expectedErr error
	}{
		{
			name:     "client role",
			user:     &types.User{ID: "user-1", Role: types.RoleClient, ClientID: strPtr("client-a")},
			expected: &types.SessionClaims{UserRole: types.RoleClient, ClientID: "client-a"},
		},
		{
			name:        "client without tenant",
			user:        &types.User{ID: "user-1", Role: types.RoleClient},
			expectedErr: ErrNoTenantContext,
		},
		{
			name:     "se keeps selected tenant when assigned",
			user:     &types.User{ID: "user-1", Role: types.RoleSE, AssignedClients: assigned},
			selected: "client-b",
			assigned: assigned,
			expected: &types.SessionClaims{UserRole: types.RoleSE, ClientID: "client-b", AssignedClients: assigned},
		},
		{
			name:     "se falls back to first assigned when selection is not assigned",
			user:     &types.User{ID: "user-1", Role: types.RoleSE, AssignedClients: assigned},
			selected: "client-z",
			assigned: assigned,
			expected: &types.SessionClaims{UserRole: types.RoleSE, ClientID: "client-a", AssignedClients: assigned},
		},
		{
			name:        "se without assignments",
			user:        &types.User{ID: "user-1", Role: types.RoleSE},
			assigned:    []string{},
			expectedErr: ErrNoTenantContext,
		},
		{
			name:     "admin carries no tenant claim",
			user:     &types.User{ID: "user-1", Role: types.RoleAdmin},
			expected: &types.SessionClaims{UserRole: types.RoleAdmin},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, mockStorage, _ := newTestService(t)
			mockStorage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(tc.user, nil)
			if tc.user.Role == types.RoleSE {
				mockStorage.EXPECT().ListClientIDsAssignedTo(gomock.Any(), "user-1").Return(tc.assigned, nil)
			}

			claims, err := s.SyncClaims(context.Background(), "user-1", tc.selected)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if claims.UserRole != tc.expected.UserRole || claims.ClientID != tc.expected.ClientID {
				t.Errorf("expected claims %+v, got %+v", tc.expected, claims)
			}
		})
	}
}

func TestService_SyncClaims_CacheRefreshFailureIsNonFatal(t *testing.T) {
	s, mockStorage, _ := newTestService(t)
	assigned := []string{"client-a", "client-b"}
	seUser := &types.User{ID: "se-1", Role: types.RoleSE, AssignedClients: []string{"client-a"}}
	mockStorage.EXPECT().GetUserByID(gomock.Any(), "se-1").Return(seUser, nil)
	mockStorage.EXPECT().ListClientIDsAssignedTo(gomock.Any(), "se-1").Return(assigned, nil)
	mockStorage.EXPECT().UpdateUserAssignedClients(gomock.Any(), "se-1", assigned).Return(errors.New("db error"))

	claims, err := s.SyncClaims(context.Background(), "se-1", "client-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.ClientID != "client-a" {
		t.Errorf("expected active tenant client-a, got %q", claims.ClientID)
	}
}
