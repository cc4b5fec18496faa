// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package exceptions

import (
	"context"
	"errors"
	"testing"

	"github.com/nexuslabs/tenancy-service/internal/storage"
	"github.com/nexuslabs/tenancy-service/internal/types"
	"github.com/nexuslabs/tenancy-service/pkg/tenancy"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package exceptions -destination ./mock_exceptions.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package exceptions -destination ./mock_storage.go -source=../../internal/storage/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package exceptions -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package exceptions -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package exceptions -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func strPtr(s string) *string {
	return &s
}

type serviceMocks struct {
	elevator *MockElevatorInterface
	base     *MockStorageInterface
	elevated *MockStorageInterface
	security *MockSecurityLoggerInterface
}

func newTestService(t *testing.T) (*Service, *serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &serviceMocks{
		elevator: NewMockElevatorInterface(ctrl),
		base:     NewMockStorageInterface(ctrl),
		elevated: NewMockStorageInterface(ctrl),
		security: NewMockSecurityLoggerInterface(ctrl),
	}

	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	ctx := context.Background()
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(ctx, trace.SpanFromContext(ctx)).AnyTimes()
	mockLogger.EXPECT().Security().Return(m.security).AnyTimes()

	return NewService(m.elevator, mockTracer, mockMonitor, mockLogger), m
}

func TestService_ListExceptions(t *testing.T) {
	all := []*types.Exception{{ID: "exc-1", ClientID: "client-a"}, {ID: "exc-2", ClientID: "client-a"}}

	t.Run("returns the resolved tenant's exceptions", func(t *testing.T) {
		s, m := newTestService(t)
		user := &types.User{ID: "user-1", Role: types.RoleClient, ClientID: strPtr("client-a")}
		tenant := &types.TenantContext{UserID: "user-1", Role: types.RoleClient, ClientID: "client-a"}
		m.elevator.EXPECT().For(user).Return(m.base)
		m.base.EXPECT().ListExceptionsByClientID(gomock.Any(), "client-a").Return(all, nil)

		got, err := s.ListExceptions(context.Background(), user, tenant)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("expected 2 exceptions, got %d", len(got))
		}
	})

	t.Run("no tenant context", func(t *testing.T) {
		s, _ := newTestService(t)
		se := &types.User{ID: "se-1", Role: types.RoleSE}

		if _, err := s.ListExceptions(context.Background(), se, nil); !errors.Is(err, tenancy.ErrNoTenantContext) {
			t.Fatalf("expected %v, got %v", tenancy.ErrNoTenantContext, err)
		}
	})
}

func TestService_GetException(t *testing.T) {
	s, m := newTestService(t)
	se := &types.User{ID: "se-1", Role: types.RoleSE, AssignedClients: []string{"client-a"}}
	tenant := &types.TenantContext{UserID: "se-1", Role: types.RoleSE, ClientID: "client-a"}
	m.elevator.EXPECT().For(se).Return(m.base)
	m.base.EXPECT().GetExceptionByID(gomock.Any(), "client-a", "exc-1").Return(&types.Exception{ID: "exc-1", ClientID: "client-a"}, nil)

	got, err := s.GetException(context.Background(), se, tenant, "exc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "exc-1" {
		t.Errorf("expected exc-1, got %+v", got)
	}
}

func TestService_UpdateStatus(t *testing.T) {
	t.Run("assigned se resolves with a remedy", func(t *testing.T) {
		s, m := newTestService(t)
		se := &types.User{ID: "se-1", Role: types.RoleSE, AssignedClients: []string{"client-a"}}
		tenant := &types.TenantContext{UserID: "se-1", Role: types.RoleSE, ClientID: "client-a"}
		remedy := strPtr("re-ran the job with corrected input")
		resolved := &types.Exception{ID: "exc-1", ClientID: "client-a", Status: storage.ExceptionStatusResolved}

		m.elevator.EXPECT().For(se).Return(m.base).Times(2)
		m.base.EXPECT().UpdateExceptionStatus(gomock.Any(), "client-a", "exc-1", storage.ExceptionStatusResolved, remedy).Return(nil)
		m.base.EXPECT().GetExceptionByID(gomock.Any(), "client-a", "exc-1").Return(resolved, nil)

		got, err := s.UpdateStatus(context.Background(), se, tenant, "exc-1", storage.ExceptionStatusResolved, remedy)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != storage.ExceptionStatusResolved {
			t.Errorf("expected resolved exception, got %+v", got)
		}
	})

	t.Run("admin updates any tenant elevated", func(t *testing.T) {
		s, m := newTestService(t)
		admin := &types.User{ID: "admin-1", Role: types.RoleAdmin}
		tenant := &types.TenantContext{UserID: "admin-1", Role: types.RoleAdmin, ClientID: "client-b"}

		m.elevator.EXPECT().For(admin).Return(m.elevated).Times(2)
		m.elevated.EXPECT().UpdateExceptionStatus(gomock.Any(), "client-b", "exc-9", storage.ExceptionStatusIgnored, nil).Return(nil)
		m.elevated.EXPECT().GetExceptionByID(gomock.Any(), "client-b", "exc-9").Return(&types.Exception{ID: "exc-9", ClientID: "client-b"}, nil)

		if _, err := s.UpdateStatus(context.Background(), admin, tenant, "exc-9", storage.ExceptionStatusIgnored, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("client role is forbidden without mutation", func(t *testing.T) {
		s, m := newTestService(t)
		user := &types.User{ID: "user-1", Role: types.RoleClient, ClientID: strPtr("client-a")}
		tenant := &types.TenantContext{UserID: "user-1", Role: types.RoleClient, ClientID: "client-a"}
		m.security.EXPECT().AuthzFailure("user-1", "exception_update")

		_, err := s.UpdateStatus(context.Background(), user, tenant, "exc-1", storage.ExceptionStatusResolved, nil)
		if !errors.Is(err, tenancy.ErrForbidden) {
			t.Fatalf("expected %v, got %v", tenancy.ErrForbidden, err)
		}
	})

	t.Run("unassigned se is forbidden", func(t *testing.T) {
		s, m := newTestService(t)
		se := &types.User{ID: "se-1", Role: types.RoleSE, AssignedClients: []string{"client-b"}}
		tenant := &types.TenantContext{UserID: "se-1", Role: types.RoleSE, ClientID: "client-a"}
		m.security.EXPECT().AuthzFailure("se-1", "exception_update")

		_, err := s.UpdateStatus(context.Background(), se, tenant, "exc-1", storage.ExceptionStatusInProgress, nil)
		if !errors.Is(err, tenancy.ErrForbidden) {
			t.Fatalf("expected %v, got %v", tenancy.ErrForbidden, err)
		}
	})

	t.Run("unknown status is rejected before any check", func(t *testing.T) {
		s, _ := newTestService(t)
		se := &types.User{ID: "se-1", Role: types.RoleSE, AssignedClients: []string{"client-a"}}
		tenant := &types.TenantContext{UserID: "se-1", Role: types.RoleSE, ClientID: "client-a"}

		if _, err := s.UpdateStatus(context.Background(), se, tenant, "exc-1", "escalated", nil); err == nil {
			t.Fatal("expected an error for an unknown status")
		}
	})

	t.Run("no tenant context", func(t *testing.T) {
		s, _ := newTestService(t)
		se := &types.User{ID: "se-1", Role: types.RoleSE}

		if _, err := s.UpdateStatus(context.Background(), se, nil, "exc-1", storage.ExceptionStatusNew, nil); !errors.Is(err, tenancy.ErrNoTenantContext) {
			t.Fatalf("expected %v, got %v", tenancy.ErrNoTenantContext, err)
		}
	})
}
