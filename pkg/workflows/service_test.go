// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workflows

import (
	"context"
	"errors"
	"testing"

	"github.com/nexuslabs/tenancy-service/internal/types"
	"github.com/nexuslabs/tenancy-service/pkg/tenancy"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package workflows -destination ./mock_workflows.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package workflows -destination ./mock_storage.go -source=../../internal/storage/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package workflows -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package workflows -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package workflows -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

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

func TestService_ListWorkflows(t *testing.T) {
	all := []*types.Workflow{{ID: "wf-1", ClientID: "client-a"}, {ID: "wf-2", ClientID: "client-a"}}

	t.Run("returns the resolved tenant's workflows", func(t *testing.T) {
		s, m := newTestService(t)
		se := &types.User{ID: "se-1", Role: types.RoleSE, AssignedClients: []string{"client-a"}}
		tenant := &types.TenantContext{UserID: "se-1", Role: types.RoleSE, ClientID: "client-a"}
		m.elevator.EXPECT().For(se).Return(m.base)
		m.base.EXPECT().ListWorkflowsByClientID(gomock.Any(), "client-a").Return(all, nil)

		got, err := s.ListWorkflows(context.Background(), se, tenant)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("expected 2 workflows, got %d", len(got))
		}
	})

	t.Run("admin reads through the elevated handle", func(t *testing.T) {
		s, m := newTestService(t)
		admin := &types.User{ID: "admin-1", Role: types.RoleAdmin}
		tenant := &types.TenantContext{UserID: "admin-1", Role: types.RoleAdmin, ClientID: "client-a"}
		m.elevator.EXPECT().For(admin).Return(m.elevated)
		m.elevated.EXPECT().ListWorkflowsByClientID(gomock.Any(), "client-a").Return(all, nil)

		if _, err := s.ListWorkflows(context.Background(), admin, tenant); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no tenant context", func(t *testing.T) {
		s, _ := newTestService(t)
		se := &types.User{ID: "se-1", Role: types.RoleSE}

		if _, err := s.ListWorkflows(context.Background(), se, nil); !errors.Is(err, tenancy.ErrNoTenantContext) {
			t.Fatalf("expected %v, got %v", tenancy.ErrNoTenantContext, err)
		}
		if _, err := s.ListWorkflows(context.Background(), se, &types.TenantContext{UserID: "se-1"}); !errors.Is(err, tenancy.ErrNoTenantContext) {
			t.Fatalf("expected %v, got %v", tenancy.ErrNoTenantContext, err)
		}
	})
}

func TestService_GetWorkflow(t *testing.T) {
	s, m := newTestService(t)
	user := &types.User{ID: "user-1", Role: types.RoleClient}
	tenant := &types.TenantContext{UserID: "user-1", Role: types.RoleClient, ClientID: "client-a"}
	m.elevator.EXPECT().For(user).Return(m.base)
	m.base.EXPECT().GetWorkflowByID(gomock.Any(), "client-a", "wf-1").Return(&types.Workflow{ID: "wf-1", ClientID: "client-a"}, nil)

	got, err := s.GetWorkflow(context.Background(), user, tenant, "wf-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "wf-1" {
		t.Errorf("expected wf-1, got %+v", got)
	}
}

func TestService_UpdateWorkflow(t *testing.T) {
	t.Run("assigned se updates within the tenant scope", func(t *testing.T) {
		s, m := newTestService(t)
		se := &types.User{ID: "se-1", Role: types.RoleSE, AssignedClients: []string{"client-a"}}
		tenant := &types.TenantContext{UserID: "se-1", Role: types.RoleSE, ClientID: "client-a"}
		updated := &types.Workflow{ID: "wf-1", ClientID: "client-a", Name: "Invoice intake"}

		m.elevator.EXPECT().For(se).Return(m.base).Times(2)
		m.base.EXPECT().UpdateWorkflow(gomock.Any(), gomock.AssignableToTypeOf(&types.Workflow{})).DoAndReturn(
			func(_ context.Context, workflow *types.Workflow) error {
				if workflow.ClientID != "client-a" {
					t.Errorf("expected workflow pinned to client-a, got %q", workflow.ClientID)
				}
				return nil
			})
		m.base.EXPECT().GetWorkflowByID(gomock.Any(), "client-a", "wf-1").Return(updated, nil)

		got, err := s.UpdateWorkflow(context.Background(), se, tenant, &types.Workflow{ID: "wf-1", Name: "Invoice intake"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name != "Invoice intake" {
			t.Errorf("expected updated workflow, got %+v", got)
		}
	})

	t.Run("client role is forbidden without mutation", func(t *testing.T) {
		s, m := newTestService(t)
		user := &types.User{ID: "user-1", Role: types.RoleClient}
		tenant := &types.TenantContext{UserID: "user-1", Role: types.RoleClient, ClientID: "client-a"}
		m.security.EXPECT().AuthzFailure("user-1", "workflow_update")

		_, err := s.UpdateWorkflow(context.Background(), user, tenant, &types.Workflow{ID: "wf-1"})
		if !errors.Is(err, tenancy.ErrForbidden) {
			t.Fatalf("expected %v, got %v", tenancy.ErrForbidden, err)
		}
	})

	t.Run("unassigned se is forbidden", func(t *testing.T) {
		s, m := newTestService(t)
		se := &types.User{ID: "se-1", Role: types.RoleSE, AssignedClients: []string{"client-b"}}
		tenant := &types.TenantContext{UserID: "se-1", Role: types.RoleSE, ClientID: "client-a"}
		m.security.EXPECT().AuthzFailure("se-1", "workflow_update")

		_, err := s.UpdateWorkflow(context.Background(), se, tenant, &types.Workflow{ID: "wf-1"})
		if !errors.Is(err, tenancy.ErrForbidden) {
			t.Fatalf("expected %v, got %v", tenancy.ErrForbidden, err)
		}
	})

	t.Run("admin updates any tenant elevated", func(t *testing.T) {
		s, m := newTestService(t)
		admin := &types.User{ID: "admin-1", Role: types.RoleAdmin}
		tenant := &types.TenantContext{UserID: "admin-1", Role: types.RoleAdmin, ClientID: "client-b"}

		m.elevator.EXPECT().For(admin).Return(m.elevated).Times(2)
		m.elevated.EXPECT().UpdateWorkflow(gomock.Any(), gomock.Any()).Return(nil)
		m.elevated.EXPECT().GetWorkflowByID(gomock.Any(), "client-b", "wf-9").Return(&types.Workflow{ID: "wf-9", ClientID: "client-b"}, nil)

		if _, err := s.UpdateWorkflow(context.Background(), admin, tenant, &types.Workflow{ID: "wf-9"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no tenant context", func(t *testing.T) {
		s, _ := newTestService(t)
		admin := &types.User{ID: "admin-1", Role: types.RoleAdmin}

		if _, err := s.UpdateWorkflow(context.Background(), admin, nil, &types.Workflow{ID: "wf-1"}); !errors.Is(err, tenancy.ErrNoTenantContext) {
			t.Fatalf("expected %v, got %v", tenancy.ErrNoTenantContext, err)
		}
	})
}
