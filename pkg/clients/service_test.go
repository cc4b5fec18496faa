// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clients

import (
	"context"
	"errors"
	"testing"

	"github.com/nexuslabs/tenancy-service/internal/types"
	"github.com/nexuslabs/tenancy-service/pkg/tenancy"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package clients -destination ./mock_clients.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package clients -destination ./mock_storage.go -source=../../internal/storage/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package clients -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package clients -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package clients -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

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
	m.elevator.EXPECT().Base().Return(m.base).AnyTimes()

	return NewService(m.elevator, mockTracer, mockMonitor, mockLogger), m
}

func TestService_ListClients(t *testing.T) {
	all := []*types.Client{{ID: "client-a"}, {ID: "client-b"}, {ID: "client-c"}}

	t.Run("admin lists everything elevated", func(t *testing.T) {
		s, m := newTestService(t)
		admin := &types.User{ID: "admin-1", Role: types.RoleAdmin}
		m.elevator.EXPECT().For(admin).Return(m.elevated)
		m.elevated.EXPECT().ListClients(gomock.Any()).Return(all, nil)

		got, err := s.ListClients(context.Background(), admin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 {
			t.Errorf("expected 3 clients, got %d", len(got))
		}
	})

	t.Run("se gets the assigned subset as partial results", func(t *testing.T) {
		s, m := newTestService(t)
		se := &types.User{ID: "se-1", Role: types.RoleSE}
		m.base.EXPECT().ListClientIDsAssignedTo(gomock.Any(), "se-1").Return([]string{"client-a"}, nil)
		m.base.EXPECT().ListClientsByIDs(gomock.Any(), []string{"client-a"}).Return(all[:1], nil)

		got, err := s.ListClients(context.Background(), se)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "client-a" {
			t.Errorf("expected only client-a, got %+v", got)
		}
	})

	t.Run("client user sees only the own tenant", func(t *testing.T) {
		s, m := newTestService(t)
		user := &types.User{ID: "user-1", Role: types.RoleClient, ClientID: strPtr("client-b")}
		m.base.EXPECT().GetClientByID(gomock.Any(), "client-b").Return(all[1], nil)

		got, err := s.ListClients(context.Background(), user)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "client-b" {
			t.Errorf("expected only client-b, got %+v", got)
		}
	})

	t.Run("unknown role is forbidden", func(t *testing.T) {
		s, _ := newTestService(t)
		if _, err := s.ListClients(context.Background(), &types.User{ID: "x", Role: "superuser"}); !errors.Is(err, tenancy.ErrForbidden) {
			t.Fatalf("expected %v, got %v", tenancy.ErrForbidden, err)
		}
	})
}

func TestService_GetClient(t *testing.T) {
	client := &types.Client{ID: "client-a", Name: "Acme"}

	t.Run("admin reads any tenant elevated", func(t *testing.T) {
		s, m := newTestService(t)
		admin := &types.User{ID: "admin-1", Role: types.RoleAdmin}
		m.elevator.EXPECT().For(admin).Return(m.elevated)
		m.elevated.EXPECT().GetClientByID(gomock.Any(), "client-a").Return(client, nil)

		got, err := s.GetClient(context.Background(), admin, "client-a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "client-a" {
			t.Errorf("expected client-a, got %+v", got)
		}
	})

	t.Run("se reads an assigned tenant", func(t *testing.T) {
		s, m := newTestService(t)
		se := &types.User{ID: "se-1", Role: types.RoleSE}
		m.base.EXPECT().ListClientIDsAssignedTo(gomock.Any(), "se-1").Return([]string{"client-a"}, nil)
		m.base.EXPECT().GetClientByID(gomock.Any(), "client-a").Return(client, nil)

		if _, err := s.GetClient(context.Background(), se, "client-a"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("se denial does not reveal whether the tenant exists", func(t *testing.T) {
		s, m := newTestService(t)
		se := &types.User{ID: "se-1", Role: types.RoleSE}
		m.base.EXPECT().ListClientIDsAssignedTo(gomock.Any(), "se-1").Return([]string{"client-a"}, nil)
		m.security.EXPECT().AuthzFailure("se-1", "client_read")

		if _, err := s.GetClient(context.Background(), se, "no-such-client"); !errors.Is(err, tenancy.ErrForbidden) {
			t.Fatalf("expected %v, got %v", tenancy.ErrForbidden, err)
		}
	})

	t.Run("client user reads the own tenant only", func(t *testing.T) {
		s, m := newTestService(t)
		user := &types.User{ID: "user-1", Role: types.RoleClient, ClientID: strPtr("client-a")}
		m.base.EXPECT().GetClientByID(gomock.Any(), "client-a").Return(client, nil)

		if _, err := s.GetClient(context.Background(), user, "client-a"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		m.security.EXPECT().AuthzFailure("user-1", "client_read")
		if _, err := s.GetClient(context.Background(), user, "client-b"); !errors.Is(err, tenancy.ErrForbidden) {
			t.Fatalf("expected %v, got %v", tenancy.ErrForbidden, err)
		}
	})
}

func TestService_CreateClient(t *testing.T) {
	t.Run("admin only", func(t *testing.T) {
		s, m := newTestService(t)
		admin := &types.User{ID: "admin-1", Role: types.RoleAdmin}
		created := &types.Client{ID: "client-new", Name: "New"}
		m.elevator.EXPECT().For(admin).Return(m.elevated)
		m.elevated.EXPECT().CreateClient(gomock.Any(), gomock.Any()).Return(created, nil)

		got, err := s.CreateClient(context.Background(), admin, &types.Client{Name: "New"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "client-new" {
			t.Errorf("expected created client, got %+v", got)
		}
	})

	t.Run("se is forbidden", func(t *testing.T) {
		s, m := newTestService(t)
		m.security.EXPECT().AuthzFailure("se-1", "client_create")

		_, err := s.CreateClient(context.Background(), &types.User{ID: "se-1", Role: types.RoleSE}, &types.Client{Name: "New"})
		if !errors.Is(err, tenancy.ErrForbidden) {
			t.Fatalf("expected %v, got %v", tenancy.ErrForbidden, err)
		}
	})
}

func TestService_UpdateClient(t *testing.T) {
	t.Run("assigned se may update", func(t *testing.T) {
		s, m := newTestService(t)
		se := &types.User{ID: "se-1", Role: types.RoleSE}
		updated := &types.Client{ID: "client-a", Name: "Renamed"}
		m.base.EXPECT().ListClientIDsAssignedTo(gomock.Any(), "se-1").Return([]string{"client-a"}, nil)
		m.base.EXPECT().UpdateClient(gomock.Any(), gomock.Any()).Return(nil)
		m.base.EXPECT().GetClientByID(gomock.Any(), "client-a").Return(updated, nil)

		got, err := s.UpdateClient(context.Background(), se, &types.Client{ID: "client-a", Name: "Renamed"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name != "Renamed" {
			t.Errorf("expected renamed client, got %+v", got)
		}
	})

	t.Run("unassigned se is forbidden without mutation", func(t *testing.T) {
		s, m := newTestService(t)
		se := &types.User{ID: "se-1", Role: types.RoleSE}
		m.base.EXPECT().ListClientIDsAssignedTo(gomock.Any(), "se-1").Return([]string{"client-a"}, nil)
		m.security.EXPECT().AuthzFailure("se-1", "client_update")

		_, err := s.UpdateClient(context.Background(), se, &types.Client{ID: "client-b"})
		if !errors.Is(err, tenancy.ErrForbidden) {
			t.Fatalf("expected %v, got %v", tenancy.ErrForbidden, err)
		}
	})

	t.Run("client role is forbidden", func(t *testing.T) {
		s, m := newTestService(t)
		m.security.EXPECT().AuthzFailure("user-1", "client_update")

		_, err := s.UpdateClient(context.Background(), &types.User{ID: "user-1", Role: types.RoleClient, ClientID: strPtr("client-a")}, &types.Client{ID: "client-a"})
		if !errors.Is(err, tenancy.ErrForbidden) {
			t.Fatalf("expected %v, got %v", tenancy.ErrForbidden, err)
		}
	})
}

func TestService_AssignSE(t *testing.T) {
	t.Run("admin assigns", func(t *testing.T) {
		s, m := newTestService(t)
		admin := &types.User{ID: "admin-1", Role: types.RoleAdmin}
		m.elevator.EXPECT().For(admin).Return(m.elevated)
		m.elevated.EXPECT().AssignSE(gomock.Any(), "client-a", "se-1").Return(nil)

		if err := s.AssignSE(context.Background(), admin, "client-a", "se-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("se cannot self-assign", func(t *testing.T) {
		s, m := newTestService(t)
		m.security.EXPECT().AuthzFailure("se-1", "se_assignment")

		err := s.AssignSE(context.Background(), &types.User{ID: "se-1", Role: types.RoleSE}, "client-a", "se-1")
		if !errors.Is(err, tenancy.ErrForbidden) {
			t.Fatalf("expected %v, got %v", tenancy.ErrForbidden, err)
		}
	})
}
