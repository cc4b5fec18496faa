// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

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

//go:generate mockgen -build_flags=--mod=mod -package billing -destination ./mock_billing.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package billing -destination ./mock_storage.go -source=../../internal/storage/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package billing -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package billing -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package billing -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

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

func TestService_GetSubscription(t *testing.T) {
	subscription := &types.Subscription{ID: "sub-1", ClientID: "client-a", Plan: "growth", Status: "active"}

	t.Run("billing admin of the tenant reads the subscription", func(t *testing.T) {
		s, m := newTestService(t)
		user := &types.User{ID: "user-1", Role: types.RoleClient, ClientID: strPtr("client-a"), IsBillingAdmin: true}
		tenant := &types.TenantContext{UserID: "user-1", Role: types.RoleClient, ClientID: "client-a"}
		m.elevator.EXPECT().For(user).Return(m.base)
		m.base.EXPECT().GetLatestSubscriptionByClientID(gomock.Any(), "client-a").Return(subscription, nil)

		got, err := s.GetSubscription(context.Background(), user, tenant)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "sub-1" {
			t.Errorf("expected sub-1, got %+v", got)
		}
	})

	t.Run("admin reads any tenant elevated", func(t *testing.T) {
		s, m := newTestService(t)
		admin := &types.User{ID: "admin-1", Role: types.RoleAdmin}
		tenant := &types.TenantContext{UserID: "admin-1", Role: types.RoleAdmin, ClientID: "client-b"}
		m.elevator.EXPECT().For(admin).Return(m.elevated)
		m.elevated.EXPECT().GetLatestSubscriptionByClientID(gomock.Any(), "client-b").Return(subscription, nil)

		if _, err := s.GetSubscription(context.Background(), admin, tenant); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("client user without the billing flag is forbidden", func(t *testing.T) {
		s, m := newTestService(t)
		user := &types.User{ID: "user-1", Role: types.RoleClient, ClientID: strPtr("client-a")}
		tenant := &types.TenantContext{UserID: "user-1", Role: types.RoleClient, ClientID: "client-a"}
		m.security.EXPECT().AuthzFailure("user-1", "billing_read")

		_, err := s.GetSubscription(context.Background(), user, tenant)
		if !errors.Is(err, tenancy.ErrForbidden) {
			t.Fatalf("expected %v, got %v", tenancy.ErrForbidden, err)
		}
	})

	t.Run("missing subscription row is not an error", func(t *testing.T) {
		s, m := newTestService(t)
		se := &types.User{ID: "se-1", Role: types.RoleSE, AssignedClients: []string{"client-a"}}
		tenant := &types.TenantContext{UserID: "se-1", Role: types.RoleSE, ClientID: "client-a"}
		m.elevator.EXPECT().For(se).Return(m.base)
		m.base.EXPECT().GetLatestSubscriptionByClientID(gomock.Any(), "client-a").Return(nil, storage.ErrNotFound)

		got, err := s.GetSubscription(context.Background(), se, tenant)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil subscription, got %+v", got)
		}
	})

	t.Run("no tenant context", func(t *testing.T) {
		s, _ := newTestService(t)
		se := &types.User{ID: "se-1", Role: types.RoleSE}

		if _, err := s.GetSubscription(context.Background(), se, nil); !errors.Is(err, tenancy.ErrNoTenantContext) {
			t.Fatalf("expected %v, got %v", tenancy.ErrNoTenantContext, err)
		}
	})
}
