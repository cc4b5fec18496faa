// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"
	"errors"
	"testing"

	"github.com/nexuslabs/tenancy-service/internal/types"
	"github.com/nexuslabs/tenancy-service/pkg/tenancy"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package users -destination ./mock_users.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package users -destination ./mock_storage.go -source=../../internal/storage/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package users -destination ./mock_idp.go github.com/nexuslabs/tenancy-service/internal/idp ClientInterface
//go:generate mockgen -build_flags=--mod=mod -package users -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package users -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package users -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type serviceMocks struct {
	elevator *MockElevatorInterface
	storage  *MockStorageInterface
	identity *MockClientInterface
	security *MockSecurityLoggerInterface
}

func newTestService(t *testing.T) (*Service, *serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &serviceMocks{
		elevator: NewMockElevatorInterface(ctrl),
		storage:  NewMockStorageInterface(ctrl),
		identity: NewMockClientInterface(ctrl),
		security: NewMockSecurityLoggerInterface(ctrl),
	}

	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	ctx := context.Background()
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(ctx, trace.SpanFromContext(ctx)).AnyTimes()
	mockLogger.EXPECT().Security().Return(m.security).AnyTimes()
	mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	// Every privileged path goes through the elevator.
	m.elevator.EXPECT().For(gomock.Any()).Return(m.storage).AnyTimes()

	return NewService(m.elevator, m.identity, "24h", mockTracer, mockMonitor, mockLogger), m
}

func TestService_ListUsers(t *testing.T) {
	staff := []*types.User{
		{ID: "admin-1", Role: types.RoleAdmin},
		{ID: "se-1", Role: types.RoleSE},
	}

	testCases := []struct {
		name        string
		actor       *types.User
		allowed     bool
		expectedErr error
	}{
		{
			name:    "admin",
			actor:   &types.User{ID: "admin-1", Role: types.RoleAdmin},
			allowed: true,
		},
		{
			name:    "se with user management flag",
			actor:   &types.User{ID: "se-1", Role: types.RoleSE, CanManageUsers: true},
			allowed: true,
		},
		{
			name:        "se without flag",
			actor:       &types.User{ID: "se-2", Role: types.RoleSE},
			expectedErr: tenancy.ErrForbidden,
		},
		{
			name:        "client with flag",
			actor:       &types.User{ID: "user-1", Role: types.RoleClient, CanManageUsers: true},
			allowed:     true,
			expectedErr: nil,
		},
		{
			name:        "client without flag",
			actor:       &types.User{ID: "user-2", Role: types.RoleClient},
			expectedErr: tenancy.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, m := newTestService(t)
			if tc.allowed {
				m.storage.EXPECT().ListStaffUsers(gomock.Any()).Return(staff, nil)
			} else {
				m.security.EXPECT().AuthzFailure(tc.actor.ID, "user_list")
			}

			got, err := s.ListUsers(context.Background(), tc.actor)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != 2 {
				t.Errorf("expected 2 users, got %d", len(got))
			}
		})
	}
}

func TestService_InviteUser(t *testing.T) {
	admin := &types.User{ID: "admin-1", Role: types.RoleAdmin}
	invite := &Invite{Email: "new@nexus.test", Name: "New SE", Role: types.RoleSE}

	t.Run("success", func(t *testing.T) {
		s, m := newTestService(t)
		created := &types.User{ID: "user-1", Email: invite.Email, Role: types.RoleSE}

		m.identity.EXPECT().CreateIdentity(gomock.Any(), invite.Email).Return("identity-1", nil)
		m.identity.EXPECT().CreateRecoveryLink(gomock.Any(), "identity-1", "24h").Return("https://idp/recover", "CODE123", nil)
		m.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any(), "").Return(created, nil)

		result, err := s.InviteUser(context.Background(), admin, invite)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.RecoveryLink != "https://idp/recover" || result.RecoveryCode != "CODE123" {
			t.Errorf("expected recovery link and code, got %+v", result)
		}
	})

	t.Run("identity failure aborts before the row is created", func(t *testing.T) {
		s, m := newTestService(t)
		idpErr := errors.New("idp down")
		m.identity.EXPECT().CreateIdentity(gomock.Any(), invite.Email).Return("", idpErr)

		if _, err := s.InviteUser(context.Background(), admin, invite); !errors.Is(err, idpErr) {
			t.Fatalf("expected %v, got %v", idpErr, err)
		}
	})

	t.Run("forbidden without the flag", func(t *testing.T) {
		s, m := newTestService(t)
		m.security.EXPECT().AuthzFailure("se-1", "user_invite")

		_, err := s.InviteUser(context.Background(), &types.User{ID: "se-1", Role: types.RoleSE}, invite)
		if !errors.Is(err, tenancy.ErrForbidden) {
			t.Fatalf("expected %v, got %v", tenancy.ErrForbidden, err)
		}
	})
}

func TestService_DeleteUser(t *testing.T) {
	admin := &types.User{ID: "admin-1", Role: types.RoleAdmin}
	target := &types.User{ID: "user-1", Email: "gone@nexus.test", Role: types.RoleSE}

	t.Run("removes the row and the mirrored identity", func(t *testing.T) {
		s, m := newTestService(t)
		m.storage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(target, nil)
		m.storage.EXPECT().DeleteUser(gomock.Any(), "user-1").Return(nil)
		m.identity.EXPECT().GetIdentityIDByEmail(gomock.Any(), "gone@nexus.test").Return("identity-1", nil)
		m.identity.EXPECT().DeleteIdentity(gomock.Any(), "identity-1").Return(nil)

		if err := s.DeleteUser(context.Background(), admin, "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("identity cleanup is best-effort", func(t *testing.T) {
		s, m := newTestService(t)
		m.storage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(target, nil)
		m.storage.EXPECT().DeleteUser(gomock.Any(), "user-1").Return(nil)
		m.identity.EXPECT().GetIdentityIDByEmail(gomock.Any(), "gone@nexus.test").Return("", errors.New("idp down"))

		if err := s.DeleteUser(context.Background(), admin, "user-1"); err != nil {
			t.Fatalf("expected identity lookup failure to be swallowed, got %v", err)
		}
	})

	t.Run("no identity mirrored", func(t *testing.T) {
		s, m := newTestService(t)
		m.storage.EXPECT().GetUserByID(gomock.Any(), "user-1").Return(target, nil)
		m.storage.EXPECT().DeleteUser(gomock.Any(), "user-1").Return(nil)
		m.identity.EXPECT().GetIdentityIDByEmail(gomock.Any(), "gone@nexus.test").Return("", nil)

		if err := s.DeleteUser(context.Background(), admin, "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
