// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/nexuslabs/tenancy-service/internal/storage"
	"github.com/nexuslabs/tenancy-service/internal/types"
	"github.com/nexuslabs/tenancy-service/pkg/tenancy"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package session -destination ./mock_session.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package session -destination ./mock_storage.go -source=../../internal/storage/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package session -destination ./mock_tenancy.go -mock_names ServiceInterface=MockTenancyServiceInterface github.com/nexuslabs/tenancy-service/pkg/tenancy ServiceInterface
//go:generate mockgen -build_flags=--mod=mod -package session -destination ./mock_tokens.go github.com/nexuslabs/tenancy-service/pkg/authentication TokenManagerInterface
//go:generate mockgen -build_flags=--mod=mod -package session -destination ./mock_idp.go github.com/nexuslabs/tenancy-service/internal/idp ClientInterface
//go:generate mockgen -build_flags=--mod=mod -package session -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package session -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package session -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func strPtr(s string) *string {
	return &s
}

type serviceMocks struct {
	elevator *MockElevatorInterface
	storage  *MockStorageInterface
	identity *MockClientInterface
	tenancy  *MockTenancyServiceInterface
	tokens   *MockTokenManagerInterface
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
		tenancy:  NewMockTenancyServiceInterface(ctrl),
		tokens:   NewMockTokenManagerInterface(ctrl),
		security: NewMockSecurityLoggerInterface(ctrl),
	}

	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	ctx := context.Background()
	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(ctx, trace.SpanFromContext(ctx)).AnyTimes()
	mockLogger.EXPECT().Security().Return(m.security).AnyTimes()
	mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	m.elevator.EXPECT().Base().Return(m.storage).AnyTimes()

	s := NewService(m.elevator, m.identity, m.tenancy, m.tokens, mockTracer, mockMonitor, mockLogger)
	return s, m
}

func TestService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash test password: %v", err)
	}
	seUser := &types.User{ID: "se-1", Email: "se@nexus.test", Role: types.RoleSE}

	t.Run("success", func(t *testing.T) {
		s, m := newTestService(t)
		claims := &types.SessionClaims{UserRole: types.RoleSE, ClientID: "client-a", AssignedClients: []string{"client-a"}}
		m.storage.EXPECT().GetUserCredentials(gomock.Any(), "se@nexus.test").Return(seUser, string(hash), nil)
		m.tenancy.EXPECT().SyncClaims(gomock.Any(), "se-1", "").Return(claims, nil)
		m.tokens.EXPECT().IssueSession("se-1", claims).Return("signed-token", nil)
		m.security.EXPECT().AuthnSuccess("se-1")

		result, err := s.Login(context.Background(), "se@nexus.test", "hunter2hunter2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Token != "signed-token" {
			t.Errorf("expected issued token, got %q", result.Token)
		}
		if result.Claims.ClientID != "client-a" {
			t.Errorf("expected active tenant client-a, got %q", result.Claims.ClientID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		s, m := newTestService(t)
		m.storage.EXPECT().GetUserCredentials(gomock.Any(), "se@nexus.test").Return(seUser, string(hash), nil)
		m.security.EXPECT().AuthnFailure("se@nexus.test", "invalid credentials")

		if _, err := s.Login(context.Background(), "se@nexus.test", "wrong"); !errors.Is(err, tenancy.ErrUnauthorized) {
			t.Fatalf("expected %v, got %v", tenancy.ErrUnauthorized, err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		s, m := newTestService(t)
		m.storage.EXPECT().GetUserCredentials(gomock.Any(), "ghost@nexus.test").Return(nil, "", storage.ErrNotFound)
		m.security.EXPECT().AuthnFailure("ghost@nexus.test", "unknown user")

		if _, err := s.Login(context.Background(), "ghost@nexus.test", "whatever"); !errors.Is(err, tenancy.ErrUnauthorized) {
			t.Fatalf("expected %v, got %v", tenancy.ErrUnauthorized, err)
		}
	})

	t.Run("login succeeds without tenant context", func(t *testing.T) {
		s, m := newTestService(t)
		m.storage.EXPECT().GetUserCredentials(gomock.Any(), "se@nexus.test").Return(seUser, string(hash), nil)
		m.tenancy.EXPECT().SyncClaims(gomock.Any(), "se-1", "").Return(nil, tenancy.ErrNoTenantContext)
		m.tokens.EXPECT().IssueSession("se-1", &types.SessionClaims{UserRole: types.RoleSE}).Return("signed-token", nil)
		m.security.EXPECT().AuthnSuccess("se-1")

		result, err := s.Login(context.Background(), "se@nexus.test", "hunter2hunter2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Claims.ClientID != "" {
			t.Errorf("expected empty tenant claim, got %q", result.Claims.ClientID)
		}
	})
}

func TestService_Signup(t *testing.T) {
	req := &SignupRequest{
		Email:    "new@nexus.test",
		Password: "hunter2hunter2",
		Name:     "New User",
		ClientID: "client-a",
	}

	t.Run("success", func(t *testing.T) {
		s, m := newTestService(t)
		created := &types.User{ID: "user-1", Email: req.Email, Role: types.RoleClient, ClientID: strPtr("client-a")}
		claims := &types.SessionClaims{UserRole: types.RoleClient, ClientID: "client-a"}

		m.identity.EXPECT().CreateIdentity(gomock.Any(), req.Email).Return("identity-1", nil)
		m.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u *types.User, passwordHash string) (*types.User, error) {
				if u.Role != types.RoleClient {
					t.Errorf("expected client role, got %q", u.Role)
				}
				if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
					t.Errorf("stored hash does not match password: %v", err)
				}
				return created, nil
			})
		m.tenancy.EXPECT().SyncClaims(gomock.Any(), "user-1", "client-a").Return(claims, nil)
		m.tokens.EXPECT().IssueSession("user-1", claims).Return("signed-token", nil)
		m.security.EXPECT().AuthnSuccess("user-1")

		result, err := s.Signup(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.User.ID != "user-1" {
			t.Errorf("expected created user, got %+v", result.User)
		}
	})

	t.Run("identity provider failure", func(t *testing.T) {
		s, m := newTestService(t)
		idpErr := errors.New("idp unavailable")
		m.identity.EXPECT().CreateIdentity(gomock.Any(), req.Email).Return("", idpErr)

		if _, err := s.Signup(context.Background(), req); !errors.Is(err, idpErr) {
			t.Fatalf("expected %v, got %v", idpErr, err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		s, m := newTestService(t)
		m.identity.EXPECT().CreateIdentity(gomock.Any(), req.Email).Return("identity-1", nil)
		m.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)

		if _, err := s.Signup(context.Background(), req); !errors.Is(err, storage.ErrDuplicateKey) {
			t.Fatalf("expected %v, got %v", storage.ErrDuplicateKey, err)
		}
	})
}

func TestService_Switch(t *testing.T) {
	t.Run("success reissues the session", func(t *testing.T) {
		s, m := newTestService(t)
		claims := &types.SessionClaims{UserRole: types.RoleSE, ClientID: "client-b", AssignedClients: []string{"client-a", "client-b"}}
		user := &types.User{ID: "se-1", Role: types.RoleSE}

		m.tenancy.EXPECT().SwitchTenant(gomock.Any(), "se-1", "client-b").Return(claims, nil)
		m.tokens.EXPECT().IssueSession("se-1", claims).Return("signed-token", nil)
		m.tenancy.EXPECT().CurrentUser(gomock.Any(), "se-1").Return(user, nil)

		result, err := s.Switch(context.Background(), "se-1", "client-b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Claims.ClientID != "client-b" {
			t.Errorf("expected active tenant client-b, got %q", result.Claims.ClientID)
		}
	})

	t.Run("forbidden switch issues no token", func(t *testing.T) {
		s, m := newTestService(t)
		m.tenancy.EXPECT().SwitchTenant(gomock.Any(), "se-1", "client-z").Return(nil, tenancy.ErrForbidden)

		if _, err := s.Switch(context.Background(), "se-1", "client-z"); !errors.Is(err, tenancy.ErrForbidden) {
			t.Fatalf("expected %v, got %v", tenancy.ErrForbidden, err)
		}
	})
}

func TestService_ListVisibleClients(t *testing.T) {
	clients := []*types.Client{{ID: "client-a"}, {ID: "client-b"}}

	t.Run("admin lists all tenants through the elevated handle", func(t *testing.T) {
		s, m := newTestService(t)
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		elevated := NewMockStorageInterface(ctrl)

		admin := &types.User{ID: "admin-1", Role: types.RoleAdmin}
		m.tenancy.EXPECT().CurrentUser(gomock.Any(), "admin-1").Return(admin, nil)
		m.elevator.EXPECT().For(admin).Return(elevated)
		elevated.EXPECT().ListClients(gomock.Any()).Return(clients, nil)

		got, err := s.ListVisibleClients(context.Background(), "admin-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("expected 2 clients, got %d", len(got))
		}
	})

	t.Run("se lists assigned tenants", func(t *testing.T) {
		s, m := newTestService(t)
		se := &types.User{ID: "se-1", Role: types.RoleSE}
		m.tenancy.EXPECT().CurrentUser(gomock.Any(), "se-1").Return(se, nil)
		m.storage.EXPECT().ListClientIDsAssignedTo(gomock.Any(), "se-1").Return([]string{"client-a", "client-b"}, nil)
		m.storage.EXPECT().ListClientsByIDs(gomock.Any(), []string{"client-a", "client-b"}).Return(clients, nil)

		got, err := s.ListVisibleClients(context.Background(), "se-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("expected 2 clients, got %d", len(got))
		}
	})

	t.Run("client sees only the own tenant", func(t *testing.T) {
		s, m := newTestService(t)
		clientUser := &types.User{ID: "user-1", Role: types.RoleClient, ClientID: strPtr("client-a")}
		m.tenancy.EXPECT().CurrentUser(gomock.Any(), "user-1").Return(clientUser, nil)
		m.storage.EXPECT().GetClientByID(gomock.Any(), "client-a").Return(clients[0], nil)

		got, err := s.ListVisibleClients(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "client-a" {
			t.Errorf("expected only client-a, got %+v", got)
		}
	})

	t.Run("client without tenant sees nothing", func(t *testing.T) {
		s, m := newTestService(t)
		clientUser := &types.User{ID: "user-1", Role: types.RoleClient}
		m.tenancy.EXPECT().CurrentUser(gomock.Any(), "user-1").Return(clientUser, nil)

		got, err := s.ListVisibleClients(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no clients, got %+v", got)
		}
	})
}

func TestService_UpdateProfile(t *testing.T) {
	s, m := newTestService(t)
	user := &types.User{ID: "user-1", Role: types.RoleClient, ClientID: strPtr("client-a"), Name: "Updated"}
	claims := &types.SessionClaims{UserRole: types.RoleClient, ClientID: "client-a"}

	m.storage.EXPECT().UpdateUserProfile(gomock.Any(), "user-1", "Updated", nil).Return(nil)
	m.tenancy.EXPECT().CurrentUser(gomock.Any(), "user-1").Return(user, nil)
	m.tenancy.EXPECT().SyncClaims(gomock.Any(), "user-1", "client-a").Return(claims, nil)
	m.tokens.EXPECT().IssueSession("user-1", claims).Return("signed-token", nil)

	result, err := s.UpdateProfile(context.Background(), "user-1", "Updated", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.User.Name != "Updated" {
		t.Errorf("expected updated name, got %q", result.User.Name)
	}
}
