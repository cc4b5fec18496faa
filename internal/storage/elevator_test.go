// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"testing"

	"github.com/nexuslabs/tenancy-service/internal/types"
	"go.uber.org/mock/gomock"
)

//go:generate mockgen -build_flags=--mod=mod -package storage -destination ./mock_storage.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package storage -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package storage -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package storage -destination ./mock_tracing.go -source=../tracing/interfaces.go

func newTestElevator(t *testing.T, withElevated bool) (*Elevator, *MockStorageInterface, *MockStorageInterface, *MockSecurityLoggerInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	base := NewMockStorageInterface(ctrl)
	security := NewMockSecurityLoggerInterface(ctrl)

	logger := NewMockLoggerInterface(ctrl)
	logger.EXPECT().Security().Return(security).AnyTimes()

	var elevated *MockStorageInterface
	if withElevated {
		elevated = NewMockStorageInterface(ctrl)
		return NewElevator(base, elevated, logger), base, elevated, security
	}

	return NewElevator(base, nil, logger), base, nil, security
}

func TestElevator_For(t *testing.T) {
	t.Run("admin gets the elevated handle", func(t *testing.T) {
		e, _, elevated, security := newTestElevator(t, true)
		security.EXPECT().PrivilegeElevation("admin-1")

		if got := e.For(&types.User{ID: "admin-1", Role: types.RoleAdmin}); got != StorageInterface(elevated) {
			t.Error("expected the elevated handle for an admin")
		}
	})

	t.Run("se and client users get the restricted handle", func(t *testing.T) {
		e, base, _, _ := newTestElevator(t, true)

		if got := e.For(&types.User{ID: "se-1", Role: types.RoleSE}); got != StorageInterface(base) {
			t.Error("expected the restricted handle for an SE")
		}
		if got := e.For(&types.User{ID: "user-1", Role: types.RoleClient}); got != StorageInterface(base) {
			t.Error("expected the restricted handle for a client user")
		}
	})

	t.Run("nil user gets the restricted handle", func(t *testing.T) {
		e, base, _, _ := newTestElevator(t, true)

		if got := e.For(nil); got != StorageInterface(base) {
			t.Error("expected the restricted handle for a nil user")
		}
	})

	t.Run("admin without an elevated credential falls back silently", func(t *testing.T) {
		e, base, _, security := newTestElevator(t, false)
		security.EXPECT().PrivilegeElevationUnavailable("admin-1")

		if got := e.For(&types.User{ID: "admin-1", Role: types.RoleAdmin}); got != StorageInterface(base) {
			t.Error("expected the fallback to the restricted handle")
		}
	})
}

func TestElevator_Base(t *testing.T) {
	e, base, _, _ := newTestElevator(t, true)

	if got := e.Base(); got != StorageInterface(base) {
		t.Error("expected Base to return the restricted handle unconditionally")
	}
}
