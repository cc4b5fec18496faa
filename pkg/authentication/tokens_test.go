// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"strings"
	"testing"
	"time"

	"github.com/nexuslabs/tenancy-service/internal/logging"
	"github.com/nexuslabs/tenancy-service/internal/monitoring"
	"github.com/nexuslabs/tenancy-service/internal/tracing"
	"github.com/nexuslabs/tenancy-service/internal/types"
)

func newTestTokenManager(ttl time.Duration) *TokenManager {
	return NewTokenManager("test-secret", ttl, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := newTestTokenManager(time.Hour)

	claims := &types.SessionClaims{
		UserRole:        types.RoleSE,
		ClientID:        "client-a",
		AssignedClients: []string{"client-a", "client-b"},
	}

	raw, err := tm.IssueSession("se-1", claims)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	session, err := tm.VerifySession(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if session.UserID != "se-1" {
		t.Errorf("expected subject se-1, got %q", session.UserID)
	}
	if session.Claims.UserRole != types.RoleSE || session.Claims.ClientID != "client-a" {
		t.Errorf("claims did not survive the round trip: %+v", session.Claims)
	}
	if len(session.Claims.AssignedClients) != 2 {
		t.Errorf("expected 2 assigned clients, got %+v", session.Claims.AssignedClients)
	}
}

func TestTokenManager_NilClaims(t *testing.T) {
	tm := newTestTokenManager(time.Hour)

	raw, err := tm.IssueSession("user-1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	session, err := tm.VerifySession(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Claims == nil || session.Claims.UserRole != "" {
		t.Errorf("expected empty claims, got %+v", session.Claims)
	}
}

func TestTokenManager_RequiresUserID(t *testing.T) {
	tm := newTestTokenManager(time.Hour)

	if _, err := tm.IssueSession("", nil); err == nil {
		t.Fatal("expected an error for an empty user ID")
	}
}

func TestTokenManager_RejectsTamperedToken(t *testing.T) {
	tm := newTestTokenManager(time.Hour)

	raw, err := tm.IssueSession("user-1", &types.SessionClaims{UserRole: types.RoleClient})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		t.Fatalf("expected a three-part JWT, got %d parts", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("x", len(parts[2]))

	if _, err := tm.VerifySession(tampered); err == nil {
		t.Fatal("expected a tampered token to be rejected")
	}
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	raw, err := newTestTokenManager(time.Hour).IssueSession("user-1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	other := NewTokenManager("other-secret", time.Hour, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	if _, err := other.VerifySession(raw); err == nil {
		t.Fatal("expected a token signed with another secret to be rejected")
	}
}

func TestTokenManager_RejectsExpiredToken(t *testing.T) {
	tm := newTestTokenManager(-time.Minute)

	raw, err := tm.IssueSession("user-1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := tm.VerifySession(raw); err == nil {
		t.Fatal("expected an expired token to be rejected")
	}
}
