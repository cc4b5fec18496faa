// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"testing"

	"github.com/nexuslabs/tenancy-service/internal/types"
)

func strPtr(s string) *string { return &s }

func TestNilUserFailsClosed(t *testing.T) {
	if IsAdmin(nil) {
		t.Error("IsAdmin(nil) = true, want false")
	}
	if IsAdminOrSE(nil) {
		t.Error("IsAdminOrSE(nil) = true, want false")
	}
	if IsClient(nil) {
		t.Error("IsClient(nil) = true, want false")
	}
	if CanViewClient(nil, "client-1") {
		t.Error("CanViewClient(nil) = true, want false")
	}
	if CanManageUsers(nil) {
		t.Error("CanManageUsers(nil) = true, want false")
	}
	if CanAccessBilling(nil) {
		t.Error("CanAccessBilling(nil) = true, want false")
	}
	if CanEditWorkflow(nil, "client-1") {
		t.Error("CanEditWorkflow(nil) = true, want false")
	}
}

func TestIsAdmin(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{types.RoleAdmin, true},
		{types.RoleSE, false},
		{types.RoleClient, false},
		{"unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			got := IsAdmin(&types.User{Role: tt.role})
			if got != tt.want {
				t.Errorf("IsAdmin(role=%s) = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
}

func TestIsAdminOrSE(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{types.RoleAdmin, true},
		{types.RoleSE, true},
		{types.RoleClient, false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			got := IsAdminOrSE(&types.User{Role: tt.role})
			if got != tt.want {
				t.Errorf("IsAdminOrSE(role=%s) = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
}

func TestCanViewClient(t *testing.T) {
	tests := []struct {
		name     string
		user     *types.User
		clientID string
		want     bool
	}{
		{
			name:     "admin sees any tenant",
			user:     &types.User{Role: types.RoleAdmin},
			clientID: "client-1",
			want:     true,
		},
		{
			name:     "se sees assigned tenant",
			user:     &types.User{Role: types.RoleSE, AssignedClients: []string{"client-1", "client-2"}},
			clientID: "client-2",
			want:     true,
		},
		{
			name:     "se denied for unassigned tenant",
			user:     &types.User{Role: types.RoleSE, AssignedClients: []string{"client-1"}},
			clientID: "client-3",
			want:     false,
		},
		{
			name:     "se with no assignments denied",
			user:     &types.User{Role: types.RoleSE},
			clientID: "client-1",
			want:     false,
		},
		{
			name:     "client user sees own tenant",
			user:     &types.User{Role: types.RoleClient, ClientID: strPtr("client-1")},
			clientID: "client-1",
			want:     true,
		},
		{
			name:     "client user denied for foreign tenant",
			user:     &types.User{Role: types.RoleClient, ClientID: strPtr("client-1")},
			clientID: "client-2",
			want:     false,
		},
		{
			name:     "client user without tenant denied",
			user:     &types.User{Role: types.RoleClient},
			clientID: "client-1",
			want:     false,
		},
		{
			name:     "empty client id denied",
			user:     &types.User{Role: types.RoleAdmin},
			clientID: "",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanViewClient(tt.user, tt.clientID)
			if got != tt.want {
				t.Errorf("CanViewClient() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanManageUsers(t *testing.T) {
	if !CanManageUsers(&types.User{Role: types.RoleAdmin}) {
		t.Error("admin should manage users")
	}
	if !CanManageUsers(&types.User{Role: types.RoleSE, CanManageUsers: true}) {
		t.Error("se with flag should manage users")
	}
	if CanManageUsers(&types.User{Role: types.RoleSE}) {
		t.Error("se without flag should not manage users")
	}
}

func TestCanAccessBilling(t *testing.T) {
	if !CanAccessBilling(&types.User{Role: types.RoleAdmin}) {
		t.Error("admin should access billing")
	}
	if !CanAccessBilling(&types.User{Role: types.RoleSE}) {
		t.Error("se should access billing")
	}
	if !CanAccessBilling(&types.User{Role: types.RoleClient, IsBillingAdmin: true}) {
		t.Error("client billing admin should access billing")
	}
	if CanAccessBilling(&types.User{Role: types.RoleClient}) {
		t.Error("plain client user should not access billing")
	}
}

func TestWorkflowAndExceptionGuards(t *testing.T) {
	se := &types.User{Role: types.RoleSE, AssignedClients: []string{"client-1"}}
	clientUser := &types.User{Role: types.RoleClient, ClientID: strPtr("client-1")}

	if !CanEditWorkflow(se, "client-1") {
		t.Error("assigned se should edit workflow")
	}
	if CanEditWorkflow(se, "client-2") {
		t.Error("unassigned se should not edit workflow")
	}
	if CanEditWorkflow(clientUser, "client-1") {
		t.Error("client user should never edit workflows, even own tenant")
	}

	if !CanResolveException(se, "client-1") {
		t.Error("assigned se should resolve exception")
	}
	if CanResolveException(clientUser, "client-1") {
		t.Error("client user should never resolve exceptions")
	}
}
