// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package authorization holds the role-guard predicates. They are pure
// functions over the authoritative user row, evaluated before any data
// access: a nil user always fails closed.
package authorization

import (
	"slices"

	"github.com/nexuslabs/tenancy-service/internal/types"
)

func IsAdmin(user *types.User) bool {
	return user != nil && user.Role == types.RoleAdmin
}

func IsAdminOrSE(user *types.User) bool {
	if user == nil {
		return false
	}
	return user.Role == types.RoleAdmin || user.Role == types.RoleSE
}

func IsClient(user *types.User) bool {
	return user != nil && user.Role == types.RoleClient
}

func CanViewAllClients(user *types.User) bool {
	return IsAdmin(user)
}

// CanViewClient answers whether the user may act on the given tenant:
// admins always, SEs when assigned, client users only for their own tenant.
func CanViewClient(user *types.User, clientID string) bool {
	if user == nil || clientID == "" {
		return false
	}

	switch user.Role {
	case types.RoleAdmin:
		return true
	case types.RoleSE:
		return slices.Contains(user.AssignedClients, clientID)
	case types.RoleClient:
		return user.ClientID != nil && *user.ClientID == clientID
	}

	return false
}

func CanManageUsers(user *types.User) bool {
	if user == nil {
		return false
	}
	return user.Role == types.RoleAdmin || user.CanManageUsers
}

func CanAccessBilling(user *types.User) bool {
	if user == nil {
		return false
	}
	return user.Role != types.RoleClient || user.IsBillingAdmin
}

func CanManageBilling(user *types.User) bool {
	return IsAdmin(user)
}

func CanEditWorkflow(user *types.User, workflowClientID string) bool {
	if user == nil || user.Role == types.RoleClient {
		return false
	}
	return CanViewClient(user, workflowClientID)
}

func CanResolveException(user *types.User, exceptionClientID string) bool {
	if user == nil || user.Role == types.RoleClient {
		return false
	}
	return CanViewClient(user, exceptionClientID)
}
