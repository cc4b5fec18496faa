// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"

	"github.com/nexuslabs/tenancy-service/internal/types"
)

type ServiceInterface interface {
	// Login verifies credentials, syncs the session claims from the
	// database and mints a session token
	Login(ctx context.Context, email, password string) (*SessionResult, error)
	// Signup registers a client-role user, mirrors the identity to the
	// external identity provider and logs the user in
	Signup(ctx context.Context, req *SignupRequest) (*SessionResult, error)
	// Me returns the authoritative user row for the session subject
	Me(ctx context.Context, userID string) (*types.User, error)
	// UpdateProfile updates the mutable profile fields and reissues the
	// session with freshly synced claims
	UpdateProfile(ctx context.Context, userID, name string, phone *string) (*SessionResult, error)
	// ListVisibleClients returns the tenants the user may select: the
	// assigned set for SEs, every tenant for admins, the own tenant for
	// client users
	ListVisibleClients(ctx context.Context, userID string) ([]*types.Client, error)
	// Switch validates and performs a tenant switch and reissues the
	// session token with the new active tenant
	Switch(ctx context.Context, userID, clientID string) (*SessionResult, error)
}
