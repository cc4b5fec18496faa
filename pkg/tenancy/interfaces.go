// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"context"

	"github.com/nexuslabs/tenancy-service/internal/types"
	"github.com/nexuslabs/tenancy-service/pkg/authentication"
)

type ServiceInterface interface {
	// ResolveTenant determines the single active tenant for the request.
	// requested is an explicit per-request override and may be empty.
	ResolveTenant(ctx context.Context, session *authentication.Session, requested string) (*types.TenantContext, error)
	// SwitchTenant moves an SE to another assigned tenant and returns the
	// claims to embed in the refreshed session token.
	SwitchTenant(ctx context.Context, userID, requestedClientID string) (*types.SessionClaims, error)
	// SyncClaims re-derives the session claims from the authoritative user
	// row. selected is the preferred tenant for SE users and may be empty.
	SyncClaims(ctx context.Context, userID, selected string) (*types.SessionClaims, error)
	// CurrentUser loads the authoritative user row for guard evaluation.
	CurrentUser(ctx context.Context, userID string) (*types.User, error)
}

type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	ListClientIDsAssignedTo(ctx context.Context, userID string) ([]string, error)
	UpdateUserAssignedClients(ctx context.Context, id string, clientIDs []string) error
}
