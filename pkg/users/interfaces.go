// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"

	"github.com/nexuslabs/tenancy-service/internal/types"
)

type ServiceInterface interface {
	// ListUsers returns the staff roster (admin and SE rows)
	ListUsers(ctx context.Context, actor *types.User) ([]*types.User, error)
	GetUser(ctx context.Context, actor *types.User, id string) (*types.User, error)
	// InviteUser creates the user row, mirrors the identity to the
	// identity provider and returns a recovery link for the first login
	InviteUser(ctx context.Context, actor *types.User, invite *Invite) (*InviteResult, error)
	UpdateUser(ctx context.Context, actor *types.User, user *types.User) (*types.User, error)
	// DeleteUser removes the row and, best-effort, the mirrored identity
	DeleteUser(ctx context.Context, actor *types.User, id string) error
}
