// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clients

import (
	"context"

	"github.com/nexuslabs/tenancy-service/internal/types"
)

type ServiceInterface interface {
	// ListClients returns the tenants visible to the actor: all of them
	// for admins, the assigned subset for SEs, the own tenant for client
	// users. A reduced scope yields partial results, not an error.
	ListClients(ctx context.Context, actor *types.User) ([]*types.Client, error)
	GetClient(ctx context.Context, actor *types.User, id string) (*types.Client, error)
	CreateClient(ctx context.Context, actor *types.User, client *types.Client) (*types.Client, error)
	UpdateClient(ctx context.Context, actor *types.User, client *types.Client) (*types.Client, error)
	DeleteClient(ctx context.Context, actor *types.User, id string) error
	// AssignSE adds the user to the tenant's assignment set; the claim
	// cache on the users row is refreshed on the user's next sync
	AssignSE(ctx context.Context, actor *types.User, clientID, userID string) error
	UnassignSE(ctx context.Context, actor *types.User, clientID, userID string) error
}
