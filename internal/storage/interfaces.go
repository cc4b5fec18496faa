// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/nexuslabs/tenancy-service/internal/types"
)

type ElevatorInterface interface {
	For(user *types.User) StorageInterface
	Base() StorageInterface
}

type StorageInterface interface {
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetUserCredentials(ctx context.Context, email string) (*types.User, string, error)
	CreateUser(ctx context.Context, u *types.User, passwordHash string) (*types.User, error)
	UpdateUser(ctx context.Context, u *types.User) error
	UpdateUserProfile(ctx context.Context, id, name string, phone *string) error
	UpdateUserAssignedClients(ctx context.Context, id string, clientIDs []string) error
	DeleteUser(ctx context.Context, id string) error
	ListStaffUsers(ctx context.Context) ([]*types.User, error)

	CreateClient(ctx context.Context, c *types.Client) (*types.Client, error)
	GetClientByID(ctx context.Context, id string) (*types.Client, error)
	UpdateClient(ctx context.Context, c *types.Client) error
	DeleteClient(ctx context.Context, id string) error
	ListClients(ctx context.Context) ([]*types.Client, error)
	ListClientsByIDs(ctx context.Context, ids []string) ([]*types.Client, error)
	ListClientIDsAssignedTo(ctx context.Context, userID string) ([]string, error)
	AssignSE(ctx context.Context, clientID, userID string) error
	UnassignSE(ctx context.Context, clientID, userID string) error

	ListWorkflowsByClientID(ctx context.Context, clientID string) ([]*types.Workflow, error)
	GetWorkflowByID(ctx context.Context, clientID, id string) (*types.Workflow, error)
	UpdateWorkflow(ctx context.Context, w *types.Workflow) error

	ListExceptionsByClientID(ctx context.Context, clientID string) ([]*types.Exception, error)
	GetExceptionByID(ctx context.Context, clientID, id string) (*types.Exception, error)
	UpdateExceptionStatus(ctx context.Context, clientID, id, status string, remedy *string) error

	GetLatestSubscriptionByClientID(ctx context.Context, clientID string) (*types.Subscription, error)
}
