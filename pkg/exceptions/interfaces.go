// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package exceptions

import (
	"context"

	"github.com/nexuslabs/tenancy-service/internal/types"
)

type ServiceInterface interface {
	ListExceptions(ctx context.Context, actor *types.User, tenant *types.TenantContext) ([]*types.Exception, error)
	GetException(ctx context.Context, actor *types.User, tenant *types.TenantContext, id string) (*types.Exception, error)
	// UpdateStatus moves the exception through the triage lifecycle;
	// client-role users may not change status at all
	UpdateStatus(ctx context.Context, actor *types.User, tenant *types.TenantContext, id, status string, remedy *string) (*types.Exception, error)
}
