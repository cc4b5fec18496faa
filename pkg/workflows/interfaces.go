// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workflows

import (
	"context"

	"github.com/nexuslabs/tenancy-service/internal/types"
)

type ServiceInterface interface {
	ListWorkflows(ctx context.Context, actor *types.User, tenant *types.TenantContext) ([]*types.Workflow, error)
	GetWorkflow(ctx context.Context, actor *types.User, tenant *types.TenantContext, id string) (*types.Workflow, error)
	UpdateWorkflow(ctx context.Context, actor *types.User, tenant *types.TenantContext, workflow *types.Workflow) (*types.Workflow, error)
}
