// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"

	"github.com/nexuslabs/tenancy-service/internal/types"
)

type ServiceInterface interface {
	// GetSubscription returns the tenant's latest subscription, or nil
	// when the tenant has none yet.
	GetSubscription(ctx context.Context, actor *types.User, tenant *types.TenantContext) (*types.Subscription, error)
}
