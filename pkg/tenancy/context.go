// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"context"

	"github.com/nexuslabs/tenancy-service/internal/types"
)

type contextKey int

const principalContextKey contextKey = iota

// Principal is the resolved identity of the request: the authoritative user
// row plus the active tenant. Tenant is nil when resolution failed softly
// (no tenant context) and the operation has to decide whether that matters.
type Principal struct {
	User   *types.User
	Tenant *types.TenantContext
}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

func PrincipalFromContext(ctx context.Context) *Principal {
	p, ok := ctx.Value(principalContextKey).(*Principal)
	if !ok {
		return nil
	}
	return p
}
