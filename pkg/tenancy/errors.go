// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import "errors"

var (
	// ErrUnauthorized means no valid caller identity.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden means a valid caller with insufficient role or a tenant
	// outside the caller's assigned set. Responses built from it must not
	// reveal whether the resource exists.
	ErrForbidden = errors.New("forbidden")
	// ErrNoTenantContext means the caller is valid but no tenant could be
	// resolved for the request.
	ErrNoTenantContext = errors.New("no tenant context")
)
