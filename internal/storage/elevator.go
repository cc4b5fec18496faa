// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"github.com/nexuslabs/tenancy-service/internal/logging"
	"github.com/nexuslabs/tenancy-service/internal/types"
)

// Elevator hands out the storage handle a caller is entitled to. Admins get
// the elevated handle (service credential, no tenant scoping) when one is
// configured; everyone else, and admins without an elevated credential, get
// the restricted handle back unchanged. The fallback is deliberate: a
// cross-tenant query on the restricted handle yields partial or empty
// results, not an error. Each fallback is logged as a security event so a
// misconfigured deployment is observable.
type Elevator struct {
	base     StorageInterface
	elevated StorageInterface

	logger logging.LoggerInterface
}

// For returns the handle to use on behalf of user. A nil user always gets
// the restricted handle.
func (e *Elevator) For(user *types.User) StorageInterface {
	if user == nil || user.Role != types.RoleAdmin {
		return e.base
	}

	if e.elevated == nil {
		e.logger.Security().PrivilegeElevationUnavailable(user.ID)
		return e.base
	}

	e.logger.Security().PrivilegeElevation(user.ID)
	return e.elevated
}

// Base returns the restricted handle directly, for paths that must never
// elevate regardless of caller role.
func (e *Elevator) Base() StorageInterface {
	return e.base
}

// NewElevator wires the restricted and, optionally, the elevated storage
// handle. Pass a nil elevated handle when no service credential is
// configured.
func NewElevator(base, elevated StorageInterface, logger logging.LoggerInterface) *Elevator {
	e := new(Elevator)

	e.base = base
	e.elevated = elevated
	e.logger = logger

	return e
}
