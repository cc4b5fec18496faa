// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"context"
	"errors"
	"slices"

	"github.com/nexuslabs/tenancy-service/internal/logging"
	"github.com/nexuslabs/tenancy-service/internal/monitoring"
	"github.com/nexuslabs/tenancy-service/internal/storage"
	"github.com/nexuslabs/tenancy-service/internal/tracing"
	"github.com/nexuslabs/tenancy-service/internal/types"
	"github.com/nexuslabs/tenancy-service/pkg/authentication"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) CurrentUser(ctx context.Context, userID string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "tenancy.Service.CurrentUser")
	defer span.End()

	if userID == "" {
		return nil, ErrUnauthorized
	}

	user, err := s.storage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	return user, nil
}

// ResolveTenant reconciles token claims, the tenant-selection cookie and the
// database into a single active tenant. The role is always taken from the
// user row; the token and cookie only ever nominate a candidate, which must
// be a member of the authoritative assigned set.
func (s *Service) ResolveTenant(ctx context.Context, session *authentication.Session, requested string) (*types.TenantContext, error) {
	ctx, span := s.tracer.Start(ctx, "tenancy.Service.ResolveTenant")
	defer span.End()

	if session == nil || session.UserID == "" {
		return nil, ErrUnauthorized
	}

	user, err := s.CurrentUser(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	switch user.Role {
	case types.RoleClient:
		// Single-tenant users: cookie and claim values are irrelevant.
		if user.ClientID == nil || *user.ClientID == "" {
			return nil, ErrNoTenantContext
		}
		return &types.TenantContext{UserID: user.ID, Role: user.Role, ClientID: *user.ClientID}, nil

	case types.RoleSE:
		return s.resolveSETenant(ctx, user, session, requested)

	case types.RoleAdmin:
		// Admins operate cross-tenant: any nominated tenant is accepted
		// without validation, and an empty ClientID means no tenant scope.
		candidate := requested
		if candidate == "" {
			candidate = session.TenantCookie
		}
		return &types.TenantContext{UserID: user.ID, Role: user.Role, ClientID: candidate}, nil
	}

	return nil, ErrNoTenantContext
}

func (s *Service) resolveSETenant(ctx context.Context, user *types.User, session *authentication.Session, requested string) (*types.TenantContext, error) {
	assigned, err := s.storage.ListClientIDsAssignedTo(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if len(assigned) == 0 {
		return nil, ErrNoTenantContext
	}

	// Precedence: explicit request parameter, then the tenant-selection
	// cookie (fast-path override set on switch, ahead of the token
	// refresh), then the token claim, then the first assigned tenant. The
	// claim is only consulted when its role matches the authoritative row.
	candidate := requested
	if candidate == "" {
		candidate = session.TenantCookie
	}
	if candidate == "" && session.Claims != nil && session.Claims.UserRole == user.Role {
		candidate = session.Claims.ClientID
	}
	if candidate == "" {
		candidate = assigned[0]
	}

	if !slices.Contains(assigned, candidate) {
		s.logger.Security().AuthzFailure(user.ID, "tenant_resolution")
		return nil, ErrForbidden
	}

	return &types.TenantContext{UserID: user.ID, Role: user.Role, ClientID: candidate}, nil
}

// SwitchTenant validates the requested tenant against the recomputed
// assigned set. A rejected switch performs no claim or cookie mutation;
// switching to the already-active tenant succeeds as a no-op.
func (s *Service) SwitchTenant(ctx context.Context, userID, requestedClientID string) (*types.SessionClaims, error) {
	ctx, span := s.tracer.Start(ctx, "tenancy.Service.SwitchTenant")
	defer span.End()

	user, err := s.CurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Role != types.RoleSE {
		s.logger.Security().AuthzFailure(user.ID, "tenant_switch")
		return nil, ErrForbidden
	}

	assigned, err := s.storage.ListClientIDsAssignedTo(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if !slices.Contains(assigned, requestedClientID) {
		s.logger.Security().AuthzFailure(user.ID, "tenant_switch")
		return nil, ErrForbidden
	}

	s.refreshAssignedCache(ctx, user, assigned)
	s.logger.Security().TenantSwitch(user.ID, s.claimedTenant(user), requestedClientID)

	return &types.SessionClaims{
		UserRole:        user.Role,
		ClientID:        requestedClientID,
		AssignedClients: assigned,
	}, nil
}

// SyncClaims re-derives the denormalized claims from the user row so that
// the next issued token matches the database. selected nominates the active
// tenant for SE users; when absent or unassigned the first assigned tenant
// is used.
func (s *Service) SyncClaims(ctx context.Context, userID, selected string) (*types.SessionClaims, error) {
	ctx, span := s.tracer.Start(ctx, "tenancy.Service.SyncClaims")
	defer span.End()

	user, err := s.CurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch user.Role {
	case types.RoleClient:
		if user.ClientID == nil || *user.ClientID == "" {
			return nil, ErrNoTenantContext
		}
		return &types.SessionClaims{UserRole: user.Role, ClientID: *user.ClientID}, nil

	case types.RoleSE:
		assigned, err := s.storage.ListClientIDsAssignedTo(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		if len(assigned) == 0 {
			return nil, ErrNoTenantContext
		}

		clientID := selected
		if !slices.Contains(assigned, clientID) {
			clientID = assigned[0]
		}

		s.refreshAssignedCache(ctx, user, assigned)

		return &types.SessionClaims{
			UserRole:        user.Role,
			ClientID:        clientID,
			AssignedClients: assigned,
		}, nil

	case types.RoleAdmin:
		return &types.SessionClaims{UserRole: user.Role}, nil
	}

	return nil, ErrForbidden
}

// refreshAssignedCache keeps users.assigned_clients aligned with the reverse
// lookup. Best-effort; failures leave the stale cache in place.
func (s *Service) refreshAssignedCache(ctx context.Context, user *types.User, assigned []string) {
	if slices.Equal(user.AssignedClients, assigned) {
		return
	}
	if err := s.storage.UpdateUserAssignedClients(ctx, user.ID, assigned); err != nil {
		s.logger.Warnf("failed to refresh assigned-clients cache for user %s: %v", user.ID, err)
	}
}

func (s *Service) claimedTenant(user *types.User) string {
	if user.ClientID != nil {
		return *user.ClientID
	}
	return ""
}
