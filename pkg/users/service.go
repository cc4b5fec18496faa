// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"
	"fmt"

	"github.com/nexuslabs/tenancy-service/internal/idp"
	"github.com/nexuslabs/tenancy-service/internal/logging"
	"github.com/nexuslabs/tenancy-service/internal/monitoring"
	"github.com/nexuslabs/tenancy-service/internal/storage"
	"github.com/nexuslabs/tenancy-service/internal/tracing"
	"github.com/nexuslabs/tenancy-service/internal/types"
	"github.com/nexuslabs/tenancy-service/pkg/authorization"
	"github.com/nexuslabs/tenancy-service/pkg/tenancy"
)

type Invite struct {
	Email          string
	Name           string
	Role           string
	ClientID       *string
	CanManageUsers bool
	IsBillingAdmin bool
}

type InviteResult struct {
	User         *types.User
	RecoveryLink string
	RecoveryCode string
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	elevator           storage.ElevatorInterface
	identity           idp.ClientInterface
	invitationLifetime string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	elevator storage.ElevatorInterface,
	identity idp.ClientInterface,
	invitationLifetime string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		elevator:           elevator,
		identity:           identity,
		invitationLifetime: invitationLifetime,
		tracer:             tracer,
		monitor:            monitor,
		logger:             logger,
	}
}

func (s *Service) ListUsers(ctx context.Context, actor *types.User) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.ListUsers")
	defer span.End()

	if !authorization.CanManageUsers(actor) {
		s.denied(actor, "user_list")
		return nil, tenancy.ErrForbidden
	}

	return s.elevator.For(actor).ListStaffUsers(ctx)
}

func (s *Service) GetUser(ctx context.Context, actor *types.User, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.GetUser")
	defer span.End()

	if !authorization.CanManageUsers(actor) {
		s.denied(actor, "user_read")
		return nil, tenancy.ErrForbidden
	}

	return s.elevator.For(actor).GetUserByID(ctx, id)
}

func (s *Service) InviteUser(ctx context.Context, actor *types.User, invite *Invite) (*InviteResult, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.InviteUser")
	defer span.End()

	if !authorization.CanManageUsers(actor) {
		s.denied(actor, "user_invite")
		return nil, tenancy.ErrForbidden
	}

	identityID, err := s.identity.CreateIdentity(ctx, invite.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create identity for %s: %w", invite.Email, err)
	}

	link, code, err := s.identity.CreateRecoveryLink(ctx, identityID, s.invitationLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to create recovery link: %w", err)
	}

	// Invited users have no local password until they complete recovery.
	created, err := s.elevator.For(actor).CreateUser(ctx, &types.User{
		Email:          invite.Email,
		Name:           invite.Name,
		Role:           invite.Role,
		ClientID:       invite.ClientID,
		CanManageUsers: invite.CanManageUsers,
		IsBillingAdmin: invite.IsBillingAdmin,
	}, "")
	if err != nil {
		return nil, err
	}

	s.logger.Infof("invited user %s as %s", created.ID, created.Role)
	return &InviteResult{User: created, RecoveryLink: link, RecoveryCode: code}, nil
}

func (s *Service) UpdateUser(ctx context.Context, actor *types.User, user *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.UpdateUser")
	defer span.End()

	if !authorization.CanManageUsers(actor) {
		s.denied(actor, "user_update")
		return nil, tenancy.ErrForbidden
	}

	if err := s.elevator.For(actor).UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	return s.elevator.For(actor).GetUserByID(ctx, user.ID)
}

func (s *Service) DeleteUser(ctx context.Context, actor *types.User, id string) error {
	ctx, span := s.tracer.Start(ctx, "users.Service.DeleteUser")
	defer span.End()

	if !authorization.CanManageUsers(actor) {
		s.denied(actor, "user_delete")
		return tenancy.ErrForbidden
	}

	user, err := s.elevator.For(actor).GetUserByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.elevator.For(actor).DeleteUser(ctx, id); err != nil {
		return err
	}

	// The mirrored identity is cleaned up best-effort; an orphaned
	// identity cannot log in without a users row.
	identityID, err := s.identity.GetIdentityIDByEmail(ctx, user.Email)
	if err != nil {
		s.logger.Warnf("failed to look up identity for deleted user %s: %v", id, err)
		return nil
	}
	if identityID == "" {
		return nil
	}
	if err := s.identity.DeleteIdentity(ctx, identityID); err != nil {
		s.logger.Warnf("failed to delete identity %s: %v", identityID, err)
	}

	return nil
}

func (s *Service) denied(actor *types.User, action string) {
	id := ""
	if actor != nil {
		id = actor.ID
	}
	s.logger.Security().AuthzFailure(id, action)
}
