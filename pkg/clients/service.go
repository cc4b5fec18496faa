// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clients

import (
	"context"
	"slices"

	"github.com/nexuslabs/tenancy-service/internal/logging"
	"github.com/nexuslabs/tenancy-service/internal/monitoring"
	"github.com/nexuslabs/tenancy-service/internal/storage"
	"github.com/nexuslabs/tenancy-service/internal/tracing"
	"github.com/nexuslabs/tenancy-service/internal/types"
	"github.com/nexuslabs/tenancy-service/pkg/authorization"
	"github.com/nexuslabs/tenancy-service/pkg/tenancy"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	elevator storage.ElevatorInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	elevator storage.ElevatorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		elevator: elevator,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (s *Service) ListClients(ctx context.Context, actor *types.User) ([]*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "clients.Service.ListClients")
	defer span.End()

	if authorization.CanViewAllClients(actor) {
		return s.elevator.For(actor).ListClients(ctx)
	}

	switch {
	case authorization.IsAdminOrSE(actor):
		ids, err := s.elevator.Base().ListClientIDsAssignedTo(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		return s.elevator.Base().ListClientsByIDs(ctx, ids)

	case authorization.IsClient(actor):
		if actor.ClientID == nil || *actor.ClientID == "" {
			return []*types.Client{}, nil
		}
		client, err := s.elevator.Base().GetClientByID(ctx, *actor.ClientID)
		if err != nil {
			return nil, err
		}
		return []*types.Client{client}, nil
	}

	return nil, tenancy.ErrForbidden
}

// GetClient checks visibility against the authoritative assignment edge
// before touching the clients row, so a denial looks the same whether or
// not the tenant exists.
func (s *Service) GetClient(ctx context.Context, actor *types.User, id string) (*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "clients.Service.GetClient")
	defer span.End()

	switch {
	case authorization.IsAdmin(actor):
		return s.elevator.For(actor).GetClientByID(ctx, id)

	case authorization.IsAdminOrSE(actor):
		ids, err := s.elevator.Base().ListClientIDsAssignedTo(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(ids, id) {
			s.logger.Security().AuthzFailure(actor.ID, "client_read")
			return nil, tenancy.ErrForbidden
		}
		return s.elevator.Base().GetClientByID(ctx, id)

	case authorization.CanViewClient(actor, id):
		return s.elevator.Base().GetClientByID(ctx, id)
	}

	s.logger.Security().AuthzFailure(actorID(actor), "client_read")
	return nil, tenancy.ErrForbidden
}

func (s *Service) CreateClient(ctx context.Context, actor *types.User, client *types.Client) (*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "clients.Service.CreateClient")
	defer span.End()

	if !authorization.IsAdmin(actor) {
		s.logger.Security().AuthzFailure(actorID(actor), "client_create")
		return nil, tenancy.ErrForbidden
	}

	return s.elevator.For(actor).CreateClient(ctx, client)
}

func (s *Service) UpdateClient(ctx context.Context, actor *types.User, client *types.Client) (*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "clients.Service.UpdateClient")
	defer span.End()

	if authorization.IsAdmin(actor) {
		if err := s.elevator.For(actor).UpdateClient(ctx, client); err != nil {
			return nil, err
		}
		return s.elevator.For(actor).GetClientByID(ctx, client.ID)
	}

	if !authorization.IsAdminOrSE(actor) {
		s.logger.Security().AuthzFailure(actorID(actor), "client_update")
		return nil, tenancy.ErrForbidden
	}

	ids, err := s.elevator.Base().ListClientIDsAssignedTo(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(ids, client.ID) {
		s.logger.Security().AuthzFailure(actor.ID, "client_update")
		return nil, tenancy.ErrForbidden
	}

	if err := s.elevator.Base().UpdateClient(ctx, client); err != nil {
		return nil, err
	}
	return s.elevator.Base().GetClientByID(ctx, client.ID)
}

func (s *Service) DeleteClient(ctx context.Context, actor *types.User, id string) error {
	ctx, span := s.tracer.Start(ctx, "clients.Service.DeleteClient")
	defer span.End()

	if !authorization.IsAdmin(actor) {
		s.logger.Security().AuthzFailure(actorID(actor), "client_delete")
		return tenancy.ErrForbidden
	}

	return s.elevator.For(actor).DeleteClient(ctx, id)
}

func (s *Service) AssignSE(ctx context.Context, actor *types.User, clientID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "clients.Service.AssignSE")
	defer span.End()

	if !authorization.IsAdmin(actor) {
		s.logger.Security().AuthzFailure(actorID(actor), "se_assignment")
		return tenancy.ErrForbidden
	}

	return s.elevator.For(actor).AssignSE(ctx, clientID, userID)
}

func (s *Service) UnassignSE(ctx context.Context, actor *types.User, clientID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "clients.Service.UnassignSE")
	defer span.End()

	if !authorization.IsAdmin(actor) {
		s.logger.Security().AuthzFailure(actorID(actor), "se_assignment")
		return tenancy.ErrForbidden
	}

	return s.elevator.For(actor).UnassignSE(ctx, clientID, userID)
}

func actorID(actor *types.User) string {
	if actor == nil {
		return ""
	}
	return actor.ID
}
