// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package exceptions

import (
	"context"
	"fmt"

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

func (s *Service) ListExceptions(ctx context.Context, actor *types.User, tenant *types.TenantContext) ([]*types.Exception, error) {
	ctx, span := s.tracer.Start(ctx, "exceptions.Service.ListExceptions")
	defer span.End()

	if tenant == nil || tenant.ClientID == "" {
		return nil, tenancy.ErrNoTenantContext
	}

	return s.elevator.For(actor).ListExceptionsByClientID(ctx, tenant.ClientID)
}

func (s *Service) GetException(ctx context.Context, actor *types.User, tenant *types.TenantContext, id string) (*types.Exception, error) {
	ctx, span := s.tracer.Start(ctx, "exceptions.Service.GetException")
	defer span.End()

	if tenant == nil || tenant.ClientID == "" {
		return nil, tenancy.ErrNoTenantContext
	}

	return s.elevator.For(actor).GetExceptionByID(ctx, tenant.ClientID, id)
}

func (s *Service) UpdateStatus(ctx context.Context, actor *types.User, tenant *types.TenantContext, id, status string, remedy *string) (*types.Exception, error) {
	ctx, span := s.tracer.Start(ctx, "exceptions.Service.UpdateStatus")
	defer span.End()

	if tenant == nil || tenant.ClientID == "" {
		return nil, tenancy.ErrNoTenantContext
	}

	switch status {
	case storage.ExceptionStatusNew, storage.ExceptionStatusInProgress,
		storage.ExceptionStatusResolved, storage.ExceptionStatusIgnored:
	default:
		return nil, fmt.Errorf("unknown exception status %q", status)
	}

	if !authorization.CanResolveException(actor, tenant.ClientID) {
		s.logger.Security().AuthzFailure(actorID(actor), "exception_update")
		return nil, tenancy.ErrForbidden
	}

	if err := s.elevator.For(actor).UpdateExceptionStatus(ctx, tenant.ClientID, id, status, remedy); err != nil {
		return nil, err
	}

	return s.elevator.For(actor).GetExceptionByID(ctx, tenant.ClientID, id)
}

func actorID(actor *types.User) string {
	if actor == nil {
		return ""
	}
	return actor.ID
}
