// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package workflows serves the tenant-scoped workflow inventory. Every
// storage call goes through the resolved tenant scope, so a request can
// never read or mutate rows of another tenant.
package workflows

import (
	"context"

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

func (s *Service) ListWorkflows(ctx context.Context, actor *types.User, tenant *types.TenantContext) ([]*types.Workflow, error) {
	ctx, span := s.tracer.Start(ctx, "workflows.Service.ListWorkflows")
	defer span.End()

	if tenant == nil || tenant.ClientID == "" {
		return nil, tenancy.ErrNoTenantContext
	}

	return s.elevator.For(actor).ListWorkflowsByClientID(ctx, tenant.ClientID)
}

func (s *Service) GetWorkflow(ctx context.Context, actor *types.User, tenant *types.TenantContext, id string) (*types.Workflow, error) {
	ctx, span := s.tracer.Start(ctx, "workflows.Service.GetWorkflow")
	defer span.End()

	if tenant == nil || tenant.ClientID == "" {
		return nil, tenancy.ErrNoTenantContext
	}

	return s.elevator.For(actor).GetWorkflowByID(ctx, tenant.ClientID, id)
}

func (s *Service) UpdateWorkflow(ctx context.Context, actor *types.User, tenant *types.TenantContext, workflow *types.Workflow) (*types.Workflow, error) {
	ctx, span := s.tracer.Start(ctx, "workflows.Service.UpdateWorkflow")
	defer span.End()

	if tenant == nil || tenant.ClientID == "" {
		return nil, tenancy.ErrNoTenantContext
	}

	if !authorization.CanEditWorkflow(actor, tenant.ClientID) {
		s.logger.Security().AuthzFailure(actorID(actor), "workflow_update")
		return nil, tenancy.ErrForbidden
	}

	workflow.ClientID = tenant.ClientID
	if err := s.elevator.For(actor).UpdateWorkflow(ctx, workflow); err != nil {
		return nil, err
	}

	return s.elevator.For(actor).GetWorkflowByID(ctx, tenant.ClientID, workflow.ID)
}

func actorID(actor *types.User) string {
	if actor == nil {
		return ""
	}
	return actor.ID
}
