// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package billing

import (
	"context"
	"errors"

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

func (s *Service) GetSubscription(ctx context.Context, actor *types.User, tenant *types.TenantContext) (*types.Subscription, error) {
	ctx, span := s.tracer.Start(ctx, "billing.Service.GetSubscription")
	defer span.End()

	if tenant == nil || tenant.ClientID == "" {
		return nil, tenancy.ErrNoTenantContext
	}

	if !authorization.CanAccessBilling(actor) {
		s.logger.Security().AuthzFailure(actorID(actor), "billing_read")
		return nil, tenancy.ErrForbidden
	}

	subscription, err := s.elevator.For(actor).GetLatestSubscriptionByClientID(ctx, tenant.ClientID)
	if errors.Is(err, storage.ErrNotFound) {
		// A tenant without a subscription row is a valid state, not an error.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return subscription, nil
}

func actorID(actor *types.User) string {
	if actor == nil {
		return ""
	}
	return actor.ID
}
