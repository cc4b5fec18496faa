// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/nexuslabs/tenancy-service/internal/types"
)

func (s *Storage) GetLatestSubscriptionByClientID(ctx context.Context, clientID string) (*types.Subscription, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetLatestSubscriptionByClientID")
	defer span.End()

	var sub types.Subscription
	err := s.db.Statement(ctx).
		Select("id", "client_id", "plan", "plan_id", "status", "monthly_price", "current_period_start", "current_period_end").
		From("subscriptions").
		Where(sq.Eq{"client_id": clientID}).
		OrderBy("current_period_end DESC").
		Limit(1).
		QueryRowContext(ctx).
		Scan(&sub.ID, &sub.ClientID, &sub.Plan, &sub.PlanID, &sub.Status, &sub.MonthlyPrice, &sub.CurrentPeriodStart, &sub.CurrentPeriodEnd)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return &sub, nil
}
