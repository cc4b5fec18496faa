// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Every query in this file carries a mandatory client_id predicate; tenant
// isolation is enforced here, not by a database policy layer.

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/nexuslabs/tenancy-service/internal/types"
)

const workflowColumns = "id, client_id, name, department, description, is_active, node_count, execution_count, exception_count, time_saved_per_execution, money_saved_per_execution, created_at, updated_at"

func scanWorkflow(row sq.RowScanner) (*types.Workflow, error) {
	var w types.Workflow
	err := row.Scan(
		&w.ID, &w.ClientID, &w.Name, &w.Department, &w.Description, &w.IsActive,
		&w.NodeCount, &w.ExecutionCount, &w.ExceptionCount,
		&w.TimeSavedPerExecution, &w.MoneySavedPerExecution,
		&w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *Storage) ListWorkflowsByClientID(ctx context.Context, clientID string) ([]*types.Workflow, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListWorkflowsByClientID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(workflowColumns).
		From("workflows").
		Where(sq.Eq{"client_id": clientID}).
		OrderBy("name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workflows: %w", err)
	}
	defer rows.Close()

	var workflows []*types.Workflow
	for rows.Next() {
		w, err := scanWorkflow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workflow: %w", err)
		}
		workflows = append(workflows, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return workflows, nil
}

func (s *Storage) GetWorkflowByID(ctx context.Context, clientID, id string) (*types.Workflow, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetWorkflowByID")
	defer span.End()

	w, err := scanWorkflow(
		s.db.Statement(ctx).
			Select(workflowColumns).
			From("workflows").
			Where(sq.Eq{"id": id, "client_id": clientID}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workflow: %w", err)
	}

	return w, nil
}

func (s *Storage) UpdateWorkflow(ctx context.Context, w *types.Workflow) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateWorkflow")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("workflows").
		Set("name", w.Name).
		Set("department", w.Department).
		Set("description", w.Description).
		Set("is_active", w.IsActive).
		Set("time_saved_per_execution", w.TimeSavedPerExecution).
		Set("money_saved_per_execution", w.MoneySavedPerExecution).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": w.ID, "client_id": w.ClientID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update workflow: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return nil
}
