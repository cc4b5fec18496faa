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

const (
	ExceptionStatusNew        = "new"
	ExceptionStatusInProgress = "in_progress"
	ExceptionStatusResolved   = "resolved"
	ExceptionStatusIgnored    = "ignored"
)

const exceptionColumns = "id, client_id, workflow_id, type, severity, status, remedy, reported_at, resolved_at"

func scanException(row sq.RowScanner) (*types.Exception, error) {
	var e types.Exception
	err := row.Scan(
		&e.ID, &e.ClientID, &e.WorkflowID, &e.Type, &e.Severity, &e.Status,
		&e.Remedy, &e.ReportedAt, &e.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *Storage) ListExceptionsByClientID(ctx context.Context, clientID string) ([]*types.Exception, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListExceptionsByClientID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(exceptionColumns).
		From("exceptions").
		Where(sq.Eq{"client_id": clientID}).
		OrderBy("reported_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exceptions: %w", err)
	}
	defer rows.Close()

	var exceptions []*types.Exception
	for rows.Next() {
		e, err := scanException(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exception: %w", err)
		}
		exceptions = append(exceptions, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return exceptions, nil
}

func (s *Storage) GetExceptionByID(ctx context.Context, clientID, id string) (*types.Exception, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetExceptionByID")
	defer span.End()

	e, err := scanException(
		s.db.Statement(ctx).
			Select(exceptionColumns).
			From("exceptions").
			Where(sq.Eq{"id": id, "client_id": clientID}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get exception: %w", err)
	}

	return e, nil
}

func (s *Storage) UpdateExceptionStatus(ctx context.Context, clientID, id, status string, remedy *string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateExceptionStatus")
	defer span.End()

	query := s.db.Statement(ctx).
		Update("exceptions").
		Set("status", status).
		Where(sq.Eq{"id": id, "client_id": clientID})

	if remedy != nil {
		query = query.Set("remedy", remedy)
	}

	if status == ExceptionStatusResolved {
		query = query.Set("resolved_at", sq.Expr("NOW()"))
	}

	res, err := query.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update exception: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return nil
}
