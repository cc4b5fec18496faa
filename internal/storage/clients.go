// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nexuslabs/tenancy-service/internal/types"
)

const clientColumns = "id, name, url, contract_start_date, departments, pipeline_phase, assigned_ses, created_at, updated_at"

func scanClient(row sq.RowScanner) (*types.Client, error) {
	var c types.Client
	var departments, assignedSEs []byte

	err := row.Scan(
		&c.ID, &c.Name, &c.URL, &c.ContractStartDate, &departments,
		&c.PipelinePhase, &assignedSEs, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := decodeIDs(departments, &c.Departments); err != nil {
		return nil, err
	}
	if err := decodeIDs(assignedSEs, &c.AssignedSEs); err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *Storage) CreateClient(ctx context.Context, c *types.Client) (*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateClient")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate client ID: %w", err)
	}

	departments, err := encodeIDs(c.Departments)
	if err != nil {
		return nil, err
	}
	assignedSEs, err := encodeIDs(c.AssignedSEs)
	if err != nil {
		return nil, err
	}

	created, err := scanClient(
		s.db.Statement(ctx).
			Insert("clients").
			Columns("id", "name", "url", "contract_start_date", "departments", "pipeline_phase", "assigned_ses").
			Values(id.String(), c.Name, c.URL, c.ContractStartDate, departments, c.PipelinePhase, assignedSEs).
			Suffix("RETURNING " + clientColumns).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, WrapDuplicateKeyError(err, "client already exists")
	}

	return created, nil
}

func (s *Storage) GetClientByID(ctx context.Context, id string) (*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetClientByID")
	defer span.End()

	c, err := scanClient(
		s.db.Statement(ctx).
			Select(clientColumns).
			From("clients").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return c, nil
}

func (s *Storage) UpdateClient(ctx context.Context, c *types.Client) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateClient")
	defer span.End()

	departments, err := encodeIDs(c.Departments)
	if err != nil {
		return err
	}
	assignedSEs, err := encodeIDs(c.AssignedSEs)
	if err != nil {
		return err
	}

	res, err := s.db.Statement(ctx).
		Update("clients").
		Set("name", c.Name).
		Set("url", c.URL).
		Set("contract_start_date", c.ContractStartDate).
		Set("departments", departments).
		Set("pipeline_phase", c.PipelinePhase).
		Set("assigned_ses", assignedSEs).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": c.ID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) DeleteClient(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteClient")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("clients").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return WrapForeignKeyError(err, "client owns dependent records")
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) ListClients(ctx context.Context) ([]*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListClients")
	defer span.End()

	return s.listClients(ctx, nil)
}

// ListClientsByIDs is the scoped variant: only the given tenants are
// returned. An empty id set yields no rows, never all rows.
func (s *Storage) ListClientsByIDs(ctx context.Context, ids []string) ([]*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListClientsByIDs")
	defer span.End()

	if len(ids) == 0 {
		return nil, nil
	}

	return s.listClients(ctx, sq.Eq{"id": ids})
}

func (s *Storage) listClients(ctx context.Context, where interface{}) ([]*types.Client, error) {
	query := s.db.Statement(ctx).
		Select(clientColumns).
		From("clients").
		OrderBy("name")

	if where != nil {
		query = query.Where(where)
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []*types.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return clients, nil
}

// ListClientIDsAssignedTo computes the authoritative assigned-tenant set for
// an SE by reverse lookup on clients.assigned_ses.
func (s *Storage) ListClientIDsAssignedTo(ctx context.Context, userID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListClientIDsAssignedTo")
	defer span.End()

	member, err := containmentArg(userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Statement(ctx).
		Select("id").
		From("clients").
		Where(sq.Expr("assigned_ses @> ?", member)).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assigned clients: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan client id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ids, nil
}

func (s *Storage) AssignSE(ctx context.Context, clientID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.AssignSE")
	defer span.End()

	member, err := containmentArg(userID)
	if err != nil {
		return err
	}

	res, err := s.db.Statement(ctx).
		Update("clients").
		Set("assigned_ses", sq.Expr("CASE WHEN assigned_ses @> ?::jsonb THEN assigned_ses ELSE assigned_ses || ?::jsonb END", member, member)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": clientID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to assign SE: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) UnassignSE(ctx context.Context, clientID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UnassignSE")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("clients").
		Set("assigned_ses", sq.Expr("assigned_ses - ?", userID)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": clientID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to unassign SE: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return nil
}
