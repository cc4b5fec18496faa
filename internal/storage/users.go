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

const userColumns = "id, email, name, phone, role, client_id, assigned_clients, is_billing_admin, can_manage_users, hourly_cost_rate, hourly_bill_rate, created_at, updated_at"

func scanUser(row sq.RowScanner) (*types.User, error) {
	var u types.User
	var assigned []byte

	err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.Phone, &u.Role, &u.ClientID, &assigned,
		&u.IsBillingAdmin, &u.CanManageUsers, &u.HourlyCostRate, &u.HourlyBillRate,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := decodeIDs(assigned, &u.AssignedClients); err != nil {
		return nil, err
	}

	return &u, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	u, err := scanUser(
		s.db.Statement(ctx).
			Select(userColumns).
			From("users").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	u, err := scanUser(
		s.db.Statement(ctx).
			Select(userColumns).
			From("users").
			Where(sq.Eq{"email": email}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

// GetUserCredentials returns the user row together with the stored password
// hash for the sign-in path.
func (s *Storage) GetUserCredentials(ctx context.Context, email string) (*types.User, string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserCredentials")
	defer span.End()

	var u types.User
	var assigned []byte
	var hash string

	err := s.db.Statement(ctx).
		Select(userColumns, "password_hash").
		From("users").
		Where(sq.Eq{"email": email}).
		QueryRowContext(ctx).
		Scan(
			&u.ID, &u.Email, &u.Name, &u.Phone, &u.Role, &u.ClientID, &assigned,
			&u.IsBillingAdmin, &u.CanManageUsers, &u.HourlyCostRate, &u.HourlyBillRate,
			&u.CreatedAt, &u.UpdatedAt, &hash,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("failed to get user credentials: %w", err)
	}

	if err := decodeIDs(assigned, &u.AssignedClients); err != nil {
		return nil, "", err
	}

	return &u, hash, nil
}

func (s *Storage) CreateUser(ctx context.Context, u *types.User, passwordHash string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	id := u.ID
	if id == "" {
		newID, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("failed to generate user ID: %w", err)
		}
		id = newID.String()
	}

	assigned, err := encodeIDs(u.AssignedClients)
	if err != nil {
		return nil, err
	}

	created, err := scanUser(
		s.db.Statement(ctx).
			Insert("users").
			Columns("id", "email", "name", "phone", "role", "client_id", "assigned_clients", "is_billing_admin", "can_manage_users", "hourly_cost_rate", "hourly_bill_rate", "password_hash").
			Values(id, u.Email, u.Name, u.Phone, u.Role, u.ClientID, assigned, u.IsBillingAdmin, u.CanManageUsers, u.HourlyCostRate, u.HourlyBillRate, passwordHash).
			Suffix("RETURNING " + userColumns).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, WrapDuplicateKeyError(err, "user already exists")
	}

	return created, nil
}

func (s *Storage) UpdateUser(ctx context.Context, u *types.User) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateUser")
	defer span.End()

	assigned, err := encodeIDs(u.AssignedClients)
	if err != nil {
		return err
	}

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("name", u.Name).
		Set("email", u.Email).
		Set("phone", u.Phone).
		Set("role", u.Role).
		Set("client_id", u.ClientID).
		Set("assigned_clients", assigned).
		Set("is_billing_admin", u.IsBillingAdmin).
		Set("can_manage_users", u.CanManageUsers).
		Set("hourly_cost_rate", u.HourlyCostRate).
		Set("hourly_bill_rate", u.HourlyBillRate).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": u.ID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) UpdateUserProfile(ctx context.Context, id, name string, phone *string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateUserProfile")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("name", name).
		Set("phone", phone).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update user profile: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return nil
}

// UpdateUserAssignedClients refreshes the denormalized assigned-tenant cache
// on the user row after claim sync recomputes it.
func (s *Storage) UpdateUserAssignedClients(ctx context.Context, id string, clientIDs []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateUserAssignedClients")
	defer span.End()

	assigned, err := encodeIDs(clientIDs)
	if err != nil {
		return err
	}

	_, err = s.db.Statement(ctx).
		Update("users").
		Set("assigned_clients", assigned).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update assigned clients: %w", err)
	}

	return nil
}

func (s *Storage) DeleteUser(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteUser")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("users").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return WrapForeignKeyError(err, "user is referenced by historical records")
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) ListStaffUsers(ctx context.Context) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListStaffUsers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(userColumns).
		From("users").
		Where(sq.Eq{"role": []string{types.RoleAdmin, types.RoleSE}}).
		OrderBy("name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff users: %w", err)
	}
	defer rows.Close()

	var users []*types.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}
