// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/nexuslabs/tenancy-service/internal/idp"
	"github.com/nexuslabs/tenancy-service/internal/logging"
	"github.com/nexuslabs/tenancy-service/internal/monitoring"
	"github.com/nexuslabs/tenancy-service/internal/storage"
	"github.com/nexuslabs/tenancy-service/internal/tracing"
	"github.com/nexuslabs/tenancy-service/internal/types"
	"github.com/nexuslabs/tenancy-service/pkg/authentication"
	"github.com/nexuslabs/tenancy-service/pkg/tenancy"
)

type SessionResult struct {
	User   *types.User
	Claims *types.SessionClaims
	Token  string
}

type SignupRequest struct {
	Email    string
	Password string
	Name     string
	Phone    *string
	ClientID string
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	elevator storage.ElevatorInterface
	identity idp.ClientInterface
	tenancy  tenancy.ServiceInterface
	tokens   authentication.TokenManagerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	elevator storage.ElevatorInterface,
	identity idp.ClientInterface,
	tenancyService tenancy.ServiceInterface,
	tokens authentication.TokenManagerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		elevator: elevator,
		identity: identity,
		tenancy:  tenancyService,
		tokens:   tokens,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (s *Service) Login(ctx context.Context, email, password string) (*SessionResult, error) {
	ctx, span := s.tracer.Start(ctx, "session.Service.Login")
	defer span.End()

	user, hash, err := s.elevator.Base().GetUserCredentials(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Security().AuthnFailure(email, "unknown user")
			return nil, tenancy.ErrUnauthorized
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		s.logger.Security().AuthnFailure(email, "invalid credentials")
		return nil, tenancy.ErrUnauthorized
	}

	result, err := s.issueFor(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Security().AuthnSuccess(user.ID)
	return result, nil
}

func (s *Service) Signup(ctx context.Context, req *SignupRequest) (*SessionResult, error) {
	ctx, span := s.tracer.Start(ctx, "session.Service.Signup")
	defer span.End()

	identityID, err := s.identity.CreateIdentity(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create identity for %s: %w", req.Email, err)
	}
	s.logger.Debugf("created identity %s for %s", identityID, req.Email)

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &types.User{
		Email: req.Email,
		Name:  req.Name,
		Phone: req.Phone,
		Role:  types.RoleClient,
	}
	if req.ClientID != "" {
		user.ClientID = &req.ClientID
	}

	created, err := s.elevator.Base().CreateUser(ctx, user, string(hash))
	if err != nil {
		return nil, err
	}

	result, err := s.issueFor(ctx, created)
	if err != nil {
		return nil, err
	}

	s.logger.Security().AuthnSuccess(created.ID)
	return result, nil
}

func (s *Service) Me(ctx context.Context, userID string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "session.Service.Me")
	defer span.End()

	return s.tenancy.CurrentUser(ctx, userID)
}

func (s *Service) UpdateProfile(ctx context.Context, userID, name string, phone *string) (*SessionResult, error) {
	ctx, span := s.tracer.Start(ctx, "session.Service.UpdateProfile")
	defer span.End()

	if err := s.elevator.Base().UpdateUserProfile(ctx, userID, name, phone); err != nil {
		return nil, err
	}

	user, err := s.tenancy.CurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.issueFor(ctx, user)
}

func (s *Service) ListVisibleClients(ctx context.Context, userID string) ([]*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "session.Service.ListVisibleClients")
	defer span.End()

	user, err := s.tenancy.CurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	switch user.Role {
	case types.RoleAdmin:
		return s.elevator.For(user).ListClients(ctx)

	case types.RoleSE:
		ids, err := s.elevator.Base().ListClientIDsAssignedTo(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		return s.elevator.Base().ListClientsByIDs(ctx, ids)

	case types.RoleClient:
		if user.ClientID == nil || *user.ClientID == "" {
			return []*types.Client{}, nil
		}
		client, err := s.elevator.Base().GetClientByID(ctx, *user.ClientID)
		if err != nil {
			return nil, err
		}
		return []*types.Client{client}, nil
	}

	return nil, tenancy.ErrForbidden
}

func (s *Service) Switch(ctx context.Context, userID, clientID string) (*SessionResult, error) {
	ctx, span := s.tracer.Start(ctx, "session.Service.Switch")
	defer span.End()

	claims, err := s.tenancy.SwitchTenant(ctx, userID, clientID)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.IssueSession(userID, claims)
	if err != nil {
		return nil, err
	}

	user, err := s.tenancy.CurrentUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &SessionResult{User: user, Claims: claims, Token: token}, nil
}

// issueFor syncs the claims from the database and mints a session token. A
// user without a tenant context still gets a session; tenant-scoped
// operations reject later.
func (s *Service) issueFor(ctx context.Context, user *types.User) (*SessionResult, error) {
	selected := ""
	if user.ClientID != nil {
		selected = *user.ClientID
	}

	claims, err := s.tenancy.SyncClaims(ctx, user.ID, selected)
	if err != nil {
		if !errors.Is(err, tenancy.ErrNoTenantContext) {
			return nil, err
		}
		claims = &types.SessionClaims{UserRole: user.Role}
	}

	token, err := s.tokens.IssueSession(user.ID, claims)
	if err != nil {
		return nil, err
	}

	return &SessionResult{User: user, Claims: claims, Token: token}, nil
}
