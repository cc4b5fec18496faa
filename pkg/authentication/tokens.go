// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nexuslabs/tenancy-service/internal/logging"
	"github.com/nexuslabs/tenancy-service/internal/monitoring"
	"github.com/nexuslabs/tenancy-service/internal/tracing"
	"github.com/nexuslabs/tenancy-service/internal/types"
)

const (
	// SessionCookieName carries the signed session token.
	SessionCookieName = "nexus_session"
	// TenantCookieName is the fast-path tenant selection override for SE
	// users; it takes effect before the token claims catch up.
	TenantCookieName = "current_client_id"
)

// Session is the verified caller state extracted at the request boundary.
// TenantCookie is raw client input and must be validated against the
// authoritative assignment set before use.
type Session struct {
	UserID       string
	Claims       *types.SessionClaims
	TenantCookie string
}

type sessionToken struct {
	UserRole        string   `json:"user_role,omitempty"`
	ClientID        string   `json:"client_id,omitempty"`
	AssignedClients []string `json:"assigned_clients,omitempty"`
	jwt.RegisteredClaims
}

var _ TokenManagerInterface = (*TokenManager)(nil)

// TokenManager mints and verifies the first-party session tokens carrying
// the denormalized role/tenant claims.
type TokenManager struct {
	secret     []byte
	sessionTTL time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (t *TokenManager) IssueSession(userID string, claims *types.SessionClaims) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("user ID is required")
	}
	if claims == nil {
		claims = &types.SessionClaims{}
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &sessionToken{
		UserRole:        claims.UserRole,
		ClientID:        claims.ClientID,
		AssignedClients: claims.AssignedClients,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.sessionTTL)),
		},
	})

	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, nil
}

func (t *TokenManager) VerifySession(raw string) (*Session, error) {
	var claims sessionToken

	_, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}

	return &Session{
		UserID: claims.Subject,
		Claims: &types.SessionClaims{
			UserRole:        claims.UserRole,
			ClientID:        claims.ClientID,
			AssignedClients: claims.AssignedClients,
		},
	}, nil
}

func NewTokenManager(secret string, sessionTTL time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		sessionTTL: sessionTTL,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}
