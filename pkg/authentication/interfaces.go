// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/nexuslabs/tenancy-service/internal/types"
)

type ProviderInterface interface {
	// Verifier returns the token verifier associated with the specified OIDC issuer
	Verifier(*oidc.Config) *oidc.IDTokenVerifier
}

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw JWT string and validates authorization claims
	// Returns the subject (user ID) if the token is valid and authorized, otherwise an error
	VerifyToken(ctx context.Context, rawToken string) (string, error)
}

type TokenManagerInterface interface {
	// IssueSession mints a signed session token embedding the user's
	// role/tenant claims
	IssueSession(userID string, claims *types.SessionClaims) (string, error)
	// VerifySession validates a raw session token and returns the session state
	VerifySession(raw string) (*Session, error)
}
