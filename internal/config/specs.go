// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`
	// ElevatedDSN points at the service credential that bypasses tenant
	// scoping. When unset, admin cross-tenant operations fall back to the
	// caller's restricted handle.
	ElevatedDSN string `envconfig:"elevated_dsn"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// Session tokens are first-party HS256 JWTs carrying the role/tenant claims.
	JWTSecret  string        `envconfig:"jwt_secret" required:"true"`
	SessionTTL time.Duration `envconfig:"session_ttl" default:"24h"`

	// Optional bearer-token access for machine clients.
	APITokenIssuer     string   `envconfig:"api_token_issuer"`
	APITokenJWKSURL    string   `envconfig:"api_token_jwks_url"`
	APIAllowedSubjects []string `envconfig:"api_allowed_subjects"`
	APIRequiredScope   string   `envconfig:"api_required_scope" default:"tenancy:api"`

	// Identity provider admin API, used out-of-band for identity lifecycle.
	IdpAdminURL        string `envconfig:"idp_admin_url"`
	InvitationLifetime string `envconfig:"invitation_lifetime" default:"24h"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`
}
