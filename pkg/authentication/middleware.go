// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/nexuslabs/tenancy-service/internal/logging"
	"github.com/nexuslabs/tenancy-service/internal/monitoring"
	"github.com/nexuslabs/tenancy-service/internal/tracing"
)

type Middleware struct {
	tokens   TokenManagerInterface
	verifier TokenVerifierInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authenticate resolves the caller from either the session cookie (browser
// portals) or, when a machine verifier is configured, a bearer token. The
// verified session is injected into the request context; unauthenticated
// requests are rejected before any handler runs.
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			session, ok := m.sessionFromCookie(r)
			if !ok {
				session, ok = m.sessionFromBearer(r)
			}
			if !ok {
				m.unauthorizedResponse(w, "no valid session")
				return
			}

			if c, err := r.Cookie(TenantCookieName); err == nil {
				session.TenantCookie = c.Value
			}

			ctx = WithSession(ctx, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *Middleware) sessionFromCookie(r *http.Request) (*Session, bool) {
	c, err := r.Cookie(SessionCookieName)
	if err != nil || c.Value == "" {
		return nil, false
	}

	session, err := m.tokens.VerifySession(c.Value)
	if err != nil {
		m.logger.Debugf("session token verification failed: %v", err)
		m.logger.Security().AuthnFailure("", "invalid session token")
		return nil, false
	}

	return session, true
}

func (m *Middleware) sessionFromBearer(r *http.Request) (*Session, bool) {
	if m.verifier == nil {
		return nil, false
	}

	bearer := r.Header.Get("Authorization")
	if !strings.HasPrefix(bearer, "Bearer ") {
		return nil, false
	}

	subject, err := m.verifier.VerifyToken(r.Context(), strings.TrimPrefix(bearer, "Bearer "))
	if err != nil {
		m.logger.Debugf("bearer token verification failed: %v", err)
		return nil, false
	}

	// Machine callers carry no session claims; role resolution falls back
	// to the authoritative user row.
	return &Session{UserID: subject}, true
}

func (m *Middleware) unauthorizedResponse(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  http.StatusUnauthorized,
		"message": message,
	}); err != nil {
		m.logger.Errorf("failed to encode unauthorized response: %v", err)
	}
}

// NewMiddleware builds the authentication middleware. verifier may be nil
// when no machine-token issuer is configured.
func NewMiddleware(tokens TokenManagerInterface, verifier TokenVerifierInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tokens:   tokens,
		verifier: verifier,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
