// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ LoggerInterface = (*Logger)(nil)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// SecurityLogger writes audit events with a fixed `security_event` key.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) event(event string, fields ...zap.Field) {
	s.l.Info("security event", append([]zap.Field{zap.String("security_event", event)}, fields...)...)
}

func (s *SecurityLogger) AuthnSuccess(subject string) {
	s.event("authn_success", zap.String("subject", subject))
}

func (s *SecurityLogger) AuthnFailure(subject, reason string) {
	s.event("authn_failure", zap.String("subject", subject), zap.String("reason", reason))
}

func (s *SecurityLogger) AuthzFailure(subject, action string) {
	s.event("authz_failure", zap.String("subject", subject), zap.String("action", action))
}

func (s *SecurityLogger) PrivilegeElevation(subject string) {
	s.event("privilege_elevation", zap.String("subject", subject))
}

func (s *SecurityLogger) PrivilegeElevationUnavailable(subject string) {
	s.event("privilege_elevation_unavailable", zap.String("subject", subject))
}

func (s *SecurityLogger) TenantSwitch(subject, fromTenant, toTenant string) {
	s.event("tenant_switch", zap.String("subject", subject), zap.String("from_tenant", fromTenant), zap.String("to_tenant", toTenant))
}

func (s *SecurityLogger) SystemStartup() {
	s.event("system_startup")
}

func (s *SecurityLogger) SystemShutdown() {
	s.event("system_shutdown")
}

// NewLogger creates a production zap logger at the given level, falling back
// to ERROR when the level string does not parse.
func NewLogger(level string) *Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.ErrorLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}

	return &Logger{
		SugaredLogger: l.Sugar(),
		security:      &SecurityLogger{l: l.Named("security")},
	}
}
