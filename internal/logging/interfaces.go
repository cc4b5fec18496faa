// Copyright 2026 Nexus Labs Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	Fatalf(template string, args ...interface{})

	Security() SecurityLoggerInterface
	Sync() error
}

// SecurityLoggerInterface emits audit-relevant events on a dedicated logger
// so they can be shipped separately from application logs.
type SecurityLoggerInterface interface {
	AuthnSuccess(subject string)
	AuthnFailure(subject, reason string)
	AuthzFailure(subject, action string)
	PrivilegeElevation(subject string)
	PrivilegeElevationUnavailable(subject string)
	TenantSwitch(subject, fromTenant, toTenant string)
	SystemStartup()
	SystemShutdown()
}
