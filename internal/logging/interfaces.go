// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})

	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	Fatalf(template string, args ...interface{})

	Security() SecurityLoggerInterface
	Sync() error
}

// SecurityLoggerInterface emits structured audit events for
// security-relevant decisions.
type SecurityLoggerInterface interface {
	AuthnFailure(reason string)
	AuthzFailure(subject, action string)
	SystemStartup()
	SystemShutdown()
}
