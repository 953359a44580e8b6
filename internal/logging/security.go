// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

// SecurityLogger writes audit events on a dedicated "security" channel
// so they can be routed independently of application logs.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) event(event string, fields ...zap.Field) {
	fields = append([]zap.Field{zap.String("event", event), zap.String("channel", "security")}, fields...)
	s.l.Warn("security event", fields...)
}

func (s *SecurityLogger) AuthnFailure(reason string) {
	s.event("authn_failure", zap.String("reason", reason))
}

func (s *SecurityLogger) AuthzFailure(subject, action string) {
	s.event("authz_failure", zap.String("subject", subject), zap.String("action", action))
}

func (s *SecurityLogger) SystemStartup() {
	s.event("system_startup")
}

func (s *SecurityLogger) SystemShutdown() {
	s.event("system_shutdown")
}
