// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"

	"github.com/shuleni/school-records/internal/logging"
	"github.com/shuleni/school-records/internal/monitoring"
	"github.com/shuleni/school-records/internal/tracing"
	"github.com/shuleni/school-records/pkg/authentication"
)

// HeaderName carries the authenticated identity id set by the fronting
// identity-aware proxy.
const HeaderName = "X-Kratos-Authenticated-Identity-Id"

// Middleware trusts the identity header; it is meant for deployments
// where an identity-aware proxy terminates authentication.
type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		if userID := r.Header.Get(HeaderName); userID != "" {
			ctx = authentication.WithUserID(ctx, userID)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
