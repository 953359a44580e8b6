// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/shuleni/school-records/internal/authorization"
	"github.com/shuleni/school-records/internal/db"
	"github.com/shuleni/school-records/internal/identity"
	"github.com/shuleni/school-records/internal/kratos"
	"github.com/shuleni/school-records/internal/logging"
	"github.com/shuleni/school-records/internal/monitoring"
	"github.com/shuleni/school-records/internal/storage"
	"github.com/shuleni/school-records/internal/tracing"
	"github.com/shuleni/school-records/pkg/authentication"
	"github.com/shuleni/school-records/pkg/metrics"
	"github.com/shuleni/school-records/pkg/records"
	"github.com/shuleni/school-records/pkg/school"
	"github.com/shuleni/school-records/pkg/status"
	"github.com/shuleni/school-records/pkg/team"
	"github.com/shuleni/school-records/pkg/webhooks"
)

func NewRouter(
	store *storage.Storage,
	dbClient db.DBClientInterface,
	kratosClient kratos.ClientInterface,
	verifier authentication.TokenVerifierInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	guard := authorization.NewGuard(store, tracer, monitor, logger)

	teamService := team.NewService(store, guard, kratosClient, tracer, monitor, logger)
	schoolService := school.NewService(store, tracer, monitor, logger)
	recordsService := records.NewService(store, store, tracer, monitor, logger)
	webhooksService := webhooks.NewService(store, tracer, monitor, logger)

	// Metrics, status and the registration webhook are reachable
	// without an end-user token. The webhook is called by the identity
	// provider directly.
	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	router.Group(func(r chi.Router) {
		r.Use(db.TransactionMiddleware(dbClient, logger))
		webhooks.NewAPI(webhooksService).RegisterEndpoints(r)
	})

	apiRouter := chi.NewMux()
	if verifier != nil {
		apiRouter.Use(authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate())
	} else {
		apiRouter.Use(identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware)
	}
	// Mutating requests run in a single request-scoped transaction.
	apiRouter.Use(db.TransactionMiddleware(dbClient, logger))

	team.NewAPI(teamService, tracer, monitor, logger).RegisterEndpoints(apiRouter)
	school.NewAPI(schoolService, tracer, monitor, logger).RegisterEndpoints(apiRouter)
	records.NewAPI(recordsService, tracer, monitor, logger).RegisterEndpoints(apiRouter)

	router.Mount("/", apiRouter)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
