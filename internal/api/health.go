// Copyright (c) 2026 Book Store. All rights reserved.
// Author: houzifahabbo

// Package api contains the health check handlers for liveness and readiness probes.
package api

import (
	"log/slog"
	"net/http"

	"github.com/houzifahabbo/book-store/internal/platform/constants"
	"github.com/houzifahabbo/book-store/internal/platform/respond"
)

// HealthDependencies holds the injectable dependency checkers for the /ready endpoint.
type HealthDependencies struct {
	// CheckDatabase pings the PostgreSQL pool.
	CheckDatabase func() error

	// CheckCache pings the Redis client.
	CheckCache func() error
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

// NewHealthHandlers returns the liveness and readiness handler functions.
//
// # Probes
//   - Liveness: answers 200 whenever the process can serve HTTP at all.
//   - Readiness: answers 200 only when every injected dependency check passes.
func NewHealthHandlers(dependencies HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{dependencies: dependencies, logger: logger}
	return handler.liveness, handler.readiness
}

func (handler *healthHandler) liveness(writer http.ResponseWriter, request *http.Request) {
	respond.JSON(writer, http.StatusOK, map[string]string{
		constants.FieldStatus:  "ok",
		constants.FieldApp:     constants.AppName,
		constants.FieldVersion: constants.AppVersion,
	})
}

func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	checks := map[string]string{}
	healthy := true

	if handler.dependencies.CheckDatabase != nil {
		if err := handler.dependencies.CheckDatabase(); err != nil {
			handler.logger.Error("readiness_database_check_failed", slog.Any("error", err))
			checks["database"] = "unavailable"
			healthy = false
		} else {
			checks["database"] = "ok"
		}
	}

	if handler.dependencies.CheckCache != nil {
		if err := handler.dependencies.CheckCache(); err != nil {
			handler.logger.Error("readiness_cache_check_failed", slog.Any("error", err))
			checks["cache"] = "unavailable"
			healthy = false
		} else {
			checks["cache"] = "ok"
		}
	}

	status := http.StatusOK
	overall := "ok"
	if !healthy {
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}

	respond.JSON(writer, status, map[string]any{
		constants.FieldStatus: overall,
		constants.FieldChecks: checks,
	})
}
