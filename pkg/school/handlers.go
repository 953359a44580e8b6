// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package school

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/shuleni/school-records/internal/authorization"
	"github.com/shuleni/school-records/internal/logging"
	"github.com/shuleni/school-records/internal/monitoring"
	"github.com/shuleni/school-records/internal/tracing"
	"github.com/shuleni/school-records/internal/types"
	"github.com/shuleni/school-records/pkg/authentication"
)

type CreateSchoolRequest struct {
	Name              string `json:"name" validate:"required"`
	Code              string `json:"code" validate:"required"`
	Location          string `json:"location,omitempty"`
	Phone             string `json:"phone,omitempty"`
	Email             string `json:"email,omitempty" validate:"omitempty,email"`
	AcademicYearStart string `json:"academic_year_start,omitempty" validate:"omitempty,datetime=2006-01-02"`
	AcademicYearEnd   string `json:"academic_year_end,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type SchoolResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	Location  string `json:"location,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	CreatedBy string `json:"created_by"`
	CreatedAt string `json:"created_at"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v1/schools", a.createSchool)
	mux.Get("/api/v1/schools", a.listSchools)
	mux.Get("/api/v1/schools/{schoolID}", a.getSchool)
}

func (a *API) createSchool(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "school.API.createSchool")
	defer span.End()

	callerID, ok := authentication.GetUserID(ctx)
	if !ok || callerID == "" {
		a.writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateSchoolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		a.writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	sc := &types.School{
		Name:     req.Name,
		Code:     req.Code,
		Location: req.Location,
		Phone:    req.Phone,
		Email:    req.Email,
	}
	if req.AcademicYearStart != "" {
		t, _ := time.Parse("2006-01-02", req.AcademicYearStart)
		sc.AcademicYearStart = &t
	}
	if req.AcademicYearEnd != "" {
		t, _ := time.Parse("2006-01-02", req.AcademicYearEnd)
		sc.AcademicYearEnd = &t
	}

	created, err := a.service.CreateSchool(ctx, callerID, sc)
	if err != nil {
		a.logger.Errorf("failed to create school: %v", err)
		a.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	a.writeJSON(w, http.StatusCreated, schoolResponse(created))
}

func (a *API) getSchool(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "school.API.getSchool")
	defer span.End()

	callerID, ok := authentication.GetUserID(ctx)
	if !ok || callerID == "" {
		a.writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	sc, err := a.service.GetSchool(ctx, callerID, chi.URLParam(r, "schoolID"))
	switch {
	case errors.Is(err, authorization.ErrDenied), errors.Is(err, ErrSchoolNotFound):
		a.writeError(w, http.StatusNotFound, "School not found")
		return
	case err != nil:
		a.logger.Errorf("failed to get school: %v", err)
		a.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	a.writeJSON(w, http.StatusOK, schoolResponse(sc))
}

func (a *API) listSchools(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "school.API.listSchools")
	defer span.End()

	callerID, ok := authentication.GetUserID(ctx)
	if !ok || callerID == "" {
		a.writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	schools, err := a.service.ListSchools(ctx, callerID)
	if err != nil {
		a.logger.Errorf("failed to list schools: %v", err)
		a.writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := make([]SchoolResponse, 0, len(schools))
	for _, sc := range schools {
		resp = append(resp, schoolResponse(sc))
	}

	a.writeJSON(w, http.StatusOK, resp)
}

func schoolResponse(sc *types.School) SchoolResponse {
	return SchoolResponse{
		ID:        sc.ID,
		Name:      sc.Name,
		Code:      sc.Code,
		Location:  sc.Location,
		Phone:     sc.Phone,
		Email:     sc.Email,
		CreatedBy: sc.CreatedBy,
		CreatedAt: sc.CreatedAt.Format(time.RFC3339),
	}
}

func (a *API) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, message string) {
	a.writeJSON(w, status, errorResponse{Error: message})
}
