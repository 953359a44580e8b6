// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package records

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
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

type CreateTradeRequest struct {
	Name         string `json:"name" validate:"required"`
	Abbreviation string `json:"abbreviation,omitempty"`
}

type CreateClassRequest struct {
	Name    string  `json:"name" validate:"required"`
	Level   string  `json:"level,omitempty"`
	TradeID *string `json:"trade_id,omitempty" validate:"omitempty,uuid"`
}

type CreateStudentRequest struct {
	RegistrationNumber string  `json:"registration_number" validate:"required"`
	FullName           string  `json:"full_name" validate:"required"`
	Gender             string  `json:"gender,omitempty" validate:"omitempty,oneof=male female"`
	DateOfBirth        string  `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ClassID            *string `json:"class_id,omitempty" validate:"omitempty,uuid"`
	TradeID            *string `json:"trade_id,omitempty" validate:"omitempty,uuid"`
	AcademicYear       string  `json:"academic_year,omitempty"`
	GuardianName       string  `json:"guardian_name,omitempty"`
	GuardianPhone      string  `json:"guardian_phone,omitempty"`
	HomeLocation       string  `json:"home_location,omitempty"`
	AdmissionDate      string  `json:"admission_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type CreateDisciplineRecordRequest struct {
	StudentID   string `json:"student_id" validate:"required,uuid"`
	RecordType  string `json:"record_type" validate:"required"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description" validate:"required"`
	ActionTaken string `json:"action_taken,omitempty"`
	MistakeDate string `json:"mistake_date" validate:"required,datetime=2006-01-02"`
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
	mux.Post("/api/v1/schools/{schoolID}/trades", a.createTrade)
	mux.Get("/api/v1/schools/{schoolID}/trades", a.listTrades)
	mux.Delete("/api/v1/schools/{schoolID}/trades/{tradeID}", a.deleteTrade)

	mux.Post("/api/v1/schools/{schoolID}/classes", a.createClass)
	mux.Get("/api/v1/schools/{schoolID}/classes", a.listClasses)
	mux.Delete("/api/v1/schools/{schoolID}/classes/{classID}", a.deleteClass)

	mux.Post("/api/v1/schools/{schoolID}/students", a.createStudent)
	mux.Get("/api/v1/schools/{schoolID}/students", a.listStudents)
	mux.Get("/api/v1/schools/{schoolID}/students/{studentID}", a.getStudent)
	mux.Delete("/api/v1/schools/{schoolID}/students/{studentID}", a.deleteStudent)

	mux.Post("/api/v1/schools/{schoolID}/discipline-records", a.createDisciplineRecord)
	mux.Get("/api/v1/schools/{schoolID}/students/{studentID}/discipline-records", a.listDisciplineRecords)
}

func (a *API) createTrade(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "records.API.createTrade")
	defer span.End()

	callerID, ok := authentication.GetUserID(ctx)
	if !ok || callerID == "" {
		a.writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateTradeRequest
	if err := a.decode(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	t, err := a.service.CreateTrade(ctx, callerID, &types.Trade{
		SchoolID:     chi.URLParam(r, "schoolID"),
		Name:         req.Name,
		Abbreviation: req.Abbreviation,
	})
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, t)
}

func (a *API) listTrades(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "records.API.listTrades")
	defer span.End()

	callerID, ok := authentication.GetUserID(ctx)
	if !ok || callerID == "" {
		a.writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	trades, err := a.service.ListTrades(ctx, callerID, chi.URLParam(r, "schoolID"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, trades)
}

func (a *API) deleteTrade(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "records.API.deleteTrade")
	defer span.End()

	callerID, ok := authentication.GetUserID(ctx)
	if !ok || callerID == "" {
		a.writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	err := a.service.DeleteTrade(ctx, callerID, chi.URLParam(r, "schoolID"), chi.URLParam(r, "tradeID"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) createClass(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "records.API.createClass")
	defer span.End()

	callerID, ok := authentication.GetUserID(ctx)
	if !ok || callerID == "" {
		a.writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateClassRequest
	if err := a.decode(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := a.service.CreateClass(ctx, callerID, &types.Class{
		SchoolID: chi.URLParam(r, "schoolID"),
		Name:     req.Name,
		Level:    req.Level,
		TradeID:  req.TradeID,
	})
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, c)
}

func (a *API) listClasses(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "records.API.listClasses")
	defer span.End()

	callerID, ok := authentication.GetUserID(ctx)
	if !ok || callerID == "" {
		a.writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	classes, err := a.service.ListClasses(ctx, callerID, chi.URLParam(r, "schoolID"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, classes)
}

func (a *API) deleteClass(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "records.API.deleteClass")
	defer span.End()

	callerID, ok := authentication.GetUserID(ctx)
	if !ok || callerID == "" {
		a.writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	err := a.service.DeleteClass(ctx, callerID, chi.URLParam(r, "schoolID"), chi.URLParam(r, "classID"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) createStudent(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "records.API.createStudent")
	defer span.End()

	callerID, ok := authentication.GetUserID(ctx)
	if !ok || callerID == "" {
		a.writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateStudentRequest
	if err := a.decode(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	st := &types.Student{
		SchoolID:           chi.URLParam(r, "schoolID"),
		RegistrationNumber: req.RegistrationNumber,
		FullName:           req.FullName,
		Gender:             req.Gender,
		ClassID:            req.ClassID,
		TradeID:            req.TradeID,
		AcademicYear:       req.AcademicYear,
		GuardianName:       req.GuardianName,
		GuardianPhone:      req.GuardianPhone,
		HomeLocation:       req.HomeLocation,
		Status:             "active",
	}
	if req.DateOfBirth != "" {
		t, _ := time.Parse("2006-01-02", req.DateOfBirth)
		st.DateOfBirth = &t
	}
	if req.AdmissionDate != "" {
		t, _ := time.Parse("2006-01-02", req.AdmissionDate)
		st.AdmissionDate = &t
	}

	created, err := a.service.CreateStudent(ctx, callerID, st)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, created)
}

func (a *API) getStudent(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "records.API.getStudent")
	defer span.End()

	callerID, ok := authentication.GetUserID(ctx)
	if !ok || callerID == "" {
		a.writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	st, err := a.service.GetStudent(ctx, callerID, chi.URLParam(r, "schoolID"), chi.URLParam(r, "studentID"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, st)
}

func (a *API) listStudents(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "records.API.listStudents")
	defer span.End()

	callerID, ok := authentication.GetUserID(ctx)
	if !ok || callerID == "" {
		a.writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	page := parseUintParam(r.URL.Query().Get("page"), 1)
	pageSize := parseUintParam(r.URL.Query().Get("page_size"), 50)

	students, err := a.service.ListStudents(ctx, callerID, chi.URLParam(r, "schoolID"), page, pageSize)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, students)
}

func (a *API) deleteStudent(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "records.API.deleteStudent")
	defer span.End()

	callerID, ok := authentication.GetUserID(ctx)
	if !ok || callerID == "" {
		a.writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	err := a.service.DeleteStudent(ctx, callerID, chi.URLParam(r, "schoolID"), chi.URLParam(r, "studentID"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) createDisciplineRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "records.API.createDisciplineRecord")
	defer span.End()

	callerID, ok := authentication.GetUserID(ctx)
	if !ok || callerID == "" {
		a.writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateDisciplineRecordRequest
	if err := a.decode(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	mistakeDate, _ := time.Parse("2006-01-02", req.MistakeDate)
	rec, err := a.service.CreateDisciplineRecord(ctx, callerID, &types.DisciplineRecord{
		SchoolID:    chi.URLParam(r, "schoolID"),
		StudentID:   req.StudentID,
		RecordType:  req.RecordType,
		Category:    req.Category,
		Description: req.Description,
		ActionTaken: req.ActionTaken,
		MistakeDate: mistakeDate,
	})
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, rec)
}

func (a *API) listDisciplineRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "records.API.listDisciplineRecords")
	defer span.End()

	callerID, ok := authentication.GetUserID(ctx)
	if !ok || callerID == "" {
		a.writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	recs, err := a.service.ListDisciplineRecords(ctx, callerID, chi.URLParam(r, "schoolID"), chi.URLParam(r, "studentID"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, recs)
}

func (a *API) decode(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.New("Invalid request body")
	}
	if err := a.validate.Struct(dst); err != nil {
		return errors.New("Invalid request: " + err.Error())
	}
	return nil
}

func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authorization.ErrDenied):
		a.writeError(w, http.StatusForbidden, "Not allowed in this school")
	case errors.Is(err, ErrRecordNotFound):
		a.writeError(w, http.StatusNotFound, "Record not found")
	default:
		a.logger.Errorf("records operation failed: %v", err)
		a.writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func parseUintParam(raw string, fallback uint64) uint64 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		return fallback
	}
	return v
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
