// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

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
	"github.com/shuleni/school-records/pkg/authentication"
)

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
	mux.Post("/api/v1/team", a.handleAction)
	mux.Get("/api/v1/schools/{schoolID}/members", a.listMembers)
	mux.Get("/api/v1/schools/{schoolID}/invitations", a.listInvitations)
}

// handleAction is the single action-discriminated team-management
// endpoint. Dispatch over the action enum is total; anything else is a
// validation failure.
func (a *API) handleAction(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "team.API.handleAction")
	defer span.End()

	callerID, ok := authentication.GetUserID(ctx)
	if !ok || callerID == "" {
		a.writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := a.validateRequest(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	switch req.Action {
	case ActionInvite:
		outcome, err := a.service.Invite(ctx, callerID, req.SchoolID, req.Email, req.Role)
		if err != nil {
			a.writeServiceError(w, err)
			return
		}
		if outcome == OutcomeAdded {
			a.writeJSON(w, http.StatusOK, ActionResponse{Message: "User added to school", Status: string(outcome)})
			return
		}
		a.writeJSON(w, http.StatusOK, ActionResponse{
			Message: "Invitation saved. User will be added when they sign up.",
			Status:  string(outcome),
		})

	case ActionUpdateRole:
		if err := a.service.UpdateRole(ctx, callerID, req.SchoolID, req.UserRoleID, req.Role); err != nil {
			a.writeServiceError(w, err)
			return
		}
		a.writeJSON(w, http.StatusOK, ActionResponse{Message: "Role updated"})

	case ActionRemove:
		if err := a.service.Remove(ctx, callerID, req.SchoolID, req.UserRoleID); err != nil {
			a.writeServiceError(w, err)
			return
		}
		a.writeJSON(w, http.StatusOK, ActionResponse{Message: "Member removed"})

	case ActionCancelInvitation:
		if err := a.service.CancelInvitation(ctx, callerID, req.SchoolID, req.InvitationID); err != nil {
			a.writeServiceError(w, err)
			return
		}
		a.writeJSON(w, http.StatusOK, ActionResponse{Message: "Invitation cancelled"})

	default:
		a.writeError(w, http.StatusBadRequest, "Invalid action")
	}
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "team.API.listMembers")
	defer span.End()

	callerID, ok := authentication.GetUserID(ctx)
	if !ok || callerID == "" {
		a.writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	members, err := a.service.ListMembers(ctx, callerID, chi.URLParam(r, "schoolID"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	resp := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, MemberResponse{
			ID:        m.MembershipID,
			UserID:    m.UserID,
			Role:      m.Role,
			Email:     m.Email,
			FullName:  m.FullName,
			CreatedAt: m.CreatedAt.Format(time.RFC3339),
		})
	}

	a.writeJSON(w, http.StatusOK, resp)
}

func (a *API) listInvitations(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "team.API.listInvitations")
	defer span.End()

	callerID, ok := authentication.GetUserID(ctx)
	if !ok || callerID == "" {
		a.writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	invitations, err := a.service.ListInvitations(ctx, callerID, chi.URLParam(r, "schoolID"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	resp := make([]InvitationResponse, 0, len(invitations))
	for _, inv := range invitations {
		resp = append(resp, InvitationResponse{
			ID:        inv.ID,
			Email:     inv.Email,
			Role:      inv.Role,
			Status:    string(inv.Status),
			CreatedAt: inv.CreatedAt.Format(time.RFC3339),
		})
	}

	a.writeJSON(w, http.StatusOK, resp)
}

// validateRequest checks the fields each action variant requires.
func (a *API) validateRequest(req *ActionRequest) error {
	if !req.Action.Valid() {
		return errors.New("Invalid action")
	}

	if err := a.validate.Struct(req); err != nil {
		return errors.New("Invalid request: " + err.Error())
	}

	switch req.Action {
	case ActionInvite:
		if req.Email == "" {
			return errors.New("email is required")
		}
		if !req.Role.Assignable() {
			return errors.New("role must be one of admin, teacher, viewer")
		}
	case ActionUpdateRole:
		if req.UserRoleID == "" {
			return errors.New("user_role_id is required")
		}
		if !req.Role.Assignable() {
			return errors.New("role must be one of admin, teacher, viewer")
		}
	case ActionRemove:
		if req.UserRoleID == "" {
			return errors.New("user_role_id is required")
		}
	case ActionCancelInvitation:
		if req.InvitationID == "" {
			return errors.New("invitation_id is required")
		}
	}

	return nil
}

func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authorization.ErrDenied):
		a.writeError(w, http.StatusForbidden, "Only admins can manage team members")
	case errors.Is(err, ErrDuplicateMembership):
		a.writeError(w, http.StatusBadRequest, "User already has a role in this school")
	case errors.Is(err, ErrProtectedRole):
		a.writeError(w, http.StatusBadRequest, "Super admin role cannot be modified")
	case errors.Is(err, ErrMembershipNotFound):
		a.writeError(w, http.StatusBadRequest, "Membership not found in this school")
	case errors.Is(err, ErrInvalidRequest):
		a.writeError(w, http.StatusBadRequest, err.Error())
	default:
		a.logger.Errorf("team operation failed: %v", err)
		a.writeError(w, http.StatusInternalServerError, "Internal server error")
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
	a.writeJSON(w, status, ErrorResponse{Error: message})
}
