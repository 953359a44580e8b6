// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"github.com/shuleni/school-records/internal/types"
)

// Action discriminates the team-management request variants.
type Action string

const (
	ActionInvite           Action = "invite"
	ActionUpdateRole       Action = "update_role"
	ActionRemove           Action = "remove"
	ActionCancelInvitation Action = "cancel_invitation"
)

func (a Action) Valid() bool {
	switch a {
	case ActionInvite, ActionUpdateRole, ActionRemove, ActionCancelInvitation:
		return true
	}
	return false
}

// InviteOutcome reports how an invite was resolved: the account
// existed and was added immediately, or the invitation is waiting for
// the email to register.
type InviteOutcome string

const (
	OutcomeAdded   InviteOutcome = "added"
	OutcomePending InviteOutcome = "pending"
)

// ActionRequest is the wire payload of the team-management endpoint.
type ActionRequest struct {
	Action       Action     `json:"action" validate:"required"`
	SchoolID     string     `json:"school_id" validate:"required,uuid"`
	Email        string     `json:"email,omitempty" validate:"omitempty,email"`
	Role         types.Role `json:"role,omitempty"`
	UserRoleID   string     `json:"user_role_id,omitempty" validate:"omitempty,uuid"`
	InvitationID string     `json:"invitation_id,omitempty" validate:"omitempty,uuid"`
}

// ActionResponse is the success payload.
type ActionResponse struct {
	Message string `json:"message"`
	Status  string `json:"status,omitempty"`
}

// ErrorResponse is the failure payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

type MemberResponse struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Role      types.Role `json:"role"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	CreatedAt string     `json:"created_at"`
}

type InvitationResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Role      types.Role `json:"role"`
	Status    string     `json:"status"`
	CreatedAt string     `json:"created_at"`
}
