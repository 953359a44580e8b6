// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"context"

	"github.com/shuleni/school-records/internal/types"
)

type ServiceInterface interface {
	Invite(ctx context.Context, callerID, schoolID, email string, role types.Role) (InviteOutcome, error)
	UpdateRole(ctx context.Context, callerID, schoolID, membershipID string, role types.Role) error
	Remove(ctx context.Context, callerID, schoolID, membershipID string) error
	CancelInvitation(ctx context.Context, callerID, schoolID, invitationID string) error
	ListMembers(ctx context.Context, callerID, schoolID string) ([]*types.Member, error)
	ListInvitations(ctx context.Context, callerID, schoolID string) ([]*types.Invitation, error)
}

// StorageInterface is the subset of internal/storage the team service needs.
type StorageInterface interface {
	AddMember(ctx context.Context, schoolID, userID string, role types.Role) (string, error)
	GetMembershipByUser(ctx context.Context, schoolID, userID string) (*types.Membership, error)
	GetMembershipByID(ctx context.Context, schoolID, membershipID string) (*types.Membership, error)
	UpdateMemberRole(ctx context.Context, schoolID, membershipID string, role types.Role) error
	RemoveMember(ctx context.Context, schoolID, membershipID string) error
	ListMembersBySchoolID(ctx context.Context, schoolID string) ([]*types.Member, error)

	UpsertInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error)
	DeletePendingInvitation(ctx context.Context, schoolID, invitationID string) (bool, error)
	ListPendingInvitationsBySchoolID(ctx context.Context, schoolID string) ([]*types.Invitation, error)
}

// GuardInterface resolves and checks the caller's role in a school.
type GuardInterface interface {
	Authorize(ctx context.Context, schoolID, userID string) (types.Role, error)
}

// IdentityClientInterface is the identity-provider surface the team
// service needs: account resolution by email.
type IdentityClientInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
}
