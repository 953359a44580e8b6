// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shuleni/school-records/internal/authorization"
	"github.com/shuleni/school-records/internal/logging"
	"github.com/shuleni/school-records/internal/monitoring"
	"github.com/shuleni/school-records/internal/storage"
	"github.com/shuleni/school-records/internal/tracing"
	"github.com/shuleni/school-records/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage  StorageInterface
	guard    GuardInterface
	identity IdentityClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	guard GuardInterface,
	identity IdentityClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		guard:    guard,
		identity: identity,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// NormalizeEmail lower-cases and trims an address; every lookup and
// every stored invitation uses the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Invite grants access to an existing account immediately or records a
// pending invitation for an email that has no account yet. A repeated
// invite to the same pending email overwrites role and inviter instead
// of creating a second row.
func (s *Service) Invite(ctx context.Context, callerID, schoolID, email string, role types.Role) (InviteOutcome, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.Invite")
	defer span.End()

	if _, err := s.guard.Authorize(ctx, schoolID, callerID); err != nil {
		return "", err
	}

	if !role.Assignable() {
		return "", fmt.Errorf("%w: role %q cannot be granted through team management", ErrInvalidRequest, role)
	}

	email = NormalizeEmail(email)

	userID, err := s.identity.GetIdentityIDByEmail(ctx, email)
	if err != nil {
		s.logger.Errorf("failed to resolve account for %s: %v", email, err)
		return "", fmt.Errorf("failed to check account existence: %w", err)
	}

	if userID == "" {
		// No account yet; the registration webhook claims the
		// invitation once this email signs up.
		_, err := s.storage.UpsertInvitation(ctx, &types.Invitation{
			SchoolID:  schoolID,
			Email:     email,
			Role:      role,
			InvitedBy: callerID,
			Status:    types.InvitationPending,
		})
		if err != nil {
			return "", fmt.Errorf("failed to save invitation: %w", err)
		}
		return OutcomePending, nil
	}

	if _, err := s.storage.GetMembershipByUser(ctx, schoolID, userID); err == nil {
		return "", ErrDuplicateMembership
	} else if !errors.Is(err, storage.ErrNotFound) {
		return "", fmt.Errorf("failed to check existing membership: %w", err)
	}

	if _, err := s.storage.AddMember(ctx, schoolID, userID, role); err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return "", ErrDuplicateMembership
		}
		return "", fmt.Errorf("failed to add member: %w", err)
	}

	if _, err := s.storage.UpsertInvitation(ctx, &types.Invitation{
		SchoolID:  schoolID,
		Email:     email,
		Role:      role,
		InvitedBy: callerID,
		Status:    types.InvitationAccepted,
	}); err != nil {
		return "", fmt.Errorf("failed to record accepted invitation: %w", err)
	}

	return OutcomeAdded, nil
}

// UpdateRole overwrites the role of a membership within the school.
// super_admin memberships are immutable through this path.
func (s *Service) UpdateRole(ctx context.Context, callerID, schoolID, membershipID string, role types.Role) error {
	ctx, span := s.tracer.Start(ctx, "team.Service.UpdateRole")
	defer span.End()

	if _, err := s.guard.Authorize(ctx, schoolID, callerID); err != nil {
		return err
	}

	if !role.Assignable() {
		return fmt.Errorf("%w: role %q cannot be granted through team management", ErrInvalidRequest, role)
	}

	target, err := s.storage.GetMembershipByID(ctx, schoolID, membershipID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrMembershipNotFound
		}
		return fmt.Errorf("failed to load membership: %w", err)
	}

	if target.Role == types.RoleSuperAdmin {
		return ErrProtectedRole
	}

	if err := s.storage.UpdateMemberRole(ctx, schoolID, membershipID, role); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrMembershipNotFound
		}
		return fmt.Errorf("failed to update role: %w", err)
	}

	return nil
}

// Remove deletes a membership within the school. super_admin
// memberships are never removable, which also guarantees the last
// super_admin cannot be removed.
func (s *Service) Remove(ctx context.Context, callerID, schoolID, membershipID string) error {
	ctx, span := s.tracer.Start(ctx, "team.Service.Remove")
	defer span.End()

	if _, err := s.guard.Authorize(ctx, schoolID, callerID); err != nil {
		return err
	}

	target, err := s.storage.GetMembershipByID(ctx, schoolID, membershipID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrMembershipNotFound
		}
		return fmt.Errorf("failed to load membership: %w", err)
	}

	if target.Role == types.RoleSuperAdmin {
		return ErrProtectedRole
	}

	if err := s.storage.RemoveMember(ctx, schoolID, membershipID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrMembershipNotFound
		}
		return fmt.Errorf("failed to remove member: %w", err)
	}

	return nil
}

// CancelInvitation deletes a pending invitation. An id belonging to a
// different school, an already-accepted invitation or a row that is
// already gone all cancel to nothing without error.
func (s *Service) CancelInvitation(ctx context.Context, callerID, schoolID, invitationID string) error {
	ctx, span := s.tracer.Start(ctx, "team.Service.CancelInvitation")
	defer span.End()

	if _, err := s.guard.Authorize(ctx, schoolID, callerID); err != nil {
		return err
	}

	deleted, err := s.storage.DeletePendingInvitation(ctx, schoolID, invitationID)
	if err != nil {
		return fmt.Errorf("failed to cancel invitation: %w", err)
	}
	if !deleted {
		s.logger.Debugf("cancel_invitation: no pending invitation %s in school %s", invitationID, schoolID)
	}

	return nil
}

// ListMembers returns the school's members joined with their profiles.
// Any member of the school may read the list.
func (s *Service) ListMembers(ctx context.Context, callerID, schoolID string) ([]*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.ListMembers")
	defer span.End()

	if err := s.requireMembership(ctx, schoolID, callerID); err != nil {
		return nil, err
	}

	return s.storage.ListMembersBySchoolID(ctx, schoolID)
}

// ListInvitations returns the school's pending invitations. Admin only.
func (s *Service) ListInvitations(ctx context.Context, callerID, schoolID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.ListInvitations")
	defer span.End()

	if _, err := s.guard.Authorize(ctx, schoolID, callerID); err != nil {
		return nil, err
	}

	return s.storage.ListPendingInvitationsBySchoolID(ctx, schoolID)
}

func (s *Service) requireMembership(ctx context.Context, schoolID, callerID string) error {
	if _, err := s.storage.GetMembershipByUser(ctx, schoolID, callerID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return authorization.ErrDenied
		}
		return fmt.Errorf("failed to check membership: %w", err)
	}
	return nil
}
