// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/shuleni/school-records/internal/types"
)

// StorageInterface is the subset of internal/storage the webhooks
// package needs.
type StorageInterface interface {
	UpsertProfile(ctx context.Context, p *types.Profile) error
	ListPendingInvitationsByEmail(ctx context.Context, email string) ([]*types.Invitation, error)
	AddMember(ctx context.Context, schoolID, userID string, role types.Role) (string, error)
	MarkInvitationAccepted(ctx context.Context, schoolID, email string) error
}

// ServiceInterface defines the webhook service operations.
type ServiceInterface interface {
	HandleRegistration(ctx context.Context, identityID, email, fullName string) error
}
