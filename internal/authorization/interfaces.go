// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/shuleni/school-records/internal/types"
)

type GuardInterface interface {
	// Authorize resolves the caller's role within the school and
	// returns it when the role may manage the team. ErrDenied is a
	// refusal, not a transport failure.
	Authorize(ctx context.Context, schoolID, userID string) (types.Role, error)
}

// MembershipReaderInterface is the subset of storage the guard needs.
type MembershipReaderInterface interface {
	GetMembershipByUser(ctx context.Context, schoolID, userID string) (*types.Membership, error)
}
