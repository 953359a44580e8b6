// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package school

import (
	"context"

	"github.com/shuleni/school-records/internal/types"
)

type ServiceInterface interface {
	CreateSchool(ctx context.Context, callerID string, s *types.School) (*types.School, error)
	GetSchool(ctx context.Context, callerID, schoolID string) (*types.School, error)
	ListSchools(ctx context.Context, callerID string) ([]*types.School, error)
}

// StorageInterface is the subset of internal/storage the school service needs.
type StorageInterface interface {
	CreateSchool(ctx context.Context, s *types.School) (*types.School, error)
	GetSchoolByID(ctx context.Context, id string) (*types.School, error)
	ListSchoolsByUserID(ctx context.Context, userID string) ([]*types.School, error)
	AddMember(ctx context.Context, schoolID, userID string, role types.Role) (string, error)
	GetMembershipByUser(ctx context.Context, schoolID, userID string) (*types.Membership, error)
}
