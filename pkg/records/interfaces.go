// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package records

import (
	"context"

	"github.com/shuleni/school-records/internal/types"
)

type ServiceInterface interface {
	CreateTrade(ctx context.Context, callerID string, t *types.Trade) (*types.Trade, error)
	ListTrades(ctx context.Context, callerID, schoolID string) ([]*types.Trade, error)
	DeleteTrade(ctx context.Context, callerID, schoolID, tradeID string) error

	CreateClass(ctx context.Context, callerID string, c *types.Class) (*types.Class, error)
	ListClasses(ctx context.Context, callerID, schoolID string) ([]*types.Class, error)
	DeleteClass(ctx context.Context, callerID, schoolID, classID string) error

	CreateStudent(ctx context.Context, callerID string, s *types.Student) (*types.Student, error)
	GetStudent(ctx context.Context, callerID, schoolID, studentID string) (*types.Student, error)
	ListStudents(ctx context.Context, callerID, schoolID string, page, pageSize uint64) ([]*types.Student, error)
	DeleteStudent(ctx context.Context, callerID, schoolID, studentID string) error

	CreateDisciplineRecord(ctx context.Context, callerID string, r *types.DisciplineRecord) (*types.DisciplineRecord, error)
	ListDisciplineRecords(ctx context.Context, callerID, schoolID, studentID string) ([]*types.DisciplineRecord, error)
}

// MembershipReaderInterface resolves the caller's membership in a
// school.
type MembershipReaderInterface interface {
	GetMembershipByUser(ctx context.Context, schoolID, userID string) (*types.Membership, error)
}
