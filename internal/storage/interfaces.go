// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/shuleni/school-records/internal/types"
)

type StorageInterface interface {
	CreateSchool(ctx context.Context, s *types.School) (*types.School, error)
	GetSchoolByID(ctx context.Context, id string) (*types.School, error)
	ListSchoolsByUserID(ctx context.Context, userID string) ([]*types.School, error)

	AddMember(ctx context.Context, schoolID, userID string, role types.Role) (string, error)
	GetMembershipByUser(ctx context.Context, schoolID, userID string) (*types.Membership, error)
	GetMembershipByID(ctx context.Context, schoolID, membershipID string) (*types.Membership, error)
	UpdateMemberRole(ctx context.Context, schoolID, membershipID string, role types.Role) error
	RemoveMember(ctx context.Context, schoolID, membershipID string) error
	ListMembersBySchoolID(ctx context.Context, schoolID string) ([]*types.Member, error)

	UpsertInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error)
	DeletePendingInvitation(ctx context.Context, schoolID, invitationID string) (bool, error)
	ListPendingInvitationsBySchoolID(ctx context.Context, schoolID string) ([]*types.Invitation, error)
	ListPendingInvitationsByEmail(ctx context.Context, email string) ([]*types.Invitation, error)
	MarkInvitationAccepted(ctx context.Context, schoolID, email string) error

	UpsertProfile(ctx context.Context, p *types.Profile) error
}

type RecordStoreInterface interface {
	CreateTrade(ctx context.Context, t *types.Trade) (*types.Trade, error)
	ListTradesBySchoolID(ctx context.Context, schoolID string) ([]*types.Trade, error)
	DeleteTrade(ctx context.Context, schoolID, tradeID string) error

	CreateClass(ctx context.Context, c *types.Class) (*types.Class, error)
	ListClassesBySchoolID(ctx context.Context, schoolID string) ([]*types.Class, error)
	DeleteClass(ctx context.Context, schoolID, classID string) error

	CreateStudent(ctx context.Context, s *types.Student) (*types.Student, error)
	GetStudentByID(ctx context.Context, schoolID, studentID string) (*types.Student, error)
	ListStudentsBySchoolID(ctx context.Context, schoolID string, page, pageSize uint64) ([]*types.Student, error)
	SoftDeleteStudent(ctx context.Context, schoolID, studentID string) error

	CreateDisciplineRecord(ctx context.Context, r *types.DisciplineRecord) (*types.DisciplineRecord, error)
	ListDisciplineRecordsByStudent(ctx context.Context, schoolID, studentID string) ([]*types.DisciplineRecord, error)
}
