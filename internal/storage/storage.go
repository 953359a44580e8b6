// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/shuleni/school-records/internal/db"
	"github.com/shuleni/school-records/internal/logging"
	"github.com/shuleni/school-records/internal/monitoring"
	"github.com/shuleni/school-records/internal/tracing"
	"github.com/shuleni/school-records/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) CreateSchool(ctx context.Context, school *types.School) (*types.School, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateSchool")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate school ID: %w", err)
	}

	var created types.School
	err = s.db.Statement(ctx).
		Insert("schools").
		Columns("id", "name", "code", "location", "phone", "email", "academic_year_start", "academic_year_end", "created_by").
		Values(id.String(), school.Name, school.Code, school.Location, school.Phone, school.Email, school.AcademicYearStart, school.AcademicYearEnd, school.CreatedBy).
		Suffix("RETURNING id, name, code, location, phone, email, academic_year_start, academic_year_end, created_by, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Name, &created.Code, &created.Location, &created.Phone, &created.Email,
			&created.AcademicYearStart, &created.AcademicYearEnd, &created.CreatedBy, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert school: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetSchoolByID(ctx context.Context, id string) (*types.School, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetSchoolByID")
	defer span.End()

	var school types.School
	err := s.db.Statement(ctx).
		Select("id", "name", "code", "location", "phone", "email", "academic_year_start", "academic_year_end", "created_by", "created_at").
		From("schools").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&school.ID, &school.Name, &school.Code, &school.Location, &school.Phone, &school.Email,
			&school.AcademicYearStart, &school.AcademicYearEnd, &school.CreatedBy, &school.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get school: %w", err)
	}

	return &school, nil
}

func (s *Storage) ListSchoolsByUserID(ctx context.Context, userID string) ([]*types.School, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListSchoolsByUserID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("s.id", "s.name", "s.code", "s.location", "s.phone", "s.email", "s.academic_year_start", "s.academic_year_end", "s.created_by", "s.created_at").
		From("schools s").
		Join("memberships m ON s.id = m.school_id").
		Where(sq.Eq{"m.user_id": userID})

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schools: %w", err)
	}
	defer rows.Close()

	var schools []*types.School
	for rows.Next() {
		var school types.School
		if err := rows.Scan(&school.ID, &school.Name, &school.Code, &school.Location, &school.Phone, &school.Email,
			&school.AcademicYearStart, &school.AcademicYearEnd, &school.CreatedBy, &school.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan school: %w", err)
		}
		schools = append(schools, &school)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return schools, nil
}

func (s *Storage) AddMember(ctx context.Context, schoolID, userID string, role types.Role) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddMember")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate membership ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("memberships").
		Columns("id", "school_id", "user_id", "role").
		Values(id.String(), schoolID, userID, role).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return "", ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return "", ErrForeignKeyViolation
		}
		return "", fmt.Errorf("failed to add member: %w", err)
	}

	return id.String(), nil
}

func (s *Storage) GetMembershipByUser(ctx context.Context, schoolID, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembershipByUser")
	defer span.End()

	var m types.Membership
	err := s.db.Statement(ctx).
		Select("id", "school_id", "user_id", "role", "created_at").
		From("memberships").
		Where(sq.Eq{"school_id": schoolID, "user_id": userID}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.SchoolID, &m.UserID, &m.Role, &m.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}

func (s *Storage) GetMembershipByID(ctx context.Context, schoolID, membershipID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembershipByID")
	defer span.End()

	var m types.Membership
	err := s.db.Statement(ctx).
		Select("id", "school_id", "user_id", "role", "created_at").
		From("memberships").
		Where(sq.Eq{"id": membershipID, "school_id": schoolID}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.SchoolID, &m.UserID, &m.Role, &m.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}

func (s *Storage) UpdateMemberRole(ctx context.Context, schoolID, membershipID string, role types.Role) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMemberRole")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("memberships").
		Set("role", role).
		Where(sq.Eq{
			"id":        membershipID,
			"school_id": schoolID,
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update member role: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) RemoveMember(ctx context.Context, schoolID, membershipID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveMember")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("memberships").
		Where(sq.Eq{
			"id":        membershipID,
			"school_id": schoolID,
		}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) ListMembersBySchoolID(ctx context.Context, schoolID string) ([]*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembersBySchoolID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("m.id", "m.school_id", "m.user_id", "m.role", "COALESCE(p.email, '')", "COALESCE(p.full_name, '')", "m.created_at").
		From("memberships m").
		LeftJoin("profiles p ON m.user_id = p.user_id").
		Where(sq.Eq{"m.school_id": schoolID})

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.Member
	for rows.Next() {
		var m types.Member
		if err := rows.Scan(&m.MembershipID, &m.SchoolID, &m.UserID, &m.Role, &m.Email, &m.FullName, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

// UpsertInvitation inserts an invitation or, when one already exists
// for the same (school_id, email), overwrites its role, inviter and
// status. The unique key makes a repeated invite an update, never a
// second row.
func (s *Storage) UpsertInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertInvitation")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation ID: %w", err)
	}

	var saved types.Invitation
	err = s.db.Statement(ctx).
		Insert("school_invitations").
		Columns("id", "school_id", "email", "role", "invited_by", "status").
		Values(id.String(), inv.SchoolID, inv.Email, inv.Role, inv.InvitedBy, inv.Status).
		Suffix(`ON CONFLICT (school_id, email) DO UPDATE
			SET role = EXCLUDED.role, invited_by = EXCLUDED.invited_by, status = EXCLUDED.status
			RETURNING id, school_id, email, role, invited_by, status, created_at`).
		QueryRowContext(ctx).
		Scan(&saved.ID, &saved.SchoolID, &saved.Email, &saved.Role, &saved.InvitedBy, &saved.Status, &saved.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to upsert invitation: %w", err)
	}

	return &saved, nil
}

// DeletePendingInvitation deletes a pending invitation scoped to the
// school. It reports whether a row was deleted; an id belonging to
// another school, an accepted invitation or an already-deleted row all
// yield false without error.
func (s *Storage) DeletePendingInvitation(ctx context.Context, schoolID, invitationID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeletePendingInvitation")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("school_invitations").
		Where(sq.Eq{
			"id":        invitationID,
			"school_id": schoolID,
			"status":    types.InvitationPending,
		}).
		ExecContext(ctx)

	if err != nil {
		return false, fmt.Errorf("failed to delete invitation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows > 0, nil
}

func (s *Storage) ListPendingInvitationsBySchoolID(ctx context.Context, schoolID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPendingInvitationsBySchoolID")
	defer span.End()

	return s.listPendingInvitations(ctx, sq.Eq{"school_id": schoolID, "status": types.InvitationPending})
}

func (s *Storage) ListPendingInvitationsByEmail(ctx context.Context, email string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPendingInvitationsByEmail")
	defer span.End()

	return s.listPendingInvitations(ctx, sq.Eq{"email": email, "status": types.InvitationPending})
}

func (s *Storage) listPendingInvitations(ctx context.Context, where sq.Eq) ([]*types.Invitation, error) {
	query := s.db.Statement(ctx).
		Select("id", "school_id", "email", "role", "invited_by", "status", "created_at").
		From("school_invitations").
		Where(where)

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	var invitations []*types.Invitation
	for rows.Next() {
		var inv types.Invitation
		if err := rows.Scan(&inv.ID, &inv.SchoolID, &inv.Email, &inv.Role, &inv.InvitedBy, &inv.Status, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, &inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invitations, nil
}

func (s *Storage) MarkInvitationAccepted(ctx context.Context, schoolID, email string) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkInvitationAccepted")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("school_invitations").
		Set("status", types.InvitationAccepted).
		Where(sq.Eq{"school_id": schoolID, "email": email}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to mark invitation accepted: %w", err)
	}

	return nil
}

func (s *Storage) UpsertProfile(ctx context.Context, p *types.Profile) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertProfile")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate profile ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("profiles").
		Columns("id", "user_id", "email", "full_name").
		Values(id.String(), p.UserID, p.Email, p.FullName).
		Suffix(`ON CONFLICT (user_id) DO UPDATE
			SET email = EXCLUDED.email, full_name = EXCLUDED.full_name, updated_at = now()`).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	return nil
}
