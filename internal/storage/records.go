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

	"github.com/shuleni/school-records/internal/types"
)

// Record-store access for the domain tables. Every statement carries a
// school_id filter; a record id from another school never matches.

var _ RecordStoreInterface = (*Storage)(nil)

const (
	defaultPage     uint64 = 1
	defaultPageSize uint64 = 100
)

// Offset calculates the pagination offset from a 1-based page number.
func Offset(page, pageSize uint64) uint64 {
	if page == 0 {
		page = defaultPage
	}
	return (page - 1) * pageSize
}

// PageSize clamps a requested page size onto the default.
func PageSize(size uint64) uint64 {
	if size == 0 {
		return defaultPageSize
	}
	return size
}

func (s *Storage) CreateTrade(ctx context.Context, t *types.Trade) (*types.Trade, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTrade")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate trade ID: %w", err)
	}

	var created types.Trade
	err = s.db.Statement(ctx).
		Insert("trades").
		Columns("id", "school_id", "name", "abbreviation").
		Values(id.String(), t.SchoolID, t.Name, t.Abbreviation).
		Suffix("RETURNING id, school_id, name, abbreviation, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.SchoolID, &created.Name, &created.Abbreviation, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert trade: %w", err)
	}

	return &created, nil
}

func (s *Storage) ListTradesBySchoolID(ctx context.Context, schoolID string) ([]*types.Trade, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTradesBySchoolID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "school_id", "name", "abbreviation", "created_at").
		From("trades").
		Where(sq.Eq{"school_id": schoolID}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list trades: %w", err)
	}
	defer rows.Close()

	var trades []*types.Trade
	for rows.Next() {
		var t types.Trade
		if err := rows.Scan(&t.ID, &t.SchoolID, &t.Name, &t.Abbreviation, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan trade: %w", err)
		}
		trades = append(trades, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return trades, nil
}

func (s *Storage) DeleteTrade(ctx context.Context, schoolID, tradeID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteTrade")
	defer span.End()

	return s.deleteScoped(ctx, "trades", schoolID, tradeID)
}

func (s *Storage) CreateClass(ctx context.Context, c *types.Class) (*types.Class, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateClass")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate class ID: %w", err)
	}

	var created types.Class
	err = s.db.Statement(ctx).
		Insert("classes").
		Columns("id", "school_id", "name", "level", "trade_id").
		Values(id.String(), c.SchoolID, c.Name, c.Level, c.TradeID).
		Suffix("RETURNING id, school_id, name, level, trade_id, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.SchoolID, &created.Name, &created.Level, &created.TradeID, &created.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert class: %w", err)
	}

	return &created, nil
}

func (s *Storage) ListClassesBySchoolID(ctx context.Context, schoolID string) ([]*types.Class, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListClassesBySchoolID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "school_id", "name", "level", "trade_id", "created_at").
		From("classes").
		Where(sq.Eq{"school_id": schoolID}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}
	defer rows.Close()

	var classes []*types.Class
	for rows.Next() {
		var c types.Class
		if err := rows.Scan(&c.ID, &c.SchoolID, &c.Name, &c.Level, &c.TradeID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan class: %w", err)
		}
		classes = append(classes, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return classes, nil
}

func (s *Storage) DeleteClass(ctx context.Context, schoolID, classID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteClass")
	defer span.End()

	return s.deleteScoped(ctx, "classes", schoolID, classID)
}

func (s *Storage) CreateStudent(ctx context.Context, st *types.Student) (*types.Student, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateStudent")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate student ID: %w", err)
	}

	var created types.Student
	err = s.db.Statement(ctx).
		Insert("students").
		Columns("id", "school_id", "registration_number", "full_name", "gender", "date_of_birth",
			"class_id", "trade_id", "academic_year", "guardian_name", "guardian_phone", "home_location",
			"status", "admission_date").
		Values(id.String(), st.SchoolID, st.RegistrationNumber, st.FullName, st.Gender, st.DateOfBirth,
			st.ClassID, st.TradeID, st.AcademicYear, st.GuardianName, st.GuardianPhone, st.HomeLocation,
			st.Status, st.AdmissionDate).
		Suffix(`RETURNING id, school_id, registration_number, full_name, gender, date_of_birth,
			class_id, trade_id, academic_year, guardian_name, guardian_phone, home_location,
			status, admission_date, is_deleted, created_at, updated_at`).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.SchoolID, &created.RegistrationNumber, &created.FullName, &created.Gender,
			&created.DateOfBirth, &created.ClassID, &created.TradeID, &created.AcademicYear, &created.GuardianName,
			&created.GuardianPhone, &created.HomeLocation, &created.Status, &created.AdmissionDate,
			&created.IsDeleted, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert student: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetStudentByID(ctx context.Context, schoolID, studentID string) (*types.Student, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetStudentByID")
	defer span.End()

	var st types.Student
	err := s.db.Statement(ctx).
		Select("id", "school_id", "registration_number", "full_name", "gender", "date_of_birth",
			"class_id", "trade_id", "academic_year", "guardian_name", "guardian_phone", "home_location",
			"status", "admission_date", "is_deleted", "created_at", "updated_at").
		From("students").
		Where(sq.Eq{"id": studentID, "school_id": schoolID, "is_deleted": false}).
		QueryRowContext(ctx).
		Scan(&st.ID, &st.SchoolID, &st.RegistrationNumber, &st.FullName, &st.Gender, &st.DateOfBirth,
			&st.ClassID, &st.TradeID, &st.AcademicYear, &st.GuardianName, &st.GuardianPhone, &st.HomeLocation,
			&st.Status, &st.AdmissionDate, &st.IsDeleted, &st.CreatedAt, &st.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	return &st, nil
}

func (s *Storage) ListStudentsBySchoolID(ctx context.Context, schoolID string, page, pageSize uint64) ([]*types.Student, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListStudentsBySchoolID")
	defer span.End()

	size := PageSize(pageSize)

	rows, err := s.db.Statement(ctx).
		Select("id", "school_id", "registration_number", "full_name", "gender", "date_of_birth",
			"class_id", "trade_id", "academic_year", "guardian_name", "guardian_phone", "home_location",
			"status", "admission_date", "is_deleted", "created_at", "updated_at").
		From("students").
		Where(sq.Eq{"school_id": schoolID, "is_deleted": false}).
		OrderBy("registration_number").
		Limit(size).
		Offset(Offset(page, size)).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer rows.Close()

	var students []*types.Student
	for rows.Next() {
		var st types.Student
		if err := rows.Scan(&st.ID, &st.SchoolID, &st.RegistrationNumber, &st.FullName, &st.Gender, &st.DateOfBirth,
			&st.ClassID, &st.TradeID, &st.AcademicYear, &st.GuardianName, &st.GuardianPhone, &st.HomeLocation,
			&st.Status, &st.AdmissionDate, &st.IsDeleted, &st.CreatedAt, &st.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, &st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return students, nil
}

func (s *Storage) SoftDeleteStudent(ctx context.Context, schoolID, studentID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SoftDeleteStudent")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("students").
		Set("is_deleted", true).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": studentID, "school_id": schoolID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
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

func (s *Storage) CreateDisciplineRecord(ctx context.Context, r *types.DisciplineRecord) (*types.DisciplineRecord, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateDisciplineRecord")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate record ID: %w", err)
	}

	var created types.DisciplineRecord
	err = s.db.Statement(ctx).
		Insert("discipline_records").
		Columns("id", "school_id", "student_id", "record_type", "category", "description", "action_taken", "mistake_date", "recorded_by").
		Values(id.String(), r.SchoolID, r.StudentID, r.RecordType, r.Category, r.Description, r.ActionTaken, r.MistakeDate, r.RecordedBy).
		Suffix("RETURNING id, school_id, student_id, record_type, category, description, action_taken, mistake_date, recorded_by, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.SchoolID, &created.StudentID, &created.RecordType, &created.Category,
			&created.Description, &created.ActionTaken, &created.MistakeDate, &created.RecordedBy, &created.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert discipline record: %w", err)
	}

	return &created, nil
}

func (s *Storage) ListDisciplineRecordsByStudent(ctx context.Context, schoolID, studentID string) ([]*types.DisciplineRecord, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListDisciplineRecordsByStudent")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "school_id", "student_id", "record_type", "category", "description", "action_taken", "mistake_date", "recorded_by", "created_at").
		From("discipline_records").
		Where(sq.Eq{"school_id": schoolID, "student_id": studentID}).
		OrderBy("mistake_date DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list discipline records: %w", err)
	}
	defer rows.Close()

	var records []*types.DisciplineRecord
	for rows.Next() {
		var r types.DisciplineRecord
		if err := rows.Scan(&r.ID, &r.SchoolID, &r.StudentID, &r.RecordType, &r.Category, &r.Description,
			&r.ActionTaken, &r.MistakeDate, &r.RecordedBy, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan discipline record: %w", err)
		}
		records = append(records, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}

func (s *Storage) deleteScoped(ctx context.Context, table, schoolID, id string) error {
	res, err := s.db.Statement(ctx).
		Delete(table).
		Where(sq.Eq{"id": id, "school_id": schoolID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
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
