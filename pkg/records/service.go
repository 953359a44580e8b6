// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package records

import (
	"context"
	"errors"

	"github.com/shuleni/school-records/internal/authorization"
	"github.com/shuleni/school-records/internal/logging"
	"github.com/shuleni/school-records/internal/monitoring"
	"github.com/shuleni/school-records/internal/storage"
	"github.com/shuleni/school-records/internal/tracing"
	"github.com/shuleni/school-records/internal/types"
)

// ErrRecordNotFound is returned when the target row does not exist in
// the caller's school.
var ErrRecordNotFound = errors.New("record not found")

type Service struct {
	store       storage.RecordStoreInterface
	memberships MembershipReaderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func NewService(
	store storage.RecordStoreInterface,
	memberships MembershipReaderInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		store:       store,
		memberships: memberships,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}

// requireRead admits any member of the school.
func (s *Service) requireRead(ctx context.Context, schoolID, callerID string) error {
	_, err := s.memberships.GetMembershipByUser(ctx, schoolID, callerID)
	if errors.Is(err, storage.ErrNotFound) {
		return authorization.ErrDenied
	}
	return err
}

// requireWrite admits every role except viewer.
func (s *Service) requireWrite(ctx context.Context, schoolID, callerID string) error {
	m, err := s.memberships.GetMembershipByUser(ctx, schoolID, callerID)
	if errors.Is(err, storage.ErrNotFound) {
		return authorization.ErrDenied
	}
	if err != nil {
		return err
	}
	if m.Role == types.RoleViewer {
		return authorization.ErrDenied
	}
	return nil
}

func (s *Service) CreateTrade(ctx context.Context, callerID string, t *types.Trade) (*types.Trade, error) {
	ctx, span := s.tracer.Start(ctx, "records.Service.CreateTrade")
	defer span.End()

	if err := s.requireWrite(ctx, t.SchoolID, callerID); err != nil {
		return nil, err
	}
	return s.store.CreateTrade(ctx, t)
}

func (s *Service) ListTrades(ctx context.Context, callerID, schoolID string) ([]*types.Trade, error) {
	ctx, span := s.tracer.Start(ctx, "records.Service.ListTrades")
	defer span.End()

	if err := s.requireRead(ctx, schoolID, callerID); err != nil {
		return nil, err
	}
	return s.store.ListTradesBySchoolID(ctx, schoolID)
}

func (s *Service) DeleteTrade(ctx context.Context, callerID, schoolID, tradeID string) error {
	ctx, span := s.tracer.Start(ctx, "records.Service.DeleteTrade")
	defer span.End()

	if err := s.requireWrite(ctx, schoolID, callerID); err != nil {
		return err
	}
	if err := s.store.DeleteTrade(ctx, schoolID, tradeID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrRecordNotFound
		}
		return err
	}
	return nil
}

func (s *Service) CreateClass(ctx context.Context, callerID string, c *types.Class) (*types.Class, error) {
	ctx, span := s.tracer.Start(ctx, "records.Service.CreateClass")
	defer span.End()

	if err := s.requireWrite(ctx, c.SchoolID, callerID); err != nil {
		return nil, err
	}
	return s.store.CreateClass(ctx, c)
}

func (s *Service) ListClasses(ctx context.Context, callerID, schoolID string) ([]*types.Class, error) {
	ctx, span := s.tracer.Start(ctx, "records.Service.ListClasses")
	defer span.End()

	if err := s.requireRead(ctx, schoolID, callerID); err != nil {
		return nil, err
	}
	return s.store.ListClassesBySchoolID(ctx, schoolID)
}

func (s *Service) DeleteClass(ctx context.Context, callerID, schoolID, classID string) error {
	ctx, span := s.tracer.Start(ctx, "records.Service.DeleteClass")
	defer span.End()

	if err := s.requireWrite(ctx, schoolID, callerID); err != nil {
		return err
	}
	if err := s.store.DeleteClass(ctx, schoolID, classID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrRecordNotFound
		}
		return err
	}
	return nil
}

func (s *Service) CreateStudent(ctx context.Context, callerID string, st *types.Student) (*types.Student, error) {
	ctx, span := s.tracer.Start(ctx, "records.Service.CreateStudent")
	defer span.End()

	if err := s.requireWrite(ctx, st.SchoolID, callerID); err != nil {
		return nil, err
	}
	return s.store.CreateStudent(ctx, st)
}

func (s *Service) GetStudent(ctx context.Context, callerID, schoolID, studentID string) (*types.Student, error) {
	ctx, span := s.tracer.Start(ctx, "records.Service.GetStudent")
	defer span.End()

	if err := s.requireRead(ctx, schoolID, callerID); err != nil {
		return nil, err
	}
	st, err := s.store.GetStudentByID(ctx, schoolID, studentID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrRecordNotFound
	}
	return st, err
}

func (s *Service) ListStudents(ctx context.Context, callerID, schoolID string, page, pageSize uint64) ([]*types.Student, error) {
	ctx, span := s.tracer.Start(ctx, "records.Service.ListStudents")
	defer span.End()

	if err := s.requireRead(ctx, schoolID, callerID); err != nil {
		return nil, err
	}
	return s.store.ListStudentsBySchoolID(ctx, schoolID, page, pageSize)
}

func (s *Service) DeleteStudent(ctx context.Context, callerID, schoolID, studentID string) error {
	ctx, span := s.tracer.Start(ctx, "records.Service.DeleteStudent")
	defer span.End()

	if err := s.requireWrite(ctx, schoolID, callerID); err != nil {
		return err
	}
	if err := s.store.SoftDeleteStudent(ctx, schoolID, studentID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrRecordNotFound
		}
		return err
	}
	return nil
}

func (s *Service) CreateDisciplineRecord(ctx context.Context, callerID string, r *types.DisciplineRecord) (*types.DisciplineRecord, error) {
	ctx, span := s.tracer.Start(ctx, "records.Service.CreateDisciplineRecord")
	defer span.End()

	if err := s.requireWrite(ctx, r.SchoolID, callerID); err != nil {
		return nil, err
	}
	r.RecordedBy = callerID
	return s.store.CreateDisciplineRecord(ctx, r)
}

func (s *Service) ListDisciplineRecords(ctx context.Context, callerID, schoolID, studentID string) ([]*types.DisciplineRecord, error) {
	ctx, span := s.tracer.Start(ctx, "records.Service.ListDisciplineRecords")
	defer span.End()

	if err := s.requireRead(ctx, schoolID, callerID); err != nil {
		return nil, err
	}
	return s.store.ListDisciplineRecordsByStudent(ctx, schoolID, studentID)
}
