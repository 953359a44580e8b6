// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package school

import (
	"context"
	"errors"
	"fmt"

	"github.com/shuleni/school-records/internal/authorization"
	"github.com/shuleni/school-records/internal/logging"
	"github.com/shuleni/school-records/internal/monitoring"
	"github.com/shuleni/school-records/internal/storage"
	"github.com/shuleni/school-records/internal/tracing"
	"github.com/shuleni/school-records/internal/types"
)

// ErrSchoolNotFound is returned when the school does not exist or the
// caller is not a member of it. The two cases are indistinguishable on
// purpose.
var ErrSchoolNotFound = errors.New("school not found")

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// CreateSchool inserts the school and grants the creator the
// super_admin membership. Both writes run in the request transaction.
func (s *Service) CreateSchool(ctx context.Context, callerID string, sc *types.School) (*types.School, error) {
	ctx, span := s.tracer.Start(ctx, "school.Service.CreateSchool")
	defer span.End()

	sc.CreatedBy = callerID

	created, err := s.storage.CreateSchool(ctx, sc)
	if err != nil {
		return nil, fmt.Errorf("failed to create school: %w", err)
	}

	if _, err := s.storage.AddMember(ctx, created.ID, callerID, types.RoleSuperAdmin); err != nil {
		return nil, fmt.Errorf("failed to add founder membership: %w", err)
	}

	s.logger.Infof("created school %s for user %s", created.ID, callerID)

	return created, nil
}

func (s *Service) GetSchool(ctx context.Context, callerID, schoolID string) (*types.School, error) {
	ctx, span := s.tracer.Start(ctx, "school.Service.GetSchool")
	defer span.End()

	if _, err := s.storage.GetMembershipByUser(ctx, schoolID, callerID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, authorization.ErrDenied
		}
		return nil, err
	}

	sc, err := s.storage.GetSchoolByID(ctx, schoolID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrSchoolNotFound
		}
		return nil, err
	}

	return sc, nil
}

func (s *Service) ListSchools(ctx context.Context, callerID string) ([]*types.School, error) {
	ctx, span := s.tracer.Start(ctx, "school.Service.ListSchools")
	defer span.End()

	return s.storage.ListSchoolsByUserID(ctx, callerID)
}
