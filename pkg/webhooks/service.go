// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"fmt"

	"github.com/shuleni/school-records/internal/logging"
	"github.com/shuleni/school-records/internal/monitoring"
	"github.com/shuleni/school-records/internal/storage"
	"github.com/shuleni/school-records/internal/tracing"
	"github.com/shuleni/school-records/internal/types"
	"github.com/shuleni/school-records/pkg/team"
)

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

// HandleRegistration runs after a new identity registers. It stores the
// profile and claims every pending invitation addressed to the email,
// granting the invited role in each school.
func (s *Service) HandleRegistration(ctx context.Context, identityID, email, fullName string) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	if identityID == "" || email == "" {
		return fmt.Errorf("identity ID or email is empty")
	}

	email = team.NormalizeEmail(email)

	err := s.storage.UpsertProfile(ctx, &types.Profile{
		UserID:   identityID,
		Email:    email,
		FullName: fullName,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	invitations, err := s.storage.ListPendingInvitationsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to list pending invitations: %w", err)
	}

	for _, inv := range invitations {
		if _, err := s.storage.AddMember(ctx, inv.SchoolID, identityID, inv.Role); err != nil {
			// A membership may already exist if an admin added the user
			// directly after inviting. The invitation is still settled.
			if !errors.Is(err, storage.ErrDuplicateKey) {
				return fmt.Errorf("failed to add member to school %s: %w", inv.SchoolID, err)
			}
		}

		if err := s.storage.MarkInvitationAccepted(ctx, inv.SchoolID, email); err != nil {
			return fmt.Errorf("failed to mark invitation accepted: %w", err)
		}

		s.logger.Infof("claimed invitation to school %s for user %s", inv.SchoolID, identityID)
	}

	return nil
}
