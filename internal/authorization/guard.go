// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"

	"github.com/shuleni/school-records/internal/logging"
	"github.com/shuleni/school-records/internal/monitoring"
	"github.com/shuleni/school-records/internal/storage"
	"github.com/shuleni/school-records/internal/tracing"
	"github.com/shuleni/school-records/internal/types"
)

// ErrDenied is returned when the caller holds no admin role in the
// target school. It is a first-class outcome; callers must not treat
// it as a storage failure.
var ErrDenied = errors.New("caller is not an admin of this school")

var _ GuardInterface = (*Guard)(nil)

// Guard gates privileged team-management operations on the caller's
// membership role. The membership table is the single source of truth;
// the guard performs one point read and mutates nothing.
type Guard struct {
	memberships MembershipReaderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewGuard(memberships MembershipReaderInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Guard {
	g := new(Guard)

	g.memberships = memberships
	g.tracer = tracer
	g.monitor = monitor
	g.logger = logger

	return g
}

func (g *Guard) Authorize(ctx context.Context, schoolID, userID string) (types.Role, error) {
	ctx, span := g.tracer.Start(ctx, "authorization.Guard.Authorize")
	defer span.End()

	m, err := g.memberships.GetMembershipByUser(ctx, schoolID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			g.logger.Security().AuthzFailure(userID, "team_management")
			return "", ErrDenied
		}
		return "", err
	}

	if !m.Role.CanManageTeam() {
		g.logger.Security().AuthzFailure(userID, "team_management")
		return "", ErrDenied
	}

	return m.Role, nil
}
