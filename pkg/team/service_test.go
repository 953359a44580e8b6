// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/shuleni/school-records/internal/authorization"
	"github.com/shuleni/school-records/internal/storage"
	"github.com/shuleni/school-records/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package team -destination ./mock_team.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package team -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package team -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package team -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type serviceMocks struct {
	storage  *MockStorageInterface
	guard    *MockGuardInterface
	identity *MockIdentityClientInterface
	tracer   *MockTracingInterface
	monitor  *MockMonitorInterface
	logger   *MockLoggerInterface
}

func newServiceWithMocks(ctrl *gomock.Controller) (*Service, *serviceMocks) {
	m := &serviceMocks{
		storage:  NewMockStorageInterface(ctrl),
		guard:    NewMockGuardInterface(ctrl),
		identity: NewMockIdentityClientInterface(ctrl),
		tracer:   NewMockTracingInterface(ctrl),
		monitor:  NewMockMonitorInterface(ctrl),
		logger:   NewMockLoggerInterface(ctrl),
	}
	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any()).AnyTimes().
		Return(context.Background(), trace.SpanFromContext(context.Background()))
	m.logger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
	m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

	return NewService(m.storage, m.guard, m.identity, m.tracer, m.monitor, m.logger), m
}

func TestService_Invite(t *testing.T) {
	callerID := "caller-1"
	schoolID := "school-1"
	email := "new.teacher@example.com"
	userID := "user-9"
	dbErr := errors.New("db error")

	testCases := []struct {
		name            string
		email           string
		role            types.Role
		setupMocks      func(*serviceMocks)
		expectedOutcome InviteOutcome
		expectedErr     error
	}{
		{
			name:  "existing account is added immediately",
			email: email,
			role:  types.RoleTeacher,
			setupMocks: func(m *serviceMocks) {
				m.guard.EXPECT().Authorize(gomock.Any(), schoolID, callerID).Return(types.RoleAdmin, nil)
				m.identity.EXPECT().GetIdentityIDByEmail(gomock.Any(), email).Return(userID, nil)
				m.storage.EXPECT().GetMembershipByUser(gomock.Any(), schoolID, userID).Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().AddMember(gomock.Any(), schoolID, userID, types.RoleTeacher).Return("membership-1", nil)
				m.storage.EXPECT().UpsertInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, inv *types.Invitation) (*types.Invitation, error) {
						if inv.Status != types.InvitationAccepted {
							t.Errorf("expected accepted invitation, got %q", inv.Status)
						}
						return inv, nil
					})
			},
			expectedOutcome: OutcomeAdded,
		},
		{
			name:  "unknown email records a pending invitation",
			email: email,
			role:  types.RoleViewer,
			setupMocks: func(m *serviceMocks) {
				m.guard.EXPECT().Authorize(gomock.Any(), schoolID, callerID).Return(types.RoleAdmin, nil)
				m.identity.EXPECT().GetIdentityIDByEmail(gomock.Any(), email).Return("", nil)
				m.storage.EXPECT().UpsertInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, inv *types.Invitation) (*types.Invitation, error) {
						if inv.Status != types.InvitationPending {
							t.Errorf("expected pending invitation, got %q", inv.Status)
						}
						if inv.InvitedBy != callerID {
							t.Errorf("expected inviter %q, got %q", callerID, inv.InvitedBy)
						}
						return inv, nil
					})
			},
			expectedOutcome: OutcomePending,
		},
		{
			name:  "email is normalized before lookup",
			email: "  New.Teacher@Example.COM ",
			role:  types.RoleTeacher,
			setupMocks: func(m *serviceMocks) {
				m.guard.EXPECT().Authorize(gomock.Any(), schoolID, callerID).Return(types.RoleSuperAdmin, nil)
				m.identity.EXPECT().GetIdentityIDByEmail(gomock.Any(), email).Return("", nil)
				m.storage.EXPECT().UpsertInvitation(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, inv *types.Invitation) (*types.Invitation, error) {
						if inv.Email != email {
							t.Errorf("expected normalized email %q, got %q", email, inv.Email)
						}
						return inv, nil
					})
			},
			expectedOutcome: OutcomePending,
		},
		{
			name:  "caller is not an admin",
			email: email,
			role:  types.RoleTeacher,
			setupMocks: func(m *serviceMocks) {
				m.guard.EXPECT().Authorize(gomock.Any(), schoolID, callerID).Return(types.Role(""), authorization.ErrDenied)
			},
			expectedErr: authorization.ErrDenied,
		},
		{
			name:  "super_admin cannot be granted",
			email: email,
			role:  types.RoleSuperAdmin,
			setupMocks: func(m *serviceMocks) {
				m.guard.EXPECT().Authorize(gomock.Any(), schoolID, callerID).Return(types.RoleAdmin, nil)
			},
			expectedErr: ErrInvalidRequest,
		},
		{
			name:  "unknown role is rejected",
			email: email,
			role:  types.Role("principal"),
			setupMocks: func(m *serviceMocks) {
				m.guard.EXPECT().Authorize(gomock.Any(), schoolID, callerID).Return(types.RoleAdmin, nil)
			},
			expectedErr: ErrInvalidRequest,
		},
		{
			name:  "user already has a role",
			email: email,
			role:  types.RoleTeacher,
			setupMocks: func(m *serviceMocks) {
				m.guard.EXPECT().Authorize(gomock.Any(), schoolID, callerID).Return(types.RoleAdmin, nil)
				m.identity.EXPECT().GetIdentityIDByEmail(gomock.Any(), email).Return(userID, nil)
				m.storage.EXPECT().GetMembershipByUser(gomock.Any(), schoolID, userID).
					Return(&types.Membership{ID: "membership-1", Role: types.RoleViewer}, nil)
			},
			expectedErr: ErrDuplicateMembership,
		},
		{
			name:  "concurrent insert maps duplicate key to conflict",
			email: email,
			role:  types.RoleTeacher,
			setupMocks: func(m *serviceMocks) {
				m.guard.EXPECT().Authorize(gomock.Any(), schoolID, callerID).Return(types.RoleAdmin, nil)
				m.identity.EXPECT().GetIdentityIDByEmail(gomock.Any(), email).Return(userID, nil)
				m.storage.EXPECT().GetMembershipByUser(gomock.Any(), schoolID, userID).Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().AddMember(gomock.Any(), schoolID, userID, types.RoleTeacher).Return("", storage.ErrDuplicateKey)
			},
			expectedErr: ErrDuplicateMembership,
		},
		{
			name:  "identity lookup failure",
			email: email,
			role:  types.RoleTeacher,
			setupMocks: func(m *serviceMocks) {
				m.guard.EXPECT().Authorize(gomock.Any(), schoolID, callerID).Return(types.RoleAdmin, nil)
				m.identity.EXPECT().GetIdentityIDByEmail(gomock.Any(), email).Return("", dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newServiceWithMocks(ctrl)
			tc.setupMocks(m)

			outcome, err := s.Invite(context.Background(), callerID, schoolID, tc.email, tc.role)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if outcome != tc.expectedOutcome {
				t.Errorf("expected outcome %q, got %q", tc.expectedOutcome, outcome)
			}
		})
	}
}

func TestService_UpdateRole(t *testing.T) {
	callerID := "caller-1"
	schoolID := "school-1"
	membershipID := "membership-1"

	testCases := []struct {
		name        string
		role        types.Role
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "success",
			role: types.RoleAdmin,
			setupMocks: func(m *serviceMocks) {
				m.guard.EXPECT().Authorize(gomock.Any(), schoolID, callerID).Return(types.RoleSuperAdmin, nil)
				m.storage.EXPECT().GetMembershipByID(gomock.Any(), schoolID, membershipID).
					Return(&types.Membership{ID: membershipID, SchoolID: schoolID, Role: types.RoleTeacher}, nil)
				m.storage.EXPECT().UpdateMemberRole(gomock.Any(), schoolID, membershipID, types.RoleAdmin).Return(nil)
			},
		},
		{
			name: "denied caller",
			role: types.RoleAdmin,
			setupMocks: func(m *serviceMocks) {
				m.guard.EXPECT().Authorize(gomock.Any(), schoolID, callerID).Return(types.Role(""), authorization.ErrDenied)
			},
			expectedErr: authorization.ErrDenied,
		},
		{
			name: "target is super_admin",
			role: types.RoleViewer,
			setupMocks: func(m *serviceMocks) {
				m.guard.EXPECT().Authorize(gomock.Any(), schoolID, callerID).Return(types.RoleAdmin, nil)
				m.storage.EXPECT().GetMembershipByID(gomock.Any(), schoolID, membershipID).
					Return(&types.Membership{ID: membershipID, SchoolID: schoolID, Role: types.RoleSuperAdmin}, nil)
			},
			expectedErr: ErrProtectedRole,
		},
		{
			name: "membership in another school",
			role: types.RoleViewer,
			setupMocks: func(m *serviceMocks) {
				m.guard.EXPECT().Authorize(gomock.Any(), schoolID, callerID).Return(types.RoleAdmin, nil)
				m.storage.EXPECT().GetMembershipByID(gomock.Any(), schoolID, membershipID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrMembershipNotFound,
		},
		{
			name: "super_admin cannot be granted",
			role: types.RoleSuperAdmin,
			setupMocks: func(m *serviceMocks) {
				m.guard.EXPECT().Authorize(gomock.Any(), schoolID, callerID).Return(types.RoleAdmin, nil)
			},
			expectedErr: ErrInvalidRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newServiceWithMocks(ctrl)
			tc.setupMocks(m)

			err := s.UpdateRole(context.Background(), callerID, schoolID, membershipID, tc.role)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_Remove(t *testing.T) {
	callerID := "caller-1"
	schoolID := "school-1"
	membershipID := "membership-1"

	testCases := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(m *serviceMocks) {
				m.guard.EXPECT().Authorize(gomock.Any(), schoolID, callerID).Return(types.RoleAdmin, nil)
				m.storage.EXPECT().GetMembershipByID(gomock.Any(), schoolID, membershipID).
					Return(&types.Membership{ID: membershipID, SchoolID: schoolID, Role: types.RoleViewer}, nil)
				m.storage.EXPECT().RemoveMember(gomock.Any(), schoolID, membershipID).Return(nil)
			},
		},
		{
			name: "super_admin is protected",
			setupMocks: func(m *serviceMocks) {
				m.guard.EXPECT().Authorize(gomock.Any(), schoolID, callerID).Return(types.RoleAdmin, nil)
				m.storage.EXPECT().GetMembershipByID(gomock.Any(), schoolID, membershipID).
					Return(&types.Membership{ID: membershipID, SchoolID: schoolID, Role: types.RoleSuperAdmin}, nil)
			},
			expectedErr: ErrProtectedRole,
		},
		{
			name: "membership not found",
			setupMocks: func(m *serviceMocks) {
				m.guard.EXPECT().Authorize(gomock.Any(), schoolID, callerID).Return(types.RoleAdmin, nil)
				m.storage.EXPECT().GetMembershipByID(gomock.Any(), schoolID, membershipID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrMembershipNotFound,
		},
		{
			name: "denied caller",
			setupMocks: func(m *serviceMocks) {
				m.guard.EXPECT().Authorize(gomock.Any(), schoolID, callerID).Return(types.Role(""), authorization.ErrDenied)
			},
			expectedErr: authorization.ErrDenied,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newServiceWithMocks(ctrl)
			tc.setupMocks(m)

			err := s.Remove(context.Background(), callerID, schoolID, membershipID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_CancelInvitation(t *testing.T) {
	callerID := "caller-1"
	schoolID := "school-1"
	invitationID := "invitation-1"
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(m *serviceMocks) {
				m.guard.EXPECT().Authorize(gomock.Any(), schoolID, callerID).Return(types.RoleAdmin, nil)
				m.storage.EXPECT().DeletePendingInvitation(gomock.Any(), schoolID, invitationID).Return(true, nil)
			},
		},
		{
			name: "missing invitation is a no-op",
			setupMocks: func(m *serviceMocks) {
				m.guard.EXPECT().Authorize(gomock.Any(), schoolID, callerID).Return(types.RoleAdmin, nil)
				m.storage.EXPECT().DeletePendingInvitation(gomock.Any(), schoolID, invitationID).Return(false, nil)
			},
		},
		{
			name: "denied caller",
			setupMocks: func(m *serviceMocks) {
				m.guard.EXPECT().Authorize(gomock.Any(), schoolID, callerID).Return(types.Role(""), authorization.ErrDenied)
			},
			expectedErr: authorization.ErrDenied,
		},
		{
			name: "storage error",
			setupMocks: func(m *serviceMocks) {
				m.guard.EXPECT().Authorize(gomock.Any(), schoolID, callerID).Return(types.RoleAdmin, nil)
				m.storage.EXPECT().DeletePendingInvitation(gomock.Any(), schoolID, invitationID).Return(false, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newServiceWithMocks(ctrl)
			tc.setupMocks(m)

			err := s.CancelInvitation(context.Background(), callerID, schoolID, invitationID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_ListMembers(t *testing.T) {
	callerID := "caller-1"
	schoolID := "school-1"
	members := []*types.Member{
		{MembershipID: "m-1", UserID: "u-1", Role: types.RoleSuperAdmin},
		{MembershipID: "m-2", UserID: "u-2", Role: types.RoleViewer},
	}

	testCases := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedLen int
		expectedErr error
	}{
		{
			name: "any member may list",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetMembershipByUser(gomock.Any(), schoolID, callerID).
					Return(&types.Membership{ID: "m-2", Role: types.RoleViewer}, nil)
				m.storage.EXPECT().ListMembersBySchoolID(gomock.Any(), schoolID).Return(members, nil)
			},
			expectedLen: 2,
		},
		{
			name: "non-member is denied",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetMembershipByUser(gomock.Any(), schoolID, callerID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: authorization.ErrDenied,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newServiceWithMocks(ctrl)
			tc.setupMocks(m)

			got, err := s.ListMembers(context.Background(), callerID, schoolID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tc.expectedLen {
				t.Errorf("expected %d members, got %d", tc.expectedLen, len(got))
			}
		})
	}
}

func TestService_ListInvitations(t *testing.T) {
	callerID := "caller-1"
	schoolID := "school-1"

	t.Run("admin only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newServiceWithMocks(ctrl)
		m.guard.EXPECT().Authorize(gomock.Any(), schoolID, callerID).Return(types.Role(""), authorization.ErrDenied)

		if _, err := s.ListInvitations(context.Background(), callerID, schoolID); !errors.Is(err, authorization.ErrDenied) {
			t.Fatalf("expected ErrDenied, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newServiceWithMocks(ctrl)
		m.guard.EXPECT().Authorize(gomock.Any(), schoolID, callerID).Return(types.RoleAdmin, nil)
		m.storage.EXPECT().ListPendingInvitationsBySchoolID(gomock.Any(), schoolID).
			Return([]*types.Invitation{{ID: "inv-1", Email: "a@b.com", Role: types.RoleTeacher}}, nil)

		got, err := s.ListInvitations(context.Background(), callerID, schoolID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Errorf("expected 1 invitation, got %d", len(got))
		}
	})
}
