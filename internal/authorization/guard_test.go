// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/shuleni/school-records/internal/logging"
	"github.com/shuleni/school-records/internal/storage"
	"github.com/shuleni/school-records/internal/tracing"
	"github.com/shuleni/school-records/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_authorization.go -source=./interfaces.go

func TestGuard_Authorize(t *testing.T) {
	schoolID := "school-1"
	userID := "user-1"
	dbErr := errors.New("db error")

	testCases := []struct {
		name         string
		setupMocks   func(*MockMembershipReaderInterface)
		expectedRole types.Role
		expectedErr  error
	}{
		{
			name: "super_admin may manage",
			setupMocks: func(m *MockMembershipReaderInterface) {
				m.EXPECT().GetMembershipByUser(gomock.Any(), schoolID, userID).
					Return(&types.Membership{Role: types.RoleSuperAdmin}, nil)
			},
			expectedRole: types.RoleSuperAdmin,
		},
		{
			name: "admin may manage",
			setupMocks: func(m *MockMembershipReaderInterface) {
				m.EXPECT().GetMembershipByUser(gomock.Any(), schoolID, userID).
					Return(&types.Membership{Role: types.RoleAdmin}, nil)
			},
			expectedRole: types.RoleAdmin,
		},
		{
			name: "teacher is denied",
			setupMocks: func(m *MockMembershipReaderInterface) {
				m.EXPECT().GetMembershipByUser(gomock.Any(), schoolID, userID).
					Return(&types.Membership{Role: types.RoleTeacher}, nil)
			},
			expectedErr: ErrDenied,
		},
		{
			name: "viewer is denied",
			setupMocks: func(m *MockMembershipReaderInterface) {
				m.EXPECT().GetMembershipByUser(gomock.Any(), schoolID, userID).
					Return(&types.Membership{Role: types.RoleViewer}, nil)
			},
			expectedErr: ErrDenied,
		},
		{
			name: "no membership is denied, not an error",
			setupMocks: func(m *MockMembershipReaderInterface) {
				m.EXPECT().GetMembershipByUser(gomock.Any(), schoolID, userID).
					Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrDenied,
		},
		{
			name: "storage failure propagates",
			setupMocks: func(m *MockMembershipReaderInterface) {
				m.EXPECT().GetMembershipByUser(gomock.Any(), schoolID, userID).
					Return(nil, dbErr)
			},
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockMemberships := NewMockMembershipReaderInterface(ctrl)
			tc.setupMocks(mockMemberships)

			logger := logging.NewNoopLogger()
			tracer := tracing.NewTracer(tracing.NewNoopConfig())
			g := NewGuard(mockMemberships, tracer, nil, logger)

			role, err := g.Authorize(context.Background(), schoolID, userID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if role != tc.expectedRole {
				t.Errorf("expected role %q, got %q", tc.expectedRole, role)
			}
		})
	}
}
