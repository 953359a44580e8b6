// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

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

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_webhooks.go -source=./interfaces.go

func newTestService(mockStorage *MockStorageInterface) *Service {
	logger := logging.NewNoopLogger()
	tracer := tracing.NewTracer(tracing.NewNoopConfig())
	return NewService(mockStorage, tracer, nil, logger)
}

func TestService_HandleRegistration(t *testing.T) {
	identityID := "identity-1"
	email := "invited@example.com"
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr bool
	}{
		{
			name: "claims pending invitations",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().UpsertProfile(gomock.Any(), gomock.Any()).Return(nil)
				m.EXPECT().ListPendingInvitationsByEmail(gomock.Any(), email).Return([]*types.Invitation{
					{ID: "inv-1", SchoolID: "school-1", Email: email, Role: types.RoleTeacher},
					{ID: "inv-2", SchoolID: "school-2", Email: email, Role: types.RoleViewer},
				}, nil)
				m.EXPECT().AddMember(gomock.Any(), "school-1", identityID, types.RoleTeacher).Return("m-1", nil)
				m.EXPECT().MarkInvitationAccepted(gomock.Any(), "school-1", email).Return(nil)
				m.EXPECT().AddMember(gomock.Any(), "school-2", identityID, types.RoleViewer).Return("m-2", nil)
				m.EXPECT().MarkInvitationAccepted(gomock.Any(), "school-2", email).Return(nil)
			},
		},
		{
			name: "no pending invitations",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().UpsertProfile(gomock.Any(), gomock.Any()).Return(nil)
				m.EXPECT().ListPendingInvitationsByEmail(gomock.Any(), email).Return([]*types.Invitation{}, nil)
			},
		},
		{
			name: "existing membership settles the invitation anyway",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().UpsertProfile(gomock.Any(), gomock.Any()).Return(nil)
				m.EXPECT().ListPendingInvitationsByEmail(gomock.Any(), email).Return([]*types.Invitation{
					{ID: "inv-1", SchoolID: "school-1", Email: email, Role: types.RoleTeacher},
				}, nil)
				m.EXPECT().AddMember(gomock.Any(), "school-1", identityID, types.RoleTeacher).
					Return("", storage.ErrDuplicateKey)
				m.EXPECT().MarkInvitationAccepted(gomock.Any(), "school-1", email).Return(nil)
			},
		},
		{
			name: "profile failure aborts",
			setupMocks: func(m *MockStorageInterface) {
				m.EXPECT().UpsertProfile(gomock.Any(), gomock.Any()).Return(dbErr)
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockStorage)

			s := newTestService(mockStorage)
			err := s.HandleRegistration(context.Background(), identityID, email, "Invited User")

			if tc.expectedErr && err == nil {
				t.Fatal("expected an error")
			}
			if !tc.expectedErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_HandleRegistration_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newTestService(NewMockStorageInterface(ctrl))

	if err := s.HandleRegistration(context.Background(), "", "someone@example.com", ""); err == nil {
		t.Error("expected an error for empty identity ID")
	}
	if err := s.HandleRegistration(context.Background(), "identity-1", "", ""); err == nil {
		t.Error("expected an error for empty email")
	}
}

func TestService_HandleRegistration_NormalizesEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().UpsertProfile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *types.Profile) error {
			if p.Email != "mixed@example.com" {
				t.Errorf("expected normalized email, got %q", p.Email)
			}
			return nil
		})
	mockStorage.EXPECT().ListPendingInvitationsByEmail(gomock.Any(), "mixed@example.com").
		Return([]*types.Invitation{}, nil)

	s := newTestService(mockStorage)
	if err := s.HandleRegistration(context.Background(), "identity-1", " Mixed@Example.COM ", "Mixed"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
