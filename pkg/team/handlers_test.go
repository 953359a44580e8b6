// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/shuleni/school-records/internal/authorization"
	"github.com/shuleni/school-records/internal/types"
	"github.com/shuleni/school-records/pkg/authentication"
)

const testSchoolID = "7d444840-9dc0-11d1-b245-5ffdce74fad2"

func newHandlerAPI(t *testing.T, ctrl *gomock.Controller) (*API, *MockServiceInterface) {
	mockService := NewMockServiceInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).AnyTimes().
		DoAndReturn(func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
			return ctx, trace.SpanFromContext(ctx)
		})
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

	return NewAPI(mockService, mockTracer, mockMonitor, mockLogger), mockService
}

func doAction(api *API, body string, authenticated bool) *httptest.ResponseRecorder {
	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/team", strings.NewReader(body))
	if authenticated {
		req = req.WithContext(authentication.WithUserID(req.Context(), "caller-1"))
	}
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func TestHandleAction_Invite(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedInBody string
	}{
		{
			name: "existing account added",
			body: `{"action": "invite", "school_id": "` + testSchoolID + `", "email": "user@example.com", "role": "teacher"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().Invite(gomock.Any(), "caller-1", testSchoolID, "user@example.com", types.RoleTeacher).
					Return(OutcomeAdded, nil)
			},
			expectedStatus: http.StatusOK,
			expectedInBody: "User added to school",
		},
		{
			name: "no account yet",
			body: `{"action": "invite", "school_id": "` + testSchoolID + `", "email": "user@example.com", "role": "viewer"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().Invite(gomock.Any(), "caller-1", testSchoolID, "user@example.com", types.RoleViewer).
					Return(OutcomePending, nil)
			},
			expectedStatus: http.StatusOK,
			expectedInBody: "Invitation saved",
		},
		{
			name:           "missing email",
			body:           `{"action": "invite", "school_id": "` + testSchoolID + `", "role": "teacher"}`,
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "super_admin role rejected",
			body:           `{"action": "invite", "school_id": "` + testSchoolID + `", "email": "user@example.com", "role": "super_admin"}`,
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed school id",
			body:           `{"action": "invite", "school_id": "not-a-uuid", "email": "user@example.com", "role": "teacher"}`,
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "denied caller",
			body: `{"action": "invite", "school_id": "` + testSchoolID + `", "email": "user@example.com", "role": "teacher"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().Invite(gomock.Any(), "caller-1", testSchoolID, "user@example.com", types.RoleTeacher).
					Return(InviteOutcome(""), authorization.ErrDenied)
			},
			expectedStatus: http.StatusForbidden,
			expectedInBody: "Only admins can manage team members",
		},
		{
			name: "duplicate membership",
			body: `{"action": "invite", "school_id": "` + testSchoolID + `", "email": "user@example.com", "role": "teacher"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().Invite(gomock.Any(), "caller-1", testSchoolID, "user@example.com", types.RoleTeacher).
					Return(InviteOutcome(""), ErrDuplicateMembership)
			},
			expectedStatus: http.StatusBadRequest,
			expectedInBody: "already has a role",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			api, mockService := newHandlerAPI(t, ctrl)
			tc.setupMocks(mockService)

			rr := doAction(api, tc.body, true)

			if rr.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, rr.Code, rr.Body.String())
			}
			if tc.expectedInBody != "" && !strings.Contains(rr.Body.String(), tc.expectedInBody) {
				t.Errorf("expected body to contain %q, got %s", tc.expectedInBody, rr.Body.String())
			}
		})
	}
}

func TestHandleAction_UpdateRoleAndRemove(t *testing.T) {
	membershipID := "8d444840-9dc0-11d1-b245-5ffdce74fad2"

	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedInBody string
	}{
		{
			name: "update role success",
			body: `{"action": "update_role", "school_id": "` + testSchoolID + `", "user_role_id": "` + membershipID + `", "role": "admin"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().UpdateRole(gomock.Any(), "caller-1", testSchoolID, membershipID, types.RoleAdmin).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedInBody: "Role updated",
		},
		{
			name: "update role on super_admin",
			body: `{"action": "update_role", "school_id": "` + testSchoolID + `", "user_role_id": "` + membershipID + `", "role": "viewer"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().UpdateRole(gomock.Any(), "caller-1", testSchoolID, membershipID, types.RoleViewer).
					Return(ErrProtectedRole)
			},
			expectedStatus: http.StatusBadRequest,
			expectedInBody: "Super admin role cannot be modified",
		},
		{
			name:           "update role requires membership id",
			body:           `{"action": "update_role", "school_id": "` + testSchoolID + `", "role": "viewer"}`,
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "remove success",
			body: `{"action": "remove", "school_id": "` + testSchoolID + `", "user_role_id": "` + membershipID + `"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().Remove(gomock.Any(), "caller-1", testSchoolID, membershipID).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedInBody: "Member removed",
		},
		{
			name: "remove target in another school",
			body: `{"action": "remove", "school_id": "` + testSchoolID + `", "user_role_id": "` + membershipID + `"}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().Remove(gomock.Any(), "caller-1", testSchoolID, membershipID).Return(ErrMembershipNotFound)
			},
			expectedStatus: http.StatusBadRequest,
			expectedInBody: "Membership not found",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			api, mockService := newHandlerAPI(t, ctrl)
			tc.setupMocks(mockService)

			rr := doAction(api, tc.body, true)

			if rr.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tc.expectedStatus, rr.Code, rr.Body.String())
			}
			if tc.expectedInBody != "" && !strings.Contains(rr.Body.String(), tc.expectedInBody) {
				t.Errorf("expected body to contain %q, got %s", tc.expectedInBody, rr.Body.String())
			}
		})
	}
}

func TestHandleAction_CancelInvitation(t *testing.T) {
	invitationID := "9d444840-9dc0-11d1-b245-5ffdce74fad2"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api, mockService := newHandlerAPI(t, ctrl)
	mockService.EXPECT().CancelInvitation(gomock.Any(), "caller-1", testSchoolID, invitationID).Return(nil)

	body := `{"action": "cancel_invitation", "school_id": "` + testSchoolID + `", "invitation_id": "` + invitationID + `"}`
	rr := doAction(api, body, true)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "Invitation cancelled") {
		t.Errorf("unexpected body: %s", rr.Body.String())
	}
}

func TestHandleAction_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api, _ := newHandlerAPI(t, ctrl)

	body := `{"action": "invite", "school_id": "` + testSchoolID + `", "email": "user@example.com", "role": "teacher"}`
	rr := doAction(api, body, false)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rr.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Error != "Unauthorized" {
		t.Errorf("expected error %q, got %q", "Unauthorized", resp.Error)
	}
}

func TestHandleAction_InvalidAction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api, _ := newHandlerAPI(t, ctrl)

	body := `{"action": "promote", "school_id": "` + testSchoolID + `"}`
	rr := doAction(api, body, true)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Invalid action") {
		t.Errorf("unexpected body: %s", rr.Body.String())
	}
}

func TestListMembers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api, mockService := newHandlerAPI(t, ctrl)
	mockService.EXPECT().ListMembers(gomock.Any(), "caller-1", testSchoolID).
		Return([]*types.Member{
			{MembershipID: "m-1", UserID: "u-1", Role: types.RoleAdmin, Email: "a@b.com", FullName: "A B"},
		}, nil)

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/schools/"+testSchoolID+"/members", nil)
	req = req.WithContext(authentication.WithUserID(req.Context(), "caller-1"))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var members []MemberResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &members); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(members) != 1 || members[0].Email != "a@b.com" {
		t.Errorf("unexpected members: %+v", members)
	}
}

func TestListInvitations_Denied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api, mockService := newHandlerAPI(t, ctrl)
	mockService.EXPECT().ListInvitations(gomock.Any(), "caller-1", testSchoolID).
		Return(nil, authorization.ErrDenied)

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/schools/"+testSchoolID+"/invitations", nil)
	req = req.WithContext(authentication.WithUserID(req.Context(), "caller-1"))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d: %s", rr.Code, rr.Body.String())
	}
}
