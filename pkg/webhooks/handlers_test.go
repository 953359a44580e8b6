// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"
)

func TestRegistrationEndpoint(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "success",
			body: `{"id": "identity-1", "traits": {"email": "user@example.com", "full_name": "New User"}}`,
			setupMocks: func(m *MockServiceInterface) {
				m.EXPECT().HandleRegistration(gomock.Any(), "identity-1", "user@example.com", "New User").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed body",
			body:           `{not json`,
			setupMocks:     func(m *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tc.setupMocks(mockService)

			mux := chi.NewMux()
			NewAPI(mockService).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/webhooks/registration", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Fatalf("expected status %d, got %d", tc.expectedStatus, rr.Code)
			}
		})
	}
}
