// Copyright 2026 Shuleni Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/shuleni/school-records/internal/logging"
	"github.com/shuleni/school-records/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_verifier.go -source=./interfaces.go

func newTestMiddleware(verifier TokenVerifierInterface) *Middleware {
	return NewMiddleware(
		verifier,
		tracing.NewTracer(tracing.NewNoopConfig()),
		nil,
		logging.NewNoopLogger(),
	)
}

func TestMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name string

		authorization string
		verifyErr     error

		expectedStatus int
		expectedError  string
		expectedUserID string
	}{
		{
			name:           "missing authorization header",
			authorization:  "",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "missing authorization header",
		},
		{
			name:           "non bearer authorization header",
			authorization:  "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "missing authorization header",
		},
		{
			name:           "token verification fails",
			authorization:  "Bearer not-a-valid-jwt",
			verifyErr:      errors.New("oidc: malformed jwt"),
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "invalid token",
		},
		{
			name:           "valid token",
			authorization:  "Bearer valid-jwt",
			expectedStatus: http.StatusOK,
			expectedUserID: "user-123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockVerifier := NewMockTokenVerifierInterface(ctrl)
			if tt.verifyErr != nil {
				mockVerifier.EXPECT().VerifyToken(gomock.Any(), "not-a-valid-jwt").Return("", tt.verifyErr)
			}
			if tt.expectedUserID != "" {
				mockVerifier.EXPECT().VerifyToken(gomock.Any(), "valid-jwt").Return(tt.expectedUserID, nil)
			}

			var gotUserID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = GetUserID(r.Context())
				fmt.Fprint(w, "success")
			})

			middleware := newTestMiddleware(mockVerifier)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/schools", nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			rec := httptest.NewRecorder()

			middleware.Authenticate()(next).ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}

			if tt.expectedError != "" {
				var body map[string]string
				if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
					t.Fatalf("failed to decode response body: %v", err)
				}
				if body["error"] != tt.expectedError {
					t.Errorf("expected error %q, got %q", tt.expectedError, body["error"])
				}
			}

			if tt.expectedUserID != "" && gotUserID != tt.expectedUserID {
				t.Errorf("expected user ID %q in context, got %q", tt.expectedUserID, gotUserID)
			}
		})
	}
}

func TestMiddleware_GetBearerToken(t *testing.T) {
	tests := []struct {
		name string

		authorization string

		expectedToken string
		expectedFound bool
	}{
		{
			name:          "empty header",
			authorization: "",
			expectedFound: false,
		},
		{
			name:          "bearer token",
			authorization: "Bearer abc.def.ghi",
			expectedToken: "abc.def.ghi",
			expectedFound: true,
		},
		{
			name:          "lowercase scheme",
			authorization: "bearer abc.def.ghi",
			expectedFound: false,
		},
		{
			name:          "basic auth",
			authorization: "Basic dXNlcjpwYXNz",
			expectedFound: false,
		},
	}

	middleware := newTestMiddleware(NewNoopVerifier())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := http.Header{}
			if tt.authorization != "" {
				headers.Set("Authorization", tt.authorization)
			}

			token, found := middleware.getBearerToken(headers)
			if found != tt.expectedFound {
				t.Fatalf("expected found=%v, got %v", tt.expectedFound, found)
			}
			if token != tt.expectedToken {
				t.Errorf("expected token %q, got %q", tt.expectedToken, token)
			}
		})
	}
}
