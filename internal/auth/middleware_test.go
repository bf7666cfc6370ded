// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestMiddleware_RequireBasic(t *testing.T) {
	a := NewAuthenticator(testSnapshot(t), Config{FailureBurst: 1, FailureInterval: time.Hour}, zerolog.Nop())
	mw := NewMiddleware(a, nil)

	var gotID int
	handler := mw.RequireBasic(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			t.Error("user missing from context")
		}
		gotID = user.ID
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name       string
		user, pass string
		setAuth    bool
		wantStatus int
		wantHeader string
	}{
		{"no credentials", "", "", false, http.StatusUnauthorized, "WWW-Authenticate"},
		{"valid", "alice", "plainsecret", true, http.StatusNoContent, ""},
		{"wrong password", "bob", "bad", true, http.StatusUnauthorized, "WWW-Authenticate"},
		{"throttled", "bob", "hunter22", true, http.StatusTooManyRequests, "Retry-After"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.setAuth {
				req.SetBasicAuth(tt.user, tt.pass)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantHeader != "" && rec.Header().Get(tt.wantHeader) == "" {
				t.Errorf("missing %s header", tt.wantHeader)
			}
		})
	}
	if gotID != 1 {
		t.Errorf("handler saw user id %d, want 1", gotID)
	}
}

func TestUserFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := UserFromContext(req.Context()); ok {
		t.Error("empty context should not carry a user")
	}
}
