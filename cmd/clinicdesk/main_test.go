package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/clinicdesk/clinicdesk/libs/auth"
)

func adminToken(t *testing.T, secret, role string, exp int64) string {
	t.Helper()
	token, err := auth.SignHS256(auth.Claims{
		Sub:      "user-1",
		ClinicID: "clinic-1",
		Role:     role,
		Exp:      exp,
		Iat:      time.Now().Unix(),
	}, secret)
	if err != nil {
		t.Fatalf("SignHS256 failed: %v", err)
	}
	return token
}

func TestRequireAdmin(t *testing.T) {
	const secret = "test-secret"
	handler := requireAdmin(secret)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	futureExp := time.Now().Add(time.Hour).Unix()

	cases := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"no token", "", http.StatusUnauthorized},
		{"malformed header", "Token abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + adminToken(t, "other-secret", "admin", futureExp), http.StatusUnauthorized},
		{"expired token", "Bearer " + adminToken(t, secret, "admin", time.Now().Add(-time.Hour).Unix()), http.StatusUnauthorized},
		{"non-admin role", "Bearer " + adminToken(t, secret, "receptionist", futureExp), http.StatusForbidden},
		{"admin", "Bearer " + adminToken(t, secret, "admin", futureExp), http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/schedule", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}
		})
	}
}

func TestSplitCSV(t *testing.T) {
	got := splitCSV(" https://a.example , ,https://b.example")
	if len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Fatalf("unexpected result: %v", got)
	}
	if out := splitCSV(""); out != nil {
		t.Fatalf("expected nil for empty input, got %v", out)
	}
}
