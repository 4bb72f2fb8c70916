package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"forkful/auth"
	"forkful/models"
	"forkful/utils"

	"github.com/julienschmidt/httprouter"
)

func echoUserHandle(t *testing.T, gotUser *string) httprouter.Handle {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		*gotUser = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}
}

func TestAuthenticate(t *testing.T) {
	t.Setenv("JWT_SECRET", "middleware-test")
	token, err := auth.CreateToken(models.User{UserID: "u1", Username: "alice"})
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		query      string
		wantStatus int
		wantUser   string
	}{
		{"bearer header", "Bearer " + token, "", http.StatusOK, "u1"},
		{"token header", "Token " + token, "", http.StatusOK, "u1"},
		{"query token", "", token, http.StatusOK, "u1"},
		{"missing", "", "", http.StatusUnauthorized, ""},
		{"garbage token", "Bearer not.a.token", "", http.StatusUnauthorized, ""},
		{"bare header without scheme", token, "", http.StatusUnauthorized, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gotUser string
			handle := Authenticate(echoUserHandle(t, &gotUser))

			url := "/api/users/me/"
			if tc.query != "" {
				url += "?token=" + tc.query
			}
			r := httptest.NewRequest(http.MethodGet, url, nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			handle(w, r, nil)

			if w.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tc.wantStatus)
			}
			if gotUser != tc.wantUser {
				t.Errorf("user in context = %q, want %q", gotUser, tc.wantUser)
			}
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "middleware-test")
	token, err := auth.CreateToken(models.User{UserID: "u2", Username: "bob"})
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	tests := []struct {
		name     string
		header   string
		wantUser string
	}{
		{"with token", "Bearer " + token, "u2"},
		{"anonymous", "", ""},
		{"invalid token passes through", "Bearer bogus", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gotUser string
			handle := OptionalAuth(echoUserHandle(t, &gotUser))

			r := httptest.NewRequest(http.MethodGet, "/api/recipes/", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			handle(w, r, nil)

			if w.Code != http.StatusOK {
				t.Errorf("status = %d, want 200", w.Code)
			}
			if gotUser != tc.wantUser {
				t.Errorf("user in context = %q, want %q", gotUser, tc.wantUser)
			}
		})
	}
}
