package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vibeholidays/globals"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

func signToken(t *testing.T, secret []byte, expiry time.Time) string {
	t.Helper()
	claims := Claims{
		Username: "admin",
		UserID:   "u42",
		Role:     "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u42",
			ExpiresAt: jwt.NewNumericDate(expiry),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

func runAuthenticated(t *testing.T, authorization string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	called := false
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = true
		if got := r.Context().Value(globals.UserIDKey); got != "u42" {
			t.Errorf("user id in context = %v, want u42", got)
		}
		w.WriteHeader(http.StatusOK)
	})

	r := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	if authorization != "" {
		r.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	handler(w, r, nil)
	return w, called
}

func TestAuthenticateValidToken(t *testing.T) {
	token := signToken(t, globals.JwtSecret, time.Now().Add(time.Hour))
	w, called := runAuthenticated(t, "Bearer "+token)

	if !called {
		t.Fatal("handler not reached with a valid token")
	}
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestAuthenticateRejections(t *testing.T) {
	badSecret := signToken(t, []byte("some-other-secret"), time.Now().Add(time.Hour))
	expired := signToken(t, globals.JwtSecret, time.Now().Add(-time.Hour))

	cases := []struct {
		name          string
		authorization string
	}{
		{"missing header", ""},
		{"not bearer", "Basic dXNlcjpwYXNz"},
		{"bearer without token", "Bearer"},
		{"malformed token", "Bearer not.a.jwt"},
		{"wrong signature", "Bearer " + badSecret},
		{"expired", "Bearer " + expired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, called := runAuthenticated(t, tc.authorization)

			if called {
				t.Fatal("handler ran despite invalid credentials")
			}
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", w.Code)
			}

			var body struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("non-JSON 401 body: %v", err)
			}
			if body.Success {
				t.Error("401 body has success=true")
			}
			if body.Message == "" {
				t.Error("401 body missing message")
			}
		})
	}
}
