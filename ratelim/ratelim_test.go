package ratelim

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
)

func fire(rl *RateLimiter, remoteAddr string) int {
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})

	r := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
	r.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	handler(w, r, nil)
	return w.Code
}

func TestLimitCeiling(t *testing.T) {
	rl := newLimiter(1, 5) // refills far slower than the test runs

	for i := 1; i <= 5; i++ {
		if code := fire(rl, "203.0.113.7:40001"); code != http.StatusOK {
			t.Fatalf("request %d under the ceiling returned %d", i, code)
		}
	}

	for i := 0; i < 3; i++ {
		if code := fire(rl, "203.0.113.7:40001"); code != http.StatusTooManyRequests {
			t.Fatalf("request beyond the ceiling returned %d, want 429", code)
		}
	}
}

func TestLimitPerIP(t *testing.T) {
	rl := newLimiter(1, 2)

	// Exhaust one IP.
	fire(rl, "198.51.100.1:1000")
	fire(rl, "198.51.100.1:1001")
	if code := fire(rl, "198.51.100.1:1002"); code != http.StatusTooManyRequests {
		t.Fatalf("exhausted IP returned %d, want 429", code)
	}

	// A different IP still passes.
	if code := fire(rl, "198.51.100.2:1000"); code != http.StatusOK {
		t.Fatalf("fresh IP returned %d, want 200", code)
	}
}

func TestLimitIgnoresPort(t *testing.T) {
	rl := newLimiter(1, 2)

	fire(rl, "198.51.100.9:1000")
	fire(rl, "198.51.100.9:2000")
	if code := fire(rl, "198.51.100.9:3000"); code != http.StatusTooManyRequests {
		t.Fatal("changing the source port reset the bucket")
	}
}

func TestLimitBody(t *testing.T) {
	rl := newLimiter(1, 1)
	fire(rl, "192.0.2.5:1000")

	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusOK)
	})
	r := httptest.NewRequest(http.MethodPost, "/api/bookings", nil)
	r.RemoteAddr = "192.0.2.5:1000"
	w := httptest.NewRecorder()
	handler(w, r, nil)

	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", w.Code)
	}

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("429 body is not JSON: %v", err)
	}
	if body.Success || body.Message == "" {
		t.Fatalf("unexpected 429 body: %+v", body)
	}
}

func TestAuthLimiterStricter(t *testing.T) {
	auth := NewAuthRateLimiter()
	general := NewRateLimiter()

	count := func(rl *RateLimiter, ip string) int {
		n := 0
		for i := 0; i < 100; i++ {
			if fire(rl, fmt.Sprintf("%s:%d", ip, 5000+i)) == http.StatusOK {
				n++
			} else {
				break
			}
		}
		return n
	}

	authAllowed := count(auth, "203.0.113.20")
	generalAllowed := count(general, "203.0.113.21")

	if authAllowed >= generalAllowed {
		t.Fatalf("auth limiter allowed %d, general allowed %d; auth should be stricter", authAllowed, generalAllowed)
	}
}
