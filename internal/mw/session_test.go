package mw

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func echoSession() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid, ok := SessionID(r.Context())
		if !ok {
			http.Error(w, "no session", http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(sid))
	})
}

func serve(t *testing.T, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	SessionMiddleware(secret, time.Hour)(echoSession()).ServeHTTP(rr, req)
	return rr
}

func TestSessionMiddleware_NewSession(t *testing.T) {
	rr := serve(t, "")
	require.Equal(t, http.StatusOK, rr.Code)

	sid := rr.Body.String()
	assert.NotEmpty(t, sid)

	header := rr.Header().Get("Authorization")
	require.True(t, strings.HasPrefix(header, "Bearer "))

	got, err := parseToken(header, secret)
	require.NoError(t, err)
	assert.Equal(t, sid, got)
}

func TestSessionMiddleware_KeepsSession(t *testing.T) {
	first := serve(t, "")
	second := serve(t, first.Header().Get("Authorization"))

	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestSessionMiddleware_InvalidTokenStartsOver(t *testing.T) {
	tests := []struct {
		name   string
		header func() string
	}{
		{"garbage", func() string { return "Bearer not-a-jwt" }},
		{"wrong scheme", func() string {
			tok, _ := IssueToken(secret, "abc", time.Hour)
			return "Token " + tok
		}},
		{"wrong secret", func() string {
			tok, _ := IssueToken("other", "abc", time.Hour)
			return "Bearer " + tok
		}},
		{"expired", func() string {
			tok, _ := IssueToken(secret, "abc", -time.Minute)
			return "Bearer " + tok
		}},
		{"missing claim", func() string {
			tok, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": "abc"}).SignedString([]byte(secret))
			return "Bearer " + tok
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(t, tt.header())
			require.Equal(t, http.StatusOK, rr.Code)
			assert.NotEqual(t, "abc", rr.Body.String())
			assert.NotEmpty(t, rr.Body.String())
		})
	}
}

func TestSessionID_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := SessionID(req.Context())
	assert.False(t, ok)
}
