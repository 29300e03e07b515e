package mw

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const SessionCtxKey contextKey = "session_id"

const sessionClaim = "session_id"

// SessionMiddleware identifies anonymous visitors. A valid bearer token keeps
// its session; a missing or invalid one starts a new session. The current
// token is always echoed in the Authorization response header.
func SessionMiddleware(secret string, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sid, err := parseToken(r.Header.Get("Authorization"), secret)
			if err != nil {
				sid = uuid.NewString()
			}

			token, err := IssueToken(secret, sid, ttl)
			if err != nil {
				slog.Error("token generation failed", "error", err)
				http.Error(w, "token generation failed", http.StatusInternalServerError)
				return
			}
			w.Header().Set("Authorization", "Bearer "+token)

			ctx := context.WithValue(r.Context(), SessionCtxKey, sid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func SessionID(ctx context.Context) (string, bool) {
	sid, ok := ctx.Value(SessionCtxKey).(string)
	return sid, ok && sid != ""
}

func IssueToken(secret, sid string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		sessionClaim: sid,
		"exp":        jwt.NewNumericDate(time.Now().Add(ttl)),
	})
	return token.SignedString([]byte(secret))
}

func parseToken(header, secret string) (string, error) {
	if header == "" {
		return "", errors.New("no token")
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errors.New("invalid token format")
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}

	sid, ok := claims[sessionClaim].(string)
	if !ok || sid == "" {
		return "", errors.New("session_id not found in token")
	}
	return sid, nil
}
