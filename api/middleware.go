package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

var jwtSecret []byte

// SetJWTSecret stores the secret used to verify admin tokens. Call once
// during app initialization, before the router starts serving.
func SetJWTSecret(secret string) {
	jwtSecret = []byte(secret)
}

// AdminOnly gates a route behind a Bearer token minted by the admin login
// endpoint. The token must be a valid HS256 JWT carrying scope "admin".
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		raw := r.Header.Get("Authorization")
		if !strings.HasPrefix(raw, "Bearer ") {
			unauthorized(w, r)
			return
		}
		raw = strings.TrimPrefix(raw, "Bearer ")

		token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return jwtSecret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			unauthorized(w, r)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["scope"] != "admin" {
			unauthorized(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter, r *http.Request) {
	zap.S().Errorw("unauthorized",
		"url", r.URL)
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"success": false, "error": "unauthorized"}`))
}
