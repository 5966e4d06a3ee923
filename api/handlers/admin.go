package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/festivalops/report-api/config"
	"github.com/festivalops/report-api/models"
)

type adminLoginRequest struct {
	Password string `json:"password"`
}

type adminLoginResponse struct {
	Token string `json:"token"`
}

// Admin represents the admin handler
type Admin struct {
	Config config.Config
}

// AdminLoginHandler checks the shared admin password and returns a JWT good
// for 24 hours. Moderation routes require the token it mints.
func (h Admin) AdminLoginHandler(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.Password == "" {
		config.ErrorStatus("invalid login", http.StatusBadRequest, w, errors.New("password required"))
		return
	}

	if h.Config.AdminPasswordHash == "" || h.Config.JWTSecret == "" {
		config.ErrorStatus("admin login not configured", http.StatusServiceUnavailable, w, errors.New("admin credentials unset"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.Config.AdminPasswordHash), []byte(req.Password)); err != nil {
		config.ErrorStatus("invalid credentials", http.StatusUnauthorized, w, err)
		return
	}

	claims := jwt.MapClaims{
		"sub":   "admin",
		"scope": "admin",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.Config.JWTSecret))
	if err != nil {
		config.ErrorStatus("token generation failed", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(models.APIResponse{Success: true, Data: adminLoginResponse{Token: signed}})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
