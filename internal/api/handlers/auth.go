package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/wakephrase/server/internal/service"
)

type AuthHandler struct {
	authService    *service.AuthService
	profileService *service.ProfileService
	alarmService   *service.AlarmService
}

func NewAuthHandler(authService *service.AuthService, profileService *service.ProfileService, alarmService *service.AlarmService) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		profileService: profileService,
		alarmService:   alarmService,
	}
}

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type LoginResponse struct {
	Message string               `json:"message"`
	UserID  string               `json:"user_id"`
	Profile *service.ProfileData `json:"profile"`
	Alarms  []AlarmResponse      `json:"alarms"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.authService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			writeError(w, http.StatusBadRequest, "User already exists")
			return
		}
		log.Printf("ERROR [AuthHandler.Register] %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	writeJSON(w, http.StatusOK, RegisterResponse{
		Message: "User registered successfully!",
		UserID:  user.ID.String(),
	})
}

// Login verifies credentials and assembles the combined payload: the user
// id, the current profile (null when none) and all stored alarms.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Printf("ERROR [AuthHandler.Login] %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	profile, err := h.profileService.Latest(r.Context(), user.ID)
	if err != nil && !errors.Is(err, service.ErrProfileNotFound) {
		log.Printf("ERROR [AuthHandler.Login] fetching profile: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	alarms, err := h.alarmService.List(r.Context(), user.ID)
	if err != nil {
		log.Printf("ERROR [AuthHandler.Login] fetching alarms: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Message: "Login successful!",
		UserID:  user.ID.String(),
		Profile: profile,
		Alarms:  NewAlarmResponses(alarms),
	})
}
