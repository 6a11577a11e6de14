package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/wakephrase/server/internal/service"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

type SaveProfileRequest struct {
	UserID string   `json:"user_id"`
	Name   string   `json:"name"`
	Goals  []string `json:"goals"`
	Fears  []string `json:"fears"`
}

func (h *ProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Only the user id is required; name, goals and fears may be partial.
	if req.UserID == "" {
		writeError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	err = h.profileService.Save(r.Context(), service.SaveProfileInput{
		UserID: userID,
		Name:   req.Name,
		Goals:  req.Goals,
		Fears:  req.Fears,
	})
	if err != nil {
		log.Printf("ERROR [ProfileHandler.Save] %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Profile saved successfully!",
	})
}
