package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/wakephrase/server/internal/service"
)

type PhraseHandler struct {
	phraseService *service.PhraseService
}

func NewPhraseHandler(phraseService *service.PhraseService) *PhraseHandler {
	return &PhraseHandler{phraseService: phraseService}
}

func (h *PhraseHandler) Generate(w http.ResponseWriter, r *http.Request) {
	rawUserID := r.URL.Query().Get("user_id")
	action := r.URL.Query().Get("action")

	if rawUserID == "" || action == "" {
		writeError(w, http.StatusBadRequest, "User ID and action are required")
		return
	}

	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	phrase, err := h.phraseService.Generate(r.Context(), userID, action)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAction):
			writeError(w, http.StatusBadRequest, "Invalid action. Must be 'dismiss' or 'snooze'")
		case errors.Is(err, service.ErrProfileNotFound):
			writeError(w, http.StatusBadRequest, "No user profile found")
		default:
			log.Printf("ERROR [PhraseHandler.Generate] %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to generate phrase")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"phrase": phrase})
}
