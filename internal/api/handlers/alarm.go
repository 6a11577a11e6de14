package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/wakephrase/server/internal/domain"
	"github.com/wakephrase/server/internal/service"
)

type AlarmHandler struct {
	alarmService *service.AlarmService
}

func NewAlarmHandler(alarmService *service.AlarmService) *AlarmHandler {
	return &AlarmHandler{alarmService: alarmService}
}

type SaveAlarmRequest struct {
	UserID   string   `json:"user_id"`
	ID       string   `json:"id"`
	Time     string   `json:"time"`
	Label    string   `json:"label"`
	Days     []string `json:"days"`
	IsActive bool     `json:"isActive"`
	Sound    string   `json:"sound"`
}

type AlarmResponse struct {
	ID       string   `json:"id"`
	Time     string   `json:"time"`
	Label    string   `json:"label"`
	Days     []string `json:"days"`
	IsActive bool     `json:"isActive"`
	Sound    string   `json:"sound"`
}

func NewAlarmResponse(alarm *domain.Alarm) AlarmResponse {
	days := []string{}
	if err := json.Unmarshal(alarm.Days, &days); err != nil {
		days = []string{}
	}
	return AlarmResponse{
		ID:       alarm.ID.String(),
		Time:     alarm.Time,
		Label:    alarm.Label,
		Days:     days,
		IsActive: alarm.IsActive,
		Sound:    alarm.Sound,
	}
}

func NewAlarmResponses(alarms []*domain.Alarm) []AlarmResponse {
	responses := make([]AlarmResponse, 0, len(alarms))
	for _, alarm := range alarms {
		responses = append(responses, NewAlarmResponse(alarm))
	}
	return responses
}

func (h *AlarmHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.URL.Query().Get("user_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	alarms, err := h.alarmService.List(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR [AlarmHandler.List] %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch alarms")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"alarms": NewAlarmResponses(alarms),
	})
}

func (h *AlarmHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveAlarmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.UserID == "" || req.Time == "" {
		writeError(w, http.StatusBadRequest, "User ID and time are required")
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	input := service.SaveAlarmInput{
		UserID:   userID,
		Time:     req.Time,
		Label:    req.Label,
		Days:     req.Days,
		IsActive: req.IsActive,
		Sound:    req.Sound,
	}
	if req.ID != "" {
		alarmID, err := uuid.Parse(req.ID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid alarm ID")
			return
		}
		input.ID = &alarmID
	}

	alarm, err := h.alarmService.Save(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrAlarmNotFound) {
			writeError(w, http.StatusNotFound, "Alarm not found")
			return
		}
		log.Printf("ERROR [AlarmHandler.Save] %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to save alarm")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Alarm saved successfully!",
		"id":      alarm.ID.String(),
	})
}

func (h *AlarmHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.URL.Query().Get("user_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	alarmID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Alarm not found")
		return
	}

	if err := h.alarmService.Delete(r.Context(), alarmID, userID); err != nil {
		if errors.Is(err, service.ErrAlarmNotFound) {
			writeError(w, http.StatusNotFound, "Alarm not found")
			return
		}
		log.Printf("ERROR [AlarmHandler.Delete] %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete alarm")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Alarm deleted successfully!",
	})
}
