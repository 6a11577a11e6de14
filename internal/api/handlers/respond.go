package handlers

import (
	"encoding/json"
	"net/http"
)

// writeJSON writes data as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes the standard error envelope. Internal details never
// reach the caller; the message is always a caller-facing string.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
