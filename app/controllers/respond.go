package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"harborlight/app/models"
	"harborlight/app/repositories"
)

// sendJSON writes data as a JSON response body.
func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sendError writes the uniform error shape {"error": message}.
func sendError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// sendServiceError maps service-layer failures onto HTTP statuses:
// validation failures become 400 with the enumerated field violations,
// missing records become 404, and anything else becomes a generic 500. The
// internal cause of a 500 is logged, never leaked to the client.
func sendServiceError(w http.ResponseWriter, err error) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error":  verr.Error(),
			"fields": verr.Fields,
		})
		return
	}
	if errors.Is(err, repositories.ErrNotFound) {
		sendError(w, "record not found", http.StatusNotFound)
		return
	}
	log.Printf("internal error: %v", err)
	sendError(w, "internal server error", http.StatusInternalServerError)
}
