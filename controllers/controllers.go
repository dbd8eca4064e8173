package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"waymark_server/services"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps service errors to HTTP statuses with an {"error": msg} body.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var validation *services.ValidationError
	switch {
	case errors.As(err, &validation),
		errors.Is(err, services.ErrSelfRequest),
		errors.Is(err, services.ErrDefaultTag):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrNotAuthorized):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrPinNotFound),
		errors.Is(err, services.ErrTagNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrRequestNotFound),
		errors.Is(err, services.ErrTagNotOnPin):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrTagAlreadyOnPin),
		errors.Is(err, services.ErrEmailInUse),
		errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrRequestNotPending):
		status = http.StatusConflict
	}

	writeJSON(w, status, map[string]string{"error": err.Error()})
}
