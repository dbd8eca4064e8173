package controllers

import (
	"encoding/json"
	"net/http"

	"waymark_server/services"

	"github.com/gorilla/mux"
)

// PinController struct
type PinController struct {
	PinService *services.PinService
}

// NewPinController initializes the controller
func NewPinController(service *services.PinService) *PinController {
	return &PinController{PinService: service}
}

// HandleCreatePin - Drop a new pin
func (c *PinController) HandleCreatePin(w http.ResponseWriter, r *http.Request) {
	var request struct {
		OwnerID     string  `json:"ownerId"`
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Lat         float64 `json:"lat"`
		Lng         float64 `json:"lng"`
		Category    string  `json:"category"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	pinID, err := c.PinService.CreatePin(r.Context(), request.OwnerID, request.Title, request.Description, request.Lat, request.Lng, request.Category)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"pinId": pinID})
}

// HandleGetPinsByOwner - All pins owned by a user
func (c *PinController) HandleGetPinsByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID := mux.Vars(r)["ownerId"]

	pins, err := c.PinService.GetPinsByOwner(r.Context(), ownerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pins)
}

// HandleGetPin - Fetch one pin
func (c *PinController) HandleGetPin(w http.ResponseWriter, r *http.Request) {
	pinID := mux.Vars(r)["pinId"]

	pin, err := c.PinService.GetPinByID(r.Context(), pinID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pin)
}

// HandleUpdateCaption - Owner edits a pin's caption
func (c *PinController) HandleUpdateCaption(w http.ResponseWriter, r *http.Request) {
	var request struct {
		OwnerID     string `json:"ownerId"`
		PinID       string `json:"pinId"`
		Description string `json:"description"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := c.PinService.UpdateCaption(r.Context(), request.OwnerID, request.PinID, request.Description); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// HandleDeletePin - Owner deletes a pin
func (c *PinController) HandleDeletePin(w http.ResponseWriter, r *http.Request) {
	var request struct {
		OwnerID string `json:"ownerId"`
		PinID   string `json:"pinId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := c.PinService.DeletePin(r.Context(), request.OwnerID, request.PinID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// HandleSharePin - Share a pin with another user
func (c *PinController) HandleSharePin(w http.ResponseWriter, r *http.Request) {
	var request struct {
		FromOwnerID string `json:"fromOwnerId"`
		ToOwnerID   string `json:"toOwnerId"`
		PinID       string `json:"pinId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	shareID, err := c.PinService.SharePin(r.Context(), request.FromOwnerID, request.ToOwnerID, request.PinID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"shareId": shareID})
}
