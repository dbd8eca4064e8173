package controllers

import (
	"encoding/json"
	"net/http"

	"waymark_server/services"
	"waymark_server/socket"
)

// DemoController struct
type DemoController struct {
	DemoService *services.DemoService
	Notifier    *socket.Notifier
}

// NewDemoController initializes the controller
func NewDemoController(service *services.DemoService, notifier *socket.Notifier) *DemoController {
	return &DemoController{DemoService: service, Notifier: notifier}
}

// HandleSeedActivity - Seed random pins/shares and evaluate achievements
func (c *DemoController) HandleSeedActivity(w http.ResponseWriter, r *http.Request) {
	var request struct {
		OwnerID     string `json:"ownerId"`
		PinsToAdd   int    `json:"pinsToAdd"`
		SharesToAdd int    `json:"sharesToAdd"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	summary, err := c.DemoService.SeedActivity(r.Context(), request.OwnerID, request.PinsToAdd, request.SharesToAdd)
	if err != nil {
		writeError(w, err)
		return
	}

	if len(summary.NewlyEarned) > 0 {
		c.Notifier.NotifyUser(request.OwnerID, socket.EventBadgeEarned, summary.NewlyEarned)
	}

	writeJSON(w, http.StatusOK, summary)
}
