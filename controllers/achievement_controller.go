package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"waymark_server/services"
	"waymark_server/socket"

	"github.com/gorilla/mux"
)

// AchievementController struct
type AchievementController struct {
	AchievementService *services.AchievementService
	Notifier           *socket.Notifier
}

// NewAchievementController initializes the controller
func NewAchievementController(service *services.AchievementService, notifier *socket.Notifier) *AchievementController {
	return &AchievementController{AchievementService: service, Notifier: notifier}
}

// HandleListDefinitions - Return the static achievement catalog
func (c *AchievementController) HandleListDefinitions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.AchievementService.ListDefinitions())
}

// HandleGetOverview - Stats, earned badges, and per-achievement progress
func (c *AchievementController) HandleGetOverview(w http.ResponseWriter, r *http.Request) {
	ownerID := mux.Vars(r)["ownerId"]

	overview, err := c.AchievementService.GetOverview(r.Context(), ownerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, overview)
}

// HandleEvaluateAndAward - Award any newly completed achievements
func (c *AchievementController) HandleEvaluateAndAward(w http.ResponseWriter, r *http.Request) {
	var request struct {
		OwnerID string `json:"ownerId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	newlyEarned, err := c.AchievementService.EvaluateAndAward(r.Context(), request.OwnerID)
	if err != nil {
		writeError(w, err)
		return
	}

	if len(newlyEarned) > 0 {
		log.Printf("🏅 %s earned: %v", request.OwnerID, newlyEarned)
		c.Notifier.NotifyUser(request.OwnerID, socket.EventBadgeEarned, newlyEarned)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"newlyEarned": newlyEarned})
}

// HandleResetBadges - Demo utility: clear an owner's badges
func (c *AchievementController) HandleResetBadges(w http.ResponseWriter, r *http.Request) {
	var request struct {
		OwnerID string `json:"ownerId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	removed, err := c.AchievementService.ResetBadges(r.Context(), request.OwnerID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "removed": removed})
}
