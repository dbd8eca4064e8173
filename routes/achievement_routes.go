package routes

import (
	"waymark_server/controllers"
	"waymark_server/services"
	"waymark_server/socket"

	"github.com/gorilla/mux"
)

// RegisterAchievementRoutes sets up routes for achievement-related operations under /api/achievements
func RegisterAchievementRoutes(r *mux.Router, achievementService *services.AchievementService, notifier *socket.Notifier) {
	controller := controllers.NewAchievementController(achievementService, notifier)

	achievementRouter := r.PathPrefix("/api/achievements").Subrouter()
	achievementRouter.HandleFunc("/definitions", controller.HandleListDefinitions).Methods("GET")
	achievementRouter.HandleFunc("/overview/{ownerId}", controller.HandleGetOverview).Methods("GET")
	achievementRouter.HandleFunc("/evaluate", controller.HandleEvaluateAndAward).Methods("POST")
	achievementRouter.HandleFunc("/reset", controller.HandleResetBadges).Methods("POST")
}
