package routes

import (
	"waymark_server/controllers"
	"waymark_server/services"

	"github.com/gorilla/mux"
)

// RegisterPinRoutes sets up routes for pin-related operations under /api/pins
func RegisterPinRoutes(r *mux.Router, pinService *services.PinService) {
	controller := controllers.NewPinController(pinService)

	pinRouter := r.PathPrefix("/api/pins").Subrouter()
	pinRouter.HandleFunc("", controller.HandleCreatePin).Methods("POST")
	pinRouter.HandleFunc("", controller.HandleDeletePin).Methods("DELETE")
	pinRouter.HandleFunc("/caption", controller.HandleUpdateCaption).Methods("PATCH")
	pinRouter.HandleFunc("/share", controller.HandleSharePin).Methods("POST")
	pinRouter.HandleFunc("/owner/{ownerId}", controller.HandleGetPinsByOwner).Methods("GET")
	pinRouter.HandleFunc("/{pinId}", controller.HandleGetPin).Methods("GET")
}
