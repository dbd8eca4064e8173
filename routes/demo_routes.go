package routes

import (
	"waymark_server/controllers"
	"waymark_server/services"
	"waymark_server/socket"

	"github.com/gorilla/mux"
)

// RegisterDemoRoutes sets up routes for demo/testing utilities under /api/demo
func RegisterDemoRoutes(r *mux.Router, demoService *services.DemoService, notifier *socket.Notifier) {
	controller := controllers.NewDemoController(demoService, notifier)

	demoRouter := r.PathPrefix("/api/demo").Subrouter()
	demoRouter.HandleFunc("/seed", controller.HandleSeedActivity).Methods("POST")
}
