package routes

import (
	"waymark_server/controllers"
	"waymark_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserRoutes sets up routes for user-related operations under /api/users
func RegisterUserRoutes(r *mux.Router, userService *services.UserService) {
	controller := controllers.NewUserController(userService)

	userRouter := r.PathPrefix("/api/users").Subrouter()
	userRouter.HandleFunc("", controller.HandleCreateUser).Methods("POST")
	userRouter.HandleFunc("/{userId}", controller.HandleGetUser).Methods("GET")
	userRouter.HandleFunc("/{userId}", controller.HandleUpdateProfile).Methods("PUT")
	userRouter.HandleFunc("/{userId}", controller.HandleDeleteUser).Methods("DELETE")
}
