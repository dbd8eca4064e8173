package routes

import (
	"waymark_server/controllers"
	"waymark_server/services"
	"waymark_server/socket"

	"github.com/gorilla/mux"
)

// RegisterFriendRoutes sets up routes for friend-related operations under /api/friends
func RegisterFriendRoutes(r *mux.Router, friendService *services.FriendService, notifier *socket.Notifier) {
	controller := controllers.NewFriendController(friendService, notifier)

	friendRouter := r.PathPrefix("/api/friends").Subrouter()
	friendRouter.HandleFunc("/search", controller.HandleSearchUsers).Methods("GET")
	friendRouter.HandleFunc("/request", controller.HandleSendRequest).Methods("POST")
	friendRouter.HandleFunc("/requests/{userId}", controller.HandleGetIncomingRequests).Methods("GET")
	friendRouter.HandleFunc("/respond", controller.HandleRespondToRequest).Methods("POST")
	friendRouter.HandleFunc("/list/{userId}", controller.HandleListFriends).Methods("GET")
}
