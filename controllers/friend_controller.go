package controllers

import (
	"encoding/json"
	"net/http"

	"waymark_server/models"
	"waymark_server/services"
	"waymark_server/socket"

	"github.com/gorilla/mux"
)

// FriendController struct
type FriendController struct {
	FriendService *services.FriendService
	Notifier      *socket.Notifier
}

// NewFriendController initializes the controller
func NewFriendController(service *services.FriendService, notifier *socket.Notifier) *FriendController {
	return &FriendController{FriendService: service, Notifier: notifier}
}

// HandleSearchUsers - Case-insensitive substring search over users
func (c *FriendController) HandleSearchUsers(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	currentUserID := r.URL.Query().Get("currentUserId")

	results, err := c.FriendService.SearchUsers(r.Context(), search, currentUserID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, results)
}

// HandleSendRequest - Send a friend request
func (c *FriendController) HandleSendRequest(w http.ResponseWriter, r *http.Request) {
	var request struct {
		SenderID   string `json:"senderId"`
		ReceiverID string `json:"receiverId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	result, err := c.FriendService.SendFriendRequest(r.Context(), request.SenderID, request.ReceiverID)
	if err != nil {
		writeError(w, err)
		return
	}

	if result.Success {
		c.Notifier.NotifyUser(request.ReceiverID, socket.EventFriendRequest, request.SenderID)
	}

	writeJSON(w, http.StatusOK, result)
}

// HandleGetIncomingRequests - Pending requests addressed to a user
func (c *FriendController) HandleGetIncomingRequests(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	incoming, err := c.FriendService.GetIncomingRequests(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, incoming)
}

// HandleRespondToRequest - Accept or reject a pending request
func (c *FriendController) HandleRespondToRequest(w http.ResponseWriter, r *http.Request) {
	var request struct {
		RequestID string `json:"requestId"`
		Action    string `json:"action"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	responded, err := c.FriendService.RespondToRequest(r.Context(), request.RequestID, request.Action)
	if err != nil {
		writeError(w, err)
		return
	}

	if responded.Status == models.RequestStatusAccepted {
		c.Notifier.NotifyUser(responded.SenderID, socket.EventFriendsChange, responded.ReceiverID)
		c.Notifier.NotifyUser(responded.ReceiverID, socket.EventFriendsChange, responded.SenderID)
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// HandleListFriends - A user's friend list
func (c *FriendController) HandleListFriends(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	friends, err := c.FriendService.ListFriends(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, friends)
}
