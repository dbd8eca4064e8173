package controllers

import (
	"encoding/json"
	"net/http"

	"waymark_server/services"

	"github.com/gorilla/mux"
)

// UserController struct
type UserController struct {
	UserService *services.UserService
}

// NewUserController initializes the controller
func NewUserController(service *services.UserService) *UserController {
	return &UserController{UserService: service}
}

// HandleCreateUser - Register a new user
func (c *UserController) HandleCreateUser(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email     string `json:"email"`
		Username  string `json:"username"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	user, err := c.UserService.CreateUser(r.Context(), request.Email, request.Username, request.FirstName, request.LastName)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// HandleGetUser - Fetch one user
func (c *UserController) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	user, err := c.UserService.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// HandleUpdateProfile - Fill in profile fields
func (c *UserController) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var update services.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	user, err := c.UserService.UpdateProfile(r.Context(), userID, update)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// HandleDeleteUser - Remove a user
func (c *UserController) HandleDeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	if err := c.UserService.DeleteUser(r.Context(), userID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
