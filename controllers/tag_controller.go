package controllers

import (
	"encoding/json"
	"net/http"

	"waymark_server/services"

	"github.com/gorilla/mux"
)

// TagController struct
type TagController struct {
	TagService *services.TagService
}

// NewTagController initializes the controller
func NewTagController(service *services.TagService) *TagController {
	return &TagController{TagService: service}
}

// HandleGetAllTags - Every tag, default and user-created
func (c *TagController) HandleGetAllTags(w http.ResponseWriter, r *http.Request) {
	tags, err := c.TagService.GetAllTags(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tags)
}

// HandleGetAllCategories - Unique tag categories, sorted
func (c *TagController) HandleGetAllCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := c.TagService.GetAllCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// HandleGetTagsByCategory - Tags in one grouping category
func (c *TagController) HandleGetTagsByCategory(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]

	tags, err := c.TagService.GetTagsByCategory(r.Context(), category)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tags)
}

// HandleCreateTag - Create a user tag
func (c *TagController) HandleCreateTag(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Name      string `json:"name"`
		Color     string `json:"color"`
		CreatedBy string `json:"createdBy"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	tagID, err := c.TagService.CreateTag(r.Context(), request.Name, request.Color, request.CreatedBy)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"tagId": tagID})
}

// HandleDeleteTag - Delete a user-created tag and its associations
func (c *TagController) HandleDeleteTag(w http.ResponseWriter, r *http.Request) {
	tagID := mux.Vars(r)["tagId"]

	if err := c.TagService.DeleteTag(r.Context(), tagID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// HandleSeedDefaultTags - Idempotent default-tag seeding
func (c *TagController) HandleSeedDefaultTags(w http.ResponseWriter, r *http.Request) {
	result, err := c.TagService.SeedDefaultTags(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// HandleAddTagToPin - Link a tag to a pin
func (c *TagController) HandleAddTagToPin(w http.ResponseWriter, r *http.Request) {
	var request struct {
		PinID string `json:"pinId"`
		TagID string `json:"tagId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := c.TagService.AddTagToPin(r.Context(), request.PinID, request.TagID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// HandleRemoveTagFromPin - Unlink a tag from a pin
func (c *TagController) HandleRemoveTagFromPin(w http.ResponseWriter, r *http.Request) {
	var request struct {
		PinID string `json:"pinId"`
		TagID string `json:"tagId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := c.TagService.RemoveTagFromPin(r.Context(), request.PinID, request.TagID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// HandleGetPinTagsForPin - A pin's tag associations with details
func (c *TagController) HandleGetPinTagsForPin(w http.ResponseWriter, r *http.Request) {
	pinID := mux.Vars(r)["pinId"]

	pinTags, err := c.TagService.GetPinTagsForPin(r.Context(), pinID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pinTags)
}

// HandleGetPinTagsForOwner - Tag associations across a user's pins
func (c *TagController) HandleGetPinTagsForOwner(w http.ResponseWriter, r *http.Request) {
	ownerID := mux.Vars(r)["ownerId"]

	pinTags, err := c.TagService.GetPinTagsForOwner(r.Context(), ownerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pinTags)
}
