package routes

import (
	"waymark_server/controllers"
	"waymark_server/services"

	"github.com/gorilla/mux"
)

// RegisterTagRoutes sets up routes for tag-related operations under /api/tags
func RegisterTagRoutes(r *mux.Router, tagService *services.TagService) {
	controller := controllers.NewTagController(tagService)

	tagRouter := r.PathPrefix("/api/tags").Subrouter()
	tagRouter.HandleFunc("", controller.HandleGetAllTags).Methods("GET")
	tagRouter.HandleFunc("", controller.HandleCreateTag).Methods("POST")
	tagRouter.HandleFunc("/categories", controller.HandleGetAllCategories).Methods("GET")
	tagRouter.HandleFunc("/category/{category}", controller.HandleGetTagsByCategory).Methods("GET")
	tagRouter.HandleFunc("/seed", controller.HandleSeedDefaultTags).Methods("POST")
	tagRouter.HandleFunc("/pin", controller.HandleAddTagToPin).Methods("POST")
	tagRouter.HandleFunc("/pin", controller.HandleRemoveTagFromPin).Methods("DELETE")
	tagRouter.HandleFunc("/pin/{pinId}", controller.HandleGetPinTagsForPin).Methods("GET")
	tagRouter.HandleFunc("/owner/{ownerId}", controller.HandleGetPinTagsForOwner).Methods("GET")
	tagRouter.HandleFunc("/{tagId}", controller.HandleDeleteTag).Methods("DELETE")
}
