package routes

import (
	"otherhalf_server/controllers"
	"otherhalf_server/services"

	"github.com/gorilla/mux"
)

// RegisterMediaRoutes sets up avatar/media routes under /api/media
func RegisterMediaRoutes(r *mux.Router, media *services.MediaService) {
	controller := controllers.NewMediaController(media)

	mediaRouter := r.PathPrefix("/api/media").Subrouter()

	mediaRouter.HandleFunc("/avatar", controller.HandleUploadAvatar).Methods("POST")
	mediaRouter.HandleFunc("/upload-url", controller.HandleGetUploadURL).Methods("GET")
	mediaRouter.HandleFunc("/read-url", controller.HandleGetReadURL).Methods("GET")
}
