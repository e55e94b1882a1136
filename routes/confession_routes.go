package routes

import (
	"otherhalf_server/controllers"
	"otherhalf_server/store"

	"github.com/gorilla/mux"
)

// RegisterConfessionRoutes sets up routes under /api/confessions
func RegisterConfessionRoutes(r *mux.Router, st *store.Store) {
	controller := controllers.NewConfessionController(st)

	confessionRouter := r.PathPrefix("/api/confessions").Subrouter()

	confessionRouter.HandleFunc("", controller.HandleGetConfessions).Methods("GET")
	confessionRouter.HandleFunc("", controller.HandleAddConfession).Methods("POST")
	confessionRouter.HandleFunc("/{confessionId}/like", controller.HandleLikeConfession).Methods("POST")
	confessionRouter.HandleFunc("/{confessionId}/comments", controller.HandleAddComment).Methods("POST")
}
