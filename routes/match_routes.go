package routes

import (
	"otherhalf_server/controllers"
	"otherhalf_server/services"
	"otherhalf_server/store"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for match operations under /api/matches
func RegisterMatchRoutes(r *mux.Router, st *store.Store, auth *services.AuthService) {
	controller := controllers.NewMatchController(st, auth)

	matchRouter := r.PathPrefix("/api/matches").Subrouter()

	matchRouter.HandleFunc("", controller.HandleGetMatches).Methods("GET")
	matchRouter.HandleFunc("", controller.HandleAddMatch).Methods("POST")
	matchRouter.HandleFunc("/queue", controller.HandleGetMatchQueue).Methods("GET")
	matchRouter.HandleFunc("/{matchId}", controller.HandleRemoveMatch).Methods("DELETE")
}
