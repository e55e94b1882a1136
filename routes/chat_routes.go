package routes

import (
	"otherhalf_server/controllers"
	"otherhalf_server/store"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up routes for chat operations under /api/chat
func RegisterChatRoutes(r *mux.Router, st *store.Store) {
	controller := controllers.NewChatController(st)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()

	chatRouter.HandleFunc("/session", controller.HandleGetSession).Methods("GET")
	chatRouter.HandleFunc("/message", controller.HandleSendMessage).Methods("POST")
}
