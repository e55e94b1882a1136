package routes

import (
	"otherhalf_server/controllers"
	"otherhalf_server/services"

	"github.com/gorilla/mux"
)

// RegisterCallRoutes sets up simulated-call routes under /api/calls
func RegisterCallRoutes(r *mux.Router, signaler services.Signaler) {
	controller := controllers.NewCallController(signaler)

	callRouter := r.PathPrefix("/api/calls").Subrouter()

	callRouter.HandleFunc("", controller.HandleStartCall).Methods("POST")
	callRouter.HandleFunc("/{callId}", controller.HandleCallStatus).Methods("GET")
	callRouter.HandleFunc("/{callId}", controller.HandleEndCall).Methods("DELETE")
}
