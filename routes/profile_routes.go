package routes

import (
	"otherhalf_server/controllers"
	"otherhalf_server/services"

	"github.com/gorilla/mux"
)

// RegisterProfileRoutes sets up session/profile routes under /api/profiles
func RegisterProfileRoutes(r *mux.Router, auth *services.AuthService) {
	controller := controllers.NewProfileController(auth)

	profileRouter := r.PathPrefix("/api/profiles").Subrouter()

	profileRouter.HandleFunc("/login", controller.HandleLogin).Methods("POST")
	profileRouter.HandleFunc("/me", controller.HandleCurrentUser).Methods("GET")
	profileRouter.HandleFunc("/me", controller.HandleUpdateProfile).Methods("PUT")
	profileRouter.HandleFunc("/logout", controller.HandleLogout).Methods("POST")
}
