package routes

import (
	"otherhalf_server/controllers"
	"otherhalf_server/services"

	"github.com/gorilla/mux"
)

// RegisterIcebreakerRoutes sets up routes under /api/icebreaker
func RegisterIcebreakerRoutes(r *mux.Router, svc *services.IcebreakerService) {
	controller := controllers.NewIcebreakerController(svc)

	icebreakerRouter := r.PathPrefix("/api/icebreaker").Subrouter()

	icebreakerRouter.HandleFunc("", controller.HandleGenerate).Methods("POST")
	icebreakerRouter.HandleFunc("/compatibility", controller.HandleCompatibility).Methods("POST")
}
