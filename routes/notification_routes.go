package routes

import (
	"otherhalf_server/controllers"
	"otherhalf_server/store"

	"github.com/gorilla/mux"
)

// RegisterNotificationRoutes sets up routes under /api/notifications
func RegisterNotificationRoutes(r *mux.Router, st *store.Store) {
	controller := controllers.NewNotificationController(st)

	notificationRouter := r.PathPrefix("/api/notifications").Subrouter()

	notificationRouter.HandleFunc("", controller.HandleGetNotifications).Methods("GET")
	notificationRouter.HandleFunc("", controller.HandleAddNotification).Methods("POST")
	notificationRouter.HandleFunc("/mark-read", controller.HandleMarkRead).Methods("POST")
}
