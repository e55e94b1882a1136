package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"otherhalf_server/models"
	"otherhalf_server/store"

	"github.com/google/uuid"
)

// NotificationController exposes the notification feed.
type NotificationController struct {
	Store *store.Store
}

func NewNotificationController(st *store.Store) *NotificationController {
	return &NotificationController{Store: st}
}

// HandleGetNotifications returns the feed, most recent first.
func (c *NotificationController) HandleGetNotifications(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c.Store.GetNotifications())
}

// HandleAddNotification prepends a notification to the feed.
func (c *NotificationController) HandleAddNotification(w http.ResponseWriter, r *http.Request) {
	var notification models.Notification
	if err := json.NewDecoder(r.Body).Decode(&notification); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if notification.Title == "" || notification.Message == "" {
		http.Error(w, `{"error": "Missing required fields: title, message"}`, http.StatusBadRequest)
		return
	}
	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}
	if notification.Timestamp == 0 {
		notification.Timestamp = time.Now().UnixMilli()
	}
	if notification.Type == "" {
		notification.Type = models.NotificationTypeSystem
	}

	if err := c.Store.AddNotification(r.Context(), notification); err != nil {
		log.Printf("Failed to add notification: %v", err)
		http.Error(w, `{"error": "Failed to add notification"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(notification)
}

// HandleMarkRead flips every notification to read.
func (c *NotificationController) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	if err := c.Store.MarkNotificationsRead(r.Context()); err != nil {
		log.Printf("Failed to mark notifications read: %v", err)
		http.Error(w, `{"error": "Failed to mark notifications read"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}
