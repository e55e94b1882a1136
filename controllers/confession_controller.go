package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"otherhalf_server/models"
	"otherhalf_server/store"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// ConfessionController exposes the university-scoped confession board.
type ConfessionController struct {
	Store *store.Store
}

func NewConfessionController(st *store.Store) *ConfessionController {
	return &ConfessionController{Store: st}
}

// HandleGetConfessions lists one university's confessions, newest first.
func (c *ConfessionController) HandleGetConfessions(w http.ResponseWriter, r *http.Request) {
	university := r.URL.Query().Get("university")
	if university == "" {
		http.Error(w, `{"error": "university is required"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c.Store.GetConfessions(university))
}

// HandleAddConfession posts a new confession.
func (c *ConfessionController) HandleAddConfession(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID     string `json:"userId"`
		Text       string `json:"text"`
		ImageURL   string `json:"imageUrl"`
		University string `json:"university"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.UserID == "" || request.Text == "" || request.University == "" {
		http.Error(w, `{"error": "Missing required fields: userId, text, university"}`, http.StatusBadRequest)
		return
	}

	confession := models.Confession{
		ID:         uuid.NewString(),
		UserID:     request.UserID,
		Text:       request.Text,
		ImageURL:   request.ImageURL,
		Timestamp:  time.Now().UnixMilli(),
		Likes:      0,
		Comments:   []models.Comment{},
		University: request.University,
	}

	if err := c.Store.AddConfession(r.Context(), confession); err != nil {
		log.Printf("Failed to add confession: %v", err)
		http.Error(w, `{"error": "Failed to add confession"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(confession)
}

// HandleLikeConfession increments a confession's like counter.
func (c *ConfessionController) HandleLikeConfession(w http.ResponseWriter, r *http.Request) {
	confessionID := mux.Vars(r)["confessionId"]

	err := c.Store.LikeConfession(r.Context(), confessionID)
	if errors.Is(err, store.ErrConfessionNotFound) {
		http.Error(w, `{"error": "Confession not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("Failed to like confession %s: %v", confessionID, err)
		http.Error(w, `{"error": "Failed to like confession"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}

// HandleAddComment appends a comment to a confession.
func (c *ConfessionController) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	confessionID := mux.Vars(r)["confessionId"]

	var request struct {
		UserID string `json:"userId"`
		Text   string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.UserID == "" || request.Text == "" {
		http.Error(w, `{"error": "Missing required fields: userId, text"}`, http.StatusBadRequest)
		return
	}

	comment, err := c.Store.AddComment(r.Context(), confessionID, request.Text, request.UserID)
	if errors.Is(err, store.ErrConfessionNotFound) {
		http.Error(w, `{"error": "Confession not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("Failed to comment on confession %s: %v", confessionID, err)
		http.Error(w, `{"error": "Failed to add comment"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(comment)
}
