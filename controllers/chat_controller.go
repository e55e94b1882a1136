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
)

// ChatController exposes chat sessions and message sending.
type ChatController struct {
	Store *store.Store
}

func NewChatController(st *store.Store) *ChatController {
	return &ChatController{Store: st}
}

// HandleGetSession fetches the chat session for a match id.
func (c *ChatController) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	matchID := r.URL.Query().Get("matchId")
	if matchID == "" {
		http.Error(w, `{"error": "matchId is required"}`, http.StatusBadRequest)
		return
	}

	session, ok := c.Store.GetChatSession(matchID)
	if !ok {
		http.Error(w, `{"error": "Chat session not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(session)
}

// HandleSendMessage appends a message to an existing session.
func (c *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		MatchID  string `json:"matchId"`
		SenderID string `json:"senderId"`
		Text     string `json:"text"`
		IsSystem bool   `json:"isSystem"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.MatchID == "" || request.SenderID == "" || request.Text == "" {
		http.Error(w, `{"error": "Missing required fields: matchId, senderId, or text"}`, http.StatusBadRequest)
		return
	}

	message := models.Message{
		ID:        uuid.NewString(),
		SenderID:  request.SenderID,
		Text:      request.Text,
		Timestamp: time.Now().UnixMilli(),
		IsSystem:  request.IsSystem,
	}

	err := c.Store.AddMessage(r.Context(), request.MatchID, message)
	if errors.Is(err, store.ErrSessionNotFound) {
		http.Error(w, `{"error": "Chat session not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("Failed to send message for match %s: %v", request.MatchID, err)
		http.Error(w, `{"error": "Failed to send message"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(message)
}
