package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"otherhalf_server/models"
	"otherhalf_server/services"
	"otherhalf_server/store"

	"github.com/gorilla/mux"
)

// MatchController exposes the match set and the swipe queue.
type MatchController struct {
	Store *store.Store
	Auth  *services.AuthService
}

func NewMatchController(st *store.Store, auth *services.AuthService) *MatchController {
	return &MatchController{Store: st, Auth: auth}
}

// HandleGetMatches returns the confirmed match set.
func (c *MatchController) HandleGetMatches(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c.Store.GetMatches())
}

// HandleGetMatchQueue returns swipe candidates for the logged-in user.
func (c *MatchController) HandleGetMatchQueue(w http.ResponseWriter, r *http.Request) {
	user, err := c.Auth.CurrentUser(r.Context())
	if err != nil {
		if errors.Is(err, services.ErrNoSession) {
			http.Error(w, `{"error": "not logged in"}`, http.StatusUnauthorized)
			return
		}
		log.Printf("Failed to load session: %v", err)
		http.Error(w, `{"error": "failed to load session"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c.Store.GetMatchQueue(*user))
}

// HandleAddMatch confirms a swipe-right on a candidate.
func (c *MatchController) HandleAddMatch(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Candidate   models.MatchProfile `json:"candidate"`
		RequesterID string              `json:"requesterId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.Candidate.ID == "" || request.RequesterID == "" {
		http.Error(w, `{"error": "Missing required fields: candidate.id, requesterId"}`, http.StatusBadRequest)
		return
	}

	if err := c.Store.AddMatch(r.Context(), request.Candidate, request.RequesterID); err != nil {
		log.Printf("Failed to add match %s: %v", request.Candidate.ID, err)
		http.Error(w, `{"error": "Failed to add match"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success", "matchId": request.Candidate.ID})
}

// HandleRemoveMatch removes a match and its chat session. Confirmation is a
// client concern; this endpoint just does the removal.
func (c *MatchController) HandleRemoveMatch(w http.ResponseWriter, r *http.Request) {
	matchID := mux.Vars(r)["matchId"]

	err := c.Store.RemoveMatch(r.Context(), matchID)
	if errors.Is(err, store.ErrMatchNotFound) {
		http.Error(w, `{"error": "Match not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("Failed to remove match %s: %v", matchID, err)
		http.Error(w, `{"error": "Failed to remove match"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}
