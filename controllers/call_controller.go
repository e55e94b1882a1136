package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"otherhalf_server/services"

	"github.com/gorilla/mux"
)

// CallController drives the simulated call lifecycle through the Signaler
// interface.
type CallController struct {
	Signaler services.Signaler
}

func NewCallController(signaler services.Signaler) *CallController {
	return &CallController{Signaler: signaler}
}

// HandleStartCall starts a call for a match.
func (c *CallController) HandleStartCall(w http.ResponseWriter, r *http.Request) {
	var request struct {
		MatchID  string `json:"matchId"`
		CallerID string `json:"callerId"`
		Type     string `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.MatchID == "" || request.CallerID == "" {
		http.Error(w, `{"error": "Missing required fields: matchId, callerId"}`, http.StatusBadRequest)
		return
	}

	call, err := c.Signaler.Start(r.Context(), request.MatchID, request.CallerID, request.Type)
	if err != nil {
		log.Printf("Failed to start call for match %s: %v", request.MatchID, err)
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(call)
}

// HandleCallStatus reports the current status of a call.
func (c *CallController) HandleCallStatus(w http.ResponseWriter, r *http.Request) {
	callID := mux.Vars(r)["callId"]

	call, err := c.Signaler.Status(callID)
	if errors.Is(err, services.ErrCallNotFound) {
		http.Error(w, `{"error": "Call not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, `{"error": "Failed to fetch call"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(call)
}

// HandleEndCall ends a call. Stopping acquired media tracks is a client
// concern.
func (c *CallController) HandleEndCall(w http.ResponseWriter, r *http.Request) {
	callID := mux.Vars(r)["callId"]

	err := c.Signaler.End(callID)
	if errors.Is(err, services.ErrCallNotFound) {
		http.Error(w, `{"error": "Call not found"}`, http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, `{"error": "Failed to end call"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}
