package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"otherhalf_server/models"
	"otherhalf_server/services"
)

// ProfileController exposes the demo session: login, current user, logout.
type ProfileController struct {
	Auth *services.AuthService
}

func NewProfileController(auth *services.AuthService) *ProfileController {
	return &ProfileController{Auth: auth}
}

// HandleLogin stores the onboarded profile as the current session.
func (c *ProfileController) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := c.Auth.Login(r.Context(), profile); err != nil {
		log.Printf("Login rejected for %s: %v", profile.ID, err)
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// HandleCurrentUser returns the session profile.
func (c *ProfileController) HandleCurrentUser(w http.ResponseWriter, r *http.Request) {
	profile, err := c.Auth.CurrentUser(r.Context())
	if errors.Is(err, services.ErrNoSession) {
		http.Error(w, `{"error": "not logged in"}`, http.StatusUnauthorized)
		return
	}
	if err != nil {
		log.Printf("Failed to load session: %v", err)
		http.Error(w, `{"error": "failed to load session"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// HandleUpdateProfile replaces the session profile after validation.
func (c *ProfileController) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	err := c.Auth.UpdateProfile(r.Context(), profile)
	if errors.Is(err, services.ErrNoSession) {
		http.Error(w, `{"error": "not logged in"}`, http.StatusUnauthorized)
		return
	}
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile)
}

// HandleLogout clears the session and resets the interaction store.
func (c *ProfileController) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := c.Auth.Logout(r.Context()); err != nil {
		log.Printf("Logout failed: %v", err)
		http.Error(w, `{"error": "Failed to log out"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "success"})
}
