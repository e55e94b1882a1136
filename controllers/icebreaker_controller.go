package controllers

import (
	"encoding/json"
	"net/http"

	"otherhalf_server/models"
	"otherhalf_server/services"
)

// IcebreakerController serves suggested opening messages. Responses always
// succeed; generation failures degrade to the static fallbacks inside the
// service.
type IcebreakerController struct {
	Icebreaker *services.IcebreakerService
}

func NewIcebreakerController(svc *services.IcebreakerService) *IcebreakerController {
	return &IcebreakerController{Icebreaker: svc}
}

type icebreakerRequest struct {
	Interests []string            `json:"interests"`
	Profile   models.MatchProfile `json:"profile"`
}

// HandleGenerate returns a suggested ice breaker for a matched profile.
func (c *IcebreakerController) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var request icebreakerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	message := c.Icebreaker.GenerateIceBreaker(r.Context(), request.Interests, request.Profile)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// HandleCompatibility returns a one-sentence compatibility summary.
func (c *IcebreakerController) HandleCompatibility(w http.ResponseWriter, r *http.Request) {
	var request icebreakerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	summary := c.Icebreaker.CheckCompatibility(r.Context(), request.Interests, request.Profile)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"summary": summary})
}
