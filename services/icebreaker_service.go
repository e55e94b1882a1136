package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"otherhalf_server/models"
)

// Fallback copy used whenever generation is unavailable or fails. The
// feature is best-effort and never required for correctness.
const (
	FallbackIceBreaker       = "Hey! Looks like we have some common interests."
	FallbackIceBreakerError  = "Hey! What's your favorite thing about your major?"
	FallbackCompatibility    = "Compatibility analysis unavailable."
	FallbackCompatibilityErr = "You both seem to have unique tastes!"
)

// TextGenerator produces a short completion for a prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GeminiClient calls the Gemini generateContent REST endpoint.
type GeminiClient struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{
		APIKey:     apiKey,
		Model:      "gemini-2.5-flash",
		BaseURL:    "https://generativelanguage.googleapis.com",
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.BaseURL, g.Model, g.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generation request returned status %d", resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("empty generation response")
	}
	return strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text), nil
}

// IcebreakerService suggests opening messages for new matches. A nil
// Generator (no API key configured) degrades to the static fallbacks.
type IcebreakerService struct {
	Generator TextGenerator
}

// GenerateIceBreaker returns a suggested opening message for the matched
// profile. Any failure yields a fixed fallback rather than an error.
func (s *IcebreakerService) GenerateIceBreaker(ctx context.Context, myInterests []string, theirProfile models.MatchProfile) string {
	if s.Generator == nil {
		return FallbackIceBreaker
	}
	prompt := fmt.Sprintf(
		"I am an anonymous student (Interests: %s).\n"+
			"I just matched with another student (ID: %s, Branch: %s, Interests: %s).\n\n"+
			"Generate a short, fun, and flirty (but safe) ice breaker message I could send to start the conversation.\n"+
			"Keep it under 30 words. No hashtags.",
		strings.Join(myInterests, ", "),
		theirProfile.AnonymousID, theirProfile.Branch, strings.Join(theirProfile.Interests, ", "),
	)
	text, err := s.Generator.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("Ice breaker generation failed: %v", err)
		return FallbackIceBreakerError
	}
	return text
}

// CheckCompatibility returns a one-sentence compatibility summary, with the
// same degradation contract as GenerateIceBreaker.
func (s *IcebreakerService) CheckCompatibility(ctx context.Context, myInterests []string, theirProfile models.MatchProfile) string {
	if s.Generator == nil {
		return FallbackCompatibility
	}
	prompt := fmt.Sprintf(
		"Analyze the compatibility between two students based on interests.\n"+
			"Student A: %s\n"+
			"Student B (%s): %s\n\n"+
			"Give a 1-sentence summary of why they might get along.",
		strings.Join(myInterests, ", "),
		theirProfile.Branch, strings.Join(theirProfile.Interests, ", "),
	)
	text, err := s.Generator.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("Compatibility generation failed: %v", err)
		return FallbackCompatibilityErr
	}
	return text
}
