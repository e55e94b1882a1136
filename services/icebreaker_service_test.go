package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"otherhalf_server/models"
)

func matchSarah() models.MatchProfile {
	return models.MatchProfile{
		AnonymousID: "User#X92A",
		Branch:      "Computer Science",
		Interests:   []string{"AI", "Sci-Fi", "Coffee"},
	}
}

func TestIceBreakerFallbackWithoutGenerator(t *testing.T) {
	svc := &IcebreakerService{}

	got := svc.GenerateIceBreaker(context.Background(), []string{"AI"}, matchSarah())
	if got != FallbackIceBreaker {
		t.Errorf("GenerateIceBreaker = %q, want %q", got, FallbackIceBreaker)
	}
	if got := svc.CheckCompatibility(context.Background(), []string{"AI"}, matchSarah()); got != FallbackCompatibility {
		t.Errorf("CheckCompatibility = %q, want %q", got, FallbackCompatibility)
	}
}

func TestIceBreakerFallbackOnGenerationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewGeminiClient("test-key")
	client.BaseURL = server.URL
	svc := &IcebreakerService{Generator: client}

	got := svc.GenerateIceBreaker(context.Background(), []string{"AI"}, matchSarah())
	if got != FallbackIceBreakerError {
		t.Errorf("GenerateIceBreaker = %q, want %q", got, FallbackIceBreakerError)
	}
	if got := svc.CheckCompatibility(context.Background(), []string{"AI"}, matchSarah()); got != FallbackCompatibilityErr {
		t.Errorf("CheckCompatibility = %q, want %q", got, FallbackCompatibilityErr)
	}
}

func TestIceBreakerUsesGeneratedText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  Coffee and neural nets? We should talk.  "}]}}]}`))
	}))
	defer server.Close()

	client := NewGeminiClient("test-key")
	client.BaseURL = server.URL
	svc := &IcebreakerService{Generator: client}

	got := svc.GenerateIceBreaker(context.Background(), []string{"AI", "Coffee"}, matchSarah())
	if got != "Coffee and neural nets? We should talk." {
		t.Errorf("GenerateIceBreaker = %q", got)
	}
}

func TestGeminiClientRejectsEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client := NewGeminiClient("test-key")
	client.BaseURL = server.URL

	if _, err := client.GenerateText(context.Background(), "prompt"); err == nil {
		t.Error("expected an error for an empty candidates list")
	}
}
