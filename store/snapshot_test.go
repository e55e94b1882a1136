package store

import (
	"context"
	"testing"

	"otherhalf_server/models"
	"otherhalf_server/storage"
)

func TestSnapshotRoundTrip(t *testing.T) {
	adapter := storage.NewMemoryAdapter()
	ctx := context.Background()

	st := New(adapter, Config{Now: testClock(1000)})
	candidate := st.GetMatchQueue(userA())[0]
	if err := st.AddMatch(ctx, candidate, "u1"); err != nil {
		t.Fatalf("AddMatch: %v", err)
	}
	if err := st.AddMessage(ctx, candidate.ID, models.Message{ID: "1", SenderID: "u1", Text: "hi"}); err != nil {
		t.Fatalf("AddMessage: %v", err)
	}

	// A second store over the same adapter sees the persisted state.
	reloaded := New(adapter, Config{Now: testClock(2000)})
	matches := reloaded.GetMatches()
	if len(matches) != 1 || matches[0].ID != candidate.ID {
		t.Fatalf("reloaded matches = %v, want [%s]", matches, candidate.ID)
	}
	session, ok := reloaded.GetChatSession(candidate.ID)
	if !ok {
		t.Fatal("reloaded store lost the chat session")
	}
	if len(session.Messages) != 1 || session.Messages[0].Text != "hi" {
		t.Errorf("reloaded session messages = %v", session.Messages)
	}
}

func TestHydrateRejectsMalformedSnapshot(t *testing.T) {
	adapter := storage.NewMemoryAdapter()
	ctx := context.Background()

	if err := adapter.Set(ctx, storage.KeyMatches, "{not json"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	st := New(adapter, Config{Now: testClock(1000)})
	if got := len(st.GetMatches()); got != 0 {
		t.Errorf("matches from malformed snapshot = %d, want 0", got)
	}
}

func TestHydrateRejectsUnknownVersion(t *testing.T) {
	adapter := storage.NewMemoryAdapter()
	ctx := context.Background()

	if err := adapter.Set(ctx, storage.KeyNotifications, `{"version": 42, "data": []}`); err != nil {
		t.Fatalf("Set: %v", err)
	}

	st := New(adapter, Config{Now: testClock(1000)})
	// Falls back to the seed set rather than trusting the foreign blob.
	if got := len(st.GetNotifications()); got != len(models.SeedNotifications(0)) {
		t.Errorf("notifications = %d, want seed set", got)
	}
}

func TestHydrateSeedsWhenEmpty(t *testing.T) {
	st := New(storage.NewMemoryAdapter(), Config{Now: testClock(1000)})

	if got := len(st.GetConfessions("Amity University, Raipur")); got == 0 {
		t.Error("fresh store has no seed confessions")
	}
	if got := len(st.GetNotifications()); got != len(models.SeedNotifications(0)) {
		t.Errorf("fresh store notifications = %d, want seed set", got)
	}
	if got := len(st.GetMatches()); got != 0 {
		t.Errorf("fresh store matches = %d, want 0", got)
	}
}
