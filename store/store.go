package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"otherhalf_server/models"
	"otherhalf_server/storage"

	"github.com/google/uuid"
)

// Sentinel errors for mutating lookups. Callers that want the old lenient
// behavior can ignore these; the HTTP layer maps them to 404s.
var (
	ErrMatchNotFound      = errors.New("match not found")
	ErrSessionNotFound    = errors.New("chat session not found")
	ErrConfessionNotFound = errors.New("confession not found")
)

// EligibilityFunc decides whether a candidate may appear in a user's match
// queue. Exclusion of the user's own id and of already-confirmed matches is
// applied by the store on top of this predicate.
type EligibilityFunc func(user models.UserProfile, candidate models.MatchProfile) bool

// OppositeGender is the default eligibility predicate: the candidate's
// gender must be the opposite of the user's in the binary model.
func OppositeGender(user models.UserProfile, candidate models.MatchProfile) bool {
	target := models.GenderFemale
	if user.Gender == models.GenderFemale {
		target = models.GenderMale
	}
	return candidate.Gender == target
}

// Config carries the injectable parts of a Store. Zero values fall back to
// the demo defaults.
type Config struct {
	CandidatePool []models.MatchProfile
	Eligibility   EligibilityFunc
	Now           func() int64 // epoch milliseconds
}

// Store is the single source of truth for matches, per-match chat sessions,
// notifications, and confessions, with best-effort durability through the
// injected storage adapter. All operations are synchronous and run to
// completion; the mutex only guards against concurrent HTTP handlers.
type Store struct {
	mu      sync.Mutex
	adapter storage.Adapter

	matches       []models.MatchProfile
	sessions      map[string]models.ChatSession
	notifications []models.Notification
	confessions   []models.Confession

	pool     []models.MatchProfile
	eligible EligibilityFunc
	now      func() int64
}

// New builds a store and hydrates it from the adapter. Collections whose
// snapshots are absent or unusable fall back to the seed defaults.
func New(adapter storage.Adapter, cfg Config) *Store {
	s := &Store{
		adapter:  adapter,
		sessions: make(map[string]models.ChatSession),
		pool:     cfg.CandidatePool,
		eligible: cfg.Eligibility,
		now:      cfg.Now,
	}
	if s.pool == nil {
		s.pool = models.MockMatches
	}
	if s.eligible == nil {
		s.eligible = OppositeGender
	}
	if s.now == nil {
		s.now = func() int64 { return time.Now().UnixMilli() }
	}
	s.hydrate(context.Background())
	return s
}

func (s *Store) hydrate(ctx context.Context) {
	if ok, err := loadCollection(ctx, s.adapter, storage.KeyMatches, &s.matches); err != nil || !ok {
		if err != nil {
			log.Printf("Discarding matches snapshot: %v", err)
		}
		s.matches = nil
	}
	if ok, err := loadCollection(ctx, s.adapter, storage.KeyChats, &s.sessions); err != nil || !ok {
		if err != nil {
			log.Printf("Discarding chats snapshot: %v", err)
		}
		s.sessions = make(map[string]models.ChatSession)
	}
	if s.sessions == nil {
		s.sessions = make(map[string]models.ChatSession)
	}
	if ok, err := loadCollection(ctx, s.adapter, storage.KeyNotifications, &s.notifications); err != nil || !ok {
		if err != nil {
			log.Printf("Discarding notifications snapshot: %v", err)
		}
		s.notifications = models.SeedNotifications(s.now())
	}
	if ok, err := loadCollection(ctx, s.adapter, storage.KeyConfessions, &s.confessions); err != nil || !ok {
		if err != nil {
			log.Printf("Discarding confessions snapshot: %v", err)
		}
		s.confessions = nil
	}
	if len(s.confessions) == 0 {
		s.confessions = models.SeedConfessions(s.now())
	}
}

// persist serializes the four collections, one snapshot per key.
func (s *Store) persist(ctx context.Context) error {
	if err := saveCollection(ctx, s.adapter, storage.KeyMatches, s.matches); err != nil {
		return fmt.Errorf("failed to persist matches: %w", err)
	}
	if err := saveCollection(ctx, s.adapter, storage.KeyChats, s.sessions); err != nil {
		return fmt.Errorf("failed to persist chat sessions: %w", err)
	}
	if err := saveCollection(ctx, s.adapter, storage.KeyNotifications, s.notifications); err != nil {
		return fmt.Errorf("failed to persist notifications: %w", err)
	}
	if err := saveCollection(ctx, s.adapter, storage.KeyConfessions, s.confessions); err != nil {
		return fmt.Errorf("failed to persist confessions: %w", err)
	}
	return nil
}

// GetMatches returns the confirmed match set in insertion order.
func (s *Store) GetMatches() []models.MatchProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.MatchProfile, len(s.matches))
	copy(out, s.matches)
	return out
}

// GetMatchQueue filters the candidate pool for the given user: eligible per
// the predicate, not the user themselves, and not already matched. A fresh
// slice is returned on every call.
func (s *Store) GetMatchQueue(user models.UserProfile) []models.MatchProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := make(map[string]struct{}, len(s.matches))
	for _, m := range s.matches {
		matched[m.ID] = struct{}{}
	}
	queue := make([]models.MatchProfile, 0, len(s.pool))
	for _, c := range s.pool {
		if c.ID == user.ID {
			continue
		}
		if _, ok := matched[c.ID]; ok {
			continue
		}
		if !s.eligible(user, c) {
			continue
		}
		queue = append(queue, c)
	}
	return queue
}

// AddMatch confirms a match. Idempotent: a candidate already in the match
// set is a no-op. On first insertion the candidate is appended, exactly one
// chat session is created for the pair, and a match notification is
// prepended, in that order, before the snapshot is persisted.
func (s *Store) AddMatch(ctx context.Context, candidate models.MatchProfile, requesterID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.matches {
		if m.ID == candidate.ID {
			return nil
		}
	}
	s.matches = append(s.matches, candidate)
	s.sessions[candidate.ID] = models.ChatSession{
		MatchID:     candidate.ID,
		UserA:       requesterID,
		UserB:       candidate.ID,
		Messages:    []models.Message{},
		LastUpdated: s.now(),
		IsRevealed:  false,
	}
	s.prependNotification(models.Notification{
		ID:        uuid.NewString(),
		Title:     "It's a Match!",
		Message:   fmt.Sprintf("You matched with %s!", candidate.AnonymousID),
		Timestamp: s.now(),
		Read:      false,
		Type:      models.NotificationTypeMatch,
	})
	return s.persist(ctx)
}

// RemoveMatch removes the match and its chat session as a single logical
// unit. Not reversible; confirmation is a caller concern.
func (s *Store) RemoveMatch(ctx context.Context, matchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i, m := range s.matches {
		if m.ID == matchID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrMatchNotFound
	}
	s.matches = append(s.matches[:idx], s.matches[idx+1:]...)
	delete(s.sessions, matchID)
	return s.persist(ctx)
}

// GetChatSession is a pure lookup.
func (s *Store) GetChatSession(matchID string) (models.ChatSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[matchID]
	if !ok {
		return models.ChatSession{}, false
	}
	messages := make([]models.Message, len(session.Messages))
	copy(messages, session.Messages)
	session.Messages = messages
	return session, true
}

// AddMessage appends to the session's message list and advances its
// last-activity timestamp. Returns ErrSessionNotFound when no session exists
// for the match id; the session map is left unchanged in that case.
func (s *Store) AddMessage(ctx context.Context, matchID string, message models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[matchID]
	if !ok {
		return ErrSessionNotFound
	}
	session.Messages = append(session.Messages, message)
	if now := s.now(); now > session.LastUpdated {
		session.LastUpdated = now
	}
	s.sessions[matchID] = session
	return s.persist(ctx)
}

// GetNotifications returns the notification list, most recent first.
func (s *Store) GetNotifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// AddNotification prepends a notification and persists.
func (s *Store) AddNotification(ctx context.Context, n models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prependNotification(n)
	return s.persist(ctx)
}

func (s *Store) prependNotification(n models.Notification) {
	s.notifications = append([]models.Notification{n}, s.notifications...)
}

// MarkNotificationsRead flips every notification to read. Idempotent.
func (s *Store) MarkNotificationsRead(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		s.notifications[i].Read = true
	}
	return s.persist(ctx)
}

// GetConfessions returns the confessions for one university, sorted by
// timestamp descending. Storage order stays insertion order; the sort is
// applied at read time.
func (s *Store) GetConfessions(university string) []models.Confession {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Confession, 0)
	for _, c := range s.confessions {
		if c.University == university {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp > out[j].Timestamp
	})
	return out
}

// AddConfession prepends a confession, normalizing a missing comment list to
// empty.
func (s *Store) AddConfession(ctx context.Context, c models.Confession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.Comments == nil {
		c.Comments = []models.Comment{}
	}
	s.confessions = append([]models.Confession{c}, s.confessions...)
	return s.persist(ctx)
}

// LikeConfession increments the like counter by exactly one.
func (s *Store) LikeConfession(ctx context.Context, confessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.confessions {
		if s.confessions[i].ID == confessionID {
			s.confessions[i].Likes++
			return s.persist(ctx)
		}
	}
	return ErrConfessionNotFound
}

// AddComment appends a freshly identified comment to the target confession.
func (s *Store) AddComment(ctx context.Context, confessionID, text, authorID string) (models.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.confessions {
		if s.confessions[i].ID == confessionID {
			comment := models.Comment{
				ID:        uuid.NewString(),
				UserID:    authorID,
				Text:      text,
				Timestamp: s.now(),
			}
			s.confessions[i].Comments = append(s.confessions[i].Comments, comment)
			return comment, s.persist(ctx)
		}
	}
	return models.Comment{}, ErrConfessionNotFound
}

// Reset clears matches, chat sessions, and confessions and restores the
// notification seed set. Intended for logout.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches = nil
	s.sessions = make(map[string]models.ChatSession)
	s.notifications = models.SeedNotifications(s.now())
	s.confessions = nil
	return s.persist(ctx)
}
