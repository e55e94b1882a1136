package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"otherhalf_server/models"

	"github.com/google/uuid"
)

var ErrCallNotFound = errors.New("call not found")

// CallSession is one simulated audio/video call.
type CallSession struct {
	ID        string `json:"id"`
	MatchID   string `json:"matchId"`
	CallerID  string `json:"callerId"`
	Type      string `json:"type"`
	Status    string `json:"status"`
	StartedAt int64  `json:"startedAt"`
}

// Signaler is the interface a real signaling layer would implement. The
// stub below stands in for it so the two are interchangeable.
type Signaler interface {
	Start(ctx context.Context, matchID, callerID, callType string) (*CallSession, error)
	Status(callID string) (*CallSession, error)
	End(callID string) error
}

// StubSignaler fakes call negotiation: a started call flips from connecting
// to connected after a fixed delay, with no real remote peer.
type StubSignaler struct {
	ConnectDelay time.Duration

	mu    sync.Mutex
	calls map[string]*CallSession
}

func NewStubSignaler() *StubSignaler {
	return &StubSignaler{
		ConnectDelay: 2 * time.Second,
		calls:        make(map[string]*CallSession),
	}
}

func (s *StubSignaler) Start(_ context.Context, matchID, callerID, callType string) (*CallSession, error) {
	if callType != models.CallTypeAudio && callType != models.CallTypeVideo {
		return nil, errors.New("invalid call type")
	}
	call := &CallSession{
		ID:        uuid.NewString(),
		MatchID:   matchID,
		CallerID:  callerID,
		Type:      callType,
		Status:    models.CallStatusConnecting,
		StartedAt: time.Now().UnixMilli(),
	}
	s.mu.Lock()
	s.calls[call.ID] = call
	s.mu.Unlock()

	time.AfterFunc(s.ConnectDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.calls[call.ID]; ok && c.Status == models.CallStatusConnecting {
			c.Status = models.CallStatusConnected
		}
	})
	return s.snapshot(call), nil
}

func (s *StubSignaler) Status(callID string) (*CallSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	call, ok := s.calls[callID]
	if !ok {
		return nil, ErrCallNotFound
	}
	return s.snapshot(call), nil
}

func (s *StubSignaler) End(callID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	call, ok := s.calls[callID]
	if !ok {
		return ErrCallNotFound
	}
	call.Status = models.CallStatusEnded
	return nil
}

// snapshot copies the call so callers never share the mutable record.
func (s *StubSignaler) snapshot(call *CallSession) *CallSession {
	copied := *call
	return &copied
}
