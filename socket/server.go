package socket

import (
	"context"
	"errors"
	"log"
	"time"

	"otherhalf_server/models"
	"otherhalf_server/services"
	"otherhalf_server/store"

	"github.com/google/uuid"
	socketio "github.com/googollee/go-socket.io"
)

// MessagePayload is the wire shape of a sendMessage event.
type MessagePayload struct {
	MatchID  string `json:"matchId"`
	SenderID string `json:"senderId"`
	Text     string `json:"text"`
}

// CallPayload is the wire shape of the call:* events.
type CallPayload struct {
	MatchID  string `json:"matchId"`
	CallerID string `json:"callerId"`
	CallID   string `json:"callId"`
	Type     string `json:"type"`
}

// NewSocketServer initializes the Socket.IO server. Chat messages go through
// the store before being broadcast so the realtime path and the HTTP path
// observe the same state.
func NewSocketServer(st *store.Store, signaler services.Signaler) *socketio.Server {
	server := socketio.NewServer(nil)

	server.OnConnect("/", func(s socketio.Conn) error {
		log.Println("Socket connected:", s.ID())
		return nil
	})

	server.OnEvent("/", "join", func(s socketio.Conn, matchID string) {
		if matchID == "" {
			log.Println("Invalid matchId in join request")
			return
		}
		log.Printf("Socket %s joined match %s", s.ID(), matchID)
		s.Join(matchID)
	})

	server.OnEvent("/", "sendMessage", func(s socketio.Conn, payload MessagePayload) {
		if payload.MatchID == "" || payload.Text == "" {
			return
		}
		message := models.Message{
			ID:        uuid.NewString(),
			SenderID:  payload.SenderID,
			Text:      payload.Text,
			Timestamp: time.Now().UnixMilli(),
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.AddMessage(ctx, payload.MatchID, message); err != nil {
			if errors.Is(err, store.ErrSessionNotFound) {
				log.Printf("Dropping message for unknown match %s", payload.MatchID)
			} else {
				log.Printf("Failed to store message for match %s: %v", payload.MatchID, err)
			}
			return
		}
		server.BroadcastToRoom("/", payload.MatchID, "newMessage", message)
	})

	server.OnEvent("/", "call:start", func(s socketio.Conn, payload CallPayload) {
		call, err := signaler.Start(context.Background(), payload.MatchID, payload.CallerID, payload.Type)
		if err != nil {
			log.Printf("Failed to start call for match %s: %v", payload.MatchID, err)
			return
		}
		server.BroadcastToRoom("/", payload.MatchID, "call:incoming", call)
	})

	server.OnEvent("/", "call:end", func(s socketio.Conn, payload CallPayload) {
		if err := signaler.End(payload.CallID); err != nil {
			log.Printf("Failed to end call %s: %v", payload.CallID, err)
			return
		}
		server.BroadcastToRoom("/", payload.MatchID, "call:ended", payload)
	})

	server.OnError("/", func(s socketio.Conn, err error) {
		log.Println("Socket error:", err)
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		log.Println("Socket disconnected:", reason)
	})

	return server
}
