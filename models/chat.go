package models

// Message is a single chat message. Immutable once appended; ordering is
// insertion order. Timestamps are epoch milliseconds.
type Message struct {
	ID        string `json:"id" dynamodbav:"id"`
	SenderID  string `json:"senderId" dynamodbav:"senderId"`
	Text      string `json:"text" dynamodbav:"text"`
	Timestamp int64  `json:"timestamp" dynamodbav:"timestamp"`
	IsSystem  bool   `json:"isSystem,omitempty" dynamodbav:"isSystem,omitempty"`
}

// ChatSession is the chat channel for a confirmed match, keyed by the match
// identifier. Exactly one session exists per active match.
type ChatSession struct {
	MatchID     string    `json:"matchId" dynamodbav:"matchId"`
	UserA       string    `json:"userA" dynamodbav:"userA"`
	UserB       string    `json:"userB" dynamodbav:"userB"`
	Messages    []Message `json:"messages" dynamodbav:"messages"`
	LastUpdated int64     `json:"lastUpdated" dynamodbav:"lastUpdated"`
	IsRevealed  bool      `json:"isRevealed" dynamodbav:"isRevealed"`
}
