package models

// Notification is an in-app alert. Mutated only to flip the read flag.
type Notification struct {
	ID        string `json:"id" dynamodbav:"id"`
	Title     string `json:"title" dynamodbav:"title"`
	Message   string `json:"message" dynamodbav:"message"`
	Timestamp int64  `json:"timestamp" dynamodbav:"timestamp"`
	Read      bool   `json:"read" dynamodbav:"read"`
	Type      string `json:"type" dynamodbav:"type"`
}
