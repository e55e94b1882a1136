package models

// Confession is an anonymous, university-scoped public post. Never deleted;
// mutated only by like and comment actions.
type Confession struct {
	ID         string    `json:"id" dynamodbav:"id"`
	UserID     string    `json:"userId" dynamodbav:"userId"`
	Text       string    `json:"text" dynamodbav:"text"`
	ImageURL   string    `json:"imageUrl,omitempty" dynamodbav:"imageUrl,omitempty"`
	Timestamp  int64     `json:"timestamp" dynamodbav:"timestamp"`
	Likes      int       `json:"likes" dynamodbav:"likes"`
	Comments   []Comment `json:"comments" dynamodbav:"comments"`
	University string    `json:"university" dynamodbav:"university"`
}

// Comment is an append-only child of a Confession.
type Comment struct {
	ID        string `json:"id" dynamodbav:"id"`
	UserID    string `json:"userId" dynamodbav:"userId"`
	Text      string `json:"text" dynamodbav:"text"`
	Timestamp int64  `json:"timestamp" dynamodbav:"timestamp"`
}
