package models

// UserProfile is the onboarded local user. The real name stays hidden from
// other users until a chat session is revealed.
type UserProfile struct {
	ID              string   `json:"id" dynamodbav:"id"`
	AnonymousID     string   `json:"anonymousId" dynamodbav:"anonymousId"`
	RealName        string   `json:"realName" dynamodbav:"realName"`
	Gender          string   `json:"gender" dynamodbav:"gender"`
	University      string   `json:"university" dynamodbav:"university"`
	UniversityEmail string   `json:"universityEmail" dynamodbav:"universityEmail"`
	Branch          string   `json:"branch" dynamodbav:"branch"`
	Year            string   `json:"year" dynamodbav:"year"`
	Interests       []string `json:"interests" dynamodbav:"interests"`
	Bio             string   `json:"bio" dynamodbav:"bio"`
	IsVerified      bool     `json:"isVerified" dynamodbav:"isVerified"`
	Avatar          string   `json:"avatar,omitempty" dynamodbav:"avatar,omitempty"`
	IsPremium       bool     `json:"isPremium,omitempty" dynamodbav:"isPremium,omitempty"`
}

// MatchProfile is a candidate or confirmed match. Same shape as UserProfile
// minus the university email, plus the computed compatibility percentage and
// a display distance string. Immutable once sourced from the candidate pool.
type MatchProfile struct {
	ID              string   `json:"id" dynamodbav:"id"`
	AnonymousID     string   `json:"anonymousId" dynamodbav:"anonymousId"`
	RealName        string   `json:"realName" dynamodbav:"realName"`
	Gender          string   `json:"gender" dynamodbav:"gender"`
	University      string   `json:"university" dynamodbav:"university"`
	Branch          string   `json:"branch" dynamodbav:"branch"`
	Year            string   `json:"year" dynamodbav:"year"`
	Interests       []string `json:"interests" dynamodbav:"interests"`
	Bio             string   `json:"bio" dynamodbav:"bio"`
	IsVerified      bool     `json:"isVerified" dynamodbav:"isVerified"`
	Avatar          string   `json:"avatar,omitempty" dynamodbav:"avatar,omitempty"`
	IsPremium       bool     `json:"isPremium,omitempty" dynamodbav:"isPremium,omitempty"`
	MatchPercentage int      `json:"matchPercentage" dynamodbav:"matchPercentage"`
	Distance        string   `json:"distance" dynamodbav:"distance"`
}
