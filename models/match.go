package models

// Match is the canonical record of mutual interest between two users.
// The (PK, SK) pair is (canonical pair key, scope key); the conditional
// insert on that key is what keeps the row unique under racing writers.
type Match struct {
	PK        string `dynamodbav:"PK" json:"PK"`                             // "PAIR#<userA>#<userB>", handles sorted
	SK        string `dynamodbav:"SK" json:"SK"`                             // "PROFILE" or "CARD#<cardId>"
	MatchID   string `dynamodbav:"matchId" json:"matchId"`
	UserA     string `dynamodbav:"userA" json:"userA"`                       // lexicographically smaller handle
	UserB     string `dynamodbav:"userB" json:"userB"`
	CardID    string `dynamodbav:"cardId,omitempty" json:"cardId,omitempty"` // empty for direct profile matches
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// MatchesTable is the DynamoDB table name for matches
const MatchesTable = "Matches"

// GSIs for listing a user's matches from either side of the pair
const (
	UserAIndex = "userA-index"
	UserBIndex = "userB-index"
)
