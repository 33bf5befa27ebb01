package models

// Like records one user's saved interest in a profile or an event card.
// The (PK, SK) pair makes re-likes collide on the same row, so a like is
// inserted at most once per (sender, target).
type Like struct {
	PK           string `dynamodbav:"PK" json:"PK"`                                         // "USER#<senderHandle>"
	SK           string `dynamodbav:"SK" json:"SK"`                                         // target key, see TargetKey
	LikeID       string `dynamodbav:"likeId" json:"likeId"`
	SenderHandle string `dynamodbav:"senderHandle" json:"senderHandle"`
	TargetHandle string `dynamodbav:"targetHandle,omitempty" json:"targetHandle,omitempty"` // set for profile likes
	CardID       string `dynamodbav:"cardId,omitempty" json:"cardId,omitempty"`             // set for card likes
	TargetKey    string `dynamodbav:"targetKey" json:"targetKey"`                           // SK copy, feeds the GSI
	CreatedAt    string `dynamodbav:"createdAt" json:"createdAt"`
}

// LikesTable is the DynamoDB table name for likes
const LikesTable = "Likes"

// TargetKeyIndex is the GSI for fetching every like pointed at one target
const TargetKeyIndex = "targetKey-index"

// LikeTarget identifies what a like points at: another profile or an event card.
type LikeTarget struct {
	Type       string `json:"type"` // ScopeProfile or ScopeCard
	UserHandle string `json:"userHandle,omitempty"`
	CardID     string `json:"cardId,omitempty"`
}

// Key returns the sort-key form of the target.
func (t LikeTarget) Key() string {
	if t.Type == ScopeCard {
		return CardTargetKey(t.CardID)
	}
	return ProfileTargetKey(t.UserHandle)
}
