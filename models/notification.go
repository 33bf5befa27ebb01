package models

// NotificationTypeMatchCreated marks queue payloads produced on a new match
const NotificationTypeMatchCreated = "match_created"

// NotificationRecipient is one side of a match alert.
type NotificationRecipient struct {
	ChatID int64  `json:"chatId"`
	Name   string `json:"name"`
}

// MatchNotification is the queue-resident payload for a freshly created
// match. It lives in the channel until the consumer delivers to both
// recipients and deletes it.
type MatchNotification struct {
	Type       string                `json:"type"`
	MatchID    string                `json:"matchId"`
	CardID     string                `json:"cardId,omitempty"`
	CardTitle  string                `json:"cardTitle,omitempty"`
	RecipientA NotificationRecipient `json:"recipientA"`
	RecipientB NotificationRecipient `json:"recipientB"`
	EnqueuedAt string                `json:"enqueuedAt"`
}
