package models

// Card is an event card shown in the swipe feed
type Card struct {
	CardID    string `dynamodbav:"cardId" json:"cardId"` // Partition Key
	Title     string `dynamodbav:"title" json:"title"`
	Venue     string `dynamodbav:"venue,omitempty" json:"venue,omitempty"`
	StartsAt  string `dynamodbav:"startsAt,omitempty" json:"startsAt,omitempty"`
	PhotoKey  string `dynamodbav:"photoKey,omitempty" json:"photoKey,omitempty"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// CardsTable is the DynamoDB table name for event cards
const CardsTable = "Cards"
