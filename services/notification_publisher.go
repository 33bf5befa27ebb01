package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"sparq_server/models"
)

// MatchPublisher hands a freshly created match to the notification
// channel. Called only by the writer that won the match insert.
type MatchPublisher interface {
	PublishMatchCreated(ctx context.Context, match *models.Match) error
}

// NotificationPublisher serializes match_created facts onto the queue.
type NotificationPublisher struct {
	Profiles ProfileDirectory
	Cards    CardDirectory
	Queue    MessageQueue
}

// PublishMatchCreated resolves both recipients' chat ids and enqueues one
// notification. The card title is decoration; a failed card lookup does
// not block the alert.
func (p *NotificationPublisher) PublishMatchCreated(ctx context.Context, match *models.Match) error {
	profileA, err := p.Profiles.GetUserProfile(ctx, match.UserA)
	if err != nil {
		return fmt.Errorf("failed to resolve recipient %s: %w", match.UserA, err)
	}
	profileB, err := p.Profiles.GetUserProfile(ctx, match.UserB)
	if err != nil {
		return fmt.Errorf("failed to resolve recipient %s: %w", match.UserB, err)
	}

	notification := models.MatchNotification{
		Type:       models.NotificationTypeMatchCreated,
		MatchID:    match.MatchID,
		CardID:     match.CardID,
		RecipientA: models.NotificationRecipient{ChatID: profileA.ChatID, Name: profileA.Name},
		RecipientB: models.NotificationRecipient{ChatID: profileB.ChatID, Name: profileB.Name},
		EnqueuedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if match.CardID != "" && p.Cards != nil {
		if card, err := p.Cards.GetCard(ctx, match.CardID); err == nil {
			notification.CardTitle = card.Title
		}
	}

	body, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	messageID, err := p.Queue.Enqueue(ctx, string(body))
	if err != nil {
		return err
	}

	log.Printf("📨 Match notification enqueued: match=%s message=%s", match.MatchID, messageID)
	return nil
}
