package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"sparq_server/models"
)

const (
	defaultMaxMessages = int32(10)
	defaultWaitSeconds = int32(20)
	defaultPollBackoff = 5 * time.Second
)

// NotificationConsumer long-polls the queue and delivers match alerts
// through the bot. A message is deleted only after both recipients got
// theirs; anything not deleted reappears after the queue's visibility
// timeout, giving at-least-once delivery. Multiple instances can run
// against the same queue without coordination.
type NotificationConsumer struct {
	Queue       MessageQueue
	Bot         BotSender
	MaxMessages int32
	WaitSeconds int32
	PollBackoff time.Duration
}

// Run blocks until ctx is canceled. In-flight messages that are not acked
// before shutdown simply become eligible for redelivery.
func (c *NotificationConsumer) Run(ctx context.Context) {
	maxMessages := c.MaxMessages
	if maxMessages <= 0 {
		maxMessages = defaultMaxMessages
	}
	waitSeconds := c.WaitSeconds
	if waitSeconds <= 0 {
		waitSeconds = defaultWaitSeconds
	}
	backoff := c.PollBackoff
	if backoff <= 0 {
		backoff = defaultPollBackoff
	}

	log.Printf("🔁 Notification consumer started (batch=%d, wait=%ds)", maxMessages, waitSeconds)
	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Notification consumer stopped")
			return
		default:
		}

		messages, err := c.Queue.Receive(ctx, maxMessages, waitSeconds)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("⏹️ Notification consumer stopped")
				return
			}
			log.Printf("⚠️ Receive failed: %v, retrying in %s", err, backoff)
			select {
			case <-ctx.Done():
				log.Println("⏹️ Notification consumer stopped")
				return
			case <-time.After(backoff):
			}
			continue
		}

		for _, msg := range messages {
			c.process(ctx, msg)
		}
	}
}

// process delivers one queue message to both recipients in parallel and
// acks it only when both sends succeeded. Structurally invalid payloads
// are dropped outright: redelivery cannot fix a message with no
// destination.
func (c *NotificationConsumer) process(ctx context.Context, msg QueueMessage) {
	var notification models.MatchNotification
	if err := json.Unmarshal([]byte(msg.Body), &notification); err != nil {
		log.Printf("❌ Dropping malformed notification %s: %v", msg.MessageID, err)
		c.drop(ctx, msg)
		return
	}
	if notification.RecipientA.ChatID == 0 || notification.RecipientB.ChatID == 0 {
		log.Printf("❌ Dropping notification %s: missing recipient chat id", msg.MessageID)
		c.drop(ctx, msg)
		return
	}

	recipients := []models.NotificationRecipient{notification.RecipientA, notification.RecipientB}
	errs := make([]error, len(recipients))
	var wg sync.WaitGroup
	for i := range recipients {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			counterpart := recipients[1-i]
			errs[i] = c.Bot.SendMatchAlert(recipients[i].ChatID, matchAlertText(notification, counterpart))
		}(i)
	}
	wg.Wait()

	if errs[0] != nil || errs[1] != nil {
		// Not acked: the visibility timeout will bring it back. A crash
		// after a partial delivery means one duplicate alert, which the
		// at-least-once contract accepts.
		log.Printf("⚠️ Delivery incomplete for match %s (a=%v, b=%v), leaving for redelivery", notification.MatchID, errs[0], errs[1])
		return
	}

	if err := c.Queue.Delete(ctx, msg.ReceiptHandle); err != nil {
		log.Printf("⚠️ Failed to ack message %s: %v", msg.MessageID, err)
	}
}

func (c *NotificationConsumer) drop(ctx context.Context, msg QueueMessage) {
	if err := c.Queue.Delete(ctx, msg.ReceiptHandle); err != nil {
		log.Printf("⚠️ Failed to drop message %s: %v", msg.MessageID, err)
	}
}

// matchAlertText formats the alert one recipient sees about the other.
func matchAlertText(notification models.MatchNotification, counterpart models.NotificationRecipient) string {
	if notification.CardTitle != "" {
		return fmt.Sprintf("💘 It's a match! You and %s both saved %s. Say hi!", counterpart.Name, notification.CardTitle)
	}
	return fmt.Sprintf("💘 It's a match! You and %s liked each other. Say hi!", counterpart.Name)
}
