package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"sparq_server/models"

	"github.com/google/uuid"
)

// In-memory stand-ins for the DynamoDB-backed stores and the SQS channel.
// They reproduce the same conditional-insert and visibility-timeout
// semantics the real collaborators provide.

type fakeProfileDirectory struct {
	profiles map[string]models.UserProfile
}

func (d *fakeProfileDirectory) GetUserProfile(_ context.Context, userHandle string) (*models.UserProfile, error) {
	profile, ok := d.profiles[userHandle]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, userHandle)
	}
	return &profile, nil
}

type fakeCardDirectory struct {
	cards map[string]models.Card
}

func (d *fakeCardDirectory) GetCard(_ context.Context, cardID string) (*models.Card, error) {
	card, ok := d.cards[cardID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCardNotFound, cardID)
	}
	return &card, nil
}

type memoryLikeStore struct {
	mu    sync.Mutex
	likes map[string]models.Like // keyed by PK|SK
}

func newMemoryLikeStore() *memoryLikeStore {
	return &memoryLikeStore{likes: make(map[string]models.Like)}
}

func (s *memoryLikeStore) RecordLike(_ context.Context, senderHandle string, target models.LikeTarget) (*models.Like, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := models.UserKey(senderHandle) + "|" + target.Key()
	if existing, ok := s.likes[key]; ok {
		return &existing, false, nil
	}

	like := models.Like{
		PK:           models.UserKey(senderHandle),
		SK:           target.Key(),
		LikeID:       uuid.NewString(),
		SenderHandle: senderHandle,
		TargetKey:    target.Key(),
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if target.Type == models.ScopeCard {
		like.CardID = target.CardID
	} else {
		like.TargetHandle = target.UserHandle
	}
	s.likes[key] = like
	return &like, true, nil
}

func (s *memoryLikeStore) GetLike(_ context.Context, senderHandle, targetKey string) (*models.Like, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	like, ok := s.likes[models.UserKey(senderHandle)+"|"+targetKey]
	if !ok {
		return nil, nil
	}
	return &like, nil
}

func (s *memoryLikeStore) ListLikesForTarget(_ context.Context, targetKey string) ([]models.Like, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var likes []models.Like
	for _, like := range s.likes {
		if like.TargetKey == targetKey {
			likes = append(likes, like)
		}
	}
	return likes, nil
}

func (s *memoryLikeStore) RemoveLike(_ context.Context, senderHandle, targetKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.likes, models.UserKey(senderHandle)+"|"+targetKey)
	return nil
}

func (s *memoryLikeStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.likes)
}

type memoryMatchStore struct {
	mu      sync.Mutex
	matches map[string]models.Match // keyed by PK|SK
}

func newMemoryMatchStore() *memoryMatchStore {
	return &memoryMatchStore{matches: make(map[string]models.Match)}
}

func (s *memoryMatchStore) CreateMatchIfAbsent(_ context.Context, userA, userB, cardID string) (*models.Match, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pairKey := models.PairKey(userA, userB)
	scopeKey := models.ScopeKey(cardID)
	key := pairKey + "|" + scopeKey
	if existing, ok := s.matches[key]; ok {
		return &existing, false, nil
	}

	first, second := models.SortHandles(userA, userB)
	match := models.Match{
		PK:        pairKey,
		SK:        scopeKey,
		MatchID:   uuid.NewString(),
		UserA:     first,
		UserB:     second,
		CardID:    cardID,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	s.matches[key] = match
	return &match, true, nil
}

func (s *memoryMatchStore) ListMatchesForUser(_ context.Context, userHandle string) ([]models.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []models.Match
	for _, match := range s.matches {
		if match.UserA == userHandle || match.UserB == userHandle {
			matches = append(matches, match)
		}
	}
	return matches, nil
}

func (s *memoryMatchStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.matches)
}

type queuedMessage struct {
	msg     QueueMessage
	visible bool
	deleted bool
}

// fakeQueue mimics the channel contract: a received message is hidden
// until expireVisibility is called (the test's stand-in for the
// visibility timeout elapsing) and disappears for good only on Delete.
type fakeQueue struct {
	mu         sync.Mutex
	messages   []*queuedMessage
	seq        int
	enqueueErr error
	receiveErr error // consumed by the next Receive call
}

func (q *fakeQueue) Enqueue(_ context.Context, body string) (string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.enqueueErr != nil {
		return "", q.enqueueErr
	}
	q.seq++
	id := fmt.Sprintf("m-%d", q.seq)
	q.messages = append(q.messages, &queuedMessage{
		msg:     QueueMessage{MessageID: id, Body: body, ReceiptHandle: "rh-" + id},
		visible: true,
	})
	return id, nil
}

func (q *fakeQueue) Receive(_ context.Context, maxMessages int32, _ int32) ([]QueueMessage, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.receiveErr != nil {
		err := q.receiveErr
		q.receiveErr = nil
		return nil, err
	}

	var received []QueueMessage
	for _, m := range q.messages {
		if m.deleted || !m.visible {
			continue
		}
		m.visible = false
		received = append(received, m.msg)
		if int32(len(received)) == maxMessages {
			break
		}
	}
	return received, nil
}

func (q *fakeQueue) Delete(_ context.Context, receiptHandle string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, m := range q.messages {
		if m.msg.ReceiptHandle == receiptHandle {
			m.deleted = true
			return nil
		}
	}
	return fmt.Errorf("unknown receipt handle: %s", receiptHandle)
}

// expireVisibility makes every undeleted message receivable again.
func (q *fakeQueue) expireVisibility() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, m := range q.messages {
		if !m.deleted {
			m.visible = true
		}
	}
}

func (q *fakeQueue) enqueuedCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.messages)
}

func (q *fakeQueue) remainingCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	remaining := 0
	for _, m := range q.messages {
		if !m.deleted {
			remaining++
		}
	}
	return remaining
}

// fakeBot records every alert and can be told to fail for a given chat.
type fakeBot struct {
	mu   sync.Mutex
	sent map[int64][]string
	fail map[int64]error
}

func newFakeBot() *fakeBot {
	return &fakeBot{sent: make(map[int64][]string), fail: make(map[int64]error)}
}

func (b *fakeBot) SendMatchAlert(chatID int64, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err, ok := b.fail[chatID]; ok {
		return err
	}
	b.sent[chatID] = append(b.sent[chatID], text)
	return nil
}

func (b *fakeBot) sentTo(chatID int64) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.sent[chatID]...)
}

func (b *fakeBot) totalSent() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	total := 0
	for _, texts := range b.sent {
		total += len(texts)
	}
	return total
}
