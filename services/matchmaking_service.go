package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"sparq_server/models"
)

// LikeOutcome reports what a single like produced. Matches formed and
// notifications enqueued are reported separately: the match write is
// authoritative, the notification is best effort.
type LikeOutcome struct {
	Liked             bool           `json:"liked"`
	AlreadyLiked      bool           `json:"alreadyLiked"`
	Matches           []models.Match `json:"matches"`
	NotificationsSent int            `json:"notificationsSent"`
}

// MatchmakingService runs the like -> detect -> match -> publish pipeline
// synchronously inside the request that recorded the like. Everything it
// touches is injected, so tests swap in in-memory stores.
type MatchmakingService struct {
	Profiles  ProfileDirectory
	Cards     CardDirectory
	Likes     LikeStore
	Matches   MatchStore
	Publisher MatchPublisher
}

// RecordLikeAndMatch is the single composite operation the feed handler
// calls. A duplicate like inserts nothing but still runs detection; every
// downstream write is idempotent, so repeating a like against an
// established pair produces no new rows and no notification.
func (s *MatchmakingService) RecordLikeAndMatch(ctx context.Context, senderHandle string, target models.LikeTarget) (*LikeOutcome, error) {
	if senderHandle == "" {
		return nil, errors.New("sender handle is required")
	}
	if _, err := s.Profiles.GetUserProfile(ctx, senderHandle); err != nil {
		return nil, err
	}

	switch target.Type {
	case models.ScopeProfile:
		if target.UserHandle == "" || target.UserHandle == senderHandle {
			return nil, errors.New("invalid profile like target")
		}
		if _, err := s.Profiles.GetUserProfile(ctx, target.UserHandle); err != nil {
			return nil, err
		}
	case models.ScopeCard:
		if target.CardID == "" {
			return nil, errors.New("invalid card like target")
		}
		if _, err := s.Cards.GetCard(ctx, target.CardID); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported like target type: %q", target.Type)
	}

	like, created, err := s.Likes.RecordLike(ctx, senderHandle, target)
	if err != nil {
		return nil, err
	}
	if !created {
		log.Printf("ℹ️ %s already liked %s, re-running detection", senderHandle, target.Key())
	}

	// The like is committed at this point; a detection failure below is
	// surfaced but never rolls it back. Detection runs on duplicates too:
	// CreateMatchIfAbsent dedupes, so an established pair stays quiet,
	// while a match lost to an earlier transient store failure is formed
	// on the next like attempt against the same target.
	matches, sent, err := s.formMatches(ctx, like)
	outcome := &LikeOutcome{
		Liked:             created,
		AlreadyLiked:      !created,
		Matches:           matches,
		NotificationsSent: sent,
	}
	if err != nil {
		// Matches created before the failure are real and already
		// published; hand them back alongside the error.
		return outcome, err
	}
	return outcome, nil
}

// formMatches checks reciprocity for a like and creates the match rows.
// Only matches this writer actually created are returned and published; a
// writer that lost the insert race stays quiet so the pair gets exactly
// one notification.
func (s *MatchmakingService) formMatches(ctx context.Context, like *models.Like) ([]models.Match, int, error) {
	if like.CardID != "" {
		return s.formCardMatches(ctx, like)
	}

	// Direct profile like: the simple reverse-edge check.
	reverse, err := s.Likes.GetLike(ctx, like.TargetHandle, models.ProfileTargetKey(like.SenderHandle))
	if err != nil {
		return nil, 0, err
	}
	if reverse == nil {
		return nil, 0, nil
	}

	match, created, err := s.Matches.CreateMatchIfAbsent(ctx, like.SenderHandle, like.TargetHandle, "")
	if err != nil {
		return nil, 0, err
	}
	if !created {
		return nil, 0, nil
	}

	log.Printf("🎉 Match created: %s ❤️ %s", match.UserA, match.UserB)
	return []models.Match{*match}, s.publish(ctx, match), nil
}

// formCardMatches fans a card like out against every other user who saved
// the same card. Each pairwise creation is independently idempotent, so
// no ordering or cross-pair coordination is needed.
func (s *MatchmakingService) formCardMatches(ctx context.Context, like *models.Like) ([]models.Match, int, error) {
	likers, err := s.Likes.ListLikesForTarget(ctx, models.CardTargetKey(like.CardID))
	if err != nil {
		return nil, 0, err
	}

	var formed []models.Match
	sent := 0
	for _, other := range likers {
		if other.SenderHandle == like.SenderHandle {
			continue
		}

		match, created, err := s.Matches.CreateMatchIfAbsent(ctx, like.SenderHandle, other.SenderHandle, like.CardID)
		if err != nil {
			return formed, sent, err
		}
		if !created {
			continue
		}

		log.Printf("🎉 Match created on card %s: %s ❤️ %s", like.CardID, match.UserA, match.UserB)
		formed = append(formed, *match)
		sent += s.publish(ctx, match)
	}
	return formed, sent, nil
}

// publish hands the match to the notification channel. The match row is
// the source of truth; a failed enqueue only costs the alert, so it is
// logged and swallowed rather than failing the like request.
func (s *MatchmakingService) publish(ctx context.Context, match *models.Match) int {
	if err := s.Publisher.PublishMatchCreated(ctx, match); err != nil {
		log.Printf("⚠️ Failed to enqueue notification for match %s: %v", match.MatchID, err)
		return 0
	}
	return 1
}
