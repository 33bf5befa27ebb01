package services

import (
	"context"
	"fmt"
	"time"

	"sparq_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// MatchStore holds the canonical match per (unordered pair, scope).
// CreateMatchIfAbsent must leave exactly one row when two writers race on
// the same pair; the winner sees created=true, the loser gets the
// winner's row with created=false.
type MatchStore interface {
	CreateMatchIfAbsent(ctx context.Context, userA, userB, cardID string) (*models.Match, bool, error)
	ListMatchesForUser(ctx context.Context, userHandle string) ([]models.Match, error)
}

type MatchService struct {
	Dynamo *DynamoService
}

// CreateMatchIfAbsent canonicalizes the pair and conditionally inserts the
// match row. The uniqueness lives in the (pair key, scope key) item key,
// so concurrent calls from either direction collide on the same row and
// only one insert succeeds.
func (s *MatchService) CreateMatchIfAbsent(ctx context.Context, userA, userB, cardID string) (*models.Match, bool, error) {
	first, second := models.SortHandles(userA, userB)
	match := models.Match{
		PK:        models.PairKey(userA, userB),
		SK:        models.ScopeKey(cardID),
		MatchID:   uuid.NewString(),
		UserA:     first,
		UserB:     second,
		CardID:    cardID,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	created, err := s.Dynamo.PutItemIfAbsent(ctx, models.MatchesTable, match, "attribute_not_exists(PK)")
	if err != nil {
		return nil, false, fmt.Errorf("failed to create match: %w", err)
	}
	if created {
		return &match, true, nil
	}

	// Lost the race; the row the other writer inserted is canonical.
	key := map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: match.PK},
		"SK": &types.AttributeValueMemberS{Value: match.SK},
	}
	item, err := s.Dynamo.GetItem(ctx, models.MatchesTable, key)
	if err != nil {
		return nil, false, err
	}
	if item == nil {
		return nil, false, fmt.Errorf("match row for %s vanished after conflicting insert", match.PK)
	}

	var existing models.Match
	if err := attributevalue.UnmarshalMap(item, &existing); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal match: %w", err)
	}
	return &existing, false, nil
}

// ListMatchesForUser fetches a user's matches from both sides of the pair
func (s *MatchService) ListMatchesForUser(ctx context.Context, userHandle string) ([]models.Match, error) {
	var matches []models.Match

	for _, query := range []struct {
		index        string
		keyCondition string
		attribute    string
	}{
		{models.UserAIndex, "userA = :user", ":user"},
		{models.UserBIndex, "userB = :user", ":user"},
	} {
		expressionValues := map[string]types.AttributeValue{
			query.attribute: &types.AttributeValueMemberS{Value: userHandle},
		}
		items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.MatchesTable, query.index, query.keyCondition, expressionValues, nil, 100)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch matches: %w", err)
		}

		var side []models.Match
		if err := attributevalue.UnmarshalListOfMaps(items, &side); err != nil {
			return nil, fmt.Errorf("failed to unmarshal matches: %w", err)
		}
		matches = append(matches, side...)
	}
	return matches, nil
}
