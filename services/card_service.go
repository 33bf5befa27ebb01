package services

import (
	"context"
	"fmt"
	"time"

	"sparq_server/models"
	"sparq_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// CardDirectory resolves card ids to event cards.
type CardDirectory interface {
	GetCard(ctx context.Context, cardID string) (*models.Card, error)
}

type CardService struct {
	Dynamo *DynamoService
}

// AddCard adds a new event card to DynamoDB
func (cs *CardService) AddCard(ctx context.Context, card models.Card) (*models.Card, error) {
	if card.CreatedAt == "" {
		card.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if err := cs.Dynamo.PutItem(ctx, models.CardsTable, card); err != nil {
		return nil, err
	}
	return &card, nil
}

// GetCard retrieves an event card by id
func (cs *CardService) GetCard(ctx context.Context, cardID string) (*models.Card, error) {
	key := map[string]types.AttributeValue{
		"cardId": &types.AttributeValueMemberS{Value: cardID},
	}

	item, err := cs.Dynamo.GetItem(ctx, models.CardsTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: %s", ErrCardNotFound, cardID)
	}

	var card models.Card
	if err := attributevalue.UnmarshalMap(item, &card); err != nil {
		return nil, fmt.Errorf("failed to unmarshal card: %w", err)
	}
	return &card, nil
}

// GetCardLikers returns who saved a card, enriched with profile names
func (cs *CardService) GetCardLikers(ctx context.Context, cardID string) ([]map[string]interface{}, error) {
	keyCondition := "targetKey = :target"
	expressionValues := map[string]types.AttributeValue{
		":target": &types.AttributeValueMemberS{Value: models.CardTargetKey(cardID)},
	}

	items, err := cs.Dynamo.QueryItemsWithIndex(ctx, models.LikesTable, models.TargetKeyIndex, keyCondition, expressionValues, nil, 100)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch card likers: %w", err)
	}

	likers := []map[string]interface{}{}
	for _, item := range items {
		senderHandle := utils.ExtractString(item, "senderHandle")
		if senderHandle == "" {
			continue
		}

		entry := map[string]interface{}{
			"userHandle": senderHandle,
			"likedAt":    utils.ExtractString(item, "createdAt"),
		}

		profileKey := map[string]types.AttributeValue{
			"userHandle": &types.AttributeValueMemberS{Value: senderHandle},
		}
		if profileItem, err := cs.Dynamo.GetItem(ctx, models.UserProfilesTable, profileKey); err == nil && profileItem != nil {
			entry["name"] = utils.ExtractString(profileItem, "name")
		}

		likers = append(likers, entry)
	}
	return likers, nil
}
