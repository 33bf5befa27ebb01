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

// LikeStore is the capability the matching engine needs from the likes
// table. RecordLike is idempotent: the second call for the same
// (sender, target) reports created=false and returns the existing row.
type LikeStore interface {
	RecordLike(ctx context.Context, senderHandle string, target models.LikeTarget) (*models.Like, bool, error)
	GetLike(ctx context.Context, senderHandle, targetKey string) (*models.Like, error)
	ListLikesForTarget(ctx context.Context, targetKey string) ([]models.Like, error)
	RemoveLike(ctx context.Context, senderHandle, targetKey string) error
}

type LikeService struct {
	Dynamo *DynamoService
}

// RecordLike durably saves one like. The conditional put suppresses
// duplicates: re-liking the same target leaves exactly one row.
func (s *LikeService) RecordLike(ctx context.Context, senderHandle string, target models.LikeTarget) (*models.Like, bool, error) {
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

	created, err := s.Dynamo.PutItemIfAbsent(ctx, models.LikesTable, like, "attribute_not_exists(PK)")
	if err != nil {
		return nil, false, fmt.Errorf("failed to record like: %w", err)
	}
	if !created {
		existing, err := s.GetLike(ctx, senderHandle, target.Key())
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}
	return &like, true, nil
}

// GetLike fetches one like row; a missing row returns (nil, nil)
func (s *LikeService) GetLike(ctx context.Context, senderHandle, targetKey string) (*models.Like, error) {
	key := map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: models.UserKey(senderHandle)},
		"SK": &types.AttributeValueMemberS{Value: targetKey},
	}

	item, err := s.Dynamo.GetItem(ctx, models.LikesTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	var like models.Like
	if err := attributevalue.UnmarshalMap(item, &like); err != nil {
		return nil, fmt.Errorf("failed to unmarshal like: %w", err)
	}
	return &like, nil
}

// ListLikesForTarget fetches every like pointed at one target via the GSI
func (s *LikeService) ListLikesForTarget(ctx context.Context, targetKey string) ([]models.Like, error) {
	keyCondition := "targetKey = :target"
	expressionValues := map[string]types.AttributeValue{
		":target": &types.AttributeValueMemberS{Value: targetKey},
	}

	items, err := s.Dynamo.QueryItemsWithIndex(ctx, models.LikesTable, models.TargetKeyIndex, keyCondition, expressionValues, nil, 100)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch likes for target: %w", err)
	}

	var likes []models.Like
	if err := attributevalue.UnmarshalListOfMaps(items, &likes); err != nil {
		return nil, fmt.Errorf("failed to unmarshal likes: %w", err)
	}
	return likes, nil
}

// RemoveLike deletes a saved like (the "unsave" action)
func (s *LikeService) RemoveLike(ctx context.Context, senderHandle, targetKey string) error {
	key := map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: models.UserKey(senderHandle)},
		"SK": &types.AttributeValueMemberS{Value: targetKey},
	}
	return s.Dynamo.DeleteItem(ctx, models.LikesTable, key)
}
