package services

import (
	"context"
	"fmt"
	"time"

	"sparq_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ProfileDirectory resolves user handles to profiles. The matching engine
// and the notification publisher consume it.
type ProfileDirectory interface {
	GetUserProfile(ctx context.Context, userHandle string) (*models.UserProfile, error)
}

type UserProfileService struct {
	Dynamo *DynamoService
}

// AddUserProfile adds a new user profile to DynamoDB
func (ups *UserProfileService) AddUserProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	if profile.CreatedAt == "" {
		profile.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	if err := ups.Dynamo.PutItem(ctx, models.UserProfilesTable, profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetUserProfile retrieves a user profile by handle
func (ups *UserProfileService) GetUserProfile(ctx context.Context, userHandle string) (*models.UserProfile, error) {
	key := map[string]types.AttributeValue{
		"userHandle": &types.AttributeValueMemberS{Value: userHandle},
	}

	item, err := ups.Dynamo.GetItem(ctx, models.UserProfilesTable, key)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, userHandle)
	}

	var profile models.UserProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// DeleteUserProfile removes a user profile
func (ups *UserProfileService) DeleteUserProfile(ctx context.Context, userHandle string) error {
	key := map[string]types.AttributeValue{
		"userHandle": &types.AttributeValueMemberS{Value: userHandle},
	}
	return ups.Dynamo.DeleteItem(ctx, models.UserProfilesTable, key)
}
