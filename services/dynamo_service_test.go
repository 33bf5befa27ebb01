package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"sparq_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamoClient serves queries from pre-built pages, chaining them via
// LastEvaluatedKey the way DynamoDB does.
type fakeDynamoClient struct {
	pages   [][]map[string]types.AttributeValue
	queries []*dynamodb.QueryInput
	putErr  error
}

func (c *fakeDynamoClient) Query(_ context.Context, params *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	snapshot := *params
	c.queries = append(c.queries, &snapshot)

	page := len(c.queries) - 1
	if page >= len(c.pages) {
		return &dynamodb.QueryOutput{}, nil
	}
	output := &dynamodb.QueryOutput{Items: c.pages[page]}
	if page < len(c.pages)-1 {
		output.LastEvaluatedKey = map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: fmt.Sprintf("cursor-%d", page)},
		}
	}
	return output, nil
}

func (c *fakeDynamoClient) PutItem(_ context.Context, _ *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if c.putErr != nil {
		return nil, c.putErr
	}
	return &dynamodb.PutItemOutput{}, nil
}

func (c *fakeDynamoClient) GetItem(_ context.Context, _ *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{}, nil
}

func (c *fakeDynamoClient) DeleteItem(_ context.Context, _ *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	return &dynamodb.DeleteItemOutput{}, nil
}

func marshaledLikes(t *testing.T, count, offset int) []map[string]types.AttributeValue {
	t.Helper()
	items := make([]map[string]types.AttributeValue, 0, count)
	for i := 0; i < count; i++ {
		handle := fmt.Sprintf("user-%d", offset+i)
		item, err := attributevalue.MarshalMap(models.Like{
			PK:           models.UserKey(handle),
			SK:           models.CardTargetKey("c1"),
			SenderHandle: handle,
			CardID:       "c1",
			TargetKey:    models.CardTargetKey("c1"),
		})
		require.NoError(t, err)
		items = append(items, item)
	}
	return items
}

func TestListLikesForTarget_FollowsAllPages(t *testing.T) {
	ctx := context.Background()
	client := &fakeDynamoClient{pages: [][]map[string]types.AttributeValue{
		marshaledLikes(t, 100, 0),
		marshaledLikes(t, 50, 100),
	}}
	likeService := &LikeService{Dynamo: &DynamoService{Client: client}}

	likes, err := likeService.ListLikesForTarget(ctx, models.CardTargetKey("c1"))
	require.NoError(t, err)
	assert.Len(t, likes, 150)

	require.Len(t, client.queries, 2)
	assert.Nil(t, client.queries[0].ExclusiveStartKey)
	require.NotNil(t, client.queries[1].ExclusiveStartKey)
	cursor := client.queries[1].ExclusiveStartKey["PK"].(*types.AttributeValueMemberS)
	assert.Equal(t, "cursor-0", cursor.Value)
}

func TestPutItemIfAbsent_ConditionFailureIsNotAnError(t *testing.T) {
	ctx := context.Background()
	client := &fakeDynamoClient{putErr: &types.ConditionalCheckFailedException{}}
	service := &DynamoService{Client: client}

	created, err := service.PutItemIfAbsent(ctx, models.LikesTable, models.Like{PK: "USER#alice"}, "attribute_not_exists(PK)")
	require.NoError(t, err)
	assert.False(t, created)

	client.putErr = errors.New("throttled")
	_, err = service.PutItemIfAbsent(ctx, models.LikesTable, models.Like{PK: "USER#alice"}, "attribute_not_exists(PK)")
	assert.Error(t, err)
}
