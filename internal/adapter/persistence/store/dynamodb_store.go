package store

import (
	"context"
	"encoding/json"
	"time"

	"paulocell_pdv/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultCollectionsTable = "collections"

type collectionItem struct {
	Key       string `dynamodbav:"key"`
	Value     string `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DynamoDBClient is the subset of *dynamodb.Client the store calls.
type DynamoDBClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

// DynamoDBStore keeps one item per collection key.
//
// Table requirements:
//   - PK: key (string)
type DynamoDBStore struct {
	ddb       DynamoDBClient
	tableName string
}

var _ interfaces.ICollectionStore = (*DynamoDBStore)(nil)

func NewDynamoDBStore(ddb DynamoDBClient, tableName string) *DynamoDBStore {
	if tableName == "" {
		tableName = DefaultCollectionsTable
	}
	return &DynamoDBStore{ddb: ddb, tableName: tableName}
}

func (s *DynamoDBStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it collectionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return json.RawMessage(it.Value), nil
}

func (s *DynamoDBStore) Put(ctx context.Context, key string, value json.RawMessage) error {
	av, err := attributevalue.MarshalMap(collectionItem{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}
