/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/modelstore/errors"
	"github.com/suparena/modelstore/kvstore"
)

// Store implements kvstore.Store on AWS DynamoDB using single-table records:
// one item per key, partitioned by namespace so several stores can share a
// table without colliding.
type Store struct {
	client    *sdk.Client
	tableName string
	namespace string
}

// record is the single-table item layout. PK carries the namespace, SK the
// store key, Value the opaque blob.
type record struct {
	PK        string `dynamodbav:"PK"`
	SK        string `dynamodbav:"SK"`
	Value     []byte `dynamodbav:"Value"`
	UpdatedAt string `dynamodbav:"UpdatedAt"`
}

// NewDynamoDBClient initializes a DynamoDB client using AWS credentials.
func NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return sdk.NewFromConfig(cfg), nil
}

// New constructs a DynamoDB-backed Store scoped to the given namespace.
func New(awsAccessKey, awsSecretKey, awsRegion, tableName, namespace string) (*Store, error) {
	client, err := NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	return NewWithClient(client, tableName, namespace)
}

// NewWithClient constructs a Store around an existing client, for callers
// that manage AWS configuration themselves.
func NewWithClient(client *sdk.Client, tableName, namespace string) (*Store, error) {
	if tableName == "" {
		return nil, errors.NewValidationError("tableName", "must not be empty")
	}
	if namespace == "" {
		return nil, errors.NewValidationError("namespace", "must not be empty")
	}
	return &Store{
		client:    client,
		tableName: tableName,
		namespace: namespace,
	}, nil
}

func (s *Store) partitionKey() string {
	return "KV#" + s.namespace
}

func (s *Store) itemKey(key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: s.partitionKey()},
		"SK": &types.AttributeValueMemberS{Value: key},
	}
}

// Get retrieves the blob stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &s.tableName,
		Key:       s.itemKey(key),
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, errors.NewNotFoundError(s.namespace, key)
	}

	var rec record
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}
	return rec.Value, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.NewValidationError("key", "must not be empty")
	}

	rec := record{
		PK:        s.partitionKey(),
		SK:        key,
		Value:     value,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	av, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	_, err = s.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &s.tableName,
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: &s.tableName,
		Key:       s.itemKey(key),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if stderrors.As(err, &cfe) {
			return fmt.Errorf("delete condition failed: %w", err)
		}
		return fmt.Errorf("failed to delete item in DynamoDB: %w", err)
	}
	return nil
}

// Keys lists stored keys with the given prefix in ascending key order.
func (s *Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	input := s.queryInput(prefix, nil)

	for {
		out, err := s.client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("Keys query error: %w", err)
		}
		for _, item := range out.Items {
			var rec record
			if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
				return nil, fmt.Errorf("failed to unmarshal record: %w", err)
			}
			keys = append(keys, rec.SK)
		}
		if out.LastEvaluatedKey == nil {
			return keys, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// Clear removes every key in this store's namespace.
func (s *Store) Clear(ctx context.Context) error {
	keys, err := s.Keys(ctx, "")
	if err != nil {
		return fmt.Errorf("failed to list keys for Clear: %w", err)
	}
	// Per-key deletes keep this simple; batching is worth it only for very
	// large namespaces.
	for _, key := range keys {
		if err := s.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) queryInput(prefix string, limit *int32) *sdk.QueryInput {
	keyCond := "PK = :pk"
	exprVals := map[string]types.AttributeValue{
		":pk": &types.AttributeValueMemberS{Value: s.partitionKey()},
	}
	if prefix != "" {
		keyCond += " AND begins_with(SK, :prefix)"
		exprVals[":prefix"] = &types.AttributeValueMemberS{Value: prefix}
	}
	return &sdk.QueryInput{
		TableName:                 &s.tableName,
		KeyConditionExpression:    &keyCond,
		ExpressionAttributeValues: exprVals,
		Limit:                     limit,
		ScanIndexForward:          aws.Bool(true),
	}
}

// Ensure Store implements kvstore.Store.
var _ kvstore.Store = (*Store)(nil)
