/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/modelstore/kvstore"
)

// Stream performs a paged query over the namespace, yielding entries with the
// given prefix in ascending key order.
func (s *Store) Stream(ctx context.Context, prefix string, opts ...kvstore.StreamOption) <-chan kvstore.StreamResult {
	options := kvstore.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}

	resultCh := make(chan kvstore.StreamResult, options.BufferSize)

	go s.streamWorker(ctx, prefix, options, resultCh)

	return resultCh
}

// streamWorker handles the actual paging loop.
func (s *Store) streamWorker(
	ctx context.Context,
	prefix string,
	options kvstore.StreamOptions,
	resultCh chan<- kvstore.StreamResult,
) {
	defer close(resultCh)

	input := s.queryInput(prefix, aws.Int32(options.PageSize))

	var index int64
	var pageNumber int
	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if lastEvaluatedKey != nil {
			input.ExclusiveStartKey = lastEvaluatedKey
		}

		out, err := s.queryWithRetry(ctx, input, options)
		if err != nil {
			resultCh <- kvstore.StreamResult{
				Error: fmt.Errorf("query failed after retries: %w", err),
				Meta: kvstore.StreamMeta{
					Index:      index,
					PageNumber: pageNumber,
					Timestamp:  time.Now(),
				},
			}
			return
		}

		pageNumber++

		for _, item := range out.Items {
			var rec record
			result := kvstore.StreamResult{
				Meta: kvstore.StreamMeta{
					Index:      index,
					PageNumber: pageNumber,
					Timestamp:  time.Now(),
				},
			}
			if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
				result.Error = fmt.Errorf("failed to unmarshal record: %w", err)
			} else {
				result.Key = rec.SK
				result.Value = rec.Value
			}

			select {
			case resultCh <- result:
				index++
			case <-ctx.Done():
				return
			}
		}

		if out.LastEvaluatedKey == nil {
			return
		}
		lastEvaluatedKey = out.LastEvaluatedKey
	}
}

// queryWithRetry executes a query with simple backoff for transient errors.
func (s *Store) queryWithRetry(
	ctx context.Context,
	input *sdk.QueryInput,
	options kvstore.StreamOptions,
) (*sdk.QueryOutput, error) {
	var lastErr error

	for attempt := 0; attempt <= options.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(options.RetryBackoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		out, err := s.client.Query(ctx, input)
		if err == nil {
			return out, nil
		}
		lastErr = err
	}

	return nil, lastErr
}
