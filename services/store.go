package services

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrItemNotFound is returned by point reads when no document matches the key.
var ErrItemNotFound = errors.New("item not found")

// Store is the document-store surface the engagement services depend on:
// append, merge-update (upsert), point-read and filtered multi-document read.
// DynamoService implements it against DynamoDB; tests substitute an in-memory
// fake.
type Store interface {
	// PutItem appends a document to a table.
	PutItem(ctx context.Context, tableName string, item interface{}) error

	// GetItem reads a single document by key, returning ErrItemNotFound when absent.
	GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error)

	// UpdateItem applies a merge-style update with upsert semantics and
	// returns the full post-update document.
	UpdateItem(ctx context.Context, tableName string, updateExpression string,
		key map[string]types.AttributeValue,
		expressionAttributeValues map[string]types.AttributeValue,
		expressionAttributeNames map[string]string) (map[string]types.AttributeValue, error)

	// QueryItemsWithIndex runs a filtered read against a GSI.
	QueryItemsWithIndex(ctx context.Context, tableName, indexName, keyConditionExpression string,
		expressionAttributeValues map[string]types.AttributeValue,
		expressionAttributeNames map[string]string,
		filterExpression string) ([]map[string]types.AttributeValue, error)

	// ScanAllItems reads a whole table into result (a pointer to a slice of structs).
	ScanAllItems(ctx context.Context, tableName string, result interface{}) error
}
