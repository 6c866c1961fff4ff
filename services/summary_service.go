package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"affinity_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// maxSummaryEntries bounds each summary section to the newest entries
const maxSummaryEntries = 50

// SummaryService folds recorder output into the shared AdminSummary document.
// Merges are list_append upserts, so concurrent writers never clobber each
// other's sections and the first write creates the document.
type SummaryService struct {
	Store Store
}

func summaryKey() map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: models.SummaryDocID},
	}
}

// Merge appends a new entry to the addressed section and bumps lastUpdated.
// Fields outside the section are preserved.
func (ss *SummaryService) Merge(ctx context.Context, section, value string) error {
	entry := models.SummaryEntry{
		Seq:       uuid.NewString(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Value:     value,
	}
	entryAttr, err := attributevalue.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal summary entry: %w", err)
	}

	updateExpression := "SET #s = list_append(if_not_exists(#s, :empty), :entry), lastUpdated = :updated"
	attrs, err := ss.Store.UpdateItem(ctx, models.AdminDashboardTable, updateExpression,
		summaryKey(),
		map[string]types.AttributeValue{
			":empty":   &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":entry":   &types.AttributeValueMemberL{Value: []types.AttributeValue{entryAttr}},
			":updated": &types.AttributeValueMemberS{Value: entry.Timestamp},
		},
		map[string]string{"#s": section},
	)
	if err != nil {
		return fmt.Errorf("failed to merge summary section '%s': %w", section, err)
	}

	return ss.trimSection(ctx, section, attrs)
}

// trimSection drops the oldest entries once a section grows past the bound.
// The trim is a second last-writer-wins merge; losing a race here only leaves
// a section slightly over the bound until the next merge.
func (ss *SummaryService) trimSection(ctx context.Context, section string, attrs map[string]types.AttributeValue) error {
	listAttr, ok := attrs[section].(*types.AttributeValueMemberL)
	if !ok || len(listAttr.Value) <= maxSummaryEntries {
		return nil
	}

	trimmed := listAttr.Value[len(listAttr.Value)-maxSummaryEntries:]
	updateExpression := "SET #s = :trimmed, lastUpdated = :updated"
	_, err := ss.Store.UpdateItem(ctx, models.AdminDashboardTable, updateExpression,
		summaryKey(),
		map[string]types.AttributeValue{
			":trimmed": &types.AttributeValueMemberL{Value: trimmed},
			":updated": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
		},
		map[string]string{"#s": section},
	)
	if err != nil {
		return fmt.Errorf("failed to trim summary section '%s': %w", section, err)
	}
	return nil
}

// Load reads the current summary document. An absent document yields an empty
// summary, not an error.
func (ss *SummaryService) Load(ctx context.Context) (*models.AdminSummary, error) {
	item, err := ss.Store.GetItem(ctx, models.AdminDashboardTable, summaryKey())
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return &models.AdminSummary{ID: models.SummaryDocID}, nil
		}
		return nil, fmt.Errorf("failed to load summary: %w", err)
	}

	var summary models.AdminSummary
	if err := attributevalue.UnmarshalMap(item, &summary); err != nil {
		return nil, fmt.Errorf("failed to parse summary: %w", err)
	}
	return &summary, nil
}
