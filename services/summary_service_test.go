package services

import (
	"context"
	"fmt"
	"testing"

	"affinity_server/models"

	"github.com/stretchr/testify/assert"
)

func TestMergeCreatesDocumentOnFirstWrite(t *testing.T) {
	store := newFakeStore()
	svc := &SummaryService{Store: store}

	err := svc.Merge(context.Background(), models.SectionActivity, models.ActionBrowsing)
	assert.NoError(t, err)

	summary, err := svc.Load(context.Background())
	assert.NoError(t, err)
	assert.Len(t, summary.LastCustomerActions, 1)
	assert.Equal(t, models.ActionBrowsing, summary.LastCustomerActions[0].Value)
	assert.NotEmpty(t, summary.LastCustomerActions[0].Seq)
	assert.NotEmpty(t, summary.LastUpdated)
}

func TestMergePreservesOtherSections(t *testing.T) {
	store := newFakeStore()
	svc := &SummaryService{Store: store}

	assert.NoError(t, svc.Merge(context.Background(), models.SectionActivity, models.ActionWishlist))
	assert.NoError(t, svc.Merge(context.Background(), models.SectionFeedback, "slow shipping"))
	assert.NoError(t, svc.Merge(context.Background(), models.SectionAssistance, "missing invoice"))

	summary, err := svc.Load(context.Background())
	assert.NoError(t, err)
	assert.Len(t, summary.LastCustomerActions, 1)
	assert.Len(t, summary.CustomerFeedback, 1)
	assert.Len(t, summary.AssistanceRequests, 1)
	assert.Equal(t, "slow shipping", summary.CustomerFeedback[0].Value)
}

func TestMergeAppendsInOrder(t *testing.T) {
	store := newFakeStore()
	svc := &SummaryService{Store: store}

	for i := 0; i < 5; i++ {
		assert.NoError(t, svc.Merge(context.Background(), models.SectionActivity, fmt.Sprintf("v%d", i)))
	}

	summary, err := svc.Load(context.Background())
	assert.NoError(t, err)
	assert.Len(t, summary.LastCustomerActions, 5)
	for i, entry := range summary.LastCustomerActions {
		assert.Equal(t, fmt.Sprintf("v%d", i), entry.Value)
	}
}

func TestLastUpdatedMonotonic(t *testing.T) {
	store := newFakeStore()
	svc := &SummaryService{Store: store}

	previous := ""
	for i := 0; i < 10; i++ {
		assert.NoError(t, svc.Merge(context.Background(), models.SectionMissed, fmt.Sprintf("v%d", i)))
		summary, err := svc.Load(context.Background())
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, summary.LastUpdated, previous)
		previous = summary.LastUpdated
	}
}

func TestSectionBoundedToNewestEntries(t *testing.T) {
	store := newFakeStore()
	svc := &SummaryService{Store: store}

	for i := 0; i < 55; i++ {
		assert.NoError(t, svc.Merge(context.Background(), models.SectionActivity, fmt.Sprintf("v%d", i)))
	}

	summary, err := svc.Load(context.Background())
	assert.NoError(t, err)
	assert.Len(t, summary.LastCustomerActions, maxSummaryEntries)
	assert.Equal(t, "v5", summary.LastCustomerActions[0].Value)
	assert.Equal(t, "v54", summary.LastCustomerActions[maxSummaryEntries-1].Value)
}

func TestLoadAbsentSummary(t *testing.T) {
	store := newFakeStore()
	svc := &SummaryService{Store: store}

	summary, err := svc.Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, models.SummaryDocID, summary.ID)
	assert.Empty(t, summary.LastCustomerActions)
}
