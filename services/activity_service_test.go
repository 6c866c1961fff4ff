package services

import (
	"context"
	"testing"

	"affinity_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/stretchr/testify/assert"
)

func newActivityService(store *fakeStore) *ActivityService {
	return &ActivityService{Store: store, Summary: &SummaryService{Store: store}}
}

func TestRecordActivitySkipsAnonymous(t *testing.T) {
	store := newFakeStore()
	svc := newActivityService(store)

	assert.NoError(t, svc.RecordActivity(context.Background(), "", "a@b.com", models.ActionBrowsing, nil))
	assert.NoError(t, svc.RecordMissedAction(context.Background(), "", "a@b.com", "Abandoned Cart", "left at checkout"))
	assert.NoError(t, svc.RecordSearch(context.Background(), "", "a@b.com", "headphones"))

	assert.Equal(t, 0, store.totalItems())
}

func TestRecordActivityWritesEventAndSummary(t *testing.T) {
	store := newFakeStore()
	svc := newActivityService(store)

	err := svc.RecordActivity(context.Background(), "u1", "a@b.com", models.ActionPurchased,
		&models.Product{ID: "p1", Name: "Keyboard", Price: 49.99})
	assert.NoError(t, err)

	assert.Equal(t, 1, store.count(models.CustomerActivityTable))
	var events []models.ActivityEvent
	assert.NoError(t, store.ScanAllItems(context.Background(), models.CustomerActivityTable, &events))
	assert.Equal(t, "u1", events[0].UserID)
	assert.Equal(t, models.ActionPurchased, events[0].Action)
	assert.Equal(t, "Keyboard", events[0].Product.Name)
	assert.NotEmpty(t, events[0].ID)
	assert.NotEmpty(t, events[0].Timestamp)

	summary := loadSummary(t, store)
	assert.Len(t, summary.LastCustomerActions, 1)
	assert.Equal(t, models.ActionPurchased, summary.LastCustomerActions[0].Value)
	assert.NotEmpty(t, summary.LastUpdated)
}

func TestRecordActivityRejectsInvalidProduct(t *testing.T) {
	store := newFakeStore()
	svc := newActivityService(store)

	err := svc.RecordActivity(context.Background(), "u1", "a@b.com", models.ActionAddedToCart,
		&models.Product{Price: 10})
	assert.Error(t, err)
	assert.Equal(t, 0, store.totalItems())
}

func TestRecordMissedActionWritesEventAndSummary(t *testing.T) {
	store := newFakeStore()
	svc := newActivityService(store)

	err := svc.RecordMissedAction(context.Background(), "u1", "a@b.com", "Abandoned Cart", "left at checkout")
	assert.NoError(t, err)

	assert.Equal(t, 1, store.count(models.MissedActionsTable))
	var events []models.MissedActionEvent
	assert.NoError(t, store.ScanAllItems(context.Background(), models.MissedActionsTable, &events))
	assert.Equal(t, "left at checkout", events[0].Details)

	summary := loadSummary(t, store)
	assert.Len(t, summary.MissedActions, 1)
	assert.Equal(t, "Abandoned Cart", summary.MissedActions[0].Value)
}

func TestRecordSearchDerivesActivityEvent(t *testing.T) {
	store := newFakeStore()
	svc := newActivityService(store)

	err := svc.RecordSearch(context.Background(), "u1", "a@b.com", "wireless mouse")
	assert.NoError(t, err)

	assert.Equal(t, 1, store.count(models.SearchHistoryTable))
	var searches []models.SearchRecord
	assert.NoError(t, store.ScanAllItems(context.Background(), models.SearchHistoryTable, &searches))
	assert.Equal(t, "wireless mouse", searches[0].Query)

	assert.Equal(t, 1, store.count(models.CustomerActivityTable))
	var events []models.ActivityEvent
	assert.NoError(t, store.ScanAllItems(context.Background(), models.CustomerActivityTable, &events))
	assert.Equal(t, models.ActionSearchPerformed, events[0].Action)
	assert.Equal(t, "wireless mouse", events[0].Product.Name)

	summary := loadSummary(t, store)
	assert.Len(t, summary.LastCustomerActions, 1)
	assert.Equal(t, models.ActionSearchPerformed, summary.LastCustomerActions[0].Value)
}

func loadSummary(t *testing.T, store *fakeStore) *models.AdminSummary {
	t.Helper()
	item, err := store.GetItem(context.Background(), models.AdminDashboardTable, summaryKey())
	assert.NoError(t, err)
	var summary models.AdminSummary
	assert.NoError(t, attributevalue.UnmarshalMap(item, &summary))
	return &summary
}
