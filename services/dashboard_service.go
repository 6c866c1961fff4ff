package services

import (
	"context"
	"sync"

	"affinity_server/models"
)

// Broadcaster pushes a rebuilt projection to connected dashboard clients.
// Implemented by the socket package; nil disables pushing.
type Broadcaster interface {
	BroadcastToDashboard(event string, payload interface{})
}

// DashboardService maintains the operator dashboard's in-memory projections.
// Each subscription delivery fully replaces its projection — no incremental
// patching — so a restart loses nothing but the projections themselves.
type DashboardService struct {
	Feed      SubscriptionFeed
	Broadcast Broadcaster

	mu         sync.RWMutex
	activity   []models.ActivityEvent
	feedback   []models.FeedbackItem
	assistance []models.AssistanceRequest
}

// NewDashboardService creates a dashboard view over the given feed
func NewDashboardService(feed SubscriptionFeed, broadcast Broadcaster) *DashboardService {
	return &DashboardService{Feed: feed, Broadcast: broadcast}
}

// Start launches the three projection loops. The three subscriptions are
// causally independent; no cross-stream ordering is assumed.
func (ds *DashboardService) Start(ctx context.Context) {
	go func() {
		for events := range ds.Feed.SubscribeActivity(ctx) {
			ds.mu.Lock()
			ds.activity = events
			ds.mu.Unlock()
			ds.push("activity", events)
		}
	}()
	go func() {
		for items := range ds.Feed.SubscribeFeedback(ctx) {
			ds.mu.Lock()
			ds.feedback = items
			ds.mu.Unlock()
			ds.push("feedback", items)
		}
	}()
	go func() {
		for requests := range ds.Feed.SubscribeAssistance(ctx) {
			ds.mu.Lock()
			ds.assistance = requests
			ds.mu.Unlock()
			ds.push("assistance", requests)
		}
	}()
}

func (ds *DashboardService) push(event string, payload interface{}) {
	if ds.Broadcast != nil {
		ds.Broadcast.BroadcastToDashboard(event, payload)
	}
}

// ActivitySnapshot returns a copy of the current activity projection
func (ds *DashboardService) ActivitySnapshot() []models.ActivityEvent {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	events := make([]models.ActivityEvent, len(ds.activity))
	copy(events, ds.activity)
	return events
}

// FeedbackSnapshot returns a copy of the current feedback projection
func (ds *DashboardService) FeedbackSnapshot() []models.FeedbackItem {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	items := make([]models.FeedbackItem, len(ds.feedback))
	copy(items, ds.feedback)
	return items
}

// AssistanceSnapshot returns a copy of the current assistance projection
func (ds *DashboardService) AssistanceSnapshot() []models.AssistanceRequest {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	requests := make([]models.AssistanceRequest, len(ds.assistance))
	copy(requests, ds.assistance)
	return requests
}

// ActivityBreakdown derives the per-category action counts from the current
// activity projection. The four presentation categories are always present.
func (ds *DashboardService) ActivityBreakdown() map[string]int {
	breakdown := map[string]int{
		models.ActionBrowsing:    0,
		models.ActionAddedToCart: 0,
		models.ActionPurchased:   0,
		models.ActionWishlist:    0,
	}

	ds.mu.RLock()
	defer ds.mu.RUnlock()
	for _, event := range ds.activity {
		breakdown[event.Action]++
	}
	return breakdown
}
