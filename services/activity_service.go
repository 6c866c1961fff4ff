package services

import (
	"context"
	"fmt"
	"time"

	"affinity_server/models"

	"github.com/google/uuid"
)

// ActivityService records customer events into per-category append-only logs
// and mirrors each one into the admin summary. Events for anonymous sessions
// (empty userId) are silently skipped, never persisted.
type ActivityService struct {
	Store   Store
	Summary *SummaryService
}

// RecordActivity appends one completed customer action. The log append and
// the summary merge are not atomic; the log is the source of truth.
func (as *ActivityService) RecordActivity(ctx context.Context, userID, email, action string, product *models.Product) error {
	if userID == "" {
		return nil
	}
	if err := product.Validate(); err != nil {
		return fmt.Errorf("invalid product: %w", err)
	}

	event := models.ActivityEvent{
		ID:        uuid.NewString(),
		UserID:    userID,
		Email:     email,
		Action:    action,
		Product:   product,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := as.Store.PutItem(ctx, models.CustomerActivityTable, event); err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}

	if err := as.Summary.Merge(ctx, models.SectionActivity, action); err != nil {
		return fmt.Errorf("failed to merge activity into summary: %w", err)
	}
	return nil
}

// RecordMissedAction appends one abandonment/hesitation signal
func (as *ActivityService) RecordMissedAction(ctx context.Context, userID, email, action, details string) error {
	if userID == "" {
		return nil
	}

	event := models.MissedActionEvent{
		ID:        uuid.NewString(),
		UserID:    userID,
		Email:     email,
		Action:    action,
		Details:   details,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := as.Store.PutItem(ctx, models.MissedActionsTable, event); err != nil {
		return fmt.Errorf("failed to record missed action: %w", err)
	}

	if err := as.Summary.Merge(ctx, models.SectionMissed, action); err != nil {
		return fmt.Errorf("failed to merge missed action into summary: %w", err)
	}
	return nil
}

// RecordSearch stores one search query and derives a "Search Performed"
// activity event carrying the query as the product name. The derivation is
// deliberate cross-category tracking, not a duplicate write.
func (as *ActivityService) RecordSearch(ctx context.Context, userID, email, query string) error {
	if userID == "" {
		return nil
	}

	record := models.SearchRecord{
		ID:        uuid.NewString(),
		UserID:    userID,
		Email:     email,
		Query:     query,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := as.Store.PutItem(ctx, models.SearchHistoryTable, record); err != nil {
		return fmt.Errorf("failed to record search: %w", err)
	}

	return as.RecordActivity(ctx, userID, email, models.ActionSearchPerformed, &models.Product{Name: query})
}
