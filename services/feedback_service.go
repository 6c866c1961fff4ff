package services

import (
	"context"
	"fmt"
	"time"

	"affinity_server/models"

	"github.com/google/uuid"
)

// FeedbackService ingests customer feedback and assistance requests. Each
// submission writes the primary record, an unread admin notification and a
// summary merge. Submissions without a userId are silently skipped.
type FeedbackService struct {
	Store   Store
	Summary *SummaryService
}

// SubmitFeedback stores a review or complaint
func (fs *FeedbackService) SubmitFeedback(ctx context.Context, userID, email, feedbackType, message string, product *models.Product) error {
	if userID == "" {
		return nil
	}
	if feedbackType != models.FeedbackTypeReview && feedbackType != models.FeedbackTypeComplaint {
		return fmt.Errorf("invalid feedback type '%s'", feedbackType)
	}
	if err := product.Validate(); err != nil {
		return fmt.Errorf("invalid product: %w", err)
	}

	item := models.FeedbackItem{
		ID:        uuid.NewString(),
		UserID:    userID,
		Email:     email,
		Type:      feedbackType,
		Message:   message,
		Product:   product,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := fs.Store.PutItem(ctx, models.CustomerFeedbackTable, item); err != nil {
		return fmt.Errorf("failed to store feedback: %w", err)
	}

	if err := fs.notifyAdmin(ctx, fmt.Sprintf("New %s from %s", feedbackType, email)); err != nil {
		return err
	}
	if err := fs.Summary.Merge(ctx, models.SectionFeedback, message); err != nil {
		return fmt.Errorf("failed to merge feedback into summary: %w", err)
	}
	return nil
}

// RequestAssistance stores a support request with status Pending. The
// Pending -> Resolved transition is owned by operator tooling, not this API.
func (fs *FeedbackService) RequestAssistance(ctx context.Context, userID, email, issue string) error {
	if userID == "" {
		return nil
	}

	request := models.AssistanceRequest{
		ID:        uuid.NewString(),
		UserID:    userID,
		Email:     email,
		Issue:     issue,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    models.AssistancePending,
	}
	if err := fs.Store.PutItem(ctx, models.AssistanceRequestsTable, request); err != nil {
		return fmt.Errorf("failed to store assistance request: %w", err)
	}

	if err := fs.notifyAdmin(ctx, fmt.Sprintf("Assistance requested by %s", email)); err != nil {
		return err
	}
	if err := fs.Summary.Merge(ctx, models.SectionAssistance, issue); err != nil {
		return fmt.Errorf("failed to merge assistance request into summary: %w", err)
	}
	return nil
}

func (fs *FeedbackService) notifyAdmin(ctx context.Context, message string) error {
	notification := models.AdminNotification{
		ID:        uuid.NewString(),
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    models.NotificationUnread,
	}
	if err := fs.Store.PutItem(ctx, models.AdminNotificationsTable, notification); err != nil {
		return fmt.Errorf("failed to store admin notification: %w", err)
	}
	return nil
}
