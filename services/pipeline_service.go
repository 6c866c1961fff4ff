package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"affinity_server/models"
)

// apologyThreshold: an apology fires only for scores strictly below it. A
// message scoring exactly -2 does not fire.
const apologyThreshold = -2

// maxNotices bounds the transient dispatch-notice list
const maxNotices = 20

const (
	apologySubject        = "We sincerely apologize for your experience"
	acknowledgmentSubject = "Regarding your issue/complaint"
)

// PipelineService is the reactive half of feedback and assistance handling.
// Driven by subscription deliveries, it scores each feedback item and
// dispatches apology emails for strongly negative ones, and acknowledges
// every assistance request. Because each delivery carries the full current
// set, a processed-set keyed by document id guards every item to at most one
// dispatch attempt across re-deliveries.
type PipelineService struct {
	Feed  SubscriptionFeed
	Email EmailSender

	mu        sync.Mutex
	processed map[string]struct{}
	notices   []models.OperatorNotice
}

// NewPipelineService creates a pipeline over the given feed and sender
func NewPipelineService(feed SubscriptionFeed, email EmailSender) *PipelineService {
	return &PipelineService{
		Feed:      feed,
		Email:     email,
		processed: make(map[string]struct{}),
	}
}

// Start launches the two reactive loops. They exit when ctx is canceled and
// their subscription channels close.
func (ps *PipelineService) Start(ctx context.Context) {
	go func() {
		for items := range ps.Feed.SubscribeFeedback(ctx) {
			ps.processFeedback(ctx, items)
		}
	}()
	go func() {
		for requests := range ps.Feed.SubscribeAssistance(ctx) {
			ps.processAssistance(ctx, requests)
		}
	}()
}

func (ps *PipelineService) processFeedback(ctx context.Context, items []models.FeedbackItem) {
	for _, item := range items {
		if !ps.markProcessed("feedback/" + item.ID) {
			continue
		}
		if ScoreSentiment(item.Message) >= apologyThreshold {
			continue
		}
		ps.dispatch(ctx, item.Email, apologySubject, apologyBody(item.Email, item.Message))
	}
}

func (ps *PipelineService) processAssistance(ctx context.Context, requests []models.AssistanceRequest) {
	for _, request := range requests {
		if !ps.markProcessed("assistance/" + request.ID) {
			continue
		}
		ps.dispatch(ctx, request.Email, acknowledgmentSubject, acknowledgmentBody(request.Issue))
	}
}

// markProcessed claims an item for processing. Returns false if it was
// already claimed by an earlier delivery.
func (ps *PipelineService) markProcessed(id string) bool {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if _, seen := ps.processed[id]; seen {
		return false
	}
	ps.processed[id] = struct{}{}
	return true
}

// dispatch makes exactly one send attempt. Failures are logged and surfaced
// as a transient operator notice, never retried and never fatal.
func (ps *PipelineService) dispatch(ctx context.Context, email, subject, body string) {
	if err := ps.Email.Send(ctx, email, subject, body); err != nil {
		log.Printf("❌ Error sending email to %s: %v", email, err)
		ps.recordNotice(fmt.Sprintf("Failed to send email to %s", email), models.SeverityError)
		return
	}
	log.Printf("📧 Email sent to %s", email)
	ps.recordNotice(fmt.Sprintf("Email sent successfully to %s", email), models.SeveritySuccess)
}

func (ps *PipelineService) recordNotice(message, severity string) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.notices = append(ps.notices, models.OperatorNotice{
		Message:   message,
		Severity:  severity,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if len(ps.notices) > maxNotices {
		ps.notices = ps.notices[len(ps.notices)-maxNotices:]
	}
}

// Notices returns a copy of the recent dispatch notices, newest last
func (ps *PipelineService) Notices() []models.OperatorNotice {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	notices := make([]models.OperatorNotice, len(ps.notices))
	copy(notices, ps.notices)
	return notices
}

func apologyBody(email, message string) string {
	return fmt.Sprintf("Dear %s,\n\nWe have received your feedback:\n\"%s\"\n\nWe are deeply sorry for the inconvenience caused. As a token of our apology and appreciation for your patience, we are offering you a VIP discount code for your next purchase.\n\nThank you for bringing this to our attention.\n\nBest regards,\nAffinityCRM Team", email, message)
}

func acknowledgmentBody(issue string) string {
	return fmt.Sprintf("Dear Customer,\n\nWe have received your issue:\n\"%s\"\n\nOur team will get back to you shortly. Thank you for your patience.\n\nBest regards,\nAffinityCRM Team", issue)
}
