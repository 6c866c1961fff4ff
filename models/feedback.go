package models

// Feedback types
const (
	FeedbackTypeReview    = "review"
	FeedbackTypeComplaint = "complaint"
)

// FeedbackItem is a customer review or complaint. Written once, read many
// times by the reactive pipeline; the sentiment score is derived on read and
// never stored.
type FeedbackItem struct {
	ID        string   `dynamodbav:"id" json:"id"`
	UserID    string   `dynamodbav:"userId" json:"userId"`
	Email     string   `dynamodbav:"email" json:"email"`
	Type      string   `dynamodbav:"type" json:"type"`
	Message   string   `dynamodbav:"message" json:"message"`
	Product   *Product `dynamodbav:"product,omitempty" json:"product,omitempty"`
	Timestamp string   `dynamodbav:"timestamp" json:"timestamp"`
}

// AssistanceRequest is a customer support request. Created with status
// Pending; the Pending -> Resolved transition belongs to operator tooling.
type AssistanceRequest struct {
	ID        string `dynamodbav:"id" json:"id"`
	UserID    string `dynamodbav:"userId" json:"userId"`
	Email     string `dynamodbav:"email" json:"email"`
	Issue     string `dynamodbav:"issue" json:"issue"`
	Timestamp string `dynamodbav:"timestamp" json:"timestamp"`
	Status    string `dynamodbav:"status" json:"status"`
}

// AdminNotification is created as a side effect of feedback and assistance
// ingestion and consumed from the operator dashboard.
type AdminNotification struct {
	ID        string `dynamodbav:"id" json:"id"`
	Message   string `dynamodbav:"message" json:"message"`
	Timestamp string `dynamodbav:"timestamp" json:"timestamp"`
	Status    string `dynamodbav:"status" json:"status"`
}
