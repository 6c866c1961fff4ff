package models

import "errors"

// Product is the fixed product reference carried by activity events and feedback
type Product struct {
	ID    string  `dynamodbav:"id,omitempty" json:"id,omitempty"`
	Name  string  `dynamodbav:"name" json:"name"`
	Price float64 `dynamodbav:"price,omitempty" json:"price,omitempty"`
}

// Validate checks the product reference at the ingestion boundary. A nil
// product is fine (not every action touches a product).
func (p *Product) Validate() error {
	if p == nil {
		return nil
	}
	if p.Name == "" {
		return errors.New("product name is required")
	}
	if p.Price < 0 {
		return errors.New("product price cannot be negative")
	}
	return nil
}

// ActivityEvent is one completed customer action. Append-only, never updated.
type ActivityEvent struct {
	ID        string   `dynamodbav:"id" json:"id"`
	UserID    string   `dynamodbav:"userId" json:"userId"`
	Email     string   `dynamodbav:"email" json:"email"`
	Action    string   `dynamodbav:"action" json:"action"`
	Product   *Product `dynamodbav:"product,omitempty" json:"product,omitempty"`
	Timestamp string   `dynamodbav:"timestamp" json:"timestamp"`
}

// MissedActionEvent records an abandonment or hesitation signal (abandoned
// cart, repeated views). Same lifecycle as ActivityEvent, separate log.
type MissedActionEvent struct {
	ID        string `dynamodbav:"id" json:"id"`
	UserID    string `dynamodbav:"userId" json:"userId"`
	Email     string `dynamodbav:"email" json:"email"`
	Action    string `dynamodbav:"action" json:"action"`
	Details   string `dynamodbav:"details,omitempty" json:"details,omitempty"`
	Timestamp string `dynamodbav:"timestamp" json:"timestamp"`
}

// SearchRecord is one stored search query. Recording one also derives an
// ActivityEvent with action "Search Performed".
type SearchRecord struct {
	ID        string `dynamodbav:"id" json:"id"`
	UserID    string `dynamodbav:"userId" json:"userId"`
	Email     string `dynamodbav:"email" json:"email"`
	Query     string `dynamodbav:"query" json:"query"`
	Timestamp string `dynamodbav:"timestamp" json:"timestamp"`
}
