package models

// AdminSummary sections
const (
	SectionActivity   = "lastCustomerActions"
	SectionMissed     = "missedActions"
	SectionFeedback   = "customerFeedback"
	SectionAssistance = "assistanceRequests"
)

// SummaryDocID is the fixed key of the shared summary document
const SummaryDocID = "leads"

// SummaryEntry is one appended summary line. The generated sequence id keeps
// entries unique even when several writers land in the same instant.
type SummaryEntry struct {
	Seq       string `dynamodbav:"seq" json:"seq"`
	Timestamp string `dynamodbav:"timestamp" json:"timestamp"`
	Value     string `dynamodbav:"value" json:"value"`
}

// AdminSummary is the single shared aggregate document read by the operator
// dashboard. Each section is an append-only list bounded to the newest
// entries; merges preserve every field they do not address.
type AdminSummary struct {
	ID                  string         `dynamodbav:"id" json:"id"`
	LastCustomerActions []SummaryEntry `dynamodbav:"lastCustomerActions,omitempty" json:"lastCustomerActions,omitempty"`
	MissedActions       []SummaryEntry `dynamodbav:"missedActions,omitempty" json:"missedActions,omitempty"`
	CustomerFeedback    []SummaryEntry `dynamodbav:"customerFeedback,omitempty" json:"customerFeedback,omitempty"`
	AssistanceRequests  []SummaryEntry `dynamodbav:"assistanceRequests,omitempty" json:"assistanceRequests,omitempty"`
	LastUpdated         string         `dynamodbav:"lastUpdated" json:"lastUpdated"`
}
