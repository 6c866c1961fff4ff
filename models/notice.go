package models

// Operator notice severities
const (
	SeveritySuccess = "success"
	SeverityError   = "error"
)

// OperatorNotice is a transient, in-memory note about an email dispatch
// attempt, shown on the operator dashboard. Never persisted.
type OperatorNotice struct {
	Message   string `json:"message"`
	Severity  string `json:"severity"`
	Timestamp string `json:"timestamp"`
}
