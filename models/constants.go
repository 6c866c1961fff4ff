package models

// DynamoDB table names
const (
	CustomerActivityTable   = "customer_activity"
	MissedActionsTable      = "missed_actions"
	SearchHistoryTable      = "search_history"
	CustomerFeedbackTable   = "customer_feedback"
	AssistanceRequestsTable = "assistance_requests"
	AdminNotificationsTable = "admin_notifications"
	AdminDashboardTable     = "admin_dashboard"
	UsersTable              = "users"
)

// UserIndexName is the GSI on userId shared by the per-user event tables
const UserIndexName = "userId-index"

// Customer action types
const (
	ActionBrowsing        = "Browsing"
	ActionAddedToCart     = "Added to Cart"
	ActionPurchased       = "Purchased"
	ActionWishlist        = "Wishlist"
	ActionSearchPerformed = "Search Performed"
)

// Assistance request statuses
const (
	AssistancePending  = "Pending"
	AssistanceResolved = "Resolved"
)

// Admin notification statuses
const (
	NotificationUnread = "unread"
	NotificationRead   = "read"
)
