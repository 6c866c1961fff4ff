package services

import (
	"context"
	"fmt"
	"sort"

	"affinity_server/models"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// NotificationService serves the admin notification inbox created by feedback
// and assistance ingestion.
type NotificationService struct {
	Store Store
}

// ListNotifications returns all admin notifications, newest first
func (ns *NotificationService) ListNotifications(ctx context.Context) ([]models.AdminNotification, error) {
	var notifications []models.AdminNotification
	if err := ns.Store.ScanAllItems(ctx, models.AdminNotificationsTable, &notifications); err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].Timestamp > notifications[j].Timestamp
	})
	return notifications, nil
}

// MarkRead flips one notification to read. Marking an already-read
// notification is a harmless repeat of the same write.
func (ns *NotificationService) MarkRead(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("notification id is required")
	}

	updateExpression := "SET #st = :read"
	_, err := ns.Store.UpdateItem(ctx, models.AdminNotificationsTable, updateExpression,
		map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		map[string]types.AttributeValue{
			":read": &types.AttributeValueMemberS{Value: models.NotificationRead},
		},
		map[string]string{"#st": "status"},
	)
	if err != nil {
		return fmt.Errorf("failed to mark notification '%s' read: %w", id, err)
	}
	return nil
}
