package services

import (
	"context"
	"errors"
	"fmt"

	"affinity_server/models"
	"affinity_server/utils"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ErrUserNotFound is returned when a uid has no stored role
var ErrUserNotFound = errors.New("user not found")

// UserService persists the (uid, role, email) binding from the identity
// provider. Roles are a closed set, validated before any write.
type UserService struct {
	Store Store
}

func userKey(uid string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"uid": &types.AttributeValueMemberS{Value: uid},
	}
}

// SaveUserRole upserts the role binding. Idempotent: repeating the same call
// leaves the record unchanged.
func (us *UserService) SaveUserRole(ctx context.Context, uid string, role models.Role, email string) error {
	if uid == "" {
		return errors.New("uid is required")
	}
	if !role.Valid() {
		return fmt.Errorf("invalid role '%s'", role)
	}

	updateExpression := "SET #r = :role, email = :email"
	_, err := us.Store.UpdateItem(ctx, models.UsersTable, updateExpression,
		userKey(uid),
		map[string]types.AttributeValue{
			":role":  &types.AttributeValueMemberS{Value: string(role)},
			":email": &types.AttributeValueMemberS{Value: email},
		},
		map[string]string{"#r": "role"},
	)
	if err != nil {
		return fmt.Errorf("failed to save role for '%s': %w", uid, err)
	}
	return nil
}

// GetUserRole looks up the stored role for a uid
func (us *UserService) GetUserRole(ctx context.Context, uid string) (models.Role, error) {
	item, err := us.Store.GetItem(ctx, models.UsersTable, userKey(uid))
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("failed to get role for '%s': %w", uid, err)
	}

	return models.Role(utils.ExtractString(item, "role")), nil
}
