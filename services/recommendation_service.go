package services

import (
	"context"
	"fmt"

	"affinity_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"golang.org/x/sync/errgroup"
)

// maxRecommendations caps the suggestion list
const maxRecommendations = 5

// RecommendationService assembles ranked suggestions from a user's history:
// purchases first, then cart intent, then raw search terms.
type RecommendationService struct {
	Store Store
}

// GetRecommendations issues three concurrent filtered reads and joins them.
// Any failed sub-read fails the whole call; a user with no history gets an
// empty list, not an error.
func (rs *RecommendationService) GetRecommendations(ctx context.Context, userID string) ([]models.Recommendation, error) {
	var (
		searches  []models.SearchRecord
		cart      []models.ActivityEvent
		purchased []models.ActivityEvent
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return rs.querySearch(gctx, userID, &searches)
	})
	g.Go(func() error {
		return rs.queryActivity(gctx, userID, models.ActionAddedToCart, &cart)
	})
	g.Go(func() error {
		return rs.queryActivity(gctx, userID, models.ActionPurchased, &purchased)
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to assemble recommendations: %w", err)
	}

	recommendations := make([]models.Recommendation, 0, maxRecommendations)
	for _, event := range purchased {
		recommendations = appendProduct(recommendations, event.Product, models.SourcePurchase)
	}
	for _, event := range cart {
		recommendations = appendProduct(recommendations, event.Product, models.SourceCart)
	}
	for _, record := range searches {
		recommendations = append(recommendations, models.Recommendation{
			Source: models.SourceSearch,
			Name:   record.Query,
		})
	}

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations, nil
}

func appendProduct(recommendations []models.Recommendation, product *models.Product, source string) []models.Recommendation {
	if product == nil {
		return recommendations
	}
	return append(recommendations, models.Recommendation{
		Source:    source,
		Name:      product.Name,
		ProductID: product.ID,
		Price:     product.Price,
	})
}

func (rs *RecommendationService) querySearch(ctx context.Context, userID string, out *[]models.SearchRecord) error {
	items, err := rs.Store.QueryItemsWithIndex(ctx, models.SearchHistoryTable, models.UserIndexName,
		"userId = :uid",
		map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		nil, "",
	)
	if err != nil {
		return fmt.Errorf("failed to fetch search history: %w", err)
	}
	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return fmt.Errorf("failed to parse search history: %w", err)
	}
	return nil
}

func (rs *RecommendationService) queryActivity(ctx context.Context, userID, action string, out *[]models.ActivityEvent) error {
	items, err := rs.Store.QueryItemsWithIndex(ctx, models.CustomerActivityTable, models.UserIndexName,
		"userId = :uid",
		map[string]types.AttributeValue{
			":uid":    &types.AttributeValueMemberS{Value: userID},
			":action": &types.AttributeValueMemberS{Value: action},
		},
		map[string]string{"#a": "action"},
		"#a = :action",
	)
	if err != nil {
		return fmt.Errorf("failed to fetch '%s' activity: %w", action, err)
	}
	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return fmt.Errorf("failed to parse '%s' activity: %w", action, err)
	}
	return nil
}
