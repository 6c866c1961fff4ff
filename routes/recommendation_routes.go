package routes

import (
	"affinity_server/controllers"
	"affinity_server/services"

	"github.com/gorilla/mux"
)

// RegisterRecommendationRoutes sets up routes for product suggestions
func RegisterRecommendationRoutes(r *mux.Router, recommendationService *services.RecommendationService) {
	controller := controllers.NewRecommendationController(recommendationService)

	r.HandleFunc("/api/recommendations/{userId}", controller.HandleGetRecommendations).Methods("GET")
}
