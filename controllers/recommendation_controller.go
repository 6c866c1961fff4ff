package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"affinity_server/services"

	"github.com/gorilla/mux"
)

// RecommendationController serves ranked product suggestions
type RecommendationController struct {
	RecommendationService *services.RecommendationService
}

// NewRecommendationController creates a new RecommendationController instance
func NewRecommendationController(recommendationService *services.RecommendationService) *RecommendationController {
	return &RecommendationController{RecommendationService: recommendationService}
}

// HandleGetRecommendations returns up to five suggestions for a user
func (rc *RecommendationController) HandleGetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	recommendations, err := rc.RecommendationService.GetRecommendations(r.Context(), userID)
	if err != nil {
		log.Println("Error assembling recommendations:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"recommendations": recommendations})
}
