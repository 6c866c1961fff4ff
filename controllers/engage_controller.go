package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"affinity_server/models"
	"affinity_server/services"
)

// EngageController handles feedback submissions and assistance requests
type EngageController struct {
	FeedbackService *services.FeedbackService
}

// NewEngageController creates a new EngageController instance
func NewEngageController(feedbackService *services.FeedbackService) *EngageController {
	return &EngageController{FeedbackService: feedbackService}
}

// HandleFeedback submits a review or complaint
func (ec *EngageController) HandleFeedback(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID  string          `json:"userId"`
		Email   string          `json:"email"`
		Type    string          `json:"type"`
		Message string          `json:"message"`
		Product *models.Product `json:"product,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.Type == "" || request.Message == "" {
		http.Error(w, "Type and Message are required", http.StatusBadRequest)
		return
	}

	err := ec.FeedbackService.SubmitFeedback(r.Context(), request.UserID, request.Email, request.Type, request.Message, request.Product)
	if err != nil {
		log.Println("Error submitting feedback:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Feedback submitted"})
}

// HandleAssistance submits a support request
func (ec *EngageController) HandleAssistance(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID string `json:"userId"`
		Email  string `json:"email"`
		Issue  string `json:"issue"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.Issue == "" {
		http.Error(w, "Issue is required", http.StatusBadRequest)
		return
	}

	err := ec.FeedbackService.RequestAssistance(r.Context(), request.UserID, request.Email, request.Issue)
	if err != nil {
		log.Println("Error requesting assistance:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Assistance requested"})
}
