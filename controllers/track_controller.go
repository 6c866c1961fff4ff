package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"affinity_server/models"
	"affinity_server/services"
)

// TrackController handles HTTP requests for customer event tracking
type TrackController struct {
	ActivityService *services.ActivityService
}

// NewTrackController creates a new TrackController instance
func NewTrackController(activityService *services.ActivityService) *TrackController {
	return &TrackController{ActivityService: activityService}
}

// HandleActivity records one completed customer action
func (tc *TrackController) HandleActivity(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID  string          `json:"userId"`
		Email   string          `json:"email"`
		Action  string          `json:"action"`
		Product *models.Product `json:"product,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.Action == "" {
		http.Error(w, "Action is required", http.StatusBadRequest)
		return
	}

	// An empty userId is a silent skip, not an error: anonymous sessions are
	// never recorded.
	err := tc.ActivityService.RecordActivity(r.Context(), request.UserID, request.Email, request.Action, request.Product)
	if err != nil {
		log.Println("Error recording activity:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Activity recorded"})
}

// HandleMissedAction records an abandonment or hesitation signal
func (tc *TrackController) HandleMissedAction(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID  string `json:"userId"`
		Email   string `json:"email"`
		Action  string `json:"action"`
		Details string `json:"details,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.Action == "" {
		http.Error(w, "Action is required", http.StatusBadRequest)
		return
	}

	err := tc.ActivityService.RecordMissedAction(r.Context(), request.UserID, request.Email, request.Action, request.Details)
	if err != nil {
		log.Println("Error recording missed action:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Missed action recorded"})
}

// HandleSearch stores a search query and its derived activity event
func (tc *TrackController) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID string `json:"userId"`
		Email  string `json:"email"`
		Query  string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.Query == "" {
		http.Error(w, "Query is required", http.StatusBadRequest)
		return
	}

	err := tc.ActivityService.RecordSearch(r.Context(), request.UserID, request.Email, request.Query)
	if err != nil {
		log.Println("Error recording search:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Search recorded"})
}
