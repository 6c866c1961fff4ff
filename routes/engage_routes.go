package routes

import (
	"affinity_server/controllers"
	"affinity_server/services"

	"github.com/gorilla/mux"
)

// RegisterEngageRoutes sets up routes for feedback and assistance under /api/engage
func RegisterEngageRoutes(r *mux.Router, feedbackService *services.FeedbackService) {
	controller := controllers.NewEngageController(feedbackService)

	engageRouter := r.PathPrefix("/api/engage").Subrouter()
	engageRouter.HandleFunc("/feedback", controller.HandleFeedback).Methods("POST")
	engageRouter.HandleFunc("/assistance", controller.HandleAssistance).Methods("POST")
}
