package routes

import (
	"affinity_server/controllers"
	"affinity_server/services"

	"github.com/gorilla/mux"
)

// RegisterTrackRoutes sets up routes for event tracking under /api/track
func RegisterTrackRoutes(r *mux.Router, activityService *services.ActivityService) {
	controller := controllers.NewTrackController(activityService)

	trackRouter := r.PathPrefix("/api/track").Subrouter()
	trackRouter.HandleFunc("/activity", controller.HandleActivity).Methods("POST")
	trackRouter.HandleFunc("/missed", controller.HandleMissedAction).Methods("POST")
	trackRouter.HandleFunc("/search", controller.HandleSearch).Methods("POST")
}
