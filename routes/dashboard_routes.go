package routes

import (
	"affinity_server/controllers"
	"affinity_server/services"

	"github.com/gorilla/mux"
)

// RegisterDashboardRoutes sets up routes for the operator dashboard under /api/dashboard
func RegisterDashboardRoutes(r *mux.Router, dashboardService *services.DashboardService, pipelineService *services.PipelineService) {
	controller := controllers.NewDashboardController(dashboardService, pipelineService)

	dashboardRouter := r.PathPrefix("/api/dashboard").Subrouter()
	dashboardRouter.HandleFunc("/activity", controller.HandleActivity).Methods("GET")
	dashboardRouter.HandleFunc("/feedback", controller.HandleFeedback).Methods("GET")
	dashboardRouter.HandleFunc("/assistance", controller.HandleAssistance).Methods("GET")
	dashboardRouter.HandleFunc("/breakdown", controller.HandleBreakdown).Methods("GET")
	dashboardRouter.HandleFunc("/notices", controller.HandleNotices).Methods("GET")
}
