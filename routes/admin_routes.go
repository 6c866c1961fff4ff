package routes

import (
	"affinity_server/controllers"
	"affinity_server/services"

	"github.com/gorilla/mux"
)

// RegisterAdminRoutes sets up operator tooling routes under /api/admin
func RegisterAdminRoutes(r *mux.Router, notificationService *services.NotificationService, summaryService *services.SummaryService) {
	controller := controllers.NewAdminController(notificationService, summaryService)

	adminRouter := r.PathPrefix("/api/admin").Subrouter()
	adminRouter.HandleFunc("/notifications", controller.HandleListNotifications).Methods("GET")
	adminRouter.HandleFunc("/notifications/{id}/read", controller.HandleMarkNotificationRead).Methods("POST")
	adminRouter.HandleFunc("/summary", controller.HandleGetSummary).Methods("GET")
}
