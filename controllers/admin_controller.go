package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"affinity_server/services"

	"github.com/gorilla/mux"
)

// AdminController serves the operator notification inbox and summary document
type AdminController struct {
	NotificationService *services.NotificationService
	SummaryService      *services.SummaryService
}

// NewAdminController creates a new AdminController instance
func NewAdminController(notificationService *services.NotificationService, summaryService *services.SummaryService) *AdminController {
	return &AdminController{NotificationService: notificationService, SummaryService: summaryService}
}

// HandleListNotifications returns all admin notifications, newest first
func (ac *AdminController) HandleListNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := ac.NotificationService.ListNotifications(r.Context())
	if err != nil {
		log.Println("Error listing notifications:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]interface{}{"notifications": notifications})
}

// HandleMarkNotificationRead flips one notification to read
func (ac *AdminController) HandleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "Notification id is required", http.StatusBadRequest)
		return
	}

	if err := ac.NotificationService.MarkRead(r.Context(), id); err != nil {
		log.Println("Error marking notification read:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Notification marked read"})
}

// HandleGetSummary returns the shared admin summary document
func (ac *AdminController) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := ac.SummaryService.Load(r.Context())
	if err != nil {
		log.Println("Error loading summary:", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, summary)
}
