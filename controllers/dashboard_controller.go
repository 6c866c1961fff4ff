package controllers

import (
	"encoding/json"
	"net/http"

	"affinity_server/services"
)

// DashboardController serves the operator dashboard's in-memory projections
type DashboardController struct {
	DashboardService *services.DashboardService
	PipelineService  *services.PipelineService
}

// NewDashboardController creates a new DashboardController instance
func NewDashboardController(dashboardService *services.DashboardService, pipelineService *services.PipelineService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService, PipelineService: pipelineService}
}

// HandleActivity returns the live customer-activity projection
func (dc *DashboardController) HandleActivity(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{"activity": dc.DashboardService.ActivitySnapshot()})
}

// HandleFeedback returns the live feedback projection
func (dc *DashboardController) HandleFeedback(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{"feedback": dc.DashboardService.FeedbackSnapshot()})
}

// HandleAssistance returns the live assistance-request projection
func (dc *DashboardController) HandleAssistance(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{"assistanceRequests": dc.DashboardService.AssistanceSnapshot()})
}

// HandleBreakdown returns the per-category activity counts
func (dc *DashboardController) HandleBreakdown(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{"breakdown": dc.DashboardService.ActivityBreakdown()})
}

// HandleNotices returns the transient email-dispatch notices
func (dc *DashboardController) HandleNotices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{"notices": dc.PipelineService.Notices()})
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}
