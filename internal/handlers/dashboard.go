package handlers

import (
	"net/http"

	"github.com/crewdeck-dev/crewdeck/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardStats struct {
	TotalJobs           int64 `json:"totalJobs"`
	ActiveJobs          int64 `json:"activeJobs"`
	PendingJobs         int64 `json:"pendingJobs"`
	CompletedJobs       int64 `json:"completedJobs"`
	TotalOperatives     int64 `json:"totalOperatives"`
	AvailableOperatives int64 `json:"availableOperatives"`
}

type DashboardHandler struct {
	db  *gorm.DB
	hub *Hub
}

func NewDashboardHandler(db *gorm.DB, hub *Hub) *DashboardHandler {
	return &DashboardHandler{db: db, hub: hub}
}

// Stats runs six independent counts. They are not wrapped in one snapshot;
// a concurrent write can skew the composite slightly, which is fine for a
// dashboard.
func (h *DashboardHandler) Stats(ctx *gin.Context) {
	var stats DashboardStats

	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.TotalJobs, h.db.Model(&models.Job{})},
		{&stats.ActiveJobs, h.db.Model(&models.Job{}).Where("status = ?", "in_progress")},
		{&stats.PendingJobs, h.db.Model(&models.Job{}).Where("status = ?", "pending")},
		{&stats.CompletedJobs, h.db.Model(&models.Job{}).Where("status = ?", "completed")},
		{&stats.TotalOperatives, h.db.Model(&models.Operative{})},
		{&stats.AvailableOperatives, h.db.Model(&models.Operative{}).Where("availability = ?", "available")},
	}

	for _, count := range counts {
		if err := count.query.Count(count.dest).Error; err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve dashboard stats"})
			return
		}
	}

	ctx.JSON(http.StatusOK, stats)
}
