package handlers_test

import (
	"net/http"
	"testing"

	"github.com/crewdeck-dev/crewdeck/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStatsCounts(t *testing.T) {
	r, gdb := setupRouter(t)
	token := adminToken(t, r)

	require.NoError(t, gdb.Create(&models.Operative{Name: "Jane", Availability: "available"}).Error)
	require.NoError(t, gdb.Create(&models.Operative{Name: "Bob", Availability: "on_job"}).Error)

	for _, status := range []string{"pending", "pending", "in_progress", "completed"} {
		require.NoError(t, gdb.Create(&models.Job{Title: "Job", Status: status, Priority: "medium", CreatedBy: 1}).Error)
	}

	w := doRequest(t, r, http.MethodGet, "/api/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats map[string]int64
	decodeJSON(t, w, &stats)

	assert.EqualValues(t, 4, stats["totalJobs"])
	assert.EqualValues(t, 1, stats["activeJobs"])
	assert.EqualValues(t, 2, stats["pendingJobs"])
	assert.EqualValues(t, 1, stats["completedJobs"])
	assert.EqualValues(t, 2, stats["totalOperatives"])
	assert.EqualValues(t, 1, stats["availableOperatives"])
}

func TestDashboardStatsEmptyDatabase(t *testing.T) {
	r, _ := setupRouter(t)
	token := adminToken(t, r)

	w := doRequest(t, r, http.MethodGet, "/api/dashboard/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats map[string]int64
	decodeJSON(t, w, &stats)

	for _, key := range []string{"totalJobs", "activeJobs", "pendingJobs", "completedJobs", "totalOperatives", "availableOperatives"} {
		assert.Contains(t, stats, key)
		assert.Zero(t, stats[key])
	}
}
