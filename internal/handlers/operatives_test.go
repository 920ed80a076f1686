package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/crewdeck-dev/crewdeck/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperativesRequireAuthentication(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/api/operatives", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateOperativeDefaultsAvailability(t *testing.T) {
	r, _ := setupRouter(t)
	token := adminToken(t, r)

	w := doRequest(t, r, http.MethodPost, "/api/operatives", token, map[string]string{
		"name": "Jane Doe",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var operative models.Operative
	decodeJSON(t, w, &operative)
	assert.Equal(t, "available", operative.Availability)
	assert.NotZero(t, operative.ID)
}

func TestGetOperativeNotFound(t *testing.T) {
	r, _ := setupRouter(t)
	token := adminToken(t, r)

	w := doRequest(t, r, http.MethodGet, "/api/operatives/999", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOperativeListOrderedByName(t *testing.T) {
	r, gdb := setupRouter(t)
	token := adminToken(t, r)

	for _, name := range []string{"Zoe", "Alan", "Mary"} {
		require.NoError(t, gdb.Create(&models.Operative{Name: name, Availability: "available"}).Error)
	}

	w := doRequest(t, r, http.MethodGet, "/api/operatives", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var operatives []models.Operative
	decodeJSON(t, w, &operatives)
	require.Len(t, operatives, 3)
	assert.Equal(t, "Alan", operatives[0].Name)
	assert.Equal(t, "Mary", operatives[1].Name)
	assert.Equal(t, "Zoe", operatives[2].Name)
}

func TestUpdateOperativeReplacesAllFields(t *testing.T) {
	r, gdb := setupRouter(t)
	token := adminToken(t, r)

	operative := models.Operative{Name: "Jane", Email: "jane@example.com", Availability: "available"}
	require.NoError(t, gdb.Create(&operative).Error)

	w := doRequest(t, r, http.MethodPut, fmt.Sprintf("/api/operatives/%d", operative.ID), token, map[string]string{
		"name":         "Jane Doe",
		"availability": "on_job",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Operative
	require.NoError(t, gdb.First(&updated, operative.ID).Error)
	assert.Equal(t, "Jane Doe", updated.Name)
	assert.Equal(t, "on_job", updated.Availability)
	// Full replace: the omitted email is cleared, not preserved.
	assert.Empty(t, updated.Email)
}

func TestDeleteOperativeClearsJobAssignments(t *testing.T) {
	r, gdb := setupRouter(t)
	token := adminToken(t, r)

	operative := models.Operative{Name: "Jane", Availability: "available"}
	require.NoError(t, gdb.Create(&operative).Error)

	job := models.Job{Title: "Fix roof", Status: "pending", Priority: "medium", CreatedBy: 1, AssignedTo: &operative.ID}
	require.NoError(t, gdb.Create(&job).Error)

	w := doRequest(t, r, http.MethodDelete, fmt.Sprintf("/api/operatives/%d", operative.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var remaining models.Job
	require.NoError(t, gdb.First(&remaining, job.ID).Error)
	assert.Nil(t, remaining.AssignedTo)

	var count int64
	require.NoError(t, gdb.Model(&models.Operative{}).Count(&count).Error)
	assert.Zero(t, count)
}
