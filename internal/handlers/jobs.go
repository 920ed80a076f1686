package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/crewdeck-dev/crewdeck/internal/models"
	"github.com/crewdeck-dev/crewdeck/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type JobRequest struct {
	Title          string `json:"title" binding:"required"`
	Description    string `json:"description"`
	Location       string `json:"location"`
	ClientName     string `json:"client_name"`
	Status         string `json:"status"`
	Priority       string `json:"priority"`
	RequiredSkills string `json:"required_skills"`
	AssignedTo     *uint  `json:"assigned_to"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
}

type AddJobUpdateRequest struct {
	UpdateText string `json:"update_text" binding:"required"`
}

// JobResponse mirrors a job row plus the creator and assignee display names
// the list and detail views render.
type JobResponse struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	ClientName     string    `json:"client_name"`
	Status         string    `json:"status"`
	Priority       string    `json:"priority"`
	RequiredSkills string    `json:"required_skills"`
	CreatedBy      uint      `json:"created_by"`
	AssignedTo     *uint     `json:"assigned_to"`
	StartDate      *string   `json:"start_date"`
	EndDate        *string   `json:"end_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	CreatedByName  string    `json:"created_by_name"`
	AssignedToName *string   `json:"assigned_to_name"`
}

type JobUpdateResponse struct {
	ID            uint      `json:"id"`
	JobID         uint      `json:"job_id"`
	UpdateText    string    `json:"update_text"`
	UpdatedBy     uint      `json:"updated_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedByName string    `json:"updated_by_name"`
}

type JobDetailResponse struct {
	JobResponse
	RiskAssessments  []models.RiskAssessment  `json:"riskAssessments"`
	MethodStatements []models.MethodStatement `json:"methodStatements"`
	Updates          []JobUpdateResponse      `json:"updates"`
}

type JobsHandler struct {
	db  *gorm.DB
	hub *Hub
}

func NewJobsHandler(db *gorm.DB, hub *Hub) *JobsHandler {
	return &JobsHandler{db: db, hub: hub}
}

func buildJobResponse(job models.Job) JobResponse {
	response := JobResponse{
		ID:             job.ID,
		Title:          job.Title,
		Description:    job.Description,
		Location:       job.Location,
		ClientName:     job.ClientName,
		Status:         job.Status,
		Priority:       job.Priority,
		RequiredSkills: job.RequiredSkills,
		CreatedBy:      job.CreatedBy,
		AssignedTo:     job.AssignedTo,
		StartDate:      utils.FormatDate(job.StartDate),
		EndDate:        utils.FormatDate(job.EndDate),
		CreatedAt:      job.CreatedAt,
		UpdatedAt:      job.UpdatedAt,
		CreatedByName:  job.Creator.FullName,
	}

	if job.Assignee != nil {
		response.AssignedToName = &job.Assignee.Name
	}

	return response
}

func (h *JobsHandler) List(ctx *gin.Context) {
	var jobs []models.Job

	if err := h.db.Preload("Creator").Preload("Assignee").
		Order("created_at DESC").Find(&jobs).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve jobs"})
		return
	}

	response := make([]JobResponse, 0, len(jobs))

	for _, job := range jobs {
		response = append(response, buildJobResponse(job))
	}

	ctx.JSON(http.StatusOK, response)
}

// Get returns the job plus everything attached to it: risk assessments,
// method statements and progress updates, updates newest-first with the
// author's display name.
func (h *JobsHandler) Get(ctx *gin.Context) {
	var job models.Job

	if err := h.db.Preload("Creator").Preload("Assignee").
		Where("id = ?", ctx.Param("id")).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job"})
		}
		return
	}

	var assessments []models.RiskAssessment

	if err := h.db.Where("job_id = ?", job.ID).Find(&assessments).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve risk assessments"})
		return
	}

	var statements []models.MethodStatement

	if err := h.db.Where("job_id = ?", job.ID).Find(&statements).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve method statements"})
		return
	}

	var updates []models.JobUpdate

	if err := h.db.Preload("Author").Where("job_id = ?", job.ID).
		Order("created_at DESC").Find(&updates).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job updates"})
		return
	}

	updateResponses := make([]JobUpdateResponse, 0, len(updates))

	for _, update := range updates {
		updateResponses = append(updateResponses, JobUpdateResponse{
			ID:            update.ID,
			JobID:         update.JobID,
			UpdateText:    update.UpdateText,
			UpdatedBy:     update.UpdatedBy,
			CreatedAt:     update.CreatedAt,
			UpdatedByName: update.Author.FullName,
		})
	}

	ctx.JSON(http.StatusOK, JobDetailResponse{
		JobResponse:      buildJobResponse(job),
		RiskAssessments:  assessments,
		MethodStatements: statements,
		Updates:          updateResponses,
	})
}

func (h *JobsHandler) Create(ctx *gin.Context) {
	var req JobRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if req.Status == "" {
		req.Status = "pending"
	}

	if req.Priority == "" {
		req.Priority = "medium"
	}

	startDate, err := utils.ParseDate(req.StartDate)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	endDate, err := utils.ParseDate(req.EndDate)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job := models.Job{
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		ClientName:     req.ClientName,
		Status:         req.Status,
		Priority:       req.Priority,
		RequiredSkills: req.RequiredSkills,
		CreatedBy:      userID,
		AssignedTo:     req.AssignedTo,
		StartDate:      startDate,
		EndDate:        endDate,
	}

	if err := h.db.Create(&job).Error; err != nil {
		log.Printf("Failed to create job: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job"})
		return
	}

	if err := h.db.Preload("Creator").Preload("Assignee").First(&job, job.ID).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job"})
		return
	}

	h.hub.BroadcastRefresh()
	ctx.JSON(http.StatusCreated, buildJobResponse(job))
}

func (h *JobsHandler) Update(ctx *gin.Context) {
	var req JobRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var job models.Job

	if err := h.db.Where("id = ?", ctx.Param("id")).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job"})
		}
		return
	}

	startDate, err := utils.ParseDate(req.StartDate)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	endDate, err := utils.ParseDate(req.EndDate)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job.Title = req.Title
	job.Description = req.Description
	job.Location = req.Location
	job.ClientName = req.ClientName
	job.Status = req.Status
	job.Priority = req.Priority
	job.RequiredSkills = req.RequiredSkills
	job.AssignedTo = req.AssignedTo
	job.StartDate = startDate
	job.EndDate = endDate

	if err := h.db.Save(&job).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job"})
		return
	}

	if err := h.db.Preload("Creator").Preload("Assignee").First(&job, job.ID).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job"})
		return
	}

	h.hub.BroadcastRefresh()
	ctx.JSON(http.StatusOK, buildJobResponse(job))
}

// Delete removes the job; its risk assessments, method statements and updates
// go with it through the cascade constraints.
func (h *JobsHandler) Delete(ctx *gin.Context) {
	var job models.Job

	if err := h.db.Where("id = ?", ctx.Param("id")).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job"})
		}
		return
	}

	if err := h.db.Delete(&job).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete job"})
		return
	}

	h.hub.BroadcastRefresh()
	ctx.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

// AddUpdate appends a progress note stamped with the calling user. Updates
// are never edited or deleted afterwards.
func (h *JobsHandler) AddUpdate(ctx *gin.Context) {
	var req AddJobUpdateRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var job models.Job

	if err := h.db.Where("id = ?", ctx.Param("id")).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job"})
		}
		return
	}

	update := models.JobUpdate{
		JobID:      job.ID,
		UpdateText: req.UpdateText,
		UpdatedBy:  userID,
	}

	if err := h.db.Create(&update).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add job update"})
		return
	}

	h.hub.BroadcastRefresh()
	ctx.JSON(http.StatusCreated, update)
}
