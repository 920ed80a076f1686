package handlers

import (
	"errors"
	"net/http"

	"github.com/crewdeck-dev/crewdeck/internal/models"
	"github.com/crewdeck-dev/crewdeck/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateRiskAssessmentRequest struct {
	JobID           uint   `json:"job_id" binding:"required"`
	Title           string `json:"title" binding:"required"`
	Hazards         string `json:"hazards"`
	Risks           string `json:"risks"`
	ControlMeasures string `json:"control_measures"`
}

type UpdateRiskAssessmentRequest struct {
	Title           string `json:"title" binding:"required"`
	Hazards         string `json:"hazards"`
	Risks           string `json:"risks"`
	ControlMeasures string `json:"control_measures"`
}

type RiskAssessmentsHandler struct {
	db *gorm.DB
}

func NewRiskAssessmentsHandler(db *gorm.DB) *RiskAssessmentsHandler {
	return &RiskAssessmentsHandler{db: db}
}

func (h *RiskAssessmentsHandler) List(ctx *gin.Context) {
	var assessments []models.RiskAssessment

	if err := h.db.Order("created_at DESC").Find(&assessments).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve risk assessments"})
		return
	}

	ctx.JSON(http.StatusOK, assessments)
}

func (h *RiskAssessmentsHandler) ListForJob(ctx *gin.Context) {
	var assessments []models.RiskAssessment

	if err := h.db.Where("job_id = ?", ctx.Param("id")).Find(&assessments).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve risk assessments"})
		return
	}

	ctx.JSON(http.StatusOK, assessments)
}

func (h *RiskAssessmentsHandler) Create(ctx *gin.Context) {
	var req CreateRiskAssessmentRequest

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

	if err := h.db.Where("id = ?", req.JobID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job"})
		}
		return
	}

	assessment := models.RiskAssessment{
		JobID:           req.JobID,
		Title:           req.Title,
		Hazards:         req.Hazards,
		Risks:           req.Risks,
		ControlMeasures: req.ControlMeasures,
		CreatedBy:       userID,
	}

	if err := h.db.Create(&assessment).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create risk assessment"})
		return
	}

	ctx.JSON(http.StatusCreated, assessment)
}

func (h *RiskAssessmentsHandler) Update(ctx *gin.Context) {
	var req UpdateRiskAssessmentRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var assessment models.RiskAssessment

	if err := h.db.Where("id = ?", ctx.Param("id")).First(&assessment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Risk assessment not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve risk assessment"})
		}
		return
	}

	assessment.Title = req.Title
	assessment.Hazards = req.Hazards
	assessment.Risks = req.Risks
	assessment.ControlMeasures = req.ControlMeasures

	if err := h.db.Save(&assessment).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update risk assessment"})
		return
	}

	ctx.JSON(http.StatusOK, assessment)
}

func (h *RiskAssessmentsHandler) Delete(ctx *gin.Context) {
	var assessment models.RiskAssessment

	if err := h.db.Where("id = ?", ctx.Param("id")).First(&assessment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Risk assessment not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve risk assessment"})
		}
		return
	}

	if err := h.db.Delete(&assessment).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete risk assessment"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Risk assessment deleted successfully"})
}
