package handlers

import (
	"errors"
	"net/http"

	"github.com/crewdeck-dev/crewdeck/internal/models"
	"github.com/crewdeck-dev/crewdeck/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateMethodStatementRequest struct {
	JobID              uint   `json:"job_id" binding:"required"`
	Title              string `json:"title" binding:"required"`
	Description        string `json:"description"`
	Steps              string `json:"steps"`
	EquipmentRequired  string `json:"equipment_required"`
	SafetyRequirements string `json:"safety_requirements"`
}

type UpdateMethodStatementRequest struct {
	Title              string `json:"title" binding:"required"`
	Description        string `json:"description"`
	Steps              string `json:"steps"`
	EquipmentRequired  string `json:"equipment_required"`
	SafetyRequirements string `json:"safety_requirements"`
}

type MethodStatementsHandler struct {
	db *gorm.DB
}

func NewMethodStatementsHandler(db *gorm.DB) *MethodStatementsHandler {
	return &MethodStatementsHandler{db: db}
}

func (h *MethodStatementsHandler) List(ctx *gin.Context) {
	var statements []models.MethodStatement

	if err := h.db.Order("created_at DESC").Find(&statements).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve method statements"})
		return
	}

	ctx.JSON(http.StatusOK, statements)
}

func (h *MethodStatementsHandler) ListForJob(ctx *gin.Context) {
	var statements []models.MethodStatement

	if err := h.db.Where("job_id = ?", ctx.Param("id")).Find(&statements).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve method statements"})
		return
	}

	ctx.JSON(http.StatusOK, statements)
}

func (h *MethodStatementsHandler) Create(ctx *gin.Context) {
	var req CreateMethodStatementRequest

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

	statement := models.MethodStatement{
		JobID:              req.JobID,
		Title:              req.Title,
		Description:        req.Description,
		Steps:              req.Steps,
		EquipmentRequired:  req.EquipmentRequired,
		SafetyRequirements: req.SafetyRequirements,
		CreatedBy:          userID,
	}

	if err := h.db.Create(&statement).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create method statement"})
		return
	}

	ctx.JSON(http.StatusCreated, statement)
}

func (h *MethodStatementsHandler) Update(ctx *gin.Context) {
	var req UpdateMethodStatementRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var statement models.MethodStatement

	if err := h.db.Where("id = ?", ctx.Param("id")).First(&statement).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Method statement not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve method statement"})
		}
		return
	}

	statement.Title = req.Title
	statement.Description = req.Description
	statement.Steps = req.Steps
	statement.EquipmentRequired = req.EquipmentRequired
	statement.SafetyRequirements = req.SafetyRequirements

	if err := h.db.Save(&statement).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update method statement"})
		return
	}

	ctx.JSON(http.StatusOK, statement)
}

func (h *MethodStatementsHandler) Delete(ctx *gin.Context) {
	var statement models.MethodStatement

	if err := h.db.Where("id = ?", ctx.Param("id")).First(&statement).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Method statement not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve method statement"})
		}
		return
	}

	if err := h.db.Delete(&statement).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete method statement"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Method statement deleted successfully"})
}
