package handlers

import (
	"errors"
	"net/http"

	"github.com/crewdeck-dev/crewdeck/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OperativeRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Skills       string `json:"skills"`
	Location     string `json:"location"`
	Availability string `json:"availability"`
}

type OperativesHandler struct {
	db  *gorm.DB
	hub *Hub
}

func NewOperativesHandler(db *gorm.DB, hub *Hub) *OperativesHandler {
	return &OperativesHandler{db: db, hub: hub}
}

func (h *OperativesHandler) List(ctx *gin.Context) {
	var operatives []models.Operative

	if err := h.db.Order("name").Find(&operatives).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve operatives"})
		return
	}

	ctx.JSON(http.StatusOK, operatives)
}

func (h *OperativesHandler) Get(ctx *gin.Context) {
	var operative models.Operative

	if err := h.db.Where("id = ?", ctx.Param("id")).First(&operative).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Operative not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve operative"})
		}
		return
	}

	ctx.JSON(http.StatusOK, operative)
}

func (h *OperativesHandler) Create(ctx *gin.Context) {
	var req OperativeRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if req.Availability == "" {
		req.Availability = "available"
	}

	operative := models.Operative{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Skills:       req.Skills,
		Location:     req.Location,
		Availability: req.Availability,
	}

	if err := h.db.Create(&operative).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create operative"})
		return
	}

	h.hub.BroadcastRefresh()
	ctx.JSON(http.StatusCreated, operative)
}

// Update replaces every editable field; there are no partial patch semantics.
func (h *OperativesHandler) Update(ctx *gin.Context) {
	var req OperativeRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var operative models.Operative

	if err := h.db.Where("id = ?", ctx.Param("id")).First(&operative).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Operative not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve operative"})
		}
		return
	}

	operative.Name = req.Name
	operative.Email = req.Email
	operative.Phone = req.Phone
	operative.Skills = req.Skills
	operative.Location = req.Location
	operative.Availability = req.Availability

	if err := h.db.Save(&operative).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update operative"})
		return
	}

	h.hub.BroadcastRefresh()
	ctx.JSON(http.StatusOK, operative)
}

// Delete removes the operative and clears any job assignments pointing at it,
// so no job is left referencing a missing operative.
func (h *OperativesHandler) Delete(ctx *gin.Context) {
	var operative models.Operative

	if err := h.db.Where("id = ?", ctx.Param("id")).First(&operative).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Operative not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve operative"})
		}
		return
	}

	if err := h.db.Model(&models.Job{}).Where("assigned_to = ?", operative.ID).Update("assigned_to", nil).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unassign operative"})
		return
	}

	if err := h.db.Delete(&operative).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete operative"})
		return
	}

	h.hub.BroadcastRefresh()
	ctx.JSON(http.StatusOK, gin.H{"message": "Operative deleted successfully"})
}
