package models

import (
	"gorm.io/datatypes"
)

type Job struct {
	BaseModel

	Title          string          `gorm:"not null" json:"title"`
	Description    string          `json:"description"`
	Location       string          `json:"location"`
	ClientName     string          `json:"client_name"`
	Status         string          `gorm:"not null;default:pending" json:"status"`  // "pending", "in_progress", "completed"
	Priority       string          `gorm:"not null;default:medium" json:"priority"` // "low", "medium", "high"
	RequiredSkills string          `json:"required_skills"`
	CreatedBy      uint            `gorm:"index" json:"created_by"`
	AssignedTo     *uint           `gorm:"index" json:"assigned_to"`
	StartDate      *datatypes.Date `gorm:"type:date" json:"-"`
	EndDate        *datatypes.Date `gorm:"type:date" json:"-"`

	// Relationships
	Creator          User              `gorm:"foreignKey:CreatedBy" json:"-"`
	Assignee         *Operative        `gorm:"foreignKey:AssignedTo;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"-"`
	RiskAssessments  []RiskAssessment  `gorm:"foreignKey:JobID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	MethodStatements []MethodStatement `gorm:"foreignKey:JobID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Updates          []JobUpdate       `gorm:"foreignKey:JobID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
