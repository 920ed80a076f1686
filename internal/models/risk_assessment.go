package models

type RiskAssessment struct {
	BaseModel

	JobID           uint   `gorm:"not null;index" json:"job_id"`
	Title           string `gorm:"not null" json:"title"`
	Hazards         string `json:"hazards"`
	Risks           string `json:"risks"`
	ControlMeasures string `json:"control_measures"`
	CreatedBy       uint   `gorm:"index" json:"created_by"`

	// Relationships
	Job     Job  `gorm:"foreignKey:JobID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Creator User `gorm:"foreignKey:CreatedBy" json:"-"`
}
