package models

type MethodStatement struct {
	BaseModel

	JobID              uint   `gorm:"not null;index" json:"job_id"`
	Title              string `gorm:"not null" json:"title"`
	Description        string `json:"description"`
	Steps              string `json:"steps"`
	EquipmentRequired  string `json:"equipment_required"`
	SafetyRequirements string `json:"safety_requirements"`
	CreatedBy          uint   `gorm:"index" json:"created_by"`

	// Relationships
	Job     Job  `gorm:"foreignKey:JobID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Creator User `gorm:"foreignKey:CreatedBy" json:"-"`
}
